package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/config"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/completions"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/expenses"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/feedback"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/gamescores"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/habits"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/moods"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/points"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/pomodoros"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/refreshtokens"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/users"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

// testNow is 09:00 UTC on a Tuesday.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// memStore backs every fake repository. Transactions are not simulated; the
// sqlmock connection only checks that Begin/Commit/Rollback happen.
type memStore struct {
	mu           sync.Mutex
	clock        timex.Clock
	fail         map[string]error
	users        map[string]*models.User
	tokens       map[string]*models.RefreshToken
	habits       []models.Habit
	completions  []models.HabitCompletion
	expenses     []models.Expense
	moods        []models.MoodEntry
	pomodoros    []models.PomodoroSession
	feedback     []models.Feedback
	transactions []models.PointTransaction
	scores       []models.GameScore
}

func newMemStore(clock timex.Clock) *memStore {
	return &memStore{
		clock:  clock,
		fail:   map[string]error{},
		users:  map[string]*models.User{},
		tokens: map[string]*models.RefreshToken{},
	}
}

// newID mirrors the database, where every primary key is a UUID.
func (m *memStore) newID() string {
	return uuid.NewString()
}

func (m *memStore) err(op string) error {
	return m.fail[op]
}

func (m *memStore) addUser(email, name string, pts int64) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &models.User{ID: m.newID(), Email: email, FullName: name, UserName: name, Points: pts, CreatedAt: m.clock()}
	m.users[u.ID] = u
	return u
}

type fakeManager struct{ s *memStore }

func (f fakeManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (f fakeManager) Users(dbx.DBTX) users.Repository                 { return fakeUsers{f.s} }
func (f fakeManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return fakeTokens{f.s} }
func (f fakeManager) Habits(dbx.DBTX) habits.Repository               { return fakeHabits{f.s} }
func (f fakeManager) Completions(dbx.DBTX) completions.Repository     { return fakeCompletions{f.s} }
func (f fakeManager) Expenses(dbx.DBTX) expenses.Repository           { return fakeExpenses{f.s} }
func (f fakeManager) Moods(dbx.DBTX) moods.Repository                 { return fakeMoods{f.s} }
func (f fakeManager) Pomodoros(dbx.DBTX) pomodoros.Repository         { return fakePomodoros{f.s} }
func (f fakeManager) Feedback(dbx.DBTX) feedback.Repository           { return fakeFeedback{f.s} }
func (f fakeManager) Points(dbx.DBTX) points.Repository               { return fakePoints{f.s} }
func (f fakeManager) GameScores(dbx.DBTX) gamescores.Repository       { return fakeScores{f.s} }

// users

type fakeUsers struct{ s *memStore }

func (r fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("users.Create"); err != nil {
		return nil, err
	}
	for _, o := range r.s.users {
		if o.Email == u.Email || o.UserName == u.UserName {
			return nil, common.ErrorAlreadyExists
		}
	}
	c := *u
	c.ID = r.s.newID()
	c.CreatedAt = r.s.clock()
	r.s.users[c.ID] = &c
	out := c
	return &out, nil
}

func (r fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("users.GetByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r fakeUsers) UpdateProfile(_ context.Context, id, fullName, userName string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, o := range r.s.users {
		if o.ID != id && o.UserName == userName {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.FullName, u.UserName = fullName, userName
	c := *u
	return &c, nil
}

func (r fakeUsers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.users, id)
	for k, t := range r.s.tokens {
		if t.UserID == id {
			delete(r.s.tokens, k)
		}
	}
	r.s.habits = filter(r.s.habits, func(h models.Habit) bool { return h.UserID != id })
	r.s.completions = filter(r.s.completions, func(c models.HabitCompletion) bool { return c.UserID != id })
	r.s.moods = filter(r.s.moods, func(m models.MoodEntry) bool { return m.UserID != id })
	r.s.expenses = filter(r.s.expenses, func(e models.Expense) bool { return e.UserID != id })
	return nil
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// newestFirst returns the matching rows in reverse insertion order.
func newestFirst[T any](in []T, keep func(T) bool) []T {
	var out []T
	for i := len(in) - 1; i >= 0; i-- {
		if keep(in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

// refresh tokens

type fakeTokens struct{ s *memStore }

func (r fakeTokens) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("tokens.Create"); err != nil {
		return err
	}
	r.s.tokens[token] = &models.RefreshToken{ID: r.s.newID(), UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (r fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r fakeTokens) Delete(_ context.Context, token string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("tokens.Delete"); err != nil {
		return false, err
	}
	_, ok := r.s.tokens[token]
	delete(r.s.tokens, token)
	return ok, nil
}

func (r fakeTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, t := range r.s.tokens {
		if t.Expires.Before(now) {
			delete(r.s.tokens, k)
			n++
		}
	}
	return n, nil
}

// habits

type fakeHabits struct{ s *memStore }

func (r fakeHabits) Create(_ context.Context, h *models.Habit) (*models.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *h
	c.ID = r.s.newID()
	c.CreatedAt = r.s.clock()
	r.s.habits = append(r.s.habits, c)
	return &c, nil
}

func (r fakeHabits) Get(_ context.Context, userID, habitID string) (*models.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, h := range r.s.habits {
		if h.ID == habitID && h.UserID == userID {
			c := h
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeHabits) List(_ context.Context, userID string) ([]models.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("habits.List"); err != nil {
		return nil, err
	}
	return newestFirst(r.s.habits, func(h models.Habit) bool { return h.UserID == userID }), nil
}

// completions

type fakeCompletions struct{ s *memStore }

func (r fakeCompletions) Insert(_ context.Context, c *models.HabitCompletion) (*models.HabitCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.completions {
		if o.HabitID == c.HabitID && timex.DateKey(o.CompletedOn) == timex.DateKey(c.CompletedOn) {
			return nil, common.ErrorAlreadyExists
		}
	}
	n := *c
	n.ID = r.s.newID()
	r.s.completions = append(r.s.completions, n)
	return &n, nil
}

func (r fakeCompletions) FindForDay(_ context.Context, habitID string, day time.Time) (*models.HabitCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("completions.FindForDay"); err != nil {
		return nil, err
	}
	for _, c := range r.s.completions {
		if c.HabitID == habitID && timex.DateKey(c.CompletedOn) == timex.DateKey(day) {
			n := c
			return &n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeCompletions) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	before := len(r.s.completions)
	r.s.completions = filter(r.s.completions, func(c models.HabitCompletion) bool { return c.ID != id })
	return len(r.s.completions) < before, nil
}

func (r fakeCompletions) ListForDay(_ context.Context, userID string, day time.Time) ([]models.HabitCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.HabitCompletion
	for _, c := range r.s.completions {
		if c.UserID == userID && timex.DateKey(c.CompletedOn) == timex.DateKey(day) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCompletions) ListSince(_ context.Context, userID string, since time.Time) ([]models.HabitCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.HabitCompletion
	for _, c := range r.s.completions {
		if c.UserID == userID && !c.CompletedAt.Before(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

// expenses

type fakeExpenses struct{ s *memStore }

func (r fakeExpenses) Create(_ context.Context, e *models.Expense) (*models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *e
	c.ID = r.s.newID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.clock()
	}
	r.s.expenses = append(r.s.expenses, c)
	return &c, nil
}

func (r fakeExpenses) List(_ context.Context, userID string, since time.Time) ([]models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := newestFirst(r.s.expenses, func(e models.Expense) bool {
		return e.UserID == userID && !e.CreatedAt.Before(since)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// moods

type fakeMoods struct{ s *memStore }

func (r fakeMoods) Create(_ context.Context, m *models.MoodEntry) (*models.MoodEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	c.ID = r.s.newID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.clock()
	}
	r.s.moods = append(r.s.moods, c)
	return &c, nil
}

func (r fakeMoods) List(_ context.Context, userID string, since time.Time) ([]models.MoodEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.moods, func(m models.MoodEntry) bool {
		return m.UserID == userID && !m.CreatedAt.Before(since)
	}), nil
}

func (r fakeMoods) Delete(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	before := len(r.s.moods)
	r.s.moods = filter(r.s.moods, func(m models.MoodEntry) bool { return m.ID != id || m.UserID != userID })
	if len(r.s.moods) == before {
		return common.ErrorNotFound
	}
	return nil
}

// pomodoros

type fakePomodoros struct{ s *memStore }

func (r fakePomodoros) Create(_ context.Context, p *models.PomodoroSession) (*models.PomodoroSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("pomodoros.Create"); err != nil {
		return nil, err
	}
	c := *p
	c.ID = r.s.newID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.clock()
	}
	r.s.pomodoros = append(r.s.pomodoros, c)
	return &c, nil
}

func (r fakePomodoros) List(_ context.Context, userID string, since time.Time) ([]models.PomodoroSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.pomodoros, func(p models.PomodoroSession) bool {
		return p.UserID == userID && !p.CreatedAt.Before(since)
	}), nil
}

// feedback

type fakeFeedback struct{ s *memStore }

func (r fakeFeedback) Create(_ context.Context, f *models.Feedback) (*models.Feedback, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *f
	c.ID = r.s.newID()
	c.CreatedAt = r.s.clock()
	r.s.feedback = append(r.s.feedback, c)
	return &c, nil
}

func (r fakeFeedback) ListByUser(_ context.Context, userID string) ([]models.Feedback, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.feedback, func(f models.Feedback) bool { return f.UserID == userID }), nil
}

// points

type fakePoints struct{ s *memStore }

func (r fakePoints) AddPoints(_ context.Context, userID string, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.err("points.AddPoints"); err != nil {
		return 0, err
	}
	u, ok := r.s.users[userID]
	if !ok {
		return 0, common.ErrorNotFound
	}
	u.Points += delta
	return u.Points, nil
}

func (r fakePoints) Points(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return u.Points, nil
}

func (r fakePoints) Record(_ context.Context, userID string, delta int64, reason string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions = append(r.s.transactions, models.PointTransaction{
		ID: r.s.newID(), UserID: userID, Delta: delta, Reason: reason, CreatedAt: r.s.clock(),
	})
	return nil
}

func (r fakePoints) List(_ context.Context, userID string) ([]models.PointTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return filter(append([]models.PointTransaction(nil), r.s.transactions...), func(p models.PointTransaction) bool {
		return p.UserID == userID
	}), nil
}

// game scores

type fakeScores struct{ s *memStore }

func (r fakeScores) Create(_ context.Context, g *models.GameScore) (*models.GameScore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *g
	c.ID = r.s.newID()
	c.CreatedAt = r.s.clock()
	r.s.scores = append(r.s.scores, c)
	return &c, nil
}

func (r fakeScores) HighScore(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var best int64
	for _, g := range r.s.scores {
		if g.UserID == userID && g.Score > best {
			best = g.Score
		}
	}
	return best, nil
}

func (r fakeScores) List(_ context.Context, userID string) ([]models.GameScore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.scores, func(g models.GameScore) bool { return g.UserID == userID }), nil
}

// harness

type harness struct {
	store *memStore
	mock  sqlmock.Sqlmock
	svc   *Services
	now   time.Time
}

func (h *harness) clock() time.Time { return h.now }

func (h *harness) expectTx(commit bool) {
	h.mock.ExpectBegin()
	if commit {
		h.mock.ExpectCommit()
	} else {
		h.mock.ExpectRollback()
	}
}

func newHarness(t *testing.T, objects ObjectStore) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	h := &harness{mock: mock, now: testNow}
	h.store = newMemStore(h.clock)
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		DefaultTimeZone:              "UTC",
		ExportURLValidity:            15 * time.Minute,
	}
	h.svc, err = New(db, fakeManager{h.store}, cfg, objects, h.clock)
	require.NoError(t, err)
	return h
}

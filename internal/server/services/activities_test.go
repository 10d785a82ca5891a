package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
)

func TestCompletePomodoro(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 5)

	for _, bad := range []int{-1, 181} {
		_, err := h.svc.Activities.CompletePomodoro(context.Background(), u.ID, bad)
		assert.ErrorIs(t, err, common.ErrorValidation)
	}

	h.expectTx(true)
	res, err := h.svc.Activities.CompletePomodoro(context.Background(), u.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 25, res.Session.Duration)
	assert.True(t, res.Session.Completed)
	assert.Equal(t, ledger.PomodoroPoints, res.Session.PointsEarned)
	assert.Equal(t, int64(30), res.Points)

	h.expectTx(true)
	res, err = h.svc.Activities.CompletePomodoro(context.Background(), u.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Session.Duration)
	assert.Equal(t, int64(55), res.Points)
}

func TestCompletePomodoro_StoreFailureAwardsNothing(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 5)
	h.store.fail["pomodoros.Create"] = assert.AnError

	h.expectTx(false)
	_, err := h.svc.Activities.CompletePomodoro(context.Background(), u.ID, 25)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, int64(5), h.store.users[u.ID].Points)
}

func TestSubmitGameScore(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)

	_, err := h.svc.Activities.SubmitGameScore(context.Background(), u.ID, -5)
	assert.ErrorIs(t, err, common.ErrorValidation)

	h.expectTx(true)
	res, err := h.svc.Activities.SubmitGameScore(context.Background(), u.ID, 149)
	require.NoError(t, err)
	assert.Equal(t, int64(14), res.Score.PointsEarned)
	assert.Equal(t, int64(14), res.Points)
	assert.Equal(t, int64(149), res.HighScore)
	assert.True(t, res.NewHighScore)

	h.expectTx(true)
	res, err = h.svc.Activities.SubmitGameScore(context.Background(), u.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.Points)
	assert.Equal(t, int64(149), res.HighScore)
	assert.False(t, res.NewHighScore)

	// A zero score is stored but moves no points.
	h.expectTx(true)
	res, err = h.svc.Activities.SubmitGameScore(context.Background(), u.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.Points)
	assert.Len(t, h.store.transactions, 2)
	assert.Len(t, h.store.scores, 3)
}

func TestSubmitFeedback(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("alice@example.com", "Alice", 0)

	_, err := h.svc.Activities.SubmitFeedback(context.Background(), u.ID, 6, "ok")
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = h.svc.Activities.SubmitFeedback(context.Background(), u.ID, 4, "  ")
	assert.ErrorIs(t, err, common.ErrorValidation)

	f, err := h.svc.Activities.SubmitFeedback(context.Background(), u.ID, 4, " nice app ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", f.UserEmail)
	assert.Equal(t, "Alice", f.UserName)
	assert.Equal(t, "nice app", f.Text)

	_, err = h.svc.Activities.SubmitFeedback(context.Background(), "ghost", 4, "hi")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

// Package session keeps the signed-in state of the CLI between runs: the
// access token and cached profile in a local SQLite cache, the refresh token
// in the OS keyring. Interested parties subscribe to auth changes instead of
// reading a global.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/migrations"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/repositories/metadata"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

const (
	keyAccessToken = "access_token"
	keyProfile     = "profile"
)

// State is what subscribers are told after every change.
type State struct {
	SignedIn bool
	Profile  *wellnessrpc.Profile
}

type Manager struct {
	kv    metadata.Repository
	vault Vault

	mu          sync.Mutex
	accessToken string
	profile     *wellnessrpc.Profile
	subs        map[int]func(State)
	nextSub     int
}

func New(kv metadata.Repository, vault Vault) *Manager {
	return &Manager{kv: kv, vault: vault, subs: map[int]func(State){}}
}

// Open opens (creating if needed) the session cache under dataDir, applies
// its migrations and loads the stored session. The returned *sql.DB must be
// closed by the caller.
func Open(ctx context.Context, dataDir string, vault Vault) (*Manager, *sql.DB, error) {
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "session.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open session cache: %w", err)
	}
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate session cache: %w", err)
	}

	m := New(metadata.NewSQLiteRepository(db), vault)
	if err := m.Load(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return m, db, nil
}

// Load reads the cached access token and profile.
func (m *Manager) Load(ctx context.Context) error {
	token, _, err := m.kv.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	raw, ok, err := m.kv.Get(ctx, keyProfile)
	if err != nil {
		return err
	}

	var profile *wellnessrpc.Profile
	if ok {
		profile = &wellnessrpc.Profile{}
		if err := json.Unmarshal(raw, profile); err != nil {
			return fmt.Errorf("decode cached profile: %w", err)
		}
	}

	m.mu.Lock()
	m.accessToken = string(token)
	m.profile = profile
	m.mu.Unlock()
	return nil
}

func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken
}

func (m *Manager) RefreshToken() (string, error) {
	return m.vault.Get()
}

func (m *Manager) Profile() *wellnessrpc.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

func (m *Manager) SignedIn() bool {
	return m.AccessToken() != ""
}

// Save stores a token pair. A nil profile keeps the cached one.
func (m *Manager) Save(ctx context.Context, accessToken, refreshToken string, profile *wellnessrpc.Profile) error {
	if err := m.kv.Set(ctx, keyAccessToken, []byte(accessToken)); err != nil {
		return err
	}
	if err := m.vault.Set(refreshToken); err != nil {
		return err
	}

	m.mu.Lock()
	m.accessToken = accessToken
	m.mu.Unlock()

	if profile != nil {
		return m.SetProfile(ctx, profile)
	}
	m.notify()
	return nil
}

// SetProfile replaces the cached profile, e.g. after points changed.
func (m *Manager) SetProfile(ctx context.Context, profile *wellnessrpc.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.kv.Set(ctx, keyProfile, raw); err != nil {
		return err
	}

	m.mu.Lock()
	m.profile = profile
	m.mu.Unlock()

	m.notify()
	return nil
}

// Clear forgets everything; used on sign-out and account deletion.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.kv.Clear(ctx); err != nil {
		return err
	}
	if err := m.vault.Delete(); err != nil {
		return err
	}

	m.mu.Lock()
	m.accessToken = ""
	m.profile = nil
	m.mu.Unlock()

	m.notify()
	return nil
}

// Subscribe registers fn for auth changes and returns a func that removes it.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *Manager) notify() {
	m.mu.Lock()
	st := State{SignedIn: m.accessToken != "", Profile: m.profile}
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

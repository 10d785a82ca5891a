package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

func openTemp(t *testing.T) (*Manager, string) {
	t.Helper()
	keyring.MockInit()
	dir := t.TempDir()
	m, db, err := Open(context.Background(), dir, NewKeyringVault("test:50051"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return m, dir
}

func TestSaveAndReload(t *testing.T) {
	m, dir := openTemp(t)
	ctx := context.Background()
	assert.False(t, m.SignedIn())

	p := &wellnessrpc.Profile{ID: "u1", Email: "a@b.c", Points: 40, Level: "Beginner"}
	require.NoError(t, m.Save(ctx, "A1", "R1", p))

	again, db, err := Open(ctx, dir, NewKeyringVault("test:50051"))
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, again.SignedIn())
	assert.Equal(t, "A1", again.AccessToken())
	assert.Equal(t, p, again.Profile())
	refresh, err := again.RefreshToken()
	require.NoError(t, err)
	assert.Equal(t, "R1", refresh)
}

func TestSaveKeepsProfileWhenNil(t *testing.T) {
	m, _ := openTemp(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "A1", "R1", &wellnessrpc.Profile{ID: "u1"}))
	require.NoError(t, m.Save(ctx, "A2", "R2", nil))

	assert.Equal(t, "A2", m.AccessToken())
	assert.Equal(t, "u1", m.Profile().ID)
}

func TestClear(t *testing.T) {
	m, _ := openTemp(t)
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, "A1", "R1", &wellnessrpc.Profile{ID: "u1"}))

	require.NoError(t, m.Clear(ctx))
	require.NoError(t, m.Clear(ctx))

	assert.False(t, m.SignedIn())
	assert.Nil(t, m.Profile())
	refresh, err := m.RefreshToken()
	require.NoError(t, err)
	assert.Empty(t, refresh)
}

func TestSubscribe(t *testing.T) {
	m, _ := openTemp(t)
	ctx := context.Background()

	var got []State
	unsubscribe := m.Subscribe(func(s State) { got = append(got, s) })

	require.NoError(t, m.Save(ctx, "A1", "R1", &wellnessrpc.Profile{ID: "u1"}))
	require.NoError(t, m.Clear(ctx))
	unsubscribe()
	unsubscribe()
	require.NoError(t, m.Save(ctx, "A2", "R2", nil))

	require.Len(t, got, 2)
	assert.True(t, got[0].SignedIn)
	assert.Equal(t, "u1", got[0].Profile.ID)
	assert.False(t, got[1].SignedIn)
}

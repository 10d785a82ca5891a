package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/auth"
)

var alice = SignUpInput{Email: "  Alice@Example.com ", Password: "secret1", FullName: "Alice Doe", UserName: "Alice_1"}

func signUp(t *testing.T, h *harness, in SignUpInput) (string, *TokenPair) {
	t.Helper()
	h.expectTx(true)
	u, pair, err := h.svc.Auth.SignUp(context.Background(), in)
	require.NoError(t, err)
	return u.ID, pair
}

func TestSignUp_NormalizesAndIssuesTokens(t *testing.T) {
	h := newHarness(t, nil)

	h.expectTx(true)
	u, pair, err := h.svc.Auth.SignUp(context.Background(), alice)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "alice_1", u.UserName)
	assert.Equal(t, "Alice Doe", u.FullName)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	stored := h.store.tokens[pair.RefreshToken]
	require.NotNil(t, stored)
	assert.Equal(t, u.ID, stored.UserID)
	assert.True(t, stored.Expires.Equal(testNow.Add(2*time.Hour)))
}

func TestSignUp_Validation(t *testing.T) {
	h := newHarness(t, nil)

	tests := []struct {
		name string
		mod  func(in *SignUpInput)
	}{
		{"missing email", func(in *SignUpInput) { in.Email = " " }},
		{"email without at", func(in *SignUpInput) { in.Email = "alice.example.com" }},
		{"short password", func(in *SignUpInput) { in.Password = "12345" }},
		{"missing full name", func(in *SignUpInput) { in.FullName = "" }},
		{"short username", func(in *SignUpInput) { in.UserName = "ab" }},
		{"bad username chars", func(in *SignUpInput) { in.UserName = "al ice" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := alice
			tt.mod(&in)
			_, _, err := h.svc.Auth.SignUp(context.Background(), in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	h := newHarness(t, nil)
	signUp(t, h, alice)

	h.expectTx(false)
	dup := alice
	dup.UserName = "someone_else"
	_, _, err := h.svc.Auth.SignUp(context.Background(), dup)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSignUp_TokenStoreFailureRollsBack(t *testing.T) {
	h := newHarness(t, nil)
	h.store.fail["tokens.Create"] = errors.New("boom")

	h.expectTx(false)
	_, _, err := h.svc.Auth.SignUp(context.Background(), alice)
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestSignIn(t *testing.T) {
	h := newHarness(t, nil)
	id, _ := signUp(t, h, alice)

	u, pair, err := h.svc.Auth.SignIn(context.Background(), "ALICE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.NotEmpty(t, pair.RefreshToken)

	_, _, err = h.svc.Auth.SignIn(context.Background(), "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = h.svc.Auth.SignIn(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = h.svc.Auth.SignIn(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRefreshToken_RotatesOnce(t *testing.T) {
	h := newHarness(t, nil)
	id, pair := signUp(t, h, alice)

	h.expectTx(true)
	next, err := h.svc.Auth.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
	assert.Nil(t, h.store.tokens[pair.RefreshToken])
	assert.Equal(t, id, h.store.tokens[next.RefreshToken].UserID)

	_, err = h.svc.Auth.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Expired(t *testing.T) {
	h := newHarness(t, nil)
	_, pair := signUp(t, h, alice)

	h.now = testNow.Add(3 * time.Hour)
	_, err := h.svc.Auth.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_DeleteErrorRollsBack(t *testing.T) {
	h := newHarness(t, nil)
	_, pair := signUp(t, h, alice)
	h.store.fail["tokens.Delete"] = errors.New("boom")

	h.expectTx(false)
	_, err := h.svc.Auth.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorContains(t, err, "error deleting refresh token: boom")
}

func TestSignOut(t *testing.T) {
	h := newHarness(t, nil)
	id, pair := signUp(t, h, alice)
	bob := alice
	bob.Email, bob.UserName = "bob@example.com", "bob"
	bobID, _ := signUp(t, h, bob)

	assert.ErrorIs(t, h.svc.Auth.SignOut(context.Background(), bobID, pair.RefreshToken), common.ErrorUnauthorized)
	assert.NotNil(t, h.store.tokens[pair.RefreshToken])

	require.NoError(t, h.svc.Auth.SignOut(context.Background(), id, pair.RefreshToken))
	assert.Nil(t, h.store.tokens[pair.RefreshToken])

	assert.NoError(t, h.svc.Auth.SignOut(context.Background(), id, "unknown"))
}

func TestProfileLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	id, _ := signUp(t, h, alice)

	u, err := h.svc.Auth.UpdateProfile(context.Background(), id, " Alice Smith ", "ASmith")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", u.FullName)
	assert.Equal(t, "asmith", u.UserName)

	_, err = h.svc.Auth.UpdateProfile(context.Background(), id, "Alice", "x")
	assert.ErrorIs(t, err, common.ErrorValidation)

	got, err := h.svc.Auth.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "asmith", got.UserName)

	require.NoError(t, h.svc.Auth.DeleteAccount(context.Background(), id))
	_, err = h.svc.Auth.GetSession(context.Background(), id)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, h.store.tokens)
}

func TestPurgeExpiredTokens(t *testing.T) {
	h := newHarness(t, nil)
	signUp(t, h, alice)

	n, err := h.svc.Auth.PurgeExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	h.now = testNow.Add(3 * time.Hour)
	n, err = h.svc.Auth.PurgeExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

package refreshtokens

import (
	"context"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a token. Deleting a missing token is not an error; the
	// boolean reports whether anything was removed.
	Delete(ctx context.Context, token string) (bool, error)

	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

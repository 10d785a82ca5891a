package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/auth"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/config"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SignUpInput is what a new account is created from.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	UserName string
}

// AuthService handles accounts, sessions and profiles.
type AuthService struct {
	base
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAuthService(b base, cfg *config.Config) *AuthService {
	return &AuthService{
		base:                         b,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// SignUp creates the account and signs it in. A taken email or username
// yields common.ErrorAlreadyExists.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, *TokenPair, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, nil, err
	}
	fullName, userName, err := normalizeProfile(in.FullName, in.UserName)
	if err != nil {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	var (
		user *models.User
		pair *TokenPair
	)
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:        email,
			PasswordHash: hash,
			FullName:     fullName,
			UserName:     userName,
		})
		if err != nil {
			return err
		}
		pair, err = s.generateTokenPair(ctx, user.ID, tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// SignIn checks the credentials. Unknown emails and wrong passwords both
// yield common.ErrorUnauthorized after a comparable amount of work.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if password == "" {
		return nil, nil, invalid("password is required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnCompare(password)
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}
	if !ok {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// SignOut revokes a refresh token of the caller. Unknown tokens are ignored.
func (s *AuthService) SignOut(ctx context.Context, userID, refreshToken string) error {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.UserID != userID {
		return common.ErrorUnauthorized
	}
	if _, err := repo.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// RefreshToken validates a refresh token, rotates it transactionally and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired; a
// token consumed by a concurrent refresh yields ErrorUnauthorized.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		deleted, err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		if !deleted {
			return common.ErrorUnauthorized
		}
		pair, err = s.generateTokenPair(ctx, token.UserID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// GetSession returns the caller's current profile.
func (s *AuthService) GetSession(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID, fullName, userName string) (*models.User, error) {
	fullName, userName, err := normalizeProfile(fullName, userName)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).UpdateProfile(ctx, userID, fullName, userName)
}

// DeleteAccount removes the user; every owned row goes with it.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	return s.repomanager.Users(s.db).Delete(ctx, userID)
}

// PurgeExpiredTokens drops refresh tokens that can no longer be used.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, s.now())
}

func (s *AuthService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	expires := s.now().Add(s.refreshTokenValidityDuration)
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, expires); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

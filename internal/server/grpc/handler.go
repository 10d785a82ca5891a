package grpc

import (
	"context"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

var _ wellnessrpc.WellnessServiceServer = (*GRPCServer)(nil)

func toProfile(u *models.User) *wellnessrpc.Profile {
	return &wellnessrpc.Profile{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		UserName:    u.UserName,
		Points:      u.Points,
		Level:       string(ledger.LevelFor(u.Points)),
		NextLevelAt: ledger.NextLevelAt(u.Points),
		CreatedAt:   u.CreatedAt,
	}
}

func toAuthResponse(u *models.User, pair *services.TokenPair) *wellnessrpc.AuthResponse {
	res := &wellnessrpc.AuthResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
	if u != nil {
		res.Profile = toProfile(u)
	}
	return res
}

func (s *GRPCServer) Ping(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.PingResponse, error) {
	return &wellnessrpc.PingResponse{Status: "OK", Time: s.now().UTC()}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *wellnessrpc.SignUpRequest) (*wellnessrpc.AuthResponse, error) {
	s.logger.Info(ctx, "Registration request")

	u, pair, err := s.auth.SignUp(ctx, services.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		UserName: req.UserName,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return toAuthResponse(u, pair), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *wellnessrpc.SignInRequest) (*wellnessrpc.AuthResponse, error) {
	u, pair, err := s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(u, pair), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *wellnessrpc.SignOutRequest) (*wellnessrpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.SignOut(ctx, userID, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.Empty{}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *wellnessrpc.RefreshTokenRequest) (*wellnessrpc.AuthResponse, error) {
	pair, err := s.auth.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(nil, pair), nil
}

func (s *GRPCServer) GetSession(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.auth.GetSession(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProfile(u), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *wellnessrpc.UpdateProfileRequest) (*wellnessrpc.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.auth.UpdateProfile(ctx, userID, req.FullName, req.UserName)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProfile(u), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.DeleteAccount(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Account deleted", "user_id", userID)
	return &wellnessrpc.Empty{}, nil
}

func (s *GRPCServer) CompletePomodoro(ctx context.Context, req *wellnessrpc.CompletePomodoroRequest) (*wellnessrpc.CompletePomodoroResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.activities.CompletePomodoro(ctx, userID, req.Duration)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.CompletePomodoroResponse{
		SessionID:    res.Session.ID,
		PointsEarned: res.Session.PointsEarned,
		Points:       res.Points,
	}, nil
}

func (s *GRPCServer) SubmitGameScore(ctx context.Context, req *wellnessrpc.SubmitGameScoreRequest) (*wellnessrpc.SubmitGameScoreResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.activities.SubmitGameScore(ctx, userID, req.Score)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.SubmitGameScoreResponse{
		PointsEarned: res.Score.PointsEarned,
		Points:       res.Points,
		HighScore:    res.HighScore,
		NewHighScore: res.NewHighScore,
	}, nil
}

func (s *GRPCServer) SubmitFeedback(ctx context.Context, req *wellnessrpc.SubmitFeedbackRequest) (*wellnessrpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.activities.SubmitFeedback(ctx, userID, req.Rating, req.Feedback); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.Empty{}, nil
}

func (s *GRPCServer) ExportData(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.ExportResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.export.Export(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Export uploaded", "user_id", userID, "key", res.Key)
	return &wellnessrpc.ExportResponse{URL: res.URL, Key: res.Key, ExpiresAt: res.ExpiresAt}, nil
}

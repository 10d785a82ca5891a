package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/auth"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

type ctxKey string

// UserIDKey holds the authenticated user id in a request context.
const UserIDKey ctxKey = "userID"

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor tags every call with the caller's request id, or a new
// one, and logs its outcome.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := firstMetadata(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}
	ctx = logging.WithRequestID(ctx, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := s.now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "call", "method", info.FullMethod, "code", status.Code(err).String(), "duration", s.now().Sub(start))
	return resp, err
}

// accessTokenInterceptor requires a valid access token on every method that
// is not public and stores the user id under UserIDKey.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if wellnessrpc.IsPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.TokenExpiredMessage)
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	return handler(ctx, req)
}

func userIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(UserIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}

// toStatus maps service errors onto gRPC codes. Unexpected errors are logged
// and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case dbx.IsInvalidText(err):
		return status.Error(codes.InvalidArgument, "invalid input")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.RefreshTokenExpiredMessage)
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.TokenExpiredMessage)
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}


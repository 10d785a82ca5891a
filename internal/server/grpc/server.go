// Package grpc exposes the wellness services over gRPC: the server
// lifecycle, authentication and request-id interceptors, and one handler per
// WellnessService method.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

type GRPCServer struct {
	address    string
	auth       AuthService
	habits     HabitService
	moods      MoodService
	expenses   ExpenseService
	activities ActivityService
	dashboard  DashboardService
	export     ExportService
	logger     logging.Logger
	jwtSecret  []byte
	now        timex.Clock
}

func NewGRPCServer(a string, l logging.Logger, svc *services.Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		auth:       svc.Auth,
		habits:     svc.Habits,
		moods:      svc.Moods,
		expenses:   svc.Expenses,
		activities: svc.Activities,
		dashboard:  svc.Dashboard,
		export:     svc.Export,
		jwtSecret:  []byte(secretKey),
		now:        time.Now,
	}
}

// newServer builds the grpc.Server with interceptors and every service
// registered, ready to Serve.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.accessTokenInterceptor))

	wellnessrpc.RegisterWellnessServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(wellnessrpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/auth"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &services.Services{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &services.Services{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, srv.Run(ctx))
}

// dial serves s on an in-memory listener and returns a connected client.
func dial(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := s.newServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServer_EndToEnd(t *testing.T) {
	habits := &fakeHabits{toggle: &services.ToggleResult{Completed: true, Points: 10}}
	s := newTestServer("secret")
	s.habits = habits
	conn := dial(t, s)
	client := wellnessrpc.NewClient(conn)
	ctx := context.Background()

	var header metadata.MD
	pong, err := client.Ping(ctx, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)
	assert.NotEmpty(t, header.Get(common.RequestIDHeaderName))

	_, err = client.ToggleHabit(ctx, &wellnessrpc.ToggleHabitRequest{HabitID: "h1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken("u1", []byte("secret"), time.Hour)
	require.NoError(t, err)
	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token, common.RequestIDHeaderName, "req-7")

	header = nil
	res, err := client.ToggleHabit(authed, &wellnessrpc.ToggleHabitRequest{HabitID: "h1", TimeZone: "Europe/Riga"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, int64(10), res.Points)
	assert.Equal(t, []string{"u1", "h1", "Europe/Riga"}, habits.toggleArgs)
	assert.Equal(t, []string{"req-7"}, header.Get(common.RequestIDHeaderName))

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: wellnessrpc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Status)
}

package locator

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/facebridge/internal/platform/discovery"
)

var testService = Service{Name: "svc", Health: "test.v1.Health"}

func TestNewSelectsPolicy(t *testing.T) {
	tests := []struct {
		policy string
		wait   bool
	}{
		{policy: ""},
		{policy: "poll"},
		{policy: " WAIT ", wait: true},
	}
	for _, tt := range tests {
		got, err := New(tt.policy, Options{})
		if err != nil {
			t.Fatalf("New(%q): %v", tt.policy, err)
		}
		_, isWaiter := got.(*Waiter)
		_, isPoller := got.(*Poller)
		if isWaiter != tt.wait || isPoller == tt.wait {
			t.Fatalf("New(%q) = %T", tt.policy, got)
		}
	}

	if _, err := New("lookup", Options{}); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestPollerDefaults(t *testing.T) {
	p := NewPoller(Options{})
	if p.opts.Interval != time.Second {
		t.Fatalf("interval = %s, want 1s", p.opts.Interval)
	}
	if len(p.opts.DialOptions) == 0 {
		t.Fatal("expected default dial options")
	}
}

func TestPollerResolvesLateRegistration(t *testing.T) {
	dir := t.TempDir()
	var misses atomic.Int32
	p := NewPoller(Options{
		SocketDir: dir,
		Interval:  50 * time.Millisecond,
		Logf:      func(string, ...any) { misses.Add(1) },
	})

	go func() {
		time.Sleep(250 * time.Millisecond)
		startHealthServer(t, dir, grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := p.Locate(ctx, testService)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	defer conn.Close()
	if misses.Load() < 2 {
		t.Fatalf("expected retries to be logged, got %d log lines", misses.Load())
	}
}

func TestPollerWaitsForServing(t *testing.T) {
	dir := t.TempDir()
	setStatus := startHealthServer(t, dir, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	p := NewPoller(Options{SocketDir: dir, Interval: 50 * time.Millisecond})

	go func() {
		time.Sleep(200 * time.Millisecond)
		setStatus(grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := p.Locate(ctx, testService)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	_ = conn.Close()
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	p := NewPoller(Options{SocketDir: t.TempDir(), Interval: 20 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	conn, err := p.Locate(ctx, testService)
	if err == nil {
		_ = conn.Close()
		t.Fatal("expected error after context ends")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestWaiterResolvesLateRegistration(t *testing.T) {
	dir := t.TempDir()
	w := NewWaiter(Options{SocketDir: dir, Interval: 50 * time.Millisecond})

	go func() {
		time.Sleep(250 * time.Millisecond)
		startHealthServer(t, dir, grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := w.Locate(ctx, testService)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	_ = conn.Close()
}

func TestWaiterStopsOnContextCancel(t *testing.T) {
	w := NewWaiter(Options{SocketDir: t.TempDir()})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if conn, err := w.Locate(ctx, testService); err == nil {
		_ = conn.Close()
		t.Fatal("expected error after context ends")
	}
}

func TestFuncCallsDelegate(t *testing.T) {
	var got Service
	fn := Func(func(_ context.Context, service Service) (*gogrpc.ClientConn, error) {
		got = service
		return nil, nil
	})
	if _, err := fn.Locate(context.Background(), testService); err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != testService {
		t.Fatalf("service = %+v, want %+v", got, testService)
	}
}

func startHealthServer(t *testing.T, dir string, status grpc_health_v1.HealthCheckResponse_ServingStatus) func(grpc_health_v1.HealthCheckResponse_ServingStatus) {
	t.Helper()

	listener, err := net.Listen("unix", filepath.Join(dir, testService.Name+".sock"))
	if err != nil {
		t.Errorf("listen: %v", err)
		return func(grpc_health_v1.HealthCheckResponse_ServingStatus) {}
	}
	if listener.Addr().String() != discovery.SocketPath(dir, testService.Name) {
		t.Errorf("listener path %s does not match registry path", listener.Addr())
	}

	server := gogrpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(testService.Health, status)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	return func(next grpc_health_v1.HealthCheckResponse_ServingStatus) {
		healthServer.SetServingStatus(testService.Health, next)
	}
}

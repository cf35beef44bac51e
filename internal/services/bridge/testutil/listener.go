package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
)

// ListenerServer is a client-side callback server that records every event
// relayed to it.
type ListenerServer struct {
	facev1.UnimplementedBiometricsFaceClientCallbackServer

	mu     sync.Mutex
	events []any
	notify chan struct{}
}

// StartListener serves a ListenerServer under name in dir and returns it with
// its dial target.
func StartListener(t *testing.T, dir, name string) (*ListenerServer, string) {
	t.Helper()

	server := &ListenerServer{notify: make(chan struct{}, 64)}
	listener := Listen(t, dir, name)
	grpcServer := gogrpc.NewServer()
	facev1.RegisterBiometricsFaceClientCallbackServer(grpcServer, server)
	go func() { _ = grpcServer.Serve(listener) }()
	t.Cleanup(grpcServer.Stop)
	return server, discovery.Target(dir, name)
}

// Events returns a copy of the received events in arrival order.
func (s *ListenerServer) Events() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.events...)
}

// WaitForEvents blocks until n events arrived or timeout passes.
func (s *ListenerServer) WaitForEvents(n int, timeout time.Duration) []any {
	deadline := time.After(timeout)
	for {
		if events := s.Events(); len(events) >= n {
			return events
		}
		select {
		case <-s.notify:
		case <-deadline:
			return s.Events()
		}
	}
}

func (s *ListenerServer) add(event any) (*facev1.Empty, error) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return &facev1.Empty{}, nil
}

func (s *ListenerServer) OnEnrollResult(_ context.Context, in *facev1.EnrollResultEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnAuthenticated(_ context.Context, in *facev1.AuthenticatedEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnAcquired(_ context.Context, in *facev1.AcquiredEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnError(_ context.Context, in *facev1.ErrorEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnRemoved(_ context.Context, in *facev1.RemovedEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnEnumerate(_ context.Context, in *facev1.EnumerateEvent) (*facev1.Empty, error) {
	return s.add(in)
}

func (s *ListenerServer) OnLockoutChanged(_ context.Context, in *facev1.LockoutChangedEvent) (*facev1.Empty, error) {
	return s.add(in)
}

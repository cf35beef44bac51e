// Package server wires the face bridge runtime: backend resolution, the
// callback endpoint, the client-facing gRPC API, and their lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/facebridge/internal/platform/grpc"
	"github.com/louisbranch/facebridge/internal/platform/timeouts"
	"github.com/louisbranch/facebridge/internal/services/bridge/adapter"
	faceservice "github.com/louisbranch/facebridge/internal/services/bridge/api/grpc/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/integration/facehal"
	"github.com/louisbranch/facebridge/internal/services/bridge/locator"
)

const tracerName = "github.com/louisbranch/facebridge/internal/services/bridge"

// DefaultWorkers is the number of goroutines serving inbound calls per server.
const DefaultWorkers = 4

// ErrServeTerminated indicates a serve loop returned without a shutdown request.
var ErrServeTerminated = errors.New("serve loop terminated")

// Options configures a bridge server.
type Options struct {
	SocketDir string
	Workers   int
	// Locator resolves the backend. Nil selects the polling locator.
	Locator locator.Locator
	Tracer  trace.Tracer
	Logf    func(string, ...any)
}

// Server hosts the bridge and callback gRPC servers.
type Server struct {
	backend *grpc.ClientConn

	bridgeListener net.Listener
	bridgeServer   *grpc.Server
	health         *health.Server
	faceService    *faceservice.Service

	callbackListener net.Listener
	callbackServer   *grpc.Server
	callbackHealth   *health.Server

	logf      func(string, ...any)
	closeOnce sync.Once
}

// New resolves the backend and registers the bridge. It blocks until the
// backend is reachable or ctx ends; no backend call is made before that.
func New(ctx context.Context, opts Options) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	loc := opts.Locator
	if loc == nil {
		loc = locator.NewPoller(locator.Options{SocketDir: opts.SocketDir, Logf: logf})
	}

	backendConn, err := loc.Locate(ctx, facehal.Service)
	if err != nil {
		return nil, fmt.Errorf("resolve backend: %w", err)
	}
	logf("backend %s resolved", facehal.Service.Name)

	s := &Server{backend: backendConn, logf: logf}

	callbackName := discovery.CallbackService(discovery.ServiceBiometricsFace)
	callbackListener, err := discovery.Register(opts.SocketDir, callbackName)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open callback endpoint: %w", err)
	}
	s.callbackListener = callbackListener
	endpoint := facehal.NewCallbackEndpoint(discovery.Target(opts.SocketDir, callbackName), logf)
	s.callbackServer = grpc.NewServer(platformgrpc.DefaultServerOptions(workers)...)
	s.callbackHealth = health.NewServer()
	facehalv1.RegisterFaceHalServiceCallbackServer(s.callbackServer, endpoint)
	grpc_health_v1.RegisterHealthServer(s.callbackServer, s.callbackHealth)
	s.callbackHealth.SetServingStatus(facehalv1.FaceHalServiceCallback_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	faceAdapter, err := adapter.New(facehal.NewClient(backendConn, endpoint), tracer, logf)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("bind adapter: %w", err)
	}
	s.faceService = faceservice.NewService(faceAdapter, logf, platformgrpc.DefaultClientDialOptions()...)

	bridgeListener, err := discovery.Register(opts.SocketDir, discovery.ServiceBiometricsFace)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("register %s: %w", discovery.ServiceBiometricsFace, err)
	}
	s.bridgeListener = bridgeListener
	s.bridgeServer = grpc.NewServer(platformgrpc.DefaultServerOptions(workers)...)
	s.health = health.NewServer()
	facev1.RegisterBiometricsFaceServer(s.bridgeServer, s.faceService)
	grpc_health_v1.RegisterHealthServer(s.bridgeServer, s.health)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(facev1.BiometricsFace_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return s, nil
}

// Run creates and serves a bridge server until context cancellation.
// Cancellation while the backend is still being resolved is a clean stop.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	server, err := New(ctx, opts)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil && errors.Is(err, cerr) {
			return nil
		}
		return err
	}
	return server.Serve(ctx)
}

// Addr returns the bridge socket address.
func (s *Server) Addr() string {
	if s == nil || s.bridgeListener == nil {
		return ""
	}
	return s.bridgeListener.Addr().String()
}

// Serve runs both gRPC servers until ctx ends. It returns ErrServeTerminated
// when a serve loop exits on its own.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logf("face bridge listening at %v", s.bridgeListener.Addr())
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(s.serveLoop(ctx, "bridge", s.bridgeServer, s.bridgeListener))
	group.Go(s.serveLoop(ctx, "callback", s.callbackServer, s.callbackListener))
	group.Go(func() error {
		<-groupCtx.Done()
		s.stop()
		return nil
	})
	return group.Wait()
}

func (s *Server) serveLoop(ctx context.Context, name string, srv *grpc.Server, listener net.Listener) func() error {
	return func() error {
		err := srv.Serve(listener)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve %s: %w", name, ErrServeTerminated)
		}
		return fmt.Errorf("serve %s: %w: %w", name, ErrServeTerminated, err)
	}
}

func (s *Server) stop() {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.callbackHealth != nil {
		s.callbackHealth.Shutdown()
	}
	var wg sync.WaitGroup
	for _, srv := range []*grpc.Server{s.bridgeServer, s.callbackServer} {
		if srv == nil {
			continue
		}
		wg.Add(1)
		go func(srv *grpc.Server) {
			defer wg.Done()
			gracefulStop(srv, timeouts.Shutdown)
		}(srv)
	}
	wg.Wait()
}

// Close releases bridge server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		if s.callbackHealth != nil {
			s.callbackHealth.Shutdown()
		}
		if s.bridgeServer != nil {
			s.bridgeServer.Stop()
		}
		if s.callbackServer != nil {
			s.callbackServer.Stop()
		}
		if s.bridgeListener != nil {
			_ = s.bridgeListener.Close()
		}
		if s.callbackListener != nil {
			_ = s.callbackListener.Close()
		}
		if s.faceService != nil {
			if err := s.faceService.Close(); err != nil {
				s.logf("close listener connection: %v", err)
			}
		}
		if s.backend != nil {
			if err := s.backend.Close(); err != nil {
				s.logf("close backend connection: %v", err)
			}
		}
	})
}

func gracefulStop(srv *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		srv.Stop()
	}
}

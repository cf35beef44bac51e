package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dialer creates client connections for the helpers in this package.
type Dialer interface {
	NewClient(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)
}

// DialerFunc adapts a client constructor to the Dialer interface.
type DialerFunc func(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

// NewClient implements Dialer for DialerFunc.
func (fn DialerFunc) NewClient(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	return fn(target, opts...)
}

// DialStage describes where a dial attempt failed.
type DialStage string

const (
	// DialStageConnect indicates the client connection could not be created.
	DialStageConnect DialStage = "connect"
	// DialStageHealth indicates the health check failed.
	DialStageHealth DialStage = "health"
)

// DialError wraps dial and health check failures with a stage indicator.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultClientDialOptions returns the dial options for local socket peers.
// Includes OTel gRPC instrumentation so every outbound call propagates trace
// context when a TracerProvider is registered.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// DefaultServerOptions returns the server options for local socket services.
// workers fixes the number of goroutines serving inbound calls; zero leaves
// the gRPC default of one goroutine per stream.
func DefaultServerOptions(workers int) []gogrpc.ServerOption {
	opts := []gogrpc.ServerOption{
		gogrpc.StatsHandler(otelgrpc.NewServerHandler()),
	}
	if workers > 0 {
		opts = append(opts, gogrpc.NumStreamWorkers(uint32(workers)))
	}
	return opts
}

// DialWithHealth connects to target and blocks until service reports SERVING
// or ctx ends. It closes the connection if the health wait fails.
func DialWithHealth(ctx context.Context, dialer Dialer, target, service string, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := newClient(dialer, target, opts...)
	if err != nil {
		return nil, err
	}
	if err := WaitForHealth(ctx, conn, service, logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}

// CheckOnceWithHealth makes a single attempt to reach service at target. It
// returns a connection only when one health check reports SERVING within
// timeout.
func CheckOnceWithHealth(ctx context.Context, dialer Dialer, target, service string, timeout time.Duration, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := newClient(dialer, target, opts...)
	if err != nil {
		return nil, err
	}
	if err := CheckHealth(ctx, conn, service, timeout); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}

func newClient(dialer Dialer, target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if dialer == nil {
		dialer = DialerFunc(gogrpc.NewClient)
	}
	conn, err := dialer.NewClient(target, opts...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	if conn == nil {
		return nil, &DialError{Stage: DialStageConnect, Err: fmt.Errorf("dialer returned no connection for %s", target)}
	}
	return conn, nil
}

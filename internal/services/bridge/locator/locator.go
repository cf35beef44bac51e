// Package locator resolves a live connection to a registered backend before
// the bridge starts serving.
package locator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	gogrpc "google.golang.org/grpc"
	grpcbackoff "google.golang.org/grpc/backoff"

	"github.com/louisbranch/facebridge/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/facebridge/internal/platform/grpc"
	"github.com/louisbranch/facebridge/internal/platform/timeouts"
)

const (
	// PolicyPoll retries a single non-blocking lookup at a fixed interval.
	PolicyPoll = "poll"
	// PolicyWait blocks on the health wait primitive.
	PolicyWait = "wait"
)

// ErrUnknownPolicy indicates an unsupported locator policy name.
var ErrUnknownPolicy = errors.New("unknown locator policy")

// Service names a registered service and the gRPC health name it reports.
type Service struct {
	Name   string
	Health string
}

// Locator returns a live connection to service. It does not return until a
// connection exists or ctx ends.
type Locator interface {
	Locate(ctx context.Context, service Service) (*gogrpc.ClientConn, error)
}

// Func adapts a function to the Locator interface.
type Func func(ctx context.Context, service Service) (*gogrpc.ClientConn, error)

// Locate implements Locator for Func.
func (fn Func) Locate(ctx context.Context, service Service) (*gogrpc.ClientConn, error) {
	return fn(ctx, service)
}

// Options configures a locator.
type Options struct {
	SocketDir   string
	Interval    time.Duration
	Dialer      platformgrpc.Dialer
	DialOptions []gogrpc.DialOption
	Logf        func(string, ...any)
}

// New returns the locator for policy. An empty policy selects PolicyPoll.
func New(policy string, opts Options) (Locator, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyPoll:
		return NewPoller(opts), nil
	case PolicyWait:
		return NewWaiter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// Poller checks for the service once per interval and retries without limit.
type Poller struct {
	opts Options
}

// NewPoller creates a polling locator.
func NewPoller(opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = timeouts.LocatorRetry
	}
	if len(opts.DialOptions) == 0 {
		opts.DialOptions = platformgrpc.DefaultClientDialOptions()
	}
	return &Poller{opts: opts}
}

// Locate implements Locator.
func (p *Poller) Locate(ctx context.Context, service Service) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path := discovery.SocketPath(p.opts.SocketDir, service.Name)
	target := discovery.Target(p.opts.SocketDir, service.Name)

	var conn *gogrpc.ClientConn
	attempt := 0
	operation := func() error {
		attempt++
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("service %s is not registered: %w", service.Name, err)
		}
		checked, err := platformgrpc.CheckOnceWithHealth(ctx, p.opts.Dialer, target, service.Health, timeouts.HealthAttempt, p.opts.DialOptions...)
		if err != nil {
			return err
		}
		conn = checked
		return nil
	}
	notify := func(err error, wait time.Duration) {
		logf(p.opts.Logf, "service %s not available (attempt %d), retrying in %s: %v", service.Name, attempt, wait, err)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(backoff.NewConstantBackOff(p.opts.Interval), ctx), notify); err != nil {
		return nil, fmt.Errorf("locate %s: %w", service.Name, err)
	}
	logf(p.opts.Logf, "service %s resolved after %d attempt(s)", service.Name, attempt)
	return conn, nil
}

// Waiter dials the service once and blocks until its health reports SERVING.
type Waiter struct {
	opts Options
}

// NewWaiter creates a blocking locator.
func NewWaiter(opts Options) *Waiter {
	if opts.Interval <= 0 {
		opts.Interval = timeouts.LocatorRetry
	}
	if len(opts.DialOptions) == 0 {
		opts.DialOptions = platformgrpc.DefaultClientDialOptions()
	}
	// Reconnect at a fixed pace so a late registration is noticed promptly.
	opts.DialOptions = append(opts.DialOptions, gogrpc.WithConnectParams(gogrpc.ConnectParams{
		Backoff: grpcbackoff.Config{
			BaseDelay:  opts.Interval,
			Multiplier: 1,
			MaxDelay:   opts.Interval,
		},
		MinConnectTimeout: timeouts.HealthAttempt,
	}))
	return &Waiter{opts: opts}
}

// Locate implements Locator.
func (w *Waiter) Locate(ctx context.Context, service Service) (*gogrpc.ClientConn, error) {
	target := discovery.Target(w.opts.SocketDir, service.Name)
	logf(w.opts.Logf, "waiting for service %s at %s", service.Name, target)
	conn, err := platformgrpc.DialWithHealth(ctx, w.opts.Dialer, target, service.Health, w.opts.Logf, w.opts.DialOptions...)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", service.Name, err)
	}
	return conn, nil
}

func logf(fn func(string, ...any), format string, args ...any) {
	if fn != nil {
		fn(format, args...)
	}
}

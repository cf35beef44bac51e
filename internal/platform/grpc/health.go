// Package grpc holds the gRPC client and server plumbing shared by the
// bridge: dial options, health waits, and single-shot health checks.
package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Health waits retry from 200ms, doubling up to 1s between checks.
const (
	healthRetryInitial = 200 * time.Millisecond
	healthRetryMax     = time.Second
)

func healthBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = healthRetryInitial
	b.MaxInterval = healthRetryMax
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return b
}

// WaitForHealth blocks until the gRPC health check reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	check := func() error {
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		if err != nil {
			return err
		}
		if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			return fmt.Errorf("status %s", response.GetStatus().String())
		}
		return nil
	}
	notify := func(err error, next time.Duration) {
		if logf != nil {
			logf("waiting for gRPC health of %q: %v (retry in %s)", service, err, next)
		}
	}

	if err := backoff.RetryNotify(check, backoff.WithContext(healthBackOff(), ctx), notify); err != nil {
		return fmt.Errorf("wait for gRPC health: %w", err)
	}
	if logf != nil {
		logf("gRPC health check for %q is SERVING", service)
	}
	return nil
}

// CheckHealth performs one health check and fails unless it reports SERVING.
func CheckHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, timeout time.Duration) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	response, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return fmt.Errorf("check gRPC health: %w", err)
	}
	if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("check gRPC health: status %s", response.GetStatus().String())
	}
	return nil
}

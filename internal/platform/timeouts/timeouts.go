// Package timeouts defines shared timeout constants used across the bridge.
package timeouts

import "time"

// HealthAttempt caps a single health check made while resolving a service.
const HealthAttempt = time.Second

// LocatorRetry is the fixed wait between backend resolution attempts.
const LocatorRetry = time.Second

// SocketLiveness caps the liveness dial of an existing socket file at registration.
const SocketLiveness = 200 * time.Millisecond

// Shutdown limits how long a gRPC server waits for in-flight calls to drain.
const Shutdown = 5 * time.Second

// Package errors provides structured bridge errors that carry a machine
// readable code across the gRPC boundary.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeBackendUnbound means no backend service is attached to the adapter.
	CodeBackendUnbound Code = "BACKEND_UNBOUND"
	// CodeBackendUnavailable means a backend call failed at the transport level.
	CodeBackendUnavailable Code = "BACKEND_UNAVAILABLE"
	// CodeListenerUnreachable means the listener target could not be dialed.
	CodeListenerUnreachable Code = "LISTENER_UNREACHABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeBackendUnbound:
		return codes.FailedPrecondition
	case CodeBackendUnavailable, CodeListenerUnreachable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

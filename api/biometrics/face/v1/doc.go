// Package facev1 declares the client-facing biometric face contract: the
// legacy operation set served by the bridge and the listener callback clients
// host to receive events. Every operation reports an outcome status in its
// response body; gRPC errors are reserved for transport failures.
package facev1

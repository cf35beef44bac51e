// Package discovery centralizes the local service registry conventions: each
// named service is a Unix domain socket inside a shared socket directory.
package discovery

import (
	"path/filepath"
	"strings"
)

const (
	// ServiceFaceHal is the backend face HAL service identity.
	ServiceFaceHal = "faceunlockhal"
	// ServiceBiometricsFace is the client-facing bridge service identity.
	ServiceBiometricsFace = "biometricsface"
)

// DefaultSocketDir is the registry directory used when none is configured.
const DefaultSocketDir = "/dev/socket/facebridge"

const (
	socketSuffix   = ".sock"
	callbackSuffix = ".callback"
)

// SocketPath returns the socket file a service is registered under.
func SocketPath(dir, service string) string {
	return filepath.Join(OrDefaultSocketDir(dir), strings.TrimSpace(service)+socketSuffix)
}

// Target returns the gRPC dial target for a registered service.
func Target(dir, service string) string {
	path := SocketPath(dir, service)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return "unix://" + path
}

// CallbackService returns the private service name an endpoint uses to
// receive callbacks on behalf of service.
func CallbackService(service string) string {
	return strings.TrimSpace(service) + callbackSuffix
}

// OrDefaultSocketDir returns dir when set, otherwise DefaultSocketDir.
func OrDefaultSocketDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		return dir
	}
	return DefaultSocketDir
}

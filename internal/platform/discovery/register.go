package discovery

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/louisbranch/facebridge/internal/platform/timeouts"
)

// ErrServiceRegistered reports that a live process already owns the service name.
var ErrServiceRegistered = errors.New("service already registered")

// Register claims service in dir and returns a listener for it. A socket
// file left behind by a dead process is replaced; a live one is an error.
func Register(dir, service string) (net.Listener, error) {
	path := SocketPath(dir, service)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		if conn, dialErr := net.DialTimeout("unix", path, timeouts.SocketLiveness); dialErr == nil {
			_ = conn.Close()
			return nil, fmt.Errorf("register %s: %w", service, ErrServiceRegistered)
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove stale socket %s: %w", path, err)
		}
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", service, err)
	}
	return listener, nil
}

package discovery

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSocketPath(t *testing.T) {
	cases := map[string]string{
		ServiceFaceHal:        "/run/fb/faceunlockhal.sock",
		ServiceBiometricsFace: "/run/fb/biometricsface.sock",
	}
	for service, want := range cases {
		if got := SocketPath("/run/fb", service); got != want {
			t.Fatalf("SocketPath(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestSocketPathDefaultsDir(t *testing.T) {
	want := filepath.Join(DefaultSocketDir, "faceunlockhal.sock")
	if got := SocketPath(" ", ServiceFaceHal); got != want {
		t.Fatalf("SocketPath = %q, want %q", got, want)
	}
}

func TestTargetIsAbsoluteUnixURI(t *testing.T) {
	got := Target("relative/dir", ServiceFaceHal)
	if !strings.HasPrefix(got, "unix:///") {
		t.Fatalf("expected absolute unix target, got %q", got)
	}
	if !strings.HasSuffix(got, "relative/dir/faceunlockhal.sock") {
		t.Fatalf("unexpected target %q", got)
	}
}

func TestCallbackService(t *testing.T) {
	if got := CallbackService(ServiceBiometricsFace); got != "biometricsface.callback" {
		t.Fatalf("CallbackService = %q", got)
	}
}

func TestRegisterCreatesSocket(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sockets")
	listener, err := Register(dir, ServiceFaceHal)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	defer listener.Close()

	if _, err := os.Stat(SocketPath(dir, ServiceFaceHal)); err != nil {
		t.Fatalf("expected socket file: %v", err)
	}
}

func TestRegisterRejectsLiveOwner(t *testing.T) {
	dir := t.TempDir()
	first, err := Register(dir, ServiceFaceHal)
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	defer first.Close()
	go func() {
		for {
			conn, err := first.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	_, err = Register(dir, ServiceFaceHal)
	if !errors.Is(err, ErrServiceRegistered) {
		t.Fatalf("err = %v, want ErrServiceRegistered", err)
	}
}

func TestRegisterReplacesStaleSocket(t *testing.T) {
	dir := t.TempDir()
	path := SocketPath(dir, ServiceFaceHal)
	stale, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	// Keep the file on close so it looks like a crashed owner.
	stale.(*net.UnixListener).SetUnlinkOnClose(false)
	_ = stale.Close()

	listener, err := Register(dir, ServiceFaceHal)
	if err != nil {
		t.Fatalf("register over stale socket: %v", err)
	}
	_ = listener.Close()
}

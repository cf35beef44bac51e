package facectl

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
	server "github.com/louisbranch/facebridge/internal/services/bridge/app"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
	"github.com/louisbranch/facebridge/internal/services/bridge/testutil"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("facectl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"cancel"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %s", cfg.Timeout)
	}
	if cfg.Name != "facectl" {
		t.Fatalf("expected default name facectl, got %q", cfg.Name)
	}
	if cfg.Op != "cancel" || len(cfg.Args) != 0 {
		t.Fatalf("expected cancel with no args, got %q %v", cfg.Op, cfg.Args)
	}
}

func TestParseConfigOperationArgs(t *testing.T) {
	t.Setenv("FACEBRIDGE_SOCKET_DIR", "/tmp/env-sockets")

	fs := flag.NewFlagSet("facectl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-timeout", "2s", "enroll", "aa", "30", "1,2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SocketDir != "/tmp/env-sockets" {
		t.Fatalf("expected env socket dir, got %q", cfg.SocketDir)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected timeout 2s, got %s", cfg.Timeout)
	}
	if !reflect.DeepEqual(cfg.Args, []string{"aa", "30", "1,2"}) {
		t.Fatalf("args = %v", cfg.Args)
	}
}

func TestParseConfigRejectsMissingAndUnknownOperations(t *testing.T) {
	if _, err := ParseConfig(flag.NewFlagSet("facectl", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected error for missing operation")
	}
	_, err := ParseConfig(flag.NewFlagSet("facectl", flag.ContinueOnError), []string{"explode"})
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestOperationsIncludesListen(t *testing.T) {
	names := Operations()
	if len(names) != len(operations)+1 {
		t.Fatalf("operations = %v", names)
	}
	found := false
	for _, name := range names {
		if name == OpListen {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q in %v", OpListen, names)
	}
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		raw  string
		want []int32
	}{
		{raw: "", want: nil},
		{raw: "-", want: nil},
		{raw: "1", want: []int32{1}},
		{raw: "1, 2", want: []int32{1, 2}},
	}
	for _, tc := range tests {
		got, err := parseFeatures(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parse %q = %v, want %v", tc.raw, got, tc.want)
		}
	}
	if _, err := parseFeatures("1,x"); err == nil {
		t.Fatal("expected error for non-numeric feature")
	}
}

func startStack(t *testing.T) (string, *testutil.FakeHAL) {
	t.Helper()

	dir := t.TempDir()
	fake := testutil.StartFakeHAL(t, dir)
	srv, err := server.New(context.Background(), server.Options{SocketDir: dir, Logf: t.Logf})
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return dir, fake
}

func TestRunOperations(t *testing.T) {
	dir, fake := startStack(t)
	fake.SetResult("Enroll", hal.ResultNotEnrolled)
	fake.SetValues(-1, true, 77)

	tests := []struct {
		op   string
		args []string
		want string
	}{
		{op: "enroll", args: []string{"aa", "30", "1"}, want: "enroll: status=NOT_ENROLLED\n"},
		{op: "generate-challenge", args: []string{"600"}, want: "generate-challenge: status=OK value=18446744073709551615\n"},
		{op: "get-feature", args: []string{"1", "0"}, want: "get-feature: status=OK value=true\n"},
		{op: "get-authenticator-id", want: "get-authenticator-id: status=OK value=77\n"},
		{op: "remove", args: []string{"0"}, want: "remove: status=OK\n"},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		err := Run(context.Background(), Config{SocketDir: dir, Timeout: 5 * time.Second, Op: tc.op, Args: tc.args}, &out)
		if err != nil {
			t.Fatalf("%s: %v", tc.op, err)
		}
		if out.String() != tc.want {
			t.Fatalf("%s output = %q, want %q", tc.op, out.String(), tc.want)
		}
	}

	call, ok := fake.LastCall("Enroll")
	if !ok {
		t.Fatal("expected enroll call")
	}
	if req := call.Request.(*facehalv1.EnrollRequest); !reflect.DeepEqual(req.Token, []byte{0xAA}) {
		t.Fatalf("enroll token = %x", req.Token)
	}
}

func TestRunRejectsWrongArgumentCount(t *testing.T) {
	err := Run(context.Background(), Config{SocketDir: t.TempDir(), Op: "remove"}, nil)
	if err == nil || !strings.Contains(err.Error(), "expects 1 argument") {
		t.Fatalf("expected argument count error, got %v", err)
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitForOutput(t *testing.T, out *lockedBuffer, substr string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), substr) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %q in output %q", substr, out.String())
}

func TestListenPrintsRelayedEvents(t *testing.T) {
	dir, fake := startStack(t)
	fake.SetDeviceID(9)

	ctx, cancel := context.WithCancel(context.Background())
	out := &lockedBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{SocketDir: dir, Timeout: 5 * time.Second, Name: "facectl-test", Op: OpListen}, out)
	}()

	waitForOutput(t, out, "listening device=9")
	if err := fake.EmitAcquired(context.Background(), &facehalv1.AcquiredEvent{DeviceId: 9, UserId: 2, AcquiredInfo: 3}); err != nil {
		t.Fatalf("emit acquired: %v", err)
	}
	waitForOutput(t, out, "acquired device=9 user=2 info=TOO_DARK vendor=0")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for listen to return")
	}
}

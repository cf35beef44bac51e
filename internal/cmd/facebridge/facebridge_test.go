package facebridge

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/facebridge/internal/services/bridge/locator"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("facebridge", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected default workers 4, got %d", cfg.Workers)
	}
	if cfg.Locator != locator.PolicyPoll {
		t.Fatalf("expected default locator poll, got %q", cfg.Locator)
	}
	if cfg.RetryInterval != time.Second {
		t.Fatalf("expected default retry interval 1s, got %s", cfg.RetryInterval)
	}
	if cfg.SocketDir != "" {
		t.Fatalf("expected empty socket dir, got %q", cfg.SocketDir)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("FACEBRIDGE_SOCKET_DIR", "/tmp/env-sockets")
	t.Setenv("FACEBRIDGE_LOCATOR", "wait")

	fs := flag.NewFlagSet("facebridge", flag.ContinueOnError)
	args := []string{"-socket-dir", "/tmp/flag-sockets", "-workers", "8", "-retry-interval", "250ms"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SocketDir != "/tmp/flag-sockets" {
		t.Fatalf("expected flag socket dir, got %q", cfg.SocketDir)
	}
	if cfg.Locator != locator.PolicyWait {
		t.Fatalf("expected env locator wait, got %q", cfg.Locator)
	}
	if cfg.Workers != 8 {
		t.Fatalf("expected workers 8, got %d", cfg.Workers)
	}
	if cfg.RetryInterval != 250*time.Millisecond {
		t.Fatalf("expected retry interval 250ms, got %s", cfg.RetryInterval)
	}
}

func TestParseConfigRejectsNonPositiveWorkers(t *testing.T) {
	fs := flag.NewFlagSet("facebridge", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-workers", "0"}); err == nil {
		t.Fatal("expected error for zero workers")
	}
}

func TestRunRejectsUnknownLocator(t *testing.T) {
	err := Run(context.Background(), Config{Locator: "spin", Workers: 1})
	if !errors.Is(err, locator.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

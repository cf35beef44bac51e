package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	SocketDir string `env:"CMD_TEST_SOCKET_DIR" envDefault:"/dev/socket/test"`
	Mode      string `env:"CMD_TEST_MODE" envDefault:"poll"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("FACEBRIDGE_CMD_TEST_SOCKET_DIR", "/tmp/env")
	t.Setenv("FACEBRIDGE_CMD_TEST_MODE", "wait")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.SocketDir, "socket-dir", cfgRef.SocketDir, "socket dir")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-socket-dir", "/tmp/flag"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.SocketDir != "/tmp/flag" {
		t.Fatalf("expected flag value for socket dir, got %q", cfgRef.SocketDir)
	}
	if cfgRef.Mode != "wait" {
		t.Fatalf("expected env mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestLogPrefix(t *testing.T) {
	if got := LogPrefix(ServiceBridge); got != "[FACEBRIDGE] " {
		t.Fatalf("LogPrefix = %q, want [FACEBRIDGE] ", got)
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceBridge, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("FACEBRIDGE_OTEL_ENDPOINT", "")
	want := errors.New("serve stopped")
	err := RunWithTelemetry(context.Background(), ServiceBridge, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

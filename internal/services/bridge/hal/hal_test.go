package hal

import (
	"errors"
	"strings"
	"testing"
)

func TestTransportErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "Enroll", Err: cause}
	if !strings.Contains(err.Error(), "Enroll") || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("unexpected error text: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}

	var nilErr *TransportError
	if nilErr.Error() == "" {
		t.Fatal("expected fallback error message")
	}
	if nilErr.Unwrap() != nil {
		t.Fatal("expected nil unwrap for nil error")
	}
}

func TestTransportErrorAs(t *testing.T) {
	var err error = &TransportError{Op: "Cancel", Err: ErrBackendUnbound}
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if transportErr.Op != "Cancel" {
		t.Fatalf("op = %q, want Cancel", transportErr.Op)
	}
	if !errors.Is(err, ErrBackendUnbound) {
		t.Fatal("expected unbound sentinel to be preserved")
	}
}

package errors

import (
	stderrors "errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{code: CodeBackendUnbound, want: codes.FailedPrecondition},
		{code: CodeBackendUnavailable, want: codes.Unavailable},
		{code: CodeListenerUnreachable, want: codes.Unavailable},
		{code: CodeUnknown, want: codes.Unknown},
		{code: Code("SOMETHING_ELSE"), want: codes.Unknown},
	}
	for _, tc := range tests {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("%s.GRPCCode() = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(CodeBackendUnavailable, "cancel: connection refused", cause)

	if !stderrors.Is(err, New(CodeBackendUnavailable, "")) {
		t.Fatal("expected match by code")
	}
	if stderrors.Is(err, New(CodeBackendUnbound, "")) {
		t.Fatal("expected no match for a different code")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
}

func TestToGRPCStatusCarriesReason(t *testing.T) {
	err := WrapWithMetadata(CodeBackendUnavailable, "enroll failed", map[string]string{"op": "Enroll"}, nil).ToGRPCStatus()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status, got %v", err)
	}
	if st.Code() != codes.Unavailable {
		t.Fatalf("code = %s, want Unavailable", st.Code())
	}
	if st.Message() != "enroll failed" {
		t.Fatalf("message = %q", st.Message())
	}
	if got := ReasonOf(err); got != CodeBackendUnavailable {
		t.Fatalf("reason = %s, want %s", got, CodeBackendUnavailable)
	}
}

func TestToGRPCStatusOverride(t *testing.T) {
	err := &Error{Code: CodeBackendUnavailable, Message: "deadline", GRPCCode: codes.DeadlineExceeded}
	if code := status.Code(err.ToGRPCStatus()); code != codes.DeadlineExceeded {
		t.Fatalf("code = %s, want DeadlineExceeded", code)
	}
}

func TestReasonOfPlainErrors(t *testing.T) {
	if got := ReasonOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("reason = %s, want UNKNOWN", got)
	}
	if got := ReasonOf(status.Error(codes.Internal, "no details")); got != CodeUnknown {
		t.Fatalf("reason = %s, want UNKNOWN", got)
	}
}

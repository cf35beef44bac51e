package face

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusIllegalArgument, "ILLEGAL_ARGUMENT"},
		{StatusOperationNotSupported, "OPERATION_NOT_SUPPORTED"},
		{StatusInternalError, "INTERNAL_ERROR"},
		{StatusNotEnrolled, "NOT_ENROLLED"},
		{Status(9), "Status(9)"},
		{Status(-1), "Status(-1)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Fatalf("Status(%d).String() = %q, want %q", int32(tt.status), got, tt.want)
		}
	}
}

func TestAcquiredInfoRange(t *testing.T) {
	if AcquiredGood != 0 {
		t.Fatalf("AcquiredGood = %d, want 0", AcquiredGood)
	}
	if AcquiredVendor != 22 {
		t.Fatalf("AcquiredVendor = %d, want 22", AcquiredVendor)
	}
	if AcquiredTooDark.String() != "TOO_DARK" {
		t.Fatalf("AcquiredInfo(3) = %q, want TOO_DARK", AcquiredTooDark.String())
	}
	if AcquiredInfo(23).Valid() {
		t.Fatal("expected 23 to be outside the declared range")
	}
	if AcquiredInfo(-1).Valid() {
		t.Fatal("expected -1 to be outside the declared range")
	}
	if got := AcquiredInfo(40).String(); got != "AcquiredInfo(40)" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestErrorRange(t *testing.T) {
	if ErrorHWUnavailable != 1 || ErrorLockoutPermanent != 9 {
		t.Fatalf("error range = [%d, %d], want [1, 9]", ErrorHWUnavailable, ErrorLockoutPermanent)
	}
	if ErrorLockout.String() != "LOCKOUT" {
		t.Fatalf("Error(7) = %q, want LOCKOUT", ErrorLockout.String())
	}
	if Error(0).Valid() {
		t.Fatal("expected 0 to be outside the declared range")
	}
	if got := Error(10).String(); got != "Error(10)" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestFeatureString(t *testing.T) {
	if FeatureRequireAttention.String() != "REQUIRE_ATTENTION" {
		t.Fatalf("unexpected name %q", FeatureRequireAttention.String())
	}
	if FeatureRequireDiversity.String() != "REQUIRE_DIVERSITY" {
		t.Fatalf("unexpected name %q", FeatureRequireDiversity.String())
	}
	if got := Feature(7).String(); got != "Feature(7)" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

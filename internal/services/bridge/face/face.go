// Package face defines the client-facing biometrics face contract: outcome
// codes, enumerations, and the operation and listener sets the bridge serves.
package face

import (
	"context"
	"strconv"
)

// Status is the client-facing outcome of an operation.
type Status int32

const (
	StatusOK                    Status = 0
	StatusIllegalArgument       Status = 1
	StatusOperationNotSupported Status = 2
	StatusInternalError         Status = 3
	StatusNotEnrolled           Status = 4
)

var statusNames = [...]string{
	StatusOK:                    "OK",
	StatusIllegalArgument:       "ILLEGAL_ARGUMENT",
	StatusOperationNotSupported: "OPERATION_NOT_SUPPORTED",
	StatusInternalError:         "INTERNAL_ERROR",
	StatusNotEnrolled:           "NOT_ENROLLED",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Feature identifies an optional enrollment or authentication requirement.
type Feature int32

const (
	FeatureRequireAttention Feature = 1
	FeatureRequireDiversity Feature = 2
)

func (f Feature) String() string {
	switch f {
	case FeatureRequireAttention:
		return "REQUIRE_ATTENTION"
	case FeatureRequireDiversity:
		return "REQUIRE_DIVERSITY"
	default:
		return "Feature(" + strconv.Itoa(int(f)) + ")"
	}
}

// OptionalUint64 pairs an outcome with a 64-bit value.
type OptionalUint64 struct {
	Status Status
	Value  uint64
}

// OptionalBool pairs an outcome with a boolean value.
type OptionalBool struct {
	Status Status
	Value  bool
}

// Service is the client-facing operation set. Errors are transport failures
// only; logical failures are reported through Status.
type Service interface {
	SetCallback(ctx context.Context, callback Callback) (OptionalUint64, error)
	SetActiveUser(ctx context.Context, userID int32, storePath string) (Status, error)
	GenerateChallenge(ctx context.Context, timeoutSec uint32) (OptionalUint64, error)
	Enroll(ctx context.Context, hat []byte, timeoutSec uint32, disabledFeatures []Feature) (Status, error)
	RevokeChallenge(ctx context.Context) (Status, error)
	SetFeature(ctx context.Context, feature Feature, enabled bool, hat []byte, faceID uint32) (Status, error)
	GetFeature(ctx context.Context, feature Feature, faceID uint32) (OptionalBool, error)
	GetAuthenticatorID(ctx context.Context) (OptionalUint64, error)
	Cancel(ctx context.Context) (Status, error)
	Enumerate(ctx context.Context) (Status, error)
	Remove(ctx context.Context, faceID uint32) (Status, error)
	Authenticate(ctx context.Context, operationID uint64) (Status, error)
	UserActivity(ctx context.Context) (Status, error)
	ResetLockout(ctx context.Context, hat []byte) (Status, error)
}

// Callback is the listener a client registers to receive relayed events.
type Callback interface {
	OnEnrollResult(ctx context.Context, deviceID uint64, faceID uint32, userID int32, remaining uint32) error
	OnAuthenticated(ctx context.Context, deviceID uint64, faceID uint32, userID int32, token []byte) error
	OnAcquired(ctx context.Context, deviceID uint64, userID int32, acquiredInfo AcquiredInfo, vendorCode int32) error
	OnError(ctx context.Context, deviceID uint64, userID int32, err Error, vendorCode int32) error
	OnRemoved(ctx context.Context, deviceID uint64, removed []uint32, userID int32) error
	OnEnumerate(ctx context.Context, deviceID uint64, faceIDs []uint32, userID int32) error
	OnLockoutChanged(ctx context.Context, duration uint64) error
}

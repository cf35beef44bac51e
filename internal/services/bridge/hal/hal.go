// Package hal defines the face HAL backend contract as the bridge consumes it.
//
// Shapes here are backend-native: signed identifiers, int32 result codes and
// int32 enumeration ordinals. Translation to client shapes happens in the
// adapter package.
package hal

import (
	"context"
	"errors"
	"fmt"
)

// Result codes returned by backend operations.
const (
	ResultOK                    int32 = 0
	ResultIllegalArgument       int32 = 1
	ResultOperationNotSupported int32 = 2
	ResultInternalError         int32 = 3
	ResultNotEnrolled           int32 = 4
)

// Acquisition info ordinals emitted through OnAcquired.
const (
	AcquiredGood   int32 = 0
	AcquiredVendor int32 = 22
)

// Error ordinals emitted through OnError.
const (
	ErrorHWUnavailable    int32 = 1
	ErrorLockoutPermanent int32 = 9
)

// ErrBackendUnbound indicates an operation was attempted before the backend
// handle was resolved.
var ErrBackendUnbound = errors.New("face hal backend is not bound")

// Service is the backend operation set. Every method returns an error only
// for transport failures; backend-reported failures arrive as result codes.
type Service interface {
	GetDeviceID(ctx context.Context) (int64, error)
	SetCallback(ctx context.Context, callback Callback) error
	SetActiveUser(ctx context.Context, userID int32, storePath string) (int32, error)
	GenerateChallenge(ctx context.Context, timeout int32) (int64, error)
	Enroll(ctx context.Context, token []byte, timeout int32, disabledFeatures []int32) (int32, error)
	RevokeChallenge(ctx context.Context) (int32, error)
	SetFeature(ctx context.Context, feature int32, enable bool, token []byte, faceID int32) (int32, error)
	GetFeature(ctx context.Context, feature int32, faceID int32) (bool, error)
	GetAuthenticatorID(ctx context.Context) (int64, error)
	Cancel(ctx context.Context) (int32, error)
	Enumerate(ctx context.Context) (int32, error)
	Remove(ctx context.Context, faceID int32) (int32, error)
	Authenticate(ctx context.Context, operationID int64) (int32, error)
	UserActivity(ctx context.Context) (int32, error)
	ResetLockout(ctx context.Context, token []byte) (int32, error)
}

// Callback receives backend-originated events.
type Callback interface {
	OnEnrollResult(ctx context.Context, deviceID int64, faceID, userID, remaining int32) error
	OnAuthenticated(ctx context.Context, deviceID int64, faceID, userID int32, token []byte) error
	OnAcquired(ctx context.Context, deviceID int64, userID, acquiredInfo, vendorCode int32) error
	OnError(ctx context.Context, deviceID int64, userID, errorCode, vendorCode int32) error
	OnRemoved(ctx context.Context, deviceID int64, faceIDs []int32, userID int32) error
	OnEnumerate(ctx context.Context, deviceID int64, faceIDs []int32, userID int32) error
	OnLockoutChanged(ctx context.Context, duration int64) error
}

// TransportError reports a backend call that could not be delivered or
// acknowledged.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e == nil {
		return "face hal transport error"
	}
	return fmt.Sprintf("face hal %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

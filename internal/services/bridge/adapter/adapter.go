// Package adapter implements the client-facing face contract on top of the
// face HAL backend: argument conversion, result-code translation, and event
// relay to the registered listener.
package adapter

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

var _ face.Service = (*Adapter)(nil)

// Adapter forwards client operations to a bound backend.
type Adapter struct {
	backend hal.Service
	tracer  trace.Tracer
	logf    func(string, ...any)

	// mu serializes listener registration. relay is the last registered.
	mu    sync.Mutex
	relay *Relay
}

// New binds an adapter to a resolved backend.
func New(backend hal.Service, tracer trace.Tracer, logf func(string, ...any)) (*Adapter, error) {
	if backend == nil {
		return nil, hal.ErrBackendUnbound
	}
	return &Adapter{
		backend: backend,
		tracer:  tracer,
		logf:    logf,
	}, nil
}

// Relay returns the relay bound by the most recent registration.
func (a *Adapter) Relay() *Relay {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.relay
}

// SetCallback registers listener as the sole receiver of backend events and
// returns the backend device id. A later call replaces the listener.
func (a *Adapter) SetCallback(ctx context.Context, listener face.Callback) (face.OptionalUint64, error) {
	if listener == nil {
		return face.OptionalUint64{Status: face.StatusIllegalArgument}, nil
	}
	backend, err := a.bound("SetCallback")
	if err != nil {
		return face.OptionalUint64{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	deviceID, err := backend.GetDeviceID(ctx)
	if err != nil {
		return face.OptionalUint64{}, transportFailure("GetDeviceId", err)
	}
	relay := NewRelay(listener, a.tracer, a.logf)
	if err := backend.SetCallback(ctx, relay); err != nil {
		return face.OptionalUint64{}, transportFailure("SetCallback", err)
	}
	a.relay = relay
	return face.OptionalUint64{Status: face.StatusOK, Value: uint64(deviceID)}, nil
}

// SetActiveUser selects the user and template store for later operations.
func (a *Adapter) SetActiveUser(ctx context.Context, userID int32, storePath string) (face.Status, error) {
	return a.status("SetActiveUser", func(b hal.Service) (int32, error) {
		return b.SetActiveUser(ctx, userID, storePath)
	})
}

// GenerateChallenge asks the backend for a new challenge. The status is
// always OK when the call completes.
func (a *Adapter) GenerateChallenge(ctx context.Context, timeoutSec uint32) (face.OptionalUint64, error) {
	backend, err := a.bound("GenerateChallenge")
	if err != nil {
		return face.OptionalUint64{}, err
	}
	challenge, err := backend.GenerateChallenge(ctx, int32(timeoutSec))
	if err != nil {
		return face.OptionalUint64{}, transportFailure("GenerateChallenge", err)
	}
	return face.OptionalUint64{Status: face.StatusOK, Value: uint64(challenge)}, nil
}

// Enroll starts enrollment with the given hardware auth token.
func (a *Adapter) Enroll(ctx context.Context, hat []byte, timeoutSec uint32, disabledFeatures []face.Feature) (face.Status, error) {
	features := featuresToBackend(disabledFeatures)
	return a.status("Enroll", func(b hal.Service) (int32, error) {
		return b.Enroll(ctx, hat, int32(timeoutSec), features)
	})
}

// RevokeChallenge invalidates the outstanding challenge.
func (a *Adapter) RevokeChallenge(ctx context.Context) (face.Status, error) {
	return a.status("RevokeChallenge", func(b hal.Service) (int32, error) {
		return b.RevokeChallenge(ctx)
	})
}

// SetFeature toggles a feature for an enrolled face.
func (a *Adapter) SetFeature(ctx context.Context, feature face.Feature, enabled bool, hat []byte, faceID uint32) (face.Status, error) {
	return a.status("SetFeature", func(b hal.Service) (int32, error) {
		return b.SetFeature(ctx, int32(feature), enabled, hat, int32(faceID))
	})
}

// GetFeature reports whether a feature is enabled. The status is always OK
// when the call completes.
func (a *Adapter) GetFeature(ctx context.Context, feature face.Feature, faceID uint32) (face.OptionalBool, error) {
	backend, err := a.bound("GetFeature")
	if err != nil {
		return face.OptionalBool{}, err
	}
	enabled, err := backend.GetFeature(ctx, int32(feature), int32(faceID))
	if err != nil {
		return face.OptionalBool{}, transportFailure("GetFeature", err)
	}
	return face.OptionalBool{Status: face.StatusOK, Value: enabled}, nil
}

// GetAuthenticatorID returns the current authenticator id. The status is
// always OK when the call completes.
func (a *Adapter) GetAuthenticatorID(ctx context.Context) (face.OptionalUint64, error) {
	backend, err := a.bound("GetAuthenticatorId")
	if err != nil {
		return face.OptionalUint64{}, err
	}
	id, err := backend.GetAuthenticatorID(ctx)
	if err != nil {
		return face.OptionalUint64{}, transportFailure("GetAuthenticatorId", err)
	}
	return face.OptionalUint64{Status: face.StatusOK, Value: uint64(id)}, nil
}

// Cancel aborts the operation in progress.
func (a *Adapter) Cancel(ctx context.Context) (face.Status, error) {
	return a.status("Cancel", func(b hal.Service) (int32, error) {
		return b.Cancel(ctx)
	})
}

// Enumerate requests the enrolled templates through OnEnumerate.
func (a *Adapter) Enumerate(ctx context.Context) (face.Status, error) {
	return a.status("Enumerate", func(b hal.Service) (int32, error) {
		return b.Enumerate(ctx)
	})
}

// Remove deletes a template. Removal is reported through OnRemoved.
func (a *Adapter) Remove(ctx context.Context, faceID uint32) (face.Status, error) {
	return a.status("Remove", func(b hal.Service) (int32, error) {
		return b.Remove(ctx, int32(faceID))
	})
}

// Authenticate starts authentication bound to operationID.
func (a *Adapter) Authenticate(ctx context.Context, operationID uint64) (face.Status, error) {
	return a.status("Authenticate", func(b hal.Service) (int32, error) {
		return b.Authenticate(ctx, int64(operationID))
	})
}

// UserActivity notifies the backend of user activity.
func (a *Adapter) UserActivity(ctx context.Context) (face.Status, error) {
	return a.status("UserActivity", func(b hal.Service) (int32, error) {
		return b.UserActivity(ctx)
	})
}

// ResetLockout clears a lockout with the given hardware auth token.
func (a *Adapter) ResetLockout(ctx context.Context, hat []byte) (face.Status, error) {
	return a.status("ResetLockout", func(b hal.Service) (int32, error) {
		return b.ResetLockout(ctx, hat)
	})
}

func (a *Adapter) status(op string, call func(hal.Service) (int32, error)) (face.Status, error) {
	backend, err := a.bound(op)
	if err != nil {
		return face.StatusOK, err
	}
	code, err := call(backend)
	if err != nil {
		return face.StatusOK, transportFailure(op, err)
	}
	return TranslateStatus(code), nil
}

func (a *Adapter) bound(op string) (hal.Service, error) {
	if a == nil || a.backend == nil {
		return nil, &hal.TransportError{Op: op, Err: hal.ErrBackendUnbound}
	}
	return a.backend, nil
}

func transportFailure(op string, err error) error {
	var transportErr *hal.TransportError
	if errors.As(err, &transportErr) {
		return err
	}
	return &hal.TransportError{Op: op, Err: err}
}

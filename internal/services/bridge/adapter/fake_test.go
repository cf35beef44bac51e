package adapter

import (
	"context"
	"sync"

	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

type halCall struct {
	op   string
	args []any
}

type fakeBackend struct {
	mu       sync.Mutex
	calls    []halCall
	callback hal.Callback

	result         int32
	deviceID       int64
	challenge      int64
	featureOn      bool
	authID         int64
	err            error
	deviceIDErr    error
	setCallbackErr error
}

func (f *fakeBackend) record(op string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, halCall{op: op, args: args})
}

func (f *fakeBackend) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]string, len(f.calls))
	for i, call := range f.calls {
		ops[i] = call.op
	}
	return ops
}

func (f *fakeBackend) last() halCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return halCall{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeBackend) bound() hal.Callback {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callback
}

func (f *fakeBackend) GetDeviceID(context.Context) (int64, error) {
	f.record("GetDeviceId")
	if f.deviceIDErr != nil {
		return 0, f.deviceIDErr
	}
	return f.deviceID, f.err
}

func (f *fakeBackend) SetCallback(_ context.Context, callback hal.Callback) error {
	f.record("SetCallback", callback)
	if f.setCallbackErr != nil {
		return f.setCallbackErr
	}
	f.mu.Lock()
	f.callback = callback
	f.mu.Unlock()
	return f.err
}

func (f *fakeBackend) SetActiveUser(_ context.Context, userID int32, storePath string) (int32, error) {
	f.record("SetActiveUser", userID, storePath)
	return f.result, f.err
}

func (f *fakeBackend) GenerateChallenge(_ context.Context, timeout int32) (int64, error) {
	f.record("GenerateChallenge", timeout)
	return f.challenge, f.err
}

func (f *fakeBackend) Enroll(_ context.Context, token []byte, timeout int32, disabledFeatures []int32) (int32, error) {
	f.record("Enroll", token, timeout, disabledFeatures)
	return f.result, f.err
}

func (f *fakeBackend) RevokeChallenge(context.Context) (int32, error) {
	f.record("RevokeChallenge")
	return f.result, f.err
}

func (f *fakeBackend) SetFeature(_ context.Context, feature int32, enable bool, token []byte, faceID int32) (int32, error) {
	f.record("SetFeature", feature, enable, token, faceID)
	return f.result, f.err
}

func (f *fakeBackend) GetFeature(_ context.Context, feature int32, faceID int32) (bool, error) {
	f.record("GetFeature", feature, faceID)
	return f.featureOn, f.err
}

func (f *fakeBackend) GetAuthenticatorID(context.Context) (int64, error) {
	f.record("GetAuthenticatorId")
	return f.authID, f.err
}

func (f *fakeBackend) Cancel(context.Context) (int32, error) {
	f.record("Cancel")
	return f.result, f.err
}

func (f *fakeBackend) Enumerate(context.Context) (int32, error) {
	f.record("Enumerate")
	return f.result, f.err
}

func (f *fakeBackend) Remove(_ context.Context, faceID int32) (int32, error) {
	f.record("Remove", faceID)
	return f.result, f.err
}

func (f *fakeBackend) Authenticate(_ context.Context, operationID int64) (int32, error) {
	f.record("Authenticate", operationID)
	return f.result, f.err
}

func (f *fakeBackend) UserActivity(context.Context) (int32, error) {
	f.record("UserActivity")
	return f.result, f.err
}

func (f *fakeBackend) ResetLockout(_ context.Context, token []byte) (int32, error) {
	f.record("ResetLockout", token)
	return f.result, f.err
}

type listenerEvent struct {
	kind         string
	deviceID     uint64
	faceID       uint32
	userID       int32
	remaining    uint32
	token        []byte
	acquiredInfo face.AcquiredInfo
	errorCode    face.Error
	vendorCode   int32
	faceIDs      []uint32
	duration     uint64
}

type recordingListener struct {
	mu     sync.Mutex
	events []listenerEvent
	err    error
}

func (l *recordingListener) add(event listenerEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return l.err
}

func (l *recordingListener) received() []listenerEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]listenerEvent(nil), l.events...)
}

func (l *recordingListener) OnEnrollResult(_ context.Context, deviceID uint64, faceID uint32, userID int32, remaining uint32) error {
	return l.add(listenerEvent{kind: "enroll", deviceID: deviceID, faceID: faceID, userID: userID, remaining: remaining})
}

func (l *recordingListener) OnAuthenticated(_ context.Context, deviceID uint64, faceID uint32, userID int32, token []byte) error {
	return l.add(listenerEvent{kind: "authenticated", deviceID: deviceID, faceID: faceID, userID: userID, token: token})
}

func (l *recordingListener) OnAcquired(_ context.Context, deviceID uint64, userID int32, acquiredInfo face.AcquiredInfo, vendorCode int32) error {
	return l.add(listenerEvent{kind: "acquired", deviceID: deviceID, userID: userID, acquiredInfo: acquiredInfo, vendorCode: vendorCode})
}

func (l *recordingListener) OnError(_ context.Context, deviceID uint64, userID int32, err face.Error, vendorCode int32) error {
	return l.add(listenerEvent{kind: "error", deviceID: deviceID, userID: userID, errorCode: err, vendorCode: vendorCode})
}

func (l *recordingListener) OnRemoved(_ context.Context, deviceID uint64, removed []uint32, userID int32) error {
	return l.add(listenerEvent{kind: "removed", deviceID: deviceID, faceIDs: removed, userID: userID})
}

func (l *recordingListener) OnEnumerate(_ context.Context, deviceID uint64, faceIDs []uint32, userID int32) error {
	return l.add(listenerEvent{kind: "enumerate", deviceID: deviceID, faceIDs: faceIDs, userID: userID})
}

func (l *recordingListener) OnLockoutChanged(_ context.Context, duration uint64) error {
	return l.add(listenerEvent{kind: "lockout", duration: duration})
}

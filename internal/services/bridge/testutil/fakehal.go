// Package testutil provides shared fakes for bridge tests.
package testutil

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/facebridge/internal/platform/grpc"
)

// Call records one request received by FakeHAL.
type Call struct {
	Method  string
	Request any
}

// FakeHAL is an in-process face HAL backend that records every call and
// returns scripted result codes.
type FakeHAL struct {
	facehalv1.UnimplementedFaceHalServiceServer

	mu              sync.Mutex
	calls           []Call
	results         map[string]int32
	deviceID        int64
	challenge       int64
	featureEnabled  bool
	authenticatorID int64
	callbackTarget  string
	callbackConn    *gogrpc.ClientConn
	callbackReady   chan struct{}
	// registerLockout is sent to the new target from inside SetCallback.
	registerLockout *facehalv1.LockoutChangedEvent
	registerErr     error
}

// NewFakeHAL creates a backend that answers every status call with 0.
func NewFakeHAL() *FakeHAL {
	return &FakeHAL{
		results:       make(map[string]int32),
		callbackReady: make(chan struct{}),
	}
}

// StartFakeHAL registers a FakeHAL under the face HAL name in dir and serves
// it with a SERVING health status until the test ends.
func StartFakeHAL(t *testing.T, dir string) *FakeHAL {
	t.Helper()

	fake := NewFakeHAL()
	ServeFakeHAL(t, dir, fake)
	return fake
}

// ServeFakeHAL serves fake under the face HAL name in dir.
func ServeFakeHAL(t *testing.T, dir string, fake *FakeHAL) {
	t.Helper()

	listener, err := discovery.Register(dir, discovery.ServiceFaceHal)
	if err != nil {
		t.Fatalf("register fake hal: %v", err)
	}
	server := gogrpc.NewServer()
	facehalv1.RegisterFaceHalServiceServer(server, fake)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(facehalv1.FaceHalService_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() { _ = server.Serve(listener) }()
	t.Cleanup(func() {
		server.Stop()
		fake.closeCallback()
	})
}

// SetResult scripts the result code returned by method.
func (f *FakeHAL) SetResult(method string, code int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[method] = code
}

// SetDeviceID scripts the GetDeviceId response.
func (f *FakeHAL) SetDeviceID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deviceID = id
}

// SetValues scripts the value-returning calls.
func (f *FakeHAL) SetValues(challenge int64, featureEnabled bool, authenticatorID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.challenge = challenge
	f.featureEnabled = featureEnabled
	f.authenticatorID = authenticatorID
}

// SetRegisterBehavior scripts SetCallback: when lockout is non-nil it is
// delivered to the new target before the call returns, and err, when set, is
// returned afterwards.
func (f *FakeHAL) SetRegisterBehavior(lockout *facehalv1.LockoutChangedEvent, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerLockout = lockout
	f.registerErr = err
}

// Calls returns a copy of the recorded calls in arrival order.
func (f *FakeHAL) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Methods returns the recorded method names in arrival order.
func (f *FakeHAL) Methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	methods := make([]string, len(f.calls))
	for i, call := range f.calls {
		methods[i] = call.Method
	}
	return methods
}

// LastCall returns the most recent call for method.
func (f *FakeHAL) LastCall(method string) (Call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == method {
			return f.calls[i], true
		}
	}
	return Call{}, false
}

// CallbackTarget returns the target passed to the latest SetCallback.
func (f *FakeHAL) CallbackTarget() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callbackTarget
}

// CallbackRegistered is closed once the first SetCallback arrives.
func (f *FakeHAL) CallbackRegistered() <-chan struct{} {
	return f.callbackReady
}

// Callback returns a client for the registered callback endpoint.
func (f *FakeHAL) Callback() (facehalv1.FaceHalServiceCallbackClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.callbackTarget == "" {
		return nil, fmt.Errorf("no callback registered")
	}
	if f.callbackConn == nil {
		conn, err := gogrpc.NewClient(f.callbackTarget, platformgrpc.DefaultClientDialOptions()...)
		if err != nil {
			return nil, fmt.Errorf("dial callback %s: %w", f.callbackTarget, err)
		}
		f.callbackConn = conn
	}
	return facehalv1.NewFaceHalServiceCallbackClient(f.callbackConn), nil
}

// EmitAcquired sends an OnAcquired event to the registered callback.
func (f *FakeHAL) EmitAcquired(ctx context.Context, event *facehalv1.AcquiredEvent) error {
	callback, err := f.Callback()
	if err != nil {
		return err
	}
	_, err = callback.OnAcquired(ctx, event)
	return err
}

// EmitRemoved sends an OnRemoved event to the registered callback.
func (f *FakeHAL) EmitRemoved(ctx context.Context, event *facehalv1.RemovedEvent) error {
	callback, err := f.Callback()
	if err != nil {
		return err
	}
	_, err = callback.OnRemoved(ctx, event)
	return err
}

// EmitLockoutChanged sends an OnLockoutChanged event to the registered callback.
func (f *FakeHAL) EmitLockoutChanged(ctx context.Context, event *facehalv1.LockoutChangedEvent) error {
	callback, err := f.Callback()
	if err != nil {
		return err
	}
	_, err = callback.OnLockoutChanged(ctx, event)
	return err
}

func (f *FakeHAL) record(method string, request any) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: method, Request: request})
	return f.results[method]
}

func (f *FakeHAL) closeCallback() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.callbackConn != nil {
		_ = f.callbackConn.Close()
		f.callbackConn = nil
	}
}

func (f *FakeHAL) GetDeviceId(_ context.Context, in *facehalv1.Empty) (*facehalv1.DeviceIdResponse, error) {
	f.record("GetDeviceId", in)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &facehalv1.DeviceIdResponse{DeviceId: f.deviceID}, nil
}

func (f *FakeHAL) SetCallback(ctx context.Context, in *facehalv1.SetCallbackRequest) (*facehalv1.Empty, error) {
	f.record("SetCallback", in)
	f.mu.Lock()
	if f.callbackTarget != in.CallbackTarget && f.callbackConn != nil {
		_ = f.callbackConn.Close()
		f.callbackConn = nil
	}
	first := f.callbackTarget == ""
	f.callbackTarget = in.CallbackTarget
	if first {
		close(f.callbackReady)
	}
	lockout, registerErr := f.registerLockout, f.registerErr
	f.mu.Unlock()

	if lockout != nil {
		if err := f.EmitLockoutChanged(ctx, lockout); err != nil {
			return nil, fmt.Errorf("emit lockout on register: %w", err)
		}
	}
	if registerErr != nil {
		return nil, registerErr
	}
	return &facehalv1.Empty{}, nil
}

func (f *FakeHAL) SetActiveUser(_ context.Context, in *facehalv1.SetActiveUserRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("SetActiveUser", in)}, nil
}

func (f *FakeHAL) GenerateChallenge(_ context.Context, in *facehalv1.GenerateChallengeRequest) (*facehalv1.ChallengeResponse, error) {
	f.record("GenerateChallenge", in)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &facehalv1.ChallengeResponse{Challenge: f.challenge}, nil
}

func (f *FakeHAL) Enroll(_ context.Context, in *facehalv1.EnrollRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("Enroll", in)}, nil
}

func (f *FakeHAL) RevokeChallenge(_ context.Context, in *facehalv1.Empty) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("RevokeChallenge", in)}, nil
}

func (f *FakeHAL) SetFeature(_ context.Context, in *facehalv1.SetFeatureRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("SetFeature", in)}, nil
}

func (f *FakeHAL) GetFeature(_ context.Context, in *facehalv1.GetFeatureRequest) (*facehalv1.GetFeatureResponse, error) {
	f.record("GetFeature", in)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &facehalv1.GetFeatureResponse{Enabled: f.featureEnabled}, nil
}

func (f *FakeHAL) GetAuthenticatorId(_ context.Context, in *facehalv1.Empty) (*facehalv1.AuthenticatorIdResponse, error) {
	f.record("GetAuthenticatorId", in)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &facehalv1.AuthenticatorIdResponse{AuthenticatorId: f.authenticatorID}, nil
}

func (f *FakeHAL) Cancel(_ context.Context, in *facehalv1.Empty) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("Cancel", in)}, nil
}

func (f *FakeHAL) Enumerate(_ context.Context, in *facehalv1.Empty) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("Enumerate", in)}, nil
}

func (f *FakeHAL) Remove(_ context.Context, in *facehalv1.RemoveRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("Remove", in)}, nil
}

func (f *FakeHAL) Authenticate(_ context.Context, in *facehalv1.AuthenticateRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("Authenticate", in)}, nil
}

func (f *FakeHAL) UserActivity(_ context.Context, in *facehalv1.Empty) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("UserActivity", in)}, nil
}

func (f *FakeHAL) ResetLockout(_ context.Context, in *facehalv1.ResetLockoutRequest) (*facehalv1.ResultResponse, error) {
	return &facehalv1.ResultResponse{Result: f.record("ResetLockout", in)}, nil
}

// Listen opens a Unix socket for an ad hoc test server.
func Listen(t *testing.T, dir, service string) net.Listener {
	t.Helper()

	listener, err := discovery.Register(dir, service)
	if err != nil {
		t.Fatalf("register %s: %v", service, err)
	}
	t.Cleanup(func() { _ = listener.Close() })
	return listener
}

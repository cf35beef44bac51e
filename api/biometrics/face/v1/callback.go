package facev1

import (
	"context"

	"github.com/louisbranch/facebridge/api/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BiometricsFaceClientCallback_ServiceName is the full gRPC name of the listener callback.
const BiometricsFaceClientCallback_ServiceName = "biometrics.face.v1.BiometricsFaceClientCallback"

const biometricsFaceClientCallbackPrefix = "/" + BiometricsFaceClientCallback_ServiceName + "/"

// Full method names.
const (
	BiometricsFaceClientCallback_OnEnrollResult_FullMethodName   = biometricsFaceClientCallbackPrefix + "OnEnrollResult"
	BiometricsFaceClientCallback_OnAuthenticated_FullMethodName  = biometricsFaceClientCallbackPrefix + "OnAuthenticated"
	BiometricsFaceClientCallback_OnAcquired_FullMethodName       = biometricsFaceClientCallbackPrefix + "OnAcquired"
	BiometricsFaceClientCallback_OnError_FullMethodName          = biometricsFaceClientCallbackPrefix + "OnError"
	BiometricsFaceClientCallback_OnRemoved_FullMethodName        = biometricsFaceClientCallbackPrefix + "OnRemoved"
	BiometricsFaceClientCallback_OnEnumerate_FullMethodName      = biometricsFaceClientCallbackPrefix + "OnEnumerate"
	BiometricsFaceClientCallback_OnLockoutChanged_FullMethodName = biometricsFaceClientCallbackPrefix + "OnLockoutChanged"
)

// BiometricsFaceClientCallbackClient is what the bridge uses to deliver events to a listener.
type BiometricsFaceClientCallbackClient interface {
	OnEnrollResult(ctx context.Context, in *EnrollResultEvent, opts ...grpc.CallOption) (*Empty, error)
	OnAuthenticated(ctx context.Context, in *AuthenticatedEvent, opts ...grpc.CallOption) (*Empty, error)
	OnAcquired(ctx context.Context, in *AcquiredEvent, opts ...grpc.CallOption) (*Empty, error)
	OnError(ctx context.Context, in *ErrorEvent, opts ...grpc.CallOption) (*Empty, error)
	OnRemoved(ctx context.Context, in *RemovedEvent, opts ...grpc.CallOption) (*Empty, error)
	OnEnumerate(ctx context.Context, in *EnumerateEvent, opts ...grpc.CallOption) (*Empty, error)
	OnLockoutChanged(ctx context.Context, in *LockoutChangedEvent, opts ...grpc.CallOption) (*Empty, error)
}

type biometricsFaceClientCallbackClient struct {
	cc grpc.ClientConnInterface
}

// NewBiometricsFaceClientCallbackClient wraps a connection to a listener endpoint.
func NewBiometricsFaceClientCallbackClient(cc grpc.ClientConnInterface) BiometricsFaceClientCallbackClient {
	return &biometricsFaceClientCallbackClient{cc: cc}
}

func (c *biometricsFaceClientCallbackClient) OnEnrollResult(ctx context.Context, in *EnrollResultEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnEnrollResult_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnAuthenticated(ctx context.Context, in *AuthenticatedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnAuthenticated_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnAcquired(ctx context.Context, in *AcquiredEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnAcquired_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnError(ctx context.Context, in *ErrorEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnError_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnRemoved(ctx context.Context, in *RemovedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnRemoved_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnEnumerate(ctx context.Context, in *EnumerateEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnEnumerate_FullMethodName, in, opts...)
}

func (c *biometricsFaceClientCallbackClient) OnLockoutChanged(ctx context.Context, in *LockoutChangedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BiometricsFaceClientCallback_OnLockoutChanged_FullMethodName, in, opts...)
}

// BiometricsFaceClientCallbackServer is implemented by client listeners.
type BiometricsFaceClientCallbackServer interface {
	OnEnrollResult(context.Context, *EnrollResultEvent) (*Empty, error)
	OnAuthenticated(context.Context, *AuthenticatedEvent) (*Empty, error)
	OnAcquired(context.Context, *AcquiredEvent) (*Empty, error)
	OnError(context.Context, *ErrorEvent) (*Empty, error)
	OnRemoved(context.Context, *RemovedEvent) (*Empty, error)
	OnEnumerate(context.Context, *EnumerateEvent) (*Empty, error)
	OnLockoutChanged(context.Context, *LockoutChangedEvent) (*Empty, error)
}

// UnimplementedBiometricsFaceClientCallbackServer answers every event with codes.Unimplemented.
type UnimplementedBiometricsFaceClientCallbackServer struct{}

func (UnimplementedBiometricsFaceClientCallbackServer) OnEnrollResult(context.Context, *EnrollResultEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnEnrollResult not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnAuthenticated(context.Context, *AuthenticatedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnAuthenticated not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnAcquired(context.Context, *AcquiredEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnAcquired not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnError(context.Context, *ErrorEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnError not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnRemoved(context.Context, *RemovedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnRemoved not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnEnumerate(context.Context, *EnumerateEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnEnumerate not implemented")
}
func (UnimplementedBiometricsFaceClientCallbackServer) OnLockoutChanged(context.Context, *LockoutChangedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnLockoutChanged not implemented")
}

// RegisterBiometricsFaceClientCallbackServer registers srv on s.
func RegisterBiometricsFaceClientCallbackServer(s grpc.ServiceRegistrar, srv BiometricsFaceClientCallbackServer) {
	s.RegisterService(&BiometricsFaceClientCallback_ServiceDesc, srv)
}

// BiometricsFaceClientCallback_ServiceDesc describes the listener callback for grpc.RegisterService.
var BiometricsFaceClientCallback_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BiometricsFaceClientCallback_ServiceName,
	HandlerType: (*BiometricsFaceClientCallbackServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OnEnrollResult", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnEnrollResult_FullMethodName, BiometricsFaceClientCallbackServer.OnEnrollResult)},
		{MethodName: "OnAuthenticated", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnAuthenticated_FullMethodName, BiometricsFaceClientCallbackServer.OnAuthenticated)},
		{MethodName: "OnAcquired", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnAcquired_FullMethodName, BiometricsFaceClientCallbackServer.OnAcquired)},
		{MethodName: "OnError", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnError_FullMethodName, BiometricsFaceClientCallbackServer.OnError)},
		{MethodName: "OnRemoved", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnRemoved_FullMethodName, BiometricsFaceClientCallbackServer.OnRemoved)},
		{MethodName: "OnEnumerate", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnEnumerate_FullMethodName, BiometricsFaceClientCallbackServer.OnEnumerate)},
		{MethodName: "OnLockoutChanged", Handler: rpc.UnaryHandler(BiometricsFaceClientCallback_OnLockoutChanged_FullMethodName, BiometricsFaceClientCallbackServer.OnLockoutChanged)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "biometrics/face/v1",
}

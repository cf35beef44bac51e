package facehalv1

import (
	"context"

	"github.com/louisbranch/facebridge/api/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FaceHalServiceCallback_ServiceName is the full gRPC name of the event callback.
const FaceHalServiceCallback_ServiceName = "facehal.v1.FaceHalServiceCallback"

const faceHalCallbackPrefix = "/" + FaceHalServiceCallback_ServiceName + "/"

// Full method names of the event callback.
const (
	FaceHalServiceCallback_OnEnrollResult_FullMethodName   = faceHalCallbackPrefix + "OnEnrollResult"
	FaceHalServiceCallback_OnAuthenticated_FullMethodName  = faceHalCallbackPrefix + "OnAuthenticated"
	FaceHalServiceCallback_OnAcquired_FullMethodName       = faceHalCallbackPrefix + "OnAcquired"
	FaceHalServiceCallback_OnError_FullMethodName          = faceHalCallbackPrefix + "OnError"
	FaceHalServiceCallback_OnRemoved_FullMethodName        = faceHalCallbackPrefix + "OnRemoved"
	FaceHalServiceCallback_OnEnumerate_FullMethodName      = faceHalCallbackPrefix + "OnEnumerate"
	FaceHalServiceCallback_OnLockoutChanged_FullMethodName = faceHalCallbackPrefix + "OnLockoutChanged"
)

// FaceHalServiceCallbackClient is what the backend uses to deliver events.
type FaceHalServiceCallbackClient interface {
	OnEnrollResult(ctx context.Context, in *EnrollResultEvent, opts ...grpc.CallOption) (*Empty, error)
	OnAuthenticated(ctx context.Context, in *AuthenticatedEvent, opts ...grpc.CallOption) (*Empty, error)
	OnAcquired(ctx context.Context, in *AcquiredEvent, opts ...grpc.CallOption) (*Empty, error)
	OnError(ctx context.Context, in *ErrorEvent, opts ...grpc.CallOption) (*Empty, error)
	OnRemoved(ctx context.Context, in *RemovedEvent, opts ...grpc.CallOption) (*Empty, error)
	OnEnumerate(ctx context.Context, in *EnumerateEvent, opts ...grpc.CallOption) (*Empty, error)
	OnLockoutChanged(ctx context.Context, in *LockoutChangedEvent, opts ...grpc.CallOption) (*Empty, error)
}

type faceHalServiceCallbackClient struct {
	cc grpc.ClientConnInterface
}

// NewFaceHalServiceCallbackClient wraps a connection to a callback endpoint.
func NewFaceHalServiceCallbackClient(cc grpc.ClientConnInterface) FaceHalServiceCallbackClient {
	return &faceHalServiceCallbackClient{cc: cc}
}

func (c *faceHalServiceCallbackClient) OnEnrollResult(ctx context.Context, in *EnrollResultEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnEnrollResult_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnAuthenticated(ctx context.Context, in *AuthenticatedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnAuthenticated_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnAcquired(ctx context.Context, in *AcquiredEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnAcquired_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnError(ctx context.Context, in *ErrorEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnError_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnRemoved(ctx context.Context, in *RemovedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnRemoved_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnEnumerate(ctx context.Context, in *EnumerateEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnEnumerate_FullMethodName, in, opts...)
}

func (c *faceHalServiceCallbackClient) OnLockoutChanged(ctx context.Context, in *LockoutChangedEvent, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalServiceCallback_OnLockoutChanged_FullMethodName, in, opts...)
}

// FaceHalServiceCallbackServer is implemented by whoever receives backend events.
type FaceHalServiceCallbackServer interface {
	OnEnrollResult(context.Context, *EnrollResultEvent) (*Empty, error)
	OnAuthenticated(context.Context, *AuthenticatedEvent) (*Empty, error)
	OnAcquired(context.Context, *AcquiredEvent) (*Empty, error)
	OnError(context.Context, *ErrorEvent) (*Empty, error)
	OnRemoved(context.Context, *RemovedEvent) (*Empty, error)
	OnEnumerate(context.Context, *EnumerateEvent) (*Empty, error)
	OnLockoutChanged(context.Context, *LockoutChangedEvent) (*Empty, error)
}

// UnimplementedFaceHalServiceCallbackServer answers every event with codes.Unimplemented.
type UnimplementedFaceHalServiceCallbackServer struct{}

func (UnimplementedFaceHalServiceCallbackServer) OnEnrollResult(context.Context, *EnrollResultEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnEnrollResult not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnAuthenticated(context.Context, *AuthenticatedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnAuthenticated not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnAcquired(context.Context, *AcquiredEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnAcquired not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnError(context.Context, *ErrorEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnError not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnRemoved(context.Context, *RemovedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnRemoved not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnEnumerate(context.Context, *EnumerateEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnEnumerate not implemented")
}
func (UnimplementedFaceHalServiceCallbackServer) OnLockoutChanged(context.Context, *LockoutChangedEvent) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method OnLockoutChanged not implemented")
}

// RegisterFaceHalServiceCallbackServer registers srv on s.
func RegisterFaceHalServiceCallbackServer(s grpc.ServiceRegistrar, srv FaceHalServiceCallbackServer) {
	s.RegisterService(&FaceHalServiceCallback_ServiceDesc, srv)
}

// FaceHalServiceCallback_ServiceDesc describes the event callback for grpc.RegisterService.
var FaceHalServiceCallback_ServiceDesc = grpc.ServiceDesc{
	ServiceName: FaceHalServiceCallback_ServiceName,
	HandlerType: (*FaceHalServiceCallbackServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OnEnrollResult", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnEnrollResult_FullMethodName, FaceHalServiceCallbackServer.OnEnrollResult)},
		{MethodName: "OnAuthenticated", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnAuthenticated_FullMethodName, FaceHalServiceCallbackServer.OnAuthenticated)},
		{MethodName: "OnAcquired", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnAcquired_FullMethodName, FaceHalServiceCallbackServer.OnAcquired)},
		{MethodName: "OnError", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnError_FullMethodName, FaceHalServiceCallbackServer.OnError)},
		{MethodName: "OnRemoved", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnRemoved_FullMethodName, FaceHalServiceCallbackServer.OnRemoved)},
		{MethodName: "OnEnumerate", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnEnumerate_FullMethodName, FaceHalServiceCallbackServer.OnEnumerate)},
		{MethodName: "OnLockoutChanged", Handler: rpc.UnaryHandler(FaceHalServiceCallback_OnLockoutChanged_FullMethodName, FaceHalServiceCallbackServer.OnLockoutChanged)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "facehal/v1",
}

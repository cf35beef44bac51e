package facehalv1

import (
	"context"

	"github.com/louisbranch/facebridge/api/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Empty is the argument and result of calls that carry no payload.
type Empty = rpc.Empty

// FaceHalService_ServiceName is the full gRPC name of the backend service.
const FaceHalService_ServiceName = "facehal.v1.FaceHalService"

const faceHalPrefix = "/" + FaceHalService_ServiceName + "/"

// Full method names of the backend service.
const (
	FaceHalService_GetDeviceId_FullMethodName        = faceHalPrefix + "GetDeviceId"
	FaceHalService_SetCallback_FullMethodName        = faceHalPrefix + "SetCallback"
	FaceHalService_SetActiveUser_FullMethodName      = faceHalPrefix + "SetActiveUser"
	FaceHalService_GenerateChallenge_FullMethodName  = faceHalPrefix + "GenerateChallenge"
	FaceHalService_Enroll_FullMethodName             = faceHalPrefix + "Enroll"
	FaceHalService_RevokeChallenge_FullMethodName    = faceHalPrefix + "RevokeChallenge"
	FaceHalService_SetFeature_FullMethodName         = faceHalPrefix + "SetFeature"
	FaceHalService_GetFeature_FullMethodName         = faceHalPrefix + "GetFeature"
	FaceHalService_GetAuthenticatorId_FullMethodName = faceHalPrefix + "GetAuthenticatorId"
	FaceHalService_Cancel_FullMethodName             = faceHalPrefix + "Cancel"
	FaceHalService_Enumerate_FullMethodName          = faceHalPrefix + "Enumerate"
	FaceHalService_Remove_FullMethodName             = faceHalPrefix + "Remove"
	FaceHalService_Authenticate_FullMethodName       = faceHalPrefix + "Authenticate"
	FaceHalService_UserActivity_FullMethodName       = faceHalPrefix + "UserActivity"
	FaceHalService_ResetLockout_FullMethodName       = faceHalPrefix + "ResetLockout"
)

// FaceHalServiceClient is the client API for the backend service.
type FaceHalServiceClient interface {
	GetDeviceId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DeviceIdResponse, error)
	SetCallback(ctx context.Context, in *SetCallbackRequest, opts ...grpc.CallOption) (*Empty, error)
	SetActiveUser(ctx context.Context, in *SetActiveUserRequest, opts ...grpc.CallOption) (*ResultResponse, error)
	GenerateChallenge(ctx context.Context, in *GenerateChallengeRequest, opts ...grpc.CallOption) (*ChallengeResponse, error)
	Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*ResultResponse, error)
	RevokeChallenge(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error)
	SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*ResultResponse, error)
	GetFeature(ctx context.Context, in *GetFeatureRequest, opts ...grpc.CallOption) (*GetFeatureResponse, error)
	GetAuthenticatorId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AuthenticatorIdResponse, error)
	Cancel(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error)
	Enumerate(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*ResultResponse, error)
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*ResultResponse, error)
	UserActivity(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error)
	ResetLockout(ctx context.Context, in *ResetLockoutRequest, opts ...grpc.CallOption) (*ResultResponse, error)
}

type faceHalServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFaceHalServiceClient wraps a connection to the backend service.
func NewFaceHalServiceClient(cc grpc.ClientConnInterface) FaceHalServiceClient {
	return &faceHalServiceClient{cc: cc}
}

func (c *faceHalServiceClient) GetDeviceId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DeviceIdResponse, error) {
	return rpc.Invoke[DeviceIdResponse](ctx, c.cc, FaceHalService_GetDeviceId_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) SetCallback(ctx context.Context, in *SetCallbackRequest, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, FaceHalService_SetCallback_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) SetActiveUser(ctx context.Context, in *SetActiveUserRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_SetActiveUser_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) GenerateChallenge(ctx context.Context, in *GenerateChallengeRequest, opts ...grpc.CallOption) (*ChallengeResponse, error) {
	return rpc.Invoke[ChallengeResponse](ctx, c.cc, FaceHalService_GenerateChallenge_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_Enroll_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) RevokeChallenge(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_RevokeChallenge_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_SetFeature_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) GetFeature(ctx context.Context, in *GetFeatureRequest, opts ...grpc.CallOption) (*GetFeatureResponse, error) {
	return rpc.Invoke[GetFeatureResponse](ctx, c.cc, FaceHalService_GetFeature_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) GetAuthenticatorId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AuthenticatorIdResponse, error) {
	return rpc.Invoke[AuthenticatorIdResponse](ctx, c.cc, FaceHalService_GetAuthenticatorId_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) Cancel(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_Cancel_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) Enumerate(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_Enumerate_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_Remove_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_Authenticate_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) UserActivity(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_UserActivity_FullMethodName, in, opts...)
}

func (c *faceHalServiceClient) ResetLockout(ctx context.Context, in *ResetLockoutRequest, opts ...grpc.CallOption) (*ResultResponse, error) {
	return rpc.Invoke[ResultResponse](ctx, c.cc, FaceHalService_ResetLockout_FullMethodName, in, opts...)
}

// FaceHalServiceServer is the server API for the backend service.
type FaceHalServiceServer interface {
	GetDeviceId(context.Context, *Empty) (*DeviceIdResponse, error)
	SetCallback(context.Context, *SetCallbackRequest) (*Empty, error)
	SetActiveUser(context.Context, *SetActiveUserRequest) (*ResultResponse, error)
	GenerateChallenge(context.Context, *GenerateChallengeRequest) (*ChallengeResponse, error)
	Enroll(context.Context, *EnrollRequest) (*ResultResponse, error)
	RevokeChallenge(context.Context, *Empty) (*ResultResponse, error)
	SetFeature(context.Context, *SetFeatureRequest) (*ResultResponse, error)
	GetFeature(context.Context, *GetFeatureRequest) (*GetFeatureResponse, error)
	GetAuthenticatorId(context.Context, *Empty) (*AuthenticatorIdResponse, error)
	Cancel(context.Context, *Empty) (*ResultResponse, error)
	Enumerate(context.Context, *Empty) (*ResultResponse, error)
	Remove(context.Context, *RemoveRequest) (*ResultResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*ResultResponse, error)
	UserActivity(context.Context, *Empty) (*ResultResponse, error)
	ResetLockout(context.Context, *ResetLockoutRequest) (*ResultResponse, error)
}

// UnimplementedFaceHalServiceServer answers every call with codes.Unimplemented.
// Embed it to stay forward compatible when methods are added.
type UnimplementedFaceHalServiceServer struct{}

func (UnimplementedFaceHalServiceServer) GetDeviceId(context.Context, *Empty) (*DeviceIdResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDeviceId not implemented")
}
func (UnimplementedFaceHalServiceServer) SetCallback(context.Context, *SetCallbackRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCallback not implemented")
}
func (UnimplementedFaceHalServiceServer) SetActiveUser(context.Context, *SetActiveUserRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetActiveUser not implemented")
}
func (UnimplementedFaceHalServiceServer) GenerateChallenge(context.Context, *GenerateChallengeRequest) (*ChallengeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateChallenge not implemented")
}
func (UnimplementedFaceHalServiceServer) Enroll(context.Context, *EnrollRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Enroll not implemented")
}
func (UnimplementedFaceHalServiceServer) RevokeChallenge(context.Context, *Empty) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RevokeChallenge not implemented")
}
func (UnimplementedFaceHalServiceServer) SetFeature(context.Context, *SetFeatureRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetFeature not implemented")
}
func (UnimplementedFaceHalServiceServer) GetFeature(context.Context, *GetFeatureRequest) (*GetFeatureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFeature not implemented")
}
func (UnimplementedFaceHalServiceServer) GetAuthenticatorId(context.Context, *Empty) (*AuthenticatorIdResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAuthenticatorId not implemented")
}
func (UnimplementedFaceHalServiceServer) Cancel(context.Context, *Empty) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}
func (UnimplementedFaceHalServiceServer) Enumerate(context.Context, *Empty) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Enumerate not implemented")
}
func (UnimplementedFaceHalServiceServer) Remove(context.Context, *RemoveRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedFaceHalServiceServer) Authenticate(context.Context, *AuthenticateRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedFaceHalServiceServer) UserActivity(context.Context, *Empty) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserActivity not implemented")
}
func (UnimplementedFaceHalServiceServer) ResetLockout(context.Context, *ResetLockoutRequest) (*ResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetLockout not implemented")
}

// RegisterFaceHalServiceServer registers srv on s.
func RegisterFaceHalServiceServer(s grpc.ServiceRegistrar, srv FaceHalServiceServer) {
	s.RegisterService(&FaceHalService_ServiceDesc, srv)
}

// FaceHalService_ServiceDesc describes the backend service for grpc.RegisterService.
var FaceHalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: FaceHalService_ServiceName,
	HandlerType: (*FaceHalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDeviceId", Handler: rpc.UnaryHandler(FaceHalService_GetDeviceId_FullMethodName, FaceHalServiceServer.GetDeviceId)},
		{MethodName: "SetCallback", Handler: rpc.UnaryHandler(FaceHalService_SetCallback_FullMethodName, FaceHalServiceServer.SetCallback)},
		{MethodName: "SetActiveUser", Handler: rpc.UnaryHandler(FaceHalService_SetActiveUser_FullMethodName, FaceHalServiceServer.SetActiveUser)},
		{MethodName: "GenerateChallenge", Handler: rpc.UnaryHandler(FaceHalService_GenerateChallenge_FullMethodName, FaceHalServiceServer.GenerateChallenge)},
		{MethodName: "Enroll", Handler: rpc.UnaryHandler(FaceHalService_Enroll_FullMethodName, FaceHalServiceServer.Enroll)},
		{MethodName: "RevokeChallenge", Handler: rpc.UnaryHandler(FaceHalService_RevokeChallenge_FullMethodName, FaceHalServiceServer.RevokeChallenge)},
		{MethodName: "SetFeature", Handler: rpc.UnaryHandler(FaceHalService_SetFeature_FullMethodName, FaceHalServiceServer.SetFeature)},
		{MethodName: "GetFeature", Handler: rpc.UnaryHandler(FaceHalService_GetFeature_FullMethodName, FaceHalServiceServer.GetFeature)},
		{MethodName: "GetAuthenticatorId", Handler: rpc.UnaryHandler(FaceHalService_GetAuthenticatorId_FullMethodName, FaceHalServiceServer.GetAuthenticatorId)},
		{MethodName: "Cancel", Handler: rpc.UnaryHandler(FaceHalService_Cancel_FullMethodName, FaceHalServiceServer.Cancel)},
		{MethodName: "Enumerate", Handler: rpc.UnaryHandler(FaceHalService_Enumerate_FullMethodName, FaceHalServiceServer.Enumerate)},
		{MethodName: "Remove", Handler: rpc.UnaryHandler(FaceHalService_Remove_FullMethodName, FaceHalServiceServer.Remove)},
		{MethodName: "Authenticate", Handler: rpc.UnaryHandler(FaceHalService_Authenticate_FullMethodName, FaceHalServiceServer.Authenticate)},
		{MethodName: "UserActivity", Handler: rpc.UnaryHandler(FaceHalService_UserActivity_FullMethodName, FaceHalServiceServer.UserActivity)},
		{MethodName: "ResetLockout", Handler: rpc.UnaryHandler(FaceHalService_ResetLockout_FullMethodName, FaceHalServiceServer.ResetLockout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "facehal/v1",
}

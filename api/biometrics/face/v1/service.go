package facev1

import (
	"context"

	"github.com/louisbranch/facebridge/api/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Empty is the argument of calls that carry no payload.
type Empty = rpc.Empty

// BiometricsFace_ServiceName is the full gRPC name of the client-facing service.
const BiometricsFace_ServiceName = "biometrics.face.v1.BiometricsFace"

const biometricsFacePrefix = "/" + BiometricsFace_ServiceName + "/"

// Full method names.
const (
	BiometricsFace_SetCallback_FullMethodName        = biometricsFacePrefix + "SetCallback"
	BiometricsFace_SetActiveUser_FullMethodName      = biometricsFacePrefix + "SetActiveUser"
	BiometricsFace_GenerateChallenge_FullMethodName  = biometricsFacePrefix + "GenerateChallenge"
	BiometricsFace_Enroll_FullMethodName             = biometricsFacePrefix + "Enroll"
	BiometricsFace_RevokeChallenge_FullMethodName    = biometricsFacePrefix + "RevokeChallenge"
	BiometricsFace_SetFeature_FullMethodName         = biometricsFacePrefix + "SetFeature"
	BiometricsFace_GetFeature_FullMethodName         = biometricsFacePrefix + "GetFeature"
	BiometricsFace_GetAuthenticatorId_FullMethodName = biometricsFacePrefix + "GetAuthenticatorId"
	BiometricsFace_Cancel_FullMethodName             = biometricsFacePrefix + "Cancel"
	BiometricsFace_Enumerate_FullMethodName          = biometricsFacePrefix + "Enumerate"
	BiometricsFace_Remove_FullMethodName             = biometricsFacePrefix + "Remove"
	BiometricsFace_Authenticate_FullMethodName       = biometricsFacePrefix + "Authenticate"
	BiometricsFace_UserActivity_FullMethodName       = biometricsFacePrefix + "UserActivity"
	BiometricsFace_ResetLockout_FullMethodName       = biometricsFacePrefix + "ResetLockout"
)

// BiometricsFaceClient is the client API for the biometric face service.
type BiometricsFaceClient interface {
	SetCallback(ctx context.Context, in *SetCallbackRequest, opts ...grpc.CallOption) (*OptionalUint64, error)
	SetActiveUser(ctx context.Context, in *SetActiveUserRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	GenerateChallenge(ctx context.Context, in *GenerateChallengeRequest, opts ...grpc.CallOption) (*OptionalUint64, error)
	Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	RevokeChallenge(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error)
	SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	GetFeature(ctx context.Context, in *GetFeatureRequest, opts ...grpc.CallOption) (*OptionalBool, error)
	GetAuthenticatorId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OptionalUint64, error)
	Cancel(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error)
	Enumerate(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	UserActivity(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error)
	ResetLockout(ctx context.Context, in *ResetLockoutRequest, opts ...grpc.CallOption) (*StatusResponse, error)
}

type biometricsFaceClient struct {
	cc grpc.ClientConnInterface
}

// NewBiometricsFaceClient wraps a connection to the biometric face service.
func NewBiometricsFaceClient(cc grpc.ClientConnInterface) BiometricsFaceClient {
	return &biometricsFaceClient{cc: cc}
}

func (c *biometricsFaceClient) SetCallback(ctx context.Context, in *SetCallbackRequest, opts ...grpc.CallOption) (*OptionalUint64, error) {
	return rpc.Invoke[OptionalUint64](ctx, c.cc, BiometricsFace_SetCallback_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) SetActiveUser(ctx context.Context, in *SetActiveUserRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_SetActiveUser_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) GenerateChallenge(ctx context.Context, in *GenerateChallengeRequest, opts ...grpc.CallOption) (*OptionalUint64, error) {
	return rpc.Invoke[OptionalUint64](ctx, c.cc, BiometricsFace_GenerateChallenge_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_Enroll_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) RevokeChallenge(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_RevokeChallenge_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_SetFeature_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) GetFeature(ctx context.Context, in *GetFeatureRequest, opts ...grpc.CallOption) (*OptionalBool, error) {
	return rpc.Invoke[OptionalBool](ctx, c.cc, BiometricsFace_GetFeature_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) GetAuthenticatorId(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OptionalUint64, error) {
	return rpc.Invoke[OptionalUint64](ctx, c.cc, BiometricsFace_GetAuthenticatorId_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) Cancel(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_Cancel_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) Enumerate(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_Enumerate_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_Remove_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_Authenticate_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) UserActivity(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_UserActivity_FullMethodName, in, opts...)
}

func (c *biometricsFaceClient) ResetLockout(ctx context.Context, in *ResetLockoutRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return rpc.Invoke[StatusResponse](ctx, c.cc, BiometricsFace_ResetLockout_FullMethodName, in, opts...)
}

// BiometricsFaceServer is the server API for the biometric face service.
type BiometricsFaceServer interface {
	SetCallback(context.Context, *SetCallbackRequest) (*OptionalUint64, error)
	SetActiveUser(context.Context, *SetActiveUserRequest) (*StatusResponse, error)
	GenerateChallenge(context.Context, *GenerateChallengeRequest) (*OptionalUint64, error)
	Enroll(context.Context, *EnrollRequest) (*StatusResponse, error)
	RevokeChallenge(context.Context, *Empty) (*StatusResponse, error)
	SetFeature(context.Context, *SetFeatureRequest) (*StatusResponse, error)
	GetFeature(context.Context, *GetFeatureRequest) (*OptionalBool, error)
	GetAuthenticatorId(context.Context, *Empty) (*OptionalUint64, error)
	Cancel(context.Context, *Empty) (*StatusResponse, error)
	Enumerate(context.Context, *Empty) (*StatusResponse, error)
	Remove(context.Context, *RemoveRequest) (*StatusResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*StatusResponse, error)
	UserActivity(context.Context, *Empty) (*StatusResponse, error)
	ResetLockout(context.Context, *ResetLockoutRequest) (*StatusResponse, error)
}

// UnimplementedBiometricsFaceServer answers every call with codes.Unimplemented.
type UnimplementedBiometricsFaceServer struct{}

func (UnimplementedBiometricsFaceServer) SetCallback(context.Context, *SetCallbackRequest) (*OptionalUint64, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCallback not implemented")
}
func (UnimplementedBiometricsFaceServer) SetActiveUser(context.Context, *SetActiveUserRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetActiveUser not implemented")
}
func (UnimplementedBiometricsFaceServer) GenerateChallenge(context.Context, *GenerateChallengeRequest) (*OptionalUint64, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateChallenge not implemented")
}
func (UnimplementedBiometricsFaceServer) Enroll(context.Context, *EnrollRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Enroll not implemented")
}
func (UnimplementedBiometricsFaceServer) RevokeChallenge(context.Context, *Empty) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RevokeChallenge not implemented")
}
func (UnimplementedBiometricsFaceServer) SetFeature(context.Context, *SetFeatureRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetFeature not implemented")
}
func (UnimplementedBiometricsFaceServer) GetFeature(context.Context, *GetFeatureRequest) (*OptionalBool, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFeature not implemented")
}
func (UnimplementedBiometricsFaceServer) GetAuthenticatorId(context.Context, *Empty) (*OptionalUint64, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAuthenticatorId not implemented")
}
func (UnimplementedBiometricsFaceServer) Cancel(context.Context, *Empty) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}
func (UnimplementedBiometricsFaceServer) Enumerate(context.Context, *Empty) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Enumerate not implemented")
}
func (UnimplementedBiometricsFaceServer) Remove(context.Context, *RemoveRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedBiometricsFaceServer) Authenticate(context.Context, *AuthenticateRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedBiometricsFaceServer) UserActivity(context.Context, *Empty) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserActivity not implemented")
}
func (UnimplementedBiometricsFaceServer) ResetLockout(context.Context, *ResetLockoutRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetLockout not implemented")
}

// RegisterBiometricsFaceServer registers srv on s.
func RegisterBiometricsFaceServer(s grpc.ServiceRegistrar, srv BiometricsFaceServer) {
	s.RegisterService(&BiometricsFace_ServiceDesc, srv)
}

// BiometricsFace_ServiceDesc describes the biometric face service for grpc.RegisterService.
var BiometricsFace_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BiometricsFace_ServiceName,
	HandlerType: (*BiometricsFaceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetCallback", Handler: rpc.UnaryHandler(BiometricsFace_SetCallback_FullMethodName, BiometricsFaceServer.SetCallback)},
		{MethodName: "SetActiveUser", Handler: rpc.UnaryHandler(BiometricsFace_SetActiveUser_FullMethodName, BiometricsFaceServer.SetActiveUser)},
		{MethodName: "GenerateChallenge", Handler: rpc.UnaryHandler(BiometricsFace_GenerateChallenge_FullMethodName, BiometricsFaceServer.GenerateChallenge)},
		{MethodName: "Enroll", Handler: rpc.UnaryHandler(BiometricsFace_Enroll_FullMethodName, BiometricsFaceServer.Enroll)},
		{MethodName: "RevokeChallenge", Handler: rpc.UnaryHandler(BiometricsFace_RevokeChallenge_FullMethodName, BiometricsFaceServer.RevokeChallenge)},
		{MethodName: "SetFeature", Handler: rpc.UnaryHandler(BiometricsFace_SetFeature_FullMethodName, BiometricsFaceServer.SetFeature)},
		{MethodName: "GetFeature", Handler: rpc.UnaryHandler(BiometricsFace_GetFeature_FullMethodName, BiometricsFaceServer.GetFeature)},
		{MethodName: "GetAuthenticatorId", Handler: rpc.UnaryHandler(BiometricsFace_GetAuthenticatorId_FullMethodName, BiometricsFaceServer.GetAuthenticatorId)},
		{MethodName: "Cancel", Handler: rpc.UnaryHandler(BiometricsFace_Cancel_FullMethodName, BiometricsFaceServer.Cancel)},
		{MethodName: "Enumerate", Handler: rpc.UnaryHandler(BiometricsFace_Enumerate_FullMethodName, BiometricsFaceServer.Enumerate)},
		{MethodName: "Remove", Handler: rpc.UnaryHandler(BiometricsFace_Remove_FullMethodName, BiometricsFaceServer.Remove)},
		{MethodName: "Authenticate", Handler: rpc.UnaryHandler(BiometricsFace_Authenticate_FullMethodName, BiometricsFaceServer.Authenticate)},
		{MethodName: "UserActivity", Handler: rpc.UnaryHandler(BiometricsFace_UserActivity_FullMethodName, BiometricsFaceServer.UserActivity)},
		{MethodName: "ResetLockout", Handler: rpc.UnaryHandler(BiometricsFace_ResetLockout_FullMethodName, BiometricsFaceServer.ResetLockout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "biometrics/face/v1",
}

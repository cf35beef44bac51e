// Package face exposes the client-facing biometrics face contract over gRPC.
package face

import (
	"context"
	"errors"
	"strings"
	"sync"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	apperrors "github.com/louisbranch/facebridge/internal/platform/errors"
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

// Service exposes biometrics.face.v1 gRPC operations.
type Service struct {
	facev1.UnimplementedBiometricsFaceServer

	face        face.Service
	dialOptions []gogrpc.DialOption
	logf        func(string, ...any)

	// mu covers listener registration end to end. listener is the remote
	// listener bound by the last successful SetCallback.
	mu       sync.Mutex
	listener *RemoteListener
}

// NewService creates the gRPC edge over svc. dialOptions are used to reach
// client callback servers.
func NewService(svc face.Service, logf func(string, ...any), dialOptions ...gogrpc.DialOption) *Service {
	return &Service{
		face:        svc,
		dialOptions: dialOptions,
		logf:        logf,
	}
}

// Close releases the current listener connection.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.listener.Close()
	s.listener = nil
	return err
}

// SetCallback registers the client callback server named in the request.
func (s *Service) SetCallback(ctx context.Context, in *facev1.SetCallbackRequest) (*facev1.OptionalUint64, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	target := ""
	if in != nil {
		target = strings.TrimSpace(in.CallbackTarget)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var listener face.Callback
	var remote *RemoteListener
	if target != "" {
		dialed, err := DialListener(target, s.dialOptions...)
		if err != nil {
			appErr := apperrors.Wrap(apperrors.CodeListenerUnreachable, "callback target: "+err.Error(), err)
			appErr.GRPCCode = codes.InvalidArgument
			return nil, appErr.ToGRPCStatus()
		}
		remote = dialed
		listener = dialed
	}

	result, err := s.face.SetCallback(ctx, listener)
	if err != nil {
		_ = remote.Close()
		return nil, transportStatus(err)
	}
	if remote == nil || result.Status != face.StatusOK {
		_ = remote.Close()
		return optionalUint64(result), nil
	}

	if previous := s.listener; previous != nil {
		if err := previous.Close(); err != nil && s.logf != nil {
			s.logf("close replaced listener %s: %v", previous.Target(), err)
		}
	}
	s.listener = remote
	if s.logf != nil {
		s.logf("listener registered at %s", target)
	}
	return optionalUint64(result), nil
}

func (s *Service) SetActiveUser(ctx context.Context, in *facev1.SetActiveUserRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.SetActiveUserRequest{}
	}
	return statusResponse(s.face.SetActiveUser(ctx, in.UserId, in.StorePath))
}

func (s *Service) GenerateChallenge(ctx context.Context, in *facev1.GenerateChallengeRequest) (*facev1.OptionalUint64, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.GenerateChallengeRequest{}
	}
	result, err := s.face.GenerateChallenge(ctx, in.ChallengeTimeoutSec)
	if err != nil {
		return nil, transportStatus(err)
	}
	return optionalUint64(result), nil
}

func (s *Service) Enroll(ctx context.Context, in *facev1.EnrollRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.EnrollRequest{}
	}
	var features []face.Feature
	if in.DisabledFeatures != nil {
		features = make([]face.Feature, len(in.DisabledFeatures))
		for i, feature := range in.DisabledFeatures {
			features[i] = face.Feature(feature)
		}
	}
	return statusResponse(s.face.Enroll(ctx, in.Hat, in.TimeoutSec, features))
}

func (s *Service) RevokeChallenge(ctx context.Context, _ *facev1.Empty) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return statusResponse(s.face.RevokeChallenge(ctx))
}

func (s *Service) SetFeature(ctx context.Context, in *facev1.SetFeatureRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.SetFeatureRequest{}
	}
	return statusResponse(s.face.SetFeature(ctx, face.Feature(in.Feature), in.Enabled, in.Hat, in.FaceId))
}

func (s *Service) GetFeature(ctx context.Context, in *facev1.GetFeatureRequest) (*facev1.OptionalBool, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.GetFeatureRequest{}
	}
	result, err := s.face.GetFeature(ctx, face.Feature(in.Feature), in.FaceId)
	if err != nil {
		return nil, transportStatus(err)
	}
	return &facev1.OptionalBool{Status: int32(result.Status), Value: result.Value}, nil
}

func (s *Service) GetAuthenticatorId(ctx context.Context, _ *facev1.Empty) (*facev1.OptionalUint64, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	result, err := s.face.GetAuthenticatorID(ctx)
	if err != nil {
		return nil, transportStatus(err)
	}
	return optionalUint64(result), nil
}

func (s *Service) Cancel(ctx context.Context, _ *facev1.Empty) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return statusResponse(s.face.Cancel(ctx))
}

func (s *Service) Enumerate(ctx context.Context, _ *facev1.Empty) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return statusResponse(s.face.Enumerate(ctx))
}

func (s *Service) Remove(ctx context.Context, in *facev1.RemoveRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.RemoveRequest{}
	}
	return statusResponse(s.face.Remove(ctx, in.FaceId))
}

func (s *Service) Authenticate(ctx context.Context, in *facev1.AuthenticateRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.AuthenticateRequest{}
	}
	return statusResponse(s.face.Authenticate(ctx, in.OperationId))
}

func (s *Service) UserActivity(ctx context.Context, _ *facev1.Empty) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return statusResponse(s.face.UserActivity(ctx))
}

func (s *Service) ResetLockout(ctx context.Context, in *facev1.ResetLockoutRequest) (*facev1.StatusResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		in = &facev1.ResetLockoutRequest{}
	}
	return statusResponse(s.face.ResetLockout(ctx, in.Hat))
}

func (s *Service) ready() error {
	if s == nil || s.face == nil {
		return apperrors.Wrap(apperrors.CodeBackendUnbound, hal.ErrBackendUnbound.Error(), hal.ErrBackendUnbound).ToGRPCStatus()
	}
	return nil
}

func statusResponse(result face.Status, err error) (*facev1.StatusResponse, error) {
	if err != nil {
		return nil, transportStatus(err)
	}
	return &facev1.StatusResponse{Status: int32(result)}, nil
}

func optionalUint64(result face.OptionalUint64) *facev1.OptionalUint64 {
	return &facev1.OptionalUint64{Status: int32(result.Status), Value: result.Value}
}

// transportStatus converts a transport failure into a gRPC status carrying
// the bridge error reason. An embedded gRPC code is kept.
func transportStatus(err error) error {
	var metadata map[string]string
	var transport *hal.TransportError
	if errors.As(err, &transport) && transport.Op != "" {
		metadata = map[string]string{"op": transport.Op}
	}
	appErr := apperrors.WrapWithMetadata(apperrors.CodeBackendUnavailable, err.Error(), metadata, err)
	if errors.Is(err, hal.ErrBackendUnbound) {
		appErr.Code = apperrors.CodeBackendUnbound
	} else if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		appErr.GRPCCode = st.Code()
	}
	return appErr.ToGRPCStatus()
}

// Package facehal connects the bridge to the face HAL backend over gRPC.
package facehal

import (
	"context"
	"errors"

	gogrpc "google.golang.org/grpc"

	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
	"github.com/louisbranch/facebridge/internal/services/bridge/locator"
)

// Service is the registry entry of the face HAL backend.
var Service = locator.Service{
	Name:   discovery.ServiceFaceHal,
	Health: facehalv1.FaceHalService_ServiceName,
}

var errCallbackEndpointMissing = errors.New("callback endpoint is not configured")

var _ hal.Service = (*Client)(nil)

// Client implements hal.Service on a backend connection. Events for the
// registered callback arrive through the CallbackEndpoint.
type Client struct {
	rpc      facehalv1.FaceHalServiceClient
	endpoint *CallbackEndpoint
}

// NewClient wraps conn. endpoint receives the callbacks passed to SetCallback.
func NewClient(conn gogrpc.ClientConnInterface, endpoint *CallbackEndpoint) *Client {
	return &Client{
		rpc:      facehalv1.NewFaceHalServiceClient(conn),
		endpoint: endpoint,
	}
}

// GetDeviceID returns the backend device id.
func (c *Client) GetDeviceID(ctx context.Context) (int64, error) {
	resp, err := c.rpc.GetDeviceId(ctx, &facehalv1.Empty{})
	if err != nil {
		return 0, transportError("GetDeviceId", err)
	}
	return resp.DeviceId, nil
}

// SetCallback binds callback to the endpoint and registers the endpoint with
// the backend. Events the backend emits while handling the registration reach
// callback. A failed registration restores the previous binding.
func (c *Client) SetCallback(ctx context.Context, callback hal.Callback) error {
	if c.endpoint == nil {
		return transportError("SetCallback", errCallbackEndpointMissing)
	}
	next, previous := c.endpoint.swap(callback)
	if _, err := c.rpc.SetCallback(ctx, &facehalv1.SetCallbackRequest{CallbackTarget: c.endpoint.Target()}); err != nil {
		c.endpoint.restore(next, previous)
		return transportError("SetCallback", err)
	}
	return nil
}

// SetActiveUser forwards to the backend.
func (c *Client) SetActiveUser(ctx context.Context, userID int32, storePath string) (int32, error) {
	resp, err := c.rpc.SetActiveUser(ctx, &facehalv1.SetActiveUserRequest{UserId: userID, StorePath: storePath})
	return resultCode("SetActiveUser", resp, err)
}

// GenerateChallenge forwards to the backend.
func (c *Client) GenerateChallenge(ctx context.Context, timeout int32) (int64, error) {
	resp, err := c.rpc.GenerateChallenge(ctx, &facehalv1.GenerateChallengeRequest{Timeout: timeout})
	if err != nil {
		return 0, transportError("GenerateChallenge", err)
	}
	return resp.Challenge, nil
}

// Enroll forwards to the backend.
func (c *Client) Enroll(ctx context.Context, token []byte, timeout int32, disabledFeatures []int32) (int32, error) {
	resp, err := c.rpc.Enroll(ctx, &facehalv1.EnrollRequest{
		Token:            token,
		Timeout:          timeout,
		DisabledFeatures: disabledFeatures,
	})
	return resultCode("Enroll", resp, err)
}

// RevokeChallenge forwards to the backend.
func (c *Client) RevokeChallenge(ctx context.Context) (int32, error) {
	resp, err := c.rpc.RevokeChallenge(ctx, &facehalv1.Empty{})
	return resultCode("RevokeChallenge", resp, err)
}

// SetFeature forwards to the backend.
func (c *Client) SetFeature(ctx context.Context, feature int32, enable bool, token []byte, faceID int32) (int32, error) {
	resp, err := c.rpc.SetFeature(ctx, &facehalv1.SetFeatureRequest{
		Feature: feature,
		Enable:  enable,
		Token:   token,
		FaceId:  faceID,
	})
	return resultCode("SetFeature", resp, err)
}

// GetFeature forwards to the backend.
func (c *Client) GetFeature(ctx context.Context, feature int32, faceID int32) (bool, error) {
	resp, err := c.rpc.GetFeature(ctx, &facehalv1.GetFeatureRequest{Feature: feature, FaceId: faceID})
	if err != nil {
		return false, transportError("GetFeature", err)
	}
	return resp.Enabled, nil
}

// GetAuthenticatorID forwards to the backend.
func (c *Client) GetAuthenticatorID(ctx context.Context) (int64, error) {
	resp, err := c.rpc.GetAuthenticatorId(ctx, &facehalv1.Empty{})
	if err != nil {
		return 0, transportError("GetAuthenticatorId", err)
	}
	return resp.AuthenticatorId, nil
}

// Cancel forwards to the backend.
func (c *Client) Cancel(ctx context.Context) (int32, error) {
	resp, err := c.rpc.Cancel(ctx, &facehalv1.Empty{})
	return resultCode("Cancel", resp, err)
}

// Enumerate forwards to the backend.
func (c *Client) Enumerate(ctx context.Context) (int32, error) {
	resp, err := c.rpc.Enumerate(ctx, &facehalv1.Empty{})
	return resultCode("Enumerate", resp, err)
}

// Remove forwards to the backend.
func (c *Client) Remove(ctx context.Context, faceID int32) (int32, error) {
	resp, err := c.rpc.Remove(ctx, &facehalv1.RemoveRequest{FaceId: faceID})
	return resultCode("Remove", resp, err)
}

// Authenticate forwards to the backend.
func (c *Client) Authenticate(ctx context.Context, operationID int64) (int32, error) {
	resp, err := c.rpc.Authenticate(ctx, &facehalv1.AuthenticateRequest{OperationId: operationID})
	return resultCode("Authenticate", resp, err)
}

// UserActivity forwards to the backend.
func (c *Client) UserActivity(ctx context.Context) (int32, error) {
	resp, err := c.rpc.UserActivity(ctx, &facehalv1.Empty{})
	return resultCode("UserActivity", resp, err)
}

// ResetLockout forwards to the backend.
func (c *Client) ResetLockout(ctx context.Context, token []byte) (int32, error) {
	resp, err := c.rpc.ResetLockout(ctx, &facehalv1.ResetLockoutRequest{Token: token})
	return resultCode("ResetLockout", resp, err)
}

func resultCode(op string, resp *facehalv1.ResultResponse, err error) (int32, error) {
	if err != nil {
		return 0, transportError(op, err)
	}
	return resp.Result, nil
}

func transportError(op string, err error) error {
	return &hal.TransportError{Op: op, Err: err}
}

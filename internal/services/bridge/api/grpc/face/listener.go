package face

import (
	"context"
	"fmt"

	gogrpc "google.golang.org/grpc"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
)

var _ face.Callback = (*RemoteListener)(nil)

// RemoteListener delivers relayed events to a client-hosted callback server.
type RemoteListener struct {
	target string
	conn   *gogrpc.ClientConn
	client facev1.BiometricsFaceClientCallbackClient
}

// DialListener creates a listener for the callback server at target.
func DialListener(target string, opts ...gogrpc.DialOption) (*RemoteListener, error) {
	conn, err := gogrpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial listener %s: %w", target, err)
	}
	return &RemoteListener{
		target: target,
		conn:   conn,
		client: facev1.NewBiometricsFaceClientCallbackClient(conn),
	}, nil
}

// Target returns the callback server target.
func (l *RemoteListener) Target() string {
	return l.target
}

// Close releases the listener connection.
func (l *RemoteListener) Close() error {
	if l == nil || l.conn == nil {
		return nil
	}
	return l.conn.Close()
}

func (l *RemoteListener) OnEnrollResult(ctx context.Context, deviceID uint64, faceID uint32, userID int32, remaining uint32) error {
	_, err := l.client.OnEnrollResult(ctx, &facev1.EnrollResultEvent{DeviceId: deviceID, FaceId: faceID, UserId: userID, Remaining: remaining})
	return err
}

func (l *RemoteListener) OnAuthenticated(ctx context.Context, deviceID uint64, faceID uint32, userID int32, token []byte) error {
	_, err := l.client.OnAuthenticated(ctx, &facev1.AuthenticatedEvent{DeviceId: deviceID, FaceId: faceID, UserId: userID, Token: token})
	return err
}

func (l *RemoteListener) OnAcquired(ctx context.Context, deviceID uint64, userID int32, acquiredInfo face.AcquiredInfo, vendorCode int32) error {
	_, err := l.client.OnAcquired(ctx, &facev1.AcquiredEvent{DeviceId: deviceID, UserId: userID, AcquiredInfo: int32(acquiredInfo), VendorCode: vendorCode})
	return err
}

func (l *RemoteListener) OnError(ctx context.Context, deviceID uint64, userID int32, code face.Error, vendorCode int32) error {
	_, err := l.client.OnError(ctx, &facev1.ErrorEvent{DeviceId: deviceID, UserId: userID, Error: int32(code), VendorCode: vendorCode})
	return err
}

func (l *RemoteListener) OnRemoved(ctx context.Context, deviceID uint64, removed []uint32, userID int32) error {
	_, err := l.client.OnRemoved(ctx, &facev1.RemovedEvent{DeviceId: deviceID, Removed: removed, UserId: userID})
	return err
}

func (l *RemoteListener) OnEnumerate(ctx context.Context, deviceID uint64, faceIDs []uint32, userID int32) error {
	_, err := l.client.OnEnumerate(ctx, &facev1.EnumerateEvent{DeviceId: deviceID, FaceIds: faceIDs, UserId: userID})
	return err
}

func (l *RemoteListener) OnLockoutChanged(ctx context.Context, duration uint64) error {
	_, err := l.client.OnLockoutChanged(ctx, &facev1.LockoutChangedEvent{Duration: duration})
	return err
}

package facehal

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
)

type callbackEvent struct {
	kind    string
	ints    []int64
	faceIDs []int32
	token   []byte
}

type recordingCallback struct {
	mu       sync.Mutex
	received []callbackEvent
	err      error
}

func (c *recordingCallback) add(event callbackEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.received = append(c.received, event)
	return c.err
}

func (c *recordingCallback) events() []callbackEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]callbackEvent(nil), c.received...)
}

func (c *recordingCallback) OnEnrollResult(_ context.Context, deviceID int64, faceID, userID, remaining int32) error {
	return c.add(callbackEvent{kind: "enroll", ints: []int64{deviceID, int64(faceID), int64(userID), int64(remaining)}})
}

func (c *recordingCallback) OnAuthenticated(_ context.Context, deviceID int64, faceID, userID int32, token []byte) error {
	return c.add(callbackEvent{kind: "authenticated", ints: []int64{deviceID, int64(faceID), int64(userID)}, token: token})
}

func (c *recordingCallback) OnAcquired(_ context.Context, deviceID int64, userID, acquiredInfo, vendorCode int32) error {
	return c.add(callbackEvent{kind: "acquired", ints: []int64{deviceID, int64(userID), int64(acquiredInfo), int64(vendorCode)}})
}

func (c *recordingCallback) OnError(_ context.Context, deviceID int64, userID, errorCode, vendorCode int32) error {
	return c.add(callbackEvent{kind: "error", ints: []int64{deviceID, int64(userID), int64(errorCode), int64(vendorCode)}})
}

func (c *recordingCallback) OnRemoved(_ context.Context, deviceID int64, faceIDs []int32, userID int32) error {
	return c.add(callbackEvent{kind: "removed", ints: []int64{deviceID, int64(userID)}, faceIDs: faceIDs})
}

func (c *recordingCallback) OnEnumerate(_ context.Context, deviceID int64, faceIDs []int32, userID int32) error {
	return c.add(callbackEvent{kind: "enumerate", ints: []int64{deviceID, int64(userID)}, faceIDs: faceIDs})
}

func (c *recordingCallback) OnLockoutChanged(_ context.Context, duration int64) error {
	return c.add(callbackEvent{kind: "lockout", ints: []int64{duration}})
}

func TestCallbackEndpointForwardsEvents(t *testing.T) {
	cb := &recordingCallback{}
	endpoint := NewCallbackEndpoint("unix:///tmp/unused.sock", nil)
	endpoint.Bind(cb)
	ctx := context.Background()

	_, _ = endpoint.OnEnrollResult(ctx, &facehalv1.EnrollResultEvent{DeviceId: 1, FaceId: 2, UserId: 3, Remaining: 4})
	_, _ = endpoint.OnAuthenticated(ctx, &facehalv1.AuthenticatedEvent{DeviceId: 1, FaceId: 2, UserId: 3, Token: []byte{9}})
	_, _ = endpoint.OnAcquired(ctx, &facehalv1.AcquiredEvent{DeviceId: 1, UserId: 2, AcquiredInfo: 3, VendorCode: 0})
	_, _ = endpoint.OnError(ctx, &facehalv1.ErrorEvent{DeviceId: 1, UserId: 2, Error: 7, VendorCode: 5})
	_, _ = endpoint.OnRemoved(ctx, &facehalv1.RemovedEvent{DeviceId: 1, FaceIds: []int32{3, 17, 42}, UserId: 2})
	_, _ = endpoint.OnEnumerate(ctx, &facehalv1.EnumerateEvent{DeviceId: 1, FaceIds: []int32{42}, UserId: 2})
	_, _ = endpoint.OnLockoutChanged(ctx, &facehalv1.LockoutChangedEvent{Duration: 30000})

	want := []callbackEvent{
		{kind: "enroll", ints: []int64{1, 2, 3, 4}},
		{kind: "authenticated", ints: []int64{1, 2, 3}, token: []byte{9}},
		{kind: "acquired", ints: []int64{1, 2, 3, 0}},
		{kind: "error", ints: []int64{1, 2, 7, 5}},
		{kind: "removed", ints: []int64{1, 2}, faceIDs: []int32{3, 17, 42}},
		{kind: "enumerate", ints: []int64{1, 2}, faceIDs: []int32{42}},
		{kind: "lockout", ints: []int64{30000}},
	}
	if got := cb.events(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
}

func TestCallbackEndpointDropsWithoutBinding(t *testing.T) {
	var logs []string
	endpoint := NewCallbackEndpoint("unix:///tmp/unused.sock", func(format string, args ...any) {
		logs = append(logs, fmt.Sprintf(format, args...))
	})

	resp, err := endpoint.OnAcquired(context.Background(), &facehalv1.AcquiredEvent{AcquiredInfo: 1})
	if err != nil || resp == nil {
		t.Fatalf("ack = %v, %v", resp, err)
	}
	if len(logs) != 1 || !strings.Contains(logs[0], "OnAcquired") {
		t.Fatalf("expected a drop log, got %v", logs)
	}
}

func TestCallbackEndpointAcknowledgesCallbackErrors(t *testing.T) {
	var logged int
	endpoint := NewCallbackEndpoint("", func(string, ...any) { logged++ })
	endpoint.Bind(&recordingCallback{err: errors.New("listener gone")})

	if _, err := endpoint.OnLockoutChanged(context.Background(), &facehalv1.LockoutChangedEvent{Duration: 1}); err != nil {
		t.Fatalf("expected ack, got %v", err)
	}
	if logged != 1 {
		t.Fatalf("logged %d times, want 1", logged)
	}
}

func TestCallbackEndpointBindReplacesAndClears(t *testing.T) {
	endpoint := NewCallbackEndpoint("", nil)
	if endpoint.Bound() != nil {
		t.Fatal("expected no callback bound initially")
	}
	first := &recordingCallback{}
	second := &recordingCallback{}
	endpoint.Bind(first)
	endpoint.Bind(second)
	if endpoint.Bound() != second {
		t.Fatal("expected last bound callback")
	}
	endpoint.Bind(nil)
	if endpoint.Bound() != nil {
		t.Fatal("expected callback to be cleared")
	}
}

func TestCallbackEndpointRestoreKeepsLaterBinding(t *testing.T) {
	endpoint := NewCallbackEndpoint("unix:///tmp/bridge.callback.sock", nil)
	previous := &recordingCallback{}
	endpoint.Bind(previous)

	attempt := &recordingCallback{}
	next, replaced := endpoint.swap(attempt)
	if replaced == nil || replaced.Callback != previous {
		t.Fatal("expected swap to return the previous binding")
	}
	winner := &recordingCallback{}
	endpoint.Bind(winner)

	if endpoint.restore(next, replaced) {
		t.Fatal("expected restore to yield to the later binding")
	}
	if endpoint.Bound() != winner {
		t.Fatal("expected later binding to stay")
	}

	next, replaced = endpoint.swap(attempt)
	if !endpoint.restore(next, replaced) {
		t.Fatal("expected restore to succeed without a later binding")
	}
	if endpoint.Bound() != winner {
		t.Fatal("expected restored binding")
	}
}

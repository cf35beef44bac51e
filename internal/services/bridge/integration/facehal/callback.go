package facehal

import (
	"context"
	"sync/atomic"

	facehalv1 "github.com/louisbranch/facebridge/api/facehal/v1"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

var _ facehalv1.FaceHalServiceCallbackServer = (*CallbackEndpoint)(nil)

type boundCallback struct {
	hal.Callback
}

// CallbackEndpoint serves the backend callback contract and forwards each
// event to the bound hal.Callback. Events that arrive before a callback is
// bound are acknowledged and dropped.
type CallbackEndpoint struct {
	facehalv1.UnimplementedFaceHalServiceCallbackServer

	target   string
	callback atomic.Pointer[boundCallback]
	logf     func(string, ...any)
}

// NewCallbackEndpoint creates an endpoint that the backend reaches at target.
func NewCallbackEndpoint(target string, logf func(string, ...any)) *CallbackEndpoint {
	return &CallbackEndpoint{target: target, logf: logf}
}

// Target returns the dial target handed to the backend.
func (e *CallbackEndpoint) Target() string {
	return e.target
}

// Bind replaces the callback events are forwarded to.
func (e *CallbackEndpoint) Bind(callback hal.Callback) {
	e.swap(callback)
}

func (e *CallbackEndpoint) swap(callback hal.Callback) (next, previous *boundCallback) {
	if callback != nil {
		next = &boundCallback{Callback: callback}
	}
	return next, e.callback.Swap(next)
}

// restore puts previous back unless a later swap already replaced next.
func (e *CallbackEndpoint) restore(next, previous *boundCallback) bool {
	return e.callback.CompareAndSwap(next, previous)
}

// Bound returns the current callback, or nil when none is bound.
func (e *CallbackEndpoint) Bound() hal.Callback {
	bound := e.callback.Load()
	if bound == nil {
		return nil
	}
	return bound.Callback
}

func (e *CallbackEndpoint) OnEnrollResult(ctx context.Context, in *facehalv1.EnrollResultEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnEnrollResult"); cb != nil {
		e.ack("OnEnrollResult", cb.OnEnrollResult(ctx, in.DeviceId, in.FaceId, in.UserId, in.Remaining))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnAuthenticated(ctx context.Context, in *facehalv1.AuthenticatedEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnAuthenticated"); cb != nil {
		e.ack("OnAuthenticated", cb.OnAuthenticated(ctx, in.DeviceId, in.FaceId, in.UserId, in.Token))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnAcquired(ctx context.Context, in *facehalv1.AcquiredEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnAcquired"); cb != nil {
		e.ack("OnAcquired", cb.OnAcquired(ctx, in.DeviceId, in.UserId, in.AcquiredInfo, in.VendorCode))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnError(ctx context.Context, in *facehalv1.ErrorEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnError"); cb != nil {
		e.ack("OnError", cb.OnError(ctx, in.DeviceId, in.UserId, in.Error, in.VendorCode))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnRemoved(ctx context.Context, in *facehalv1.RemovedEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnRemoved"); cb != nil {
		e.ack("OnRemoved", cb.OnRemoved(ctx, in.DeviceId, in.FaceIds, in.UserId))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnEnumerate(ctx context.Context, in *facehalv1.EnumerateEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnEnumerate"); cb != nil {
		e.ack("OnEnumerate", cb.OnEnumerate(ctx, in.DeviceId, in.FaceIds, in.UserId))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) OnLockoutChanged(ctx context.Context, in *facehalv1.LockoutChangedEvent) (*facehalv1.Empty, error) {
	if cb := e.current("OnLockoutChanged"); cb != nil {
		e.ack("OnLockoutChanged", cb.OnLockoutChanged(ctx, in.Duration))
	}
	return &facehalv1.Empty{}, nil
}

func (e *CallbackEndpoint) current(event string) hal.Callback {
	cb := e.Bound()
	if cb == nil && e.logf != nil {
		e.logf("dropping %s: no listener registered", event)
	}
	return cb
}

func (e *CallbackEndpoint) ack(event string, err error) {
	if err != nil && e.logf != nil {
		e.logf("callback %s: %v", event, err)
	}
}

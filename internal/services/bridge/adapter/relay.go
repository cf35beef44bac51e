package adapter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

var _ hal.Callback = (*Relay)(nil)

// Relay forwards backend events to one client listener. Every method
// acknowledges the backend with a nil error; listener failures are logged.
type Relay struct {
	listener face.Callback
	tracer   trace.Tracer
	logf     func(string, ...any)
}

// NewRelay binds a relay to listener.
func NewRelay(listener face.Callback, tracer trace.Tracer, logf func(string, ...any)) *Relay {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Relay{
		listener: listener,
		tracer:   tracer,
		logf:     logf,
	}
}

// Listener returns the client listener this relay forwards to.
func (r *Relay) Listener() face.Callback {
	if r == nil {
		return nil
	}
	return r.listener
}

// OnEnrollResult relays enrollment progress.
func (r *Relay) OnEnrollResult(ctx context.Context, deviceID int64, faceID, userID, remaining int32) error {
	r.forward(ctx, "OnEnrollResult", func(ctx context.Context, l face.Callback) error {
		return l.OnEnrollResult(ctx, uint64(deviceID), uint32(faceID), userID, uint32(remaining))
	}, attribute.Int64("face.device_id", deviceID), attribute.Int("face.remaining", int(remaining)))
	return nil
}

// OnAuthenticated relays an authentication result.
func (r *Relay) OnAuthenticated(ctx context.Context, deviceID int64, faceID, userID int32, token []byte) error {
	r.forward(ctx, "OnAuthenticated", func(ctx context.Context, l face.Callback) error {
		return l.OnAuthenticated(ctx, uint64(deviceID), uint32(faceID), userID, token)
	}, attribute.Int64("face.device_id", deviceID), attribute.Int("face.user_id", int(userID)))
	return nil
}

// OnAcquired relays a frame acquisition notice.
func (r *Relay) OnAcquired(ctx context.Context, deviceID int64, userID, acquiredInfo, vendorCode int32) error {
	info := acquiredInfoToClient(acquiredInfo)
	if !info.Valid() {
		r.log("relay acquired info %d is outside the declared range", acquiredInfo)
	}
	r.forward(ctx, "OnAcquired", func(ctx context.Context, l face.Callback) error {
		return l.OnAcquired(ctx, uint64(deviceID), userID, info, vendorCode)
	}, attribute.Int64("face.device_id", deviceID), attribute.String("face.acquired_info", info.String()))
	return nil
}

// OnError relays an operation error.
func (r *Relay) OnError(ctx context.Context, deviceID int64, userID, errorCode, vendorCode int32) error {
	code := errorToClient(errorCode)
	if !code.Valid() {
		r.log("relay error code %d is outside the declared range", errorCode)
	}
	r.forward(ctx, "OnError", func(ctx context.Context, l face.Callback) error {
		return l.OnError(ctx, uint64(deviceID), userID, code, vendorCode)
	}, attribute.Int64("face.device_id", deviceID), attribute.String("face.error", code.String()))
	return nil
}

// OnRemoved relays removed template ids.
func (r *Relay) OnRemoved(ctx context.Context, deviceID int64, faceIDs []int32, userID int32) error {
	removed := faceIDsToClient(faceIDs)
	r.forward(ctx, "OnRemoved", func(ctx context.Context, l face.Callback) error {
		return l.OnRemoved(ctx, uint64(deviceID), removed, userID)
	}, attribute.Int64("face.device_id", deviceID), attribute.Int("face.count", len(removed)))
	return nil
}

// OnEnumerate relays enumerated template ids.
func (r *Relay) OnEnumerate(ctx context.Context, deviceID int64, faceIDs []int32, userID int32) error {
	ids := faceIDsToClient(faceIDs)
	r.forward(ctx, "OnEnumerate", func(ctx context.Context, l face.Callback) error {
		return l.OnEnumerate(ctx, uint64(deviceID), ids, userID)
	}, attribute.Int64("face.device_id", deviceID), attribute.Int("face.count", len(ids)))
	return nil
}

// OnLockoutChanged relays a lockout duration change.
func (r *Relay) OnLockoutChanged(ctx context.Context, duration int64) error {
	r.forward(ctx, "OnLockoutChanged", func(ctx context.Context, l face.Callback) error {
		return l.OnLockoutChanged(ctx, uint64(duration))
	}, attribute.Int64("face.lockout_duration", duration))
	return nil
}

func (r *Relay) forward(ctx context.Context, event string, deliver func(context.Context, face.Callback) error, attrs ...attribute.KeyValue) {
	if r == nil || r.listener == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := r.tracer.Start(ctx, "facebridge.relay."+event, trace.WithAttributes(attrs...))
	defer span.End()
	if err := deliver(ctx, r.listener); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log("relay %s to listener: %v", event, err)
	}
}

func (r *Relay) log(format string, args ...any) {
	if r != nil && r.logf != nil {
		r.logf(format, args...)
	}
}

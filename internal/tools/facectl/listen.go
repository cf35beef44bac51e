package facectl

import (
	"context"
	"fmt"
	"io"
	"sync"

	gogrpc "google.golang.org/grpc"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
)

// printer writes each relayed event as one line.
type printer struct {
	facev1.UnimplementedBiometricsFaceClientCallbackServer

	mu  sync.Mutex
	out io.Writer
}

func (p *printer) printf(format string, args ...any) (*facev1.Empty, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
	return &facev1.Empty{}, nil
}

func (p *printer) OnEnrollResult(_ context.Context, in *facev1.EnrollResultEvent) (*facev1.Empty, error) {
	return p.printf("enroll-result device=%d face=%d user=%d remaining=%d", in.DeviceId, in.FaceId, in.UserId, in.Remaining)
}

func (p *printer) OnAuthenticated(_ context.Context, in *facev1.AuthenticatedEvent) (*facev1.Empty, error) {
	return p.printf("authenticated device=%d face=%d user=%d token=%x", in.DeviceId, in.FaceId, in.UserId, in.Token)
}

func (p *printer) OnAcquired(_ context.Context, in *facev1.AcquiredEvent) (*facev1.Empty, error) {
	return p.printf("acquired device=%d user=%d info=%s vendor=%d", in.DeviceId, in.UserId, face.AcquiredInfo(in.AcquiredInfo), in.VendorCode)
}

func (p *printer) OnError(_ context.Context, in *facev1.ErrorEvent) (*facev1.Empty, error) {
	return p.printf("error device=%d user=%d error=%s vendor=%d", in.DeviceId, in.UserId, face.Error(in.Error), in.VendorCode)
}

func (p *printer) OnRemoved(_ context.Context, in *facev1.RemovedEvent) (*facev1.Empty, error) {
	return p.printf("removed device=%d user=%d faces=%v", in.DeviceId, in.UserId, in.Removed)
}

func (p *printer) OnEnumerate(_ context.Context, in *facev1.EnumerateEvent) (*facev1.Empty, error) {
	return p.printf("enumerate device=%d user=%d faces=%v", in.DeviceId, in.UserId, in.FaceIds)
}

func (p *printer) OnLockoutChanged(_ context.Context, in *facev1.LockoutChangedEvent) (*facev1.Empty, error) {
	return p.printf("lockout-changed duration=%d", in.Duration)
}

// listen hosts a callback endpoint, registers it with the bridge, and prints
// events until ctx ends.
func listen(ctx context.Context, cfg Config, client facev1.BiometricsFaceClient, out io.Writer) error {
	listener, err := discovery.Register(cfg.SocketDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("open listener: %w", err)
	}
	p := &printer{out: out}
	server := gogrpc.NewServer()
	facev1.RegisterBiometricsFaceClientCallbackServer(server, p)
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(listener)
	}()
	defer func() {
		server.Stop()
		<-serveDone
	}()

	callCtx, cancel := withTimeout(ctx, cfg.Timeout)
	resp, err := client.SetCallback(callCtx, &facev1.SetCallbackRequest{CallbackTarget: discovery.Target(cfg.SocketDir, cfg.Name)})
	cancel()
	if err != nil {
		return fmt.Errorf("set callback: %w", err)
	}
	if status := face.Status(resp.Status); status != face.StatusOK {
		return fmt.Errorf("set callback: status %s", status)
	}
	p.printf("listening device=%d", resp.Value)

	select {
	case <-ctx.Done():
		return nil
	case err := <-serveDone:
		serveDone <- err
		return fmt.Errorf("listener stopped: %w", err)
	}
}

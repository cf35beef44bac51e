package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Invoke performs one unary call using the contract codec.
func Invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UnaryHandler adapts a typed server method into a grpc.MethodDesc handler.
// S is the server interface the descriptor was registered with.
func UnaryHandler[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Empty is the message for calls without arguments or results.
type Empty struct{}

// Marshal implements Marshaler. Empty has no fields.
func (*Empty) Marshal() ([]byte, error) {
	return nil, nil
}

// Unmarshal implements Unmarshaler. Unknown fields are ignored.
func (*Empty) Unmarshal(data []byte) error {
	return Decode(data, func(Field) error { return nil })
}

package rpc

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type codecTestMessage struct {
	Name  string
	Count int32
	Token []byte
	IDs   []int32
}

func (m *codecTestMessage) Marshal() ([]byte, error) {
	var e Encoder
	e.Text(1, m.Name)
	e.Int32(2, m.Count)
	e.Bytes(3, m.Token)
	e.Int32s(4, m.IDs)
	return e.Encoded(), nil
}

func (m *codecTestMessage) Unmarshal(data []byte) error {
	*m = codecTestMessage{}
	return Decode(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Name = f.Text()
		case 2:
			m.Count = f.Int32()
		case 3:
			m.Token = f.Bytes()
		case 4:
			ids, err := f.AppendInt32s(m.IDs)
			if err != nil {
				return err
			}
			m.IDs = ids
		}
		return nil
	})
}

func TestCodecRegistered(t *testing.T) {
	if encoding.GetCodec(CodecName) == nil {
		t.Fatalf("codec %q is not registered", CodecName)
	}
}

func TestCodecPreservesBytesAndOrder(t *testing.T) {
	in := codecTestMessage{Name: "enroll", Count: -3, Token: []byte{0xAA, 0x00, 0xFF}, IDs: []int32{3, -17, 42}}
	data, err := Codec{}.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out codecTestMessage
	if err := (Codec{}).Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestEncoderMatchesProtobufRuntime(t *testing.T) {
	data, err := (&codecTestMessage{Name: "biometrics.face.v1.BiometricsFace"}).Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var req grpc_health_v1.HealthCheckRequest
	if err := proto.Unmarshal(data, &req); err != nil {
		t.Fatalf("proto unmarshal: %v", err)
	}
	if req.GetService() != "biometrics.face.v1.BiometricsFace" {
		t.Fatalf("service = %q", req.GetService())
	}

	var e Encoder
	e.Int32(1, -5)
	var value wrapperspb.Int32Value
	if err := proto.Unmarshal(e.Encoded(), &value); err != nil {
		t.Fatalf("proto unmarshal int32: %v", err)
	}
	if value.GetValue() != -5 {
		t.Fatalf("int32 value = %d, want -5", value.GetValue())
	}
}

func TestCodecCarriesProtoMessages(t *testing.T) {
	data, err := Codec{}.Marshal(&grpc_health_v1.HealthCheckRequest{Service: "faceunlockhal"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out grpc_health_v1.HealthCheckRequest
	if err := (Codec{}).Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.GetService() != "faceunlockhal" {
		t.Fatalf("service = %q", out.GetService())
	}
}

func TestDecodeUnpackedRepeatedAndUnknownFields(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 77)
	data = protowire.AppendTag(data, 4, protowire.VarintType)
	data = protowire.AppendVarint(data, 3)
	data = protowire.AppendTag(data, 4, protowire.VarintType)
	data = protowire.AppendVarint(data, 17)

	var out codecTestMessage
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out.IDs, []int32{3, 17}) {
		t.Fatalf("ids = %v, want [3 17]", out.IDs)
	}
}

func TestCodecUnmarshalEmptyPayload(t *testing.T) {
	var out codecTestMessage
	if err := (Codec{}).Unmarshal(nil, &out); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if out.IDs != nil || out.Token != nil {
		t.Fatalf("expected zero message, got %+v", out)
	}
}

func TestCodecUnmarshalError(t *testing.T) {
	var out codecTestMessage
	err := Codec{}.Unmarshal([]byte{0x1a, 0x05, 0xAA}, &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "protowire codec unmarshal") {
		t.Fatalf("expected codec prefix, got %v", err)
	}
}

func TestCodecRejectsUnsupportedTypes(t *testing.T) {
	if _, err := (Codec{}).Marshal(struct{}{}); !errors.Is(err, errUnsupportedMessage) {
		t.Fatalf("marshal err = %v", err)
	}
	var v int
	if err := (Codec{}).Unmarshal(nil, &v); !errors.Is(err, errUnsupportedMessage) {
		t.Fatalf("unmarshal err = %v", err)
	}
}

type unaryTestServer interface {
	Echo(context.Context, *codecTestMessage) (*codecTestMessage, error)
}

type echoServer struct{}

func (echoServer) Echo(_ context.Context, in *codecTestMessage) (*codecTestMessage, error) {
	return in, nil
}

func TestUnaryHandlerDecodesAndCalls(t *testing.T) {
	handler := UnaryHandler("/test.Echo/Echo", unaryTestServer.Echo)
	dec := func(v any) error {
		v.(*codecTestMessage).IDs = []int32{7}
		return nil
	}
	out, err := handler(echoServer{}, context.Background(), dec, nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := out.(*codecTestMessage).IDs; len(got) != 1 || got[0] != 7 {
		t.Fatalf("ids = %v, want [7]", got)
	}
}

func TestUnaryHandlerRunsInterceptor(t *testing.T) {
	handler := UnaryHandler("/test.Echo/Echo", unaryTestServer.Echo)
	var gotMethod string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		gotMethod = info.FullMethod
		return next(ctx, req)
	}
	if _, err := handler(echoServer{}, context.Background(), func(any) error { return nil }, interceptor); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotMethod != "/test.Echo/Echo" {
		t.Fatalf("full method = %q, want /test.Echo/Echo", gotMethod)
	}
}

func TestUnaryHandlerReturnsDecodeError(t *testing.T) {
	handler := UnaryHandler("/test.Echo/Echo", unaryTestServer.Echo)
	want := errors.New("decode failure")
	_, err := handler(echoServer{}, context.Background(), func(any) error { return want }, nil)
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

// Package rpc carries the wire plumbing shared by the hand-declared gRPC
// contracts under api/: a protobuf wire codec and generic unary method helpers.
package rpc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype the contracts are carried under.
const CodecName = "protowire"

var errUnsupportedMessage = errors.New("unsupported message type")

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec encodes contract messages in protobuf wire format. Messages generated
// by protoc are passed to the proto runtime.
type Codec struct{}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch m := v.(type) {
	case Marshaler:
		data, err = m.Marshal()
	case proto.Message:
		data, err = proto.Marshal(m)
	default:
		err = errUnsupportedMessage
	}
	if err != nil {
		return nil, fmt.Errorf("%s codec marshal %T: %w", CodecName, v, err)
	}
	return data, nil
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	var err error
	switch m := v.(type) {
	case Unmarshaler:
		err = m.Unmarshal(data)
	case proto.Message:
		err = proto.Unmarshal(data, m)
	default:
		err = errUnsupportedMessage
	}
	if err != nil {
		return fmt.Errorf("%s codec unmarshal %T: %w", CodecName, v, err)
	}
	return nil
}

// Name implements encoding.Codec.
func (Codec) Name() string {
	return CodecName
}

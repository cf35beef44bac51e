package rpc

import "google.golang.org/protobuf/encoding/protowire"

// Marshaler is implemented by contract messages that encode themselves in
// protobuf wire format.
type Marshaler interface {
	Marshal() ([]byte, error)
}

// Unmarshaler is implemented by contract messages that decode themselves from
// protobuf wire format.
type Unmarshaler interface {
	Unmarshal(data []byte) error
}

// Encoder appends proto3 fields. Zero scalars are omitted and repeated
// scalars are packed.
type Encoder struct {
	buf []byte
}

// Encoded returns the bytes appended so far.
func (e *Encoder) Encoded() []byte {
	return e.buf
}

func (e *Encoder) varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

// Int32 appends an int32 field. Negative values are sign extended.
func (e *Encoder) Int32(num protowire.Number, v int32) {
	e.varint(num, uint64(int64(v)))
}

// Int64 appends an int64 field.
func (e *Encoder) Int64(num protowire.Number, v int64) {
	e.varint(num, uint64(v))
}

// Uint32 appends a uint32 field.
func (e *Encoder) Uint32(num protowire.Number, v uint32) {
	e.varint(num, uint64(v))
}

// Uint64 appends a uint64 field.
func (e *Encoder) Uint64(num protowire.Number, v uint64) {
	e.varint(num, v)
}

// Bool appends a bool field.
func (e *Encoder) Bool(num protowire.Number, v bool) {
	if v {
		e.varint(num, 1)
	}
}

// Bytes appends a bytes field.
func (e *Encoder) Bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
}

// Text appends a string field.
func (e *Encoder) Text(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// Int32s appends a packed repeated int32 field.
func (e *Encoder) Int32s(num protowire.Number, vs []int32) {
	if len(vs) == 0 {
		return
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	e.Bytes(num, packed)
}

// Uint32s appends a packed repeated uint32 field.
func (e *Encoder) Uint32s(num protowire.Number, vs []uint32) {
	if len(vs) == 0 {
		return
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	e.Bytes(num, packed)
}

// Field is one decoded wire field. Accessors reading the wrong wire type
// return the zero value.
type Field struct {
	Num  protowire.Number
	Type protowire.Type

	varint uint64
	data   []byte
}

func (f Field) Int32() int32   { return int32(f.varint) }
func (f Field) Int64() int64   { return int64(f.varint) }
func (f Field) Uint32() uint32 { return uint32(f.varint) }
func (f Field) Uint64() uint64 { return f.varint }
func (f Field) Bool() bool     { return f.varint != 0 }

// Bytes returns a copy of a bytes field.
func (f Field) Bytes() []byte {
	if f.Type != protowire.BytesType {
		return nil
	}
	return append([]byte(nil), f.data...)
}

// Text returns a string field.
func (f Field) Text() string {
	return string(f.data)
}

// AppendInt32s appends a repeated int32 field in packed or unpacked form.
func (f Field) AppendInt32s(dst []int32) ([]int32, error) {
	if f.Type == protowire.VarintType {
		return append(dst, int32(f.varint)), nil
	}
	err := consumePacked(f.data, func(v uint64) { dst = append(dst, int32(v)) })
	return dst, err
}

// AppendUint32s appends a repeated uint32 field in packed or unpacked form.
func (f Field) AppendUint32s(dst []uint32) ([]uint32, error) {
	if f.Type == protowire.VarintType {
		return append(dst, uint32(f.varint)), nil
	}
	err := consumePacked(f.data, func(v uint64) { dst = append(dst, uint32(v)) })
	return dst, err
}

func consumePacked(b []byte, add func(uint64)) error {
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		add(v)
		b = b[n:]
	}
	return nil
}

// Decode calls visit for every field in data in wire order. Unknown field
// numbers are skipped by visitors that do not match them.
func Decode(data []byte, visit func(Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		field := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			field.varint, n = protowire.ConsumeVarint(data)
		case protowire.BytesType:
			field.data, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		if err := visit(field); err != nil {
			return err
		}
	}
	return nil
}

package facehalv1

import (
	"reflect"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestEnrollRequestWire(t *testing.T) {
	in := EnrollRequest{Token: []byte{0xAA, 0x00}, Timeout: 30, DisabledFeatures: []int32{2, -1, 7}}
	data, err := in.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out EnrollRequest
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("enroll request = %+v, want %+v", out, in)
	}
}

func TestChallengeResponseReadsAsInt64Value(t *testing.T) {
	data, err := (&ChallengeResponse{Challenge: -9}).Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var value wrapperspb.Int64Value
	if err := proto.Unmarshal(data, &value); err != nil {
		t.Fatalf("proto unmarshal: %v", err)
	}
	if value.GetValue() != -9 {
		t.Fatalf("challenge = %d, want -9", value.GetValue())
	}
}

func TestRemovedEventWithoutIDsDecodesNil(t *testing.T) {
	data, err := (&RemovedEvent{DeviceId: 4, UserId: 10}).Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out RemovedEvent
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.FaceIds != nil || out.DeviceId != 4 || out.UserId != 10 {
		t.Fatalf("removed = %+v", out)
	}
}

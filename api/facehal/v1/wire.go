// Protobuf wire encoding for the facehal.v1 messages. Field numbers follow
// declaration order, starting at 1.

package facehalv1

import "github.com/louisbranch/facebridge/api/rpc"

func (m *DeviceIdResponse) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	return e.Encoded(), nil
}

func (m *DeviceIdResponse) Unmarshal(data []byte) error {
	*m = DeviceIdResponse{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		}
		return nil
	})
}

func (m *SetCallbackRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Text(1, m.CallbackTarget)
	return e.Encoded(), nil
}

func (m *SetCallbackRequest) Unmarshal(data []byte) error {
	*m = SetCallbackRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.CallbackTarget = f.Text()
		}
		return nil
	})
}

func (m *ResultResponse) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.Result)
	return e.Encoded(), nil
}

func (m *ResultResponse) Unmarshal(data []byte) error {
	*m = ResultResponse{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Result = f.Int32()
		}
		return nil
	})
}

func (m *SetActiveUserRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.UserId)
	e.Text(2, m.StorePath)
	return e.Encoded(), nil
}

func (m *SetActiveUserRequest) Unmarshal(data []byte) error {
	*m = SetActiveUserRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.UserId = f.Int32()
		case 2:
			m.StorePath = f.Text()
		}
		return nil
	})
}

func (m *GenerateChallengeRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.Timeout)
	return e.Encoded(), nil
}

func (m *GenerateChallengeRequest) Unmarshal(data []byte) error {
	*m = GenerateChallengeRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Timeout = f.Int32()
		}
		return nil
	})
}

func (m *ChallengeResponse) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.Challenge)
	return e.Encoded(), nil
}

func (m *ChallengeResponse) Unmarshal(data []byte) error {
	*m = ChallengeResponse{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Challenge = f.Int64()
		}
		return nil
	})
}

func (m *EnrollRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Bytes(1, m.Token)
	e.Int32(2, m.Timeout)
	e.Int32s(3, m.DisabledFeatures)
	return e.Encoded(), nil
}

func (m *EnrollRequest) Unmarshal(data []byte) error {
	*m = EnrollRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Token = f.Bytes()
		case 2:
			m.Timeout = f.Int32()
		case 3:
			values, err := f.AppendInt32s(m.DisabledFeatures)
			if err != nil {
				return err
			}
			m.DisabledFeatures = values
		}
		return nil
	})
}

func (m *SetFeatureRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.Feature)
	e.Bool(2, m.Enable)
	e.Bytes(3, m.Token)
	e.Int32(4, m.FaceId)
	return e.Encoded(), nil
}

func (m *SetFeatureRequest) Unmarshal(data []byte) error {
	*m = SetFeatureRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Feature = f.Int32()
		case 2:
			m.Enable = f.Bool()
		case 3:
			m.Token = f.Bytes()
		case 4:
			m.FaceId = f.Int32()
		}
		return nil
	})
}

func (m *GetFeatureRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.Feature)
	e.Int32(2, m.FaceId)
	return e.Encoded(), nil
}

func (m *GetFeatureRequest) Unmarshal(data []byte) error {
	*m = GetFeatureRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Feature = f.Int32()
		case 2:
			m.FaceId = f.Int32()
		}
		return nil
	})
}

func (m *GetFeatureResponse) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Bool(1, m.Enabled)
	return e.Encoded(), nil
}

func (m *GetFeatureResponse) Unmarshal(data []byte) error {
	*m = GetFeatureResponse{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Enabled = f.Bool()
		}
		return nil
	})
}

func (m *AuthenticatorIdResponse) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.AuthenticatorId)
	return e.Encoded(), nil
}

func (m *AuthenticatorIdResponse) Unmarshal(data []byte) error {
	*m = AuthenticatorIdResponse{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.AuthenticatorId = f.Int64()
		}
		return nil
	})
}

func (m *RemoveRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int32(1, m.FaceId)
	return e.Encoded(), nil
}

func (m *RemoveRequest) Unmarshal(data []byte) error {
	*m = RemoveRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.FaceId = f.Int32()
		}
		return nil
	})
}

func (m *AuthenticateRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.OperationId)
	return e.Encoded(), nil
}

func (m *AuthenticateRequest) Unmarshal(data []byte) error {
	*m = AuthenticateRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.OperationId = f.Int64()
		}
		return nil
	})
}

func (m *ResetLockoutRequest) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Bytes(1, m.Token)
	return e.Encoded(), nil
}

func (m *ResetLockoutRequest) Unmarshal(data []byte) error {
	*m = ResetLockoutRequest{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Token = f.Bytes()
		}
		return nil
	})
}

func (m *EnrollResultEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32(2, m.FaceId)
	e.Int32(3, m.UserId)
	e.Int32(4, m.Remaining)
	return e.Encoded(), nil
}

func (m *EnrollResultEvent) Unmarshal(data []byte) error {
	*m = EnrollResultEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			m.FaceId = f.Int32()
		case 3:
			m.UserId = f.Int32()
		case 4:
			m.Remaining = f.Int32()
		}
		return nil
	})
}

func (m *AuthenticatedEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32(2, m.FaceId)
	e.Int32(3, m.UserId)
	e.Bytes(4, m.Token)
	return e.Encoded(), nil
}

func (m *AuthenticatedEvent) Unmarshal(data []byte) error {
	*m = AuthenticatedEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			m.FaceId = f.Int32()
		case 3:
			m.UserId = f.Int32()
		case 4:
			m.Token = f.Bytes()
		}
		return nil
	})
}

func (m *AcquiredEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32(2, m.UserId)
	e.Int32(3, m.AcquiredInfo)
	e.Int32(4, m.VendorCode)
	return e.Encoded(), nil
}

func (m *AcquiredEvent) Unmarshal(data []byte) error {
	*m = AcquiredEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			m.UserId = f.Int32()
		case 3:
			m.AcquiredInfo = f.Int32()
		case 4:
			m.VendorCode = f.Int32()
		}
		return nil
	})
}

func (m *ErrorEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32(2, m.UserId)
	e.Int32(3, m.Error)
	e.Int32(4, m.VendorCode)
	return e.Encoded(), nil
}

func (m *ErrorEvent) Unmarshal(data []byte) error {
	*m = ErrorEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			m.UserId = f.Int32()
		case 3:
			m.Error = f.Int32()
		case 4:
			m.VendorCode = f.Int32()
		}
		return nil
	})
}

func (m *RemovedEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32s(2, m.FaceIds)
	e.Int32(3, m.UserId)
	return e.Encoded(), nil
}

func (m *RemovedEvent) Unmarshal(data []byte) error {
	*m = RemovedEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			values, err := f.AppendInt32s(m.FaceIds)
			if err != nil {
				return err
			}
			m.FaceIds = values
		case 3:
			m.UserId = f.Int32()
		}
		return nil
	})
}

func (m *EnumerateEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.DeviceId)
	e.Int32s(2, m.FaceIds)
	e.Int32(3, m.UserId)
	return e.Encoded(), nil
}

func (m *EnumerateEvent) Unmarshal(data []byte) error {
	*m = EnumerateEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.DeviceId = f.Int64()
		case 2:
			values, err := f.AppendInt32s(m.FaceIds)
			if err != nil {
				return err
			}
			m.FaceIds = values
		case 3:
			m.UserId = f.Int32()
		}
		return nil
	})
}

func (m *LockoutChangedEvent) Marshal() ([]byte, error) {
	var e rpc.Encoder
	e.Int64(1, m.Duration)
	return e.Encoded(), nil
}

func (m *LockoutChangedEvent) Unmarshal(data []byte) error {
	*m = LockoutChangedEvent{}
	return rpc.Decode(data, func(f rpc.Field) error {
		switch f.Num {
		case 1:
			m.Duration = f.Int64()
		}
		return nil
	})
}

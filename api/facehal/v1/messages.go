package facehalv1

// DeviceIdResponse carries the backend device identifier.
type DeviceIdResponse struct {
	DeviceId int64
}

// SetCallbackRequest names the endpoint the backend must deliver events to.
type SetCallbackRequest struct {
	CallbackTarget string
}

// ResultResponse carries a backend integer result code.
type ResultResponse struct {
	Result int32
}

type SetActiveUserRequest struct {
	UserId    int32
	StorePath string
}

type GenerateChallengeRequest struct {
	Timeout int32
}

type ChallengeResponse struct {
	Challenge int64
}

type EnrollRequest struct {
	Token            []byte
	Timeout          int32
	DisabledFeatures []int32
}

type SetFeatureRequest struct {
	Feature int32
	Enable  bool
	Token   []byte
	FaceId  int32
}

type GetFeatureRequest struct {
	Feature int32
	FaceId  int32
}

type GetFeatureResponse struct {
	Enabled bool
}

type AuthenticatorIdResponse struct {
	AuthenticatorId int64
}

type RemoveRequest struct {
	FaceId int32
}

type AuthenticateRequest struct {
	OperationId int64
}

type ResetLockoutRequest struct {
	Token []byte
}

// Callback events.

type EnrollResultEvent struct {
	DeviceId  int64
	FaceId    int32
	UserId    int32
	Remaining int32
}

type AuthenticatedEvent struct {
	DeviceId int64
	FaceId   int32
	UserId   int32
	Token    []byte
}

type AcquiredEvent struct {
	DeviceId     int64
	UserId       int32
	AcquiredInfo int32
	VendorCode   int32
}

type ErrorEvent struct {
	DeviceId   int64
	UserId     int32
	Error      int32
	VendorCode int32
}

type RemovedEvent struct {
	DeviceId int64
	FaceIds  []int32
	UserId   int32
}

type EnumerateEvent struct {
	DeviceId int64
	FaceIds  []int32
	UserId   int32
}

type LockoutChangedEvent struct {
	Duration int64
}

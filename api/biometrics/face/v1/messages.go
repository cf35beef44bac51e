package facev1

// Status values carried in responses.
const (
	Status_OK                      int32 = 0
	Status_ILLEGAL_ARGUMENT        int32 = 1
	Status_OPERATION_NOT_SUPPORTED int32 = 2
	Status_INTERNAL_ERROR          int32 = 3
	Status_NOT_ENROLLED            int32 = 4
)

// StatusResponse carries the outcome of an operation with no result value.
type StatusResponse struct {
	Status int32
}

// OptionalUint64 carries an outcome plus an unsigned 64-bit value.
type OptionalUint64 struct {
	Status int32
	Value  uint64
}

// OptionalBool carries an outcome plus a boolean value.
type OptionalBool struct {
	Status int32
	Value  bool
}

// SetCallbackRequest names the listener endpoint events are relayed to.
type SetCallbackRequest struct {
	CallbackTarget string
}

type SetActiveUserRequest struct {
	UserId    int32
	StorePath string
}

type GenerateChallengeRequest struct {
	ChallengeTimeoutSec uint32
}

type EnrollRequest struct {
	Hat              []byte
	TimeoutSec       uint32
	DisabledFeatures []int32
}

type SetFeatureRequest struct {
	Feature int32
	Enabled bool
	Hat     []byte
	FaceId  uint32
}

type GetFeatureRequest struct {
	Feature int32
	FaceId  uint32
}

type RemoveRequest struct {
	FaceId uint32
}

type AuthenticateRequest struct {
	OperationId uint64
}

type ResetLockoutRequest struct {
	Hat []byte
}

// Listener events.

type EnrollResultEvent struct {
	DeviceId  uint64
	FaceId    uint32
	UserId    int32
	Remaining uint32
}

type AuthenticatedEvent struct {
	DeviceId uint64
	FaceId   uint32
	UserId   int32
	Token    []byte
}

type AcquiredEvent struct {
	DeviceId     uint64
	UserId       int32
	AcquiredInfo int32
	VendorCode   int32
}

type ErrorEvent struct {
	DeviceId   uint64
	UserId     int32
	Error      int32
	VendorCode int32
}

type RemovedEvent struct {
	DeviceId uint64
	Removed  []uint32
	UserId   int32
}

type EnumerateEvent struct {
	DeviceId uint64
	FaceIds  []uint32
	UserId   int32
}

type LockoutChangedEvent struct {
	Duration uint64
}

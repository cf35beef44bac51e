package face

import "strconv"

// AcquiredInfo describes the state of a frame during enroll or authenticate.
type AcquiredInfo int32

const (
	AcquiredGood AcquiredInfo = iota
	AcquiredInsufficient
	AcquiredTooBright
	AcquiredTooDark
	AcquiredTooClose
	AcquiredTooFar
	AcquiredFaceTooHigh
	AcquiredFaceTooLow
	AcquiredFaceTooRight
	AcquiredFaceTooLeft
	AcquiredPoorGaze
	AcquiredNotDetected
	AcquiredTooMuchMotion
	AcquiredRecalibrate
	AcquiredTooDifferent
	AcquiredTooSimilar
	AcquiredPanTooExtreme
	AcquiredTiltTooExtreme
	AcquiredRollTooExtreme
	AcquiredFaceObscured
	AcquiredStart
	AcquiredSensorDirty
	AcquiredVendor
)

var acquiredNames = [...]string{
	"GOOD",
	"INSUFFICIENT",
	"TOO_BRIGHT",
	"TOO_DARK",
	"TOO_CLOSE",
	"TOO_FAR",
	"FACE_TOO_HIGH",
	"FACE_TOO_LOW",
	"FACE_TOO_RIGHT",
	"FACE_TOO_LEFT",
	"POOR_GAZE",
	"NOT_DETECTED",
	"TOO_MUCH_MOTION",
	"RECALIBRATE",
	"TOO_DIFFERENT",
	"TOO_SIMILAR",
	"PAN_TOO_EXTREME",
	"TILT_TOO_EXTREME",
	"ROLL_TOO_EXTREME",
	"FACE_OBSCURED",
	"START",
	"SENSOR_DIRTY",
	"VENDOR",
}

var _ = [1]struct{}{}[len(acquiredNames)-int(AcquiredVendor)-1]

// Valid reports whether a is a declared ordinal.
func (a AcquiredInfo) Valid() bool {
	return a >= AcquiredGood && a <= AcquiredVendor
}

func (a AcquiredInfo) String() string {
	if a.Valid() {
		return acquiredNames[a]
	}
	return "AcquiredInfo(" + strconv.Itoa(int(a)) + ")"
}

// Error describes a failure reported during an operation.
type Error int32

const (
	ErrorHWUnavailable Error = iota + 1
	ErrorUnableToProcess
	ErrorTimeout
	ErrorNoSpace
	ErrorCanceled
	ErrorUnableToRemove
	ErrorLockout
	ErrorVendor
	ErrorLockoutPermanent
)

var errorNames = [...]string{
	ErrorHWUnavailable:    "HW_UNAVAILABLE",
	ErrorUnableToProcess:  "UNABLE_TO_PROCESS",
	ErrorTimeout:          "TIMEOUT",
	ErrorNoSpace:          "NO_SPACE",
	ErrorCanceled:         "CANCELED",
	ErrorUnableToRemove:   "UNABLE_TO_REMOVE",
	ErrorLockout:          "LOCKOUT",
	ErrorVendor:           "VENDOR",
	ErrorLockoutPermanent: "LOCKOUT_PERMANENT",
}

// Valid reports whether e is a declared ordinal.
func (e Error) Valid() bool {
	return e >= ErrorHWUnavailable && e <= ErrorLockoutPermanent
}

func (e Error) String() string {
	if e.Valid() {
		return errorNames[e]
	}
	return "Error(" + strconv.Itoa(int(e)) + ")"
}

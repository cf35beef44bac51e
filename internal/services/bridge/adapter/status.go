package adapter

import (
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

// TranslateStatus maps a backend result code to the client outcome.
// Codes outside the known table map to StatusOK.
func TranslateStatus(code int32) face.Status {
	switch code {
	case hal.ResultOK:
		return face.StatusOK
	case hal.ResultIllegalArgument:
		return face.StatusIllegalArgument
	case hal.ResultOperationNotSupported:
		return face.StatusOperationNotSupported
	case hal.ResultInternalError:
		return face.StatusInternalError
	case hal.ResultNotEnrolled:
		return face.StatusNotEnrolled
	default:
		return face.StatusOK
	}
}

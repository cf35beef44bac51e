package adapter

import (
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
	"github.com/louisbranch/facebridge/internal/services/bridge/hal"
)

// Backend ordinals are reused as client ordinals. These fail to compile if
// the declared ranges drift apart.
var (
	_ = [1]struct{}{}[int(face.AcquiredGood)-int(hal.AcquiredGood)]
	_ = [1]struct{}{}[int(face.AcquiredVendor)-int(hal.AcquiredVendor)]
	_ = [1]struct{}{}[int(face.ErrorHWUnavailable)-int(hal.ErrorHWUnavailable)]
	_ = [1]struct{}{}[int(face.ErrorLockoutPermanent)-int(hal.ErrorLockoutPermanent)]
)

func featuresToBackend(features []face.Feature) []int32 {
	if features == nil {
		return nil
	}
	out := make([]int32, len(features))
	for i, feature := range features {
		out[i] = int32(feature)
	}
	return out
}

func faceIDsToClient(ids []int32) []uint32 {
	if ids == nil {
		return nil
	}
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func acquiredInfoToClient(info int32) face.AcquiredInfo {
	return face.AcquiredInfo(info)
}

func errorToClient(code int32) face.Error {
	return face.Error(code)
}

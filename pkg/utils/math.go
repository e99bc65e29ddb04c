package utils

import "math"

// ClampToUint32 converts a non-negative count to uint32, saturating at math.MaxUint32
// and mapping negative values to 0.
func ClampToUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

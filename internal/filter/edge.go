package filter

// clampIndex implements the clamp-to-edge border policy shared by every
// neighbourhood filter: an index outside [0, n) is replaced by the nearest
// valid one.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest byte.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package misc

// Remap moves v linearly from the range [inLo, inHi] onto [outLo, outHi].
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	fact := (outHi - outLo) / (inHi - inLo)
	return (v-inLo)*fact + outLo
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

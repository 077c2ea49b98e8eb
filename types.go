package dsp

// Complex is the type constraint for FFT element types.
// complex64 carries single-precision (float32) component pairs,
// complex128 carries double-precision (float64) pairs.
type Complex interface {
	complex64 | complex128
}

package dsp

import "errors"

// Sentinel errors returned by FFT plan operations.
var (
	// ErrInvalidSize is returned by NewPlan when the requested transform
	// size is zero or not a power of two.
	ErrInvalidSize = errors.New("dsp: size must be a power of two")

	// ErrNilBuffer is returned by Forward and Inverse when the data
	// buffer is nil. The check happens before any element is touched.
	ErrNilBuffer = errors.New("dsp: nil data buffer")

	// ErrSizeMismatch is returned when a buffer's length does not match
	// the plan's transform size.
	ErrSizeMismatch = errors.New("dsp: buffer length does not match plan size")

	// ErrEmptyKernel is returned by NewConvolver for a zero-length kernel.
	ErrEmptyKernel = errors.New("dsp: empty convolution kernel")

	// ErrInvalidHop is returned by NewStreamer when the hop size is not in
	// the range [1, frame size].
	ErrInvalidHop = errors.New("dsp: hop size must be in [1, frame size]")
)

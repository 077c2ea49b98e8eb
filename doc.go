// Package dsp provides digital-signal-processing primitives in pure Go.
//
// The core of the package is the fixed-radix FFT engine: [Plan] performs
// in-place forward and inverse transforms on power-of-two-sized complex
// buffers using precomputed twiddle factors and a bit-reversal permutation.
// On top of the plan the package offers overlap-save FFT convolution
// ([Convolver]), windowed spectrum analysis ([SpectrumAnalyzer]), and an
// STFT-style frame streamer ([Streamer]). Polar-coordinate arithmetic lives
// in the polar subpackage.
//
// # Quick Start
//
// Create a plan once per transform size and reuse it:
//
//	plan, err := dsp.NewPlan[complex128](1024, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := make([]complex128, 1024)
//	// ... fill data ...
//	if err := plan.Forward(data); err != nil {
//	    log.Fatal(err)
//	}
//	// data now holds the unnormalized DFT; Inverse restores the input.
//
// The type parameter selects the component precision: complex64 for
// single-precision pairs, complex128 for double. Both instantiations share
// one implementation.
//
// # In-Place Contract
//
// Forward and Inverse operate entirely on the caller's buffer. They perform
// no allocation and no I/O; the only failure modes are a nil buffer and a
// buffer whose length does not match the plan size, both detected before
// any element is mutated.
//
// # Thread Safety
//
// A plan's tables are immutable after construction, so one plan may be
// shared by any number of goroutines provided each transforms its own
// buffer. Transforming the same buffer concurrently is not supported.
//
// # Convenience Functions
//
// For one-shot use, [ForwardComplex], [InverseComplex] and
// [MagnitudeSpectrum] build a throwaway plan internally. Prefer an explicit
// [Plan] (or [SpectrumAnalyzer]) when transforming repeatedly at one size.
package dsp

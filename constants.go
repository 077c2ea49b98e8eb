package dsp

// Transform size limits
const (
	// minTransformSize is the smallest supported FFT size.
	// The size-2 transform is the plain sum/difference DFT.
	minTransformSize = 2
)

// Spectrum constants
const (
	// spectrumScaleFactor converts single-sided bin magnitudes to
	// amplitudes: energy from negative frequencies folds onto the
	// positive bins, doubling everything except DC and Nyquist.
	spectrumScaleFactor = 2.0

	// halfDivisor is used for single-sided bin counts (N/2 + 1).
	halfDivisor = 2
)

// Convolution constants
const (
	// minKernelForFFT is the kernel length above which overlap-save FFT
	// convolution beats direct SIMD convolution. Below it the direct
	// path is used.
	minKernelForFFT = 400

	// defaultFFTBlockSize is the default convolution FFT size.
	defaultFFTBlockSize = 512
)

package dsp

import (
	"github.com/tphakala/simd/c128"

	"github.com/3lemenoP/dsp/internal/pool"
	"github.com/3lemenoP/dsp/internal/simdops"
)

// Convolver performs overlap-save FFT convolution of real signals with a
// fixed kernel. The kernel spectrum is computed once at construction and
// reused for every call, which makes long-kernel convolution O(N log N)
// instead of O(N×M).
//
// A Convolver holds no mutable state between calls; working buffers come
// from an internal pool, so a single Convolver may be used from multiple
// goroutines concurrently.
type Convolver struct {
	plan      *Plan[complex128]
	fftSize   int
	blockSize int // valid output samples per block = fftSize - kernelLen + 1
	kernelLen int

	// Kernel spectrum, precomputed from the time-reversed kernel so that
	// circular frequency-domain products realize valid convolution rather
	// than correlation.
	kernelFFT []complex128
}

// NewConvolver creates a convolver for the given kernel. The FFT size is the
// smallest power of two that is at least twice the kernel length, with a
// floor of defaultFFTBlockSize.
func NewConvolver(kernel []float64) (*Convolver, error) {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil, ErrEmptyKernel
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}

	plan, err := NewPlan[complex128](fftSize, nil)
	if err != nil {
		return nil, err
	}

	kernelFFT := make([]complex128, fftSize)
	for i := range kernelLen {
		kernelFFT[i] = complex(kernel[kernelLen-1-i], 0)
	}
	if err := plan.Forward(kernelFFT); err != nil {
		return nil, err
	}

	return &Convolver{
		plan:      plan,
		fftSize:   fftSize,
		blockSize: fftSize - kernelLen + 1,
		kernelLen: kernelLen,
		kernelFFT: kernelFFT,
	}, nil
}

// FFTSize returns the transform size used for the frequency-domain products.
func (c *Convolver) FFTSize() int { return c.fftSize }

// KernelLen returns the kernel length the convolver was built for.
func (c *Convolver) KernelLen() int { return c.kernelLen }

// Convolve computes the valid convolution of signal with the kernel and
// writes the result to dst, returning the number of samples produced
// (len(signal) - KernelLen() + 1). It returns 0 when the signal is shorter
// than the kernel or dst cannot hold the full output.
func (c *Convolver) Convolve(dst, signal []float64) int {
	outputLen := len(signal) - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return 0
	}

	block := pool.AcquireComplex128(c.fftSize)
	defer pool.ReleaseComplex128(block)
	product := pool.AcquireComplex128(c.fftSize)
	defer pool.ReleaseComplex128(product)

	// Each block reads fftSize input samples starting at the output cursor
	// and yields blockSize valid samples; the first kernelLen-1 results of
	// every block are circular-wrap artifacts and are skipped.
	overlap := c.kernelLen - 1
	outIdx := 0

	for outIdx < outputLen {
		clear(block)
		copyLen := min(c.fftSize, len(signal)-outIdx)
		for i := range copyLen {
			block[i] = complex(signal[outIdx+i], 0)
		}

		// Buffer lengths match the plan by construction.
		_ = c.plan.Forward(block)
		c128.Mul(product, block, c.kernelFFT)
		_ = c.plan.Inverse(product)

		validSamples := min(c.blockSize, outputLen-outIdx)
		for i := range validSamples {
			dst[outIdx+i] = real(product[overlap+i])
		}

		outIdx += validSamples
	}

	return outputLen
}

// ConvolveValid computes the valid convolution of signal with kernel into
// dst, choosing direct SIMD convolution for short kernels and overlap-save
// FFT convolution above the minKernelForFFT crossover. It returns the number
// of output samples produced.
func ConvolveValid(dst, signal, kernel []float64) int {
	outputLen := len(signal) - len(kernel) + 1
	if len(kernel) == 0 || outputLen <= 0 || len(dst) < outputLen {
		return 0
	}

	if len(kernel) < minKernelForFFT {
		simdops.Float64Ops().ConvolveValid(dst[:outputLen], signal, kernel)
		return outputLen
	}

	conv, err := NewConvolver(kernel)
	if err != nil {
		return 0
	}

	return conv.Convolve(dst, signal)
}

package dsp

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/cpu"

	"github.com/3lemenoP/dsp/internal/mathutil"
)

// PlanConfig holds optional FFT plan settings. All fields are hints: they
// describe how the plan is intended to be used but do not change the
// numerical results of Forward and Inverse.
type PlanConfig struct {
	// InPlace records that transforms operate on the caller's buffer.
	// This is always the case; the flag is descriptive.
	InPlace bool

	// EnableSIMD allows accelerated code paths when available.
	// Reserved for kernel dispatch; the radix-2 core is scalar.
	EnableSIMD bool

	// DoublePrecision records the intended component precision.
	// The actual precision is fixed by the plan's type parameter.
	DoublePrecision bool
}

// DefaultPlanConfig returns the default plan configuration.
func DefaultPlanConfig() *PlanConfig {
	return &PlanConfig{
		InPlace:    true,
		EnableSIMD: true,
	}
}

// Plan holds the precomputed state for one FFT size: the twiddle factor
// tables and the bit-reversal permutation. A plan is created once per size
// and reused across transforms.
//
// All plan state is immutable after NewPlan returns, so a single plan may be
// shared by multiple goroutines as long as each operates on its own buffer.
// Concurrent transforms on the same buffer are not synchronized.
type Plan[T Complex] struct {
	n      int // transform size (power of two)
	stages int // log2(n) butterfly stages

	// twiddle[k] = exp(-i·2π·k/n) for k in [0, n/2).
	// twiddleInv holds the conjugates, used by the inverse transform.
	// Two tables because real/imag decomposition is not available on a
	// type parameter, and the butterfly loop must stay free of per-element
	// type dispatch.
	twiddle    []T
	twiddleInv []T

	bitrev []int // bit-reversal permutation, len n
	scale  T     // 1/n, applied by Inverse only

	config PlanConfig
}

// NewPlan creates an FFT plan for the given transform size.
// The size must be a power of two and at least 2; otherwise ErrInvalidSize
// is returned. A nil cfg selects DefaultPlanConfig.
func NewPlan[T Complex](size int, cfg *PlanConfig) (*Plan[T], error) {
	if size < minTransformSize || !mathutil.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	if cfg == nil {
		cfg = DefaultPlanConfig()
	}

	p := &Plan[T]{
		n:      size,
		stages: mathutil.Log2(size),
		bitrev: mathutil.BitReversalIndices(size),
		scale:  complexScalar[T](1 / float64(size)),
		config: *cfg,
	}
	p.twiddle, p.twiddleInv = twiddleTables[T](size)

	return p, nil
}

// Size returns the transform size the plan was created for.
func (p *Plan[T]) Size() int { return p.n }

// Stages returns the number of butterfly stages, log2(Size).
func (p *Plan[T]) Stages() int { return p.stages }

// IsInPlace reports whether the plan was configured for in-place transforms.
func (p *Plan[T]) IsInPlace() bool { return p.config.InPlace }

// AccelInfo returns a description of the SIMD capability detected on this
// machine. Informational; see PlanConfig.EnableSIMD.
func (p *Plan[T]) AccelInfo() string { return cpu.Info() }

// Forward computes the in-place forward FFT of data. The result is the
// unnormalized DFT in natural frequency-bin order.
//
// data must be non-nil and hold exactly Size() elements.
func (p *Plan[T]) Forward(data []T) error {
	if err := p.check(data); err != nil {
		return err
	}

	p.bitReverse(data)
	p.butterflies(data, p.twiddle)

	return nil
}

// Inverse computes the in-place inverse FFT of data, scaling the result by
// 1/Size() so that Inverse(Forward(x)) reproduces x up to rounding.
//
// data must be non-nil and hold exactly Size() elements.
func (p *Plan[T]) Inverse(data []T) error {
	if err := p.check(data); err != nil {
		return err
	}

	p.bitReverse(data)
	p.butterflies(data, p.twiddleInv)

	for i := range data {
		data[i] *= p.scale
	}

	return nil
}

// check validates the transform buffer before any element is touched.
func (p *Plan[T]) check(data []T) error {
	if data == nil {
		return ErrNilBuffer
	}
	if len(data) != p.n {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(data), p.n)
	}

	return nil
}

// bitReverse reorders data into bit-reversed index order. Each symmetric
// pair is swapped once (only when i < j); self-paired indices stay put.
func (p *Plan[T]) bitReverse(data []T) {
	for i, j := range p.bitrev {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}

// butterflies runs the iterative radix-2 decimation-in-time passes.
// At stage s the butterfly span is 2^s and the twiddle table is strided by
// n >> (s+1), which is what makes the single half-length table serve every
// stage.
func (p *Plan[T]) butterflies(data []T, twiddle []T) {
	for stage := range p.stages {
		butterflySize := 1 << stage
		groupStep := butterflySize << 1
		twiddleStep := p.n >> (stage + 1)

		for groupOffset := 0; groupOffset < p.n; groupOffset += groupStep {
			twiddleIdx := 0

			for b := range butterflySize {
				i := groupOffset + b
				j := i + butterflySize

				temp := data[j] * twiddle[twiddleIdx]
				data[j] = data[i] - temp
				data[i] += temp

				twiddleIdx += twiddleStep
			}
		}
	}
}

// twiddleTables computes the forward twiddle factors exp(-i·2π·k/n) for
// k in [0, n/2) and their conjugates for the inverse transform.
//
// The angle is formed at the working precision of T before the
// trigonometric evaluation, so single-precision plans see exactly the
// single-precision angle rather than a truncated double-precision one.
func twiddleTables[T Complex](n int) (forward, inverse []T) {
	forward = make([]T, n/2)
	inverse = make([]T, n/2)

	switch fw := any(forward).(type) {
	case []complex64:
		inv := any(inverse).([]complex64)
		for k := range fw {
			angle := -2 * float32(math.Pi) * float32(k) / float32(n)
			sin, cos := math.Sincos(float64(angle))
			fw[k] = complex(float32(cos), float32(sin))
			inv[k] = complex(float32(cos), -float32(sin))
		}
	case []complex128:
		inv := any(inverse).([]complex128)
		for k := range fw {
			angle := -2 * math.Pi * float64(k) / float64(n)
			sin, cos := math.Sincos(angle)
			fw[k] = complex(cos, sin)
			inv[k] = complex(cos, -sin)
		}
	}

	return forward, inverse
}

// complexScalar returns re as a purely real value of type T.
func complexScalar[T Complex](re float64) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), 0)).(T)
	default:
		return any(complex(re, 0)).(T)
	}
}

package dsp

import (
	"github.com/3lemenoP/dsp/internal/simdops"
)

// ForwardComplex is a one-shot forward FFT: it creates a plan for len(data)
// and transforms data in place. For repeated transforms of the same size,
// create a Plan once and reuse it.
func ForwardComplex[T Complex](data []T) error {
	plan, err := NewPlan[T](len(data), nil)
	if err != nil {
		return err
	}
	return plan.Forward(data)
}

// InverseComplex is a one-shot inverse FFT, scaled by 1/len(data).
// For repeated transforms of the same size, create a Plan once and reuse it.
func InverseComplex[T Complex](data []T) error {
	plan, err := NewPlan[T](len(data), nil)
	if err != nil {
		return err
	}
	return plan.Inverse(data)
}

// MagnitudeSpectrum is a one-shot single-sided amplitude spectrum of a real
// frame using the given window. The frame length must be a power of two.
func MagnitudeSpectrum(frame []float64, win Window) ([]float64, error) {
	analyzer, err := NewSpectrumAnalyzer(len(frame), win, 0)
	if err != nil {
		return nil, err
	}
	return analyzer.Magnitude(nil, frame)
}

// SignalPower returns the mean squared value of the samples, or 0 for an
// empty slice.
func SignalPower(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	ops := simdops.Float64Ops()
	return ops.DotProductUnsafe(samples, samples) / float64(len(samples))
}

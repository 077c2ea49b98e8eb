package dsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"

	"github.com/3lemenoP/dsp/internal/pool"
	"github.com/3lemenoP/dsp/internal/simdops"
	"github.com/3lemenoP/dsp/polar"
)

// Window selects the analysis window applied before the transform.
type Window int

// Supported analysis windows.
const (
	Rectangular Window = iota
	Hann
	Hamming
	Blackman
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case Rectangular:
		return "rectangular"
	case Hann:
		return "hann"
	case Hamming:
		return "hamming"
	case Blackman:
		return "blackman"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// ParseWindow maps a window name to its Window value.
func ParseWindow(name string) (Window, error) {
	switch name {
	case "rectangular", "rect":
		return Rectangular, nil
	case "hann":
		return Hann, nil
	case "hamming":
		return Hamming, nil
	case "blackman":
		return Blackman, nil
	default:
		return 0, fmt.Errorf("dsp: unknown window %q", name)
	}
}

// coefficients returns the window sampled at n points.
func (w Window) coefficients(n int) []float64 {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}

	switch w {
	case Hann:
		window.Hann(coeffs)
	case Hamming:
		window.Hamming(coeffs)
	case Blackman:
		window.Blackman(coeffs)
	}

	return coeffs
}

// SpectrumAnalyzer computes single-sided amplitude spectra of real frames.
// The window coefficients and their gain correction are precomputed at
// construction; per-call scratch comes from an internal pool, so one
// analyzer may serve multiple goroutines concurrently.
type SpectrumAnalyzer struct {
	plan       *Plan[complex128]
	win        Window
	coeffs     []float64
	gain       float64 // coherent gain, sum of window coefficients
	sampleRate float64
}

// NewSpectrumAnalyzer creates an analyzer for frames of the given size.
// The size must be a power of two and at least 2. sampleRate is used only by
// BinFrequency and may be zero when bin frequencies are not needed.
func NewSpectrumAnalyzer(size int, win Window, sampleRate float64) (*SpectrumAnalyzer, error) {
	plan, err := NewPlan[complex128](size, nil)
	if err != nil {
		return nil, err
	}

	coeffs := win.coefficients(size)

	return &SpectrumAnalyzer{
		plan:       plan,
		win:        win,
		coeffs:     coeffs,
		gain:       simdops.Float64Ops().Sum(coeffs),
		sampleRate: sampleRate,
	}, nil
}

// Size returns the analysis frame size.
func (a *SpectrumAnalyzer) Size() int { return a.plan.Size() }

// Window returns the analyzer's window type.
func (a *SpectrumAnalyzer) Window() Window { return a.win }

// Bins returns the number of single-sided spectrum bins, Size()/2 + 1.
func (a *SpectrumAnalyzer) Bins() int { return a.plan.Size()/halfDivisor + 1 }

// BinFrequency returns the center frequency of a bin in Hz.
func (a *SpectrumAnalyzer) BinFrequency(bin int) float64 {
	return float64(bin) * a.sampleRate / float64(a.plan.Size())
}

// Magnitude computes the single-sided amplitude spectrum of frame into dst
// and returns it. A nil dst is allocated to Bins() elements; otherwise dst
// must hold at least Bins().
//
// Bin values are corrected for the window's coherent gain, so a full-scale
// sine landing exactly on a bin reads as its amplitude. DC and Nyquist have
// no mirrored counterpart and are not doubled.
func (a *SpectrumAnalyzer) Magnitude(dst, frame []float64) ([]float64, error) {
	spectrum, err := a.transform(frame)
	if err != nil {
		return nil, err
	}
	defer pool.ReleaseComplex128(spectrum)

	bins := a.Bins()
	if dst == nil {
		dst = make([]float64, bins)
	} else if len(dst) < bins {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(dst), bins)
	}
	dst = dst[:bins]

	raw := pool.AcquireFloat64(bins)
	defer pool.ReleaseFloat64(raw)
	for k := range raw {
		re, im := real(spectrum[k]), imag(spectrum[k])
		raw[k] = math.Sqrt(re*re + im*im)
	}

	simdops.Float64Ops().Scale(dst, raw, spectrumScaleFactor/a.gain)
	dst[0] /= spectrumScaleFactor
	dst[bins-1] /= spectrumScaleFactor

	return dst, nil
}

// Polar computes the single-sided spectrum as polar values with the same
// amplitude correction as Magnitude, preserving per-bin phase.
func (a *SpectrumAnalyzer) Polar(frame []float64) ([]polar.Value[float64], error) {
	spectrum, err := a.transform(frame)
	if err != nil {
		return nil, err
	}
	defer pool.ReleaseComplex128(spectrum)

	bins := a.Bins()
	out := make([]polar.Value[float64], bins)
	for k := range out {
		scale := spectrumScaleFactor / a.gain
		if k == 0 || k == bins-1 {
			scale = 1 / a.gain
		}
		out[k] = polar.FromRect(polar.Rect[float64]{
			Re: real(spectrum[k]) * scale,
			Im: imag(spectrum[k]) * scale,
		})
	}

	return out, nil
}

// transform windows the frame and runs the forward FFT. The returned buffer
// belongs to the internal pool; the caller must release it.
func (a *SpectrumAnalyzer) transform(frame []float64) ([]complex128, error) {
	if frame == nil {
		return nil, ErrNilBuffer
	}

	n := a.plan.Size()
	if len(frame) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(frame), n)
	}

	buf := pool.AcquireComplex128(n)
	for i := range frame {
		buf[i] = complex(frame[i]*a.coeffs[i], 0)
	}

	if err := a.plan.Forward(buf); err != nil {
		pool.ReleaseComplex128(buf)
		return nil, err
	}

	return buf, nil
}

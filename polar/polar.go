// Package polar implements polar-coordinate complex arithmetic with
// epsilon-tolerant comparisons.
//
// A Value holds a nonnegative magnitude and a phase normalized to (-π, π].
// Multiplication, division, conjugation and rotation operate directly on the
// polar form; addition and subtraction convert through rectangular form.
// Magnitudes below a precision-dependent threshold collapse to the canonical
// zero value (magnitude 0, phase 0), which keeps phases well-defined near
// zero instead of drifting with rounding noise.
package polar

import (
	"errors"
	"math"
)

// Float is the type constraint for supported component precisions.
type Float interface {
	float32 | float64
}

// Sentinel errors returned by polar operations.
var (
	// ErrNegativeMagnitude is returned by New for a magnitude below zero.
	ErrNegativeMagnitude = errors.New("polar: negative magnitude")

	// ErrMagnitudeOverflow is returned by New for a magnitude above the
	// safe maximum (half the largest finite value of the precision).
	ErrMagnitudeOverflow = errors.New("polar: magnitude exceeds maximum safe value")

	// ErrZeroDivisor is returned by Div when the divisor is effectively zero.
	ErrZeroDivisor = errors.New("polar: division by zero magnitude")

	// ErrZeroReciprocal is returned by Reciprocal of an effectively zero value.
	ErrZeroReciprocal = errors.New("polar: reciprocal of zero")
)

// Numerical thresholds, scaled from the machine epsilon of each precision.
// The phase thresholds are deliberately loose so that wrapped angles such as
// 3π comparing against -π still register as equal.
const (
	machineEps32 = 0x1p-23
	machineEps64 = 0x1p-52

	minNormal32 = 0x1p-126
	minNormal64 = 0x1p-1022

	epsilonMultiplier  = 10  // relative comparison slop
	minMagnitudeFactor = 2   // multiples of the smallest normal value
	maxMagnitudeFactor = 2   // divisor of the largest finite value
	phaseEpsFactor     = 10  // phase comparison slop, on top of epsilon
	boundaryEpsFactor  = 20  // ±π snapping slop, on top of phase epsilon
	zeroSumFactor      = 100 // cancellation threshold factor for Add/Sub
)

// epsilon returns the relative comparison tolerance for precision F.
func epsilon[F Float]() float64 {
	if isSingle[F]() {
		return epsilonMultiplier * machineEps32
	}
	return epsilonMultiplier * machineEps64
}

// minMagnitude returns the threshold below which a magnitude is treated as zero.
func minMagnitude[F Float]() float64 {
	if isSingle[F]() {
		return minMagnitudeFactor * minNormal32
	}
	return minMagnitudeFactor * minNormal64
}

// maxMagnitude returns the largest magnitude New accepts.
func maxMagnitude[F Float]() float64 {
	if isSingle[F]() {
		return math.MaxFloat32 / maxMagnitudeFactor
	}
	return math.MaxFloat64 / maxMagnitudeFactor
}

func phaseEpsilon[F Float]() float64 {
	return phaseEpsFactor * epsilon[F]()
}

func boundaryEpsilon[F Float]() float64 {
	return boundaryEpsFactor * phaseEpsilon[F]()
}

func isSingle[F Float]() bool {
	var zero F
	_, ok := any(zero).(float32)
	return ok
}

// Value is a complex number in polar form at precision F.
// The zero Value is the canonical zero (magnitude 0, phase 0).
type Value[F Float] struct {
	magnitude F
	phase     F
}

// New constructs a Value, validating the magnitude and normalizing the phase.
func New[F Float](magnitude, phase F) (Value[F], error) {
	if magnitude < 0 {
		return Value[F]{}, ErrNegativeMagnitude
	}
	if float64(magnitude) > maxMagnitude[F]() {
		return Value[F]{}, ErrMagnitudeOverflow
	}

	return newValue(magnitude, phase), nil
}

// newValue builds a Value from a known-nonnegative magnitude.
func newValue[F Float](magnitude, phase F) Value[F] {
	return Value[F]{magnitude: magnitude, phase: normalizePhase(phase)}
}

// Magnitude returns the magnitude component.
func (v Value[F]) Magnitude() F { return v.magnitude }

// Phase returns the phase component in (-π, π].
func (v Value[F]) Phase() F { return v.phase }

// IsZero reports whether the value is effectively zero.
func (v Value[F]) IsZero() bool {
	return effectivelyZero[F](v.magnitude)
}

// Mul returns the polar product v·o. A product with an effectively zero
// factor is the canonical zero.
func (v Value[F]) Mul(o Value[F]) Value[F] {
	if v.IsZero() || o.IsZero() {
		return Value[F]{}
	}

	return newValue(v.magnitude*o.magnitude, v.phase+o.phase)
}

// Div returns the polar quotient v/o, or ErrZeroDivisor when o is
// effectively zero.
func (v Value[F]) Div(o Value[F]) (Value[F], error) {
	if o.IsZero() {
		return Value[F]{}, ErrZeroDivisor
	}

	return newValue(v.magnitude/o.magnitude, v.phase-o.phase), nil
}

// Scale multiplies the value by a real scalar. A negative scalar flips the
// phase by π; an effectively zero scalar yields the canonical zero.
func (v Value[F]) Scale(s F) Value[F] {
	if effectivelyZero[F](s) {
		return Value[F]{}
	}
	if s < 0 {
		return newValue(v.magnitude*-s, v.phase+F(math.Pi))
	}

	return newValue(v.magnitude*s, v.phase)
}

// Add returns v+o, computed through rectangular form. Sums that cancel to
// within a threshold relative to the larger operand collapse to zero.
func (v Value[F]) Add(o Value[F]) Value[F] {
	if v.IsZero() {
		return o
	}
	if o.IsZero() {
		return v
	}

	ra, rb := v.Rect(), o.Rect()
	sum := Rect[F]{Re: ra.Re + rb.Re, Im: ra.Im + rb.Im}
	if rectBelow(sum, cancelThreshold(v, o)) {
		return Value[F]{}
	}

	return FromRect(sum)
}

// Sub returns v−o; see Add for the cancellation behavior.
func (v Value[F]) Sub(o Value[F]) Value[F] {
	if v.IsZero() {
		return o.Scale(-1)
	}
	if o.IsZero() {
		return v
	}

	ra, rb := v.Rect(), o.Rect()
	diff := Rect[F]{Re: ra.Re - rb.Re, Im: ra.Im - rb.Im}
	if rectBelow(diff, cancelThreshold(v, o)) {
		return Value[F]{}
	}

	return FromRect(diff)
}

// Conj returns the complex conjugate.
func (v Value[F]) Conj() Value[F] {
	return newValue(v.magnitude, -v.phase)
}

// Reciprocal returns 1/v, or ErrZeroReciprocal when v is effectively zero.
func (v Value[F]) Reciprocal() (Value[F], error) {
	if v.IsZero() {
		return Value[F]{}, ErrZeroReciprocal
	}

	return newValue(1/v.magnitude, -v.phase), nil
}

// Rotate advances the phase by angle radians, leaving the magnitude unchanged.
func (v Value[F]) Rotate(angle F) Value[F] {
	return newValue(v.magnitude, v.phase+angle)
}

// MulConj returns v·conj(o) without materializing the conjugate.
func (v Value[F]) MulConj(o Value[F]) Value[F] {
	if v.IsZero() || o.IsZero() {
		return Value[F]{}
	}

	return newValue(v.magnitude*o.magnitude, v.phase-o.phase)
}

// Equal compares two values with relative magnitude tolerance and
// wrap-aware phase tolerance. Two effectively zero values are equal
// regardless of phase.
func (v Value[F]) Equal(o Value[F]) bool {
	if v.IsZero() && o.IsZero() {
		return true
	}

	maxMag := float64(v.magnitude)
	if float64(o.magnitude) > maxMag {
		maxMag = float64(o.magnitude)
	}
	magDiff := math.Abs(float64(v.magnitude) - float64(o.magnitude))
	if magDiff > epsilon[F]()*maxMag {
		return false
	}

	return phaseEqual[F](v.phase, o.phase)
}

// Rect is the rectangular (cartesian) form of a complex value.
type Rect[F Float] struct {
	Re F
	Im F
}

// FromRect converts rectangular coordinates to polar form. Components that
// are both effectively zero produce the canonical zero value.
func FromRect[F Float](r Rect[F]) Value[F] {
	if rectBelow(r, minMagnitude[F]()) {
		return Value[F]{}
	}

	magnitude := F(math.Hypot(float64(r.Re), float64(r.Im)))
	phase := F(math.Atan2(float64(r.Im), float64(r.Re)))

	return newValue(magnitude, phase)
}

// Rect converts the value to rectangular form.
func (v Value[F]) Rect() Rect[F] {
	if v.IsZero() {
		return Rect[F]{}
	}

	sin, cos := math.Sincos(float64(v.phase))
	return Rect[F]{
		Re: v.magnitude * F(cos),
		Im: v.magnitude * F(sin),
	}
}

func effectivelyZero[F Float](val F) bool {
	return math.Abs(float64(val)) <= minMagnitude[F]()
}

// cancelThreshold is the absolute threshold below which the rectangular
// result of Add/Sub is considered a full cancellation.
func cancelThreshold[F Float](a, b Value[F]) float64 {
	maxMag := float64(a.magnitude)
	if float64(b.magnitude) > maxMag {
		maxMag = float64(b.magnitude)
	}

	return maxMag * epsilon[F]() * zeroSumFactor
}

func rectBelow[F Float](r Rect[F], threshold float64) bool {
	return math.Abs(float64(r.Re)) <= threshold && math.Abs(float64(r.Im)) <= threshold
}

func phaseEqual[F Float](a, b F) bool {
	diff := math.Abs(float64(normalizePhase(a - b)))
	eps := phaseEpsilon[F]()

	return diff <= eps || math.Abs(diff-2*math.Pi) <= eps
}

// normalizePhase maps a raw angle into (-π, π], snapping results that land
// within the boundary tolerance of 0 or ±π onto the exact boundary.
func normalizePhase[F Float](raw F) F {
	r := math.Mod(float64(raw), 2*math.Pi)

	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r <= -math.Pi {
		r += 2 * math.Pi
	}

	// Snap to the boundaries; -π lands on π to stay inside (-π, π].
	eps := boundaryEpsilon[F]()
	switch {
	case math.Abs(r) < eps:
		r = 0
	case math.Abs(r-math.Pi) < eps, math.Abs(r+math.Pi) < eps:
		r = math.Pi
	}

	return F(r)
}

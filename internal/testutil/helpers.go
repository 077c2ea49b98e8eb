// Package testutil provides reusable test helpers for FFT and spectrum tests.
package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	Float32Tolerance = 1e-5
	RoundTripBase    = 1e-14
)

// AssertComplexInDelta verifies that got is within tol of want in absolute
// complex distance.
func AssertComplexInDelta(t *testing.T, want, got complex128, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	if d := cmplx.Abs(got - want); d > tol {
		return assert.Fail(t, "complex values differ",
			"want %v, got %v (|diff|=%e > %e)", want, got, d, tol)
	}
	return true
}

// AssertComplexSlicesInDelta verifies two complex slices match element-wise
// within tol.
func AssertComplexSlicesInDelta(t *testing.T, want, got []complex128, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if d := cmplx.Abs(got[i] - want[i]); d > tol {
			return assert.Fail(t, "complex slices differ",
				"index %d: want %v, got %v (|diff|=%e > %e)", i, want[i], got[i], d, tol)
		}
	}
	return true
}

// MaxComplexError returns the largest element-wise absolute difference
// between a and b. The slices must have equal length.
func MaxComplexError(a, b []complex128) float64 {
	maxErr := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxErr {
			maxErr = d
		}
	}
	return maxErr
}

// RandomComplexSlice returns n complex values with components uniform in
// [-1, 1).
func RandomComplexSlice(rng *rand.Rand, n int) []complex128 {
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}
	return data
}

// NaiveDFT computes the unnormalized DFT of input by the O(N²) definition.
// Used as an algorithm-independent reference for FFT outputs.
func NaiveDFT(input []complex128) []complex128 {
	n := len(input)
	output := make([]complex128, n)
	for k := range output {
		var sum complex128
		for t, x := range input {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x * cmplx.Exp(complex(0, angle))
		}
		output[k] = sum
	}
	return output
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

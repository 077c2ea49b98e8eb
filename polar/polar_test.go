package polar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustNew(t *testing.T, mag, phase float64) Value[float64] {
	t.Helper()
	v, err := New(mag, phase)
	require.NoError(t, err)
	return v
}

func TestNew_Validation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := mustNew(t, 2.0, math.Pi/4)
		assert.Equal(t, 2.0, v.Magnitude())
		assert.InDelta(t, math.Pi/4, v.Phase(), tol)
	})

	t.Run("negative_magnitude", func(t *testing.T) {
		_, err := New(-1.0, 0.0)
		assert.ErrorIs(t, err, ErrNegativeMagnitude)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := New(math.MaxFloat64, 0.0)
		assert.ErrorIs(t, err, ErrMagnitudeOverflow)

		_, err = New(math.MaxFloat64/2, 0.0)
		assert.NoError(t, err, "exactly the maximum is accepted")
	})

	t.Run("float32_overflow", func(t *testing.T) {
		_, err := New[float32](math.MaxFloat32, 0)
		assert.ErrorIs(t, err, ErrMagnitudeOverflow)
	})
}

func TestNormalizePhase(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"identity", 1.0, 1.0},
		{"wrap_down", 3 * math.Pi, math.Pi},
		{"wrap_up", -3 * math.Pi, math.Pi},
		{"two_pi_to_zero", 2 * math.Pi, 0},
		{"negative_pi_maps_to_pi", -math.Pi, math.Pi},
		{"pi_stays_pi", math.Pi, math.Pi},
		{"large_multiple", 10 * math.Pi, 0},
		{"snap_near_zero", 1e-14, 0},
		{"snap_near_pi", math.Pi - 1e-14, math.Pi},
		{"snap_near_negative_pi", -math.Pi + 1e-14, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePhase(tt.raw)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

func TestValue_IsZero(t *testing.T) {
	assert.True(t, Value[float64]{}.IsZero())
	assert.True(t, mustNew(t, 0, 1.5).IsZero(), "zero magnitude regardless of phase")
	assert.False(t, mustNew(t, 1e-300, 0).IsZero(), "tiny normal magnitude is not zero")
}

func TestValue_Mul(t *testing.T) {
	a := mustNew(t, 2.0, math.Pi/3)
	b := mustNew(t, 3.0, math.Pi/6)

	p := a.Mul(b)
	assert.InDelta(t, 6.0, p.Magnitude(), tol)
	assert.InDelta(t, math.Pi/2, p.Phase(), tol)

	t.Run("phase_wraps", func(t *testing.T) {
		c := mustNew(t, 1.0, 3*math.Pi/4)
		p := c.Mul(c)
		assert.InDelta(t, -math.Pi/2, p.Phase(), tol)
	})

	t.Run("zero_annihilates", func(t *testing.T) {
		z := a.Mul(Value[float64]{})
		assert.True(t, z.IsZero())
		assert.Zero(t, z.Phase())
	})
}

func TestValue_Div(t *testing.T) {
	a := mustNew(t, 6.0, math.Pi/2)
	b := mustNew(t, 2.0, math.Pi/6)

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, q.Magnitude(), tol)
	assert.InDelta(t, math.Pi/3, q.Phase(), tol)

	_, err = a.Div(Value[float64]{})
	assert.ErrorIs(t, err, ErrZeroDivisor)
}

func TestValue_Scale(t *testing.T) {
	v := mustNew(t, 2.0, math.Pi/4)

	t.Run("positive", func(t *testing.T) {
		s := v.Scale(3)
		assert.InDelta(t, 6.0, s.Magnitude(), tol)
		assert.InDelta(t, math.Pi/4, s.Phase(), tol)
	})

	t.Run("negative_flips_phase", func(t *testing.T) {
		s := v.Scale(-2)
		assert.InDelta(t, 4.0, s.Magnitude(), tol)
		assert.InDelta(t, math.Pi/4-math.Pi, s.Phase(), tol)
	})

	t.Run("zero_collapses", func(t *testing.T) {
		assert.True(t, v.Scale(0).IsZero())
	})
}

func TestValue_AddSub(t *testing.T) {
	t.Run("collinear_add", func(t *testing.T) {
		a := mustNew(t, 1.0, math.Pi/3)
		b := mustNew(t, 2.0, math.Pi/3)
		sum := a.Add(b)
		assert.InDelta(t, 3.0, sum.Magnitude(), tol)
		assert.InDelta(t, math.Pi/3, sum.Phase(), tol)
	})

	t.Run("orthogonal_add", func(t *testing.T) {
		a := mustNew(t, 1.0, 0)
		b := mustNew(t, 1.0, math.Pi/2)
		sum := a.Add(b)
		assert.InDelta(t, math.Sqrt2, sum.Magnitude(), tol)
		assert.InDelta(t, math.Pi/4, sum.Phase(), tol)
	})

	t.Run("zero_identity", func(t *testing.T) {
		a := mustNew(t, 1.5, 0.7)
		assert.True(t, a.Add(Value[float64]{}).Equal(a))
		assert.True(t, Value[float64]{}.Add(a).Equal(a))
	})

	t.Run("cancellation_collapses_to_zero", func(t *testing.T) {
		a := mustNew(t, 1.0, 0)
		b := mustNew(t, 1.0, math.Pi)
		assert.True(t, a.Add(b).IsZero())
		assert.True(t, a.Sub(a).IsZero())
	})

	t.Run("sub", func(t *testing.T) {
		a := mustNew(t, 2.0, 0)
		b := mustNew(t, 1.0, 0)
		d := a.Sub(b)
		assert.InDelta(t, 1.0, d.Magnitude(), tol)
		assert.InDelta(t, 0.0, d.Phase(), tol)
	})

	t.Run("sub_from_zero_negates", func(t *testing.T) {
		b := mustNew(t, 1.0, math.Pi/4)
		d := Value[float64]{}.Sub(b)
		assert.InDelta(t, 1.0, d.Magnitude(), tol)
		assert.InDelta(t, math.Pi/4-math.Pi, d.Phase(), tol)
	})
}

func TestValue_ConjReciprocal(t *testing.T) {
	v := mustNew(t, 2.0, math.Pi/3)

	c := v.Conj()
	assert.InDelta(t, 2.0, c.Magnitude(), tol)
	assert.InDelta(t, -math.Pi/3, c.Phase(), tol)

	r, err := v.Reciprocal()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Magnitude(), tol)
	assert.InDelta(t, -math.Pi/3, r.Phase(), tol)

	// v · 1/v = 1.
	one := v.Mul(r)
	assert.InDelta(t, 1.0, one.Magnitude(), tol)
	assert.InDelta(t, 0.0, one.Phase(), tol)

	_, err = Value[float64]{}.Reciprocal()
	assert.ErrorIs(t, err, ErrZeroReciprocal)
}

func TestValue_Rotate(t *testing.T) {
	v := mustNew(t, 1.0, math.Pi/2)

	r := v.Rotate(math.Pi)
	assert.InDelta(t, 1.0, r.Magnitude(), tol)
	assert.InDelta(t, -math.Pi/2, r.Phase(), tol)

	full := v.Rotate(2 * math.Pi)
	assert.InDelta(t, math.Pi/2, full.Phase(), tol)
}

func TestValue_MulConj(t *testing.T) {
	a := mustNew(t, 2.0, math.Pi/3)
	b := mustNew(t, 4.0, math.Pi/6)

	got := a.MulConj(b)
	want := a.Mul(b.Conj())
	assert.True(t, got.Equal(want))
}

func TestValue_Equal(t *testing.T) {
	a := mustNew(t, 1.0, math.Pi/4)

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, a.Equal(a))
	})

	t.Run("within_tolerance", func(t *testing.T) {
		b := mustNew(t, 1.0+1e-16, math.Pi/4+1e-16)
		assert.True(t, a.Equal(b))
	})

	t.Run("magnitude_differs", func(t *testing.T) {
		assert.False(t, a.Equal(mustNew(t, 1.1, math.Pi/4)))
	})

	t.Run("phase_differs", func(t *testing.T) {
		assert.False(t, a.Equal(mustNew(t, 1.0, math.Pi/3)))
	})

	t.Run("wrapped_phase_equal", func(t *testing.T) {
		b := mustNew(t, 1.0, math.Pi/4+2*math.Pi)
		assert.True(t, a.Equal(b))
	})

	t.Run("zeros_equal_regardless_of_phase", func(t *testing.T) {
		x := mustNew(t, 0, 1.0)
		y := mustNew(t, 0, -2.0)
		assert.True(t, x.Equal(y))
	})
}

func TestRectConversion(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		v := mustNew(t, 2.0, math.Pi/6)
		got := FromRect(v.Rect())
		assert.True(t, v.Equal(got))
	})

	t.Run("axes", func(t *testing.T) {
		tests := []struct {
			name      string
			rect      Rect[float64]
			wantMag   float64
			wantPhase float64
		}{
			{"positive_real", Rect[float64]{1, 0}, 1, 0},
			{"negative_real", Rect[float64]{-1, 0}, 1, math.Pi},
			{"positive_imag", Rect[float64]{0, 1}, 1, math.Pi / 2},
			{"negative_imag", Rect[float64]{0, -1}, 1, -math.Pi / 2},
			{"unit_diagonal", Rect[float64]{1, 1}, math.Sqrt2, math.Pi / 4},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v := FromRect(tt.rect)
				assert.InDelta(t, tt.wantMag, v.Magnitude(), tol)
				assert.InDelta(t, tt.wantPhase, v.Phase(), tol)
			})
		}
	})

	t.Run("subnormal_collapses", func(t *testing.T) {
		v := FromRect(Rect[float64]{1e-320, -1e-320})
		assert.True(t, v.IsZero())
	})

	t.Run("zero_rect", func(t *testing.T) {
		r := Value[float64]{}.Rect()
		assert.Zero(t, r.Re)
		assert.Zero(t, r.Im)
	})
}

func TestValue_Float32(t *testing.T) {
	a, err := New[float32](2, float32(math.Pi)/3)
	require.NoError(t, err)
	b, err := New[float32](3, float32(math.Pi)/6)
	require.NoError(t, err)

	p := a.Mul(b)
	assert.InDelta(t, 6.0, float64(p.Magnitude()), 1e-6)
	assert.InDelta(t, math.Pi/2, float64(p.Phase()), 1e-6)

	// float32 comparison tolerance is much looser than float64.
	c, err := New[float32](2+1e-7, float32(math.Pi)/3)
	require.NoError(t, err)
	assert.True(t, a.Equal(c))
}

func TestMulDivInverse(t *testing.T) {
	a := mustNew(t, 3.0, 1.1)
	b := mustNew(t, 0.7, -2.3)

	q, err := a.Mul(b).Div(b)
	require.NoError(t, err)
	assert.True(t, q.Equal(a), "a·b/b = a")
}

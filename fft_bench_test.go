package dsp

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/3lemenoP/dsp/internal/testutil"
)

func BenchmarkNewPlan(b *testing.B) {
	for _, size := range []int{256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			for b.Loop() {
				if _, err := NewPlan[complex128](size, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForward(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("complex128/size_%d", size), func(b *testing.B) {
			plan, err := NewPlan[complex128](size, nil)
			if err != nil {
				b.Fatal(err)
			}
			data := testutil.RandomComplexSlice(rng, size)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_ = plan.Forward(data)
			}
		})

		b.Run(fmt.Sprintf("complex64/size_%d", size), func(b *testing.B) {
			plan, err := NewPlan[complex64](size, nil)
			if err != nil {
				b.Fatal(err)
			}
			data := make([]complex64, size)
			for i := range data {
				data[i] = complex(rng.Float32(), rng.Float32())
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_ = plan.Forward(data)
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	const size = 1024

	plan, err := NewPlan[complex128](size, nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	data := testutil.RandomComplexSlice(rng, size)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = plan.Forward(data)
		_ = plan.Inverse(data)
	}
}

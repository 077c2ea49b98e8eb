// Package pool provides size-classed scratch buffer pooling to reduce GC
// pressure in components that need per-call working memory (convolution
// blocks, streaming frames). The FFT plan itself never allocates during a
// transform and does not use these pools.
package pool

import (
	"math/bits"
	"sync"
)

// Size classes are powers of two matching common FFT block sizes.
// Buffers above the largest class are allocated directly.
var classSizes = [...]int{64, 256, 1024, 4096, 16384, 65536}

var complexPools = [...]sync.Pool{
	{New: func() any { return make([]complex128, 64) }},
	{New: func() any { return make([]complex128, 256) }},
	{New: func() any { return make([]complex128, 1024) }},
	{New: func() any { return make([]complex128, 4096) }},
	{New: func() any { return make([]complex128, 16384) }},
	{New: func() any { return make([]complex128, 65536) }},
}

var floatPools = [...]sync.Pool{
	{New: func() any { return make([]float64, 64) }},
	{New: func() any { return make([]float64, 256) }},
	{New: func() any { return make([]float64, 1024) }},
	{New: func() any { return make([]float64, 4096) }},
	{New: func() any { return make([]float64, 16384) }},
	{New: func() any { return make([]float64, 65536) }},
}

// classIndex returns the pool index whose class size is >= size, or -1 when
// the size is too large for pooling. Classes are powers of 4 starting at
// 4^3 = 64, so the index follows directly from the bit length of size-1.
func classIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > classSizes[len(classSizes)-1] {
		return -1
	}

	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}

	return idx
}

// AcquireComplex128 returns a zeroed []complex128 of exactly the requested
// length, backed by a pooled buffer when the size fits a class.
//
// Release with ReleaseComplex128, preferably via defer:
//
//	buf := pool.AcquireComplex128(n)
//	defer pool.ReleaseComplex128(buf)
func AcquireComplex128(size int) []complex128 {
	idx := classIndex(size)
	if idx < 0 {
		return make([]complex128, size)
	}

	buf := complexPools[idx].Get().([]complex128)
	clear(buf)

	return buf[:size]
}

// ReleaseComplex128 returns a buffer obtained from AcquireComplex128 to its
// pool. Safe to call with nil. Directly allocated (oversized) buffers are
// left for the garbage collector.
func ReleaseComplex128(buf []complex128) {
	if buf == nil {
		return
	}

	c := cap(buf)
	idx := classIndex(c)
	if idx >= 0 && classSizes[idx] == c {
		complexPools[idx].Put(buf[:c])
	}
}

// AcquireFloat64 returns a zeroed []float64 of exactly the requested length,
// backed by a pooled buffer when the size fits a class.
func AcquireFloat64(size int) []float64 {
	idx := classIndex(size)
	if idx < 0 {
		return make([]float64, size)
	}

	buf := floatPools[idx].Get().([]float64)
	clear(buf)

	return buf[:size]
}

// ReleaseFloat64 returns a buffer obtained from AcquireFloat64 to its pool.
// Safe to call with nil.
func ReleaseFloat64(buf []float64) {
	if buf == nil {
		return
	}

	c := cap(buf)
	idx := classIndex(c)
	if idx >= 0 && classSizes[idx] == c {
		floatPools[idx].Put(buf[:c])
	}
}

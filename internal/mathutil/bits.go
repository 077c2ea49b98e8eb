// Package mathutil provides pure integer helpers shared by the FFT plan.
package mathutil

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n, assuming n is a power of two.
func Log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReversalIndices returns the bit-reversal permutation table for a
// size-n radix-2 FFT: entry i holds i with its log2(n) low bits reversed.
func BitReversalIndices(n int) []int {
	if !IsPowerOfTwo(n) {
		return nil
	}

	bits := Log2(n)
	indices := make([]int, n)
	for i := range n {
		indices[i] = ReverseBits(i, bits)
	}

	return indices
}

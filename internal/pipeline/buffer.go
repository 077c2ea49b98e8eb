// Package pipeline provides sample buffering for streaming FFT processing.
package pipeline

import (
	"sync"
)

// RingBuffer implements a circular buffer for audio samples.
// It is designed for efficient streaming between a sample source and the
// frame-based FFT consumers: writers append arbitrary chunk sizes, readers
// peek fixed-size analysis frames and discard hop-sized prefixes.
type RingBuffer struct {
	data     []float64
	capacity int
	size     int
	readPos  int
	writePos int
	mu       sync.Mutex
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}

	return &RingBuffer{
		data:     make([]float64, capacity),
		capacity: capacity,
	}
}

// Write adds samples to the buffer, growing it when needed.
func (b *RingBuffer) Write(samples []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	needed := len(samples)
	if needed == 0 {
		return
	}

	if b.size+needed > b.capacity {
		b.grow(b.size + needed)
	}

	for _, sample := range samples {
		b.data[b.writePos] = sample
		b.writePos = (b.writePos + 1) % b.capacity
		b.size++
	}
}

// Read retrieves up to n samples from the buffer.
// Returns fewer samples if less are available.
func (b *RingBuffer) Read(n int) []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return []float64{}
	}

	result := make([]float64, n)
	for i := range result {
		result[i] = b.data[b.readPos]
		b.readPos = (b.readPos + 1) % b.capacity
		b.size--
	}

	return result
}

// PeekInto copies up to len(dst) samples into dst without consuming them.
// Returns the number of samples copied.
func (b *RingBuffer) PeekInto(dst []float64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(dst)
	if n > b.size {
		n = b.size
	}

	readPos := b.readPos
	for i := range n {
		dst[i] = b.data[readPos]
		readPos = (readPos + 1) % b.capacity
	}

	return n
}

// Discard drops up to n samples from the front of the buffer and returns
// the number actually dropped.
func (b *RingBuffer) Discard(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return 0
	}

	b.readPos = (b.readPos + n) % b.capacity
	b.size -= n

	return n
}

// Available returns the number of samples available for reading.
func (b *RingBuffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Capacity returns the current buffer capacity.
func (b *RingBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Clear removes all samples from the buffer.
func (b *RingBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow increases the buffer capacity to at least the specified size.
func (b *RingBuffer) grow(minCapacity int) {
	newCapacity := b.capacity
	for newCapacity < minCapacity {
		newCapacity *= 2
	}

	newData := make([]float64, newCapacity)

	// Copy existing data to maintain order
	if b.size > 0 {
		if b.readPos < b.writePos {
			copy(newData, b.data[b.readPos:b.writePos])
		} else {
			n1 := copy(newData, b.data[b.readPos:])
			copy(newData[n1:], b.data[:b.writePos])
		}
	}

	b.data = newData
	b.capacity = newCapacity
	b.readPos = 0
	b.writePos = b.size
}

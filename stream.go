package dsp

import (
	"fmt"

	"github.com/3lemenoP/dsp/internal/pipeline"
	"github.com/3lemenoP/dsp/internal/pool"
)

// Streamer computes short-time magnitude spectra over a continuous sample
// stream. Pushed samples accumulate in a ring buffer; whenever a full
// analysis frame is available, the streamer emits its spectrum and advances
// by the hop size, so consecutive frames overlap by Size() - hop samples.
//
// A Streamer is a sequential pipeline stage: Push, Flush and Reset must not
// be called concurrently.
type Streamer struct {
	analyzer *SpectrumAnalyzer
	ring     *pipeline.RingBuffer
	hop      int
}

// NewStreamer creates a streamer emitting frames of the given size with the
// given hop. The size must be a power of two and at least 2; the hop must be
// in [1, size].
func NewStreamer(size, hop int, win Window, sampleRate float64) (*Streamer, error) {
	analyzer, err := NewSpectrumAnalyzer(size, win, sampleRate)
	if err != nil {
		return nil, err
	}
	if hop < 1 || hop > size {
		return nil, fmt.Errorf("%w: got hop %d for size %d", ErrInvalidHop, hop, size)
	}

	return &Streamer{
		analyzer: analyzer,
		ring:     pipeline.NewRingBuffer(2 * size),
		hop:      hop,
	}, nil
}

// Size returns the analysis frame size.
func (s *Streamer) Size() int { return s.analyzer.Size() }

// Hop returns the frame advance in samples.
func (s *Streamer) Hop() int { return s.hop }

// Bins returns the number of bins per emitted spectrum.
func (s *Streamer) Bins() int { return s.analyzer.Bins() }

// BinFrequency returns the center frequency of a bin in Hz.
func (s *Streamer) BinFrequency(bin int) float64 { return s.analyzer.BinFrequency(bin) }

// Pending returns the number of buffered samples not yet emitted.
func (s *Streamer) Pending() int { return s.ring.Available() }

// Push appends samples to the stream and returns the magnitude spectra of
// every complete frame they unlock, oldest first. The returned slice is nil
// when no frame completed.
func (s *Streamer) Push(samples []float64) ([][]float64, error) {
	s.ring.Write(samples)

	size := s.analyzer.Size()
	var frames [][]float64

	frame := pool.AcquireFloat64(size)
	defer pool.ReleaseFloat64(frame)

	for s.ring.Available() >= size {
		s.ring.PeekInto(frame)

		mags, err := s.analyzer.Magnitude(nil, frame)
		if err != nil {
			return frames, err
		}

		frames = append(frames, mags)
		s.ring.Discard(s.hop)
	}

	return frames, nil
}

// Flush emits one final spectrum from the remaining samples, zero-padded to
// a full frame, and empties the buffer. It returns nil when no samples are
// pending.
func (s *Streamer) Flush() ([]float64, error) {
	if s.ring.Available() == 0 {
		return nil, nil
	}

	frame := pool.AcquireFloat64(s.analyzer.Size())
	defer pool.ReleaseFloat64(frame)

	s.ring.PeekInto(frame)
	s.ring.Clear()

	return s.analyzer.Magnitude(nil, frame)
}

// Reset discards all buffered samples.
func (s *Streamer) Reset() {
	s.ring.Clear()
}

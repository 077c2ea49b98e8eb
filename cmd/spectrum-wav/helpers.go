package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Sample format constants.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// wavInput holds validated input file information.
type wavInput struct {
	path     string
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInput, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInput{
		path:     path,
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInput) Close() error {
	return w.file.Close()
}

// maxSampleValue returns the full-scale value for a PCM bit depth.
func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// mixToMono averages interleaved integer channels into normalized float64
// samples appended to dst. Trailing partial frames are dropped.
func mixToMono(dst []float64, interleaved []int, channels int, invMax float64) []float64 {
	if channels < 1 {
		return dst
	}

	frames := len(interleaved) / channels
	for f := range frames {
		var sum float64
		for ch := range channels {
			sum += float64(interleaved[f*channels+ch])
		}
		dst = append(dst, sum/float64(channels)*invMax)
	}

	return dst
}

// topPeaks returns the bins of the n largest local maxima of the spectrum,
// strongest first. Edge bins are excluded since they have only one neighbor.
func topPeaks(spectrum []float64, n int) []int {
	var peaks []int
	for k := 1; k < len(spectrum)-1; k++ {
		if spectrum[k] > spectrum[k-1] && spectrum[k] >= spectrum[k+1] {
			peaks = append(peaks, k)
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return spectrum[peaks[i]] > spectrum[peaks[j]]
	})

	if n >= 0 && len(peaks) > n {
		peaks = peaks[:n]
	}

	return peaks
}

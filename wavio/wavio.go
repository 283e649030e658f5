// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavio decodes mono/multi-channel PCM wav files into the
// normalized float32 frames the formant driver consumes, and steps a
// full decoded signal into the overlapping analysis windows a caller
// feeds to formants.FindFormants one at a time. It exists outside the
// core estimation package: general audio I/O is named an out-of-scope
// external collaborator, so this package is demo-only plumbing, not
// part of the allocation-free pipeline.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Wave wraps a decoded wav file.
type Wave struct {
	Decoder *wav.Decoder
	file    *os.File
}

// Load opens and decodes filename. The caller must call Close when done.
func Load(filename string) (*Wave, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("wavio: open %s: %w", filename, err)
	}
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, errors.New("wavio: invalid wav file")
	}
	return &Wave{Decoder: dec, file: f}, nil
}

// Close releases the underlying file handle.
func (w *Wave) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

// SampleRate returns the wav file's sample rate in Hz.
func (w *Wave) SampleRate() int {
	return int(w.Decoder.SampleRate)
}

// Channels returns the number of interleaved channels in the wav data.
func (w *Wave) Channels() int {
	return int(w.Decoder.NumChans)
}

// Duration returns the decoded file's playback duration.
func (w *Wave) Duration() time.Duration {
	d, err := w.Decoder.Duration()
	if err != nil {
		return 0
	}
	return d
}

// Samples decodes the full file and returns one channel's samples,
// normalized to [-1, 1]. channel must be in [0, Channels()).
func (w *Wave) Samples(channel int) ([]float32, error) {
	buf, err := w.Decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}
	nChans := w.Channels()
	if channel < 0 || channel >= nChans {
		return nil, fmt.Errorf("wavio: channel %d out of range [0,%d)", channel, nChans)
	}
	nFrames := buf.NumFrames()
	out := make([]float32, nFrames)
	for i := 0; i < nFrames; i++ {
		out[i] = normalize(buf, i*nChans+channel)
	}
	return out, nil
}

// normalize converts one PCM sample at idx in buf to a float32 in [-1, 1].
func normalize(buf *audio.IntBuffer, idx int) float32 {
	switch buf.SourceBitDepth {
	case 32:
		return float32(buf.Data[idx]) / float32(0x7FFFFFFF)
	case 24:
		return float32(buf.Data[idx]) / float32(0x7FFFFF)
	case 16:
		return float32(buf.Data[idx]) / float32(0x7FFF)
	case 8:
		return float32(buf.Data[idx]) / float32(0x7F)
	default:
		return 0
	}
}

// FrameStepper carries the window/step geometry for walking a decoded
// signal frame by frame: every WinSamples-wide window, StepSamples
// apart, that FindFormants is called on in turn.
type FrameStepper struct {
	WinMs     float32 // analysis window width, in milliseconds
	StepMs    float32 // step between successive window starts, in milliseconds
	SampleRate int

	WinSamples  int // window width in samples
	StepSamples int // step width in samples
	Starts      []int // pre-computed window start offsets
}

// Defaults sets the 25ms window / 10ms step geometry common to formant
// analysis (matching the teacher's own window/step defaults).
func (fs *FrameStepper) Defaults() {
	fs.WinMs = 25
	fs.StepMs = 10
}

// Config computes WinSamples, StepSamples, and the window start
// offsets for a signal of length n at the given sample rate. Windows
// that would run past the end of the signal are omitted.
func (fs *FrameStepper) Config(n int, sampleRate int) {
	fs.SampleRate = sampleRate
	fs.WinSamples = msecToSamples(fs.WinMs, sampleRate)
	fs.StepSamples = msecToSamples(fs.StepMs, sampleRate)
	if fs.StepSamples < 1 {
		fs.StepSamples = 1
	}
	fs.Starts = fs.Starts[:0]
	for start := 0; start+fs.WinSamples <= n; start += fs.StepSamples {
		fs.Starts = append(fs.Starts, start)
	}
}

// msecToSamples converts milliseconds to samples at rate.
func msecToSamples(ms float32, rate int) int {
	return int(math.Round(float64(ms) * 0.001 * float64(rate)))
}

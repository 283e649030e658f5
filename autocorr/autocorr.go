// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autocorr is the driver's autocorrelation collaborator (spec
// §4.6 step 4): given a windowed frame, it returns n+1 autocorrelation
// lags. spec.md calls this out explicitly as an external collaborator
// ("autocorrelation entry points used only by MFCC" are out of the
// core's scope), so unlike the rest of the pipeline it is not held to
// the no-allocation steady-state discipline -- it uses gonum's FFT to
// get O(N log N) autocorrelation instead of the naive O(N*n) direct
// sum.
package autocorr

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/dsp/fourier"
)

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Lags returns the first n+1 autocorrelation lags of frame (lags[0]
// is R(0)), computed via a zero-padded real FFT of the power spectrum.
func Lags[S constraints.Float](frame []S, n int) []S {
	fftLen := nextPow2(2 * len(frame))
	fft := fourier.NewFFT(fftLen)

	padded := make([]float64, fftLen)
	for i, v := range frame {
		padded[i] = float64(v)
	}

	spectrum := fft.Coefficients(nil, padded)
	power := make([]float64, len(spectrum))
	for i, c := range spectrum {
		power[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	// gonum's transforms are unnormalized: Sequence(Coefficients(x))
	// returns x scaled by fftLen, so each lag is divided by fftLen.
	ac := fft.Sequence(nil, complexPower(power))
	out := make([]S, n+1)
	for i := 0; i <= n && i < len(ac); i++ {
		out[i] = S(ac[i] / float64(fftLen))
	}
	return out
}

// complexPower lifts a real power spectrum back into gonum's complex
// representation for the inverse FFT.
func complexPower(power []float64) []complex128 {
	out := make([]complex128, len(power))
	for i, p := range power {
		out[i] = complex(p, 0)
	}
	return out
}

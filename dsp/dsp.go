// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsp holds the two small signal-conditioning steps the
// driver applies before LPC analysis: linear resampling to a target
// rate and Hanning windowing, per spec §4.3.
package dsp

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/emer/formants/internal/xmath"
)

// ratioIdentityTolerance is how close a resample ratio must be to 1.0
// before Resample short-circuits to a direct copy.
const ratioIdentityTolerance = 1.0e-4

// TwoPi is 2*pi, used by Hanning's phase computation.
const TwoPi = 6.283185307179586

// Resample fills dst with src linearly interpolated to len(dst)
// samples, using resampleRatio (== len(dst)/len(src), supplied
// explicitly rather than recomputed so the driver's "close enough to
// 1.0" shortcut is exact bit-for-bit). Endpoints are exact.
func Resample[S constraints.Float](src, dst []S, resampleRatio float64) {
	n := len(src)
	m := len(dst)
	if m == 0 {
		return
	}
	if math.Abs(resampleRatio-1.0) <= ratioIdentityTolerance {
		copy(dst, src)
		return
	}
	if m == 1 {
		dst[0] = src[0]
		return
	}
	for i := 0; i < m; i++ {
		p := float64(i*(n-1)) / float64(m-1)
		lo := int(p)
		hi := lo + 1
		if hi >= n {
			dst[i] = src[n-1]
			continue
		}
		frac := S(p - float64(lo))
		dst[i] = src[lo] + (src[hi]-src[lo])*frac
	}
}

// Hanning multiplies buf in place by the raised-cosine Hanning window
// 0.5*(1 - cos(2*pi*i/L)).
func Hanning[S constraints.Float](buf []S) {
	l := S(len(buf))
	for i := range buf {
		phase := S(i) / l
		w := S(0.5) * (1 - xmath.Cos(S(TwoPi)*phase))
		buf[i] *= w
	}
}

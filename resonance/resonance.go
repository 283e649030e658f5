// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resonance turns LPC predictor-polynomial roots into
// (frequency, amplitude) resonances, per spec §4.4.
package resonance

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/emer/formants/cplx"
	"github.com/emer/formants/internal/xmath"
)

// R is a single resonance: a candidate formant peak.
type R[S constraints.Float] struct {
	Frequency S
	Amplitude S
}

// minFrequency is the DC filter: roots whose frequency doesn't clear
// this are discarded as non-resonant.
const minFrequency = 1.0

// FromRoot converts a single complex polynomial root into a
// resonance, following the original source: roots with a negative
// imaginary part are discarded (their conjugate partner, with im>=0,
// carries the same frequency/amplitude), and so is any resulting
// frequency at or below 1 Hz.
func FromRoot[S constraints.Float](root cplx.C[S], sampleRate S) (R[S], bool) {
	if root.Im < 0 {
		return R[S]{}, false
	}
	freq := xmath.Atan2(root.Im, root.Re) * sampleRate / S(2*3.141592653589793)
	if freq <= S(minFrequency) {
		return R[S]{}, false
	}
	return R[S]{
		Frequency: freq,
		Amplitude: root.Norm(),
	}, true
}

// Extract converts roots to resonances, discarding non-resonant roots
// and returning the survivors sorted by frequency ascending. The
// survivors are appended to out[:0], so out's backing array is reused
// while it has room; append grows it when more resonances survive.
func Extract[S constraints.Float](roots []cplx.C[S], sampleRate S, out []R[S]) []R[S] {
	out = out[:0]
	for _, root := range roots {
		if res, ok := FromRoot(root, sampleRate); ok {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Frequency < out[j].Frequency })
	return out
}

// ToRoots reconstructs the complex roots a set of resonances came
// from (the upper-half-plane representative of each conjugate pair),
// used to test the round-trip idempotence spec §8 requires of
// to_resonance(to_roots(resonances), fs).
func ToRoots[S constraints.Float](resonances []R[S], sampleRate S) []cplx.C[S] {
	roots := make([]cplx.C[S], len(resonances))
	twoPi := S(2 * 3.141592653589793)
	for i, r := range resonances {
		theta := r.Frequency * twoPi / sampleRate
		roots[i] = cplx.New(r.Amplitude*xmath.Cos(theta), r.Amplitude*sinApprox(theta))
	}
	return roots
}

// sinApprox returns sin(theta) via cos(theta - pi/2), keeping the
// resonance package's trig surface limited to xmath's Cos/Atan2 pair.
func sinApprox[S constraints.Float](theta S) S {
	halfPi := S(1.5707963267948966)
	return xmath.Cos(theta - halfPi)
}

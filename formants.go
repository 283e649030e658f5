// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formants estimates vocal-tract resonant frequencies (F1...Fk)
// from a short frame of windowed mono PCM audio. The pipeline is
// resample -> window -> LPC (Levinson-Durbin) -> polynomial root
// finding (Laguerre deflation) -> resonance extraction -> formant slot
// assignment, per spec §2. FindFormants is the driver that composes
// the five components in packages polynomial, lpc, dsp, resonance,
// and tracker; it is the only exported entry point most callers need.
package formants

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/emer/formants/autocorr"
	"github.com/emer/formants/cplx"
	"github.com/emer/formants/dsp"
	"github.com/emer/formants/ferrors"
	"github.com/emer/formants/lpc"
	"github.com/emer/formants/polynomial"
	"github.com/emer/formants/resonance"
	"github.com/emer/formants/tracker"
)

// MaxResonances bounds how many resonances the driver will hand the
// tracker for a single frame.
const MaxResonances = 32

// MaleFormantEstimates and FemaleFormantEstimates are the adult seed
// tables spec §6 names for a tracker's initial estimates.
var (
	MaleFormantEstimates   = [4]float64{320, 1440, 2760, 3200}
	FemaleFormantEstimates = [4]float64{480, 1760, 3200, 3520}
)

// RealWorkSize returns the minimum length of the real scratch buffer
// FindFormants needs for a resampled frame of bufLen samples and an
// LPC order of nCoeffs, per spec §6's workspace sizing contract.
func RealWorkSize(bufLen, nCoeffs int) int {
	return 2*bufLen + 23*nCoeffs + 2
}

// ComplexWorkSize returns the minimum length of the complex scratch
// buffer FindFormants needs for an LPC order of nCoeffs.
func ComplexWorkSize(nCoeffs int) int {
	return 7*nCoeffs + 4
}

// FindFormants runs the full estimation pipeline over one frame:
//
//  1. verify the real workspace is large enough (ferrors.Workspace if not)
//  2. resample frame into resampledBuf and apply a Hanning window in place
//  3. autocorrelate and run Levinson-Durbin to get LPC coefficients
//  4. build the complex predictor polynomial and find its roots
//  5. convert roots to resonances, sorted, capped at MaxResonances
//  6. hand the resonances to trk to produce the next formant estimate
//
// frame and resampledBuf are caller-owned; work and complexWork are
// caller-owned scratch sized per RealWorkSize/ComplexWorkSize, and every
// LPC and frequency scratch region is carved from them. trk carries the
// estimates across frames; the returned slice is trk's internal buffer
// (see tracker.Tracker.Next). autocorr.Lags allocates its own buffers on
// every call (autocorrelation is named in spec §1 as an external
// collaborator); resonance.Extract writes into a local
// MaxResonances-long array and grows it only if more roots survive.
func FindFormants[S constraints.Float](
	frame []S,
	sampleRate S,
	resampleRatio float64,
	resampledBuf []S,
	nCoeffs int,
	work []S,
	complexWork []cplx.C[S],
	trk *tracker.Tracker[S],
) ([]S, error) {
	resampledLen := int(math.Ceil(resampleRatio * float64(len(frame))))
	if resampledLen > len(resampledBuf) {
		resampledLen = len(resampledBuf)
	}

	if len(work) < RealWorkSize(resampledLen, nCoeffs) {
		return nil, ferrors.New(ferrors.Workspace, "real workspace too small")
	}

	lpcCoeffs, work := work[:nCoeffs], work[nCoeffs:]

	dsp.Resample(frame, resampledBuf[:resampledLen], resampleRatio)
	dsp.Hanning(resampledBuf[:resampledLen])

	lpcWorkLen := 2*resampledLen + nCoeffs
	lpcWork, work := work[:lpcWorkLen], work[lpcWorkLen:]
	remLen := nCoeffs + 2
	rem, work := work[:remLen], work[remLen:]
	_ = rem // carved per spec §4.6 step 3; unused directly, kept for layout parity
	freqsBuf := work[:nCoeffs] // scratch for the resonance frequencies handed to the tracker

	ac := autocorr.Lags(resampledBuf[:resampledLen], nCoeffs)
	a := lpcWork[:nCoeffs+1]
	kc := lpcWork[nCoeffs+1 : 2*nCoeffs+1]
	tmp := lpcWork[2*nCoeffs+1 : 3*nCoeffs+1]
	// A residual that collapses to (near) zero means the frame was
	// silence or DC -- spec.md §7 is explicit that this is not an
	// error: the ill-conditioned LPC coefficients flow through to a
	// degenerate (possibly empty) resonance list rather than aborting
	// the frame.
	lpc.Mut(ac, nCoeffs, a, kc, tmp)
	copy(lpcCoeffs, a[1:])

	predictor := complexWork[:nCoeffs+1]
	predictor[0] = cplx.FromReal[S](1)
	for i := 0; i < nCoeffs; i++ {
		predictor[i+1] = cplx.FromReal(lpcCoeffs[i])
	}
	reverse(predictor)

	rootsWork := complexWork[nCoeffs+1:]
	if err := polynomial.FindRootsMut(predictor, rootsWork); err != nil {
		return nil, err
	}

	var resOut [MaxResonances]resonance.R[S]
	resonances := resonance.Extract(predictor, sampleRate, resOut[:0])
	if len(resonances) > MaxResonances {
		resonances = resonances[:MaxResonances]
	}

	n := len(resonances)
	if n > len(freqsBuf) {
		n = len(freqsBuf)
	}
	freqs := freqsBuf[:n]
	for i := range freqs {
		freqs[i] = resonances[i].Frequency
	}
	return trk.Next(freqs), nil
}

// reverse reverses s in place.
func reverse[S constraints.Float](s []cplx.C[S]) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

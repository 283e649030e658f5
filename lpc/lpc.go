// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lpc implements the Levinson-Durbin recursion that turns a
// vector of autocorrelation lags into linear-predictive-coding
// coefficients, per spec §4.2.
package lpc

import "golang.org/x/exp/constraints"

// Mut runs the Levinson-Durbin recursion against the first n+1
// autocorrelation lags in autocorr (autocorr[0] == R(0)) and writes
// n+1 predictor coefficients into a (a[0] == 1 on return) and n
// reflection coefficients into k. tmp is scratch, at least n long.
// Nothing is allocated: a, k, and tmp are all caller-owned.
//
// Mut returns the final residual error; a caller can treat err
// collapsing to (near) zero as a signal the input was degenerate
// (silence, a DC signal) rather than as a hard failure -- spec §7
// leaves that determination to the caller.
func Mut[S constraints.Float](autocorr []S, n int, a, k, tmp []S) S {
	err := autocorr[0]
	a[0] = 1

	for i := 1; i <= n; i++ {
		acc := autocorr[i]
		for j := 1; j < i; j++ {
			acc += a[j] * autocorr[i-j]
		}
		// once the residual has collapsed to zero (constant or silent
		// input) the remaining orders contribute nothing, so err stays 0
		// instead of turning into NaN.
		var ki S
		if err != 0 {
			ki = -acc / err
		}
		k[i-1] = ki
		copy(tmp[:n], a[:n])
		a[i] = ki
		for j := 1; j < i; j++ {
			a[j] += ki * tmp[i-j]
		}
		err *= 1 - ki*ki
	}
	return err
}

// Coeffs is the convenience, allocating entry point: it materializes
// a, k, and tmp and runs Mut. One of the permitted non-steady-state
// allocations named in spec §5.
func Coeffs[S constraints.Float](autocorr []S, n int) (a, k []S, err S) {
	a = make([]S, n+1)
	k = make([]S, n)
	tmp := make([]S, n)
	err = Mut(autocorr, n, a, k, tmp)
	return a, k, err
}

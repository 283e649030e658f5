// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polynomial implements the complex polynomial primitives the
// formant driver needs: degree/low-offset scans, Laguerre's method,
// synthetic division by a linear factor, and root finding by
// successive Laguerre deflation. Coefficients are stored index =
// power, per spec §9 -- reimplementers should not switch to a sparse
// (power, coeff) map.
package polynomial

import (
	"golang.org/x/exp/constraints"

	"github.com/emer/formants/cplx"
	"github.com/emer/formants/ferrors"
)

// maxLaguerreIterations bounds every Laguerre call so the pipeline
// always terminates in predictable time (spec §5).
const maxLaguerreIterations = 20

const laguerreTolerance = 1.0e-16

// laguerreSeed is the fixed, deliberately non-real starting point for
// deflation. A real seed on a real-coefficient polynomial can stall on
// the real axis and miss complex conjugate pairs (spec §9).
func laguerreSeed[S constraints.Float]() cplx.C[S] {
	return cplx.New[S](-2, -2)
}

// Degree returns the index of the highest-order non-zero coefficient,
// or 0 if p is identically zero.
func Degree[S constraints.Float](p []cplx.C[S]) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].Zero() {
			return i
		}
	}
	return 0
}

// OffLow returns the index of the lowest-order non-zero coefficient,
// or 0 if p is identically zero.
func OffLow[S constraints.Float](p []cplx.C[S]) int {
	for i := 0; i < len(p); i++ {
		if !p[i].Zero() {
			return i
		}
	}
	return 0
}

// Laguerre performs at most 20 Laguerre iterations from seed z0 against
// the polynomial whose coefficients are p (index = power, p[len(p)-1]
// assumed non-zero). It returns the best z reached; a failure to
// converge within the iteration cap is not an error -- the caller's
// deflation loop still makes progress with an approximate root (spec
// §7).
func Laguerre[S constraints.Float](p []cplx.C[S], z0 cplx.C[S]) cplx.C[S] {
	n := len(p) - 1
	z := z0
	two := cplx.New[S](2, 0)
	nC := cplx.New[S](S(n), 0)
	nm1C := cplx.New[S](S(n-1), 0)
	for iter := 0; iter < maxLaguerreIterations; iter++ {
		var a, b, g cplx.C[S] // running (alpha, beta, gamma) = (p(z), p'(z), p''(z)/2)
		a = p[n]
		for j := n - 1; j >= 0; j-- {
			g = g.Mul(z).Add(b)
			b = b.Mul(z).Add(a)
			a = a.Mul(z).Add(p[j])
		}
		if a.Norm() <= S(laguerreTolerance) {
			return z
		}
		gBig := b.Neg().Div(a)    // G = -p'/p
		gBig2 := gBig.Mul(gBig)   // G^2
		h := gBig2.Sub(two.Mul(g).Div(a))       // H = G^2 - p''/p (g holds p''/2)
		d := nm1C.Mul(nC.Mul(h).Sub(gBig2)).Sqrt() // sqrt((n-1)(nH - G^2))

		cc1 := gBig.Add(d)
		cc2 := gBig.Sub(d)
		var denom cplx.C[S]
		if cc1.Norm() > cc2.Norm() {
			denom = cc1
		} else {
			denom = cc2
		}
		step := nC.Div(denom)
		z = z.Add(step)
	}
	return z
}

// DivLinearMut performs synthetic division of self (coefficients,
// index = power) by the monic linear factor (z + other), replacing
// self's coefficients with the quotient. rem is scratch space, at
// least len(self) long; its first slot receives the remainder (which
// should land near zero when other's negation is an actual root). It
// fails when other is zero or when self has degree 0.
func DivLinearMut[S constraints.Float](self []cplx.C[S], other cplx.C[S], rem []cplx.C[S]) error {
	if other.Zero() {
		return ferrors.New(ferrors.Polynomial, "divide by zero")
	}
	n := Degree(self)
	if n == 0 {
		return ferrors.New(ferrors.Polynomial, "divide by zero")
	}
	root := other.Neg() // divisor is (z - root) where root = -other
	// synthetic division: q[n-1] = c[n]; q[k-1] = c[k] + root*q[k] for k = n-1..1.
	// q is built in rem[1:n+1], leaving rem[0] free for the remainder.
	q := rem[1 : n+1]
	q[n-1] = self[n]
	for k := n - 1; k >= 1; k-- {
		q[k-1] = self[k].Add(root.Mul(q[k]))
	}
	r := self[0].Add(root.Mul(q[0]))
	copy(self[:n], q)
	self[n] = cplx.C[S]{}
	rem[0] = r
	return nil
}

// RootsWorkSize returns the public complex-workspace size for
// FindRootsMut on an input of length l: 6l+4, which is more than the
// 4l that FindRootsMut actually uses.
func RootsWorkSize(l int) int {
	return 6*l + 4
}

// FindRootsMut finds all roots of self (coefficients, index = power)
// by repeated Laguerre deflation from the highest degree down to 2,
// then closes the residual quadratic or linear equation analytically.
// On success self[0:k] holds the k roots found (k = Degree(self)) and
// the remainder of self is zeroed. work must be at least
// 4*len(self) long; RootsWorkSize(len(self)) is always enough.
func FindRootsMut[S constraints.Float](self []cplx.C[S], work []cplx.C[S]) error {
	hi := Degree(self)
	if hi < 1 {
		return ferrors.New(ferrors.Polynomial, "zero-degree polynomial: no roots to be found")
	}
	lo := OffLow(self)
	m := hi - lo

	zRoots, work := work[:2*len(self)], work[2*len(self):]
	idx := 0
	for i := 0; i < lo; i++ {
		zRoots[idx] = cplx.C[S]{}
		idx++
	}

	scratchLen := hi - lo + 1
	rem, work := work[:scratchLen], work[scratchLen:]
	coeffs := work[:scratchLen]
	copy(coeffs, self[lo:hi+1])

	for m > 2 {
		z := Laguerre(coeffs[:m+1], laguerreSeed[S]())
		zRoots[idx] = z
		idx++
		if err := DivLinearMut(coeffs[:m+1], z.Neg(), rem); err != nil {
			return ferrors.New(ferrors.Polynomial, "failed to find roots")
		}
		m--
	}

	if m == 2 {
		a2 := coeffs[2].Add(coeffs[2])
		four := cplx.New[S](4, 0)
		d := coeffs[1].Mul(coeffs[1]).Sub(four.Mul(coeffs[2]).Mul(coeffs[0])).Sqrt()
		x := coeffs[1].Neg()
		zRoots[idx] = x.Add(d).Div(a2)
		zRoots[idx+1] = x.Sub(d).Div(a2)
		idx += 2
	} else if m == 1 {
		zRoots[idx] = coeffs[0].Neg().Div(coeffs[1])
		idx++
	}

	copy(self[:idx], zRoots[:idx])
	for i := idx; i < len(self); i++ {
		self[i] = cplx.C[S]{}
	}
	return nil
}

// FindRoots is the convenience, allocating entry point: it materializes
// its own workspace, runs FindRootsMut on a copy of p, and returns the
// roots trimmed of the trailing zero padding. This is one of the
// permitted non-steady-state allocations named in spec §5.
func FindRoots[S constraints.Float](p []cplx.C[S]) ([]cplx.C[S], error) {
	self := make([]cplx.C[S], len(p))
	copy(self, p)
	rootCount := Degree(self) // self[0:rootCount] will hold the roots after FindRootsMut
	work := make([]cplx.C[S], RootsWorkSize(len(p)))
	if err := FindRootsMut(self, work); err != nil {
		return nil, err
	}
	return self[:rootCount], nil
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cplx is a minimal complex-number pair, generic over the
// real scalar precision. Go's builtin complex64/complex128 types are
// each hardwired to one precision, so a pipeline generic over S (per
// spec.md §6) needs its own (re, im) pair instead -- the same shape
// the original Rust source used (num_complex::Complex<T>).
package cplx

import (
	"github.com/emer/formants/internal/xmath"
	"golang.org/x/exp/constraints"
)

// C is a complex scalar (re, im) of precision S.
type C[S constraints.Float] struct {
	Re, Im S
}

// New returns the complex value re+im*i.
func New[S constraints.Float](re, im S) C[S] {
	return C[S]{Re: re, Im: im}
}

// FromReal lifts a real scalar into the complex plane.
func FromReal[S constraints.Float](re S) C[S] {
	return C[S]{Re: re}
}

// Zero reports whether c is exactly 0+0i.
func (c C[S]) Zero() bool {
	return c.Re == 0 && c.Im == 0
}

// Add returns c+o.
func (c C[S]) Add(o C[S]) C[S] {
	return C[S]{c.Re + o.Re, c.Im + o.Im}
}

// Sub returns c-o.
func (c C[S]) Sub(o C[S]) C[S] {
	return C[S]{c.Re - o.Re, c.Im - o.Im}
}

// Mul returns c*o.
func (c C[S]) Mul(o C[S]) C[S] {
	return C[S]{
		c.Re*o.Re - c.Im*o.Im,
		c.Re*o.Im + c.Im*o.Re,
	}
}

// MulReal returns c*s for a real scalar s.
func (c C[S]) MulReal(s S) C[S] {
	return C[S]{c.Re * s, c.Im * s}
}

// Div returns c/o.
func (c C[S]) Div(o C[S]) C[S] {
	d := o.Re*o.Re + o.Im*o.Im
	return C[S]{
		(c.Re*o.Re + c.Im*o.Im) / d,
		(c.Im*o.Re - c.Re*o.Im) / d,
	}
}

// Neg returns -c.
func (c C[S]) Neg() C[S] {
	return C[S]{-c.Re, -c.Im}
}

// Norm returns |c|.
func (c C[S]) Norm() S {
	return xmath.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Sqrt returns a square root of c (principal branch).
func (c C[S]) Sqrt() C[S] {
	if c.Zero() {
		return C[S]{}
	}
	r := c.Norm()
	// half-angle formulas avoid calling atan2+cos/sin for every root;
	// re = sqrt((r+Re)/2), im = sign(Im)*sqrt((r-Re)/2)
	re := xmath.Sqrt((r + c.Re) / 2)
	im := xmath.Sqrt((r - c.Re) / 2)
	if c.Im < 0 {
		im = -im
	}
	return C[S]{re, im}
}

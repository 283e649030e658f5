// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmath provides the handful of transcendental functions the
// formant pipeline needs, generic over the real scalar precision.
// The float32 arm is routed through math32 rather than round-tripping
// through float64, so single-precision callers keep single-precision
// rounding behavior.
package xmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Sqrt returns the square root of x at S's precision.
func Sqrt[S constraints.Float](x S) S {
	if v, ok := any(x).(float32); ok {
		return any(math32.Sqrt(v)).(S)
	}
	return S(math.Sqrt(float64(x)))
}

// Cos returns the cosine of x at S's precision.
func Cos[S constraints.Float](x S) S {
	if v, ok := any(x).(float32); ok {
		return any(math32.Cos(v)).(S)
	}
	return S(math.Cos(float64(x)))
}

// Atan2 returns atan2(y, x) at S's precision.
func Atan2[S constraints.Float](y, x S) S {
	if vy, ok := any(y).(float32); ok {
		vx := any(x).(float32)
		return any(math32.Atan2(vy, vx)).(S)
	}
	return S(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of x.
func Abs[S constraints.Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

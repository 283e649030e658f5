package cplx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_Arithmetic(t *testing.T) {
	a := New(3.0, 4.0)
	b := New(1.0, -2.0)

	assert.Equal(t, New(4.0, 2.0), a.Add(b))
	assert.Equal(t, New(2.0, 6.0), a.Sub(b))
	assert.Equal(t, New(11.0, -2.0), a.Mul(b))
	assert.Equal(t, New(-3.0, -4.0), a.Neg())
	assert.InDelta(t, 5.0, a.Norm(), 1e-12)
}

func Test_Div_RecoversMultiplicand(t *testing.T) {
	a := New(3.0, 4.0)
	b := New(1.0, -2.0)
	got := a.Mul(b).Div(b)
	assert.InDelta(t, a.Re, got.Re, 1e-9)
	assert.InDelta(t, a.Im, got.Im, 1e-9)
}

func Test_Zero(t *testing.T) {
	assert.True(t, C[float64]{}.Zero())
	assert.False(t, New(0.0, 1.0).Zero())
}

func Test_Sqrt_SquaresBack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		re := rapid.Float64Range(-1e6, 1e6).Draw(t, "re")
		im := rapid.Float64Range(-1e6, 1e6).Draw(t, "im")
		c := New(re, im)

		root := c.Sqrt()
		back := root.Mul(root)

		tol := 1e-6 * (1 + c.Norm())
		assert.InDelta(t, c.Re, back.Re, tol)
		assert.InDelta(t, c.Im, back.Im, tol)
	})
}

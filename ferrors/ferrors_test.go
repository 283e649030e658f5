package ferrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error_Message(t *testing.T) {
	e := New(Workspace, "too small")
	assert.Equal(t, "workspace: too small", e.Error())

	bare := New(Numeric, "")
	assert.Equal(t, "numeric", bare.Error())
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "workspace", Workspace.String())
	assert.Equal(t, "polynomial", Polynomial.String())
	assert.Equal(t, "numeric", Numeric.String())
}

func Test_Is_MatchesByKind(t *testing.T) {
	a := New(Polynomial, "first failure")
	b := New(Polynomial, "second failure")
	c := New(Numeric, "unrelated")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

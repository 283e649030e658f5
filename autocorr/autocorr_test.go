package autocorr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lags_ZeroLagIsMaximum(t *testing.T) {
	frame := []float64{0.1, 0.5, -0.3, 0.8, -0.6, 0.2, 0.4, -0.1}
	lags := Lags(frame, 4)
	assert.Len(t, lags, 5)
	for _, l := range lags[1:] {
		assert.LessOrEqual(t, l, lags[0]+1e-9)
	}
}

func Test_Lags_SilenceIsZero(t *testing.T) {
	frame := make([]float64, 16)
	lags := Lags(frame, 4)
	for _, l := range lags {
		assert.InDelta(t, 0.0, l, 1e-9)
	}
}

func Test_Lags_ReturnsRequestedCount(t *testing.T) {
	frame := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	lags := Lags(frame, 6)
	assert.Len(t, lags, 7)
}

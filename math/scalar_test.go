package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	assert.InDelta(t, 1.1920929e-07, Epsilon[float32](), 1e-12)
	assert.InDelta(t, 2.220446049250313e-16, Epsilon[float64](), 1e-25)
	assert.Equal(t, 0, Epsilon[int]())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(30, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 2.0, Lerp(2.0, 6.0, 0.0), 1e-12)
	assert.InDelta(t, 6.0, Lerp(2.0, 6.0, 1.0), 1e-12)
	assert.InDelta(t, 4.0, Lerp(2.0, 6.0, 0.5), 1e-12)
	// Unclamped: t outside [0, 1] extrapolates.
	assert.InDelta(t, 10.0, Lerp(2.0, 6.0, 2.0), 1e-12)
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180.0), 1e-12)
	assert.InDelta(t, 90.0, RadToDeg(Pi/2), 1e-12)
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockMeasuresElapsed(t *testing.T) {
	c := NewClock()
	assert.Equal(t, time.Duration(0), c.Elapsed())

	c.Start()
	time.Sleep(10 * time.Millisecond)
	c.Update()
	assert.GreaterOrEqual(t, c.Elapsed(), 10*time.Millisecond)

	c.Stop()
	elapsed := c.Elapsed()
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}

func TestClockStartResets(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	assert.Greater(t, c.Elapsed(), time.Duration(0))

	c.Start()
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTweenEndpoints(t *testing.T) {
	for _, e := range []ease.TweenFunc{nil, ease.Linear, ease.OutCubic, ease.InOutCubic} {
		tw := New(0, 1, time.Second, e)

		v, done := tw.At(0)
		assert.InDelta(t, 0, v, 1e-6)
		assert.False(t, done)

		v, _ = tw.At(-time.Second)
		assert.InDelta(t, 0, v, 1e-6)

		v, done = tw.At(999 * time.Millisecond)
		assert.Less(t, v, 1.0)
		assert.False(t, done)

		v, done = tw.At(time.Second)
		assert.InDelta(t, 1, v, 1e-6)
		assert.True(t, done)

		v, done = tw.At(5 * time.Second)
		assert.InDelta(t, 1, v, 1e-6)
		assert.True(t, done)
	}
}

func TestTweenLinearMidpoint(t *testing.T) {
	tw := New(10, 20, 200*time.Millisecond, nil)
	v, _ := tw.At(100 * time.Millisecond)
	assert.InDelta(t, 15, v, 1e-4)
	v, _ = tw.At(50 * time.Millisecond)
	assert.InDelta(t, 12.5, v, 1e-4)
}

// Queries are by elapsed time, so they may go backwards.
func TestTweenRandomAccess(t *testing.T) {
	tw := New(1, 0, time.Second, ease.Linear)
	late, _ := tw.At(750 * time.Millisecond)
	early, _ := tw.At(250 * time.Millisecond)
	assert.InDelta(t, 0.25, late, 1e-5)
	assert.InDelta(t, 0.75, early, 1e-5)
}

func TestTweenZeroDuration(t *testing.T) {
	v, done := New(3, 7, 0, nil).At(0)
	assert.InDelta(t, 7, v, 1e-6)
	assert.True(t, done)
}

func TestOutCubicFrontLoaded(t *testing.T) {
	tw := New(0, 1, time.Second, ease.OutCubic)
	half, _ := tw.At(500 * time.Millisecond)
	assert.InDelta(t, 0.875, half, 1e-5)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v, _ := tw.At(time.Duration(i) * 10 * time.Millisecond)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

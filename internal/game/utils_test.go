//go:build !headless

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/particle-background/internal/background"
	"github.com/iburimskiy/particle-background/internal/loop"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "00:59", formatDuration(59900*time.Millisecond))
	assert.Equal(t, "02:05", formatDuration(125*time.Second))
	assert.Equal(t, "75:00", formatDuration(75*time.Minute))
}

func TestOverlayText(t *testing.T) {
	st := background.Stats{
		Particles: 25,
		Accepted:  300,
		Skipped:   301,
		Links:     7,
		State:     loop.Running,
		Backing:   [2]int{2048, 1024},
		Display:   [2]float64{1024, 512},
		Scale:     2,
	}
	want := "FPS 59.9 | particles 25 | links 7\n" +
		"ticks 300 (skipped 301) | running\n" +
		"display 1024x512 | backing 2048x1024 @2.00x | up 01:01"
	assert.Equal(t, want, overlayText(st, 59.94, 61*time.Second))
}

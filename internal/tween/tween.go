// Package tween answers "what is the value after this much time" for a
// single animated property, on top of gween.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a value from a start to an end over a fixed duration.
// It is not safe for concurrent use.
type Tween struct {
	g *gween.Tween
}

// New builds a tween; a nil easing means ease.Linear.
func New(from, to float64, d time.Duration, easing ease.TweenFunc) *Tween {
	if easing == nil {
		easing = ease.Linear
	}
	return &Tween{g: gween.New(float32(from), float32(to), float32(d.Seconds()), easing)}
}

// At returns the value at elapsed since the start and whether the end has
// been reached. Elapsed outside [0, duration] clamps to the endpoints.
func (t *Tween) At(elapsed time.Duration) (float64, bool) {
	v, done := t.g.Set(float32(elapsed.Seconds()))
	return float64(v), done
}

package particle

import (
	"math"
	"time"
)

const (
	// MaxCount caps the field regardless of surface area.
	MaxCount = 25
	// AreaPerParticle is the surface area (in backing pixels) that earns one particle.
	AreaPerParticle = 20000

	speedRange   = 0.3
	minSize      = 0.5
	sizeRange    = 1.5
	minOpacity   = 0.1
	opacityRange = 0.3

	// LinkDistance is the exclusive upper bound on the distance of linked pairs.
	LinkDistance = 80.0
	// LinkMaxAlpha is the stroke alpha of a pair at distance zero.
	LinkMaxAlpha = 0.05
	// LinkWidth is the stroke width of connection lines.
	LinkWidth = 0.3

	linkPeriodMs = 100
	linkWindowMs = 50
)

// Particle is one dot of the field. Velocity, size and opacity are fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	// Opacity is generated but not consumed by drawing; fills use a shared alpha.
	Opacity float64
}

// Source is the uniform [0,1) generator particles are drawn from.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Count returns how many particles a surface of w×h gets.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := int(math.Floor(w * h / AreaPerParticle))
	if n > MaxCount {
		n = MaxCount
	}
	return n
}

func spawn(w, h float64, rng Source) Particle {
	return Particle{
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		VX:      (rng.Float64() - 0.5) * speedRange,
		VY:      (rng.Float64() - 0.5) * speedRange,
		Size:    rng.Float64()*sizeRange + minSize,
		Opacity: rng.Float64()*opacityRange + minOpacity,
	}
}

// move advances p by its velocity and wraps it once per axis.
func (p *Particle) move(w, h float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = w
	}
	if p.X > w {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = h
	}
	if p.Y > h {
		p.Y = 0
	}
}

// LinkAlpha returns the stroke alpha for two particles d apart, and false
// when they are too far apart to be linked.
func LinkAlpha(d float64) (float64, bool) {
	if d < 0 || d >= LinkDistance {
		return 0, false
	}
	return LinkMaxAlpha * (1 - d/LinkDistance), true
}

// LinksAdmitted reports whether the frame at now draws connection lines.
// Roughly every other frame at 30 FPS qualifies.
func LinksAdmitted(now time.Duration) bool {
	ms := float64(now) / float64(time.Millisecond)
	return math.Mod(ms, linkPeriodMs) < linkWindowMs
}

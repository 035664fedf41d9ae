package particle

import "math"

// Field is the fixed population of particles owned by one mounted background.
// It is not safe for concurrent use; the render loop is its only writer.
type Field struct {
	particles []Particle
}

// NewField creates Count(w, h) particles spread uniformly over [0,w)×[0,h).
func NewField(w, h float64, rng Source) *Field {
	n := Count(w, h)
	f := &Field{particles: make([]Particle, 0, n)}
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, spawn(w, h, rng))
	}
	return f
}

// FromParticles builds a field around an existing population.
func FromParticles(ps []Particle) *Field {
	return &Field{particles: append([]Particle(nil), ps...)}
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particle states.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Advance moves every particle one tick within a w×h extent.
func (f *Field) Advance(w, h float64) {
	for i := range f.particles {
		f.particles[i].move(w, h)
	}
}

// Each calls fn for every particle in creation order.
func (f *Field) Each(fn func(p Particle)) {
	for _, p := range f.particles {
		fn(p)
	}
}

// Links calls fn once for every unordered pair closer than LinkDistance,
// passing the stroke alpha for that pair.
func (f *Field) Links(fn func(a, b Particle, alpha float64)) {
	ps := f.particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			if alpha, ok := LinkAlpha(math.Sqrt(dx*dx + dy*dy)); ok {
				fn(ps[i], ps[j], alpha)
			}
		}
	}
}

package particle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq replays fixed values, cycling when exhausted.
type seq struct {
	vals []float64
	i    int
}

func (s *seq) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"500x400", 500, 400, 10},
		{"capped", 2000, 2000, MaxCount},
		{"tiny", 100, 100, 0},
		{"just under one", 199, 100, 0},
		{"exactly one", 200, 100, 1},
		{"zero width", 0, 400, 0},
		{"negative", -500, 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.w, tt.h))
		})
	}
}

func TestNewFieldBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		f := NewField(1280, 720, rng)
		require.Equal(t, 25, f.Len())
		for _, p := range f.Particles() {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, 1280.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, 720.0)
			assert.GreaterOrEqual(t, p.Size, 0.5)
			assert.Less(t, p.Size, 2.0)
			assert.GreaterOrEqual(t, p.VX, -0.15)
			assert.Less(t, p.VX, 0.15)
			assert.GreaterOrEqual(t, p.VY, -0.15)
			assert.Less(t, p.VY, 0.15)
			assert.GreaterOrEqual(t, p.Opacity, 0.1)
			assert.Less(t, p.Opacity, 0.4)
		}
	}
}

func TestNewFieldExactCount(t *testing.T) {
	f := NewField(500, 400, rand.New(rand.NewSource(1)))
	assert.Equal(t, 10, f.Len())
}

func TestSpawnMapping(t *testing.T) {
	f := NewField(500, 400, &seq{vals: []float64{0.5, 0.25, 0, 1 - 1e-12, 0, 0}})
	p := f.Particles()[0]
	assert.InDelta(t, 250, p.X, 1e-9)
	assert.InDelta(t, 100, p.Y, 1e-9)
	assert.InDelta(t, -0.15, p.VX, 1e-9)
	assert.InDelta(t, 0.15, p.VY, 1e-9)
	assert.InDelta(t, 0.5, p.Size, 1e-9)
	assert.InDelta(t, 0.1, p.Opacity, 1e-9)
}

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		name         string
		in           Particle
		wantX, wantY float64
	}{
		{"left edge", Particle{X: 0.09, Y: 10, VX: -0.1}, 500, 10},
		{"right edge", Particle{X: 499.91, Y: 10, VX: 0.1}, 0, 10},
		{"top edge", Particle{X: 10, Y: 0.05, VY: -0.06}, 10, 400},
		{"bottom edge", Particle{X: 10, Y: 399.99, VY: 0.02}, 10, 0},
		{"on extent stays", Particle{X: 500, Y: 400}, 500, 400},
		{"interior", Particle{X: 10, Y: 20, VX: 0.1, VY: -0.1}, 10.1, 19.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromParticles([]Particle{tt.in})
			f.Advance(500, 400)
			got := f.Particles()[0]
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Y, 1e-9)
		})
	}
}

func TestAdvanceWrapsOncePerAxis(t *testing.T) {
	f := FromParticles([]Particle{{X: 10, Y: 10, VX: -700}})
	f.Advance(500, 400)
	// -690 < 0 snaps to 500; no second pass even though it was far past the edge.
	assert.Equal(t, 500.0, f.Particles()[0].X)
}

func TestAdvanceKeepsVelocity(t *testing.T) {
	in := Particle{X: 1, Y: 1, VX: 0.12, VY: -0.03, Size: 1.2, Opacity: 0.3}
	f := FromParticles([]Particle{in})
	for i := 0; i < 100; i++ {
		f.Advance(50, 50)
	}
	got := f.Particles()[0]
	assert.Equal(t, in.VX, got.VX)
	assert.Equal(t, in.VY, got.VY)
	assert.Equal(t, in.Size, got.Size)
	assert.Equal(t, in.Opacity, got.Opacity)
}

func TestLinkAlpha(t *testing.T) {
	a, ok := LinkAlpha(0)
	require.True(t, ok)
	assert.InDelta(t, 0.05, a, 1e-12)

	_, ok = LinkAlpha(80)
	assert.False(t, ok, "distance 80 is excluded")

	a, ok = LinkAlpha(79.999)
	require.True(t, ok)
	assert.InDelta(t, 0.05*(1-79.999/80), a, 1e-15)
	assert.Greater(t, a, 0.0)

	a, ok = LinkAlpha(40)
	require.True(t, ok)
	assert.InDelta(t, 0.025, a, 1e-12)
}

func TestLinks(t *testing.T) {
	f := FromParticles([]Particle{
		{X: 0, Y: 0},
		{X: 80, Y: 0},     // exactly 80 from the first
		{X: 0, Y: 79.999}, // just inside
		{X: 400, Y: 400},  // far from everything
	})
	type pair struct{ a, b Particle }
	var got []pair
	var alphas []float64
	f.Links(func(a, b Particle, alpha float64) {
		got = append(got, pair{a, b})
		alphas = append(alphas, alpha)
	})
	// (0,0)-(0,79.999) and (80,0)-(0,79.999) at ~113 are out; only one pair links.
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].a.Y)
	assert.Equal(t, 79.999, got[0].b.Y)
	assert.InDelta(t, 0.05*(1-79.999/80), alphas[0], 1e-12)
}

func TestLinksVisitsEachPairOnce(t *testing.T) {
	ps := make([]Particle, 25)
	f := FromParticles(ps) // all coincident
	n := 0
	f.Links(func(_, _ Particle, _ float64) { n++ })
	assert.Equal(t, 25*24/2, n)
}

func TestLinksAdmitted(t *testing.T) {
	assert.True(t, LinksAdmitted(40*time.Millisecond))
	assert.False(t, LinksAdmitted(60*time.Millisecond))
	assert.True(t, LinksAdmitted(1049*time.Millisecond))
	assert.False(t, LinksAdmitted(1050*time.Millisecond))
	assert.True(t, LinksAdmitted(149900*time.Microsecond))
}

func TestParticlesIsCopy(t *testing.T) {
	f := FromParticles([]Particle{{X: 1}})
	ps := f.Particles()
	ps[0].X = 99
	assert.Equal(t, 1.0, f.Particles()[0].X)
}

// Package background composes the particle field, its drawable surface and
// the render loop into one mountable component.
package background

import (
	"image/color"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/particle-background/internal/log"
	"github.com/iburimskiy/particle-background/internal/loop"
	"github.com/iburimskiy/particle-background/internal/particle"
	"github.com/iburimskiy/particle-background/internal/surface"
	"github.com/iburimskiy/particle-background/internal/tween"
)

// FadeInDuration is how long the layer takes to become fully opaque after mounting.
const FadeInDuration = time.Second

var (
	// FillColor is shared by every particle.
	FillColor = color.NRGBA{R: 147, G: 51, B: 234, A: 77}

	linkRGB = color.NRGBA64{R: 147 * 0x101, G: 51 * 0x101, B: 234 * 0x101}
)

// LinkColor returns the connection stroke color at the given alpha.
// Sixteen bits of alpha keep the faint end of the ramp distinguishable.
func LinkColor(alpha float64) color.NRGBA64 {
	c := linkRGB
	c.A = uint16(clamp01(alpha)*0xffff + 0.5)
	return c
}

// Stats is a snapshot of the component for overlays and logs.
type Stats struct {
	Particles int
	Accepted  uint64
	Skipped   uint64
	Links     int // connections drawn by the latest accepted tick
	State     loop.State
	Backing   [2]int
	Display   [2]float64
	Scale     float64
}

// Background exclusively owns its surface and particles from Mount to Destroy.
type Background struct {
	surface *surface.Surface
	driver  *loop.Driver
	field   *particle.Field
	rng     particle.Source
	log     *log.Logger

	fade      *tween.Tween
	mountedAt time.Duration
	mounted   bool
	links     int
}

func New(alloc surface.Allocator, sched loop.Scheduler, rng particle.Source, logger *log.Logger) *Background {
	b := &Background{
		surface: surface.New(alloc),
		rng:     rng,
		log:     logger,
		fade:    tween.New(0, 1, FadeInDuration, ease.OutCubic),
	}
	b.driver = loop.NewDriver(sched, b.step, b.surface.Ready)
	return b
}

// Mount sizes the surface, populates the field over the backing extent and
// starts the render loop. Mounting twice does nothing.
func (b *Background) Mount(vp surface.Viewport, now time.Duration) {
	if b.mounted {
		return
	}
	b.mounted = true
	b.mountedAt = now

	b.surface.Resize(vp)
	w, h := b.surface.BackingSize()
	b.field = particle.NewField(float64(w), float64(h), b.rng)
	b.driver.Start()

	b.log.Infof("background mounted: viewport=%.0fx%.0f scale=%.2f backing=%dx%d particles=%d",
		vp.Width, vp.Height, vp.Scale, w, h, b.field.Len())
}

// Resize follows a viewport change. Particles keep their positions.
func (b *Background) Resize(vp surface.Viewport) {
	if !b.mounted {
		return
	}
	b.surface.Resize(vp)
	w, h := b.surface.BackingSize()
	b.log.Debugf("background resized: viewport=%.0fx%.0f scale=%.2f backing=%dx%d",
		vp.Width, vp.Height, vp.Scale, w, h)
}

// Destroy stops the loop and releases the surface and particles.
func (b *Background) Destroy() {
	if !b.mounted {
		return
	}
	b.driver.Stop()
	b.surface.Dispose()
	b.field = nil
	b.mounted = false
	b.log.Infof("background destroyed after %d frames (%d skipped)", b.driver.Accepted(), b.driver.Skipped())
}

// Opacity is the fade-in opacity of the layer at now.
func (b *Background) Opacity(now time.Duration) float64 {
	if !b.mounted {
		return 0
	}
	v, _ := b.fade.At(now - b.mountedAt)
	return v
}

// Present hands the current frame to c at the fade-in opacity.
func (b *Background) Present(c surface.Compositor, now time.Duration) {
	if !b.mounted {
		return
	}
	b.surface.Composite(c, b.Opacity(now))
}

func (b *Background) Stats() Stats {
	st := Stats{
		Accepted: b.driver.Accepted(),
		Skipped:  b.driver.Skipped(),
		Links:    b.links,
		State:    b.driver.State(),
		Scale:    b.surface.Scale(),
	}
	if b.field != nil {
		st.Particles = b.field.Len()
	}
	st.Backing[0], st.Backing[1] = b.surface.BackingSize()
	st.Display[0], st.Display[1] = b.surface.DisplaySize()
	return st
}

func (b *Background) step(now time.Duration) {
	if b.field == nil {
		return
	}
	w, h := b.surface.BackingSize()
	b.field.Advance(float64(w), float64(h))
	b.paint(now)
}

func (b *Background) paint(now time.Duration) {
	s := b.surface
	s.Clear()
	b.field.Each(func(p particle.Particle) {
		s.FillCircle(p.X, p.Y, p.Size, FillColor)
	})

	b.links = 0
	if !particle.LinksAdmitted(now) {
		return
	}
	b.field.Links(func(p, q particle.Particle, alpha float64) {
		s.StrokeLine(p.X, p.Y, q.X, q.Y, particle.LinkWidth, LinkColor(alpha))
		b.links++
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

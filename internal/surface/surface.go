// Package surface owns the raster target particles are drawn onto and maps
// logical drawing coordinates to the device pixels of its backing store.
package surface

import (
	"image/color"
	"math"
)

// Viewport describes the host element: its displayed size in logical units
// and the device pixel density.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// Painter draws in the coordinate space of its receiver.
type Painter interface {
	Clear()
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Backing is a raster store addressed in device pixels.
type Backing interface {
	Painter
	Dispose()
}

// Allocator creates a cleared backing store of the given device size.
type Allocator func(width, height int) Backing

// Compositor receives the finished backing store when the host composes a frame.
type Compositor interface {
	Composite(b Backing, alpha float64)
}

// Surface is a scaled drawable. All Painter calls take logical coordinates.
// The zero value is unusable; use New.
type Surface struct {
	alloc   Allocator
	backing Backing

	displayW, displayH float64
	backW, backH       int
	scale              float64
}

func New(alloc Allocator) *Surface {
	return &Surface{alloc: alloc, scale: 1}
}

// Resize reallocates the backing store for vp. Reallocation clears the pixels.
// A viewport with no area means the host is absent and nothing changes.
func (s *Surface) Resize(vp Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 || s.alloc == nil {
		return
	}
	scale := vp.Scale
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	bw := int(vp.Width * scale)
	bh := int(vp.Height * scale)
	if bw <= 0 || bh <= 0 {
		return
	}

	if s.backing != nil {
		s.backing.Dispose()
	}
	s.backing = s.alloc(bw, bh)
	s.backW, s.backH = bw, bh
	s.displayW, s.displayH = vp.Width, vp.Height
	s.scale = scale
}

// Ready reports whether a backing store is attached.
func (s *Surface) Ready() bool { return s.backing != nil }

// BackingSize is the device resolution of the backing store.
func (s *Surface) BackingSize() (int, int) { return s.backW, s.backH }

// DisplaySize is the unscaled size the surface is shown at.
func (s *Surface) DisplaySize() (float64, float64) { return s.displayW, s.displayH }

// Scale is the uniform transform applied to every drawing call.
func (s *Surface) Scale() float64 { return s.scale }

func (s *Surface) Clear() {
	if s.backing == nil {
		return
	}
	s.backing.Clear()
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.backing == nil {
		return
	}
	k := s.scale
	s.backing.FillCircle(cx*k, cy*k, r*k, clr)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.backing == nil {
		return
	}
	k := s.scale
	s.backing.StrokeLine(x0*k, y0*k, x1*k, y1*k, width*k, clr)
}

// Composite hands the backing store to c at the given opacity.
func (s *Surface) Composite(c Compositor, alpha float64) {
	if s.backing == nil || c == nil {
		return
	}
	c.Composite(s.backing, alpha)
}

// Dispose releases the backing store. The surface can be resized again afterwards.
func (s *Surface) Dispose() {
	if s.backing == nil {
		return
	}
	s.backing.Dispose()
	s.backing = nil
	s.backW, s.backH = 0, 0
}

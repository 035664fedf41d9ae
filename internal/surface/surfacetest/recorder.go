// Package surfacetest provides a recording backing store for tests.
package surfacetest

import (
	"image/color"
	"sync"

	"github.com/iburimskiy/particle-background/internal/surface"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// Op is one recorded drawing call, in device pixels.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	R      float64 // radius for circles, stroke width for lines
	Color  color.Color
}

// Recorder records every call made against it.
type Recorder struct {
	Width, Height int
	Disposed      bool

	mu  sync.Mutex
	ops []Op
}

func (r *Recorder) Clear() { r.add(Op{Kind: OpClear}) }

func (r *Recorder) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.add(Op{Kind: OpCircle, X0: cx, Y0: cy, R: rad, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.add(Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, R: width, Color: clr})
}

func (r *Recorder) Dispose() {
	r.mu.Lock()
	r.Disposed = true
	r.mu.Unlock()
}

func (r *Recorder) add(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Allocator hands out Recorders and remembers each one.
type Allocator struct {
	Allocated []*Recorder
}

func (a *Allocator) Alloc(w, h int) surface.Backing {
	r := &Recorder{Width: w, Height: h}
	a.Allocated = append(a.Allocated, r)
	return r
}

// Last returns the most recently allocated recorder, or nil.
func (a *Allocator) Last() *Recorder {
	if len(a.Allocated) == 0 {
		return nil
	}
	return a.Allocated[len(a.Allocated)-1]
}

// Compositor remembers the last composite call.
type Compositor struct {
	Backing surface.Backing
	Alpha   float64
	Calls   int
}

func (c *Compositor) Composite(b surface.Backing, alpha float64) {
	c.Backing = b
	c.Alpha = alpha
	c.Calls++
}

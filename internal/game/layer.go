package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-background/internal/surface"
)

// layer is an offscreen ebiten image the background draws into. It keeps its
// pixels between accepted ticks, like a canvas does.
type layer struct {
	img *ebiten.Image
}

func newLayer(w, h int) surface.Backing {
	return &layer{img: ebiten.NewImage(w, h)}
}

func (l *layer) Clear() { l.img.Clear() }

func (l *layer) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(l.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (l *layer) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(l.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (l *layer) Dispose() { l.img.Deallocate() }

// screenCompositor draws a finished layer over the frame being built.
type screenCompositor struct {
	dst       *ebiten.Image
	presented *layer
}

func (c *screenCompositor) Composite(b surface.Backing, alpha float64) {
	l, ok := b.(*layer)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha))
	c.dst.DrawImage(l.img, op)
	c.presented = l
}

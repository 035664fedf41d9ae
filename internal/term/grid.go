package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/surface"
)

// Line alpha is tiny on a canvas; on a terminal it is stretched so the
// strongest connection renders at full intensity.
const lineGain = 20.0

const (
	weightNone = iota
	weightLine
	weightDot
)

type cell struct {
	glyph     rune
	r, g, b   uint8
	intensity float64
	weight    int
}

// grid is a terminal backing store. Device coordinates are logical pixels;
// each cell covers config.CellWidth × config.CellHeight of them.
type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(w, h int) surface.Backing {
	cols := w / config.CellWidth
	rows := h / config.CellHeight
	return &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

func (g *grid) at(x, y float64) *cell {
	col := int(math.Floor(x / config.CellWidth))
	row := int(math.Floor(y / config.CellHeight))
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

func (g *grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{}
	}
}

func (g *grid) FillCircle(cx, cy, r float64, clr color.Color) {
	c := g.at(cx, cy)
	if c == nil {
		return
	}
	glyph := '·'
	switch {
	case r >= 1.5:
		glyph = '●'
	case r >= 1:
		glyph = '•'
	}
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	*c = cell{glyph: glyph, r: n.R, g: n.G, b: n.B, intensity: 1, weight: weightDot}
}

func (g *grid) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	intensity := math.Min(1, float64(n.A)/255*lineGain)
	if intensity <= 0 {
		return
	}
	glyph := lineGlyph(x1-x0, y1-y0)

	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx)/config.CellWidth, math.Abs(dy)/config.CellHeight)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := g.at(x0+dx*t, y0+dy*t)
		if c == nil || c.weight > weightLine || (c.weight == weightLine && c.intensity >= intensity) {
			continue
		}
		*c = cell{glyph: glyph, r: n.R, g: n.G, b: n.B, intensity: intensity, weight: weightLine}
	}
}

// lineGlyph picks a stroke character for a segment, accounting for cells
// being twice as tall as they are wide.
func lineGlyph(dx, dy float64) rune {
	a := math.Atan2(dy/2, dx) * 180 / math.Pi
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return '-'
	case a < 67.5:
		return '\\'
	case a < 112.5:
		return '|'
	default:
		return '/'
	}
}

func (g *grid) Dispose() {
	g.cells = nil
	g.cols, g.rows = 0, 0
}

// blit writes every cell to screen, scaling brightness by alpha.
func (g *grid) blit(screen tcell.Screen, alpha float64) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.weight == weightNone {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			k := c.intensity * alpha
			fg := tcell.NewRGBColor(int32(float64(c.r)*k), int32(float64(c.g)*k), int32(float64(c.b)*k))
			screen.SetContent(col, row, c.glyph, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
}

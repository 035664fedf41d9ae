package game

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-background/internal/background"
	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/log"
	"github.com/iburimskiy/particle-background/internal/loop"
	"github.com/iburimskiy/particle-background/internal/particle"
	"github.com/iburimskiy/particle-background/internal/snapshot"
	"github.com/iburimskiy/particle-background/internal/surface"
)

var pageColor = color.RGBA{R: 10, G: 10, B: 18, A: 255}

var errNoFrame = errors.New("no frame rendered yet")

// Game hosts the particle background in an ebiten window. Draw is the
// display refresh callback; Layout reports viewport changes.
type Game struct {
	opts  config.Options
	log   *log.Logger
	bg    *background.Background
	queue *loop.Queue
	start time.Time

	// viewport is the latest size reported by Layout; applied is the one the
	// background was last sized to.
	viewport surface.Viewport
	applied  surface.Viewport

	visible *layer
	lastErr error
}

func New(opts config.Options, logger *log.Logger, rng particle.Source) *Game {
	q := loop.NewQueue()
	return &Game{
		opts:  opts,
		log:   logger,
		queue: q,
		bg:    background.New(newLayer, q, rng, logger),
		start: time.Now(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts config.Options, logger *log.Logger, rng particle.Source) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetVsyncEnabled(true)

	g := New(opts, logger, rng)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) elapsed() time.Duration { return time.Since(g.start) }

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.teardown()
		return ebiten.Termination
	}

	if g.viewport != g.applied && g.viewport.Width > 0 && g.viewport.Height > 0 {
		if g.applied == (surface.Viewport{}) {
			g.bg.Mount(g.viewport, g.elapsed())
		} else {
			g.bg.Resize(g.viewport)
		}
		g.applied = g.viewport
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.teardown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.log.Errorf("snapshot: %v", err)
			g.lastErr = err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.elapsed()
	g.queue.Flush(now)

	screen.Fill(pageColor)
	comp := &screenCompositor{dst: screen}
	g.bg.Present(comp, now)
	g.visible = comp.presented

	if g.opts.Debug {
		text := overlayText(g.bg.Stats(), ebiten.ActualFPS(), now)
		ebitenutil.DebugPrintAt(screen, text, 12, 12)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, screen.Bounds().Dy()-24)
	}
}

// Layout renders at device resolution so particles stay crisp on dense displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	g.viewport = surface.Viewport{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
		Scale:  scale,
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

func (g *Game) teardown() {
	g.bg.Destroy()
	g.visible = nil
}

func (g *Game) saveSnapshot() error {
	if g.visible == nil {
		return errNoFrame
	}
	name, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(config.SnapshotFilename),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			g.log.Warnf("snapshot cancelled")
			return nil
		}
		return err
	}
	path := snapshot.WithExt(name)
	if err := snapshot.Save(path, g.visible.img); err != nil {
		return err
	}
	g.log.Infof("snapshot saved to %s", path)
	g.lastErr = nil
	return nil
}

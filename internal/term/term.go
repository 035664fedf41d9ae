// Package term hosts the particle background in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-background/internal/background"
	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/log"
	"github.com/iburimskiy/particle-background/internal/loop"
	"github.com/iburimskiy/particle-background/internal/particle"
	"github.com/iburimskiy/particle-background/internal/surface"
)

// Runner owns the screen loop. The ticker plays the display refresh.
type Runner struct {
	screen tcell.Screen
	log    *log.Logger
	bg     *background.Background
	queue  *loop.Queue
	start  time.Time
}

func New(screen tcell.Screen, logger *log.Logger, rng particle.Source) *Runner {
	q := loop.NewQueue()
	return &Runner{
		screen: screen,
		log:    logger,
		queue:  q,
		bg:     background.New(newGrid, q, rng, logger),
		start:  time.Now(),
	}
}

// Run initializes the terminal and blocks until the user quits or ctx ends.
func Run(ctx context.Context, logger *log.Logger, rng particle.Source) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return New(screen, logger, rng).Loop(ctx)
}

// Loop mounts the background and processes events and refreshes.
func (r *Runner) Loop(ctx context.Context) error {
	ticker := time.NewTicker(config.TerminalRefreshMs * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r.bg.Mount(r.viewport(), r.elapsed())
	defer r.bg.Destroy()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !r.handle(ev) {
				return nil
			}
		case <-ticker.C:
			r.refresh(r.elapsed())
		}
	}
}

func (r *Runner) elapsed() time.Duration { return time.Since(r.start) }

func (r *Runner) viewport() surface.Viewport {
	cols, rows := r.screen.Size()
	return surface.Viewport{
		Width:  float64(cols * config.CellWidth),
		Height: float64(rows * config.CellHeight),
		Scale:  1,
	}
}

// handle returns false when the user asked to quit.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		r.bg.Resize(r.viewport())
		r.screen.Sync()
	}
	return true
}

func (r *Runner) refresh(now time.Duration) {
	r.queue.Flush(now)
	r.bg.Present(r, now)
	r.screen.Show()
}

// Composite implements surface.Compositor for grid backings.
func (r *Runner) Composite(b surface.Backing, alpha float64) {
	if g, ok := b.(*grid); ok {
		g.blit(r.screen, alpha)
	}
}

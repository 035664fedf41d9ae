package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iburimskiy/particle-background/internal/log"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Particle Background"

	// Ebiten ticks per second for input handling; drawing follows the display.
	DefaultTPS = 60

	// Terminal refresh period standing in for the display refresh.
	TerminalRefreshMs = 16
	// Logical size of one terminal cell.
	CellWidth  = 8
	CellHeight = 16

	SnapshotFilename = "particles.png"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

var ErrInvalidOption = errors.New("invalid option")

// Options are the command-line settings of the binary.
type Options struct {
	Backend  string
	Width    int
	Height   int
	Title    string
	TPS      int
	Seed     int64 // 0 picks a time-based seed
	Debug    bool
	LogLevel log.Level
	LogFile  string
}

func Default() Options {
	return Options{
		Backend:  BackendWindow,
		Width:    WindowWidth,
		Height:   WindowHeight,
		Title:    WindowTitle,
		TPS:      DefaultTPS,
		LogLevel: log.LevelInfo,
	}
}

// Parse reads options from args (without the program name). Usage and flag
// errors are written to errOut.
func Parse(args []string, errOut io.Writer) (Options, error) {
	opts := Default()
	fs := flag.NewFlagSet("particle-background", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var level string
	fs.StringVar(&opts.Backend, "backend", opts.Backend, "renderer: window or terminal")
	fs.IntVar(&opts.Width, "width", opts.Width, "window width in logical pixels")
	fs.IntVar(&opts.Height, "height", opts.Height, "window height in logical pixels")
	fs.StringVar(&opts.Title, "title", opts.Title, "window title")
	fs.IntVar(&opts.TPS, "tps", opts.TPS, "input ticks per second (window backend)")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed for particle placement, 0 for time based")
	fs.BoolVar(&opts.Debug, "debug", false, "show frame statistics overlay")
	fs.StringVar(&level, "log-level", opts.LogLevel.String(), "debug, info, error or none")
	fs.StringVar(&opts.LogFile, "log-file", "", "write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, fs.Arg(0))
	}

	lvl, ok := log.LevelFromString(level)
	if !ok {
		return Options{}, fmt.Errorf("%w: log level %q", ErrInvalidOption, level)
	}
	opts.LogLevel = lvl
	opts.Backend = strings.ToLower(opts.Backend)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	switch o.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalidOption, o.Backend)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidOption, o.Width, o.Height)
	}
	if o.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidOption, o.TPS)
	}
	return nil
}

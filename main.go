package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/game"
	"github.com/iburimskiy/particle-background/internal/log"
	"github.com/iburimskiy/particle-background/internal/term"
)

func main() {
	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := openLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("seed %d, backend %s", seed, opts.Backend)
	rng := rand.New(rand.NewSource(seed))

	switch opts.Backend {
	case config.BackendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = term.Run(ctx, logger, rng)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = game.Run(opts, logger, rng)
		if err != nil {
			_ = zenity.Error(err.Error(), zenity.Title(opts.Title), zenity.ErrorIcon)
		}
	}
	if err != nil {
		logger.Errorf("%v", err)
		closeLog()
		os.Exit(1)
	}
}

// openLogger writes to -log-file when given. The terminal backend owns the
// screen, so without a file it only logs errors after the screen is released.
func openLogger(opts config.Options) (*log.Logger, func(), error) {
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, opts.LogLevel), func() { _ = f.Close() }, nil
	}

	var out io.Writer = os.Stderr
	level := opts.LogLevel
	if opts.Backend == config.BackendTerminal && level < log.LevelError {
		level = log.LevelError
	}
	return log.New(out, level), func() {}, nil
}

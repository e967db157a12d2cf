// Package dxalog wires the pipeline's diagnostic output through a single
// zerolog.Logger so every stage logs the same structured shape (stage name,
// frame number, elapsed) instead of ad-hoc fmt.Printf calls.
//
// The core never decides where logs go; callers inject a logger (or accept
// the package default, which writes to os.Stderr) so the orchestrator owns
// output routing, not this package.
package dxalog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	current = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
)

// Set replaces the package-wide logger. Safe to call concurrently with Get.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// SetOutput redirects the default console logger to w, preserving the
// console formatting; useful for tests that want to assert on log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	current = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Get returns the current package-wide logger.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Stage returns a child logger tagged with the given pipeline stage name
// (one of "cell", "structure", "cluster", "mesh", "burgers", "post", "dxa"),
// so every line it emits can be filtered per component A-G of the design.
func Stage(name string) zerolog.Logger {
	return Get().With().Str("stage", name).Logger()
}

// Frame returns a child logger additionally tagged with the frame's
// timestep, for multi-frame runs where log lines must disambiguate frames
// processed concurrently (see Design §5, progress callback per frame).
func Frame(name string, timestep int) zerolog.Logger {
	return Get().With().Str("stage", name).Int("timestep", timestep).Logger()
}

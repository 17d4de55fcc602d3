// Package timeouts provides centralized timeout values for I/O against the
// member data source.
//
// The dataset is read once at startup, so only a few operations ever block:
//   - Ping: health checks against the backing database
//   - Load: connecting to the data source and reading the full dataset
//   - Shutdown: closing database clients and pools
//
// Values start at their defaults and may be overridden once at startup with
// Configure.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing     = 2 * time.Second
	DefaultLoad     = 30 * time.Second
	DefaultShutdown = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping     = DefaultPing
	load     = DefaultLoad
	shutdown = DefaultShutdown
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Load returns the timeout for connecting to and reading the data source.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Shutdown returns the timeout for releasing database resources.
func Shutdown() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return shutdown
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping     time.Duration
	Load     time.Duration
	Shutdown time.Duration
}

// Configure sets custom timeout values. Zero or negative values keep the
// current value.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Shutdown > 0 {
		shutdown = cfg.Shutdown
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	load = DefaultLoad
	shutdown = DefaultShutdown
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Load: load, Shutdown: shutdown}
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the deadline was exceeded.
//
//	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "load members")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}

package sync

import (
	"time"

	"calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
	"calendar-mirror/pkg/log"
)

// Config tunes the reconciliation engine.
type Config struct {
	// Workers bounds how many calendars reconcile concurrently.
	Workers int
	// MaxAttempts bounds retries of a calendar's remote listing step.
	MaxAttempts int
	// RetryBaseDelay is the first backoff delay; it doubles per attempt.
	RetryBaseDelay time.Duration
	// IncrementalLookback/IncrementalHorizon bound the incremental window
	// around now. Full runs ignore both and fetch everything.
	IncrementalLookback time.Duration
	IncrementalHorizon  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = 2 * time.Second
	}
	if c.IncrementalLookback <= 0 {
		c.IncrementalLookback = 24 * time.Hour
	}
	if c.IncrementalHorizon <= 0 {
		c.IncrementalHorizon = 90 * 24 * time.Hour
	}
	return c
}

// Engine orchestrates reconciliation runs across all sync-enabled calendars.
type Engine struct {
	remote remote.Client
	repo   repository.Repository
	cfg    Config
	l      log.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(rc remote.Client, repo repository.Repository, cfg Config, l log.Logger) *Engine {
	return &Engine{
		remote: rc,
		repo:   repo,
		cfg:    cfg.withDefaults(),
		l:      l,
	}
}

package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"calendar-mirror/internal/sync"
	"calendar-mirror/pkg/log"
)

// Config carries the cron specs for the two run kinds.
type Config struct {
	IncrementalSpec string
	FullSpec        string
}

// Scheduler triggers reconciliation runs on cron schedules. Ticks that
// would overlap a run still in flight are skipped, not queued.
type Scheduler struct {
	engine  *sync.Engine
	cron    *cron.Cron
	cfg     Config
	l       log.Logger
	running chan struct{}
}

// New creates a scheduler. Start must be called to arm it.
func New(engine *sync.Engine, cfg Config, l log.Logger) *Scheduler {
	return &Scheduler{
		engine:  engine,
		cron:    cron.New(),
		cfg:     cfg,
		l:       l,
		running: make(chan struct{}, 1),
	}
}

// Start registers the cron entries and starts the cron loop. The given
// context bounds every triggered run.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.IncrementalSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.IncrementalSpec, func() {
			s.trigger(ctx, sync.ModeIncremental)
		}); err != nil {
			return err
		}
	}
	if s.cfg.FullSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.FullSpec, func() {
			s.trigger(ctx, sync.ModeFull)
		}); err != nil {
			return err
		}
	}
	s.cron.Start()
	s.l.Infof(ctx, "scheduler: started (incremental=%q full=%q)", s.cfg.IncrementalSpec, s.cfg.FullSpec)
	return nil
}

// Stop stops the cron loop and waits for the in-flight entry, if any,
// to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) trigger(ctx context.Context, mode sync.Mode) {
	select {
	case s.running <- struct{}{}:
	default:
		s.l.Warnf(ctx, "scheduler: previous run still in progress, skipping %s tick", mode)
		return
	}
	defer func() { <-s.running }()

	if _, err := s.engine.Run(ctx, mode); err != nil {
		s.l.Errorf(ctx, "scheduler: %s run failed: %v", mode, err)
	}
}

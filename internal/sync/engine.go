package sync

import (
	"context"
	"fmt"
	"sort"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
)

// Run executes one reconciliation run: discover remote calendars, then
// reconcile every sync-enabled calendar through a bounded worker pool.
// Partial failure is reported in the summary; only a fatal (auth) remote
// error aborts the run and is returned as an error.
func (e *Engine) Run(ctx context.Context, mode Mode) (Summary, error) {
	summary := Summary{
		RunID:     uuid.NewString(),
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.l.Infof(ctx, "sync: run %s starting (mode=%s)", summary.RunID, mode)

	discovered, err := e.discoverCalendars(runCtx)
	if err != nil {
		summary.FinishedAt = time.Now().UTC()
		return summary, fmt.Errorf("calendar discovery: %w", err)
	}
	summary.Discovered = discovered

	targets, _, err := e.repo.ListCalendars(runCtx, repo.ListCalendarsOptions{SyncOnly: true})
	if err != nil {
		summary.FinishedAt = time.Now().UTC()
		return summary, fmt.Errorf("selecting sync-enabled calendars: %w", err)
	}

	window := e.window(mode)

	jobs := make(chan calendar.Calendar)
	results := make(chan CalendarSummary, len(targets))

	var fatalOnce stdsync.Once
	var fatalErr error
	recordFatal := func(err error) {
		fatalOnce.Do(func() {
			fatalErr = err
			cancel()
		})
	}

	var wg stdsync.WaitGroup
	for i := 0; i < e.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cal := range jobs {
				res, fatal := e.reconcileCalendar(runCtx, cal, window)
				if fatal != nil {
					recordFatal(fatal)
				}
				results <- res
			}
		}()
	}

enqueue:
	for _, cal := range targets {
		select {
		case jobs <- cal:
		case <-runCtx.Done():
			break enqueue
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	for res := range results {
		summary.Calendars = append(summary.Calendars, res)
	}
	sort.Slice(summary.Calendars, func(i, j int) bool {
		return summary.Calendars[i].CalendarName < summary.Calendars[j].CalendarName
	})

	summary.FinishedAt = time.Now().UTC()
	added, updated, deleted, failed := summary.Totals()
	e.l.Infof(ctx, "sync: run %s finished: %d calendars, +%d ~%d -%d, %d failed rows",
		summary.RunID, len(summary.Calendars), added, updated, deleted, failed)

	return summary, fatalErr
}

// discoverCalendars lists remote calendars and upserts their metadata with
// the flag-preserving merge. Newly discovered calendars get sync=false and
// a collision-free local alias. Returns how many calendars were seen.
func (e *Engine) discoverCalendars(ctx context.Context) (int, error) {
	var remoteCals []remote.Calendar
	err := e.withBackoff(ctx, "calendars.list", func() error {
		var listErr error
		remoteCals, listErr = e.remote.ListCalendars(ctx)
		return listErr
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, rc := range remoteCals {
		alias, err := e.resolveAlias(ctx, rc)
		if err != nil {
			e.l.Errorf(ctx, "sync: discovery alias for %s: %v", rc.GcalID, err)
			continue
		}
		if _, _, err := e.repo.UpsertCalendar(ctx, repo.UpsertCalendarOptions{
			GcalID:       rc.GcalID,
			CalendarName: alias,
			GcalName:     rc.Summary,
			Description:  rc.Description,
			Location:     rc.Location,
			Timezone:     rc.Timezone,
		}); err != nil {
			e.l.Errorf(ctx, "sync: discovery upsert %s: %v", rc.GcalID, err)
			continue
		}
		count++
	}
	return count, nil
}

// resolveAlias picks the local calendar_name for a discovered calendar.
// Known calendars keep their alias (the upsert never overwrites it); new
// ones take the provider summary, de-duplicated against existing aliases.
func (e *Engine) resolveAlias(ctx context.Context, rc remote.Calendar) (string, error) {
	existing, err := e.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{GcalID: rc.GcalID})
	if err != nil {
		return "", err
	}
	if existing.GcalID != "" {
		return existing.CalendarName, nil
	}

	candidate := rc.Summary
	if candidate == "" {
		candidate = rc.GcalID
	}

	taken, err := e.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{CalendarName: candidate})
	if err != nil {
		return "", err
	}
	if taken.GcalID == "" {
		return candidate, nil
	}

	suffix := rc.GcalID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return candidate + "-" + suffix, nil
}

// window maps a run mode onto the remote fetch window. Full runs ignore
// any cursor and re-list everything.
func (e *Engine) window(mode Mode) remote.Window {
	if mode == ModeFull {
		return remote.Window{}
	}
	now := time.Now().UTC()
	return remote.Window{
		Min: now.Add(-e.cfg.IncrementalLookback),
		Max: now.Add(e.cfg.IncrementalHorizon),
	}
}

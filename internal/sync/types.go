package sync

import "time"

// Mode selects how wide a reconciliation run fetches.
type Mode string

const (
	// ModeIncremental fetches a narrower default window for routine runs.
	ModeIncremental Mode = "incremental"
	// ModeFull re-lists everything to repair drift.
	ModeFull Mode = "full"
)

// JobState tracks one calendar job through its lifecycle.
type JobState string

const (
	StateIdle     JobState = "idle"
	StateFetching JobState = "fetching"
	StateDiffing  JobState = "diffing"
	StateApplying JobState = "applying"
	StateDone     JobState = "done"
	StateFailed   JobState = "failed"
)

// CalendarSummary reports one calendar's reconciliation outcome.
type CalendarSummary struct {
	GcalID       string   `json:"gcal_id"`
	CalendarName string   `json:"calendar_name"`
	State        JobState `json:"state"`
	Added        int      `json:"added"`
	Updated      int      `json:"updated"`
	Deleted      int      `json:"deleted"`
	Failed       int      `json:"failed"`
	Error        string   `json:"error,omitempty"`
}

// Summary reports one reconciliation run. Partial failure is expressed in
// the per-calendar counts, not as an error.
type Summary struct {
	RunID      string            `json:"run_id"`
	Mode       Mode              `json:"mode"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Discovered int               `json:"discovered"`
	Calendars  []CalendarSummary `json:"calendars"`
}

// Totals aggregates the per-calendar counts.
func (s Summary) Totals() (added, updated, deleted, failed int) {
	for _, c := range s.Calendars {
		added += c.Added
		updated += c.Updated
		deleted += c.Deleted
		failed += c.Failed
	}
	return added, updated, deleted, failed
}

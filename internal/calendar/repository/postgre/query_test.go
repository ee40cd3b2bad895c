package postgre

import (
	"testing"
	"time"

	repo "calendar-mirror/internal/calendar/repository"
)

func TestBuildCalendarFilter(t *testing.T) {
	r := &implRepository{}

	t.Run("No Filters", func(t *testing.T) {
		where, args := r.buildCalendarFilter(repo.ListCalendarsOptions{})
		if where != "1=1" {
			t.Errorf("expected pass-through clause, got %q", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("All Filters", func(t *testing.T) {
		cursor := time.Now().UTC()
		where, args := r.buildCalendarFilter(repo.ListCalendarsOptions{
			MinModified: &cursor,
			SyncOnly:    true,
			DisplayOnly: true,
		})
		if where != "last_modified >= $1 AND sync = TRUE AND display = TRUE" {
			t.Errorf("unexpected clause: %q", where)
		}
		if len(args) != 1 {
			t.Errorf("expected 1 arg, got %v", args)
		}
	})
}

func TestBuildEventFilter(t *testing.T) {
	r := &implRepository{}
	minTime := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	maxTime := minTime.Add(48 * time.Hour)

	t.Run("GcalID Only", func(t *testing.T) {
		where, args := r.buildEventFilter(repo.ListEventsOptions{GcalID: "cal-1"})
		if where != "gcal_id = $1" {
			t.Errorf("unexpected clause: %q", where)
		}
		if len(args) != 1 || args[0] != "cal-1" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Window Uses Overlap Semantics", func(t *testing.T) {
		where, args := r.buildEventFilter(repo.ListEventsOptions{
			GcalID:  "cal-1",
			MinTime: &minTime,
			MaxTime: &maxTime,
		})
		// An event overlaps the window when it ends after the window opens
		// and starts before it closes.
		want := "gcal_id = $1 AND event_end_time >= $2 AND event_start_time <= $3"
		if where != want {
			t.Errorf("unexpected clause: %q", where)
		}
		if len(args) != 3 {
			t.Errorf("expected 3 args, got %v", args)
		}
	})
}

func TestBuildPage(t *testing.T) {
	t.Run("Limit And Offset", func(t *testing.T) {
		args := []any{"cal-1"}
		frag := buildPage(25, 50, &args)
		if frag != " LIMIT $2 OFFSET $3" {
			t.Errorf("unexpected fragment: %q", frag)
		}
		if len(args) != 3 || args[1] != 25 || args[2] != 50 {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Zero Values Emit Nothing", func(t *testing.T) {
		args := []any{}
		if frag := buildPage(0, 0, &args); frag != "" {
			t.Errorf("expected empty fragment, got %q", frag)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})
}

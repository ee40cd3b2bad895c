package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
)

func TestListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Alias", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockRemote{}, &mockLogger{})
		_, err := uc.ListEvents(ctx, calendar.ListEventsInput{CalendarName: "nope"})
		if !errors.Is(err, calendar.ErrCalendarNotFound) {
			t.Errorf("expected ErrCalendarNotFound, got %v", err)
		}
	})

	t.Run("Alias Resolution Is Cached", func(t *testing.T) {
		lookups := 0
		store := &mockRepo{
			getOneCalendarFunc: func(opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
				lookups++
				return editableCalendar("cal-1", "work"), nil
			},
		}
		rc := &mockRemote{}
		uc := New(store, rc, &mockLogger{})

		for i := 0; i < 3; i++ {
			if _, err := uc.ListEvents(ctx, calendar.ListEventsInput{CalendarName: "work"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if lookups != 1 {
			t.Errorf("expected one alias lookup, got %d", lookups)
		}
		if rc.calls != 0 {
			t.Errorf("reads must never contact the provider")
		}
	})

	t.Run("Window Is Passed Through", func(t *testing.T) {
		minTime := time.Now().UTC()
		maxTime := minTime.Add(48 * time.Hour)
		var got repo.ListEventsOptions
		store := &mockRepo{
			getOneCalendarFunc: func(opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
				return editableCalendar("cal-1", "work"), nil
			},
			listEventsFunc: func(opt repo.ListEventsOptions) ([]calendar.Event, error) {
				got = opt
				return nil, nil
			},
		}
		uc := New(store, &mockRemote{}, &mockLogger{})
		_, err := uc.ListEvents(ctx, calendar.ListEventsInput{
			CalendarName: "work", MinTime: &minTime, MaxTime: &maxTime,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.GcalID != "cal-1" || got.MinTime == nil || got.MaxTime == nil {
			t.Errorf("window not forwarded to the store: %+v", got)
		}
	})
}

func TestAgenda(t *testing.T) {
	ctx := context.Background()

	t.Run("Merges Display Calendars Sorted By Start", func(t *testing.T) {
		now := time.Now()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		store := &mockRepo{
			listCalendarsFunc: func(opt repo.ListCalendarsOptions) ([]calendar.Calendar, int, error) {
				if !opt.DisplayOnly {
					t.Errorf("agenda must select display-enabled calendars only")
				}
				return []calendar.Calendar{
					{GcalID: "cal-a", CalendarName: "a", Display: true},
					{GcalID: "cal-b", CalendarName: "b", Display: true},
				}, 2, nil
			},
			listEventsFunc: func(opt repo.ListEventsOptions) ([]calendar.Event, error) {
				if opt.GcalID == "cal-a" {
					return []calendar.Event{{GcalID: "cal-a", EventID: "late", StartTime: dayStart.Add(15 * time.Hour)}}, nil
				}
				return []calendar.Event{{GcalID: "cal-b", EventID: "early", StartTime: dayStart.Add(9 * time.Hour)}}, nil
			},
		}
		uc := New(store, &mockRemote{}, &mockLogger{})
		out, err := uc.Agenda(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(out.Events))
		}
		if out.Events[0].EventID != "early" || out.Events[1].EventID != "late" {
			t.Errorf("events not ordered by start time: %s, %s", out.Events[0].EventID, out.Events[1].EventID)
		}
		if !out.Date.Equal(dayStart) {
			t.Errorf("expected agenda date %v, got %v", dayStart, out.Date)
		}
	})
}

func TestSetFlags(t *testing.T) {
	ctx := context.Background()
	boolPtr := func(b bool) *bool { return &b }

	t.Run("Unknown Calendar", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockRemote{}, &mockLogger{})
		_, err := uc.SetFlags(ctx, calendar.SetFlagsInput{GcalID: "nope", Sync: boolPtr(true)})
		if !errors.Is(err, calendar.ErrCalendarNotFound) {
			t.Errorf("expected ErrCalendarNotFound, got %v", err)
		}
	})

	t.Run("Local Only And Invalidates The Alias Cache", func(t *testing.T) {
		cal := editableCalendar("cal-1", "work")
		aliasLookups := 0
		store := &mockRepo{
			getOneCalendarFunc: func(opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
				aliasLookups++
				return cal, nil
			},
			setFlagsFunc: func(opt repo.SetCalendarFlagsOptions) (calendar.Calendar, error) {
				updated := cal
				if opt.Sync != nil {
					updated.Sync = *opt.Sync
				}
				return updated, nil
			},
		}
		rc := &mockRemote{}
		uc := New(store, rc, &mockLogger{})

		// Warm the alias cache, flip a flag, then read again.
		if _, err := uc.ListEvents(ctx, calendar.ListEventsInput{CalendarName: "work"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SetFlags(ctx, calendar.SetFlagsInput{GcalID: "cal-1", Sync: boolPtr(true)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ListEvents(ctx, calendar.ListEventsInput{CalendarName: "work"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if aliasLookups != 2 {
			t.Errorf("expected the flag update to evict the cached alias, lookups=%d", aliasLookups)
		}
		if rc.calls != 0 {
			t.Errorf("flag updates must never contact the provider")
		}
	})
}

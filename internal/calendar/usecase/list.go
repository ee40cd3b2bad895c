package usecase

import (
	"context"
	"sort"
	"time"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
)

// ListCalendars returns a page of cached calendars. MinModified acts as an
// incremental-read cursor for downstream consumers.
func (uc *implUseCase) ListCalendars(ctx context.Context, input calendar.ListCalendarsInput) (calendar.ListCalendarsOutput, error) {
	calendars, total, err := uc.repo.ListCalendars(ctx, repo.ListCalendarsOptions{
		MinModified: input.MinModified,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		return calendar.ListCalendarsOutput{}, err
	}

	return calendar.ListCalendarsOutput{
		Calendars: calendars,
		Total:     total,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}, nil
}

// ListEvents returns the cached events of one calendar, addressed by its
// local alias, optionally limited to a [start, end] window.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	cal, err := uc.resolveAlias(ctx, input.CalendarName)
	if err != nil {
		return calendar.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		GcalID:  cal.GcalID,
		MinTime: input.MinTime,
		MaxTime: input.MaxTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents: %v", err)
		return calendar.ListEventsOutput{}, err
	}

	return calendar.ListEventsOutput{Calendar: cal, Events: events}, nil
}

// Agenda returns today's events across all display-enabled calendars,
// ordered by start time.
func (uc *implUseCase) Agenda(ctx context.Context) (calendar.AgendaOutput, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	calendars, _, err := uc.repo.ListCalendars(ctx, repo.ListCalendarsOptions{DisplayOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Agenda ListCalendars: %v", err)
		return calendar.AgendaOutput{}, err
	}

	var events []calendar.Event
	for _, cal := range calendars {
		calEvents, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
			GcalID:  cal.GcalID,
			MinTime: &dayStart,
			MaxTime: &dayEnd,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Agenda ListEvents %s: %v", cal.CalendarName, err)
			return calendar.AgendaOutput{}, err
		}
		events = append(events, calEvents...)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	return calendar.AgendaOutput{Date: dayStart, Events: events}, nil
}

// resolveAlias resolves a local calendar alias through the expirable cache.
func (uc *implUseCase) resolveAlias(ctx context.Context, calendarName string) (calendar.Calendar, error) {
	if cal, ok := uc.aliasCache.Get(calendarName); ok {
		return cal, nil
	}

	cal, err := uc.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{CalendarName: calendarName})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveAlias GetOneCalendar: %v", err)
		return calendar.Calendar{}, err
	}
	if cal.GcalID == "" {
		return calendar.Calendar{}, calendar.ErrCalendarNotFound
	}

	uc.aliasCache.Add(calendarName, cal)
	return cal, nil
}

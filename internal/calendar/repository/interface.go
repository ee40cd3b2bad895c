package repository

import (
	"context"

	"calendar-mirror/internal/calendar"
)

// Repository is the composed interface for the calendar cache store.
type Repository interface {
	CalendarRepository
	EventRepository
}

// CalendarRepository defines data access for calendar_list rows.
type CalendarRepository interface {
	// ListCalendars returns a page of calendars plus the total count.
	ListCalendars(ctx context.Context, opt ListCalendarsOptions) ([]calendar.Calendar, int, error)

	// GetOneCalendar returns the zero value (GcalID == "") when not found.
	GetOneCalendar(ctx context.Context, opt GetOneCalendarOptions) (calendar.Calendar, error)

	// UpsertCalendar inserts or refreshes one calendar row in a single
	// statement. Only descriptive fields are merged; sync/display/edit and
	// calendar_name are never overwritten on conflict. changed is false
	// when no observable field differed (last_modified is not advanced).
	UpsertCalendar(ctx context.Context, opt UpsertCalendarOptions) (calendar.Calendar, bool, error)

	// SetCalendarFlags updates only the flags present in opt.
	SetCalendarFlags(ctx context.Context, opt SetCalendarFlagsOptions) (calendar.Calendar, error)
}

// EventRepository defines data access for calendar_cache rows.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]calendar.Event, error)

	// GetOneEvent returns the zero value (EventID == "") when not found.
	GetOneEvent(ctx context.Context, gcalID, eventID string) (calendar.Event, error)

	// UpsertEvent inserts or overwrites one event row in a single
	// statement. changed is false when no observable field differed
	// (last_modified is not advanced).
	UpsertEvent(ctx context.Context, opt UpsertEventOptions) (bool, error)

	// DeleteEvent removes one event row; deleting an absent row is a no-op.
	DeleteEvent(ctx context.Context, gcalID, eventID string) error
}

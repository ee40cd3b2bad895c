package repository

import "time"

// ListCalendarsOptions holds filter and pagination parameters for listing
// calendar rows. MinModified is the incremental-read cursor.
type ListCalendarsOptions struct {
	MinModified *time.Time
	SyncOnly    bool
	DisplayOnly bool
	Limit       int
	Offset      int
}

// GetOneCalendarOptions holds filter parameters for fetching a single
// calendar. Non-empty fields are applied as AND conditions.
type GetOneCalendarOptions struct {
	GcalID       string
	CalendarName string
}

// UpsertCalendarOptions carries the provider-refreshed descriptive fields
// plus the initial local state used only when the row is first inserted.
type UpsertCalendarOptions struct {
	GcalID       string
	CalendarName string // insert-only: never overwritten on conflict
	GcalName     string
	Description  string
	Location     string
	Timezone     string
}

// SetCalendarFlagsOptions updates only the non-nil flags.
type SetCalendarFlagsOptions struct {
	GcalID  string
	Sync    *bool
	Display *bool
	Edit    *bool
}

// ListEventsOptions holds filter parameters for listing cached events of
// one calendar. The time window matches any event overlapping it.
type ListEventsOptions struct {
	GcalID      string
	MinTime     *time.Time
	MaxTime     *time.Time
	MinModified *time.Time
}

// UpsertEventOptions carries one event row's full observable state.
type UpsertEventOptions struct {
	GcalID       string
	EventID      string
	StartTime    time.Time
	EndTime      time.Time
	URL          string
	Name         string
	Description  string
	LocationName string
	LocationLat  *float64
	LocationLon  *float64
}

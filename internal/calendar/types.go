package calendar

import "time"

// Calendar is one remote calendar known to the local cache.
// gcal_id is provider-issued and immutable; calendar_name is the local,
// user-facing alias. The sync/display/edit flags are operator-owned and are
// never overwritten by provider data.
type Calendar struct {
	ID           int
	CalendarName string
	GcalID       string
	GcalName     string
	Description  string
	Location     string
	Timezone     string
	Sync         bool
	Display      bool
	Edit         bool
	LastModified time.Time
}

// Event is one remote event mirrored into the cache, identified by
// (gcal_id, event_id).
type Event struct {
	ID           int
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
	LastModified time.Time
}

// --- UseCase Inputs ---

type ListCalendarsInput struct {
	MinModified *time.Time
	Limit       int
	Offset      int
}

type ListEventsInput struct {
	CalendarName string
	MinTime      *time.Time
	MaxTime      *time.Time
}

type CreateEventInput struct {
	GcalID       string
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	Description  string
	URL          string
	LocationName string
	LocationLat  *float64
	LocationLon  *float64
}

type UpdateEventInput struct {
	GcalID       string
	EventID      string
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	Description  string
	LocationName string
}

// SetFlagsInput updates only the flags that are non-nil.
type SetFlagsInput struct {
	GcalID  string
	Sync    *bool
	Display *bool
	Edit    *bool
}

// --- UseCase Outputs ---

type ListCalendarsOutput struct {
	Calendars []Calendar
	Total     int
	Limit     int
	Offset    int
}

type ListEventsOutput struct {
	Calendar Calendar
	Events   []Event
}

type AgendaOutput struct {
	Date   time.Time
	Events []Event
}

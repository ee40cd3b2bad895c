package http

import (
	"time"

	"calendar-mirror/internal/calendar"
	"calendar-mirror/pkg/response"
)

// --- Request DTOs ---

type listCalendarsReq struct {
	MinModified string `form:"min_modified"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`

	minModified *time.Time
}

func (r *listCalendarsReq) validate() error {
	if r.MinModified != "" {
		t, err := time.Parse(time.RFC3339, r.MinModified)
		if err != nil {
			return response.NewHTTPError(400, "min_modified must be RFC3339")
		}
		r.minModified = &t
	}
	return nil
}

func (r *listCalendarsReq) toInput() calendar.ListCalendarsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return calendar.ListCalendarsInput{
		MinModified: r.minModified,
		Limit:       limit,
		Offset:      offset,
	}
}

// ---

type setFlagsReq struct {
	GcalID  string `json:"-"` // populated from URI param
	Sync    *bool  `json:"sync"`
	Display *bool  `json:"display"`
	Edit    *bool  `json:"edit"`
}

func (r *setFlagsReq) validate() error {
	if r.Sync == nil && r.Display == nil && r.Edit == nil {
		return response.NewHTTPError(400, "at least one of sync, display, edit is required")
	}
	return nil
}

func (r *setFlagsReq) toInput() calendar.SetFlagsInput {
	return calendar.SetFlagsInput{
		GcalID:  r.GcalID,
		Sync:    r.Sync,
		Display: r.Display,
		Edit:    r.Edit,
	}
}

// ---

type listEventsReq struct {
	CalendarName string `form:"calendar_name" binding:"required"`
	Start        string `form:"start"`
	End          string `form:"end"`

	start *time.Time
	end   *time.Time
}

func (r *listEventsReq) validate() error {
	if r.Start != "" {
		t, err := time.Parse(time.RFC3339, r.Start)
		if err != nil {
			return response.NewHTTPError(400, "start must be RFC3339")
		}
		r.start = &t
	}
	if r.End != "" {
		t, err := time.Parse(time.RFC3339, r.End)
		if err != nil {
			return response.NewHTTPError(400, "end must be RFC3339")
		}
		r.end = &t
	}
	if r.start != nil && r.end != nil && r.end.Before(*r.start) {
		return response.NewHTTPError(400, "end must not be before start")
	}
	return nil
}

func (r *listEventsReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{
		CalendarName: r.CalendarName,
		MinTime:      r.start,
		MaxTime:      r.end,
	}
}

// ---

type createEventReq struct {
	GcalID       string    `json:"gcal_id"     binding:"required"`
	Name         string    `json:"name"        binding:"required"`
	StartTime    time.Time `json:"start_time"  binding:"required"`
	EndTime      time.Time `json:"end_time"    binding:"required"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	LocationName string    `json:"location_name"`
	LocationLat  *float64  `json:"location_lat"`
	LocationLon  *float64  `json:"location_lon"`
}

func (r *createEventReq) validate() error { return nil }

func (r *createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		GcalID:       r.GcalID,
		Name:         r.Name,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Description:  r.Description,
		URL:          r.URL,
		LocationName: r.LocationName,
		LocationLat:  r.LocationLat,
		LocationLon:  r.LocationLon,
	}
}

// ---

type updateEventReq struct {
	GcalID       string    `json:"-"` // populated from URI params
	EventID      string    `json:"-"`
	Name         string    `json:"name"       binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time"   binding:"required"`
	Description  string    `json:"description"`
	LocationName string    `json:"location_name"`
}

func (r *updateEventReq) validate() error { return nil }

func (r *updateEventReq) toInput() calendar.UpdateEventInput {
	return calendar.UpdateEventInput{
		GcalID:       r.GcalID,
		EventID:      r.EventID,
		Name:         r.Name,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Description:  r.Description,
		LocationName: r.LocationName,
	}
}

// --- Response DTOs ---

type calendarResp struct {
	GcalID       string    `json:"gcal_id"`
	CalendarName string    `json:"calendar_name"`
	GcalName     string    `json:"gcal_name"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	Timezone     string    `json:"timezone,omitempty"`
	Sync         bool      `json:"sync"`
	Display      bool      `json:"display"`
	Edit         bool      `json:"edit"`
	LastModified time.Time `json:"last_modified"`
}

func newCalendarResp(cal calendar.Calendar) calendarResp {
	return calendarResp{
		GcalID:       cal.GcalID,
		CalendarName: cal.CalendarName,
		GcalName:     cal.GcalName,
		Description:  cal.Description,
		Location:     cal.Location,
		Timezone:     cal.Timezone,
		Sync:         cal.Sync,
		Display:      cal.Display,
		Edit:         cal.Edit,
		LastModified: cal.LastModified,
	}
}

type eventResp struct {
	GcalID       string    `json:"gcal_id"`
	EventID      string    `json:"event_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"url,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	LocationLat  *float64  `json:"location_lat,omitempty"`
	LocationLon  *float64  `json:"location_lon,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

func newEventResp(ev calendar.Event) eventResp {
	return eventResp{
		GcalID:       ev.GcalID,
		EventID:      ev.EventID,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Name:         ev.Name,
		Description:  ev.Description,
		URL:          ev.URL,
		LocationName: ev.LocationName,
		LocationLat:  ev.LocationLat,
		LocationLon:  ev.LocationLon,
		LastModified: ev.LastModified,
	}
}

type listCalendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListCalendarsResp(out calendar.ListCalendarsOutput) listCalendarsResp {
	cals := make([]calendarResp, len(out.Calendars))
	for i, cal := range out.Calendars {
		cals[i] = newCalendarResp(cal)
	}
	return listCalendarsResp{
		Calendars: cals,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}

type listEventsResp struct {
	Calendar calendarResp `json:"calendar"`
	Events   []eventResp  `json:"events"`
}

func (h *handler) newListEventsResp(out calendar.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listEventsResp{
		Calendar: newCalendarResp(out.Calendar),
		Events:   events,
	}
}

type agendaResp struct {
	Date   response.Date `json:"date"`
	Events []eventResp   `json:"events"`
}

func (h *handler) newAgendaResp(out calendar.AgendaOutput) agendaResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return agendaResp{
		Date:   response.Date(out.Date),
		Events: events,
	}
}

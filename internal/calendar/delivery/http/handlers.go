package http

import (
	"github.com/gin-gonic/gin"

	"calendar-mirror/pkg/response"
)

// ListCalendars godoc
// @Summary     List cached calendars
// @Description Returns the locally cached calendar list with optional change-cursor and pagination.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       min_modified query string false "Only calendars modified at or after this RFC3339 instant"
// @Param       limit        query int    false "Page size (default: 50)"
// @Param       offset       query int    false "Page offset (default: 0)"
// @Success     200 {object} listCalendarsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListCalendarsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListCalendars(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCalendarsResp(output))
}

// SetFlags godoc
// @Summary     Update calendar flags
// @Description Partially updates the sync/display/edit flags of one calendar. Never contacts the provider.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       gcal_id path string       true "Provider calendar id"
// @Param       body    body setFlagsReq true "Flags to change (absent fields are untouched)"
// @Success     200 {object} calendarResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/calendars/{gcal_id}/flags [PATCH]
func (h *handler) SetFlags(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetFlagsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cal, err := h.uc.SetFlags(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetFlags: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCalendarResp(cal))
}

// ListEvents godoc
// @Summary     List cached events
// @Description Returns cached events of one calendar, addressed by its local alias, within an optional time range.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       calendar_name query string true  "Local calendar alias"
// @Param       start         query string false "Range start (RFC3339)"
// @Param       end           query string false "Range end (RFC3339)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// Agenda godoc
// @Summary     Today's agenda
// @Description Returns today's events across all display-enabled calendars, ordered by start time.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Success     200 {object} agendaResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/agenda [GET]
func (h *handler) Agenda(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Agenda(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Agenda: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAgendaResp(output))
}

// CreateEvent godoc
// @Summary     Create an event
// @Description Creates the event at the provider first, then mirrors it into the cache.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Calendar is not edit-enabled"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEventResp(ev))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Description Updates the event at the provider first, then mirrors it into the cache.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       gcal_id  path string         true "Provider calendar id"
// @Param       event_id path string         true "Event id"
// @Param       body     body updateEventReq true "New event content"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/calendar/events/{gcal_id}/{event_id} [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.UpdateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEventResp(ev))
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Description Deletes the event at the provider, then drops the cached row. Succeeds if the event is already gone remotely.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       gcal_id  path string true "Provider calendar id"
// @Param       event_id path string true "Event id"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/calendar/events/{gcal_id}/{event_id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	gcalID := c.Param("gcal_id")
	eventID := c.Param("event_id")
	if gcalID == "" || eventID == "" {
		response.Error(c, response.NewHTTPError(400, "gcal_id and event_id are required"), nil)
		return
	}

	if err := h.uc.DeleteEvent(ctx, gcalID, eventID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

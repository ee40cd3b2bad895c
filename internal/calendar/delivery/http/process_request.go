package http

import (
	"github.com/gin-gonic/gin"

	"calendar-mirror/pkg/response"
)

// processListCalendarsReq binds and validates the calendar list query parameters.
func (h *handler) processListCalendarsReq(c *gin.Context) (listCalendarsReq, error) {
	var req listCalendarsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSetFlagsReq binds and validates the flag update body + URI param.
func (h *handler) processSetFlagsReq(c *gin.Context) (setFlagsReq, error) {
	var req setFlagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GcalID = c.Param("gcal_id")
	if req.GcalID == "" {
		return req, response.NewHTTPError(400, "gcal_id is required")
	}
	return req, req.validate()
}

// processListEventsReq binds and validates the event list query parameters.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEventReq binds and validates the create event request body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateEventReq binds and validates the update event body + URI params.
func (h *handler) processUpdateEventReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GcalID = c.Param("gcal_id")
	req.EventID = c.Param("event_id")
	if req.GcalID == "" || req.EventID == "" {
		return req, response.NewHTTPError(400, "gcal_id and event_id are required")
	}
	return req, req.validate()
}

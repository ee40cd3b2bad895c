package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	calendars := rg.Group("/calendars")
	{
		calendars.GET("", h.ListCalendars)
		calendars.PATCH("/:gcal_id/flags", h.SetFlags)
	}

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.PUT("/:gcal_id/:event_id", h.UpdateEvent)
		events.DELETE("/:gcal_id/:event_id", h.DeleteEvent)
	}

	rg.GET("/agenda", h.Agenda)
}

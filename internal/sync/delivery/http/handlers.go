package http

import (
	"github.com/gin-gonic/gin"

	"calendar-mirror/internal/sync"
	"calendar-mirror/pkg/response"
)

// RegisterRoutes maps the sync trigger route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/sync", h.Run)
}

// Run godoc
// @Summary     Trigger a reconciliation run
// @Description Runs discovery plus per-calendar reconciliation and returns the run summary. Blocks until the run finishes.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       mode query string false "Run mode: incremental (default) or full"
// @Success     200 {object} sync.Summary
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/sync [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	mode := sync.Mode(c.DefaultQuery("mode", string(sync.ModeIncremental)))
	if mode != sync.ModeIncremental && mode != sync.ModeFull {
		response.Error(c, response.NewHTTPError(400, "mode must be incremental or full"), nil)
		return
	}

	summary, err := h.engine.Run(ctx, mode)
	if err != nil {
		h.l.Errorf(ctx, "sync run: %v", err)
		response.Error(c, response.NewHTTPError(502, "sync run aborted: "+err.Error()), nil)
		return
	}

	response.OK(c, summary)
}

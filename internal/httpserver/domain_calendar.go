package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "calendar-mirror/internal/calendar/delivery/http"
	calendarRepo "calendar-mirror/internal/calendar/repository/postgre"
	calendarUC "calendar-mirror/internal/calendar/usecase"
	syncHTTP "calendar-mirror/internal/sync/delivery/http"
)

// setupCalendarDomain initializes the calendar domain and registers its
// routes under /api/v1/calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := calendarRepo.New(srv.postgresDB, srv.l)
	uc := calendarUC.New(repo, srv.remote, srv.l)
	h := calendarHTTP.New(srv.l, uc)

	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}

// setupSyncDomain registers the reconciliation trigger under /api/v1/sync.
func (srv HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup) {
	h := syncHTTP.New(srv.l, srv.engine)
	syncHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Sync domain registered")
}

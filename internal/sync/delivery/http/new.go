package http

import (
	"calendar-mirror/internal/sync"
	"calendar-mirror/pkg/log"
)

type handler struct {
	l      log.Logger
	engine *sync.Engine
}

// New creates the HTTP handler that triggers reconciliation runs.
func New(l log.Logger, engine *sync.Engine) *handler {
	return &handler{
		l:      l,
		engine: engine,
	}
}

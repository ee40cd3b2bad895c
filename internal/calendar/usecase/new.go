package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-mirror/internal/calendar"
	"calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
	"calendar-mirror/pkg/log"
)

const (
	aliasCacheSize = 128
	aliasCacheTTL  = time.Minute
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	repo   repository.Repository
	remote remote.Client
	l      log.Logger

	// aliasCache resolves calendar_name -> Calendar on the read path so
	// repeated event listings skip one store roundtrip. Flag updates
	// invalidate their entry; descriptive staleness is bounded by the TTL.
	aliasCache *expirable.LRU[string, calendar.Calendar]
}

// New creates a new calendar UseCase implementation.
func New(repo repository.Repository, rc remote.Client, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		remote:     rc,
		l:          l,
		aliasCache: expirable.NewLRU[string, calendar.Calendar](aliasCacheSize, nil, aliasCacheTTL),
	}
}

package postgre

import (
	"database/sql"
	"fmt"

	"calendar-mirror/internal/calendar/repository"
	"calendar-mirror/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the calendar cache.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calendar/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/postgre.%s", method)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

package postgre

import (
	"fmt"
	"strings"

	repo "calendar-mirror/internal/calendar/repository"
)

func joinAnd(conditions []string) string {
	if len(conditions) == 0 {
		return "1=1"
	}
	return strings.Join(conditions, " AND ")
}

func joinComma(parts []string) string {
	return strings.Join(parts, ", ")
}

// buildCalendarFilter builds the WHERE clause + args for calendar listings.
func (r *implRepository) buildCalendarFilter(opt repo.ListCalendarsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.MinModified != nil {
		args = append(args, *opt.MinModified)
		conditions = append(conditions, fmt.Sprintf("last_modified >= $%d", len(args)))
	}
	if opt.SyncOnly {
		conditions = append(conditions, "sync = TRUE")
	}
	if opt.DisplayOnly {
		conditions = append(conditions, "display = TRUE")
	}

	return joinAnd(conditions), args
}

// buildEventFilter builds the WHERE clause + args for event listings.
// The time window matches any event overlapping [MinTime, MaxTime].
func (r *implRepository) buildEventFilter(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any

	args = append(args, opt.GcalID)
	conditions = append(conditions, fmt.Sprintf("gcal_id = $%d", len(args)))

	if opt.MinTime != nil {
		args = append(args, *opt.MinTime)
		conditions = append(conditions, fmt.Sprintf("event_end_time >= $%d", len(args)))
	}
	if opt.MaxTime != nil {
		args = append(args, *opt.MaxTime)
		conditions = append(conditions, fmt.Sprintf("event_start_time <= $%d", len(args)))
	}
	if opt.MinModified != nil {
		args = append(args, *opt.MinModified)
		conditions = append(conditions, fmt.Sprintf("last_modified >= $%d", len(args)))
	}

	return joinAnd(conditions), args
}

// buildPage appends LIMIT/OFFSET placeholders to args and returns the SQL
// fragment. Empty when no pagination requested.
func buildPage(limit, offset int, args *[]any) string {
	var b strings.Builder
	if limit > 0 {
		*args = append(*args, limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(*args))
	}
	if offset > 0 {
		*args = append(*args, offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(*args))
	}
	return b.String()
}

package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
)

const calendarColumns = `id, calendar_name, gcal_id, gcal_name, gcal_description,
	gcal_location, gcal_timezone, sync, display, edit, last_modified`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalendar(row rowScanner) (calendar.Calendar, error) {
	var c calendar.Calendar
	var gcalName, description, location, timezone sql.NullString
	err := row.Scan(
		&c.ID, &c.CalendarName, &c.GcalID, &gcalName, &description,
		&location, &timezone, &c.Sync, &c.Display, &c.Edit, &c.LastModified,
	)
	if err != nil {
		return calendar.Calendar{}, err
	}
	c.GcalName = gcalName.String
	c.Description = description.String
	c.Location = location.String
	c.Timezone = timezone.String
	return c, nil
}

// ListCalendars returns a page of calendar rows and the total count.
func (r *implRepository) ListCalendars(ctx context.Context, opt repo.ListCalendarsOptions) ([]calendar.Calendar, int, error) {
	where, args := r.buildCalendarFilter(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM calendar_list WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListCalendars"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM calendar_list WHERE %s ORDER BY calendar_name%s",
		calendarColumns, where, buildPage(opt.Limit, opt.Offset, &args),
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalendars"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var calendars []calendar.Calendar
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		calendars = append(calendars, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCalendars"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return calendars, total, nil
}

// GetOneCalendar retrieves a single calendar by the provided filters.
// Returns zero-value Calendar (GcalID == "") when not found.
func (r *implRepository) GetOneCalendar(ctx context.Context, opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
	var conditions []string
	var args []any
	if opt.GcalID != "" {
		args = append(args, opt.GcalID)
		conditions = append(conditions, fmt.Sprintf("gcal_id = $%d", len(args)))
	}
	if opt.CalendarName != "" {
		args = append(args, opt.CalendarName)
		conditions = append(conditions, fmt.Sprintf("calendar_name = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return calendar.Calendar{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM calendar_list WHERE %s LIMIT 1",
		calendarColumns, joinAnd(conditions))

	c, err := scanCalendar(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return calendar.Calendar{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCalendar"), err)
		return calendar.Calendar{}, repo.ErrFailedToGet
	}
	return c, nil
}

// UpsertCalendar inserts a newly discovered calendar or refreshes the
// descriptive fields of a known one. The conflict branch never touches
// calendar_name or the operator flags, and its guard skips the write (and
// the last_modified bump) when nothing observable changed.
func (r *implRepository) UpsertCalendar(ctx context.Context, opt repo.UpsertCalendarOptions) (calendar.Calendar, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO calendar_list (
			calendar_name, gcal_id, gcal_name, gcal_description,
			gcal_location, gcal_timezone, sync, display, edit, last_modified
		) VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, FALSE, NOW())
		ON CONFLICT (gcal_id) DO UPDATE
		SET gcal_name = EXCLUDED.gcal_name,
			gcal_description = EXCLUDED.gcal_description,
			gcal_location = EXCLUDED.gcal_location,
			gcal_timezone = EXCLUDED.gcal_timezone,
			last_modified = NOW()
		WHERE (calendar_list.gcal_name, calendar_list.gcal_description,
			calendar_list.gcal_location, calendar_list.gcal_timezone)
			IS DISTINCT FROM
			(EXCLUDED.gcal_name, EXCLUDED.gcal_description,
			EXCLUDED.gcal_location, EXCLUDED.gcal_timezone)
		RETURNING %s`, calendarColumns)

	c, err := scanCalendar(r.db.QueryRowContext(ctx, query,
		opt.CalendarName, opt.GcalID, nullString(opt.GcalName),
		nullString(opt.Description), nullString(opt.Location), nullString(opt.Timezone),
	))
	if err == sql.ErrNoRows {
		// Guard suppressed the write: row exists and is already current.
		existing, getErr := r.GetOneCalendar(ctx, repo.GetOneCalendarOptions{GcalID: opt.GcalID})
		if getErr != nil {
			return calendar.Calendar{}, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertCalendar"), err)
		return calendar.Calendar{}, false, repo.ErrFailedToUpsert
	}
	return c, true, nil
}

// SetCalendarFlags updates only the flags present in opt. It never touches
// descriptive fields and never contacts the provider.
func (r *implRepository) SetCalendarFlags(ctx context.Context, opt repo.SetCalendarFlagsOptions) (calendar.Calendar, error) {
	var sets []string
	var args []any
	if opt.Sync != nil {
		args = append(args, *opt.Sync)
		sets = append(sets, fmt.Sprintf("sync = $%d", len(args)))
	}
	if opt.Display != nil {
		args = append(args, *opt.Display)
		sets = append(sets, fmt.Sprintf("display = $%d", len(args)))
	}
	if opt.Edit != nil {
		args = append(args, *opt.Edit)
		sets = append(sets, fmt.Sprintf("edit = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.GetOneCalendar(ctx, repo.GetOneCalendarOptions{GcalID: opt.GcalID})
	}

	args = append(args, opt.GcalID)
	query := fmt.Sprintf(
		"UPDATE calendar_list SET %s, last_modified = NOW() WHERE gcal_id = $%d RETURNING %s",
		joinComma(sets), len(args), calendarColumns,
	)

	c, err := scanCalendar(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return calendar.Calendar{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarFlags"), err)
		return calendar.Calendar{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

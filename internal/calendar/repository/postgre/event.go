package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
)

const eventColumns = `id, gcal_id, event_id, event_start_time, event_end_time,
	event_url, event_name, event_description, event_location_name,
	event_location_lat, event_location_lon, last_modified`

func scanEvent(row rowScanner) (calendar.Event, error) {
	var e calendar.Event
	var url, description, locationName sql.NullString
	var lat, lon sql.NullFloat64
	err := row.Scan(
		&e.ID, &e.GcalID, &e.EventID, &e.StartTime, &e.EndTime,
		&url, &e.Name, &description, &locationName, &lat, &lon, &e.LastModified,
	)
	if err != nil {
		return calendar.Event{}, err
	}
	e.URL = url.String
	e.Description = description.String
	e.LocationName = locationName.String
	if lat.Valid {
		v := lat.Float64
		e.LocationLat = &v
	}
	if lon.Valid {
		v := lon.Float64
		e.LocationLon = &v
	}
	return e, nil
}

// ListEvents returns the cached events of one calendar, optionally limited
// to a time window or a last_modified cursor.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]calendar.Event, error) {
	where, args := r.buildEventFilter(opt)
	query := fmt.Sprintf(
		"SELECT %s FROM calendar_cache WHERE %s ORDER BY event_start_time",
		eventColumns, where,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// GetOneEvent retrieves a single event row. Returns zero-value Event
// (EventID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, gcalID, eventID string) (calendar.Event, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM calendar_cache WHERE gcal_id = $1 AND event_id = $2",
		eventColumns,
	)

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, gcalID, eventID))
	if err == sql.ErrNoRows {
		return calendar.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return calendar.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// UpsertEvent writes one event row in a single statement. The conflict
// branch carries a guard so a write that changes no observable field does
// not advance last_modified; changed reports whether a row was written.
func (r *implRepository) UpsertEvent(ctx context.Context, opt repo.UpsertEventOptions) (bool, error) {
	const query = `
		INSERT INTO calendar_cache (
			gcal_id, event_id, event_start_time, event_end_time, event_url,
			event_name, event_description, event_location_name,
			event_location_lat, event_location_lon, last_modified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (gcal_id, event_id) DO UPDATE
		SET event_start_time = EXCLUDED.event_start_time,
			event_end_time = EXCLUDED.event_end_time,
			event_url = EXCLUDED.event_url,
			event_name = EXCLUDED.event_name,
			event_description = EXCLUDED.event_description,
			event_location_name = EXCLUDED.event_location_name,
			event_location_lat = EXCLUDED.event_location_lat,
			event_location_lon = EXCLUDED.event_location_lon,
			last_modified = NOW()
		WHERE (calendar_cache.event_start_time, calendar_cache.event_end_time,
			calendar_cache.event_url, calendar_cache.event_name,
			calendar_cache.event_description, calendar_cache.event_location_name,
			calendar_cache.event_location_lat, calendar_cache.event_location_lon)
			IS DISTINCT FROM
			(EXCLUDED.event_start_time, EXCLUDED.event_end_time,
			EXCLUDED.event_url, EXCLUDED.event_name,
			EXCLUDED.event_description, EXCLUDED.event_location_name,
			EXCLUDED.event_location_lat, EXCLUDED.event_location_lon)`

	res, err := r.db.ExecContext(ctx, query,
		opt.GcalID, opt.EventID, opt.StartTime, opt.EndTime, nullString(opt.URL),
		opt.Name, nullString(opt.Description), nullString(opt.LocationName),
		nullFloat(opt.LocationLat), nullFloat(opt.LocationLon),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertEvent"), err)
		return false, repo.ErrFailedToUpsert
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpsertEvent"), err)
		return false, repo.ErrFailedToUpsert
	}
	return n > 0, nil
}

// DeleteEvent removes one event row. Deleting an absent row is a no-op.
func (r *implRepository) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	const query = `DELETE FROM calendar_cache WHERE gcal_id = $1 AND event_id = $2`
	if _, err := r.db.ExecContext(ctx, query, gcalID, eventID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

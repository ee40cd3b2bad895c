package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
)

// CreateEvent validates the input, creates the event remotely, and mirrors
// the remote-assigned event into the cache. The cache is never written
// before the remote create succeeds.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (calendar.Event, error) {
	if input.Name == "" {
		return calendar.Event{}, calendar.ErrNameRequired
	}
	if input.StartTime.After(input.EndTime) {
		return calendar.Event{}, calendar.ErrInvalidTimeRange
	}

	cal, err := uc.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{GcalID: input.GcalID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent GetOneCalendar: %v", err)
		return calendar.Event{}, err
	}
	if cal.GcalID == "" {
		return calendar.Event{}, calendar.ErrCalendarNotFound
	}
	if !cal.Edit {
		return calendar.Event{}, calendar.ErrEditNotAllowed
	}

	// Provider event ids must be lowercase base32hex; a dash-stripped UUID
	// satisfies that.
	eventID := strings.ReplaceAll(uuid.NewString(), "-", "")

	created, err := uc.remote.CreateEvent(ctx, input.GcalID, remote.Event{
		EventID:     eventID,
		Name:        input.Name,
		Description: input.Description,
		Location:    input.LocationName,
		Start:       input.StartTime,
		End:         input.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent remote: %v", err)
		return calendar.Event{}, err
	}

	return uc.mirrorEvent(ctx, input.GcalID, created, input.LocationLat, input.LocationLon)
}

// UpdateEvent sends a full replacement to the provider, then refreshes the
// cache. A remote NotFound is surfaced so the caller can trigger a resync.
func (uc *implUseCase) UpdateEvent(ctx context.Context, input calendar.UpdateEventInput) (calendar.Event, error) {
	if input.Name == "" {
		return calendar.Event{}, calendar.ErrNameRequired
	}
	if input.StartTime.After(input.EndTime) {
		return calendar.Event{}, calendar.ErrInvalidTimeRange
	}

	updated, err := uc.remote.UpdateEvent(ctx, input.GcalID, remote.Event{
		EventID:     input.EventID,
		Name:        input.Name,
		Description: input.Description,
		Location:    input.LocationName,
		Start:       input.StartTime,
		End:         input.EndTime,
	})
	if err != nil {
		if remote.IsNotFound(err) {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.UpdateEvent remote: %v", err)
		return calendar.Event{}, err
	}

	return uc.mirrorEvent(ctx, input.GcalID, updated, nil, nil)
}

// DeleteEvent deletes remotely first. A remote NotFound counts as already
// deleted; on any other remote failure the cache row is retained so the
// next sync run can reconcile.
func (uc *implUseCase) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	if err := uc.remote.DeleteEvent(ctx, gcalID, eventID); err != nil && !remote.IsNotFound(err) {
		uc.l.Errorf(ctx, "uc.DeleteEvent remote: %v", err)
		return err
	}

	if err := uc.repo.DeleteEvent(ctx, gcalID, eventID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent DeleteEvent: %v", err)
		return err
	}
	return nil
}

// mirrorEvent upserts the remote-confirmed event into the cache and returns
// the cached row.
func (uc *implUseCase) mirrorEvent(ctx context.Context, gcalID string, ev remote.Event, lat, lon *float64) (calendar.Event, error) {
	if _, err := uc.repo.UpsertEvent(ctx, repo.UpsertEventOptions{
		GcalID:       gcalID,
		EventID:      ev.EventID,
		StartTime:    ev.Start,
		EndTime:      ev.End,
		URL:          ev.URL,
		Name:         ev.Name,
		Description:  ev.Description,
		LocationName: ev.Location,
		LocationLat:  lat,
		LocationLon:  lon,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.mirrorEvent UpsertEvent: %v", err)
		return calendar.Event{}, err
	}

	return uc.repo.GetOneEvent(ctx, gcalID, ev.EventID)
}

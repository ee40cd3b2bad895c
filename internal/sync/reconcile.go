package sync

import (
	"context"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
)

// reconcileCalendar runs the fetch/diff/apply cycle for one calendar.
// Row-level failures are counted and logged but never abort the calendar;
// only a fatal remote error is returned so the run can stop.
func (e *Engine) reconcileCalendar(ctx context.Context, cal calendar.Calendar, window remote.Window) (CalendarSummary, error) {
	res := CalendarSummary{
		GcalID:       cal.GcalID,
		CalendarName: cal.CalendarName,
		State:        StateFetching,
	}

	remoteEvents, fetchFailed, err := e.fetchRemote(ctx, cal.GcalID, window)
	res.Failed += fetchFailed
	if err != nil {
		e.l.Errorf(ctx, "sync: %s: fetch: %v", cal.CalendarName, err)
		res.State = StateFailed
		res.Error = err.Error()
		if remote.IsFatal(err) {
			return res, err
		}
		return res, nil
	}

	res.State = StateDiffing
	listOpt := repo.ListEventsOptions{GcalID: cal.GcalID}
	if !window.IsZero() {
		// The cached set must be bounded the same way as the remote fetch,
		// or rows outside the window would look deleted.
		minTime, maxTime := window.Min, window.Max
		listOpt.MinTime = &minTime
		listOpt.MaxTime = &maxTime
	}
	cached, err := e.repo.ListEvents(ctx, listOpt)
	if err != nil {
		e.l.Errorf(ctx, "sync: %s: listing cached events: %v", cal.CalendarName, err)
		res.State = StateFailed
		res.Error = err.Error()
		return res, nil
	}
	cachedByID := make(map[string]calendar.Event, len(cached))
	for _, ev := range cached {
		cachedByID[ev.EventID] = ev
	}

	res.State = StateApplying
	for id, rev := range remoteEvents {
		cachedEv, ok := cachedByID[id]
		if ok {
			delete(cachedByID, id)
			if !rev.Updated.After(cachedEv.LastModified) && eventEqual(cachedEv, rev) {
				continue
			}
			if !rev.Updated.After(cachedEv.LastModified) {
				e.l.Warnf(ctx, "sync: %s: event %s diverged without a newer remote timestamp, taking remote copy", cal.CalendarName, id)
			}
		}
		changed, err := e.repo.UpsertEvent(ctx, upsertFromRemote(cal.GcalID, rev))
		if err != nil {
			e.l.Errorf(ctx, "sync: %s: upserting event %s: %v", cal.CalendarName, id, err)
			res.Failed++
			continue
		}
		if !changed {
			continue
		}
		if ok {
			res.Updated++
		} else {
			res.Added++
		}
	}

	// Whatever remains in the cached set was not seen remotely inside the
	// same window, so it is gone (deleted or cancelled upstream).
	for id := range cachedByID {
		if err := e.repo.DeleteEvent(ctx, cal.GcalID, id); err != nil {
			e.l.Errorf(ctx, "sync: %s: deleting event %s: %v", cal.CalendarName, id, err)
			res.Failed++
			continue
		}
		res.Deleted++
	}

	res.State = StateDone
	e.l.Infof(ctx, "sync: %s: +%d ~%d -%d (%d failed)",
		cal.CalendarName, res.Added, res.Updated, res.Deleted, res.Failed)
	return res, nil
}

// fetchRemote lists the calendar's events inside the window and returns
// them keyed by event id. Cancelled events are dropped, partial payloads
// are re-fetched individually, and malformed events are skipped and
// counted as failures.
func (e *Engine) fetchRemote(ctx context.Context, gcalID string, window remote.Window) (map[string]remote.Event, int, error) {
	events := make(map[string]remote.Event)
	failed := 0

	err := e.withBackoff(ctx, "events.list", func() error {
		clear(events)
		return e.remote.ListEvents(ctx, gcalID, window, func(ev remote.Event) error {
			if ev.Cancelled {
				return nil
			}
			events[ev.EventID] = ev
			return nil
		})
	})
	if err != nil {
		return nil, failed, err
	}

	for id, ev := range events {
		if ev.Partial() {
			full, err := e.fetchOne(ctx, gcalID, id)
			if err != nil {
				if remote.IsFatal(err) {
					return nil, failed, err
				}
				if remote.IsNotFound(err) {
					delete(events, id)
					continue
				}
				e.l.Errorf(ctx, "sync: fetching event %s/%s: %v", gcalID, id, err)
				delete(events, id)
				failed++
				continue
			}
			ev = full
			events[id] = ev
		}
		if ev.End.Before(ev.Start) {
			e.l.Warnf(ctx, "sync: event %s/%s ends before it starts, skipping", gcalID, id)
			delete(events, id)
			failed++
		}
	}
	return events, failed, nil
}

func (e *Engine) fetchOne(ctx context.Context, gcalID, eventID string) (remote.Event, error) {
	var ev remote.Event
	err := e.withBackoff(ctx, "events.get", func() error {
		var getErr error
		ev, getErr = e.remote.GetEvent(ctx, gcalID, eventID)
		return getErr
	})
	return ev, err
}

func upsertFromRemote(gcalID string, ev remote.Event) repo.UpsertEventOptions {
	return repo.UpsertEventOptions{
		GcalID:       gcalID,
		EventID:      ev.EventID,
		StartTime:    ev.Start,
		EndTime:      ev.End,
		URL:          ev.URL,
		Name:         ev.Name,
		Description:  ev.Description,
		LocationName: ev.Location,
	}
}

// eventEqual reports whether the cached row already carries the remote
// event's content. Timestamps compare as instants, not representations.
func eventEqual(cached calendar.Event, ev remote.Event) bool {
	return cached.Name == ev.Name &&
		cached.Description == ev.Description &&
		cached.URL == ev.URL &&
		cached.LocationName == ev.Location &&
		cached.StartTime.Equal(ev.Start) &&
		cached.EndTime.Equal(ev.End)
}

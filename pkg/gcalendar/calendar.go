package gcalendar

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"

	"calendar-mirror/internal/remote"
)

const pageSize = 250

var _ remote.Client = (*Client)(nil)

// ListCalendars returns every calendar on the account's calendar list,
// following pagination. Entries the provider marks deleted are skipped.
func (c *Client) ListCalendars(ctx context.Context) ([]remote.Calendar, error) {
	var out []remote.Calendar
	pageToken := ""
	for {
		if err := c.wait(ctx); err != nil {
			return nil, remote.NewError(remote.KindTransient, "calendars.list", err)
		}
		call := c.service.CalendarList.List().
			ShowDeleted(true).
			ShowHidden(true).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, classify("calendars.list", err)
		}
		for _, item := range page.Items {
			if item.Deleted {
				continue
			}
			out = append(out, remote.Calendar{
				GcalID:      item.Id,
				Summary:     item.Summary,
				Description: item.Description,
				Location:    item.Location,
				Timezone:    item.TimeZone,
			})
		}
		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

// ListEvents streams one calendar's events within the window, one page at a
// time. Recurring events are expanded to single instances; cancelled
// instances are reported with Cancelled set.
func (c *Client) ListEvents(ctx context.Context, gcalID string, w remote.Window, fn func(remote.Event) error) error {
	pageToken := ""
	for {
		if err := c.wait(ctx); err != nil {
			return remote.NewError(remote.KindTransient, "events.list", err)
		}
		call := c.service.Events.List(gcalID).
			ShowDeleted(true).
			SingleEvents(true).
			MaxResults(pageSize).
			Context(ctx)
		if !w.Min.IsZero() {
			call = call.TimeMin(w.Min.Format(time.RFC3339))
		}
		if !w.Max.IsZero() {
			call = call.TimeMax(w.Max.Format(time.RFC3339))
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return classify("events.list", err)
		}
		for _, item := range page.Items {
			if err := fn(eventFromAPI(item)); err != nil {
				return err
			}
		}
		if page.NextPageToken == "" {
			return nil
		}
		pageToken = page.NextPageToken
	}
}

// GetEvent fetches the full detail of a single event.
func (c *Client) GetEvent(ctx context.Context, gcalID, eventID string) (remote.Event, error) {
	if err := c.wait(ctx); err != nil {
		return remote.Event{}, remote.NewError(remote.KindTransient, "events.get", err)
	}
	item, err := c.service.Events.Get(gcalID, eventID).Context(ctx).Do()
	if err != nil {
		return remote.Event{}, classify("events.get", err)
	}
	return eventFromAPI(item), nil
}

// CreateEvent inserts a new event into the calendar.
func (c *Client) CreateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	if err := c.wait(ctx); err != nil {
		return remote.Event{}, remote.NewError(remote.KindTransient, "events.insert", err)
	}
	created, err := c.service.Events.Insert(gcalID, eventToAPI(ev)).Context(ctx).Do()
	if err != nil {
		return remote.Event{}, classify("events.insert", err)
	}
	return eventFromAPI(created), nil
}

// UpdateEvent sends a full replacement of an existing event.
func (c *Client) UpdateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	if err := c.wait(ctx); err != nil {
		return remote.Event{}, remote.NewError(remote.KindTransient, "events.update", err)
	}
	updated, err := c.service.Events.Update(gcalID, ev.EventID, eventToAPI(ev)).Context(ctx).Do()
	if err != nil {
		return remote.Event{}, classify("events.update", err)
	}
	return eventFromAPI(updated), nil
}

// DeleteEvent removes an event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	if err := c.wait(ctx); err != nil {
		return remote.NewError(remote.KindTransient, "events.delete", err)
	}
	if err := c.service.Events.Delete(gcalID, eventID).Context(ctx).Do(); err != nil {
		return classify("events.delete", err)
	}
	return nil
}

func eventFromAPI(item *calendar.Event) remote.Event {
	ev := remote.Event{
		EventID:     item.Id,
		Name:        item.Summary,
		Description: item.Description,
		URL:         item.HtmlLink,
		Location:    item.Location,
		Start:       parseEventTime(item.Start),
		End:         parseEventTime(item.End),
		Cancelled:   item.Status == "cancelled",
	}
	if item.Updated != "" {
		if t, err := time.Parse(time.RFC3339, item.Updated); err == nil {
			ev.Updated = t.UTC()
		}
	}
	return ev
}

func eventToAPI(ev remote.Event) *calendar.Event {
	return &calendar.Event{
		Id:          ev.EventID,
		Summary:     ev.Name,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
		},
	}
}

// parseEventTime handles both timed events (DateTime) and all-day events
// (Date), anchoring all-day events at midnight in the event's timezone.
func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t.UTC()
		}
		return time.Time{}
	}
	if dt.Date != "" {
		loc := time.Local
		if dt.TimeZone != "" {
			if l, err := time.LoadLocation(dt.TimeZone); err == nil {
				loc = l
			}
		}
		if t, err := time.ParseInLocation("2006-01-02", dt.Date, loc); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

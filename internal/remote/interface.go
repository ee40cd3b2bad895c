package remote

import "context"

// Client is the provider-side contract the sync engine and the mutation
// service consume. Implementations own pagination, auth, and rate limiting;
// every failure they return is a *Error.
type Client interface {
	// ListCalendars returns all calendars visible to the account.
	ListCalendars(ctx context.Context) ([]Calendar, error)

	// ListEvents streams events of one calendar within the window, invoking
	// fn once per event. It must not materialize the full calendar; pages
	// are fetched lazily. An error from fn stops the listing.
	ListEvents(ctx context.Context, gcalID string, w Window, fn func(Event) error) error

	// GetEvent fetches the full detail of a single event.
	GetEvent(ctx context.Context, gcalID, eventID string) (Event, error)

	// CreateEvent inserts a new event and returns it as stored remotely.
	CreateEvent(ctx context.Context, gcalID string, ev Event) (Event, error)

	// UpdateEvent sends a full replacement of an existing event.
	UpdateEvent(ctx context.Context, gcalID string, ev Event) (Event, error)

	// DeleteEvent removes an event. Deleting an absent event returns a
	// NotFound error; callers decide whether that is terminal.
	DeleteEvent(ctx context.Context, gcalID, eventID string) error
}

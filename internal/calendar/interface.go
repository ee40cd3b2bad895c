package calendar

import "context"

// UseCase is the calendar domain's application service: cache-backed
// queries, remote-first event mutations, and local-only flag updates.
type UseCase interface {
	// Queries (served from the cache, never from the provider)
	ListCalendars(ctx context.Context, input ListCalendarsInput) (ListCalendarsOutput, error)
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Agenda(ctx context.Context) (AgendaOutput, error)

	// Event mutations (remote-first, cache mirrored only on success)
	CreateEvent(ctx context.Context, input CreateEventInput) (Event, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (Event, error)
	DeleteEvent(ctx context.Context, gcalID, eventID string) error

	// Flag updates (local-only, never contact the provider)
	SetFlags(ctx context.Context, input SetFlagsInput) (Calendar, error)
}

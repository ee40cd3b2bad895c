package calendar

import "errors"

var (
	ErrCalendarNotFound  = errors.New("calendar not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidTimeRange  = errors.New("event start time must not be after end time")
	ErrNameRequired      = errors.New("event name is required")
	ErrEditNotAllowed    = errors.New("calendar does not permit local event creation")
	ErrRemoteUnavailable = errors.New("remote calendar provider unavailable")
)

package http

import (
	"calendar-mirror/internal/calendar"
	"calendar-mirror/internal/remote"
	"calendar-mirror/pkg/response"
)

// mapError translates domain errors into HTTP errors with explicit status
// codes. Unknown errors fall through as 500 without leaking their message.
func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrCalendarNotFound:
		return response.NewHTTPError(404, "calendar not found")
	case calendar.ErrEventNotFound:
		return response.NewHTTPError(404, "event not found")
	case calendar.ErrInvalidTimeRange:
		return response.NewHTTPError(400, "start_time must not be after end_time")
	case calendar.ErrNameRequired:
		return response.NewHTTPError(400, "event name is required")
	case calendar.ErrEditNotAllowed:
		return response.NewHTTPError(403, "calendar is not edit-enabled")
	case calendar.ErrRemoteUnavailable:
		return response.NewHTTPError(502, "calendar provider unavailable")
	}

	switch {
	case remote.IsRateLimited(err):
		return response.NewHTTPError(429, "calendar provider rate limit exceeded")
	case remote.IsNotFound(err):
		return response.NewHTTPError(404, "not found at calendar provider")
	case remote.IsTransient(err), remote.IsFatal(err):
		return response.NewHTTPError(502, "calendar provider unavailable")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}

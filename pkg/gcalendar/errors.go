package gcalendar

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"calendar-mirror/internal/remote"
)

// classify maps a Calendar API failure onto the remote error taxonomy.
// Rate-limit 403s carry a dedicated reason; all other 403s are permission
// failures and must not be retried.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		// Transport-level failure (DNS, reset, timeout).
		return remote.NewError(remote.KindTransient, op, err)
	}

	switch apiErr.Code {
	case http.StatusTooManyRequests:
		return remote.NewError(remote.KindRateLimited, op, err)
	case http.StatusForbidden:
		for _, item := range apiErr.Errors {
			switch item.Reason {
			case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded":
				return remote.NewError(remote.KindRateLimited, op, err)
			}
		}
		return remote.NewError(remote.KindFatal, op, err)
	case http.StatusUnauthorized:
		return remote.NewError(remote.KindFatal, op, err)
	case http.StatusNotFound, http.StatusGone:
		return remote.NewError(remote.KindNotFound, op, err)
	}

	if apiErr.Code >= 500 {
		return remote.NewError(remote.KindTransient, op, err)
	}
	return remote.NewError(remote.KindFatal, op, err)
}

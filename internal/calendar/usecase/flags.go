package usecase

import (
	"context"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
)

// SetFlags updates only the named operator flags of one calendar. It is
// idempotent, local-only, and never contacts the provider.
func (uc *implUseCase) SetFlags(ctx context.Context, input calendar.SetFlagsInput) (calendar.Calendar, error) {
	cal, err := uc.repo.SetCalendarFlags(ctx, repo.SetCalendarFlagsOptions{
		GcalID:  input.GcalID,
		Sync:    input.Sync,
		Display: input.Display,
		Edit:    input.Edit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetFlags SetCalendarFlags: %v", err)
		return calendar.Calendar{}, err
	}
	if cal.GcalID == "" {
		return calendar.Calendar{}, calendar.ErrCalendarNotFound
	}

	uc.aliasCache.Remove(cal.CalendarName)
	return cal, nil
}

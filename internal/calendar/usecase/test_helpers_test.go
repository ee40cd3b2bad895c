package usecase

import (
	"context"
	"time"

	"calendar-mirror/internal/calendar"
	repo "calendar-mirror/internal/calendar/repository"
	"calendar-mirror/internal/remote"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRemote implements remote.Client with per-method hooks and call counts.
type mockRemote struct {
	calls int

	createEventFunc func(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error)
	updateEventFunc func(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error)
	deleteEventFunc func(ctx context.Context, gcalID, eventID string) error
}

func (m *mockRemote) ListCalendars(ctx context.Context) ([]remote.Calendar, error) {
	m.calls++
	return nil, nil
}

func (m *mockRemote) ListEvents(ctx context.Context, gcalID string, w remote.Window, fn func(remote.Event) error) error {
	m.calls++
	return nil
}

func (m *mockRemote) GetEvent(ctx context.Context, gcalID, eventID string) (remote.Event, error) {
	m.calls++
	return remote.Event{}, nil
}

func (m *mockRemote) CreateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	m.calls++
	if m.createEventFunc == nil {
		return ev, nil
	}
	return m.createEventFunc(ctx, gcalID, ev)
}

func (m *mockRemote) UpdateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	m.calls++
	if m.updateEventFunc == nil {
		return ev, nil
	}
	return m.updateEventFunc(ctx, gcalID, ev)
}

func (m *mockRemote) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	m.calls++
	if m.deleteEventFunc == nil {
		return nil
	}
	return m.deleteEventFunc(ctx, gcalID, eventID)
}

// mockRepo implements repository.Repository with per-method hooks.
type mockRepo struct {
	getOneCalendarFunc  func(opt repo.GetOneCalendarOptions) (calendar.Calendar, error)
	listCalendarsFunc   func(opt repo.ListCalendarsOptions) ([]calendar.Calendar, int, error)
	setFlagsFunc        func(opt repo.SetCalendarFlagsOptions) (calendar.Calendar, error)
	listEventsFunc      func(opt repo.ListEventsOptions) ([]calendar.Event, error)
	getOneEventFunc     func(gcalID, eventID string) (calendar.Event, error)
	upsertEventFunc     func(opt repo.UpsertEventOptions) (bool, error)
	deleteEventFunc     func(gcalID, eventID string) error
	upsertCalendarCalls int
	upsertEventCalls    int
	deleteEventCalls    int
}

func (m *mockRepo) ListCalendars(ctx context.Context, opt repo.ListCalendarsOptions) ([]calendar.Calendar, int, error) {
	if m.listCalendarsFunc == nil {
		return nil, 0, nil
	}
	return m.listCalendarsFunc(opt)
}

func (m *mockRepo) GetOneCalendar(ctx context.Context, opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
	if m.getOneCalendarFunc == nil {
		return calendar.Calendar{}, nil
	}
	return m.getOneCalendarFunc(opt)
}

func (m *mockRepo) UpsertCalendar(ctx context.Context, opt repo.UpsertCalendarOptions) (calendar.Calendar, bool, error) {
	m.upsertCalendarCalls++
	return calendar.Calendar{}, false, nil
}

func (m *mockRepo) SetCalendarFlags(ctx context.Context, opt repo.SetCalendarFlagsOptions) (calendar.Calendar, error) {
	if m.setFlagsFunc == nil {
		return calendar.Calendar{}, nil
	}
	return m.setFlagsFunc(opt)
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]calendar.Event, error) {
	if m.listEventsFunc == nil {
		return nil, nil
	}
	return m.listEventsFunc(opt)
}

func (m *mockRepo) GetOneEvent(ctx context.Context, gcalID, eventID string) (calendar.Event, error) {
	if m.getOneEventFunc == nil {
		return calendar.Event{}, nil
	}
	return m.getOneEventFunc(gcalID, eventID)
}

func (m *mockRepo) UpsertEvent(ctx context.Context, opt repo.UpsertEventOptions) (bool, error) {
	m.upsertEventCalls++
	if m.upsertEventFunc == nil {
		return true, nil
	}
	return m.upsertEventFunc(opt)
}

func (m *mockRepo) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	m.deleteEventCalls++
	if m.deleteEventFunc == nil {
		return nil
	}
	return m.deleteEventFunc(gcalID, eventID)
}

func editableCalendar(gcalID, name string) calendar.Calendar {
	return calendar.Calendar{
		GcalID:       gcalID,
		CalendarName: name,
		Edit:         true,
		LastModified: time.Now().UTC(),
	}
}

package sync

import (
	"context"
	stdsync "sync"
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

// fakeRemote implements remote.Client with per-method hooks.
type fakeRemote struct {
	listCalendarsFunc func(ctx context.Context) ([]remote.Calendar, error)
	listEventsFunc    func(ctx context.Context, gcalID string, w remote.Window, fn func(remote.Event) error) error
	getEventFunc      func(ctx context.Context, gcalID, eventID string) (remote.Event, error)
	createEventFunc   func(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error)
	updateEventFunc   func(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error)
	deleteEventFunc   func(ctx context.Context, gcalID, eventID string) error
}

func (f *fakeRemote) ListCalendars(ctx context.Context) ([]remote.Calendar, error) {
	if f.listCalendarsFunc == nil {
		return nil, nil
	}
	return f.listCalendarsFunc(ctx)
}

func (f *fakeRemote) ListEvents(ctx context.Context, gcalID string, w remote.Window, fn func(remote.Event) error) error {
	if f.listEventsFunc == nil {
		return nil
	}
	return f.listEventsFunc(ctx, gcalID, w, fn)
}

func (f *fakeRemote) GetEvent(ctx context.Context, gcalID, eventID string) (remote.Event, error) {
	if f.getEventFunc == nil {
		return remote.Event{}, nil
	}
	return f.getEventFunc(ctx, gcalID, eventID)
}

func (f *fakeRemote) CreateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	if f.createEventFunc == nil {
		return ev, nil
	}
	return f.createEventFunc(ctx, gcalID, ev)
}

func (f *fakeRemote) UpdateEvent(ctx context.Context, gcalID string, ev remote.Event) (remote.Event, error) {
	if f.updateEventFunc == nil {
		return ev, nil
	}
	return f.updateEventFunc(ctx, gcalID, ev)
}

func (f *fakeRemote) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	if f.deleteEventFunc == nil {
		return nil
	}
	return f.deleteEventFunc(ctx, gcalID, eventID)
}

type eventKey struct {
	gcalID  string
	eventID string
}

// memRepo is an in-memory Repository good enough for engine tests. It
// mirrors the store's contract: zero-value misses, unchanged upserts
// report changed=false, deletes of absent rows are no-ops.
type memRepo struct {
	mu        stdsync.Mutex
	calendars map[string]calendar.Calendar // by gcal_id
	events    map[eventKey]calendar.Event

	upsertEventCalls int
	deleteEventCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{
		calendars: make(map[string]calendar.Calendar),
		events:    make(map[eventKey]calendar.Event),
	}
}

func (m *memRepo) addCalendar(cal calendar.Calendar) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calendars[cal.GcalID] = cal
}

func (m *memRepo) ListCalendars(ctx context.Context, opt repo.ListCalendarsOptions) ([]calendar.Calendar, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []calendar.Calendar
	for _, cal := range m.calendars {
		if opt.SyncOnly && !cal.Sync {
			continue
		}
		if opt.DisplayOnly && !cal.Display {
			continue
		}
		if opt.MinModified != nil && cal.LastModified.Before(*opt.MinModified) {
			continue
		}
		out = append(out, cal)
	}
	return out, len(out), nil
}

func (m *memRepo) GetOneCalendar(ctx context.Context, opt repo.GetOneCalendarOptions) (calendar.Calendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cal := range m.calendars {
		if opt.GcalID != "" && cal.GcalID != opt.GcalID {
			continue
		}
		if opt.CalendarName != "" && cal.CalendarName != opt.CalendarName {
			continue
		}
		return cal, nil
	}
	return calendar.Calendar{}, nil
}

func (m *memRepo) UpsertCalendar(ctx context.Context, opt repo.UpsertCalendarOptions) (calendar.Calendar, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.calendars[opt.GcalID]
	if !ok {
		cal := calendar.Calendar{
			GcalID:       opt.GcalID,
			CalendarName: opt.CalendarName,
			GcalName:     opt.GcalName,
			Description:  opt.Description,
			Location:     opt.Location,
			Timezone:     opt.Timezone,
			LastModified: time.Now().UTC(),
		}
		m.calendars[opt.GcalID] = cal
		return cal, true, nil
	}
	if existing.GcalName == opt.GcalName && existing.Description == opt.Description &&
		existing.Location == opt.Location && existing.Timezone == opt.Timezone {
		return existing, false, nil
	}
	existing.GcalName = opt.GcalName
	existing.Description = opt.Description
	existing.Location = opt.Location
	existing.Timezone = opt.Timezone
	existing.LastModified = time.Now().UTC()
	m.calendars[opt.GcalID] = existing
	return existing, true, nil
}

func (m *memRepo) SetCalendarFlags(ctx context.Context, opt repo.SetCalendarFlagsOptions) (calendar.Calendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cal, ok := m.calendars[opt.GcalID]
	if !ok {
		return calendar.Calendar{}, nil
	}
	if opt.Sync != nil {
		cal.Sync = *opt.Sync
	}
	if opt.Display != nil {
		cal.Display = *opt.Display
	}
	if opt.Edit != nil {
		cal.Edit = *opt.Edit
	}
	cal.LastModified = time.Now().UTC()
	m.calendars[opt.GcalID] = cal
	return cal, nil
}

func (m *memRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]calendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []calendar.Event
	for _, ev := range m.events {
		if ev.GcalID != opt.GcalID {
			continue
		}
		if opt.MinTime != nil && ev.EndTime.Before(*opt.MinTime) {
			continue
		}
		if opt.MaxTime != nil && ev.StartTime.After(*opt.MaxTime) {
			continue
		}
		if opt.MinModified != nil && ev.LastModified.Before(*opt.MinModified) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (m *memRepo) GetOneEvent(ctx context.Context, gcalID, eventID string) (calendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events[eventKey{gcalID, eventID}], nil
}

func (m *memRepo) UpsertEvent(ctx context.Context, opt repo.UpsertEventOptions) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertEventCalls++
	key := eventKey{opt.GcalID, opt.EventID}
	existing, ok := m.events[key]
	if ok &&
		existing.StartTime.Equal(opt.StartTime) && existing.EndTime.Equal(opt.EndTime) &&
		existing.URL == opt.URL && existing.Name == opt.Name &&
		existing.Description == opt.Description && existing.LocationName == opt.LocationName {
		return false, nil
	}
	m.events[key] = calendar.Event{
		GcalID:       opt.GcalID,
		EventID:      opt.EventID,
		StartTime:    opt.StartTime,
		EndTime:      opt.EndTime,
		URL:          opt.URL,
		Name:         opt.Name,
		Description:  opt.Description,
		LocationName: opt.LocationName,
		LocationLat:  opt.LocationLat,
		LocationLon:  opt.LocationLon,
		LastModified: time.Now().UTC(),
	}
	return true, nil
}

func (m *memRepo) DeleteEvent(ctx context.Context, gcalID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteEventCalls++
	delete(m.events, eventKey{gcalID, eventID})
	return nil
}

func repoGetByGcalID(gcalID string) repo.GetOneCalendarOptions {
	return repo.GetOneCalendarOptions{GcalID: gcalID}
}

func (m *memRepo) eventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *memRepo) snapshotEvents() map[eventKey]calendar.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[eventKey]calendar.Event, len(m.events))
	for k, v := range m.events {
		out[k] = v
	}
	return out
}

func (m *memRepo) writeCounts() (upserts, deletes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertEventCalls, m.deleteEventCalls
}

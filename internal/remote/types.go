package remote

import "time"

// Calendar is a calendar descriptor as reported by the provider.
type Calendar struct {
	GcalID      string
	Summary     string
	Description string
	Location    string
	Timezone    string
	Deleted     bool
}

// Event is an event descriptor as reported by the provider.
type Event struct {
	EventID     string
	Name        string
	Description string
	URL         string
	Location    string
	Start       time.Time
	End         time.Time
	// Updated is the provider's last-modified timestamp for the event.
	Updated   time.Time
	Cancelled bool
}

// Partial reports whether a listing entry is missing fields that a live
// event must carry; such entries need a detail fetch before caching.
func (e Event) Partial() bool {
	return !e.Cancelled && (e.Name == "" || e.Start.IsZero() || e.End.IsZero())
}

// Window bounds an event listing. A zero bound means unbounded on that side;
// the zero Window lists everything.
type Window struct {
	Min time.Time
	Max time.Time
}

// IsZero reports whether the window is unbounded on both sides.
func (w Window) IsZero() bool {
	return w.Min.IsZero() && w.Max.IsZero()
}

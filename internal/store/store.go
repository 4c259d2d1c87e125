// Package store holds the company list and communication method catalog and
// keeps the derived dashboard, notification, and calendar views consistent
// with them. It is an explicit state container: every mutation runs to
// completion, then all three views are recomputed synchronously from the
// same snapshot before the mutation returns. Callers never observe a state
// where the store changed but a derived view did not.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/outreach-tracker/internal/calendar"
	"github.com/jonathan/outreach-tracker/internal/dashboard"
	"github.com/jonathan/outreach-tracker/internal/notify"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// Store is the in-memory company store plus cached derived views.
// The mutex exists because the HTTP layer serves reads and writes
// concurrently; each individual mutation is still a single synchronous
// computation.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	log zerolog.Logger

	companies  []types.Company
	methods    []types.CommunicationMethod
	highlights map[uuid.UUID]bool

	views          []types.CompanyView
	notifications  types.NotificationBuckets
	calendarEvents []types.CalendarEvent
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's notion of "today". Recomputation always
// reads the clock once per derivation pass.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a structured logger for mutation events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store seeded with the default communication method catalog
// and no companies. Derived views start empty but valid.
func New(opts ...Option) *Store {
	s := &Store{
		now:        time.Now,
		log:        zerolog.Nop(),
		methods:    types.DefaultMethods(),
		highlights: make(map[uuid.UUID]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	// Derivation over an empty company set cannot fail.
	_ = s.recompute()
	return s
}

// recompute rebuilds all three derived views from the current company set.
// Must be called with the write lock held, after every mutation. The views
// are regenerated wholesale, never patched, so they cannot drift from the
// materialized snapshot.
func (s *Store) recompute() error {
	today := s.now()

	views, err := dashboard.Materialize(s.companies, today)
	if err != nil {
		return err
	}
	for i := range views {
		views[i].HighlightDisabled = s.highlights[views[i].ID]
	}

	s.views = views
	s.notifications = notify.Aggregate(views, today)
	s.calendarEvents = calendar.Project(views)

	s.log.Debug().
		Int("companies", len(s.companies)).
		Int("overdue", len(s.notifications.Overdue)).
		Int("due_today", len(s.notifications.DueToday)).
		Int("calendar_events", len(s.calendarEvents)).
		Msg("derived views recomputed")
	return nil
}

// Dashboard returns the materialized company views.
func (s *Store) Dashboard() []types.CompanyView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.CompanyView, len(s.views))
	copy(out, s.views)
	return out
}

// Notifications returns the current overdue and due-today buckets.
func (s *Store) Notifications() types.NotificationBuckets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	buckets := types.NotificationBuckets{
		Overdue:  make([]types.NotificationEntry, len(s.notifications.Overdue)),
		DueToday: make([]types.NotificationEntry, len(s.notifications.DueToday)),
	}
	copy(buckets.Overdue, s.notifications.Overdue)
	copy(buckets.DueToday, s.notifications.DueToday)
	return buckets
}

// CalendarEvents returns the flat calendar projection.
func (s *Store) CalendarEvents() []types.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.CalendarEvent, len(s.calendarEvents))
	copy(out, s.calendarEvents)
	return out
}

// SetHighlight enables or disables status highlighting for one company's
// dashboard row.
func (s *Store) SetHighlight(companyID uuid.UUID, disabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCompany(companyID) == nil {
		return &ErrUnknownCompany{ID: companyID}
	}
	if disabled {
		s.highlights[companyID] = true
	} else {
		delete(s.highlights, companyID)
	}
	return s.recompute()
}

// findCompany returns a pointer into the companies slice, or nil.
// Must be called with the lock held.
func (s *Store) findCompany(id uuid.UUID) *types.Company {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return &s.companies[i]
		}
	}
	return nil
}

// Package session keeps the server-side state of open report pages.
// A session stands for one browser tab: its form controls, its notification
// area and its draft slot. Reloading the page re-attaches to the same
// session, which is how a held draft survives a reload.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/draft"
	"github.com/pkordes/trip-report/internal/form"
	"github.com/pkordes/trip-report/internal/notify"
	"github.com/pkordes/trip-report/internal/service"
)

// Session is one open report page.
type Session struct {
	ID uuid.UUID

	// mu serializes every action on the page, standing in for the browser's
	// single event loop.
	mu        sync.Mutex
	surface   *form.MemorySurface
	form      *form.Accessor
	status    *notify.StatusRegion
	presenter *notify.Presenter
	report    *service.ReportService
	lastSeen  time.Time
}

// Page is the view of a session handed to callers inside Do.
type Page struct {
	Surface *form.MemorySurface
	Form    *form.Accessor
	Report  *service.ReportService
}

// Do runs fn with exclusive access to the page.
func (s *Session) Do(fn func(p Page) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(Page{Surface: s.surface, Form: s.form, Report: s.report})
}

// Status returns what the notification area currently shows.
func (s *Session) Status() notify.Status {
	return s.status.Snapshot()
}

// Options configures the sessions a Registry creates.
type Options struct {
	// NotifyDuration is how long notifications stay visible.
	NotifyDuration time.Duration
	// TTL is how long an untouched session is kept. Zero keeps sessions forever.
	TTL time.Duration
	// Location is the zone export filenames are stamped in.
	Location *time.Location
	// Scheduler drives notification timers; nil uses the wall clock.
	Scheduler notify.Scheduler
	// Now is the clock used for expiry and filenames; nil uses time.Now.
	Now func() time.Time
	// Validator checks required fields on submit; nil builds the default
	// service.Validator. It is shared by every session.
	Validator service.RecordValidator
}

// Registry holds the open sessions in memory.
type Registry struct {
	opts Options
	log  *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry constructs an empty Registry. A nil logger uses slog.Default.
func NewRegistry(opts Options, log *slog.Logger) (*Registry, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Validator == nil {
		v, err := service.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("session.NewRegistry: %w", err)
		}
		opts.Validator = v
	}
	if log == nil {
		log = slog.Default()
	}
	return &Registry{opts: opts, log: log, sessions: make(map[uuid.UUID]*Session)}, nil
}

// Create opens a new session with an empty form and no draft.
func (r *Registry) Create() *Session {
	surface := form.NewMemorySurface()
	acc := form.NewAccessor(surface)
	status := &notify.StatusRegion{}
	presenter := notify.NewPresenter(status, r.opts.NotifyDuration, r.opts.Scheduler)

	s := &Session{
		ID:        uuid.New(),
		surface:   surface,
		form:      acc,
		status:    status,
		presenter: presenter,
		lastSeen:  r.opts.Now(),
	}
	s.report = service.NewReportService(
		acc,
		draft.New(),
		presenter,
		service.NewCSVExporter(r.opts.Location, r.opts.Now),
		r.opts.Validator,
		r.log.With("session_id", s.ID.String()),
	)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given id and marks it as used.
// Returns domain.ErrNotFound if it does not exist or has expired.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session.Registry.Get: %w", domain.ErrNotFound)
	}
	s.lastSeen = r.opts.Now()
	return s, nil
}

// Delete closes and forgets a session, dropping its draft.
// Returns domain.ErrNotFound if it does not exist.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("session.Registry.Delete: %w", domain.ErrNotFound)
	}
	s.presenter.Close()
	return nil
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	if r.opts.TTL <= 0 {
		return 0
	}
	cutoff := r.opts.Now().Add(-r.opts.TTL)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.presenter.Close()
	}
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.InfoContext(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

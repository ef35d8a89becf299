// Package handler implements the HTTP API of the trip report service.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by concern (health.go, session.go, form.go,
// report.go) but share the same Server struct so they can reach its
// dependencies.
package handler

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-report/internal/handler/gen"
	"github.com/pkordes/trip-report/internal/session"
)

// SessionStore is the set of open report pages the handlers act on.
// *session.Registry satisfies it.
type SessionStore interface {
	Create() *session.Session
	Get(id uuid.UUID) (*session.Session, error)
	Delete(id uuid.UUID) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, server.StrictOptions()).
type Server struct {
	sessions SessionStore
	log      *slog.Logger
}

// compile-time check.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger uses slog.Default.
func NewServer(sessions SessionStore, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{sessions: sessions, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/handler/gen"
	"github.com/pkordes/trip-report/internal/notify"
)

const sessionNotFound = "session not found"

// ListFields handles GET /fields.
func (s *Server) ListFields(_ context.Context, _ gen.ListFieldsRequestObject) (gen.ListFieldsResponseObject, error) {
	fields := domain.Fields()
	out := make(gen.ListFields200JSONResponse, len(fields))
	for i, f := range fields {
		out[i] = gen.Field{Id: string(f.ID), Header: f.Header, Required: f.Required}
	}
	return out, nil
}

// CreateSession handles POST /sessions. The page calls it once and keeps the
// id across reloads.
func (s *Server) CreateSession(ctx context.Context, _ gen.CreateSessionRequestObject) (gen.CreateSessionResponseObject, error) {
	sess := s.sessions.Create()
	s.log.InfoContext(ctx, "session created", "session_id", sess.ID.String())
	return gen.CreateSession201JSONResponse{Id: sess.ID}, nil
}

// DeleteSession handles DELETE /sessions/{sessionId}. The held draft is lost.
func (s *Server) DeleteSession(_ context.Context, req gen.DeleteSessionRequestObject) (gen.DeleteSessionResponseObject, error) {
	if err := s.sessions.Delete(req.SessionId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteSession404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}
	return gen.DeleteSession204Response{}, nil
}

// GetNotification handles GET /sessions/{sessionId}/notification.
func (s *Server) GetNotification(_ context.Context, req gen.GetNotificationRequestObject) (gen.GetNotificationResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetNotification404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}
	return gen.GetNotification200JSONResponse(statusToResponse(sess.Status())), nil
}

// --- mapping helpers --------------------------------------------------------

// statusToResponse maps the notification area to its API shape. The kind is
// omitted until the first notification has been shown.
func statusToResponse(st notify.Status) gen.Status {
	out := gen.Status{Text: st.Text, Visible: st.Visible}
	if st.Kind != "" {
		kind := string(st.Kind)
		out.Kind = &kind
	}
	return out
}

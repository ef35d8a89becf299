package handler

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/form"
	"github.com/pkordes/trip-report/internal/handler/gen"
	"github.com/pkordes/trip-report/internal/session"
)

// GetForm handles GET /sessions/{sessionId}/form.
func (s *Server) GetForm(_ context.Context, req gen.GetFormRequestObject) (gen.GetFormResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetForm404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	var resp gen.GetForm200JSONResponse
	//nolint:errcheck // the callback never fails
	sess.Do(func(p session.Page) error {
		resp.Controls = controlsToResponse(p.Surface.Snapshot())
		return nil
	})
	return resp, nil
}

// UpdateForm handles PATCH /sessions/{sessionId}/form.
// The body maps field ids to the values the user typed. Fields not named are
// left alone; a non-blank value clears the field's error highlight.
func (s *Server) UpdateForm(_ context.Context, req gen.UpdateFormRequestObject) (gen.UpdateFormResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateForm404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	var body gen.FormValues
	if req.Body != nil {
		body = *req.Body
	}
	if unknown := unknownFields(body); len(unknown) > 0 {
		return gen.UpdateForm422JSONResponse(validationBody("unknown fields: " + strings.Join(unknown, ", "))), nil
	}

	var resp gen.UpdateForm200JSONResponse
	//nolint:errcheck // the callback never fails
	sess.Do(func(p session.Page) error {
		for _, id := range domain.FieldIDs() {
			if v, present := body[string(id)]; present {
				p.Form.Input(id, v)
			}
		}
		resp.Controls = controlsToResponse(p.Surface.Snapshot())
		return nil
	})
	return resp, nil
}

// --- mapping helpers --------------------------------------------------------

// unknownFields returns the sorted keys of body that are not schema fields.
func unknownFields(body gen.FormValues) []string {
	var out []string
	for id := range body {
		if _, ok := domain.LookupField(domain.FieldID(id)); !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// controlsToResponse maps control snapshots to the API shape. An unflagged
// control carries no border_color.
func controlsToResponse(states []form.ControlState) []gen.ControlState {
	out := make([]gen.ControlState, len(states))
	for i, st := range states {
		out[i] = gen.ControlState{Id: string(st.ID), Value: st.Value}
		if st.BorderColor != "" {
			border := st.BorderColor
			out[i].BorderColor = &border
		}
	}
	return out
}

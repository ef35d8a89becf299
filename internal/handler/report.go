package handler

import (
	"bytes"
	"context"
	"errors"
	"mime"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/handler/gen"
	"github.com/pkordes/trip-report/internal/notify"
	"github.com/pkordes/trip-report/internal/service"
	"github.com/pkordes/trip-report/internal/session"
)

// promptError carries the pending question out of a Confirmer.
type promptError struct {
	prompt string
}

func (e *promptError) Error() string { return "confirmation required: " + e.prompt }

func (e *promptError) Unwrap() error { return domain.ErrConfirmationRequired }

// queryConfirmer answers prompts from the ?confirm= parameter. Without an
// answer it fails with a promptError so the client can ask the user and
// repeat the request.
func queryConfirmer(answer *bool) service.Confirmer {
	return func(_ context.Context, prompt string) (bool, error) {
		if answer == nil {
			return false, &promptError{prompt: prompt}
		}
		return *answer, nil
	}
}

// attachment hands an exported file to the client as the submit response.
type attachment struct {
	resp gen.SubmitResponseObject
}

// Download implements service.Downloader. The file is streamed once the
// handler returns, with a Content-Disposition that names it.
func (a *attachment) Download(_ context.Context, f domain.CSVFile) error {
	a.resp = gen.Submit200TextcsvResponse{
		Body:          bytes.NewReader(f.Content),
		ContentLength: int64(len(f.Content)),
		Headers: gen.Submit200ResponseHeaders{
			ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": f.Filename}),
		},
	}
	return nil
}

// confirmedAction is a button action that may ask the user first.
type confirmedAction func(ctx context.Context, p session.Page, c service.Confirmer) (bool, error)

// runConfirmed runs action on the page, answering its prompt from confirm.
// A non-empty prompt means the user still has to answer and nothing changed.
func runConfirmed(ctx context.Context, sess *session.Session, confirm *bool, action confirmedAction) (done bool, prompt string, err error) {
	err = sess.Do(func(p session.Page) error {
		var err error
		done, err = action(ctx, p, queryConfirmer(confirm))
		return err
	})
	var pe *promptError
	if errors.As(err, &pe) {
		return false, pe.prompt, nil
	}
	return done, "", err
}

// LoadPage handles POST /sessions/{sessionId}/load, sent by the page once it
// has loaded. When a draft is held the user is asked whether to restore it.
func (s *Server) LoadPage(ctx context.Context, req gen.LoadPageRequestObject) (gen.LoadPageResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.LoadPage404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	done, prompt, err := runConfirmed(ctx, sess, req.Params.Confirm,
		func(ctx context.Context, p session.Page, c service.Confirmer) (bool, error) {
			return p.Report.RestoreDraft(ctx, c)
		})
	if err != nil {
		return nil, err
	}
	if prompt != "" {
		return gen.LoadPage428JSONResponse(confirmationBody(prompt)), nil
	}
	return gen.LoadPage200JSONResponse(actionToResponse(done, sess.Status())), nil
}

// ClearForm handles POST /sessions/{sessionId}/clear.
func (s *Server) ClearForm(ctx context.Context, req gen.ClearFormRequestObject) (gen.ClearFormResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ClearForm404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	done, prompt, err := runConfirmed(ctx, sess, req.Params.Confirm,
		func(ctx context.Context, p session.Page, c service.Confirmer) (bool, error) {
			return p.Report.Clear(ctx, c)
		})
	if err != nil {
		return nil, err
	}
	if prompt != "" {
		return gen.ClearForm428JSONResponse(confirmationBody(prompt)), nil
	}
	return gen.ClearForm200JSONResponse(actionToResponse(done, sess.Status())), nil
}

// SaveDraft handles POST /sessions/{sessionId}/draft.
func (s *Server) SaveDraft(ctx context.Context, req gen.SaveDraftRequestObject) (gen.SaveDraftResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SaveDraft404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	err = sess.Do(func(p session.Page) error {
		return p.Report.SaveDraft(ctx)
	})
	if err != nil {
		return nil, err
	}
	return gen.SaveDraft200JSONResponse(actionToResponse(true, sess.Status())), nil
}

// Submit handles POST /sessions/{sessionId}/submit.
// On success the response is the CSV report as an attachment. Empty required
// fields yield 422 with the validation outcome; an export failure yields 500
// with the message the user was shown.
func (s *Server) Submit(ctx context.Context, req gen.SubmitRequestObject) (gen.SubmitResponseObject, error) {
	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.Submit404JSONResponse(notFoundBody(sessionNotFound)), nil
		}
		return nil, err
	}

	dl := &attachment{}
	err = sess.Do(func(p session.Page) error {
		return p.Report.Submit(ctx, dl)
	})

	var verr *service.ValidationError
	switch {
	case err == nil:
		return dl.resp, nil
	case errors.As(err, &verr):
		return gen.Submit422JSONResponse{
			Error:   gen.ErrorDetail{Code: "validation_error", Message: service.MissingFieldsMessage(verr.Outcome)},
			Outcome: outcomeToResponse(verr.Outcome),
		}, nil
	case errors.Is(err, domain.ErrExport):
		return gen.Submit500JSONResponse{
			Error: gen.ErrorDetail{Code: "export_failed", Message: domain.MsgExportFailed},
		}, nil
	default:
		return nil, err
	}
}

// --- mapping helpers --------------------------------------------------------

func actionToResponse(done bool, st notify.Status) gen.ActionResponse {
	return gen.ActionResponse{Done: done, Notification: statusToResponse(st)}
}

func outcomeToResponse(o domain.ValidationOutcome) gen.ValidationOutcome {
	failed := make([]string, len(o.Failed))
	for i, id := range o.Failed {
		failed[i] = string(id)
	}
	missing := make([]string, len(o.Missing))
	copy(missing, o.Missing)
	return gen.ValidationOutcome{Valid: o.Valid, Missing: missing, Failed: failed}
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/trip-report/internal/domain"
)

// FormAccessor reads and writes the on-screen form.
// *form.Accessor satisfies it.
type FormAccessor interface {
	Read() domain.FormRecord
	Write(rec domain.FormRecord)
	ApplyValidation(outcome domain.ValidationOutcome)
	Reset()
}

// DraftStore is the single draft slot. *draft.Store satisfies it.
type DraftStore interface {
	Save(ctx context.Context, rec domain.FormRecord) error
	Load() (domain.FormRecord, bool)
}

// Notifier posts a transient status message. *notify.Presenter satisfies it.
type Notifier interface {
	Notify(message string, kind domain.NotificationKind)
}

// RecordValidator checks the required fields of a record. *Validator
// satisfies it.
type RecordValidator interface {
	Validate(rec domain.FormRecord) domain.ValidationOutcome
}

// Exporter turns a record into a downloadable file. *CSVExporter satisfies it.
type Exporter interface {
	Build(rec domain.FormRecord) (domain.CSVFile, error)
}

// Downloader hands a generated file to the user, e.g. as an HTTP attachment.
type Downloader interface {
	Download(ctx context.Context, f domain.CSVFile) error
}

// Confirmer asks the user a yes/no question. It may block until the answer
// arrives or return an error such as domain.ErrConfirmationRequired when the
// answer is not available yet.
type Confirmer func(ctx context.Context, prompt string) (bool, error)

// ValidationError reports the required fields that were empty at submit.
// It matches domain.ErrValidation with errors.Is.
type ValidationError struct {
	Outcome domain.ValidationOutcome
}

func (e *ValidationError) Error() string {
	return "validation error: missing " + strings.Join(e.Outcome.Missing, ", ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// ReportService is the controller behind the form's buttons. It owns one
// form, one draft slot and one notification area; callers serialize calls
// the way a page's event loop would.
type ReportService struct {
	form      FormAccessor
	drafts    DraftStore
	notifier  Notifier
	exporter  Exporter
	validator RecordValidator
	log       *slog.Logger
}

// NewReportService constructs a ReportService. A nil logger uses slog.Default.
func NewReportService(form FormAccessor, drafts DraftStore, n Notifier, exp Exporter, v RecordValidator, log *slog.Logger) *ReportService {
	if log == nil {
		log = slog.Default()
	}
	return &ReportService{form: form, drafts: drafts, notifier: n, exporter: exp, validator: v, log: log}
}

// Submit validates the form and, when every required field is filled,
// exports it through dl.
//
// On missing fields the controls are flagged, the user is notified and a
// *ValidationError is returned. On export failure the cause is logged, the
// user gets a generic message and the returned error wraps domain.ErrExport.
// The form contents are kept in both cases.
func (s *ReportService) Submit(ctx context.Context, dl Downloader) error {
	rec := s.form.Read()

	outcome := s.validator.Validate(rec)
	s.form.ApplyValidation(outcome)
	if !outcome.Valid {
		s.notifier.Notify(MissingFieldsMessage(outcome), domain.KindError)
		return &ValidationError{Outcome: outcome}
	}

	if err := s.export(ctx, rec, dl); err != nil {
		s.log.ErrorContext(ctx, "export error", "error", err)
		s.notifier.Notify(domain.MsgExportFailed, domain.KindError)
		return fmt.Errorf("service.ReportService.Submit: %w: %w", domain.ErrExport, err)
	}

	s.notifier.Notify(domain.MsgExportSucceeded, domain.KindSuccess)
	return nil
}

func (s *ReportService) export(ctx context.Context, rec domain.FormRecord, dl Downloader) error {
	f, err := s.exporter.Build(rec)
	if err != nil {
		return err
	}
	return dl.Download(ctx, f)
}

// Clear empties the form after the user confirms. It reports whether the
// form was cleared; a declined prompt changes nothing.
func (s *ReportService) Clear(ctx context.Context, confirm Confirmer) (bool, error) {
	ok, err := confirm(ctx, domain.PromptClearForm)
	if err != nil {
		return false, fmt.Errorf("service.ReportService.Clear: %w", err)
	}
	if !ok {
		return false, nil
	}

	s.form.Reset()
	s.notifier.Notify(domain.MsgFormCleared, domain.KindInfo)
	return true, nil
}

// SaveDraft stores the current form contents, replacing any previous draft.
func (s *ReportService) SaveDraft(ctx context.Context) error {
	if err := s.drafts.Save(ctx, s.form.Read()); err != nil {
		return fmt.Errorf("service.ReportService.SaveDraft: %w", err)
	}
	s.notifier.Notify(domain.MsgDraftSaved, domain.KindSuccess)
	return nil
}

// RestoreDraft runs at page load. When a draft is held it asks the user
// whether to restore it and, on yes, copies it into the form. The draft
// stays held afterwards. It reports whether the form was restored.
func (s *ReportService) RestoreDraft(ctx context.Context, confirm Confirmer) (bool, error) {
	rec, ok := s.drafts.Load()
	if !ok {
		return false, nil
	}

	yes, err := confirm(ctx, domain.PromptRestoreDraft)
	if err != nil {
		return false, fmt.Errorf("service.ReportService.RestoreDraft: %w", err)
	}
	if !yes {
		return false, nil
	}

	s.form.Write(rec)
	s.notifier.Notify(domain.MsgDraftRestored, domain.KindInfo)
	return true, nil
}

// Package form reads and writes the report fields of a rendered form.
// The markup itself lives elsewhere; this package only sees controls through
// the Control handles a Surface hands out.
package form

import (
	"strings"

	"github.com/pkordes/trip-report/internal/domain"
)

// ErrorBorderColor is the border colour applied to an empty required control.
const ErrorBorderColor = "var(--color-error)"

// Control is a handle to one input control.
type Control interface {
	Value() string
	SetValue(v string)
	BorderColor() string
	SetBorderColor(c string)
}

// Surface resolves field ids to controls. A surface may not render every
// field; Control reports false for the ones it lacks.
type Surface interface {
	Control(id domain.FieldID) (Control, bool)
}

// Accessor moves values between a FormRecord and the controls of a Surface.
// Handles are resolved once in NewAccessor.
type Accessor struct {
	controls map[domain.FieldID]Control
}

// NewAccessor resolves a handle for every schema field the surface renders.
func NewAccessor(s Surface) *Accessor {
	a := &Accessor{controls: make(map[domain.FieldID]Control)}
	for _, id := range domain.FieldIDs() {
		if c, ok := s.Control(id); ok && c != nil {
			a.controls[id] = c
		}
	}
	return a
}

// Read returns the current value of every schema field.
// Fields without a control read as "".
func (a *Accessor) Read() domain.FormRecord {
	rec := make(domain.FormRecord, len(a.controls))
	for _, id := range domain.FieldIDs() {
		if c, ok := a.controls[id]; ok {
			rec[id] = c.Value()
			continue
		}
		rec[id] = ""
	}
	return rec
}

// Write sets the controls for the fields present in rec.
// Fields absent from rec are left untouched.
func (a *Accessor) Write(rec domain.FormRecord) {
	for _, id := range domain.FieldIDs() {
		v, present := rec[id]
		if !present {
			continue
		}
		if c, ok := a.controls[id]; ok {
			c.SetValue(v)
		}
	}
}

// Input applies a value typed by the user. A non-blank value clears any
// error border left by a failed submit; a blank one keeps it.
// Returns false when the field has no control.
func (a *Accessor) Input(id domain.FieldID, v string) bool {
	c, ok := a.controls[id]
	if !ok {
		return false
	}
	c.SetValue(v)
	if strings.TrimSpace(v) != "" {
		c.SetBorderColor("")
	}
	return true
}

// ApplyValidation flags the controls of failed required fields and clears
// the flag on the required fields that passed.
func (a *Accessor) ApplyValidation(outcome domain.ValidationOutcome) {
	failed := make(map[domain.FieldID]bool, len(outcome.Failed))
	for _, id := range outcome.Failed {
		failed[id] = true
	}
	for _, f := range domain.RequiredFields() {
		c, ok := a.controls[f.ID]
		if !ok {
			continue
		}
		if failed[f.ID] {
			c.SetBorderColor(ErrorBorderColor)
		} else {
			c.SetBorderColor("")
		}
	}
}

// Reset empties every control and removes validation styling.
func (a *Accessor) Reset() {
	for _, c := range a.controls {
		c.SetValue("")
		c.SetBorderColor("")
	}
}

// Package service contains the business logic of the trip report form:
// required-field validation, CSV generation and the report controller that
// ties the form, the draft slot and the notification area together.
package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-report/internal/domain"
)

// nonBlankTag is the validator rule for required report fields.
const nonBlankTag = "nonblank"

// Validator checks the required report fields. It holds no per-call state
// and is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// NewValidator constructs a Validator with the nonblank rule registered.
func NewValidator() (*Validator, error) {
	v := validator.New()
	if err := v.RegisterValidation(nonBlankTag, nonBlank); err != nil {
		return nil, fmt.Errorf("service.NewValidator: %w", err)
	}
	return &Validator{v: v}, nil
}

// nonBlank fails for values that are empty after trimming whitespace.
func nonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks the required fields of rec in schema order.
// It has no side effects; flagging controls and notifying the user is left
// to the caller.
func (v *Validator) Validate(rec domain.FormRecord) domain.ValidationOutcome {
	out := domain.ValidationOutcome{
		Valid:   true,
		Missing: []string{},
		Failed:  []domain.FieldID{},
	}
	for _, f := range domain.RequiredFields() {
		if err := v.v.Var(rec[f.ID], nonBlankTag); err != nil {
			out.Valid = false
			out.Missing = append(out.Missing, f.Header)
			out.Failed = append(out.Failed, f.ID)
		}
	}
	return out
}

// MissingFieldsMessage builds the aggregated error shown when required
// fields are empty.
func MissingFieldsMessage(o domain.ValidationOutcome) string {
	return domain.MsgMissingRequired + strings.Join(o.Missing, ", ")
}

package domain

import "errors"

// ErrNotFound is returned when the requested session does not exist or has expired.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when required report fields are empty, or when
// request input names fields outside the schema.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrExport is returned when the CSV file could not be built or handed to the
// download mechanism. The user has already been notified when it surfaces.
var ErrExport = errors.New("export failed")

// ErrConfirmationRequired is returned by a Confirmer that has no answer yet.
// Handlers should map this to HTTP 428 and echo the prompt back.
var ErrConfirmationRequired = errors.New("confirmation required")

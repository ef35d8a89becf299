package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/trip-report/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for input that breaks a form rule.
func validationBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// requestBody returns an ErrorResponse for a request rejected before it
// reached the form (malformed path, query or body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "bad_request", Message: message}}
}

// confirmationBody carries the question the user has to answer before the
// request can be repeated with ?confirm=.
func confirmationBody(prompt string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "confirmation_required", Message: prompt}}
}

func internalBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "internal_error", Message: message}}
}

// StrictOptions replaces the generated plain-text error replies with the
// JSON envelope every other response uses.
func (s *Server) StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	}
}

// ParamError answers a path or query parameter that failed to bind.
// Pass it as gen.ChiServerOptions.ErrorHandlerFunc.
func (s *Server) ParamError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
}

// requestError answers a body the generated handler could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON object of field values"))
}

// responseError logs a handler failure and answers 500. When the failure
// happened while streaming a body the status line is already sent and the
// extra write is dropped by net/http.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, internalBody("internal server error"))
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client is gone if this fails
	json.NewEncoder(w).Encode(v)
}

// Package httpoutcome renders outcomes as JSON HTTP responses.
//
// Successful outcomes become 204 No Content, or the chosen status with the
// value as body. Failed outcomes are rendered from their first error only:
// its status code selects the response status and its code, message and
// optional details form the body.
//
// Example:
//
//	resp := httpoutcome.NewResponder(log)
//	httpoutcome.WriteValue(resp, w, svc.Get(id), http.StatusOK)
package httpoutcome

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Kotrecon/result-pattern/outcome"
)

const contentType = "application/json"

// Body is the JSON shape of a failure response.
type Body struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// BodyOf builds the failure body for err, surfacing details when err
// carries them.
func BodyOf(err outcome.Error) Body {
	body := Body{Code: err.Code(), Message: err.Message()}
	if details, ok := outcome.DetailsOf(err); ok && len(details) > 0 {
		body.Details = details
	}
	return body
}

// StatusOf returns the HTTP status for err. Values outside the valid HTTP
// range map to 500.
func StatusOf(err outcome.Error) int {
	status := err.StatusCode()
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// Responder writes outcomes to HTTP responses.
type Responder struct {
	log zerolog.Logger
}

// NewResponder returns a Responder logging failures to log.
func NewResponder(log zerolog.Logger) *Responder {
	return &Responder{log: log.With().Str("component", "httpoutcome").Logger()}
}

// Write renders a value-less outcome.
func (r *Responder) Write(w http.ResponseWriter, o outcome.Outcome) {
	if err := o.FirstError(); err != nil {
		r.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WriteValue renders o, encoding the value with status on success.
func WriteValue[T any](r *Responder, w http.ResponseWriter, o outcome.Of[T], status int) {
	if err := o.FirstError(); err != nil {
		r.fail(w, err)
		return
	}
	r.encode(w, status, o.Value())
}

func (r *Responder) fail(w http.ResponseWriter, err outcome.Error) {
	status := StatusOf(err)
	r.log.Debug().
		Int("status", status).
		Str("error_code", err.Code()).
		Msg(err.Message())
	r.encode(w, status, BodyOf(err))
}

func (r *Responder) encode(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		r.log.Warn().Err(err).Msg("failed to encode response")
	}
}

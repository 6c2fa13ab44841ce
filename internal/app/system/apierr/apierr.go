// Package apierr renders API errors as stable JSON bodies. Handlers log the
// underlying error with zap and send the client only what it needs; internal
// details never leave the process.
package apierr

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the wire shape of every error body.
type Response struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Write sends a JSON error with the given status.
func Write(w http.ResponseWriter, status int, msg string) {
	WriteDetail(w, status, msg, "")
}

// WriteDetail sends a JSON error with an extra detail line.
func WriteDetail(w http.ResponseWriter, status int, msg, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: msg, Detail: detail})
}

// BadRequest reports a malformed request.
func BadRequest(w http.ResponseWriter, msg string) {
	Write(w, http.StatusBadRequest, msg)
}

// NotFound reports a missing resource.
func NotFound(w http.ResponseWriter, msg string) {
	Write(w, http.StatusNotFound, msg)
}

// Forbidden reports a locked or denied resource.
func Forbidden(w http.ResponseWriter, msg string) {
	Write(w, http.StatusForbidden, msg)
}

// Unprocessable reports a well-formed request whose payload cannot be
// processed, such as a lesson document that fails schema validation.
func Unprocessable(w http.ResponseWriter, msg, detail string) {
	WriteDetail(w, http.StatusUnprocessableEntity, msg, detail)
}

// Internal logs the error and sends a generic 500 body.
func Internal(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	if logger != nil {
		logger.Error("internal error", zap.String("op", op), zap.Error(err))
	}
	Write(w, http.StatusInternalServerError, "internal error")
}

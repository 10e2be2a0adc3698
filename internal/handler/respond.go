// Package handler provides shared helpers for HTTP handlers: JSON encoding,
// request decoding, and mapping domain errors to HTTP status codes.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/novella/internal/domain"
)

// ErrorResponse is the JSON envelope for error replies.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Default().Error("encode response", "error", err)
	}
}

// NoContent writes a 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes err as a JSON error response. Domain errors map to their
// HTTP status; anything else becomes an opaque 500 so internals don't leak.
func Error(w http.ResponseWriter, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)

	status := statusFromCode(code)
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	JSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// Decode reads a JSON request body into v.
// Unknown fields are tolerated; malformed JSON becomes an EINVALID error.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return &domain.Error{Code: domain.ETOOLARGE, Message: "Request body too large", Op: "handler.Decode", Err: err}
		}
		return &domain.Error{Code: domain.EINVALID, Message: "Invalid JSON body", Op: "handler.Decode", Err: err}
	}
	return nil
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge
	case domain.ENOTIMPL:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

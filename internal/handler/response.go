package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck-go/internal/repository"
	"github.com/taskdeck/taskdeck-go/internal/service"
	"github.com/taskdeck/taskdeck-go/internal/validate"
)

// Response is the success envelope every endpoint returns: the HTTP status
// code echoed in the body, a human-readable message and the payload.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse is the error envelope. It carries no data field.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Status: status, Message: message, Data: data})
}

// writeError maps a service error to its HTTP status. Every endpoint funnels
// failures through here so the same error always produces the same response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrTodoNotFound):
		writeErrorStatus(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		writeErrorStatus(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserIDTaken), validate.IsValidationError(err):
		writeErrorStatus(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("unhandled service error", "error", err)
		writeErrorStatus(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeErrorStatus(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeErrorStatus(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

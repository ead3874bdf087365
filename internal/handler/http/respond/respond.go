// Package respond provides utilities for sending HTTP responses in the
// JSON envelope {success, message, data|error}. Error responses are
// sanitized so internal details never reach the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pressroom/internal/domain/entity"
)

// Envelope is the uniform response body shape.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a JSON response with the given status code and body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes a success envelope with optional message and data.
func Success(w http.ResponseWriter, code int, message string, data any) {
	JSON(w, code, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with the given client-facing message.
func Fail(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope{Error: message})
}

// Error writes a failure envelope with the error's message.
func Error(w http.ResponseWriter, code int, err error) {
	Fail(w, code, err.Error())
}

// SafeError returns the error message to the client only when it is known to
// be safe: validation errors and AppError user messages pass through, 5xx and
// everything else collapse to a generic message with details logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		Fail(w, appErr.Code, appErr.UserMsg)
		return
	}

	var verr *entity.ValidationError
	if code < 500 && errors.As(err, &verr) {
		Fail(w, code, verr.Error())
		return
	}
	if code < 500 {
		Fail(w, code, err.Error())
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Fail(w, code, "internal server error")
}

// AppError is an error type that carries a user-facing message separate from
// the internal cause.
type AppError struct {
	UserMsg string
	Err     error
	Code    int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Address    string    `json:"address,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		"NOT_FOUND",
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		"UNAUTHORIZED",
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewNoActiveGameError creates the failure returned when hit/stand arrive
// with no ongoing game to act on
func NewNoActiveGameError(address string) *AppError {
	appErr := NewAppError(
		ErrCodeNoActiveGame,
		"No active game found for player",
		http.StatusNotFound,
		nil,
	)
	appErr.Address = address
	return appErr
}

// NewGameAlreadyFinishedError creates the failure returned for actions
// against a terminal game
func NewGameAlreadyFinishedError(gameID int64) *AppError {
	return NewAppError(
		ErrCodeGameAlreadyFinished,
		fmt.Sprintf("Game %d is already finished", gameID),
		http.StatusConflict,
		nil,
	)
}

// NewConcurrentModificationError creates the retryable failure returned when
// a stale write loses an optimistic concurrency check
func NewConcurrentModificationError(gameID int64) *AppError {
	return NewAppError(
		ErrCodeConcurrentModification,
		fmt.Sprintf("Game %d was modified by another request", gameID),
		http.StatusConflict,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		"DATABASE_ERROR",
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// NewStoreUnavailableError creates a transient store failure that the caller
// may retry with backoff
func NewStoreUnavailableError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeStoreUnavailable,
		fmt.Sprintf("Store temporarily unavailable: %s", operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service, operation string, err error) *AppError {
	return NewAppError(
		"EXTERNAL_SERVICE_ERROR",
		fmt.Sprintf("External service '%s' operation '%s' failed", service, operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorCode checks if an error is an AppError carrying the given code
func IsErrorCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"

	ErrCodePlayerNotFound = "PLAYER_NOT_FOUND"

	// ErrCodeActiveGameExists recoverable, the existing game is returned
	ErrCodeActiveGameExists = "ACTIVE_GAME_EXISTS"
	// ErrCodeNoActiveGame caller error, no game to act on
	ErrCodeNoActiveGame = "NO_ACTIVE_GAME"
	// ErrCodeGameAlreadyFinished caller error, stale action against a terminal game
	ErrCodeGameAlreadyFinished = "GAME_ALREADY_FINISHED"
	// ErrCodeDeckExhausted fatal internal invariant violation
	ErrCodeDeckExhausted = "DECK_EXHAUSTED"
	// ErrCodeConcurrentModification recoverable, retry with a fresh read
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
	// ErrCodeStoreUnavailable recoverable with backoff
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"

	ErrCodeRequiredField = "REQUIRED_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeInvalidRange  = "INVALID_RANGE"

	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
	ErrCodeFrameServiceError  = "FRAME_SERVICE_ERROR"
	ErrCodeLockTimeout        = "LOCK_TIMEOUT"
)

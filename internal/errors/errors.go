package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required registration field is empty.
	ErrMissingFields = errors.New("full name, email and password are required")
	// ErrInvalidEmail is returned when an email fails the address pattern.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned when a password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrEmptyAnnouncement is returned when an announcement has no title or content.
	ErrEmptyAnnouncement = errors.New("title and content are required")
	// ErrNotAuthenticated is returned when an operation requires a session.
	ErrNotAuthenticated = errors.New("authentication required")
	// ErrAdminOnly is returned when an operation requires an admin session.
	ErrAdminOnly = errors.New("admin privileges required")
	// ErrMemberNotFound is returned when a member lookup misses.
	ErrMemberNotFound = errors.New("member not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrMissingFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case ErrInvalidEmail:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case ErrPasswordTooShort:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case ErrEmptyAnnouncement:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_ANNOUNCEMENT")
	case ErrNotAuthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case ErrAdminOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case ErrMemberNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

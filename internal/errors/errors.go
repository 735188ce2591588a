package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token fails validation or
	// no longer maps to an existing user.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInactiveAccount is returned when a deactivated account calls an
	// authenticated endpoint.
	ErrInactiveAccount = errors.New("account is deactivated")
	// ErrForbidden is returned on role or ownership denial.
	ErrForbidden = errors.New("not enough permissions")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when an alumni profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrSubscriberNotFound is returned when an email has no subscriber row.
	ErrSubscriberNotFound = errors.New("email not found in subscribers")
	// ErrEmailTaken is returned when registering with an email that is in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrProfileExists is returned when a user already has a profile.
	ErrProfileExists = errors.New("profile already exists")
	// ErrSelfToggle is returned when an admin tries to toggle their own account.
	ErrSelfToggle = errors.New("cannot deactivate yourself")
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
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case ErrInactiveAccount:
		return NewHTTPError(http.StatusForbidden, err.Error(), "INACTIVE_ACCOUNT")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrPostNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case ErrSubscriberNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBSCRIBER_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrProfileExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFILE_EXISTS")
	case ErrSelfToggle:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_TOGGLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

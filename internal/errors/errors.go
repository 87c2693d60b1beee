package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when registering with an email that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so that accounts cannot be enumerated through login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrSellerNotFound is returned when a seller approval matches no pending user.
	ErrSellerNotFound = errors.New("seller not found or already approved")
	// ErrProductNotFound is returned when a product lookup matches nothing.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductProcessed is returned when approving or rejecting a product
	// that is no longer pending.
	ErrProductProcessed = errors.New("product not found or already processed")
	// ErrChallengeNotFound is returned when a challenge lookup matches nothing.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrEnrollmentNotFound is returned when an enrollment lookup matches nothing.
	ErrEnrollmentNotFound = errors.New("user challenge not found")
	// ErrAlreadyJoined is returned on a duplicate challenge join.
	ErrAlreadyJoined = errors.New("already joined this challenge")
	// ErrAlreadyCompleted is returned when completing a finished enrollment.
	ErrAlreadyCompleted = errors.New("challenge already completed")
	// ErrInvalidRole is returned when a role update names an unknown role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidProgress is returned when progress is outside 0-100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	// ErrAccessDenied is returned on role or ownership mismatch.
	ErrAccessDenied = errors.New("access denied")
	// ErrAdminRequired is returned when a non-admin calls an admin operation.
	ErrAdminRequired = errors.New("admin access required")
	// ErrPostsNotImplemented is returned by the intentionally stubbed post
	// moderation endpoints.
	ErrPostsNotImplemented = errors.New("posts not implemented")
	// ErrOrderNotFound is returned when an order lookup matches nothing.
	ErrOrderNotFound = errors.New("order not found")
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// HTTPError carries a status code alongside the response body.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to its JSON body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message, Detail: e.Detail}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation, conflict and
// credential failures all answer 400, matching the public API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAlreadyJoined),
		errors.Is(err, ErrAlreadyCompleted),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidProgress):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrSellerNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrProductProcessed),
		errors.Is(err, ErrChallengeNotFound),
		errors.Is(err, ErrEnrollmentNotFound),
		errors.Is(err, ErrPostsNotImplemented),
		errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		e := NewHTTPError(http.StatusInternalServerError, "server error")
		if err != nil {
			e.Detail = err.Error()
		}
		return e
	}
}

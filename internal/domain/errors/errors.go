package errors

import (
	"net/http"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Response mirrors the delivery envelope so the error middleware can emit
// AppErrors without importing the delivery layer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and details of a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Predefined error types
var (
	// Trip map composition errors
	ErrOriginNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"ORIGIN_NOT_FOUND",
		"could not locate origin",
		"",
	)

	ErrDestinationNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"DESTINATION_NOT_FOUND",
		"could not locate destination",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"ROUTE_NOT_FOUND",
		"could not compute planned route",
		"",
	)

	ErrMapPreparation = NewBaseError(
		http.StatusInternalServerError,
		"MAP_PREPARATION_FAILED",
		"something went wrong preparing the map",
		"",
	)

	ErrMapSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"MAP_SESSION_NOT_FOUND",
		"trip map session not found",
		"",
	)

	// Tracking errors
	ErrTrackingSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACKING_SESSION_NOT_FOUND",
		"tracking session not found",
		"",
	)

	ErrTrackingActivation = NewBaseError(
		http.StatusInternalServerError,
		"TRACKING_ACTIVATION_FAILED",
		"could not activate live tracking",
		"",
	)

	// Location picker errors
	ErrProvinceNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVINCE_NOT_FOUND",
		"unknown province",
		"",
	)

	ErrMunicipalityNotFound = NewBaseError(
		http.StatusNotFound,
		"MUNICIPALITY_NOT_FOUND",
		"unknown municipality for this province",
		"",
	)

	ErrNeighborhoodNotFound = NewBaseError(
		http.StatusNotFound,
		"NEIGHBORHOOD_NOT_FOUND",
		"unknown neighborhood for this municipality",
		"",
	)

	ErrEmptyLabel = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_LABEL",
		"location label must not be empty",
		"",
	)
)

package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	MissingNITError     = NewSimple(http.StatusBadRequest, "NIT is required")
	InvalidNITError     = NewSimple(http.StatusBadRequest, "Invalid NIT format, must be a number between 8 and 10 digits")
	SourceFailedError   = NewSimple(http.StatusBadGateway, "An external data source is unavailable, please try again later")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
)

// FromValidationError maps the first failed NIT validation into its API error.
func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return nil
	}

	switch ve[0].Tag() {
	case "required":
		return MissingNITError
	default:
		return InvalidNITError
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewNotFoundError(msg string) *APIError {
	return NewSimple(http.StatusNotFound, msg)
}

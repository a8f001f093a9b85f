package pkg

import "net/http"

// Wire error codes; stable, clients match on these.
const (
	CodeInvalidInput     = "C001"
	CodeInternalError    = "C002"
	CodePostNotFound     = "P001"
	CodePasswordMismatch = "P002"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError is a domain failure carrying its HTTP mapping. The boundary
// middleware is the only consumer of Status.
type AppError struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.cause }

var (
	ErrPostNotFound     = &AppError{Status: http.StatusNotFound, Code: CodePostNotFound, Message: "post not found"}
	ErrPasswordMismatch = &AppError{Status: http.StatusUnauthorized, Code: CodePasswordMismatch, Message: "password does not match"}
)

// InvalidInput builds a 400 with per-field reasons.
func InvalidInput(fields []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidInput,
		Message: "invalid input value",
		Fields:  fields,
	}
}

// Internal wraps an unanticipated failure into the generic 500.
func Internal(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "internal server error",
		cause:   err,
	}
}

package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound          = errors.New("student not found")
	ErrStudentNoAlreadyExists   = errors.New("student number already exists")
	ErrInvalidStudentNo         = errors.New("invalid student number format")
	ErrInvalidSchoolEmail       = errors.New("school email address required")
	ErrStudentOutsideAssignment = errors.New("student is outside the counselor's assignments")
	ErrRemarkNotFound           = errors.New("remark not found")
)

// Counselor errors
var (
	ErrCounselorNotFound    = errors.New("counselor not found")
	ErrNoAssignments        = errors.New("no assignments configured for this counselor")
	ErrNoCounselorAssigned  = errors.New("no counselor assigned to your course/year")
	ErrAssignmentTaken      = errors.New("assignment already held by another counselor")
	ErrAssignmentDuplicated = errors.New("assignment already held by this counselor")
)

// Appointment errors
var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvalidTransition     = errors.New("invalid appointment status transition")
	ErrAppointmentNotDone    = errors.New("appointment is not completed")
	ErrPasswordsDoNotMatch   = errors.New("passwords do not match")
	ErrInvalidAppointmentDay = errors.New("appointment date/time is not available")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

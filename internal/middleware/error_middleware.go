package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP error envelope
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, 401, dto.ErrorCodeInvalidCredentials, "Invalid email or password", err)

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrStudentOutsideAssignment):
		respond(c, 403, dto.ErrorCodeForbidden, "Permission denied", err)

	case errors.Is(err, apperrors.ErrNoCounselorAssigned):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "No counselor assigned to your course/year", err)

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCounselorNotFound),
		errors.Is(err, apperrors.ErrAppointmentNotFound),
		errors.Is(err, apperrors.ErrRemarkNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Resource not found", err)

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, 409, dto.ErrorCodeResourceAlreadyExists, "Email already exists", err)

	case errors.Is(err, apperrors.ErrStudentNoAlreadyExists):
		respond(c, 409, dto.ErrorCodeResourceAlreadyExists, "Student number already exists", err)

	case errors.Is(err, apperrors.ErrAssignmentTaken),
		errors.Is(err, apperrors.ErrAssignmentDuplicated),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, 409, dto.ErrorCodeResourceAlreadyExists, "Assignment conflict", err)

	case errors.Is(err, apperrors.ErrInvalidSchoolEmail):
		respond(c, 400, dto.ErrorCodeInvalidEmail, "School email address required", err)

	case errors.Is(err, apperrors.ErrInvalidStudentNo):
		respond(c, 400, dto.ErrorCodeInvalidStudentNo, "Invalid student number format", err)

	case errors.Is(err, apperrors.ErrPasswordsDoNotMatch):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Passwords do not match", err)

	case errors.Is(err, apperrors.ErrInvalidAppointmentDay):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Appointment date/time is not available", err)

	case errors.Is(err, apperrors.ErrInvalidTransition):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Invalid appointment status transition", err)

	case errors.Is(err, apperrors.ErrAppointmentNotDone):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Appointment is not completed", err)

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Validation failed", err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, 500, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

// respond writes the error envelope, preferring the specific message a
// CustomError carries over the generic one for its class.
func respond(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	var custom *apperrors.CustomError
	if err != nil && errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}
	c.JSON(status, dto.NewAPIErrorResponse(dto.NewErrorDetail(code, message)))
}

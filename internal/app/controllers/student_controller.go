package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/services"
	"github.com/ecalderon/guidancehub/internal/middleware"
)

// StudentController handles the student dashboard operations
type StudentController struct {
	studentService     *services.StudentService
	appointmentService *services.AppointmentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, appointmentService *services.AppointmentService) *StudentController {
	return &StudentController{
		studentService:     studentService,
		appointmentService: appointmentService,
	}
}

// Profile returns the authenticated student's record and counseling history
// @Summary Student profile
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /student/profile [get]
func (c *StudentController) Profile(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// AssignedCounselor returns the counselor covering the student's course/year
// @Summary Assigned counselor
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AssignedCounselorResponse}
// @Failure 404 {object} dto.ErrorResponse "No counselor assigned to your course/year"
// @Security BearerAuth
// @Router /student/assigned-counselor [get]
func (c *StudentController) AssignedCounselor(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	counselor, err := c.appointmentService.ResolveCounselor(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AssignedCounselorResponse{
		ID:        counselor.ID,
		FirstName: counselor.User.FirstName,
		LastName:  counselor.User.LastName,
		Email:     counselor.User.Email,
	}))
}

// RequestAppointment files an appointment request with the assigned counselor
// @Summary Request an appointment
// @Description Creates a pending appointment request for a weekday slot inside office hours, at most 30 days ahead and outside holidays and the lunch break.
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.RequestAppointmentRequest true "Requested slot and reason"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Slot violates a scheduling rule"
// @Failure 404 {object} dto.ErrorResponse "No counselor assigned to your course/year"
// @Security BearerAuth
// @Router /student/appointments [post]
func (c *StudentController) RequestAppointment(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	var req dto.RequestAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	appt, err := c.appointmentService.RequestAppointment(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(appt))
}

// ListAppointments lists the student's appointment requests, newest first
// @Summary List own appointments
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /student/appointments [get]
func (c *StudentController) ListAppointments(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	appts, err := c.appointmentService.ListForStudent(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(appts))
}

// ListSchedules lists the student's pending and approved appointments
// @Summary List upcoming schedules
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /student/schedules [get]
func (c *StudentController) ListSchedules(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	appts, err := c.appointmentService.ListSchedulesForStudent(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(appts))
}

// CounselingHistory lists the remarks on the student's counseling record
// @Summary Counseling history
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /student/counseling-history [get]
func (c *StudentController) CounselingHistory(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student.Remarks))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/services"
	"github.com/ecalderon/guidancehub/internal/middleware"
)

// CounselorController handles the counselor dashboard operations
type CounselorController struct {
	counselorService   *services.CounselorService
	studentService     *services.StudentService
	appointmentService *services.AppointmentService
}

// NewCounselorController creates a new CounselorController
func NewCounselorController(
	counselorService *services.CounselorService,
	studentService *services.StudentService,
	appointmentService *services.AppointmentService,
) *CounselorController {
	return &CounselorController{
		counselorService:   counselorService,
		studentService:     studentService,
		appointmentService: appointmentService,
	}
}

// Profile returns the authenticated counselor's account and assignments
// @Summary Counselor profile
// @Tags counselor
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /counselor/profile [get]
func (c *CounselorController) Profile(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	counselor, err := c.counselorService.GetByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counselor))
}

// ListStudents lists the students inside the counselor's assignment scope
// @Summary List assigned students
// @Description Lists students covered by the counselor's assignments, with optional level/course/year/section filters. A counselor with no assignments sees an empty list.
// @Tags counselor
// @Produce json
// @Param level query string false "HED or BED"
// @Param course query string false "Course (HED)"
// @Param year query string false "Year (BED)"
// @Param section query string false "Section (BED)"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /counselor/students [get]
func (c *CounselorController) ListStudents(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return
	}

	students, err := c.studentService.ListForCounselor(ctx, userID, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudent returns one student inside the counselor's scope
// @Summary Get an assigned student
// @Tags counselor
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Student outside assignment scope"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /counselor/students/{id} [get]
func (c *CounselorController) GetStudent(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetForCounselor(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateStudent applies a partial update to a student record
// @Summary Update an assigned student
// @Description Updates a student inside the counselor's scope. A level change must carry the new variant's fields and drops the old variant's.
// @Tags counselor
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Missing level fields"
// @Failure 403 {object} dto.ErrorResponse "Student outside assignment scope"
// @Security BearerAuth
// @Router /counselor/students/{id} [put]
func (c *CounselorController) UpdateStudent(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateForCounselor(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student inside the counselor's scope
// @Summary Delete an assigned student
// @Tags counselor
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Student outside assignment scope"
// @Security BearerAuth
// @Router /counselor/students/{id} [delete]
func (c *CounselorController) DeleteStudent(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteForCounselor(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}))
}

// AddRemark appends a remark to a student's counseling record
// @Summary Add a remark to a student
// @Description Appends a remark and marks the counseling as done. The sendToAdmin flag also forwards the student to the admin dashboard.
// @Tags counselor
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.RemarkRequest true "Remark text"
// @Success 201 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Student outside assignment scope"
// @Security BearerAuth
// @Router /counselor/students/{id}/remarks [post]
func (c *CounselorController) AddRemark(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RemarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	remark, err := c.studentService.AddRemarkForCounselor(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(remark))
}

// SendToAdmin forwards a student's record to the admin dashboard
// @Summary Send a student to the admin
// @Tags counselor
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Student outside assignment scope"
// @Security BearerAuth
// @Router /counselor/students/{id}/send-to-admin [put]
func (c *CounselorController) SendToAdmin(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.SendToAdmin(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student sent to admin"}))
}

// ListAppointments lists the counselor's appointments
// @Summary List appointments
// @Tags counselor
// @Produce json
// @Param status query string false "Lifecycle status filter"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Security BearerAuth
// @Router /counselor/appointments [get]
func (c *CounselorController) ListAppointments(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	appts, err := c.appointmentService.ListForCounselor(ctx, userID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(appts))
}

// UpdateAppointmentStatus moves an appointment through its lifecycle
// @Summary Update appointment status
// @Description Applies a status transition. Pending appointments can be approved or rejected; approved ones completed or marked failed to attend.
// @Tags counselor
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 403 {object} dto.ErrorResponse "Appointment belongs to another counselor"
// @Security BearerAuth
// @Router /counselor/appointments/{id}/status [put]
func (c *CounselorController) UpdateAppointmentStatus(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	appt, err := c.appointmentService.UpdateStatus(ctx, userID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(appt))
}

// AddAppointmentRemark records the outcome of a completed appointment
// @Summary Add appointment remarks
// @Description Overwrites the appointment remark and appends a linked entry to the student's counseling record. Only completed appointments accept remarks.
// @Tags counselor
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.AppointmentRemarkRequest true "Session remarks"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Appointment is not completed"
// @Failure 403 {object} dto.ErrorResponse "Appointment belongs to another counselor"
// @Security BearerAuth
// @Router /counselor/appointments/{id}/remarks [post]
func (c *CounselorController) AddAppointmentRemark(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AppointmentRemarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	appt, err := c.appointmentService.AttachRemark(ctx, userID, id, req.Remarks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(appt))
}

// BulkSchedule creates one approved appointment per listed student
// @Summary Bulk schedule appointments
// @Description Creates an already-approved appointment for each listed student with a shared date, time and reason. The insert is all-or-nothing.
// @Tags counselor
// @Accept json
// @Produce json
// @Param request body dto.BulkScheduleRequest true "Student IDs and shared slot"
// @Success 201 {object} dto.APIResponse{data=dto.BulkScheduleResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown student"
// @Security BearerAuth
// @Router /counselor/bulk-schedule [post]
func (c *CounselorController) BulkSchedule(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	count, err := c.appointmentService.BulkSchedule(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.BulkScheduleResponse{
		Message:   "Appointments scheduled",
		Scheduled: count,
	}))
}

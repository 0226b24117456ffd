package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/services"
	"github.com/ecalderon/guidancehub/internal/middleware"
)

// AdminController handles the admin dashboard operations
type AdminController struct {
	counselorService *services.CounselorService
	studentService   *services.StudentService
}

// NewAdminController creates a new AdminController
func NewAdminController(counselorService *services.CounselorService, studentService *services.StudentService) *AdminController {
	return &AdminController{
		counselorService: counselorService,
		studentService:   studentService,
	}
}

// CreateCounselor creates a counselor account
// @Summary Create a counselor
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCounselorRequest true "Counselor account information"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Passwords do not match"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Security BearerAuth
// @Router /admin/counselors [post]
func (c *AdminController) CreateCounselor(ctx *gin.Context) {
	var req dto.CreateCounselorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	counselor, err := c.counselorService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(counselor))
}

// ListCounselors lists all counselors with their assignments
// @Summary List counselors
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /admin/counselors [get]
func (c *AdminController) ListCounselors(ctx *gin.Context) {
	counselors, err := c.counselorService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counselors))
}

// UpdateCounselor applies a partial update to a counselor account
// @Summary Update a counselor
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Counselor ID"
// @Param request body dto.UpdateCounselorRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Counselor not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Security BearerAuth
// @Router /admin/counselors/{id} [put]
func (c *AdminController) UpdateCounselor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCounselorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	counselor, err := c.counselorService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counselor))
}

// DeleteCounselor removes a counselor account
// @Summary Delete a counselor
// @Tags admin
// @Produce json
// @Param id path int true "Counselor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Counselor not found"
// @Security BearerAuth
// @Router /admin/counselors/{id} [delete]
func (c *AdminController) DeleteCounselor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.counselorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Counselor deleted"}))
}

// SaveAssignments replaces a counselor's assignment list
// @Summary Replace counselor assignments
// @Description Replaces the counselor's course/year assignments. An entry is rejected when another counselor already holds it or the list repeats it.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Counselor ID"
// @Param request body dto.AssignmentsRequest true "Full assignment list"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Counselor not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment conflict"
// @Security BearerAuth
// @Router /admin/counselors/{id}/assignments [put]
func (c *AdminController) SaveAssignments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	assignments, err := c.counselorService.SaveAssignments(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignments))
}

// ListStudents lists students with the admin filters
// @Summary List students
// @Description Lists students. The counselingDone filter matches students forwarded to the admin; level, course and year narrow by track.
// @Tags admin
// @Produce json
// @Param counselingDone query bool false "Forwarded to admin"
// @Param level query string false "HED or BED"
// @Param course query string false "Course (HED)"
// @Param year query string false "Year (BED)"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return
	}

	students, err := c.studentService.ListForAdmin(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudent returns one student with its counseling record
// @Summary Get a student
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /admin/students/{id} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// AddRemark appends a remark on behalf of a named counselor
// @Summary Add a remark to a student
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.AdminRemarkRequest true "Remark text and counselor name"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /admin/students/{id}/remarks [post]
func (c *AdminController) AddRemark(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdminRemarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	remark, err := c.studentService.AddRemarkAsAdmin(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(remark))
}

// EditRemark replaces the text of a remark at a list position
// @Summary Edit a student remark
// @Description Edits the remark at the given position. The edit is applied optimistically: when persistence fails the edited remark is still returned with persisted=false.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param index path int true "Remark position"
// @Param request body dto.EditRemarkRequest true "New remark text"
// @Success 200 {object} dto.APIResponse{data=dto.EditRemarkResponse}
// @Failure 404 {object} dto.ErrorResponse "Student or remark not found"
// @Security BearerAuth
// @Router /admin/students/{id}/remarks/{index} [put]
func (c *AdminController) EditRemark(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid remark position")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.EditRemarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	result, err := c.studentService.EditRemark(ctx, id, index, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// DashboardStats returns the admin dashboard counters
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Security BearerAuth
// @Router /admin/dashboard-stats [get]
func (c *AdminController) DashboardStats(ctx *gin.Context) {
	stats, err := c.studentService.DashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

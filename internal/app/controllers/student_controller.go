package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/services"
	"github.com/vocabolarium/backend/internal/middleware"
)

// StudentController handles student administration endpoints
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// List returns registrations, optionally filtered
// @Summary List student registrations
// @Description Returns all registrations, or those matching a status filter or a search term over name, email and registration ID.
// @Tags students
// @Produce json
// @Param status query string false "Filter by status" Enums(Pending,Approved,Rejected,Active,Completed,Suspended)
// @Param search query string false "Case-insensitive search term"
// @Success 200 {object} dto.APIResponse "Registrations"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	if term := ctx.Query("search"); term != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.studentService.Search(term), "Students retrieved"))
		return
	}
	if status := ctx.Query("status"); status != "" {
		students := c.studentService.GetByStatus(models.StudentStatus(status))
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.studentService.GetAll(), "Students retrieved"))
}

// Get returns one registration
// @Summary Get a student registration
// @Tags students
// @Produce json
// @Param id path string true "Registration ID" example(REG0001)
// @Success 200 {object} dto.APIResponse "Registration"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved"))
}

// Update applies an admin patch to a registration
// @Summary Update a student registration
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Updated registration"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [patch]
func (c *StudentController) Update(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully"))
}

// Delete removes a registration
// @Summary Delete a student registration
// @Tags students
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted successfully"))
}

// Approve approves a registration and assigns a tutor
// @Summary Approve a registration
// @Description Marks the registration approved, records the tutor assignment and class link, and sends the approval email with course materials attached.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.ApproveStudentRequest true "Tutor assignment"
// @Success 200 {object} dto.APIResponse{data=dto.DecisionResponse} "Registration approved"
// @Failure 404 {object} dto.ErrorResponse "Student or tutor not found"
// @Router /students/{id}/approve [post]
func (c *StudentController) Approve(ctx *gin.Context) {
	var req dto.ApproveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	outcome, err := c.studentService.Approve(ctx.Param("id"), req.TutorName, req.GoogleMeetLink)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.DecisionResponse{
		RegistrationID: outcome.Student.RegistrationID,
		Status:         string(outcome.Student.Status),
		EmailSent:      outcome.EmailSent,
		EmailMessage:   outcome.EmailMessage,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Registration approved"))
}

// Reject rejects a registration
// @Summary Reject a registration
// @Description Marks the registration rejected and sends the rejection email. The reason appears in the email only.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.RejectStudentRequest false "Optional reason"
// @Success 200 {object} dto.APIResponse{data=dto.DecisionResponse} "Registration rejected"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/reject [post]
func (c *StudentController) Reject(ctx *gin.Context) {
	var req dto.RejectStudentRequest
	// body is optional for rejections
	_ = ctx.ShouldBindJSON(&req)

	outcome, err := c.studentService.Reject(ctx.Param("id"), req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.DecisionResponse{
		RegistrationID: outcome.Student.RegistrationID,
		Status:         string(outcome.Student.Status),
		EmailSent:      outcome.EmailSent,
		EmailMessage:   outcome.EmailMessage,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Registration rejected"))
}

// MyStudents lists the registrations assigned to the logged-in tutor
// @Summary List my students
// @Tags tutor-dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse "Assigned registrations"
// @Router /me/students [get]
func (c *StudentController) MyStudents(ctx *gin.Context) {
	tutorName := ctx.GetString(middleware.ContextUserName)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.studentService.GetByTutor(tutorName), "Students retrieved"))
}

// UpdateMyStudent applies a tutor's patch to one of their students
// @Summary Update one of my students
// @Description Lets a tutor update status (Active, Completed or Suspended), notes and the class link for a student assigned to them.
// @Tags tutor-dashboard
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.TutorUpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Updated registration"
// @Failure 403 {object} dto.ErrorResponse "Student not assigned to this tutor"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /me/students/{id} [patch]
func (c *StudentController) UpdateMyStudent(ctx *gin.Context) {
	var req dto.TutorUpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tutorName := ctx.GetString(middleware.ContextUserName)
	student, err := c.studentService.UpdateByTutor(ctx.Param("id"), tutorName, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully"))
}

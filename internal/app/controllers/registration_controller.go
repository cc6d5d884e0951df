package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/services"
	"github.com/vocabolarium/backend/internal/config"
	"github.com/vocabolarium/backend/internal/middleware"
)

// RegistrationController handles the public enrollment endpoints
type RegistrationController struct {
	studentService services.StudentService
	tutorService   services.TutorService
	config         *config.Config
	logger         zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(
	studentService services.StudentService,
	tutorService services.TutorService,
	cfg *config.Config,
	logger zerolog.Logger,
) *RegistrationController {
	return &RegistrationController{
		studentService: studentService,
		tutorService:   tutorService,
		config:         cfg,
		logger:         logger,
	}
}

// Register handles a new student registration
// @Summary Register for a language course
// @Description Records a registration and sends a confirmation email with payment instructions. The email outcome is reported but never blocks the registration.
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterStudentResponse} "Registration recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or field rules violated"
// @Router /register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	outcome, err := c.studentService.Register(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.RegisterStudentResponse{
		RegistrationID: outcome.Student.RegistrationID,
		EmailSent:      outcome.EmailSent,
		EmailMessage:   outcome.EmailMessage,
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Registration recorded successfully"))
}

// Courses lists the offered language courses
// @Summary List language courses
// @Tags registration
// @Produce json
// @Success 200 {object} dto.APIResponse "Course catalog"
// @Router /courses [get]
func (c *RegistrationController) Courses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.config.Registration.Courses, "Courses retrieved"))
}

// Languages lists the offered course languages
// @Summary List course languages
// @Tags registration
// @Produce json
// @Success 200 {object} dto.APIResponse "Language names"
// @Router /languages [get]
func (c *RegistrationController) Languages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.config.Languages(), "Languages retrieved"))
}

// Options lists the registration form option sets
// @Summary List registration options
// @Description Returns the accepted time slots, session intervals and payment options for the registration form.
// @Tags registration
// @Produce json
// @Success 200 {object} dto.APIResponse "Form options"
// @Router /options [get]
func (c *RegistrationController) Options(ctx *gin.Context) {
	options := gin.H{
		"timeSlots":        c.config.Registration.TimeSlots,
		"sessionIntervals": c.config.Registration.SessionIntervals,
		"paymentOptions":   c.config.Registration.PaymentOptions,
		"minAge":           c.config.Registration.MinAge,
		"maxAge":           c.config.Registration.MaxAge,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(options, "Options retrieved"))
}

// AvailableTutors lists active tutors, optionally narrowed to a language
// @Summary List available tutors
// @Tags registration
// @Produce json
// @Param language query string false "Narrow to tutors teaching this language"
// @Success 200 {object} dto.APIResponse "Active tutors"
// @Router /tutors/available [get]
func (c *RegistrationController) AvailableTutors(ctx *gin.Context) {
	language := ctx.Query("language")
	if language != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tutorService.GetByLanguage(language), "Tutors retrieved"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tutorService.GetActive(), "Tutors retrieved"))
}

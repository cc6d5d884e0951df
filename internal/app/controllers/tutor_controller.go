package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/services"
	"github.com/vocabolarium/backend/internal/middleware"
)

// TutorController handles tutor administration endpoints
type TutorController struct {
	tutorService services.TutorService
	logger       zerolog.Logger
}

// NewTutorController creates a new TutorController
func NewTutorController(tutorService services.TutorService, logger zerolog.Logger) *TutorController {
	return &TutorController{
		tutorService: tutorService,
		logger:       logger,
	}
}

// List returns every tutor
// @Summary List tutors
// @Tags tutors
// @Produce json
// @Param language query string false "Narrow to active tutors teaching this language"
// @Success 200 {object} dto.APIResponse "Tutors"
// @Router /tutors [get]
func (c *TutorController) List(ctx *gin.Context) {
	if language := ctx.Query("language"); language != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tutorService.GetByLanguage(language), "Tutors retrieved"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tutorService.GetAll(), "Tutors retrieved"))
}

// Get returns one tutor
// @Summary Get a tutor
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor ID" example(TUT001)
// @Success 200 {object} dto.APIResponse "Tutor"
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [get]
func (c *TutorController) Get(ctx *gin.Context) {
	tutor, err := c.tutorService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tutor, "Tutor retrieved"))
}

// Create adds a tutor
// @Summary Add a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Param request body dto.CreateTutorRequest true "Tutor details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateTutorResponse} "Tutor added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /tutors [post]
func (c *TutorController) Create(ctx *gin.Context) {
	var req dto.CreateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tutor, err := c.tutorService.Create(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreateTutorResponse{TutorID: tutor.TutorID}, "Tutor added successfully"))
}

// Update applies an admin patch to a tutor
// @Summary Update a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param request body dto.UpdateTutorRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Updated tutor"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [patch]
func (c *TutorController) Update(ctx *gin.Context) {
	var req dto.UpdateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tutor, err := c.tutorService.Update(ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tutor, "Tutor updated successfully"))
}

// Delete removes a tutor
// @Summary Delete a tutor
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [delete]
func (c *TutorController) Delete(ctx *gin.Context) {
	if err := c.tutorService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Tutor deleted successfully"))
}

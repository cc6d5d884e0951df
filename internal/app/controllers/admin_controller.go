package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/middleware"
	"github.com/vocabolarium/backend/internal/pkg/email"
)

// AdminController handles reporting and operational endpoints
type AdminController struct {
	repos  *repositories.Container
	mailer *email.Mailer
	logger zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(repos *repositories.Container, mailer *email.Mailer, logger zerolog.Logger) *AdminController {
	return &AdminController{
		repos:  repos,
		mailer: mailer,
		logger: logger,
	}
}

// Statistics returns an aggregate snapshot of both tables
// @Summary Get registration statistics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=repositories.Statistics} "Aggregate counts"
// @Router /admin/statistics [get]
func (c *AdminController) Statistics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.repos.Statistics(), "Statistics retrieved"))
}

// Backup copies both table files into the backup directory
// @Summary Back up the data tables
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.BackupResponse} "Created backup files"
// @Failure 500 {object} dto.ErrorResponse "Backup failed"
// @Router /admin/backup [post]
func (c *AdminController) Backup(ctx *gin.Context) {
	files, err := c.repos.Backup()
	if err != nil {
		c.logger.Error().Err(err).Msg("Backup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BackupResponse{Files: files}, "Backup completed successfully"))
}

// TestEmail sends a configuration check message
// @Summary Send a test email
// @Description Sends a message that surfaces the active SMTP settings so the configuration can be verified end to end.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.TestEmailRequest true "Recipient"
// @Success 200 {object} dto.APIResponse{data=dto.EmailResult} "Delivery outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /admin/email/test [post]
func (c *AdminController) TestEmail(ctx *gin.Context) {
	var req dto.TestEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sent, msg := c.mailer.SendTestEmail(req.Recipient)
	result := dto.EmailResult{Sent: sent, Message: msg}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Test email processed"))
}

// BulkEmail broadcasts a message to a recipient list
// @Summary Send a bulk email
// @Description Delivers the same message to every recipient and reports how many sends succeeded and failed.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.BulkEmailRequest true "Message and recipients"
// @Success 200 {object} dto.APIResponse{data=dto.BulkEmailResponse} "Delivery totals"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /admin/email/bulk [post]
func (c *AdminController) BulkEmail(ctx *gin.Context) {
	var req dto.BulkEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sent, failed := c.mailer.SendBulkEmail(req.Recipients, req.Subject, req.Body)
	result := dto.BulkEmailResponse{Sent: sent, Failed: failed}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Bulk email processed"))
}

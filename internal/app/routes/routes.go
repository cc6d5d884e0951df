// Package routes wires controllers onto the gin router
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vocabolarium/backend/internal/app/controllers"
	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/middleware"
)

// Controllers holds every controller the router needs
type Controllers struct {
	Auth         *controllers.AuthController
	Registration *controllers.RegistrationController
	Student      *controllers.StudentController
	Tutor        *controllers.TutorController
	Admin        *controllers.AdminController
}

// Setup registers all API routes. Public endpoints serve the enrollment
// form; everything else sits behind JWT auth with role checks.
func Setup(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public enrollment endpoints
	v1.POST("/auth/login", ctrl.Auth.Login)
	v1.POST("/register", ctrl.Registration.Register)
	v1.GET("/courses", ctrl.Registration.Courses)
	v1.GET("/languages", ctrl.Registration.Languages)
	v1.GET("/options", ctrl.Registration.Options)
	v1.GET("/tutors/available", ctrl.Registration.AvailableTutors)

	// Admin dashboard
	admin := v1.Group("", authMW.JWTAuth(), authMW.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/students", ctrl.Student.List)
		admin.GET("/students/:id", ctrl.Student.Get)
		admin.PATCH("/students/:id", ctrl.Student.Update)
		admin.DELETE("/students/:id", ctrl.Student.Delete)
		admin.POST("/students/:id/approve", ctrl.Student.Approve)
		admin.POST("/students/:id/reject", ctrl.Student.Reject)

		admin.GET("/tutors", ctrl.Tutor.List)
		admin.POST("/tutors", ctrl.Tutor.Create)
		admin.GET("/tutors/:id", ctrl.Tutor.Get)
		admin.PATCH("/tutors/:id", ctrl.Tutor.Update)
		admin.DELETE("/tutors/:id", ctrl.Tutor.Delete)

		admin.GET("/admin/statistics", ctrl.Admin.Statistics)
		admin.POST("/admin/backup", ctrl.Admin.Backup)
		admin.POST("/admin/email/test", ctrl.Admin.TestEmail)
		admin.POST("/admin/email/bulk", ctrl.Admin.BulkEmail)
	}

	// Tutor dashboard
	tutor := v1.Group("/me", authMW.JWTAuth(), authMW.RoleRequired(models.RoleTutor))
	{
		tutor.GET("/students", ctrl.Student.MyStudents)
		tutor.PATCH("/students/:id", ctrl.Student.UpdateMyStudent)
	}
}

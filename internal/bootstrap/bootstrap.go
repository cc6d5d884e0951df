// Package bootstrap assembles the application: configuration, storage,
// services, controllers and the router.
package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/vocabolarium/backend/internal/app/controllers"
	appRepos "github.com/vocabolarium/backend/internal/app/repositories"
	appRoutes "github.com/vocabolarium/backend/internal/app/routes"
	appServices "github.com/vocabolarium/backend/internal/app/services"
	"github.com/vocabolarium/backend/internal/config"
	appMiddleware "github.com/vocabolarium/backend/internal/middleware"
	pkgAuth "github.com/vocabolarium/backend/internal/pkg/auth"
	"github.com/vocabolarium/backend/internal/pkg/email"
	"github.com/vocabolarium/backend/internal/pkg/helpers"
	"github.com/vocabolarium/backend/internal/pkg/logger"
	"github.com/vocabolarium/backend/internal/pkg/validation"
	"github.com/vocabolarium/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService    appServices.AuthService
	StudentService appServices.StudentService
	TutorService   appServices.TutorService
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Container
	JWTService     *pkgAuth.JWTService
	Mailer         *email.Mailer
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates or migrates the table files and seeds sample data
// into a freshly created tutors table
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Container, error) {
	repos := appRepos.NewContainer(cfg.Data.Dir, cfg.Data.BackupDir)

	tutorsCreated, err := repos.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	lgr.Info().Str("dir", cfg.Data.Dir).Msg("Data tables ready")

	if tutorsCreated {
		if err := seed.SampleTutors(repos.Tutors); err != nil {
			lgr.Warn().Err(err).Msg("Sample tutor seeding finished with errors")
		}
	}

	return repos, nil
}

// BuildDependencies constructs services, controllers and middleware
func BuildDependencies(cfg *config.Config, repos *appRepos.Container, lgr zerolog.Logger) *Dependencies {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 8*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	mailer := email.NewMailer(email.Config{
		Host:           cfg.SMTP.Host,
		Port:           cfg.SMTP.Port,
		SenderEmail:    cfg.SMTP.SenderEmail,
		SenderPassword: cfg.SMTP.SenderPassword,
		FromName:       cfg.SMTP.FromName,
		MaterialsPath:  cfg.Data.MaterialsFile,
		ContactEmail:   cfg.Contact.Email,
		PaymentEmail:   cfg.Contact.PaymentEmail,
		ContactPhone:   cfg.Contact.Phone,
		Facebook:       cfg.Contact.Facebook,
		YouTube:        cfg.Contact.YouTube,
	}, lgr)

	rules := validation.Rules{
		MinAge:           cfg.Registration.MinAge,
		MaxAge:           cfg.Registration.MaxAge,
		Languages:        cfg.Languages(),
		SessionIntervals: cfg.Registration.SessionIntervals,
		TimeSlots:        cfg.Registration.TimeSlots,
		PaymentOptions:   cfg.Registration.PaymentOptions,
	}

	authService := appServices.NewAuthService(appServices.AuthCredentials{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		TutorPassword: cfg.Auth.TutorPassword,
	}, repos.Tutors, jwtService)
	studentService := appServices.NewStudentService(repos.Students, repos.Tutors, mailer, rules)
	tutorService := appServices.NewTutorService(repos.Tutors)

	controllers := appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(authService, lgr),
		Registration: appControllers.NewRegistrationController(studentService, tutorService, cfg, lgr),
		Student:      appControllers.NewStudentController(studentService, lgr),
		Tutor:        appControllers.NewTutorController(tutorService, lgr),
		Admin:        appControllers.NewAdminController(repos, mailer, lgr),
	}

	return &Dependencies{
		AuthService:    authService,
		StudentService: studentService,
		TutorService:   tutorService,
		Controllers:    controllers,
		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService),
		Repos:          repos,
		JWTService:     jwtService,
		Mailer:         mailer,
		Logger:         lgr,
	}
}

// SetupRouter creates the gin engine with all routes registered
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger))

	appRoutes.Setup(router, deps.Controllers, deps.AuthMiddleware)
	return router
}

// requestLogger logs one line per request with method, path, status and
// latency
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := lgr.Info()
		if c.Writer.Status() >= 500 {
			event = lgr.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}

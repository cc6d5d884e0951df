package services

import (
	"crypto/subtle"
	"strings"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
	"github.com/vocabolarium/backend/internal/pkg/auth"
	"github.com/vocabolarium/backend/internal/pkg/logger"
)

// AuthService handles dashboard login
type AuthService interface {
	Login(username, password string) (*dto.LoginResponse, error)
}

// AuthCredentials holds the configured login secrets. Tutors share one
// password; their identity comes from the email they log in with.
type AuthCredentials struct {
	AdminUsername string
	AdminPassword string
	TutorPassword string
}

type authService struct {
	credentials AuthCredentials
	tutors      *repositories.TutorRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(credentials AuthCredentials, tutors *repositories.TutorRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		credentials: credentials,
		tutors:      tutors,
		jwtService:  jwtService,
	}
}

// Login authenticates either role through one entry point. An input
// containing "@" is treated as a tutor email; anything else is checked
// against the admin account.
func (s *authService) Login(username, password string) (*dto.LoginResponse, error) {
	username = strings.TrimSpace(username)

	if strings.Contains(username, "@") {
		return s.loginTutor(username, password)
	}
	return s.loginAdmin(username, password)
}

func (s *authService) loginAdmin(username, password string) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.AdminPassword)) == 1
	if !userOK || !passOK {
		logger.Warn().Str("username", username).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken("Administrator", "", models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("Admin logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleAdmin),
		Name:      "Administrator",
	}, nil
}

func (s *authService) loginTutor(email, password string) (*dto.LoginResponse, error) {
	tutor, err := s.tutors.GetByEmail(email)
	if err != nil {
		logger.Warn().Str("email", email).Msg("Failed tutor login attempt: unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}
	if tutor.Status != models.TutorActive {
		logger.Warn().Str("email", email).Msg("Failed tutor login attempt: tutor not active")
		return nil, apperrors.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.TutorPassword)) != 1 {
		logger.Warn().Str("email", email).Msg("Failed tutor login attempt: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(tutor.Name, tutor.Email, models.RoleTutor)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("tutorID", tutor.TutorID).Msg("Tutor logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleTutor),
		Name:      tutor.Name,
		Email:     tutor.Email,
	}, nil
}

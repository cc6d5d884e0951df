package services

import (
	"strconv"
	"strings"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
)

// TutorService handles tutor management operations
type TutorService interface {
	Create(req *dto.CreateTutorRequest) (*models.Tutor, error)
	GetAll() []models.Tutor
	GetActive() []models.Tutor
	GetByLanguage(language string) []models.Tutor
	GetByID(tutorID string) (*models.Tutor, error)
	Update(tutorID string, req *dto.UpdateTutorRequest) (*models.Tutor, error)
	Delete(tutorID string) error
}

type tutorService struct {
	tutors *repositories.TutorRepository
}

// NewTutorService creates a new TutorService
func NewTutorService(tutors *repositories.TutorRepository) TutorService {
	return &tutorService{tutors: tutors}
}

// Create adds a tutor. Email addresses identify tutors at login, so a
// duplicate address is rejected.
func (s *tutorService) Create(req *dto.CreateTutorRequest) (*models.Tutor, error) {
	if _, err := s.tutors.GetByEmail(req.Email); err == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrConflict, "A tutor with this email already exists")
	}

	tutor := &models.Tutor{
		Name:              req.Name,
		Email:             req.Email,
		LanguagesTeaching: req.LanguagesTeaching,
		AvailableTimes:    req.AvailableTimes,
		ContactNumber:     req.ContactNumber,
		Specialization:    req.Specialization,
		ExperienceYears:   req.ExperienceYears,
		Rating:            req.Rating,
	}

	if _, err := s.tutors.Add(tutor); err != nil {
		return nil, err
	}
	return tutor, nil
}

func (s *tutorService) GetAll() []models.Tutor {
	return s.tutors.GetAll()
}

func (s *tutorService) GetActive() []models.Tutor {
	return s.tutors.GetActive()
}

func (s *tutorService) GetByLanguage(language string) []models.Tutor {
	return s.tutors.GetByLanguage(language)
}

func (s *tutorService) GetByID(tutorID string) (*models.Tutor, error) {
	return s.tutors.GetByID(tutorID)
}

// Update applies an admin patch. Only the fields present in the request
// are written.
func (s *tutorService) Update(tutorID string, req *dto.UpdateTutorRequest) (*models.Tutor, error) {
	fields := map[string]string{}
	setString(fields, repositories.ColTutorName, req.Name)
	// stored addresses are always lower case
	if req.Email != nil {
		fields[repositories.ColTutorEmail] = strings.ToLower(*req.Email)
	}
	setString(fields, repositories.ColLanguagesTeaching, req.LanguagesTeaching)
	setString(fields, repositories.ColAvailableTimes, req.AvailableTimes)
	setString(fields, repositories.ColContactNumber, req.ContactNumber)
	setString(fields, repositories.ColSpecialization, req.Specialization)
	if req.ExperienceYears != nil {
		fields[repositories.ColExperienceYears] = strconv.Itoa(*req.ExperienceYears)
	}
	if req.Rating != nil {
		fields[repositories.ColRating] = strconv.FormatFloat(*req.Rating, 'f', -1, 64)
	}

	if req.Status != nil {
		if !validTutorStatus(*req.Status) {
			return nil, apperrors.NewValidationError([]string{"unknown status: " + *req.Status})
		}
		fields[repositories.ColTutorStatus] = *req.Status
	}

	if len(fields) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "No fields to update")
	}

	if err := s.tutors.Update(tutorID, fields); err != nil {
		return nil, err
	}
	return s.tutors.GetByID(tutorID)
}

func (s *tutorService) Delete(tutorID string) error {
	return s.tutors.Delete(tutorID)
}

func validTutorStatus(status string) bool {
	for _, s := range models.TutorStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

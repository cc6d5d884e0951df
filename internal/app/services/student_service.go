package services

import (
	"strconv"
	"strings"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
	"github.com/vocabolarium/backend/internal/pkg/email"
	"github.com/vocabolarium/backend/internal/pkg/logger"
	"github.com/vocabolarium/backend/internal/pkg/validation"
)

// RegisterOutcome reports a recorded registration together with the
// confirmation email result. A failed email never undoes the record.
type RegisterOutcome struct {
	Student      models.Student
	EmailSent    bool
	EmailMessage string
}

// DecisionOutcome reports an approval or rejection together with the
// notification email result
type DecisionOutcome struct {
	Student      models.Student
	EmailSent    bool
	EmailMessage string
}

// StudentService handles registration lifecycle operations
type StudentService interface {
	Register(req *dto.RegisterStudentRequest) (*RegisterOutcome, error)
	GetAll() []models.Student
	GetByStatus(status models.StudentStatus) []models.Student
	GetByTutor(tutorName string) []models.Student
	Search(term string) []models.Student
	GetByID(registrationID string) (*models.Student, error)
	Update(registrationID string, req *dto.UpdateStudentRequest) (*models.Student, error)
	UpdateByTutor(registrationID, tutorName string, req *dto.TutorUpdateStudentRequest) (*models.Student, error)
	Delete(registrationID string) error
	Approve(registrationID, tutorName, meetLink string) (*DecisionOutcome, error)
	Reject(registrationID, reason string) (*DecisionOutcome, error)
}

type studentService struct {
	students *repositories.StudentRepository
	tutors   *repositories.TutorRepository
	mailer   *email.Mailer
	rules    validation.Rules
}

// NewStudentService creates a new StudentService
func NewStudentService(
	students *repositories.StudentRepository,
	tutors *repositories.TutorRepository,
	mailer *email.Mailer,
	rules validation.Rules,
) StudentService {
	return &studentService{
		students: students,
		tutors:   tutors,
		mailer:   mailer,
		rules:    rules,
	}
}

// Register validates and records a new registration, then sends the
// confirmation email with payment instructions
func (s *studentService) Register(req *dto.RegisterStudentRequest) (*RegisterOutcome, error) {
	problems := s.rules.CheckRegistration(validation.RegistrationInput{
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Language:        req.Language,
		ScheduledTime:   req.ScheduledTime,
		SessionInterval: req.SessionInterval,
		PaymentOption:   req.PaymentOption,
		TermsAccepted:   req.TermsAccepted,
	})
	if len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems)
	}

	student := &models.Student{
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Language:        req.Language,
		PreferredTutor:  req.PreferredTutor,
		ScheduledTime:   req.ScheduledTime,
		SessionInterval: req.SessionInterval,
		PaymentOption:   req.PaymentOption,
		Notes:           req.Notes,
	}

	if _, err := s.students.Add(student); err != nil {
		return nil, err
	}

	sent, msg := s.mailer.SendRegistrationConfirmation(student)
	return &RegisterOutcome{Student: *student, EmailSent: sent, EmailMessage: msg}, nil
}

func (s *studentService) GetAll() []models.Student {
	return s.students.GetAll()
}

func (s *studentService) GetByStatus(status models.StudentStatus) []models.Student {
	return s.students.GetByStatus(status)
}

func (s *studentService) GetByTutor(tutorName string) []models.Student {
	return s.students.GetByTutor(tutorName)
}

func (s *studentService) Search(term string) []models.Student {
	return s.students.Search(term)
}

func (s *studentService) GetByID(registrationID string) (*models.Student, error) {
	return s.students.GetByID(registrationID)
}

// Update applies an admin patch. Only the fields present in the request
// are written; everything else stays as stored.
func (s *studentService) Update(registrationID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	fields := map[string]string{}
	setString(fields, repositories.ColStudentName, req.Name)
	// stored addresses are always lower case
	if req.Email != nil {
		fields[repositories.ColStudentEmail] = strings.ToLower(*req.Email)
	}
	if req.Age != nil {
		fields[repositories.ColAge] = strconv.Itoa(*req.Age)
	}
	setString(fields, repositories.ColLanguage, req.Language)
	setString(fields, repositories.ColPreferredTutor, req.PreferredTutor)
	setString(fields, repositories.ColScheduledTime, req.ScheduledTime)
	setString(fields, repositories.ColSessionInterval, req.SessionInterval)
	setString(fields, repositories.ColPaymentOption, req.PaymentOption)
	setString(fields, repositories.ColAssignedTutor, req.AssignedTutor)
	setString(fields, repositories.ColGoogleMeetLink, req.GoogleMeetLink)
	setString(fields, repositories.ColPaymentStatus, req.PaymentStatus)
	setString(fields, repositories.ColPaymentDate, req.PaymentDate)
	setString(fields, repositories.ColNotes, req.Notes)

	if req.Status != nil {
		if !validStudentStatus(*req.Status) {
			return nil, apperrors.NewValidationError([]string{"unknown status: " + *req.Status})
		}
		fields[repositories.ColStudentStatus] = *req.Status
	}

	if len(fields) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "No fields to update")
	}

	if err := s.students.Update(registrationID, fields); err != nil {
		return nil, err
	}
	return s.students.GetByID(registrationID)
}

// UpdateByTutor applies the narrower patch a tutor may make, and only to
// students assigned to that tutor
func (s *studentService) UpdateByTutor(registrationID, tutorName string, req *dto.TutorUpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(registrationID)
	if err != nil {
		return nil, err
	}
	if student.AssignedTutor != tutorName {
		return nil, apperrors.ErrPermissionDenied
	}

	fields := map[string]string{}
	if req.Status != nil {
		switch models.StudentStatus(*req.Status) {
		case models.StudentActive, models.StudentCompleted, models.StudentSuspended:
			fields[repositories.ColStudentStatus] = *req.Status
		default:
			return nil, apperrors.NewValidationError([]string{"tutors may only set status to Active, Completed or Suspended"})
		}
	}
	setString(fields, repositories.ColNotes, req.Notes)
	setString(fields, repositories.ColGoogleMeetLink, req.GoogleMeetLink)

	if len(fields) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "No fields to update")
	}

	if err := s.students.Update(registrationID, fields); err != nil {
		return nil, err
	}
	return s.students.GetByID(registrationID)
}

func (s *studentService) Delete(registrationID string) error {
	return s.students.Delete(registrationID)
}

// Approve marks a registration approved with its tutor assignment and
// class link, then sends the approval email. An empty link gets a
// generated placeholder.
func (s *studentService) Approve(registrationID, tutorName, meetLink string) (*DecisionOutcome, error) {
	student, err := s.students.GetByID(registrationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.tutors.GetByName(tutorName); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrTutorNotFound, "Assigned tutor not found: "+tutorName)
	}

	if meetLink == "" {
		meetLink = email.GenerateMeetLink()
	}

	err = s.students.Update(registrationID, map[string]string{
		repositories.ColStudentStatus:  string(models.StudentApproved),
		repositories.ColAssignedTutor:  tutorName,
		repositories.ColGoogleMeetLink: meetLink,
	})
	if err != nil {
		return nil, err
	}

	student.Status = models.StudentApproved
	student.AssignedTutor = tutorName
	student.GoogleMeetLink = meetLink

	sent, msg := s.mailer.SendApprovalEmail(student, tutorName, meetLink)
	logger.Info().Str("registrationID", registrationID).Str("tutor", tutorName).Msg("Registration approved")
	return &DecisionOutcome{Student: *student, EmailSent: sent, EmailMessage: msg}, nil
}

// Reject marks a registration rejected and sends the rejection notice.
// The reason goes into the email only, not the table.
func (s *studentService) Reject(registrationID, reason string) (*DecisionOutcome, error) {
	student, err := s.students.GetByID(registrationID)
	if err != nil {
		return nil, err
	}

	err = s.students.Update(registrationID, map[string]string{
		repositories.ColStudentStatus: string(models.StudentRejected),
	})
	if err != nil {
		return nil, err
	}

	student.Status = models.StudentRejected

	sent, msg := s.mailer.SendRejectionEmail(student, reason)
	logger.Info().Str("registrationID", registrationID).Msg("Registration rejected")
	return &DecisionOutcome{Student: *student, EmailSent: sent, EmailMessage: msg}, nil
}

func setString(fields map[string]string, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func validStudentStatus(status string) bool {
	for _, s := range models.StudentStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

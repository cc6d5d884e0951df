package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
	"github.com/vocabolarium/backend/internal/pkg/email"
	"github.com/vocabolarium/backend/internal/pkg/validation"
)

// deadMailer returns a Mailer pointed at a port nothing listens on, so
// sends fail fast without touching the network
func deadMailer() *email.Mailer {
	return email.NewMailer(email.Config{
		Host:        "127.0.0.1",
		Port:        1,
		SenderEmail: "noreply@vocabolarium.test",
		FromName:    "Vocabolarium",
	}, zerolog.Nop())
}

func newStudentFixture(t *testing.T) (StudentService, *repositories.Container) {
	t.Helper()

	repos := repositories.NewContainer(t.TempDir(), t.TempDir())
	_, err := repos.Init()
	require.NoError(t, err)

	rules := validation.Rules{
		MinAge:           5,
		MaxAge:           100,
		Languages:        []string{"Korean", "Japanese"},
		SessionIntervals: []string{"2 times per week"},
		TimeSlots:        []string{"10:00 AM - 1:00 PM"},
		PaymentOptions:   []string{"GCash", "Bank Transfer", "PayPal"},
	}

	svc := NewStudentService(repos.Students, repos.Tutors, deadMailer(), rules)
	return svc, repos
}

func validRegistration() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Name:            "Juan Dela Cruz",
		Email:           "juan@example.com",
		Age:             21,
		Language:        "Korean",
		PreferredTutor:  "Angeline Janer",
		ScheduledTime:   "10:00 AM - 1:00 PM",
		SessionInterval: "2 times per week",
		PaymentOption:   "GCash",
		TermsAccepted:   true,
	}
}

func TestRegisterRecordsStudentDespiteEmailFailure(t *testing.T) {
	svc, repos := newStudentFixture(t)

	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	assert.Equal(t, "REG0001", outcome.Student.RegistrationID)
	assert.False(t, outcome.EmailSent)
	assert.NotEmpty(t, outcome.EmailMessage)

	stored, err := repos.Students.GetByID("REG0001")
	require.NoError(t, err)
	assert.Equal(t, models.StudentPending, stored.Status)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc, repos := newStudentFixture(t)

	req := validRegistration()
	req.Age = 2
	req.Language = "Klingon"

	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repos.Students.GetAll())
}

func TestRegisterRejectsDeclinedTerms(t *testing.T) {
	svc, repos := newStudentFixture(t)

	req := validRegistration()
	req.TermsAccepted = false

	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repos.Students.GetAll())
}

func TestApproveAssignsTutorAndLink(t *testing.T) {
	svc, repos := newStudentFixture(t)

	_, err := repos.Tutors.Add(&models.Tutor{Name: "Angeline Janer", Email: "angeline@example.com", LanguagesTeaching: "Korean"})
	require.NoError(t, err)
	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	decision, err := svc.Approve(outcome.Student.RegistrationID, "Angeline Janer", "")
	require.NoError(t, err)

	assert.Equal(t, models.StudentApproved, decision.Student.Status)
	assert.Equal(t, "Angeline Janer", decision.Student.AssignedTutor)
	assert.Contains(t, decision.Student.GoogleMeetLink, "https://meet.google.com/")

	stored, err := repos.Students.GetByID(outcome.Student.RegistrationID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentApproved, stored.Status)
	assert.Equal(t, decision.Student.GoogleMeetLink, stored.GoogleMeetLink)
}

func TestApproveUnknownTutor(t *testing.T) {
	svc, _ := newStudentFixture(t)

	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Approve(outcome.Student.RegistrationID, "Nobody", "")
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)
}

func TestRejectMarksStudentRejected(t *testing.T) {
	svc, repos := newStudentFixture(t)

	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	decision, err := svc.Reject(outcome.Student.RegistrationID, "Payment not received")
	require.NoError(t, err)
	assert.Equal(t, models.StudentRejected, decision.Student.Status)

	stored, err := repos.Students.GetByID(outcome.Student.RegistrationID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentRejected, stored.Status)
	// reason goes into the email only
	assert.Empty(t, stored.Notes)
}

func TestUpdateByTutorChecksAssignment(t *testing.T) {
	svc, repos := newStudentFixture(t)

	_, err := repos.Tutors.Add(&models.Tutor{Name: "Angeline Janer", Email: "angeline@example.com", LanguagesTeaching: "Korean"})
	require.NoError(t, err)
	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)
	_, err = svc.Approve(outcome.Student.RegistrationID, "Angeline Janer", "")
	require.NoError(t, err)

	status := string(models.StudentActive)
	notes := "First session done"
	updated, err := svc.UpdateByTutor(outcome.Student.RegistrationID, "Angeline Janer", &dto.TutorUpdateStudentRequest{
		Status: &status,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, updated.Status)
	assert.Equal(t, notes, updated.Notes)

	_, err = svc.UpdateByTutor(outcome.Student.RegistrationID, "Someone Else", &dto.TutorUpdateStudentRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	bad := string(models.StudentApproved)
	_, err = svc.UpdateByTutor(outcome.Student.RegistrationID, "Angeline Janer", &dto.TutorUpdateStudentRequest{Status: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateValidatesStatus(t *testing.T) {
	svc, _ := newStudentFixture(t)

	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	bad := "Nonsense"
	_, err = svc.Update(outcome.Student.RegistrationID, &dto.UpdateStudentRequest{Status: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	good := string(models.StudentSuspended)
	updated, err := svc.Update(outcome.Student.RegistrationID, &dto.UpdateStudentRequest{Status: &good})
	require.NoError(t, err)
	assert.Equal(t, models.StudentSuspended, updated.Status)
}

func TestUpdateLowercasesEmail(t *testing.T) {
	svc, _ := newStudentFixture(t)

	outcome, err := svc.Register(validRegistration())
	require.NoError(t, err)

	mixed := "Juan.Cruz@Example.COM"
	updated, err := svc.Update(outcome.Student.RegistrationID, &dto.UpdateStudentRequest{Email: &mixed})
	require.NoError(t, err)
	assert.Equal(t, "juan.cruz@example.com", updated.Email)
}

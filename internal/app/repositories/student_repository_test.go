package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
)

func newStudentRepo(t *testing.T) *StudentRepository {
	t.Helper()
	repo := NewStudentRepository(t.TempDir())
	require.NoError(t, repo.Init())
	return repo
}

func sampleStudent(name, email, language string) *models.Student {
	return &models.Student{
		Name:            name,
		Email:           email,
		Age:             21,
		Language:        language,
		PreferredTutor:  "Angeline Janer",
		ScheduledTime:   "10:00 AM - 1:00 PM",
		SessionInterval: "2 times per week",
		PaymentOption:   "GCash",
	}
}

func TestStudentAddAssignsSequentialIDs(t *testing.T) {
	repo := newStudentRepo(t)

	first, err := repo.Add(sampleStudent("Juan Dela Cruz", "juan@example.com", "Korean"))
	require.NoError(t, err)
	second, err := repo.Add(sampleStudent("Maria Clara", "maria@example.com", "Japanese"))
	require.NoError(t, err)

	assert.Equal(t, "REG0001", first)
	assert.Equal(t, "REG0002", second)
}

func TestStudentAddAppliesDefaults(t *testing.T) {
	repo := newStudentRepo(t)

	id, err := repo.Add(sampleStudent("Juan Dela Cruz", "Juan@Example.COM", "Korean"))
	require.NoError(t, err)

	student, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StudentPending, student.Status)
	assert.Equal(t, models.PaymentPending, student.PaymentStatus)
	assert.Equal(t, "Angeline Janer", student.AssignedTutor)
	assert.Equal(t, "juan@example.com", student.Email)
	assert.NotEmpty(t, student.RegistrationDate)
}

func TestStudentIDReuseAfterDelete(t *testing.T) {
	repo := newStudentRepo(t)

	_, err := repo.Add(sampleStudent("A", "a@example.com", "Korean"))
	require.NoError(t, err)
	second, err := repo.Add(sampleStudent("B", "b@example.com", "Korean"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(second))

	// the highest numeric suffix was freed, so the next registration
	// takes it again
	third, err := repo.Add(sampleStudent("C", "c@example.com", "Korean"))
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestStudentFilters(t *testing.T) {
	repo := newStudentRepo(t)

	_, err := repo.Add(sampleStudent("Juan Dela Cruz", "juan@example.com", "Korean"))
	require.NoError(t, err)
	id, err := repo.Add(sampleStudent("Maria Clara", "maria@example.com", "Japanese"))
	require.NoError(t, err)
	require.NoError(t, repo.Update(id, map[string]string{
		ColStudentStatus: string(models.StudentApproved),
		ColAssignedTutor: "Princess Erica Ingco",
	}))

	assert.Len(t, repo.GetByStatus(models.StudentPending), 1)
	assert.Len(t, repo.GetByStatus(models.StudentApproved), 1)
	assert.Len(t, repo.GetByLanguage("Japanese"), 1)
	assert.Len(t, repo.GetByTutor("Princess Erica Ingco"), 1)
	assert.Empty(t, repo.GetByTutor("Nobody"))
}

func TestStudentSearch(t *testing.T) {
	repo := newStudentRepo(t)

	_, err := repo.Add(sampleStudent("Juan Dela Cruz", "juan@example.com", "Korean"))
	require.NoError(t, err)
	_, err = repo.Add(sampleStudent("Maria Clara", "maria@example.com", "Japanese"))
	require.NoError(t, err)

	tests := []struct {
		name string
		term string
		want int
	}{
		{name: "by name case-insensitive", term: "juan", want: 1},
		{name: "by email fragment", term: "MARIA@", want: 1},
		{name: "by registration id", term: "reg000", want: 2},
		{name: "no match", term: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, repo.Search(tt.term), tt.want)
		})
	}
}

func TestStudentUpdateIgnoresUnknownColumns(t *testing.T) {
	repo := newStudentRepo(t)

	id, err := repo.Add(sampleStudent("Juan Dela Cruz", "juan@example.com", "Korean"))
	require.NoError(t, err)

	err = repo.Update(id, map[string]string{
		ColStudentName: "Juan D. Cruz",
		"Not_A_Column": "ignored",
	})
	require.NoError(t, err)

	student, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Juan D. Cruz", student.Name)
	assert.Equal(t, "juan@example.com", student.Email)
	assert.Equal(t, "Korean", student.Language)
}

func TestStudentUpdateNotFound(t *testing.T) {
	repo := newStudentRepo(t)
	err := repo.Update("REG9999", map[string]string{ColNotes: "x"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentDeleteNotFound(t *testing.T) {
	repo := newStudentRepo(t)
	assert.ErrorIs(t, repo.Delete("REG9999"), apperrors.ErrStudentNotFound)
}

func TestStudentGetByIDNotFound(t *testing.T) {
	repo := newStudentRepo(t)
	_, err := repo.GetByID("REG0001")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
)

func newTutorRepo(t *testing.T) *TutorRepository {
	t.Helper()
	repo := NewTutorRepository(t.TempDir())
	created, err := repo.Init()
	require.NoError(t, err)
	require.True(t, created)
	return repo
}

func sampleTutor(name, email, languages string) *models.Tutor {
	return &models.Tutor{
		Name:              name,
		Email:             email,
		LanguagesTeaching: languages,
		AvailableTimes:    "Mon-Fri 9AM-5PM",
		ContactNumber:     "+63 917 111 2222",
		ExperienceYears:   5,
		Rating:            4.8,
	}
}

func TestTutorAddAssignsSequentialIDs(t *testing.T) {
	repo := newTutorRepo(t)

	first, err := repo.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean, Japanese"))
	require.NoError(t, err)
	second, err := repo.Add(sampleTutor("Ashanti Jumawan", "ashanti@example.com", "Mandarin"))
	require.NoError(t, err)

	assert.Equal(t, "TUT001", first)
	assert.Equal(t, "TUT002", second)
}

func TestTutorAddAppliesDefaults(t *testing.T) {
	repo := newTutorRepo(t)

	id, err := repo.Add(sampleTutor("Angeline Janer", "Angeline@Example.COM", "Korean"))
	require.NoError(t, err)

	tutor, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.TutorActive, tutor.Status)
	assert.Equal(t, "angeline@example.com", tutor.Email)
	assert.NotEmpty(t, tutor.DateAdded)
	assert.Equal(t, 5, tutor.ExperienceYears)
	assert.Equal(t, 4.8, tutor.Rating)
}

func TestTutorGetByEmailCaseInsensitive(t *testing.T) {
	repo := newTutorRepo(t)

	_, err := repo.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean"))
	require.NoError(t, err)

	tutor, err := repo.GetByEmail("ANGELINE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Angeline Janer", tutor.Name)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)
}

func TestTutorGetByLanguageMatchesActiveOnly(t *testing.T) {
	repo := newTutorRepo(t)

	_, err := repo.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean, Japanese"))
	require.NoError(t, err)
	inactive, err := repo.Add(sampleTutor("Ashanti Jumawan", "ashanti@example.com", "Korean"))
	require.NoError(t, err)
	require.NoError(t, repo.Update(inactive, map[string]string{
		ColTutorStatus: string(models.TutorOnLeave),
	}))

	matched := repo.GetByLanguage("korean")
	require.Len(t, matched, 1)
	assert.Equal(t, "Angeline Janer", matched[0].Name)

	assert.Empty(t, repo.GetByLanguage("Filipino"))
}

func TestTutorGetActive(t *testing.T) {
	repo := newTutorRepo(t)

	_, err := repo.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean"))
	require.NoError(t, err)
	id, err := repo.Add(sampleTutor("Ashanti Jumawan", "ashanti@example.com", "Mandarin"))
	require.NoError(t, err)
	require.NoError(t, repo.Update(id, map[string]string{
		ColTutorStatus: string(models.TutorInactive),
	}))

	active := repo.GetActive()
	require.Len(t, active, 1)
	assert.Equal(t, "Angeline Janer", active[0].Name)
}

func TestTutorDelete(t *testing.T) {
	repo := newTutorRepo(t)

	id, err := repo.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(id))

	_, err = repo.GetByID(id)
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)
	assert.ErrorIs(t, repo.Delete(id), apperrors.ErrTutorNotFound)
}

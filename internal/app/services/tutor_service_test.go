package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/app/models/dto"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
)

func newTutorFixture(t *testing.T) (TutorService, *repositories.Container) {
	t.Helper()

	repos := repositories.NewContainer(t.TempDir(), t.TempDir())
	_, err := repos.Init()
	require.NoError(t, err)

	return NewTutorService(repos.Tutors), repos
}

func TestTutorCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTutorFixture(t)

	req := &dto.CreateTutorRequest{Name: "Angeline Janer", Email: "angeline@example.com", LanguagesTeaching: "Korean"}
	_, err := svc.Create(req)
	require.NoError(t, err)

	dup := &dto.CreateTutorRequest{Name: "Someone Else", Email: "Angeline@Example.com", LanguagesTeaching: "Japanese"}
	_, err = svc.Create(dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestTutorUpdateLowercasesEmail(t *testing.T) {
	svc, _ := newTutorFixture(t)

	created, err := svc.Create(&dto.CreateTutorRequest{Name: "Angeline Janer", Email: "angeline@example.com", LanguagesTeaching: "Korean"})
	require.NoError(t, err)

	mixed := "Angeline.Janer@Example.COM"
	updated, err := svc.Update(created.TutorID, &dto.UpdateTutorRequest{Email: &mixed})
	require.NoError(t, err)
	assert.Equal(t, "angeline.janer@example.com", updated.Email)
}

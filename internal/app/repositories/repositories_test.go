package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/app/models"
)

func newContainer(t *testing.T) *Container {
	t.Helper()
	dataDir := t.TempDir()
	c := NewContainer(dataDir, filepath.Join(dataDir, "backups"))
	created, err := c.Init()
	require.NoError(t, err)
	require.True(t, created)
	return c
}

func TestStatisticsEmptyTables(t *testing.T) {
	c := newContainer(t)

	stats := c.Statistics()
	assert.Zero(t, stats.TotalStudents)
	assert.Zero(t, stats.TotalTutors)
	assert.Empty(t, stats.LanguageDistribution)
	assert.Empty(t, stats.PaymentMethods)
}

func TestStatisticsCountsBothTables(t *testing.T) {
	c := newContainer(t)

	_, err := c.Students.Add(sampleStudent("A", "a@example.com", "Korean"))
	require.NoError(t, err)
	_, err = c.Students.Add(sampleStudent("B", "b@example.com", "Korean"))
	require.NoError(t, err)
	approved, err := c.Students.Add(sampleStudent("C", "c@example.com", "Japanese"))
	require.NoError(t, err)
	require.NoError(t, c.Students.Update(approved, map[string]string{
		ColStudentStatus: string(models.StudentApproved),
	}))

	_, err = c.Tutors.Add(sampleTutor("Angeline Janer", "angeline@example.com", "Korean"))
	require.NoError(t, err)
	inactive, err := c.Tutors.Add(sampleTutor("Ashanti Jumawan", "ashanti@example.com", "Mandarin"))
	require.NoError(t, err)
	require.NoError(t, c.Tutors.Update(inactive, map[string]string{
		ColTutorStatus: string(models.TutorInactive),
	}))

	stats := c.Statistics()
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.PendingStudents)
	assert.Equal(t, 1, stats.ApprovedStudents)
	assert.Zero(t, stats.RejectedStudents)
	assert.Equal(t, 2, stats.TotalTutors)
	assert.Equal(t, 1, stats.ActiveTutors)
	assert.Equal(t, map[string]int{"Korean": 2, "Japanese": 1}, stats.LanguageDistribution)
	assert.Equal(t, map[string]int{"GCash": 3}, stats.PaymentMethods)
}

func TestBackupCopiesBothTables(t *testing.T) {
	c := newContainer(t)

	_, err := c.Students.Add(sampleStudent("A", "a@example.com", "Korean"))
	require.NoError(t, err)

	files, err := c.Backup()
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
		assert.Equal(t, ".xlsx", filepath.Ext(f))
	}
}

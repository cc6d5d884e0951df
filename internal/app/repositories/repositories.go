// Package repositories implements the data access layer over the table
// files. Each repository owns one workbook and exposes typed operations on
// it; the container wires both together with cross-table reports and
// backups.
package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/db"
	"github.com/vocabolarium/backend/internal/pkg/logger"
)

// Statistics is an aggregate snapshot of both tables
type Statistics struct {
	TotalStudents        int            `json:"totalStudents"`
	PendingStudents      int            `json:"pendingStudents"`
	ApprovedStudents     int            `json:"approvedStudents"`
	RejectedStudents     int            `json:"rejectedStudents"`
	TotalTutors          int            `json:"totalTutors"`
	ActiveTutors         int            `json:"activeTutors"`
	LanguageDistribution map[string]int `json:"languageDistribution"`
	PaymentMethods       map[string]int `json:"paymentMethods"`
}

// Container holds both repositories and shared table-level operations
type Container struct {
	Students  *StudentRepository
	Tutors    *TutorRepository
	backupDir string
}

// NewContainer creates repositories for both tables under dataDir.
// Backups are written under backupDir.
func NewContainer(dataDir, backupDir string) *Container {
	return &Container{
		Students:  NewStudentRepository(dataDir),
		Tutors:    NewTutorRepository(dataDir),
		backupDir: backupDir,
	}
}

// Init creates or migrates both table files. Returns whether the tutors
// table was newly created, which gates sample-data seeding.
func (c *Container) Init() (tutorsCreated bool, err error) {
	if err := c.Students.Init(); err != nil {
		return false, fmt.Errorf("init students table: %w", err)
	}
	tutorsCreated, err = c.Tutors.Init()
	if err != nil {
		return false, fmt.Errorf("init tutors table: %w", err)
	}
	return tutorsCreated, nil
}

// Statistics computes an aggregate snapshot of both tables
func (c *Container) Statistics() Statistics {
	stats := Statistics{
		LanguageDistribution: map[string]int{},
		PaymentMethods:       map[string]int{},
	}

	for _, s := range c.Students.GetAll() {
		stats.TotalStudents++
		switch s.Status {
		case models.StudentPending:
			stats.PendingStudents++
		case models.StudentApproved:
			stats.ApprovedStudents++
		case models.StudentRejected:
			stats.RejectedStudents++
		}
		if s.Language != "" {
			stats.LanguageDistribution[s.Language]++
		}
		if s.PaymentOption != "" {
			stats.PaymentMethods[s.PaymentOption]++
		}
	}

	for _, t := range c.Tutors.GetAll() {
		stats.TotalTutors++
		if t.Status == models.TutorActive {
			stats.ActiveTutors++
		}
	}

	return stats
}

// Backup copies both table files into the backup directory with a shared
// timestamp suffix and returns the created file paths. Tables that do not
// exist yet are skipped.
func (c *Container) Backup() ([]string, error) {
	if err := os.MkdirAll(c.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	created := []string{}
	for _, table := range []*db.Table{c.Students.Table(), c.Tutors.Table()} {
		base := filepath.Base(table.Path())
		ext := filepath.Ext(base)
		dst := filepath.Join(c.backupDir, fmt.Sprintf("%s_%s%s", base[:len(base)-len(ext)], stamp, ext))

		// copy under the table lock so an in-flight rewrite cannot
		// leave a torn file in the backup
		copied, err := table.CopyTo(dst)
		if err != nil {
			return created, err
		}
		if copied {
			created = append(created, dst)
		}
	}

	logger.Info().Int("files", len(created)).Str("dir", c.backupDir).Msg("Backup completed")
	return created, nil
}

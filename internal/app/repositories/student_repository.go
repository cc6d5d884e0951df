package repositories

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/db"
	"github.com/vocabolarium/backend/internal/pkg/apperrors"
	"github.com/vocabolarium/backend/internal/pkg/logger"
)

// StudentsFile is the workbook name of the students table
const StudentsFile = "students.xlsx"

// Student table column names, exactly as written into the file header.
// External tooling reads these files directly; renaming or reordering a
// column breaks that contract.
const (
	ColRegistrationID   = "Registration_ID"
	ColStudentName      = "Name"
	ColStudentEmail     = "Email"
	ColAge              = "Age"
	ColLanguage         = "Language"
	ColPreferredTutor   = "Preferred_Tutor"
	ColScheduledTime    = "Scheduled_Time"
	ColSessionInterval  = "Session_Interval"
	ColPaymentOption    = "Payment_Option"
	ColRegistrationDate = "Registration_Date"
	ColStudentStatus    = "Status"
	ColAssignedTutor    = "Assigned_Tutor"
	ColGoogleMeetLink   = "Google_Meet_Link"
	ColPaymentStatus    = "Payment_Status"
	ColPaymentDate      = "Payment_Date"
	ColNotes            = "Notes"
)

// studentColumns is the full student table header, in file order
var studentColumns = []string{
	ColRegistrationID,
	ColStudentName,
	ColStudentEmail,
	ColAge,
	ColLanguage,
	ColPreferredTutor,
	ColScheduledTime,
	ColSessionInterval,
	ColPaymentOption,
	ColRegistrationDate,
	ColStudentStatus,
	ColAssignedTutor,
	ColGoogleMeetLink,
	ColPaymentStatus,
	ColPaymentDate,
	ColNotes,
}

// studentCol maps a column name to its index in the header
var studentCol = func() map[string]int {
	m := make(map[string]int, len(studentColumns))
	for i, name := range studentColumns {
		m[name] = i
	}
	return m
}()

// StudentRepository handles student table operations
type StudentRepository struct {
	table *db.Table
}

// NewStudentRepository creates a StudentRepository backed by the students
// workbook in dataDir
func NewStudentRepository(dataDir string) *StudentRepository {
	return &StudentRepository{
		table: db.NewTable(filepath.Join(dataDir, StudentsFile), studentColumns),
	}
}

// Init creates the students table file if absent, or migrates an existing
// one to the current column set. Idempotent.
func (r *StudentRepository) Init() error {
	_, err := r.table.Init()
	return err
}

// Table exposes the underlying table, used for backups
func (r *StudentRepository) Table() *db.Table {
	return r.table
}

// Add appends a new registration and returns the assigned identifier.
// Field validation is the caller's responsibility; the store persists what
// it is given. Only I/O or serialization faults produce an error.
func (r *StudentRepository) Add(student *models.Student) (string, error) {
	var newID string
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		newID = nextStudentID(rows)

		student.RegistrationID = newID
		student.Email = strings.ToLower(student.Email)
		student.RegistrationDate = time.Now().Format(models.TimeLayout)
		if student.Status == "" {
			student.Status = models.StudentPending
		}
		// The preferred tutor is the initial assignment; approval
		// overwrites it with the authoritative one.
		student.AssignedTutor = student.PreferredTutor
		if student.PaymentStatus == "" {
			student.PaymentStatus = models.PaymentPending
		}

		return append(rows, studentToRow(student)), nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error adding student")
		return "", fmt.Errorf("error adding student: %w", err)
	}

	logger.Info().Str("registrationID", newID).Msg("Student added successfully")
	return newID, nil
}

// GetAll returns every registration in file order. An empty and an
// unreadable table both yield an empty slice; callers treat them the same.
func (r *StudentRepository) GetAll() []models.Student {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Error().Err(err).Msg("Error reading students table")
		return []models.Student{}
	}

	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, studentFromRow(row))
	}
	return students
}

// GetByID returns the registration with the given identifier
func (r *StudentRepository) GetByID(registrationID string) (*models.Student, error) {
	for _, s := range r.GetAll() {
		if s.RegistrationID == registrationID {
			student := s
			return &student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetByStatus returns registrations with the given status, in file order
func (r *StudentRepository) GetByStatus(status models.StudentStatus) []models.Student {
	return r.filter(func(s models.Student) bool { return s.Status == status })
}

// GetByLanguage returns registrations for the given language course
func (r *StudentRepository) GetByLanguage(language string) []models.Student {
	return r.filter(func(s models.Student) bool { return s.Language == language })
}

// GetByTutor returns registrations assigned to the named tutor
func (r *StudentRepository) GetByTutor(tutorName string) []models.Student {
	return r.filter(func(s models.Student) bool { return s.AssignedTutor == tutorName })
}

// Search returns registrations whose name, email or identifier contains the
// term, case-insensitively.
func (r *StudentRepository) Search(term string) []models.Student {
	term = strings.ToLower(term)
	return r.filter(func(s models.Student) bool {
		return strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Email), term) ||
			strings.Contains(strings.ToLower(s.RegistrationID), term)
	})
}

// Update applies a field-level patch to one registration. Keys are column
// names; keys outside the schema are silently ignored.
func (r *StudentRepository) Update(registrationID string, fields map[string]string) error {
	found := false
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		for _, row := range rows {
			if row[studentCol[ColRegistrationID]] != registrationID {
				continue
			}
			found = true
			for key, value := range fields {
				if idx, ok := studentCol[key]; ok {
					row[idx] = value
				}
			}
			break
		}
		if !found {
			return nil, apperrors.ErrStudentNotFound
		}
		return rows, nil
	})
	if err != nil {
		if found {
			logger.Error().Err(err).Str("registrationID", registrationID).Msg("Error updating student")
		} else {
			logger.Warn().Str("registrationID", registrationID).Msg("Student not found for update")
		}
		return err
	}

	logger.Info().Str("registrationID", registrationID).Msg("Student updated successfully")
	return nil
}

// Delete removes every row matching the identifier (normally exactly one)
func (r *StudentRepository) Delete(registrationID string) error {
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		for _, row := range rows {
			if row[studentCol[ColRegistrationID]] != registrationID {
				kept = append(kept, row)
			}
		}
		if len(kept) == len(rows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return kept, nil
	})
	if err != nil {
		if err != apperrors.ErrStudentNotFound {
			logger.Error().Err(err).Str("registrationID", registrationID).Msg("Error deleting student")
		}
		return err
	}

	logger.Info().Str("registrationID", registrationID).Msg("Student deleted successfully")
	return nil
}

func (r *StudentRepository) filter(keep func(models.Student) bool) []models.Student {
	matched := []models.Student{}
	for _, s := range r.GetAll() {
		if keep(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

// nextStudentID computes the next sequential identifier from the numeric
// suffixes already present. Deleting the highest-numbered row frees its
// number for reuse; accepted behavior, not a defect.
func nextStudentID(rows [][]string) string {
	max := 0
	for _, row := range rows {
		id := row[studentCol[ColRegistrationID]]
		n, err := strconv.Atoi(strings.TrimPrefix(id, "REG"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("REG%04d", max+1)
}

func studentToRow(s *models.Student) []string {
	row := make([]string, len(studentColumns))
	row[studentCol[ColRegistrationID]] = s.RegistrationID
	row[studentCol[ColStudentName]] = s.Name
	row[studentCol[ColStudentEmail]] = s.Email
	row[studentCol[ColAge]] = strconv.Itoa(s.Age)
	row[studentCol[ColLanguage]] = s.Language
	row[studentCol[ColPreferredTutor]] = s.PreferredTutor
	row[studentCol[ColScheduledTime]] = s.ScheduledTime
	row[studentCol[ColSessionInterval]] = s.SessionInterval
	row[studentCol[ColPaymentOption]] = s.PaymentOption
	row[studentCol[ColRegistrationDate]] = s.RegistrationDate
	row[studentCol[ColStudentStatus]] = string(s.Status)
	row[studentCol[ColAssignedTutor]] = s.AssignedTutor
	row[studentCol[ColGoogleMeetLink]] = s.GoogleMeetLink
	row[studentCol[ColPaymentStatus]] = s.PaymentStatus
	row[studentCol[ColPaymentDate]] = s.PaymentDate
	row[studentCol[ColNotes]] = s.Notes
	return row
}

func studentFromRow(row []string) models.Student {
	age, _ := strconv.Atoi(row[studentCol[ColAge]])
	return models.Student{
		RegistrationID:   row[studentCol[ColRegistrationID]],
		Name:             row[studentCol[ColStudentName]],
		Email:            row[studentCol[ColStudentEmail]],
		Age:              age,
		Language:         row[studentCol[ColLanguage]],
		PreferredTutor:   row[studentCol[ColPreferredTutor]],
		ScheduledTime:    row[studentCol[ColScheduledTime]],
		SessionInterval:  row[studentCol[ColSessionInterval]],
		PaymentOption:    row[studentCol[ColPaymentOption]],
		RegistrationDate: row[studentCol[ColRegistrationDate]],
		Status:           models.StudentStatus(row[studentCol[ColStudentStatus]]),
		AssignedTutor:    row[studentCol[ColAssignedTutor]],
		GoogleMeetLink:   row[studentCol[ColGoogleMeetLink]],
		PaymentStatus:    row[studentCol[ColPaymentStatus]],
		PaymentDate:      row[studentCol[ColPaymentDate]],
		Notes:            row[studentCol[ColNotes]],
	}
}

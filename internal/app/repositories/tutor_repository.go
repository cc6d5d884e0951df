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

// TutorsFile is the workbook name of the tutors table
const TutorsFile = "tutors.xlsx"

// Tutor table column names, as written into the file header
const (
	ColTutorID           = "Tutor_ID"
	ColTutorName         = "Name"
	ColTutorEmail        = "Email"
	ColLanguagesTeaching = "Languages_Teaching"
	ColAvailableTimes    = "Available_Times"
	ColContactNumber     = "Contact_Number"
	ColDateAdded         = "Date_Added"
	ColTutorStatus       = "Status"
	ColSpecialization    = "Specialization"
	ColExperienceYears   = "Experience_Years"
	ColRating            = "Rating"
)

// tutorColumns is the full tutor table header, in file order
var tutorColumns = []string{
	ColTutorID,
	ColTutorName,
	ColTutorEmail,
	ColLanguagesTeaching,
	ColAvailableTimes,
	ColContactNumber,
	ColDateAdded,
	ColTutorStatus,
	ColSpecialization,
	ColExperienceYears,
	ColRating,
}

// tutorCol maps a column name to its index in the header
var tutorCol = func() map[string]int {
	m := make(map[string]int, len(tutorColumns))
	for i, name := range tutorColumns {
		m[name] = i
	}
	return m
}()

// TutorRepository handles tutor table operations
type TutorRepository struct {
	table *db.Table
}

// NewTutorRepository creates a TutorRepository backed by the tutors
// workbook in dataDir
func NewTutorRepository(dataDir string) *TutorRepository {
	return &TutorRepository{
		table: db.NewTable(filepath.Join(dataDir, TutorsFile), tutorColumns),
	}
}

// Init creates the tutors table file if absent, or migrates an existing one
// to the current column set. Returns whether the file was newly created so
// the seeder knows when to populate sample data.
func (r *TutorRepository) Init() (created bool, err error) {
	return r.table.Init()
}

// Table exposes the underlying table, used for backups
func (r *TutorRepository) Table() *db.Table {
	return r.table
}

// Add appends a new tutor and returns the assigned identifier
func (r *TutorRepository) Add(tutor *models.Tutor) (string, error) {
	var newID string
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		newID = nextTutorID(rows)

		tutor.TutorID = newID
		tutor.Email = strings.ToLower(tutor.Email)
		tutor.DateAdded = time.Now().Format(models.TimeLayout)
		if tutor.Status == "" {
			tutor.Status = models.TutorActive
		}

		return append(rows, tutorToRow(tutor)), nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error adding tutor")
		return "", fmt.Errorf("error adding tutor: %w", err)
	}

	logger.Info().Str("tutorID", newID).Msg("Tutor added successfully")
	return newID, nil
}

// GetAll returns every tutor in file order. An empty and an unreadable
// table both yield an empty slice.
func (r *TutorRepository) GetAll() []models.Tutor {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Error().Err(err).Msg("Error reading tutors table")
		return []models.Tutor{}
	}

	tutors := make([]models.Tutor, 0, len(rows))
	for _, row := range rows {
		tutors = append(tutors, tutorFromRow(row))
	}
	return tutors
}

// GetByID returns the tutor with the given identifier
func (r *TutorRepository) GetByID(tutorID string) (*models.Tutor, error) {
	for _, t := range r.GetAll() {
		if t.TutorID == tutorID {
			tutor := t
			return &tutor, nil
		}
	}
	return nil, apperrors.ErrTutorNotFound
}

// GetByEmail returns the tutor with the given email address,
// case-insensitively. Emails are stored lower case, so a stored address
// always matches its own lookup.
func (r *TutorRepository) GetByEmail(email string) (*models.Tutor, error) {
	email = strings.ToLower(email)
	for _, t := range r.GetAll() {
		if strings.ToLower(t.Email) == email {
			tutor := t
			return &tutor, nil
		}
	}
	return nil, apperrors.ErrTutorNotFound
}

// GetByName returns the tutor with the given display name
func (r *TutorRepository) GetByName(name string) (*models.Tutor, error) {
	for _, t := range r.GetAll() {
		if t.Name == name {
			tutor := t
			return &tutor, nil
		}
	}
	return nil, apperrors.ErrTutorNotFound
}

// GetByLanguage returns active tutors teaching the given language. The
// Languages_Teaching cell is a comma-separated list, matched
// case-insensitively by substring.
func (r *TutorRepository) GetByLanguage(language string) []models.Tutor {
	language = strings.ToLower(language)
	matched := []models.Tutor{}
	for _, t := range r.GetAll() {
		if t.Status != models.TutorActive {
			continue
		}
		if strings.Contains(strings.ToLower(t.LanguagesTeaching), language) {
			matched = append(matched, t)
		}
	}
	return matched
}

// GetActive returns tutors whose status is Active
func (r *TutorRepository) GetActive() []models.Tutor {
	matched := []models.Tutor{}
	for _, t := range r.GetAll() {
		if t.Status == models.TutorActive {
			matched = append(matched, t)
		}
	}
	return matched
}

// Update applies a field-level patch to one tutor. Keys are column names;
// keys outside the schema are silently ignored.
func (r *TutorRepository) Update(tutorID string, fields map[string]string) error {
	found := false
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		for _, row := range rows {
			if row[tutorCol[ColTutorID]] != tutorID {
				continue
			}
			found = true
			for key, value := range fields {
				if idx, ok := tutorCol[key]; ok {
					row[idx] = value
				}
			}
			break
		}
		if !found {
			return nil, apperrors.ErrTutorNotFound
		}
		return rows, nil
	})
	if err != nil {
		if found {
			logger.Error().Err(err).Str("tutorID", tutorID).Msg("Error updating tutor")
		} else {
			logger.Warn().Str("tutorID", tutorID).Msg("Tutor not found for update")
		}
		return err
	}

	logger.Info().Str("tutorID", tutorID).Msg("Tutor updated successfully")
	return nil
}

// Delete removes every row matching the identifier
func (r *TutorRepository) Delete(tutorID string) error {
	err := r.table.Mutate(func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		for _, row := range rows {
			if row[tutorCol[ColTutorID]] != tutorID {
				kept = append(kept, row)
			}
		}
		if len(kept) == len(rows) {
			return nil, apperrors.ErrTutorNotFound
		}
		return kept, nil
	})
	if err != nil {
		if err != apperrors.ErrTutorNotFound {
			logger.Error().Err(err).Str("tutorID", tutorID).Msg("Error deleting tutor")
		}
		return err
	}

	logger.Info().Str("tutorID", tutorID).Msg("Tutor deleted successfully")
	return nil
}

// nextTutorID computes the next sequential identifier from the numeric
// suffixes already present
func nextTutorID(rows [][]string) string {
	max := 0
	for _, row := range rows {
		id := row[tutorCol[ColTutorID]]
		n, err := strconv.Atoi(strings.TrimPrefix(id, "TUT"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("TUT%03d", max+1)
}

func tutorToRow(t *models.Tutor) []string {
	row := make([]string, len(tutorColumns))
	row[tutorCol[ColTutorID]] = t.TutorID
	row[tutorCol[ColTutorName]] = t.Name
	row[tutorCol[ColTutorEmail]] = t.Email
	row[tutorCol[ColLanguagesTeaching]] = t.LanguagesTeaching
	row[tutorCol[ColAvailableTimes]] = t.AvailableTimes
	row[tutorCol[ColContactNumber]] = t.ContactNumber
	row[tutorCol[ColDateAdded]] = t.DateAdded
	row[tutorCol[ColTutorStatus]] = string(t.Status)
	row[tutorCol[ColExperienceYears]] = strconv.Itoa(t.ExperienceYears)
	row[tutorCol[ColSpecialization]] = t.Specialization
	row[tutorCol[ColRating]] = strconv.FormatFloat(t.Rating, 'f', -1, 64)
	return row
}

func tutorFromRow(row []string) models.Tutor {
	years, _ := strconv.Atoi(row[tutorCol[ColExperienceYears]])
	rating, _ := strconv.ParseFloat(row[tutorCol[ColRating]], 64)
	return models.Tutor{
		TutorID:           row[tutorCol[ColTutorID]],
		Name:              row[tutorCol[ColTutorName]],
		Email:             row[tutorCol[ColTutorEmail]],
		LanguagesTeaching: row[tutorCol[ColLanguagesTeaching]],
		AvailableTimes:    row[tutorCol[ColAvailableTimes]],
		ContactNumber:     row[tutorCol[ColContactNumber]],
		DateAdded:         row[tutorCol[ColDateAdded]],
		Status:            models.TutorStatus(row[tutorCol[ColTutorStatus]]),
		Specialization:    row[tutorCol[ColSpecialization]],
		ExperienceYears:   years,
		Rating:            rating,
	}
}

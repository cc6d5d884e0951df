// Package seed populates a freshly created tutors table with sample data
// so the dashboard is usable out of the box.
package seed

import (
	"errors"
	"fmt"

	"github.com/vocabolarium/backend/internal/app/models"
	"github.com/vocabolarium/backend/internal/app/repositories"
	"github.com/vocabolarium/backend/internal/pkg/logger"
)

var sampleTutors = []models.Tutor{
	{
		Name:              "Angeline Janer",
		Email:             "maria.santos@vocabolarium.com",
		LanguagesTeaching: "Korean, Japanese",
		AvailableTimes:    "Mon-Fri 9AM-5PM",
		ContactNumber:     "+63 917 111 2222",
		Specialization:    "East Asian Languages",
		ExperienceYears:   5,
		Rating:            4.8,
	},
	{
		Name:              "Ashanti Jumawan",
		Email:             "john.chen@vocabolarium.com",
		LanguagesTeaching: "Mandarin, English",
		AvailableTimes:    "Mon-Fri 1PM-9PM",
		ContactNumber:     "+63 917 333 4444",
		Specialization:    "Business Languages",
		ExperienceYears:   8,
		Rating:            4.9,
	},
	{
		Name:              "LeeAnn Librada",
		Email:             "ana.reyes@vocabolarium.com",
		LanguagesTeaching: "Filipino, English, Mandarin, Korean, Japanese",
		AvailableTimes:    "Mon-Sat 8AM-4PM",
		ContactNumber:     "+63 917 555 6666",
		Specialization:    "Flexibility Languages",
		ExperienceYears:   3,
		Rating:            4.7,
	},
	{
		Name:              "Mariella Joy Marquez",
		Email:             "kim.minjun@vocabolarium.com",
		LanguagesTeaching: "Korean",
		AvailableTimes:    "Tue-Sat 10AM-6PM",
		ContactNumber:     "+63 917 777 8888",
		Specialization:    "Korean Culture & Language",
		ExperienceYears:   6,
		Rating:            4.9,
	},
	{
		Name:              "Princess Erica Ingco",
		Email:             "sakura.tanaka@vocabolarium.com",
		LanguagesTeaching: "Japanese",
		AvailableTimes:    "Mon-Fri 2PM-8PM",
		ContactNumber:     "+63 917 999 0000",
		Specialization:    "Japanese Language & Literature",
		ExperienceYears:   7,
		Rating:            5.0,
	},
}

// SampleTutors seeds the tutors table. Idempotent: a table that already
// holds rows is left alone.
func SampleTutors(tutors *repositories.TutorRepository) error {
	if len(tutors.GetAll()) > 0 {
		logger.Debug().Msg("Tutors table already populated, skipping seed")
		return nil
	}

	var errs []error
	added := 0
	for i := range sampleTutors {
		tutor := sampleTutors[i]
		if _, err := tutors.Add(&tutor); err != nil {
			errs = append(errs, fmt.Errorf("seed tutor %s: %w", tutor.Name, err))
			continue
		}
		added++
	}

	logger.Info().Int("count", added).Msg("Sample tutors seeded")
	return errors.Join(errs...)
}

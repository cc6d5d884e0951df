package models

// Tutor defines one instructor row in the tutors table
type Tutor struct {
	TutorID           string      `json:"tutorId" example:"TUT001"`                     // Unique identifier, assigned at creation
	Name              string      `json:"name" example:"Angeline Janer"`                // Tutor's full name
	Email             string      `json:"email" example:"maria.santos@vocabolarium.com"` // Login email, stored lower-cased
	LanguagesTeaching string      `json:"languagesTeaching" example:"Korean, Japanese"` // Comma-joined list of taught languages
	AvailableTimes    string      `json:"availableTimes" example:"Mon-Fri 9AM-5PM"`     // Weekly availability window
	ContactNumber     string      `json:"contactNumber" example:"+63 917 111 2222"`     // Phone number
	DateAdded         string      `json:"dateAdded" example:"2025-01-15 09:30:00"`      // Captured at creation, immutable
	Status            TutorStatus `json:"status" example:"Active"`                      // Availability status
	Specialization    string      `json:"specialization" example:"East Asian Languages"` // Teaching focus
	ExperienceYears   int         `json:"experienceYears" example:"5"`                  // Years of teaching experience
	Rating            float64     `json:"rating" example:"4.8"`                         // Average rating, 0 when unrated
}

package dto

// CreateTutorRequest is the admin payload for adding a tutor
type CreateTutorRequest struct {
	Name              string  `json:"name" binding:"required" example:"Angeline Janer"`
	Email             string  `json:"email" binding:"required,email" example:"angeline@vocabolarium.com"`
	LanguagesTeaching string  `json:"languagesTeaching" binding:"required" example:"Korean, Japanese"`
	AvailableTimes    string  `json:"availableTimes" example:"10:00 AM - 1:00 PM"`
	ContactNumber     string  `json:"contactNumber" example:"0917-111-2233"`
	Specialization    string  `json:"specialization" example:"Conversational Korean"`
	ExperienceYears   int     `json:"experienceYears" example:"5"`
	Rating            float64 `json:"rating" example:"4.8"`
}

// CreateTutorResponse reports the assigned tutor identifier
type CreateTutorResponse struct {
	TutorID string `json:"tutorId" example:"TUT001"`
}

// UpdateTutorRequest is the admin field-level patch for a tutor. Nil
// fields are left untouched.
type UpdateTutorRequest struct {
	Name              *string  `json:"name,omitempty"`
	Email             *string  `json:"email,omitempty"`
	LanguagesTeaching *string  `json:"languagesTeaching,omitempty"`
	AvailableTimes    *string  `json:"availableTimes,omitempty"`
	ContactNumber     *string  `json:"contactNumber,omitempty"`
	Status            *string  `json:"status,omitempty" enums:"Active,Inactive,On Leave"`
	Specialization    *string  `json:"specialization,omitempty"`
	ExperienceYears   *int     `json:"experienceYears,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
}

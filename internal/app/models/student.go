package models

// Student defines one registration row in the students table
type Student struct {
	RegistrationID   string        `json:"registrationId" example:"REG0001"`             // Unique identifier, assigned at creation
	Name             string        `json:"name" example:"Juan Dela Cruz"`                // Student's full name
	Email            string        `json:"email" example:"juan@example.com"`             // Contact email, stored lower-cased
	Age              int           `json:"age" example:"20"`                             // Age in years
	Language         string        `json:"language" example:"Korean"`                    // Enrolled language course
	PreferredTutor   string        `json:"preferredTutor,omitempty" example:"Angeline Janer"` // Tutor requested at registration (may be empty)
	ScheduledTime    string        `json:"scheduledTime" example:"10:00 AM - 1:00 PM"`   // Preferred class time slot
	SessionInterval  string        `json:"sessionInterval" example:"3 times per week"`   // Sessions per week
	PaymentOption    string        `json:"paymentOption" example:"GCash"`                // Chosen payment method
	RegistrationDate string        `json:"registrationDate" example:"2025-01-15 09:30:00"` // Captured at creation, immutable
	Status           StudentStatus `json:"status" example:"Pending"`                     // Lifecycle status, staff-mutated only
	AssignedTutor    string        `json:"assignedTutor,omitempty"`                      // Authoritative only once status is Approved
	GoogleMeetLink   string        `json:"googleMeetLink,omitempty"`                     // Classroom link, set on approval
	PaymentStatus    string        `json:"paymentStatus" example:"Pending"`              // Payment confirmation state
	PaymentDate      string        `json:"paymentDate,omitempty"`                        // When payment was confirmed
	Notes            string        `json:"notes,omitempty"`                              // Free-text staff notes
}

package dto

// RegisterStudentRequest is the public registration payload
type RegisterStudentRequest struct {
	Name            string `json:"name" binding:"required" example:"Juan Dela Cruz"`
	Email           string `json:"email" binding:"required,email" example:"juan@example.com"`
	Age             int    `json:"age" binding:"required" example:"21"`
	Language        string `json:"language" binding:"required" example:"Korean"`
	PreferredTutor  string `json:"preferredTutor" example:"Angeline Janer"`
	ScheduledTime   string `json:"scheduledTime" binding:"required" example:"10:00 AM - 1:00 PM"`
	SessionInterval string `json:"sessionInterval" binding:"required" example:"2 times per week"`
	PaymentOption   string `json:"paymentOption" binding:"required" example:"GCash"`
	TermsAccepted   bool   `json:"termsAccepted" example:"true"`
	Notes           string `json:"notes" example:"Beginner level"`
}

// RegisterStudentResponse reports the recorded registration and the
// confirmation email outcome
type RegisterStudentResponse struct {
	RegistrationID string `json:"registrationId" example:"REG0001"`
	EmailSent      bool   `json:"emailSent" example:"true"`
	EmailMessage   string `json:"emailMessage" example:"Email sent successfully"`
}

// ApproveStudentRequest assigns a tutor during approval. An empty meet
// link is replaced with a generated one.
type ApproveStudentRequest struct {
	TutorName      string `json:"tutorName" binding:"required" example:"Angeline Janer"`
	GoogleMeetLink string `json:"googleMeetLink" example:"https://meet.google.com/abc-defg-hij"`
}

// RejectStudentRequest carries the optional rejection reason
type RejectStudentRequest struct {
	Reason string `json:"reason" example:"Payment not received within 48 hours"`
}

// DecisionResponse reports an approval or rejection outcome including the
// notification result
type DecisionResponse struct {
	RegistrationID string `json:"registrationId" example:"REG0001"`
	Status         string `json:"status" example:"Approved"`
	EmailSent      bool   `json:"emailSent" example:"true"`
	EmailMessage   string `json:"emailMessage" example:"Email sent successfully"`
}

// UpdateStudentRequest is the admin field-level patch. Nil fields are left
// untouched.
type UpdateStudentRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Age             *int    `json:"age,omitempty"`
	Language        *string `json:"language,omitempty"`
	PreferredTutor  *string `json:"preferredTutor,omitempty"`
	ScheduledTime   *string `json:"scheduledTime,omitempty"`
	SessionInterval *string `json:"sessionInterval,omitempty"`
	PaymentOption   *string `json:"paymentOption,omitempty"`
	Status          *string `json:"status,omitempty"`
	AssignedTutor   *string `json:"assignedTutor,omitempty"`
	GoogleMeetLink  *string `json:"googleMeetLink,omitempty"`
	PaymentStatus   *string `json:"paymentStatus,omitempty"`
	PaymentDate     *string `json:"paymentDate,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// TutorUpdateStudentRequest is the narrower patch a tutor may apply to
// their own students
type TutorUpdateStudentRequest struct {
	Status         *string `json:"status,omitempty" enums:"Active,Completed,Suspended"`
	Notes          *string `json:"notes,omitempty"`
	GoogleMeetLink *string `json:"googleMeetLink,omitempty"`
}

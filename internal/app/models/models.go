package models

// RoleType defines the dashboard role carried in auth tokens
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleTutor RoleType = "TUTOR"
)

// StudentStatus is the lifecycle state of a registration
type StudentStatus string

const (
	StudentPending   StudentStatus = "Pending"
	StudentApproved  StudentStatus = "Approved"
	StudentRejected  StudentStatus = "Rejected"
	StudentActive    StudentStatus = "Active"
	StudentCompleted StudentStatus = "Completed"
	StudentSuspended StudentStatus = "Suspended"
)

// StudentStatuses lists every valid student status, in lifecycle order
var StudentStatuses = []StudentStatus{
	StudentPending,
	StudentApproved,
	StudentRejected,
	StudentActive,
	StudentCompleted,
	StudentSuspended,
}

// TutorStatus is the availability state of a tutor
type TutorStatus string

const (
	TutorActive   TutorStatus = "Active"
	TutorInactive TutorStatus = "Inactive"
	TutorOnLeave  TutorStatus = "On Leave"
)

// TutorStatuses lists every valid tutor status
var TutorStatuses = []TutorStatus{TutorActive, TutorInactive, TutorOnLeave}

// PaymentPending is the initial payment state of a new registration
const PaymentPending = "Pending"

// TimeLayout is the timestamp format written into the table files.
// The workbooks are hand-editable, so timestamps stay human-readable strings.
const TimeLayout = "2006-01-02 15:04:05"

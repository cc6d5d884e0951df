// Package validation holds the field rules applied to registration input
// before it reaches the tables.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether the address has a plausible mailbox shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateName checks the student display name length bounds
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return fmt.Errorf("name must be at least 3 characters")
	}
	if len(name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}
	return nil
}

// ValidateAge checks the age against the accepted enrollment range
func ValidateAge(age, minAge, maxAge int) error {
	if age < minAge || age > maxAge {
		return fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	return nil
}

// RegistrationInput is the set of fields checked before a registration is
// recorded
type RegistrationInput struct {
	Name            string
	Email           string
	Age             int
	Language        string
	ScheduledTime   string
	SessionInterval string
	PaymentOption   string
	TermsAccepted   bool
}

// Rules carries the configurable bounds and accepted option lists
type Rules struct {
	MinAge           int
	MaxAge           int
	Languages        []string
	SessionIntervals []string
	TimeSlots        []string
	PaymentOptions   []string
}

// CheckRegistration returns every rule violation found in the input. An
// empty slice means the registration is acceptable.
func (r Rules) CheckRegistration(in RegistrationInput) []string {
	problems := []string{}

	if err := ValidateName(in.Name); err != nil {
		problems = append(problems, err.Error())
	}
	if !IsValidEmail(in.Email) {
		problems = append(problems, "invalid email address")
	}
	if err := ValidateAge(in.Age, r.MinAge, r.MaxAge); err != nil {
		problems = append(problems, err.Error())
	}
	if !contains(r.Languages, in.Language) {
		problems = append(problems, fmt.Sprintf("unknown language course: %s", in.Language))
	}
	if len(r.SessionIntervals) > 0 && !contains(r.SessionIntervals, in.SessionInterval) {
		problems = append(problems, fmt.Sprintf("unknown session interval: %s", in.SessionInterval))
	}
	if len(r.TimeSlots) > 0 && !contains(r.TimeSlots, in.ScheduledTime) {
		problems = append(problems, fmt.Sprintf("unknown time slot: %s", in.ScheduledTime))
	}
	if !contains(r.PaymentOptions, in.PaymentOption) {
		problems = append(problems, fmt.Sprintf("unknown payment option: %s", in.PaymentOption))
	}
	if !in.TermsAccepted {
		problems = append(problems, "terms and conditions must be accepted")
	}

	return problems
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

package validator

import (
	"regexp"
	"strings"
	"time"
)

// ValidationError reports the first payload violation found. Error() renders
// the wire message, e.g. "employeeCode is required".
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func Required(field string) error {
	return ValidationError{Field: field, Reason: "is required"}
}

func InvalidFormat(field string) error {
	return ValidationError{Field: field, Reason: "format is invalid"}
}

func Invalid(field string) error {
	return ValidationError{Field: field, Reason: "is invalid"}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

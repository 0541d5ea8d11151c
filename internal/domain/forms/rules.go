// Package forms holds the pure validation rules shared by the checkout and
// contact/newsletter forms. Rules depend only on the submitted value, never
// on the page that rendered the field.
package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// A FieldRule returns an error message for an invalid value, or "" when the
// value is acceptable. Rules must be pure.
type FieldRule func(value string) string

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

const MinMessageLength = 10

// NameRule validates person-name fields: required, at least two characters,
// letters and spaces only. The label is used verbatim in messages
// ("First name", "Last name", …).
func NameRule(label string) FieldRule {
	return func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if len(value) < 2 {
			return fmt.Sprintf("%s must be at least 2 characters", label)
		}
		if !nameRegex.MatchString(value) {
			return fmt.Sprintf("%s can only contain letters and spaces", label)
		}
		return ""
	}
}

// RequiredRule only checks presence. Fields that are HTML-escaped before
// validation use this instead of NameRule, since escaping introduces
// entity characters outside NameRule's class.
func RequiredRule(label string) FieldRule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}
}

func EmailRule() FieldRule {
	return func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return "Email is required"
		}
		if !emailRegex.MatchString(value) {
			return "Please enter a valid email address"
		}
		return ""
	}
}

// PhoneRule validates a 10-15 digit phone number. Whether an empty value is
// acceptable is decided by the form that includes the field, not globally.
func PhoneRule(required bool) FieldRule {
	return func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				return "Phone number is required"
			}
			return ""
		}
		if !phoneRegex.MatchString(value) {
			return "Please enter a valid phone number"
		}
		return ""
	}
}

func MessageRule() FieldRule {
	return func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return "Message is required"
		}
		if len(value) < MinMessageLength {
			return fmt.Sprintf("Message must be at least %d characters", MinMessageLength)
		}
		return ""
	}
}

// CheckedRule validates a consent checkbox. The wire value of a checked box
// is "true", "on" or "1"; anything else counts as unchecked.
func CheckedRule(message string) FieldRule {
	return func(value string) string {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "on", "1":
			return ""
		}
		return message
	}
}

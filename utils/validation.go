// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidEmail checks an email address against the standard address grammar.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidDate checks a YYYY-MM-DD string. Parsing rather than a regex rejects
// impossible dates like "2024-13-45".
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidTime checks an HH:MM string.
func ValidTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

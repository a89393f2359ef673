package service

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// NormalizeEmail lowercases and trims an email so that lookups and the unique
// constraint see one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email string, password string, name string) error {
	if email == "" || password == "" || name == "" {
		return errValidation("Missing required fields")
	}
	if !emailRegex.MatchString(email) {
		return errValidation("Invalid email address")
	}
	if len(password) < minPasswordLength {
		return errValidation("Password must be at least 6 characters")
	}
	return nil
}

func validateNoteFields(title string, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return errValidation("Title and content required")
	}
	return nil
}

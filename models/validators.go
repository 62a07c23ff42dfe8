package models

import (
	"regexp"
	"strings"
	"time"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

const maxSlugLength = 50

// ValidateUsername rejects the reserved word "me" (any case) and any
// character outside [A-Za-z0-9_.@+-].
func ValidateUsername(username string, maxLength int) error {
	if username == "" {
		return NewValidationError("username", "username is required")
	}
	if strings.EqualFold(username, "me") {
		return NewValidationError("username", "username 'me' is reserved")
	}
	if maxLength > 0 && len(username) > maxLength {
		return NewValidationError("username", "username is too long")
	}
	if !usernamePattern.MatchString(username) {
		return NewValidationError("username", "username contains invalid characters")
	}
	return nil
}

// ValidateSlug enforces the URL-safe charset and the 50-character limit
// shared by category and genre slugs.
func ValidateSlug(slug string) error {
	if slug == "" {
		return NewValidationError("slug", "slug is required")
	}
	if len(slug) > maxSlugLength {
		return NewValidationError("slug", "slug must be at most 50 characters")
	}
	if !slugPattern.MatchString(slug) {
		return NewValidationError("slug", "slug contains invalid characters")
	}
	return nil
}

// ValidateYear bounds a title's year to [0, current calendar year].
func ValidateYear(year int) error {
	if year < 0 || year > time.Now().Year() {
		return NewValidationError("year", "year must be between 0 and the current year")
	}
	return nil
}

// ValidateScore bounds a review score to [1, 10].
func ValidateScore(score int) error {
	if score < 1 || score > 10 {
		return NewValidationError("score", "score must be between 1 and 10")
	}
	return nil
}

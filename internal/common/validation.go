package common

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

const minTitleLength = 3

// ValidatePhotoTitle enforces the minimum title length. Length is counted
// in runes so multi-byte titles are not rejected early.
func ValidatePhotoTitle(title string) *ValidationError {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewValidationError("title is required")
	}
	if utf8.RuneCountInString(title) < minTitleLength {
		return NewValidationError("title must be at least 3 characters long")
	}
	return nil
}

// ValidateCommentText rejects empty comments.
func ValidateCommentText(text string) *ValidationError {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("comment is required")
	}
	return nil
}

func ValidateName(name string) *ValidationError {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 50 {
		return NewValidationError("name must be between 3 and 50 characters")
	}
	return nil
}

func ValidateEmail(email string) *ValidationError {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return NewValidationError("email is required")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("invalid email format")
	}
	return nil
}

func ValidatePassword(password string) *ValidationError {
	if len(password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}
	if len(password) > 100 {
		return NewValidationError("password is too long")
	}
	return nil
}

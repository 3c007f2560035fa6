package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhotoTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr string
	}{
		{"valid", "sunset", ""},
		{"exactly three runes", "abc", ""},
		{"multi-byte runes count", "héé", ""},
		{"too short", "ab", "title must be at least 3 characters long"},
		{"empty", "", "title is required"},
		{"only spaces", "   ", "title is required"},
		{"short after trim", " ab ", "title must be at least 3 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhotoTitle(tt.title)
			if tt.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			assert.NotNil(t, err)
			assert.Contains(t, err.Errors, tt.wantErr)
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	assert.Nil(t, ValidateCommentText("nice shot"))
	assert.NotNil(t, ValidateCommentText(""))
	assert.NotNil(t, ValidateCommentText("  "))
}

func TestValidateName(t *testing.T) {
	assert.Nil(t, ValidateName("alice"))
	assert.NotNil(t, ValidateName("ab"))
	assert.NotNil(t, ValidateName(""))
}

func TestValidateEmail(t *testing.T) {
	assert.Nil(t, ValidateEmail("alice@example.com"))
	assert.Nil(t, ValidateEmail("Alice@Example.COM"))
	assert.NotNil(t, ValidateEmail(""))
	assert.NotNil(t, ValidateEmail("not-an-email"))
}

func TestValidatePassword(t *testing.T) {
	assert.Nil(t, ValidatePassword("secret1"))
	assert.NotNil(t, ValidatePassword("short"))
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("first", "second")
	assert.Equal(t, "first; second", err.Error())

	var target error = err
	got, ok := AsValidationError(target)
	assert.True(t, ok)
	assert.Equal(t, []string{"first", "second"}, got.Errors)
}

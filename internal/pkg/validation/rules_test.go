package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"parent@example.com",
		"first.last@shiningstar.edu",
		"a+tag@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"missing-at.example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestPhonePattern(t *testing.T) {
	valid := []string{
		"+90 555 123 4567",
		"05551234567",
		"555-123-4567",
	}
	for _, phone := range valid {
		assert.True(t, CompiledPatterns.Phone.MatchString(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"not a number",
		"555_123_4567",
	}
	for _, phone := range invalid {
		assert.False(t, CompiledPatterns.Phone.MatchString(phone), phone)
	}
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("hello").WithMinLength(2).WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("h").WithMinLength(2).Validate())
	assert.False(t, NewStringValidation("too long for limit").WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.True(t, NewStringValidation("user@example.com").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(10).WithMin(5).WithMax(18).Validate())
	assert.False(t, NewNumericValidation(3).WithMin(5).Validate())
	assert.False(t, NewNumericValidation(21).WithMax(18).Validate())
}

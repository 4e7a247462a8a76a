// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "NexPad", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Slug checks the slug format rule, including the Persian range.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		isValid bool
	}{
		{"latin", "modern-javascript", true},
		{"persian", "آموزش-گولنگ", true},
		{"mixed", "go-آموزش", true},
		{"uppercase", "Algorithms", false},
		{"leading_hyphen", "-bad", false},
		{"spaces", "not a slug", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.slug)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_LengthBounds exercises MinLen/MaxLen with multi-byte input.
*/
func TestValidator_LengthBounds(t *testing.T) {
	v := &validate.Validator{}

	// Persian characters count as single runes, not bytes.
	v.MinLen("name", "علی", 2).MaxLen("name", "علی", 100)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.MinLen("message", "سلام", 5)
	assert.True(t, v.HasErrors())
}

/*
TestIsUUID distinguishes malformed identifiers from well-formed ones.
*/
func TestIsUUID(t *testing.T) {
	assert.True(t, validate.IsUUID("0190a2a4-5b4c-7def-8123-456789abcdef"))
	assert.True(t, validate.IsUUID("0190A2A4-5B4C-7DEF-8123-456789ABCDEF"))
	assert.False(t, validate.IsUUID("not-a-uuid"))
	assert.False(t, validate.IsUUID(""))
	assert.False(t, validate.IsUUID("64b5f0c2a9d1e83f5a7b9c1d")) // Mongo ObjectId shape
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "problem json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "octet stream",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "image",
			contentType: "image/png",
			expected:    false,
		},
		{
			name:        "empty",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestMaskToken tests the MaskToken function.
func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", MaskToken(""))
	assert.Equal(t, "***", MaskToken("short"))
	assert.Equal(t, "abcdef...", MaskToken("abcdefghijklmnop"))
}

// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "token parameter",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "bearer credential",
			input:    "Authorization: Bearer eyJhbGciOiJub25lIn0",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "access-token header",
			input:    "access-token: T1.session.value",
			expected: "access-token: ***",
		},
		{
			name:     "api key",
			input:    "apikey=qk_test_123456",
			expected: "apikey=***",
		},
		{
			name:     "no secrets untouched",
			input:    "login failed for user alice",
			expected: "login failed for user alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}

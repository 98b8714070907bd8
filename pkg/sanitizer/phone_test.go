package sanitizer

import "testing"

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already E.164",
			input:    "+12125551234",
			expected: "+12125551234",
		},
		{
			name:     "national format with punctuation",
			input:    "(212) 555-1234",
			expected: "+12125551234",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  +12125551234  ",
			expected: "+12125551234",
		},
		{
			name:     "not a phone number",
			input:    "call me maybe",
			expected: "",
		},
		{
			name:     "too short",
			input:    "12345",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePhone(tt.input); got != tt.expected {
				t.Errorf("SanitizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  John   Doe ", "John Doe"},
		{"John\tDoe", "John Doe"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := TrimAndNormalize(tt.input); got != tt.expected {
			t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

package sanitizer

import (
	"reflect"
	"testing"
)

func TestExplodeFeatures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain comma separated",
			input:    "Heated Seats, Sunroof, Lane Assist",
			expected: []string{"Heated Seats", "Sunroof", "Lane Assist"},
		},
		{
			name:     "extra whitespace",
			input:    "  Heated Seats ,   Sunroof  ",
			expected: []string{"Heated Seats", "Sunroof"},
		},
		{
			name:     "empty entries dropped",
			input:    "Heated Seats,,  ,Sunroof",
			expected: []string{"Heated Seats", "Sunroof"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only separators",
			input:    " , , ",
			expected: []string{},
		},
		{
			name:     "single feature",
			input:    "Carbon Brakes",
			expected: []string{"Carbon Brakes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExplodeFeatures(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExplodeFeatures(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFeaturesRoundTrip(t *testing.T) {
	lists := [][]string{
		{"Heated Seats", "Sunroof", "Lane Assist"},
		{"Carbon Brakes"},
		{"A", "B", "C", "D", "E"},
		{},
	}

	for _, list := range lists {
		joined := JoinFeatures(list)
		got := ExplodeFeatures(joined)
		if !reflect.DeepEqual(got, list) {
			t.Errorf("round trip of %v: got %v (joined form %q)", list, got, joined)
		}
	}
}

func TestJoinFeaturesNormalizesMessyInput(t *testing.T) {
	messy := "  Sunroof ,, Lane Assist ,"
	normalized := JoinFeatures(ExplodeFeatures(messy))
	if normalized != "Sunroof, Lane Assist" {
		t.Errorf("expected normalized form 'Sunroof, Lane Assist', got %q", normalized)
	}
}

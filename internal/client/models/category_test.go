package models

import "testing"

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"food", "Dining"},
		{"salary", "Salary"},
		{"my-custom-tag", "my-custom-tag"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CategoryLabel(tt.value); got != tt.want {
			t.Fatalf("CategoryLabel(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

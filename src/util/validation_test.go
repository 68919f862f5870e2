package util

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"ab", false},
		{"abc", true},
		{"a_very_long_username_under_30c", true},
		{"this_username_is_over_thirty_characters", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateUsername(tt.username); got != tt.want {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("accepted password under 8 characters")
	}
	if !ValidatePassword("longenough") {
		t.Error("rejected valid password")
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-06-15", true},
		{"2026-02-30", false},
		{"15-06-2026", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

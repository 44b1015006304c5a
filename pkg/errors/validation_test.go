package errors

import (
	"strings"
	"testing"
)

func TestValidateNotation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"siteswap", "975", false},
		{"prechac", "3B 3 3\n3A 3 3", false},
		{"crlf lines", "3B 3 3\r\n3A 3 3", false},
		{"tabs", "3B\t3\t3", false},

		{"empty", "", true},
		{"whitespace only", " \n\t", true},
		{"too long", strings.Repeat("3", MaxNotationLength+1), true},
		{"null byte", "3\x003", true},
		{"control char", "3\x013", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateNotation(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "ivy", false},
		{"dashed", "dumb-ways-to-die", false},
		{"digits", "3-count", false},

		{"empty", "", true},
		{"uppercase", "Ivy", true},
		{"double dash", "ivy--b", true},
		{"leading dash", "-ivy", true},
		{"trailing dash", "ivy-", true},
		{"path", "../ivy", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlug(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateJugglerCount(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{1, false},
		{2, false},
		{26, false},
		{0, true},
		{-1, true},
		{27, true},
	}

	for _, tt := range tests {
		err := ValidateJugglerCount(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateJugglerCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePeriod(t *testing.T) {
	for _, tt := range []struct {
		period  int
		wantErr bool
	}{
		{0, false},
		{3, false},
		{MaxPeriod, false},
		{MaxPeriod + 1, true},
		{-1, true},
	} {
		err := ValidatePeriod(tt.period)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePeriod(%d) error = %v, wantErr %v", tt.period, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidatePeriod(%d) code = %v, want %v", tt.period, GetCode(err), ErrCodeInvalidInput)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		period   int
		wantErr  bool
	}{
		{"cascade", 3, 1, false},
		{"zero", 0, 3, false},
		{"highest siteswap throw", 35, 1, false},
		{"at the bound", MaxDurationPeriods * 3, 3, false},
		{"past the bound", MaxDurationPeriods*3 + 1, 3, true},
		{"huge", 2000000000, 1, true},
		{"negative", -1, 3, true},
		{"no period", 2000000000, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.duration, tt.period)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDuration(%d, %d) error = %v, wantErr %v", tt.duration, tt.period, err, tt.wantErr)
			}
		})
	}
}

//nolint:testpackage // using package name 'combiflag' to access unexported fields for testing
package combiflag

import "testing"

func TestKeyMatches(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		sensitivity Case
		input       string
		expected    bool
	}{
		{
			name:        "exact",
			key:         "flag",
			sensitivity: CaseSensitive,
			input:       "flag",
			expected:    true,
		},
		{
			name:        "case sensitive rejects upper",
			key:         "flag",
			sensitivity: CaseSensitive,
			input:       "Flag",
			expected:    false,
		},
		{
			name:        "case insensitive accepts upper",
			key:         "flag",
			sensitivity: CaseInsensitive,
			input:       "FLAG",
			expected:    true,
		},
		{
			name:        "case folding sharp s",
			key:         "straße",
			sensitivity: CaseInsensitive,
			input:       "STRASSE",
			expected:    true,
		},
		{
			name:        "normalization before comparison",
			key:         "ärger",
			sensitivity: CaseSensitive,
			input:       "ärger",
			expected:    true,
		},
		{
			name:        "different name",
			key:         "flag",
			sensitivity: CaseInsensitive,
			input:       "flug",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKey(tt.key, tt.sensitivity)
			if got := k.Matches(tt.input); got != tt.expected {
				t.Errorf("NewKey(%q).Matches(%q) = %v, expected %v", tt.key, tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeyStripPrefix(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "double dash",
			prefix:   "--",
			input:    "--flag",
			expected: "flag",
			ok:       true,
		},
		{
			name:     "single dash leaves second dash",
			prefix:   "-",
			input:    "--flag",
			expected: "-flag",
			ok:       true,
		},
		{
			name:   "no match",
			prefix: "--",
			input:  "flag",
			ok:     false,
		},
		{
			name:     "whole string",
			prefix:   "flag",
			input:    "flag",
			expected: "",
			ok:       true,
		},
		{
			name:   "grapheme cluster not split",
			prefix: "a",
			input:  "äb",
			ok:     false,
		},
		{
			name:     "case insensitive prefix",
			prefix:   "no",
			input:    "NO-flag",
			expected: "-flag",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKey(tt.prefix, CaseInsensitive)
			rest, ok := k.StripPrefix(Normalize(tt.input))
			if ok != tt.ok {
				t.Fatalf("StripPrefix(%q, %q) ok = %v, expected %v", tt.prefix, tt.input, ok, tt.ok)
			}
			if ok && rest.String() != tt.expected {
				t.Errorf("StripPrefix(%q, %q) = %q, expected %q", tt.prefix, tt.input, rest.String(), tt.expected)
			}
		})
	}
}

func TestSingleGrapheme(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"h", true},
		{"ä", true},
		{"ä", true},
		{"hi", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := singleGrapheme(tt.input); ok != tt.ok {
			t.Errorf("singleGrapheme(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
		}
	}
}

func TestGraphemeWidth(t *testing.T) {
	if w := graphemeWidth("äbc"); w != 3 {
		t.Errorf("graphemeWidth = %d, expected 3", w)
	}
}

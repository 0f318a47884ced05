package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in    string
		ok    bool
		canon string
	}{
		{"2024-03", true, "2024-03"},
		{"2024-3", true, "2024-03"},
		{"2024-12", true, "2024-12"},
		{"2024-13", false, ""},
		{"2024-0", false, ""},
		{"2024", false, ""},
		{"2024-003", false, ""},
		{"2024-3-1", false, ""},
		{"march 2024", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		got, ok := ParseMonth(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseMonth(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.canon, FormatMonth(got), "canonical form of %q", tt.in)
			assert.Equal(t, 1, got.Day())
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		ok    bool
		canon string
	}{
		{"2024-03-04", true, "2024-03-04"},
		{"2024-3-4", true, "2024-03-04"},
		{"2024-12-31", true, "2024-12-31"},
		{"2024-02-30", false, ""},
		{"2024-13-01", false, ""},
		{"2024-00-10", false, ""},
		{"2024-03", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseDate(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.canon, FormatDate(got), "canonical form of %q", tt.in)
		}
	}
}

func TestParseDateIsUTCMidnight(t *testing.T) {
	got, ok := ParseDate("2024-3-9")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), got)
}

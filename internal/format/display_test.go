package format

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2011-09-03T15:26:22Z", "September 3, 2011"},
		{"2024-01-15T08:00:00.123456Z", "January 15, 2024"},
		{"2020-02-29", "February 29, 2020"},
		{"", Unknown},
		{"   ", Unknown},
		{"yesterday", Unknown},
		{"2024-13-45T99:99:99Z", Unknown},
		{"null", Unknown},
	}
	for _, tt := range tests {
		if got := Date(tt.in); got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1234, "1.2K"},
		{200000, "200.0K"},
		{1_000_000, "1.0M"},
		{2_560_000, "2.6M"},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/blog", "https://example.com/blog"},
	}
	for _, tt := range tests {
		if got := URL(tt.in); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguageColor(t *testing.T) {
	if got := LanguageColor("Go"); got != lipgloss.Color("#00ADD8") {
		t.Errorf("Go color = %v", got)
	}
	if got := LanguageColor(""); got != lipgloss.Color(defaultLanguageColor) {
		t.Errorf("empty language color = %v", got)
	}
	if got := LanguageColor("Brainfuck"); got != lipgloss.Color(defaultLanguageColor) {
		t.Errorf("unknown language color = %v", got)
	}
}

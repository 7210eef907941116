package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Unknown is shown in place of a missing or unparseable value.
const Unknown = "Unknown"

var dateLayouts = []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"}

// Date renders an ISO-8601 timestamp as "January 2, 2006". Empty or
// unparseable input yields Unknown.
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return Unknown
}

// Count abbreviates large counters: 1234 → "1.2K", 2500000 → "2.5M".
func Count(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// URL adds an https scheme to bare host names such as blog fields.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#2b7489",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C#":         "#239120",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#ffac45",
	"Kotlin":     "#F18E33",
	"HTML":       "#e34c26",
	"CSS":        "#1572B6",
	"Vue":        "#4FC08D",
	"React":      "#61DAFB",
}

const defaultLanguageColor = "#8b5cf6"

// LanguageColor returns the display color for a repository language.
func LanguageColor(language string) lipgloss.Color {
	if c, ok := languageColors[language]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(defaultLanguageColor)
}

package extractor

import (
	"regexp"
	"strings"

	"github.com/court-monitor/scraper/internal/models"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText collapses runs of whitespace to single spaces and substitutes the
// N/A placeholder for empty cells.
func cleanText(s string) string {
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	if s == "" {
		return models.NotAvailable
	}
	return s
}

package scraper

import (
	"fmt"
	"time"
)

const (
	// InputLayout is the DD/MM/YYYY format users type.
	InputLayout = "02/01/2006"
	// portalLayout is the DD-MM-YYYY format the search form expects.
	portalLayout = "02-01-2006"
)

// ParseInputDate parses a DD/MM/YYYY user date.
func ParseInputDate(s string) (time.Time, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY: %w", s, err)
	}
	return t, nil
}

// DateRange returns every calendar day from start to end inclusive. An end
// before start yields an empty range.
func DateRange(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// PortalDate formats a date the way the search form's input expects.
func PortalDate(t time.Time) string {
	return t.Format(portalLayout)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

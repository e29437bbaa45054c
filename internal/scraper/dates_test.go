package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputDate(t *testing.T) {
	d, err := ParseInputDate("12/11/2020")
	require.NoError(t, err)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 12, d.Day())

	_, err = ParseInputDate("2020-11-12")
	assert.Error(t, err)

	_, err = ParseInputDate("31/02/2020")
	assert.Error(t, err)
}

func TestDateRange_Inclusive(t *testing.T) {
	start := time.Date(2024, 3, 29, 10, 30, 0, 0, time.Local)
	end := time.Date(2024, 4, 2, 1, 0, 0, 0, time.Local)

	dates := DateRange(start, end)
	require.Len(t, dates, 5)
	assert.Equal(t, "29-03-2024", PortalDate(dates[0]))
	assert.Equal(t, "02-04-2024", PortalDate(dates[4]))
}

func TestDateRange_SingleDay(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	dates := DateRange(day, day)
	require.Len(t, dates, 1)
	assert.Equal(t, "15-01-2024", PortalDate(dates[0]))
}

func TestDateRange_EndBeforeStart(t *testing.T) {
	start := time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, -1)
	assert.Empty(t, DateRange(start, end))
}

func TestPortalDate(t *testing.T) {
	d := time.Date(2023, 3, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "05-03-2023", PortalDate(d))
}

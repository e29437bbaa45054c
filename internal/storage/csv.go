package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/court-monitor/scraper/internal/models"
	"github.com/court-monitor/scraper/pkg/logger"
)

var csvHeader = []string{
	"Sr", "Institution_Date", "Case_No", "Case_Title", "Bench",
	"Hearing_Date", "Case_Category", "Status",
}

// WriteCSV writes the flat top-level fields of every case, one line per
// record. The nested sections stay JSON-only.
func (w *Writer) WriteCSV(env *models.Envelope, startDate string) (string, error) {
	name := w.filename(env, startDate, "csv")
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range env.Cases {
		row := []string{
			strconv.Itoa(c.Sr),
			c.InstitutionDate,
			c.CaseNo,
			c.CaseTitle,
			strings.Join(c.Bench, "; "),
			c.HearingDate,
			c.CaseCategory,
			c.Status,
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	logger.Log.Info().Str("path", path).Int("cases", len(env.Cases)).Msg("csv saved")
	return path, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/court-monitor/scraper/internal/models"
	"github.com/court-monitor/scraper/pkg/logger"
)

// Writer persists run results under the output directory.
type Writer struct {
	dir    string
	prefix string
}

func NewWriter(dir, prefix string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir, prefix: prefix}, nil
}

// WriteJSON writes the envelope as an indented JSON document named
// <prefix>_<start>_<timestamp>.json. Partial runs get a partial_ name prefix.
func (w *Writer) WriteJSON(env *models.Envelope, startDate string) (string, error) {
	name := w.filename(env, startDate, "json")
	path := filepath.Join(w.dir, name)

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}

	logger.Log.Info().Str("path", path).Int("cases", len(env.Cases)).Msg("results saved")
	return path, nil
}

func (w *Writer) filename(env *models.Envelope, startDate, ext string) string {
	start := strings.ReplaceAll(startDate, "/", "-")
	ts := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s.%s", w.prefix, start, ts, ext)
	if env.Metadata.Status == models.StatusPartial {
		name = "partial_" + name
	}
	return name
}

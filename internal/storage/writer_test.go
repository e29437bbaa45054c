package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/court-monitor/scraper/internal/models"
)

func sampleEnvelope(status string) *models.Envelope {
	c := models.NewCase(1, "12-11-2020")
	c.CaseNo = "W.P 4521/2023"
	c.CaseTitle = "A VS B"
	c.Bench = []string{"Justice X", "Justice Y"}
	return models.NewEnvelope([]models.Case{*c}, "12/11/2020", "13/11/2020", "https://example.org", status)
}

func TestWriteJSON(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "ihc_cases")
	require.NoError(t, err)

	path, err := w.WriteJSON(sampleEnvelope(models.StatusComplete), "12/11/2020")
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "ihc_cases_12-11-2020_"), "unexpected name %s", name)
	assert.True(t, strings.HasSuffix(name, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	require.Len(t, env.Cases, 1)
	assert.Equal(t, "W.P 4521/2023", env.Cases[0].CaseNo)
	assert.Equal(t, 1, env.Metadata.TotalCases)
}

func TestWriteJSON_PartialPrefix(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "ihc_cases")
	require.NoError(t, err)

	path, err := w.WriteJSON(sampleEnvelope(models.StatusPartial), "12/11/2020")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "partial_"))
}

func TestWriteCSV(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "ihc_cases")
	require.NoError(t, err)

	path, err := w.WriteCSV(sampleEnvelope(models.StatusComplete), "12/11/2020")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "W.P 4521/2023", rows[1][2])
	assert.Equal(t, "Justice X; Justice Y", rows[1][4])
}

func TestNewWriter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := NewWriter(dir, "ihc_cases")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

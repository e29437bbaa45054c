package scraper

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/court-monitor/scraper/internal/config"
)

// fakePortal serves canned result pages instead of driving a browser.
type fakePortal struct {
	mu          sync.Mutex
	pages       []string
	page        int
	submits     int
	failSubmits int
}

func (f *fakePortal) SubmitSearch(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	if f.submits <= f.failSubmits {
		return errors.New("search button never became clickable")
	}
	f.page = 0
	return nil
}

func (f *fakePortal) WaitForResults(ctx context.Context) error { return nil }

func (f *fakePortal) TableHTML(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pages[f.page], nil
}

func (f *fakePortal) NextPage(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.page+1 < len(f.pages) {
		f.page++
		return true, nil
	}
	return false, nil
}

func (f *fakePortal) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submits
}

func caseRow(caseNo string) string {
	return `<tr><td>1</td><td>` + caseNo + `</td><td>A VS B</td><td>Justice X</td><td>Pending</td></tr>`
}

func casesPage(rows ...string) string {
	return `<table><tbody>` + strings.Join(rows, "") + `</tbody></table>`
}

func testConfig(workers int) *config.Config {
	return &config.Config{
		WorkerCount:    workers,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		PagesPerSecond: 1000,
	}
}

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestRunRetriesFailedSearch(t *testing.T) {
	fake := &fakePortal{
		failSubmits: 1,
		pages:       []string{casesPage(caseRow("W.P 10/2024"))},
	}
	s := New(testConfig(1), nil, nil, NewProgress())
	s.newClient = func() (portalClient, func(), error) {
		return fake, func() {}, nil
	}

	cases, err := s.Run(context.Background(), []time.Time{day(1)})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "W.P 10/2024", cases[0].CaseNo)
	assert.Equal(t, 2, fake.submitCount())

	snap := s.progress.Snapshot()
	assert.EqualValues(t, 1, snap.DatesDone)
	assert.EqualValues(t, 0, snap.DatesFailed)
}

func TestRunFailsDateWhenRetriesExhausted(t *testing.T) {
	fake := &fakePortal{failSubmits: 10}
	s := New(testConfig(1), nil, nil, NewProgress())
	s.newClient = func() (portalClient, func(), error) {
		return fake, func() {}, nil
	}

	cases, err := s.Run(context.Background(), []time.Time{day(1)})
	require.NoError(t, err)
	assert.Empty(t, cases)
	// one attempt plus MaxRetries
	assert.Equal(t, 3, fake.submitCount())

	snap := s.progress.Snapshot()
	assert.EqualValues(t, 0, snap.DatesDone)
	assert.EqualValues(t, 1, snap.DatesFailed)
}

func TestRunDeduplicatesAcrossPages(t *testing.T) {
	fake := &fakePortal{
		pages: []string{
			casesPage(caseRow("W.P 10/2024"), caseRow("W.P 11/2024")),
			casesPage(caseRow("W.P 11/2024"), caseRow("W.P 12/2024")),
		},
	}
	s := New(testConfig(1), nil, nil, NewProgress())
	s.newClient = func() (portalClient, func(), error) {
		return fake, func() {}, nil
	}

	cases, err := s.Run(context.Background(), []time.Time{day(1)})
	require.NoError(t, err)
	require.Len(t, cases, 3)

	seen := make(map[string]bool)
	for _, c := range cases {
		assert.False(t, seen[c.CaseNo], "case %s extracted twice", c.CaseNo)
		seen[c.CaseNo] = true
	}

	snap := s.progress.Snapshot()
	assert.EqualValues(t, 2, snap.Pages)
	assert.EqualValues(t, 3, snap.Cases)
}

func TestRunBadSessionLeavesDatesToHealthyWorkers(t *testing.T) {
	fake := &fakePortal{pages: []string{casesPage(caseRow("W.P 10/2024"))}}
	var calls atomic.Int32
	s := New(testConfig(2), nil, nil, NewProgress())
	s.newClient = func() (portalClient, func(), error) {
		if calls.Add(1) == 1 {
			return nil, nil, errors.New("chrome failed to start")
		}
		return fake, func() {}, nil
	}

	dates := []time.Time{day(1), day(2), day(3)}
	cases, err := s.Run(context.Background(), dates)
	require.NoError(t, err)
	// same case number, but a distinct institution date per search
	assert.Len(t, cases, 3)

	snap := s.progress.Snapshot()
	assert.EqualValues(t, 3, snap.DatesDone)
	assert.EqualValues(t, 0, snap.DatesFailed)
}

func TestRunNoSessionsReturnsError(t *testing.T) {
	s := New(testConfig(2), nil, nil, NewProgress())
	s.newClient = func() (portalClient, func(), error) {
		return nil, nil, errors.New("chrome failed to start")
	}

	cases, err := s.Run(context.Background(), []time.Time{day(1), day(2)})
	require.ErrorIs(t, err, ErrNoWorkers)
	assert.Empty(t, cases)

	snap := s.progress.Snapshot()
	assert.EqualValues(t, 2, snap.DatesFailed)
}

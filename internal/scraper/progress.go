package scraper

import "sync/atomic"

// Progress exposes run counters to the status API. All fields are atomics so
// workers update them without coordination.
type Progress struct {
	datesTotal  atomic.Int64
	datesDone   atomic.Int64
	datesFailed atomic.Int64
	pages       atomic.Int64
	cases       atomic.Int64
	running     atomic.Bool
}

func NewProgress() *Progress {
	return &Progress{}
}

// Snapshot is the JSON shape served by GET /status.
type Snapshot struct {
	Running     bool  `json:"running"`
	DatesTotal  int64 `json:"dates_total"`
	DatesDone   int64 `json:"dates_done"`
	DatesFailed int64 `json:"dates_failed"`
	Pages       int64 `json:"pages"`
	Cases       int64 `json:"cases"`
}

func (p *Progress) Snapshot() Snapshot {
	return Snapshot{
		Running:     p.running.Load(),
		DatesTotal:  p.datesTotal.Load(),
		DatesDone:   p.datesDone.Load(),
		DatesFailed: p.datesFailed.Load(),
		Pages:       p.pages.Load(),
		Cases:       p.cases.Load(),
	}
}

func (p *Progress) start(total int) {
	p.datesTotal.Store(int64(total))
	p.running.Store(true)
}

func (p *Progress) finish()          { p.running.Store(false) }
func (p *Progress) dateDone()        { p.datesDone.Add(1) }
func (p *Progress) dateFailed()      { p.datesFailed.Add(1) }
func (p *Progress) pageScraped()     { p.pages.Add(1) }
func (p *Progress) casesFound(n int) { p.cases.Add(int64(n)) }

package scraper

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/court-monitor/scraper/internal/browser"
	"github.com/court-monitor/scraper/internal/cache"
	"github.com/court-monitor/scraper/internal/config"
	"github.com/court-monitor/scraper/internal/extractor"
	"github.com/court-monitor/scraper/internal/models"
	"github.com/court-monitor/scraper/internal/portal"
	"github.com/court-monitor/scraper/pkg/logger"
)

// Sink receives extracted cases as they are found, in addition to the
// in-memory result list. The Mongo repository implements it.
type Sink interface {
	Upsert(ctx context.Context, c *models.Case) error
}

// ErrNoWorkers is returned when every worker failed to start its browser
// session, so no date was even attempted.
var ErrNoWorkers = errors.New("no worker could start a browser session")

// portalClient is the subset of portal.Client the worker pool drives.
type portalClient interface {
	SubmitSearch(ctx context.Context, date string) error
	WaitForResults(ctx context.Context) error
	TableHTML(ctx context.Context) (string, error)
	NextPage(ctx context.Context) (bool, error)
}

// Scraper fans date-scrapes out over a pool of workers, each driving its own
// browser session. Results are appended under a mutex; everything else the
// workers share is append-only or atomic.
type Scraper struct {
	cfg      *config.Config
	browser  *browser.Browser
	sink     Sink
	filter   *cache.CaseFilter
	limiter  *rate.Limiter
	progress *Progress

	// newClient starts a browser session and wraps it in a portal client.
	// Defaults to the real chromedp-backed client.
	newClient func() (portalClient, func(), error)

	mu    sync.Mutex
	cases []models.Case
}

func New(cfg *config.Config, b *browser.Browser, sink Sink, progress *Progress) *Scraper {
	if progress == nil {
		progress = NewProgress()
	}
	s := &Scraper{
		cfg:      cfg,
		browser:  b,
		sink:     sink,
		filter:   cache.NewCaseFilter(100_000, 0.001),
		limiter:  rate.NewLimiter(rate.Limit(cfg.PagesPerSecond), 1),
		progress: progress,
	}
	s.newClient = func() (portalClient, func(), error) {
		sess, err := s.browser.NewSession()
		if err != nil {
			return nil, nil, err
		}
		client := portal.NewClient(sess, portal.Config{
			URL:            s.cfg.PortalURL,
			PageLoadDelay:  s.cfg.PageLoadDelay,
			ResultsTimeout: s.cfg.ResultsTimeout,
			PageTimeout:    s.cfg.PageTimeout,
		})
		return client, sess.Close, nil
	}
	return s
}

// Run scrapes every date and returns the accumulated records. It returns the
// context error when the run was cancelled mid-way so the caller can persist
// what was collected as a partial result.
func (s *Scraper) Run(ctx context.Context, dates []time.Time) ([]models.Case, error) {
	log := logger.Log

	workerCount := s.cfg.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(dates) {
		workerCount = len(dates)
	}

	s.progress.start(len(dates))
	defer s.progress.finish()

	jobs := make(chan time.Time)
	go func() {
		defer close(jobs)
		for _, d := range dates {
			select {
			case <-ctx.Done():
				return
			case jobs <- d:
			}
		}
	}()

	log.Info().Int("dates", len(dates)).Int("workers", workerCount).Msg("scrape started")

	var wg sync.WaitGroup
	var started atomic.Int32
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.worker(ctx, id, jobs, &started)
		}(i)
	}
	wg.Wait()

	// Dates nobody picked up are failures; this also unblocks the producer
	// when every worker exited early.
	for range jobs {
		s.progress.dateFailed()
	}

	log.Info().
		Int("cases", len(s.cases)).
		Int64("dates_failed", s.progress.Snapshot().DatesFailed).
		Msg("scrape finished")

	if err := ctx.Err(); err != nil {
		return s.cases, err
	}
	if started.Load() == 0 && len(dates) > 0 {
		return s.cases, ErrNoWorkers
	}
	return s.cases, nil
}

func (s *Scraper) worker(ctx context.Context, id int, jobs <-chan time.Time, started *atomic.Int32) {
	log := logger.Log.With().Int("worker", id).Logger()

	// A worker that cannot start a session bows out and leaves the jobs
	// channel to the surviving workers.
	client, closeClient, err := s.newClient()
	if err != nil {
		log.Error().Err(err).Msg("browser session failed, worker exiting")
		return
	}
	defer closeClient()
	started.Add(1)

	for {
		select {
		case <-ctx.Done():
			return
		case date, ok := <-jobs:
			if !ok {
				return
			}
			s.processDate(ctx, log, client, date)
		}
	}
}

func (s *Scraper) processDate(ctx context.Context, log zerolog.Logger, client portalClient, date time.Time) {
	portalDate := PortalDate(date)
	log.Info().Str("date", portalDate).Msg("scraping cases")

	cases, err := s.scrapeDate(ctx, client, portalDate)
	if err != nil {
		log.Error().Err(err).Str("date", portalDate).Msg("date failed after retries")
		s.progress.dateFailed()
		return
	}

	added := s.collect(ctx, cases)
	s.progress.dateDone()
	s.progress.casesFound(added)
	log.Info().Str("date", portalDate).Int("cases", added).Msg("date done")
}

// scrapeDate retries the whole search flow for one date. Pagination errors
// inside a successful search end the date gracefully with whatever was
// extracted, matching the portal's habit of dropping the paginator mid-run.
func (s *Scraper) scrapeDate(ctx context.Context, client portalClient, portalDate string) ([]models.Case, error) {
	log := logger.Log
	var lastErr error

	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Warn().Err(lastErr).Str("date", portalDate).Int("attempt", attempt).Msg("retrying date")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.RetryDelay):
			}
		}

		cases, err := s.scrapeDateOnce(ctx, client, portalDate)
		if err == nil {
			return cases, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *Scraper) scrapeDateOnce(ctx context.Context, client portalClient, portalDate string) ([]models.Case, error) {
	log := logger.Log

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if err := client.SubmitSearch(ctx, portalDate); err != nil {
		return nil, err
	}

	// A date with no filings simply never populates the grid; that is an
	// empty result, not a failure.
	if err := client.WaitForResults(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn().Err(err).Str("date", portalDate).Msg("no results loaded")
		return nil, nil
	}

	var all []models.Case
	for page := 1; ; page++ {
		html, err := client.TableHTML(ctx)
		if err != nil {
			log.Error().Err(err).Str("date", portalDate).Int("page", page).Msg("failed to read page")
			return all, nil
		}

		pageCases, err := extractor.FromTable(html, portalDate)
		if err != nil {
			log.Error().Err(err).Str("date", portalDate).Int("page", page).Msg("failed to extract page")
			return all, nil
		}

		log.Info().Str("date", portalDate).Int("page", page).Int("rows", len(pageCases)).Msg("page extracted")
		all = append(all, pageCases...)
		s.progress.pageScraped()

		if err := s.limiter.Wait(ctx); err != nil {
			return all, err
		}
		advanced, err := client.NextPage(ctx)
		if err != nil {
			log.Warn().Err(err).Str("date", portalDate).Int("page", page).Msg("pagination stopped")
			return all, nil
		}
		if !advanced {
			return all, nil
		}
	}
}

// collect appends records not seen before in this run and forwards them to
// the sink. Returns the number actually added.
func (s *Scraper) collect(ctx context.Context, cases []models.Case) int {
	log := logger.Log
	added := 0

	for i := range cases {
		c := cases[i]
		if s.filter.Seen(c.Key()) {
			log.Debug().Str("case_no", c.CaseNo).Msg("duplicate case dropped")
			continue
		}

		s.mu.Lock()
		s.cases = append(s.cases, c)
		s.mu.Unlock()
		added++

		if s.sink != nil {
			if err := s.sink.Upsert(ctx, &c); err != nil {
				log.Warn().Err(err).Str("case_no", c.CaseNo).Msg("sink upsert failed")
			}
		}
	}
	return added
}

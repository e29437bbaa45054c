package portal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/court-monitor/scraper/internal/browser"
	"github.com/court-monitor/scraper/pkg/logger"
)

const pollInterval = 2 * time.Second

type Config struct {
	URL            string
	PageLoadDelay  time.Duration
	ResultsTimeout time.Duration
	PageTimeout    time.Duration
}

// Client drives the advanced-search flow of the case portal inside one
// browser session.
type Client struct {
	sess *browser.Session
	cfg  Config
}

func NewClient(sess *browser.Session, cfg Config) *Client {
	return &Client{sess: sess, cfg: cfg}
}

// SubmitSearch navigates to the search page, opens the advanced-search panel,
// fills the date (DD-MM-YYYY) and submits the query.
func (c *Client) SubmitSearch(ctx context.Context, date string) error {
	log := logger.Log

	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.Navigate(c.cfg.URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("open search page: %w", err)
	}

	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.WaitVisible(selAdvancedSearch, chromedp.ByQuery),
		chromedp.Click(selAdvancedSearch, chromedp.ByQuery),
		chromedp.Sleep(time.Second),
	); err != nil {
		return fmt.Errorf("open advanced search: %w", err)
	}

	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.WaitVisible(selDateInput, chromedp.ByQuery),
		chromedp.Clear(selDateInput, chromedp.ByQuery),
		chromedp.SendKeys(selDateInput, date, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("fill date input: %w", err)
	}

	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.Click(selSearchButton, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("submit search: %w", err)
	}

	log.Debug().Str("date", date).Msg("search submitted")
	return nil
}

// WaitForResults waits for the results panel and then polls the cases table
// until a first data row carries real text, up to the results timeout. The
// grid renders empty first and fills in when the portal's backend responds.
func (c *Client) WaitForResults(ctx context.Context) error {
	if err := c.sess.Run(ctx, c.cfg.ResultsTimeout,
		chromedp.WaitVisible(selResultsPanel, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("wait for results panel: %w", err)
	}
	return c.waitForDataRows(ctx, c.cfg.ResultsTimeout)
}

func (c *Client) waitForDataRows(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		var ready bool
		if err := c.sess.Run(ctx, pollInterval+c.cfg.PageTimeout,
			chromedp.Evaluate(dataRowsReadyScript, &ready),
		); err != nil {
			return fmt.Errorf("poll for data rows: %w", err)
		}
		if ready {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("no data rows within %s", timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// TableHTML returns the outer HTML of the cases table on the current page.
func (c *Client) TableHTML(ctx context.Context) (string, error) {
	var html string
	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.OuterHTML(selCasesTable, &html, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("read cases table: %w", err)
	}
	return html, nil
}

// NextPage advances the paginator. It returns false when there is no
// pagination control or the next button reports disabled, i.e. the current
// page was the last one.
func (c *Client) NextPage(ctx context.Context) (bool, error) {
	log := logger.Log

	var hasPaginate bool
	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.Evaluate(paginateExistsScript, &hasPaginate),
	); err != nil {
		return false, fmt.Errorf("check pagination: %w", err)
	}
	if !hasPaginate {
		log.Debug().Msg("no pagination control, single page")
		return false, nil
	}

	var classes string
	if err := c.sess.Run(ctx, c.cfg.PageTimeout,
		chromedp.Evaluate(nextButtonClassScript, &classes),
	); err != nil {
		return false, fmt.Errorf("read next button state: %w", err)
	}
	if paginationDisabled(classes) {
		log.Debug().Msg("next button disabled, end of pages")
		return false, nil
	}

	if err := c.sess.Run(ctx, c.cfg.PageTimeout+c.cfg.PageLoadDelay,
		chromedp.ScrollIntoView(selNextButton, chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Click(selNextButton, chromedp.ByQuery),
		chromedp.Sleep(c.cfg.PageLoadDelay),
	); err != nil {
		return false, fmt.Errorf("click next page: %w", err)
	}

	if err := c.waitForDataRows(ctx, c.cfg.PageTimeout); err != nil {
		return false, fmt.Errorf("next page did not load: %w", err)
	}

	log.Debug().Msg("advanced to next page")
	return true, nil
}

// paginationDisabled reports whether the next control's class list marks it
// disabled. DataTables toggles a "disabled" class on the paginate buttons.
func paginationDisabled(classAttr string) bool {
	for _, cls := range strings.Fields(classAttr) {
		if cls == "disabled" {
			return true
		}
	}
	return false
}

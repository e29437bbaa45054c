package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/court-monitor/scraper/pkg/logger"
)

// Browser owns the shared exec allocator. Every worker gets its own Session,
// i.e. an independent browser instance, so a renderer crash in one date-scrape
// does not take the others down.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// New starts the allocator. The parent context governs the whole run; when it
// is cancelled every session dies with it.
func New(ctx context.Context, headless bool) *Browser {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execAllocatorOptions(headless)...)
	return &Browser{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// Close shuts the allocator down. Sessions must be closed first.
func (b *Browser) Close() {
	b.allocCancel()
	logger.Log.Info().Msg("browser allocator closed")
}

// Session is one independent browser instance with a single tab, prepared
// with the stealth script and resource blocking.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession launches a browser instance and applies the tab preparation
// tasks. The caller owns the session and must Close it.
func (b *Browser) NewSession() (*Session, error) {
	ctx, cancel := chromedp.NewContext(b.allocCtx)

	prep := chromedp.Tasks{
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(userAgent).
				WithAcceptLanguage("en-US,en;q=0.9").
				Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return network.SetBlockedURLs(blockedURLPatterns()).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(stealthScript()).Do(ctx)
			return err
		}),
	}

	if err := chromedp.Run(ctx, prep); err != nil {
		cancel()
		return nil, fmt.Errorf("start browser session: %w", err)
	}

	logger.Log.Debug().Msg("browser session started")
	return &Session{ctx: ctx, cancel: cancel}, nil
}

func (s *Session) Close() {
	s.cancel()
}

// Run executes the actions in this session's tab with the given timeout,
// stopping early when the caller's context is cancelled.
func (s *Session) Run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

package browser

import (
	"os"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// execAllocatorOptions returns chromedp options that work both locally and in
// Docker images that ship their own Chrome.
func execAllocatorOptions(headless bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("window-size", "1920,1080"),
		chromedp.UserAgent(userAgent),

		// Stability flags to prevent renderer crashes on long runs
		chromedp.Flag("disable-hang-monitor", true),
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("disable-prompt-on-repost", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("metrics-recording-only", true),
		chromedp.Flag("password-store", "basic"),
		chromedp.Flag("use-mock-keychain", true),
	)

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	// In Docker container, find the Chrome/Chromium executable
	chromePaths := []string{
		"/headless-shell/headless-shell", // chromedp/headless-shell
		"/usr/bin/chromium-browser",      // zenika/alpine-chrome
		"/usr/bin/chromium",              // some alpine images
		"/usr/bin/google-chrome",         // debian-based images
		"/usr/bin/google-chrome-stable",  // debian-based images
	}
	for _, p := range chromePaths {
		if _, err := os.Stat(p); err == nil {
			opts = append(opts, chromedp.ExecPath(p))
			break
		}
	}

	return opts
}

// stealthScript hides the usual automation markers. The portal occasionally
// serves an empty results grid to sessions it identifies as driven browsers.
func stealthScript() string {
	return `
		Object.defineProperty(navigator, 'webdriver', {
			get: () => undefined,
		});

		Object.defineProperty(navigator, 'languages', {
			get: () => ['en-US', 'en'],
		});

		Object.defineProperty(navigator, 'plugins', {
			get: () => [
				{ name: 'Chrome PDF Plugin', description: 'Portable Document Format', filename: 'internal-pdf-viewer' },
				{ name: 'Chrome PDF Viewer', description: '', filename: 'mhjfbmdgcfjbbpaeojofohoefgiehjai' },
			],
		});

		if (!window.chrome) {
			window.chrome = {};
		}
		if (!window.chrome.runtime) {
			window.chrome.runtime = {
				connect: () => {},
				sendMessage: () => {},
			};
		}

		const originalQuery = window.navigator.permissions.query;
		window.navigator.permissions.query = (parameters) => (
			parameters.name === 'notifications' ?
				Promise.resolve({ state: Notification.permission }) :
				originalQuery(parameters)
		);
	`
}

// blockedURLPatterns lists resources the scraper never needs. Skipping them
// cuts page-load time on the portal's heavyweight pages.
func blockedURLPatterns() []string {
	return []string{
		"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.svg", "*.ico",
		"*.mp4", "*.webm",
		"*.woff", "*.woff2", "*.ttf", "*.eot", "*.otf",
		"*google-analytics*", "*googletagmanager*", "*facebook*",
		"*ads*", "*analytics*", "*tracking*",
	}
}

package browser

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headless       bool
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	NavTimeout     time.Duration
	SettleDelay    time.Duration
}

func DefaultOptions() *Options {
	return &Options{
		Headless:       true,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		NavTimeout:     30 * time.Second,
		SettleDelay:    3 * time.Second,
	}
}

// Session owns a single headless Chromium instance. It is created lazily on
// first navigation, reused across searches, and disposed once at shutdown.
// The session is not safe for concurrent navigations; callers serialize
// access (the scraper holds a mutex around every search).
type Session struct {
	opts    *Options
	logger  *slog.Logger
	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

func NewSession(opts *Options, logger *slog.Logger) *Session {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Session{
		opts:   opts,
		logger: logger.With("component", "browser"),
	}
}

// EnsureReady launches the browser on first use and is a no-op afterwards.
func (s *Session) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureReadyLocked()
}

func (s *Session) ensureReadyLocked() error {
	if s.page != nil {
		return nil
	}

	s.logger.Info("launching browser", "headless", s.opts.Headless)

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &s.opts.Headless,
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			fmt.Sprintf("--window-size=%d,%d", s.opts.ViewportWidth, s.opts.ViewportHeight),
			"--user-agent=" + s.opts.UserAgent,
		},
	})
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: &s.opts.UserAgent,
		Viewport: &playwright.Size{
			Width:  s.opts.ViewportWidth,
			Height: s.opts.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(s.opts.NavTimeout.Milliseconds()))

	s.pw = pw
	s.browser = browser
	s.context = context
	s.page = page
	return nil
}

// NavigateAndWait loads a URL, blocks until an element matching marker is
// present or timeout elapses, sleeps the settle delay to absorb late script
// rendering, and returns the page HTML. A marker that never appears comes
// back as an error for the caller's boundary to absorb.
func (s *Session) NavigateAndWait(url, marker string, timeout time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReadyLocked(); err != nil {
		return "", err
	}

	s.logger.Info("navigating", "url", url)

	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.opts.NavTimeout.Milliseconds())),
	}); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}

	if _, err := s.page.WaitForSelector(marker, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return "", fmt.Errorf("marker %q not rendered within %s: %w", marker, timeout, err)
	}

	time.Sleep(s.opts.SettleDelay)

	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}
	return html, nil
}

// Close releases the browser process. Safe to call without a live session
// and safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	if s.context != nil {
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
		s.context = nil
		s.page = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		s.pw = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}

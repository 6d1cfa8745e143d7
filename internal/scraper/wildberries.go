package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"wb-price-bot/internal/models"
	"wb-price-bot/internal/observability"
	"wb-price-bot/internal/ratelimit"
)

const (
	searchURLTemplate  = "https://www.wildberries.ru/catalog/0/search.aspx?search=%s"
	resultCardSelector = ".product-card"
)

// Session is the slice of the browser session the scraper drives.
type Session interface {
	NavigateAndWait(url, marker string, timeout time.Duration) (string, error)
}

// ResultParser turns rendered page HTML into product records.
type ResultParser interface {
	ParseSearchPage(html string, limit int) []models.Product
}

// WildberriesScraper is the top-level search entry point. It owns the
// single-in-flight contract for the shared browser session: the mutex
// serializes concurrent callers, the limiter keeps navigations apart.
type WildberriesScraper struct {
	session       Session
	parser        ResultParser
	limiter       ratelimit.Limiter
	logger        *slog.Logger
	renderTimeout time.Duration
	mu            sync.Mutex
}

func NewWildberriesScraper(session Session, parser ResultParser, limiter ratelimit.Limiter, renderTimeout time.Duration, logger *slog.Logger) *WildberriesScraper {
	return &WildberriesScraper{
		session:       session,
		parser:        parser,
		limiter:       limiter,
		logger:        logger.With("component", "scraper"),
		renderTimeout: renderTimeout,
	}
}

// Search returns up to limit products for the query, in page order. All
// failure modes - launch, navigation, render timeout, page parse - collapse
// to an empty result here; callers cannot tell "no matches" from "site
// unreachable" without reading the logs, and render an empty-results
// message either way.
func (s *WildberriesScraper) Search(ctx context.Context, query string, limit int) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With("search_id", uuid.NewString(), "query", query)
	observability.SearchesTotal.Inc()

	if err := s.limiter.Wait(ctx); err != nil {
		logger.Warn("search cancelled while rate limited", "error", err)
		return []models.Product{}
	}

	searchURL := SearchURL(query)
	logger.Info("opening search page", "url", searchURL)

	html, err := s.session.NavigateAndWait(searchURL, resultCardSelector, s.renderTimeout)
	if err != nil {
		logger.Error("search failed", "error", err)
		observability.SearchFailures.Inc()
		return []models.Product{}
	}

	products := s.parser.ParseSearchPage(html, limit)
	if len(products) == 0 {
		observability.EmptyResults.Inc()
	}
	observability.ProductsExtracted.Add(float64(len(products)))

	logger.Info("search finished", "products", len(products))
	return products
}

// SearchURL builds the catalog search URL for a free-text query.
func SearchURL(query string) string {
	return fmt.Sprintf(searchURLTemplate, url.QueryEscape(query))
}

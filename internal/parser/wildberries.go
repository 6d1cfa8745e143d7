package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wb-price-bot/internal/models"
)

const Marketplace = "Wildberries"

// Structural markers of a rendered search-results page. The markup shifts
// from time to time; when one of these stops matching, the affected field
// degrades to its default instead of failing the page.
const (
	selectorCard       = ".product-card"
	selectorCardName   = ".product-card__name"
	selectorCardBrand  = ".product-card__brand"
	selectorCardPrice  = ".price__lower-price"
	selectorCardRating = ".product-card__rating"
	selectorCardCount  = ".product-card__count"

	attrProductID = "data-nm-id"

	productURLTemplate = "https://www.wildberries.ru/catalog/%s/detail.aspx"
)

type WildberriesParser struct {
	logger *slog.Logger
}

func NewWildberriesParser(logger *slog.Logger) *WildberriesParser {
	return &WildberriesParser{
		logger: logger.With("component", "parser"),
	}
}

// ParseSearchPage extracts up to limit products from a rendered results
// page, in document order. Card-level failures cost that card only; a page
// whose HTML cannot be parsed at all yields an empty slice, never an error.
func (p *WildberriesParser) ParseSearchPage(html string, limit int) []models.Product {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		p.logger.Error("failed to parse search page", "error", err)
		return []models.Product{}
	}

	products := make([]models.Product, 0, limit)

	doc.Find(selectorCard).EachWithBreak(func(i int, card *goquery.Selection) bool {
		if limit > 0 && len(products) >= limit {
			return false
		}
		product, err := p.parseCard(card)
		if err != nil {
			p.logger.Warn("skipping product card", "index", i, "error", err)
			return true
		}
		products = append(products, *product)
		return true
	})

	return products
}

// parseCard assembles one product from a result card. The id attribute is
// the only hard requirement; each remaining field is extracted in isolation
// and substituted with its default on failure.
func (p *WildberriesParser) parseCard(card *goquery.Selection) (*models.Product, error) {
	id, _ := card.Attr(attrProductID)
	product, err := models.NewProduct(Marketplace, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	title := extractTitle(card)
	brand := extractBrand(card)

	product.Name = brand + " - " + title
	product.Price = extractPrice(card)
	product.Rating = extractRating(card)
	product.Feedbacks = extractFeedbacks(card)
	product.ImageURL = ImageURL(product.ProductID)
	product.ProductURL = ProductURL(product.ProductID)

	return product, nil
}

// ProductURL builds the canonical detail-page link for a product id.
func ProductURL(productID string) string {
	return fmt.Sprintf(productURLTemplate, productID)
}

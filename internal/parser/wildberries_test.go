package parser

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParser() *WildberriesParser {
	return NewWildberriesParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func cardHTML(id, brand, name, price, rating, count string) string {
	idAttr := ""
	if id != "" {
		idAttr = fmt.Sprintf(` data-nm-id="%s"`, id)
	}
	return fmt.Sprintf(`<article class="product-card"%s>
		<p class="product-card__brand">%s</p>
		<p class="product-card__name">%s</p>
		<ins class="price__lower-price">%s</ins>
		<span class="product-card__rating">%s</span>
		<span class="product-card__count">%s</span>
	</article>`, idAttr, brand, name, price, rating, count)
}

func pageHTML(cards ...string) string {
	html := `<html><body><div class="catalog-page">`
	for _, c := range cards {
		html += c
	}
	return html + `</div></body></html>`
}

func TestParseSearchPageFullyPopulatedCards(t *testing.T) {
	page := pageHTML(
		cardHTML("100123", "Nike", "Кеды классические", "4 990 ₽", "4.7", "(321)"),
		cardHTML("200456", "Adidas", "Кроссовки беговые", "6 490 ₽", "4.9", "(1502)"),
		cardHTML("300789", "Puma", "Кеды низкие", "3 250 ₽", "4.5", "(87)"),
	)

	products := testParser().ParseSearchPage(page, 5)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, Marketplace, first.Marketplace)
	assert.Equal(t, "100123", first.ProductID)
	assert.Equal(t, "Nike - Кеды классические", first.Name)
	assert.Equal(t, 4990, first.Price)
	assert.Equal(t, 4.7, first.Rating)
	assert.Equal(t, 321, first.Feedbacks)
	assert.Equal(t, "https://www.wildberries.ru/catalog/100123/detail.aspx", first.ProductURL)
	assert.Equal(t, "https://basket-01.wbbasket.ru/vol1/part100/100123/images/c516x688/1.jpg", first.ImageURL)

	// Document order is preserved.
	assert.Equal(t, "200456", products[1].ProductID)
	assert.Equal(t, "300789", products[2].ProductID)
	for _, p := range products {
		assert.Positive(t, p.Price)
		assert.Positive(t, p.Rating)
		assert.Positive(t, p.Feedbacks)
	}
}

func TestParseSearchPageSkipsCardWithoutID(t *testing.T) {
	page := pageHTML(
		cardHTML("1001", "A", "Товар 1", "100 ₽", "4.0", "(1)"),
		cardHTML("1002", "B", "Товар 2", "200 ₽", "4.1", "(2)"),
		cardHTML("", "C", "Товар 3", "300 ₽", "4.2", "(3)"),
		cardHTML("1004", "D", "Товар 4", "400 ₽", "4.3", "(4)"),
		cardHTML("1005", "E", "Товар 5", "500 ₽", "4.4", "(5)"),
	)

	products := testParser().ParseSearchPage(page, 5)
	require.Len(t, products, 4)
	assert.Equal(t, []string{"1001", "1002", "1004", "1005"}, []string{
		products[0].ProductID, products[1].ProductID, products[2].ProductID, products[3].ProductID,
	})
}

func TestParseSearchPageRespectsLimit(t *testing.T) {
	page := pageHTML(
		cardHTML("1", "A", "T1", "100", "4.0", "(1)"),
		cardHTML("2", "B", "T2", "200", "4.0", "(1)"),
		cardHTML("3", "C", "T3", "300", "4.0", "(1)"),
	)

	products := testParser().ParseSearchPage(page, 2)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ProductID)
	assert.Equal(t, "2", products[1].ProductID)
}

func TestParseSearchPageMissingFieldsDegradeToDefaults(t *testing.T) {
	page := pageHTML(`<article class="product-card" data-nm-id="555000"></article>`)

	products := testParser().ParseSearchPage(page, 5)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, DefaultBrand+" - "+DefaultTitle, p.Name)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.Feedbacks)
	assert.Equal(t, "https://basket-05.wbbasket.ru/vol5/part555/555000/images/c516x688/1.jpg", p.ImageURL)
	assert.Equal(t, "https://www.wildberries.ru/catalog/555000/detail.aspx", p.ProductURL)
}

func TestParseSearchPageNoCards(t *testing.T) {
	products := testParser().ParseSearchPage(`<html><body><div class="not-a-catalog"></div></body></html>`, 5)
	assert.Empty(t, products)
}

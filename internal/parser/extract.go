package parser

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Defaults substituted when a field cannot be extracted from a card.
const (
	DefaultTitle = "Название не указано"
	DefaultBrand = "Бренд не указан"
)

// cardText is the lookup half shared by every field extractor: it finds the
// first element matching the selector inside the card and reports whether
// anything was there at all. Parsing the text is left to the per-field
// functions below.
func cardText(card *goquery.Selection, selector string) (string, bool) {
	sel := card.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func extractTitle(card *goquery.Selection) string {
	text, ok := cardText(card, selectorCardName)
	if !ok || text == "" {
		return DefaultTitle
	}
	return text
}

func extractBrand(card *goquery.Selection) string {
	text, ok := cardText(card, selectorCardBrand)
	if !ok || text == "" {
		return DefaultBrand
	}
	return text
}

func extractPrice(card *goquery.Selection) int {
	text, ok := cardText(card, selectorCardPrice)
	if !ok {
		return 0
	}
	return ParsePrice(text)
}

func extractRating(card *goquery.Selection) float64 {
	text, ok := cardText(card, selectorCardRating)
	if !ok {
		return 0
	}
	return ParseRating(text)
}

func extractFeedbacks(card *goquery.Selection) int {
	text, ok := cardText(card, selectorCardCount)
	if !ok {
		return 0
	}
	return ParseFeedbacks(text)
}

// ParsePrice keeps only the digit characters of the price text and parses
// them as a whole-ruble amount. The site interleaves thousands separators
// and the currency glyph with the digits ("12 990 ₽"), so everything that
// is not a digit is dropped. No digits at all parses as 0.
func ParsePrice(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	price, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return price
}

// ParseRating parses the raw rating text as a float. The scale is whatever
// the site supplies; only negative and unparseable values degrade to 0.
func ParseRating(text string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || rating < 0 {
		return 0
	}
	return rating
}

// ParseFeedbacks strips the enclosing parentheses from a review count like
// "(1234)" and parses the remainder only when it is all digits. A count
// with inner separators ("(1 234)") is rejected, not cleaned up; unlike the
// price this field is strict by contract.
func ParseFeedbacks(text string) int {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	if text == "" || !isAllDigits(text) {
		return 0
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return count
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Package links builds outbound search deep-links for marketplaces that are
// not scraped live. Pure string templating, no extraction.
package links

import (
	"fmt"
	"net/url"
)

func OzonSearch(query string) string {
	return fmt.Sprintf("https://www.ozon.ru/search/?text=%s", url.QueryEscape(query))
}

func YandexMarketSearch(query string) string {
	return fmt.Sprintf("https://market.yandex.ru/search?text=%s", url.QueryEscape(query))
}

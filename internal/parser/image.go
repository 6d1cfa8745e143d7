package parser

import (
	"fmt"
	"strconv"
)

// PlaceholderImageURL is used whenever a real image URL cannot be derived.
const PlaceholderImageURL = "https://via.placeholder.com/400x300/7100FF/FFFFFF?text=No+Image"

// ImageURL derives the CDN image URL for a product id without any network
// or DOM lookup. Wildberries shards images across basket hosts by id:
// vol = id/100000 picks the host and first path segment, part = id/1000 the
// second. The scheme is the site's internal layout and can change under us,
// which is why it lives in this one function. Anything that is not a
// non-negative integer id falls back to the placeholder.
func ImageURL(productID string) string {
	id, err := strconv.Atoi(productID)
	if err != nil || id < 0 {
		return PlaceholderImageURL
	}
	vol := id / 100000
	part := id / 1000
	return fmt.Sprintf("https://basket-%02d.wbbasket.ru/vol%d/part%d/%s/images/c516x688/1.jpg",
		vol, vol, part, productID)
}

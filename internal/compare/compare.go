package compare

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"wb-price-bot/internal/models"
)

var ErrNoProducts = errors.New("no products to compare")

const summaryLimit = 5

// Rank returns the products ordered by ascending price. The sort is stable,
// so equally priced products keep their original relative order. The input
// slice is not modified.
func Rank(products []models.Product) []models.Product {
	ranked := make([]models.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})
	return ranked
}

// Cheapest returns the lowest-priced product; among equal prices the one
// that came first in the input wins.
func Cheapest(products []models.Product) (models.Product, error) {
	if len(products) == 0 {
		return models.Product{}, ErrNoProducts
	}
	return Rank(products)[0], nil
}

// Summary renders the ranked price comparison shown to the user: the top
// entries ascending by price and a callout for the cheapest option.
func Summary(query string, products []models.Product) string {
	if len(products) == 0 {
		return ""
	}

	ranked := Rank(products)

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 <b>Сравнение цен в Wildberries по запросу \"%s\"</b>\n\n", query)

	for i, p := range ranked {
		if i >= summaryLimit {
			break
		}
		fmt.Fprintf(&b, "%d. 🏷️ <b>%s</b>\n", i+1, truncateName(p.Name, 60))
		fmt.Fprintf(&b, "   💰 <b>%s ₽</b>\n", FormatPrice(p.Price))
		fmt.Fprintf(&b, "   ⭐ %.1f | 💬 %d\n\n", p.Rating, p.Feedbacks)
	}

	cheapest := ranked[0]
	b.WriteString("💡 <b>Самый дешевый вариант:</b>\n")
	fmt.Fprintf(&b, "💰 %s ₽\n", FormatPrice(cheapest.Price))
	fmt.Fprintf(&b, "🔗 %s", cheapest.ProductURL)

	return b.String()
}

// FormatPrice groups a whole-ruble amount with thin spaces: 12990 -> "12 990".
func FormatPrice(price int) string {
	digits := fmt.Sprintf("%d", price)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max]) + "..."
}

package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wb-price-bot/internal/links"
)

// searchKeyboard offers deep links into the marketplaces we do not scrape.
func searchKeyboard(query string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔍 Искать в OZON", links.OzonSearch(query)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔍 Искать в Яндекс Маркете", links.YandexMarketSearch(query)),
		),
	)
}

func compareKeyboard(query string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔄 Сравнить цены в других магазинах", links.OzonSearch(query)),
		),
	)
}

func productKeyboard(productURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🛒 Перейти к товару", productURL),
		),
	)
}

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wb-price-bot/internal/compare"
	"wb-price-bot/internal/models"
)

// Searcher is the extraction core as the front-end sees it: one operation,
// no errors. An empty result may equally mean "no matches" or "extraction
// failed"; the handler renders the same message either way.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []models.Product
}

type Handler struct {
	api            *tgbotapi.BotAPI
	searcher       Searcher
	logger         *slog.Logger
	resultLimit    int
	minQueryLength int
	updateTimeout  int
}

func NewHandler(api *tgbotapi.BotAPI, searcher Searcher, resultLimit, minQueryLength, updateTimeout int, logger *slog.Logger) *Handler {
	return &Handler{
		api:            api,
		searcher:       searcher,
		logger:         logger.With("component", "bot"),
		resultLimit:    resultLimit,
		minQueryLength: minQueryLength,
		updateTimeout:  updateTimeout,
	}
}

// Run processes updates until the context is cancelled. Searches are
// dispatched to goroutines so the multi-second scrape never blocks the
// polling loop; serialization of the shared browser session happens inside
// the scraper.
func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout
	updates := h.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		h.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		msg := update.Message
		switch {
		case msg.IsCommand():
			h.handleCommand(msg)
		default:
			go h.handleSearch(ctx, msg)
		}
	}
}

func (h *Handler) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.send(tgbotapi.NewMessage(msg.Chat.ID, startText))
	case "help":
		reply := tgbotapi.NewMessage(msg.Chat.ID, helpText)
		reply.ParseMode = tgbotapi.ModeHTML
		h.send(reply)
	case "search_ozon":
		h.send(tgbotapi.NewMessage(msg.Chat.ID,
			"🔍 Для поиска в Ozon отправьте мне название товара, и я предоставлю ссылку для быстрого перехода!"))
	case "search_yandex":
		h.send(tgbotapi.NewMessage(msg.Chat.ID,
			"🔍 Для поиска в Яндекс Маркете отправьте мне название товара, и я предоставлю ссылку для быстрого перехода!"))
	default:
		h.send(tgbotapi.NewMessage(msg.Chat.ID,
			"Команда не распознана. Используйте /help, чтобы посмотреть, что я умею."))
	}
}

func (h *Handler) handleSearch(ctx context.Context, msg *tgbotapi.Message) {
	query := strings.TrimSpace(msg.Text)
	chatID := msg.Chat.ID

	if utf8.RuneCountInString(query) < h.minQueryLength {
		h.send(tgbotapi.NewMessage(chatID,
			"❌ Слишком короткий запрос. Попробуйте ввести более конкретное название товара."))
		return
	}

	placeholder, err := h.api.Send(tgbotapi.NewMessage(chatID, "🔍 Ищу товары в Wildberries..."))
	if err != nil {
		h.logger.Error("failed to send placeholder", "error", err)
		return
	}

	products := h.searcher.Search(ctx, query, h.resultLimit)

	if len(products) == 0 {
		h.edit(chatID, placeholder.MessageID, fmt.Sprintf(
			"❌ По запросу \"%s\" ничего не найдено в Wildberries.\n\n"+
				"Попробуйте:\n"+
				"• Изменить формулировку\n"+
				"• Проверить орфографию\n"+
				"• Использовать более общий запрос", query), nil)

		suggestion := tgbotapi.NewMessage(chatID, "💡 Попробуйте поискать в других маркетплейсах:")
		suggestion.ReplyMarkup = searchKeyboard(query)
		h.send(suggestion)
		return
	}

	markup := compareKeyboard(query)
	h.edit(chatID, placeholder.MessageID, fmt.Sprintf(
		"✅ Нашёл %d товаров по запросу \"%s\" в Wildberries:", len(products), query), &markup)

	for _, product := range products {
		h.sendProduct(chatID, product)
		time.Sleep(500 * time.Millisecond)
	}

	if summary := compare.Summary(query, products); summary != "" {
		reply := tgbotapi.NewMessage(chatID, summary)
		reply.ParseMode = tgbotapi.ModeHTML
		h.send(reply)
	}

	suggestion := tgbotapi.NewMessage(chatID,
		"💡 <b>Хотите сравнить цены в других магазинах?</b>\n\nНажмите на кнопки ниже для быстрого перехода:")
	suggestion.ParseMode = tgbotapi.ModeHTML
	suggestion.ReplyMarkup = searchKeyboard(query)
	h.send(suggestion)
}

// sendProduct sends one product as a photo message, falling back to plain
// text with the link when Telegram rejects the image.
func (h *Handler) sendProduct(chatID int64, product models.Product) {
	caption := productCaption(product)
	keyboard := productKeyboard(product.ProductURL)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(product.ImageURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	photo.ReplyMarkup = keyboard

	if _, err := h.api.Send(photo); err != nil {
		h.logger.Warn("failed to send photo, falling back to text",
			"product_id", product.ProductID, "error", err)

		fallback := tgbotapi.NewMessage(chatID,
			fmt.Sprintf("%s\n\n🔗 Ссылка: %s", caption, product.ProductURL))
		fallback.ParseMode = tgbotapi.ModeHTML
		fallback.ReplyMarkup = keyboard
		h.send(fallback)
	}
}

func productCaption(product models.Product) string {
	return fmt.Sprintf(
		"🏷️ <b>%s</b>\n\n"+
			"💰 <b>Цена:</b> %s ₽\n"+
			"⭐ <b>Рейтинг:</b> %s\n"+
			"💬 <b>Отзывы:</b> %d\n"+
			"🆔 <b>Артикул:</b> %s",
		escapeHTML(product.Name),
		compare.FormatPrice(product.Price),
		strconv.FormatFloat(product.Rating, 'f', -1, 64),
		product.Feedbacks,
		product.ProductID,
	)
}

func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

func (h *Handler) send(msg tgbotapi.MessageConfig) {
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Error("failed to send message", "chat_id", msg.ChatID, "error", err)
	}
}

func (h *Handler) edit(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = markup
	if _, err := h.api.Send(edit); err != nil {
		h.logger.Error("failed to edit message", "chat_id", chatID, "error", err)
	}
}

const startText = "👋 Привет! Я помогу найти товары по лучшим ценам!\n\n" +
	"🔍 Просто отправь мне название товара, например:\n" +
	"• \"кеды\"\n" +
	"• \"кроссовки nike\"\n" +
	"• \"телефон\"\n\n" +
	"Я покажу товары из Wildberries и помогу сравнить цены в других маркетплейсах!"

const helpText = "ℹ️ <b>Как пользоваться ботом:</b>\n\n" +
	"1. Отправь название товара\n" +
	"2. Я найду товары в Wildberries\n" +
	"3. Покажу цены, фото и ссылки\n" +
	"4. Предоставлю кнопки для поиска в других магазинах\n\n" +
	"<b>Примеры запросов:</b>\n" +
	"• <code>кеды</code>\n" +
	"• <code>куртка зимняя</code>\n" +
	"• <code>redmi 15c</code>\n\n" +
	"💡 <b>Совет:</b> Используйте кнопки под сообщениями для быстрого перехода в другие маркетплейсы!"

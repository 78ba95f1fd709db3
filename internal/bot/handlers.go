package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"orderbot/internal/metrics"
	"orderbot/internal/model"
	"orderbot/internal/service"
)

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, greetingText(msg.From.FirstName))
	reply.ReplyMarkup = b.greetingKeyboard(b.admins.IsAdmin(ctx, msg.From.ID))
	if _, err := b.api.Send(reply); err != nil {
		slog.Error("failed to send greeting", "chat_id", msg.Chat.ID, "error", err)
	}
}

func (b *Bot) greetingKeyboard(admin bool) tgbotapi.InlineKeyboardMarkup {
	menu := tgbotapi.NewInlineKeyboardButtonURL("🍽️ Menyu", b.webAppURL+"/index.html")
	if !admin {
		return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(menu))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(menu),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🛠️ Admin panel", b.webAppURL+"/admin.html"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistika", "stats"),
		),
	)
}

func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	// Telegram expects the callback answered quickly, before any slow work.
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		slog.Error("failed to answer callback", "callback_id", q.ID, "error", err)
	}

	switch data := q.Data; data {
	case "stats":
		b.handleStats(ctx, q)
	case "back_to_start":
		b.handleBack(ctx, q)
	default:
		action, orderID, ok := strings.Cut(data, "_")
		if !ok {
			slog.Warn("malformed callback data", "data", data)
			return
		}
		b.handleDecision(ctx, q, action, orderID)
	}
}

func (b *Bot) handleDecision(ctx context.Context, q *tgbotapi.CallbackQuery, action, orderID string) {
	var status, marker string
	switch action {
	case "accept":
		status, marker = model.StatusAccepted, "\n\n✅ <b>QABUL QILINDI</b>"
	case "reject":
		status, marker = model.StatusRejected, "\n\n❌ <b>BEKOR QILINDI</b>"
	default:
		return
	}

	if err := b.orders.Decide(ctx, orderID, status); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			slog.Warn("decision for unknown order", "order", orderID)
			return
		}
		slog.Error("failed to update order status", "order", orderID, "error", err)
		return
	}
	metrics.DecisionsTotal.WithLabelValues(status).Inc()

	if err := b.webapp.UpdateOrderStatus(ctx, orderID, status); err != nil {
		metrics.MirrorFailuresTotal.Inc()
		slog.Warn("mirror status update failed", "order", orderID, "error", err)
	}

	if q.Message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID, q.Message.Text+marker)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		slog.Error("failed to edit order message", "order", orderID, "error", err)
	}
}

func (b *Bot) handleStats(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if q.Message == nil {
		return
	}

	if !b.admins.IsAdmin(ctx, q.From.ID) {
		msg := tgbotapi.NewMessage(q.Message.Chat.ID, "⛔ Bu bo'lim faqat adminlar uchun.")
		if _, err := b.api.Send(msg); err != nil {
			slog.Error("failed to send stats rejection", "chat_id", q.Message.Chat.ID, "error", err)
		}
		return
	}

	daily, err := b.orders.DailyStats(ctx)
	if err != nil {
		slog.Error("failed to load daily stats", "error", err)
		return
	}
	weekly, err := b.orders.WeeklyStats(ctx)
	if err != nil {
		slog.Error("failed to load weekly stats", "error", err)
		return
	}

	msg := tgbotapi.NewMessage(q.Message.Chat.ID, statsText(daily, weekly))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = backKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("failed to send stats", "chat_id", q.Message.Chat.ID, "error", err)
	}
}

func (b *Bot) handleBack(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if q.Message == nil {
		return
	}
	reply := tgbotapi.NewMessage(q.Message.Chat.ID, greetingText(q.From.FirstName))
	reply.ReplyMarkup = b.greetingKeyboard(b.admins.IsAdmin(ctx, q.From.ID))
	if _, err := b.api.Send(reply); err != nil {
		slog.Error("failed to send greeting", "chat_id", q.Message.Chat.ID, "error", err)
	}
}

package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"orderbot/internal/model"
	"orderbot/internal/service"
)

// api is the slice of the Telegram client the bot actually uses.
// *tgbotapi.BotAPI satisfies it.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api         api
	orders      *service.OrderStore
	admins      *service.AdminChecker
	webapp      *service.WebAppClient
	adminChatID int64
	webAppURL   string
}

func New(api api, orders *service.OrderStore, admins *service.AdminChecker,
	webapp *service.WebAppClient, adminChatID int64, webAppURL string) *Bot {
	return &Bot{
		api:         api,
		orders:      orders,
		admins:      admins,
		webapp:      webapp,
		adminChatID: adminChatID,
		webAppURL:   webAppURL,
	}
}

// Run consumes the update channel until the context is canceled or the
// channel closes.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	slog.Info("starting update loop")
	for {
		select {
		case <-ctx.Done():
			slog.Info("update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				slog.Info("update channel closed")
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		if update.Message.Command() == "start" {
			b.handleStart(ctx, update.Message)
		}
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

// SendOrderAlert pushes the formatted order card with accept/reject controls
// to the admin channel.
func (b *Bot) SendOrderAlert(o model.Order) error {
	msg := tgbotapi.NewMessage(b.adminChatID, OrderText(o))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = decisionKeyboard(o.OrderID, b.webAppURL)
	_, err := b.api.Send(msg)
	return err
}

// Package telegram is the bot interface: long polling, dialogs and
// message formatting.
package telegram

import (
	"bytes"
	"context"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/application/services"
)

// Bot wraps the Telegram API client with the application services
type Bot struct {
	api      *bot.Bot
	services *services.ServiceManager
	fsm      *FSM
	log      *zap.Logger
}

// New creates the bot and registers the update handler
func New(token string, sm *services.ServiceManager, log *zap.Logger) (*Bot, error) {
	b := &Bot{
		services: sm,
		fsm:      NewFSM(),
		log:      log,
	}

	api, err := bot.New(token, bot.WithDefaultHandler(b.handleUpdate))
	if err != nil {
		return nil, err
	}
	b.api = api
	return b, nil
}

// Start begins long polling. Blocks until the context is canceled.
func (b *Bot) Start(ctx context.Context) {
	b.log.Info("telegram bot starting")
	b.api.Start(ctx)
}

// Notify sends a plain message to a user. Implements ports.Notifier
// for the reminder scheduler.
func (b *Bot) Notify(ctx context.Context, userID int64, text string) error {
	_, err := b.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   text,
	})
	return err
}

// handleUpdate dispatches messages and callback queries
func (b *Bot) handleUpdate(ctx context.Context, _ *bot.Bot, update *tgmodels.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("panic in update handler", zap.Any("panic", r))
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	b.sendWithMarkup(ctx, chatID, text, nil)
}

func (b *Bot) sendWithMarkup(ctx context.Context, chatID int64, text string, markup tgmodels.ReplyMarkup) {
	_, err := b.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   tgmodels.ParseModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		b.log.Warn("send message failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendPhoto(ctx context.Context, chatID int64, filename string, png []byte, caption string) {
	_, err := b.api.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo: &tgmodels.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(png),
		},
		Caption:   caption,
		ParseMode: tgmodels.ParseModeHTML,
	})
	if err != nil {
		b.log.Warn("send photo failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) answerCallback(ctx context.Context, callbackID string) {
	_, err := b.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		b.log.Debug("answer callback failed", zap.Error(err))
	}
}

// callbackChatID extracts the chat to reply into; falls back to the
// sender's ID for inaccessible messages
func callbackChatID(query *tgmodels.CallbackQuery) int64 {
	if query.Message.Message != nil {
		return query.Message.Message.Chat.ID
	}
	return query.From.ID
}

package ingest

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender sends replies through the Telegram Bot API.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender wraps a bot API client as a service.Sender.
func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

// Send delivers one text message to a chat.
func (s *TelegramSender) Send(chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

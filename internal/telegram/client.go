package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// requestTimeout bounds every outbound Telegram API call so a hung
// connection cannot stall the daily job indefinitely.
const requestTimeout = 30 * time.Second

// ErrNoChatID is returned when the bot has no inbound updates to resolve a
// destination from.
var ErrNoChatID = errors.New("no chat id found: make sure you've messaged your bot")

// Client wraps the Telegram Bot API for sending text notifications to a
// single resolved conversation.
type Client struct {
	api *tgbotapi.BotAPI
	log zerolog.Logger
}

// New initializes the Telegram client against the production API endpoint.
func New(token string, logger zerolog.Logger) (*Client, error) {
	return NewWithEndpoint(token, tgbotapi.APIEndpoint, logger)
}

// NewWithEndpoint initializes the Telegram client against a custom API
// endpoint. Tests point this at a local fake server.
func NewWithEndpoint(token, endpoint string, logger zerolog.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: requestTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	c := &Client{
		api: api,
		log: logger.With().Str("component", "telegram").Logger(),
	}
	c.log.Info().Str("account", api.Self.UserName).Msg("authorized on telegram")
	return c, nil
}

// ResolveChatID returns the chat id of the most recent inbound message.
// Deliberately fragile: it requires a human to have messaged the bot at
// least once and always targets the newest sender.
func (c *Client) ResolveChatID() (int64, error) {
	updates, err := c.api.GetUpdates(tgbotapi.UpdateConfig{})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch updates: %w", err)
	}

	for i := len(updates) - 1; i >= 0; i-- {
		if msg := updates[i].Message; msg != nil {
			return msg.Chat.ID, nil
		}
	}
	return 0, ErrNoChatID
}

// Send resolves the destination chat (fresh lookup each call, no caching)
// and delivers text to it.
func (c *Client) Send(text string) error {
	chatID, err := c.ResolveChatID()
	if err != nil {
		return err
	}
	c.log.Info().Int64("chat_id", chatID).Msg("resolved chat id")

	if _, err := c.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	c.log.Info().Msg("notification sent")
	return nil
}

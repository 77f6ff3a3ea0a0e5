// ABOUTME: This file owns the Telegram channel session and its establishment
// ABOUTME: Connect resolves the channel identity and posts the announcement
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coupon-herald/config"
)

// announcement is posted on every successful (re)connect. It doubles as the
// write-permission probe: a session that cannot post it is not usable.
const announcement = "🤖 coupon herald connected"

// Client establishes channel sessions. It holds credentials only; the live
// handle is the Session it returns.
type Client struct {
	token    string
	channel  string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// Session is the live connection to the channel: an authenticated API client
// plus the resolved identity of the target chat.
type Session struct {
	bot       *tgbotapi.BotAPI
	channel   string
	ChatID    int64
	ChatTitle string
}

// NewClient creates a client from config. All API calls share one bounded
// HTTP client.
func NewClient(cfg config.TelegramConfig, logger *slog.Logger) *Client {
	return &Client{
		token:    cfg.BotToken,
		channel:  cfg.ChannelUsername,
		endpoint: tgbotapi.APIEndpoint,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		logger:   logger,
	}
}

// Connect authenticates, resolves the channel id and title, and posts the
// announcement message. Any failure leaves no session behind.
func (c *Client) Connect(ctx context.Context) (*Session, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(c.token, c.endpoint, c.client)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	chat, err := bot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: c.channel},
	})
	if err != nil {
		return nil, fmt.Errorf("resolve channel %s: %w", c.channel, err)
	}

	sess := &Session{
		bot:       bot,
		channel:   c.channel,
		ChatID:    chat.ID,
		ChatTitle: chat.Title,
	}

	if err := sess.SendText(announcement); err != nil {
		return nil, fmt.Errorf("post announcement: %w", err)
	}

	c.logger.Info("telegram session established",
		"channel", c.channel, "chat_id", chat.ID, "chat_title", chat.Title)

	return sess, nil
}

// SendText posts a plain text message to the channel.
func (s *Session) SendText(text string) error {
	msg := tgbotapi.NewMessage(s.ChatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send text to %s: %w", s.channel, err)
	}
	return nil
}

// SendPhoto posts an image file with a caption to the channel.
func (s *Session) SendPhoto(path, caption string) error {
	photo := tgbotapi.NewPhoto(s.ChatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	if _, err := s.bot.Send(photo); err != nil {
		return fmt.Errorf("send photo to %s: %w", s.channel, err)
	}
	return nil
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/internal/service/chat"
	"github.com/sandevgo/sensei/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const (
	baseContextKey = "base_context"
	startGreeting  = "Hello"
	failureReply   = "Sorry, something went wrong. Please try again later."
)

// Asker answers one message for a named visitor.
type Asker interface {
	Ask(ctx context.Context, message, name string) (string, error)
}

type Bot struct {
	bot    *tele.Bot
	sender *sender
	chat   Asker
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	asker Asker,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		sender: newSender(b),
		chat:   asker,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	return b.respond(c, startGreeting)
}

func (b *Bot) handleMessage(c tele.Context) error {
	return b.respond(c, c.Text())
}

func (b *Bot) respond(c tele.Context, text string) error {
	ctx := c.Get(baseContextKey).(context.Context)
	ctx = log.WithFields(ctx, "chat_id", fmt.Sprint(c.Chat().ID))

	_ = c.Notify(tele.Typing)

	answer := reply(ctx, b.chat, text, senderName(c.Sender()))
	if answer == "" {
		return nil
	}
	return b.sender.send(ctx, c.Recipient(), answer)
}

// reply returns the text to send back, or "" when nothing should be sent.
func reply(ctx context.Context, asker Asker, text, name string) string {
	answer, err := asker.Ask(ctx, text, name)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return ""
	case err != nil:
		log.FromCtx(ctx).Error().Err(err).Msg("chat reply failed")
		return failureReply
	}
	return answer
}

func senderName(u *tele.User) string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(u.FirstName)
}

package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/sensei/pkg/conv"
	"github.com/sandevgo/sensei/pkg/log"
	tele "gopkg.in/telebot.v3"
)

// Telegram caps messages at 4096 characters.
const maxMessageLen = 4000

// messenger is the part of *tele.Bot the sender uses.
type messenger interface {
	Send(to tele.Recipient, what any, opts ...any) (*tele.Message, error)
}

type sender struct {
	bot messenger
}

func newSender(bot messenger) *sender {
	return &sender{bot: bot}
}

// send renders md as Telegram HTML and sends it in chunks. When Telegram
// rejects the first chunk the whole reply goes out as plain text instead.
func (s *sender) send(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxMessageLen) {
		_, err := s.bot.Send(to, chunk, tele.ModeHTML)
		if err == nil {
			continue
		}
		if i == 0 {
			logger.Warn().Err(err).Msg("telegram rejected html, sending plain text")
			return s.sendPlain(to, md)
		}
		logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
		return err
	}
	return nil
}

func (s *sender) sendPlain(to tele.Recipient, text string) error {
	for _, chunk := range splitHTML(strings.TrimSpace(text), maxMessageLen) {
		if _, err := s.bot.Send(to, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitHTML cuts text into chunks of at most maxLen bytes, preferring a
// newline in the last two thirds of each chunk.
func splitHTML(text string, maxLen int) []string {
	var chunks []string
	for len(text) > maxLen {
		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" || len(chunks) == 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

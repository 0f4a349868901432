package bot

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	tele "gopkg.in/telebot.v3"
)

const maxMessageLen = 4096

var ErrNotConfigured = errors.New("notifications not configured")

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier pushes messages to a single chat.
type Notifier struct {
	sender sender
	chat   tele.ChatID
}

var newOfflineBot = func(token string) (sender, error) {
	return tele.NewBot(tele.Settings{Token: token, Offline: true})
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, ErrNotConfigured
	}
	b, err := newOfflineBot(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{sender: b, chat: tele.ChatID(chatID)}, nil
}

// Notify sends text, split into Telegram-sized chunks.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := n.sender.Send(n.chat, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitMessage cuts text into chunks of at most max runes, preferring line breaks.
func splitMessage(text string, max int) []string {
	if utf8.RuneCountInString(text) <= max {
		return []string{text}
	}
	var chunks []string
	for utf8.RuneCountInString(text) > max {
		runes := []rune(text)
		cut := string(runes[:max])
		if i := strings.LastIndex(cut, "\n"); i > 0 {
			cut = cut[:i]
		}
		chunks = append(chunks, cut)
		text = strings.TrimLeft(text[len(cut):], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

const replyTimeout = 45 * time.Second

type registrar interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
}

// StartTelegramBot long-polls Telegram in the background. An empty token
// disables the bot and returns nil.
func StartTelegramBot(token string, cmds *Commands) *tele.Bot {
	if token == "" {
		log.Info().Msg("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create Telegram bot")
		return nil
	}

	cmds.Register(b)

	log.Info().Msg("Telegram bot started")
	go b.Start()
	return b
}

// Register binds every command to r.
func (c *Commands) Register(r registrar) {
	r.Handle("/ping", func(tc tele.Context) error {
		return tc.Send("pong")
	})
	r.Handle("/start", func(tc tele.Context) error {
		return tc.Send(helpText)
	})
	r.Handle("/help", func(tc tele.Context) error {
		return tc.Send(helpText)
	})
	r.Handle("/coins", func(tc tele.Context) error {
		return tc.Send(c.Coins())
	})
	r.Handle("/analyze", func(tc tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		_ = tc.Notify(tele.Typing)
		return sendChunks(tc, c.Analyze(ctx, tc.Args()))
	})
	r.Handle("/pl", func(tc tele.Context) error {
		return tc.Send(c.PL(tc.Args()))
	})
	r.Handle("/scan", func(tc tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		return sendChunks(tc, c.Scan(ctx, tc.Args()))
	})
	r.Handle("/watch", func(tc tele.Context) error {
		return tc.Send(c.Watch(tc.Args()))
	})
	r.Handle("/unwatch", func(tc tele.Context) error {
		return tc.Send(c.Unwatch(tc.Args()))
	})
	r.Handle("/watchlist", func(tc tele.Context) error {
		return sendChunks(tc, c.Watchlist())
	})
}

func sendChunks(tc tele.Context, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if err := tc.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

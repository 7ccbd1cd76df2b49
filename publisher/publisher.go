// Package publisher posts formatted digests and crawler notifications to a
// Telegram channel.
package publisher

import (
	"strconv"
	"time"

	"github.com/avast/retry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

type TelegramPublisher struct {
	ChannelID string // Telegram channel id (e.g. @my_channel)
	BotAPI    *tgbotapi.BotAPI
}

func NewTelegramPublisher(channelID, token string) (*TelegramPublisher, error) {
	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, newError(errlvl.FATAL, errBotInit, err)
	}
	return &TelegramPublisher{
		ChannelID: channelID,
		BotAPI:    b,
	}, nil
}

// Publish sends the message to the channel and returns the Telegram message
// id. Sends are retried a few times since the Bot API throttles bursts.
func (t *TelegramPublisher) Publish(msg string) (pubID string, err error) {
	tgMsg := tgbotapi.NewMessageToChannel(t.ChannelID, msg)
	tgMsg.ParseMode = tgbotapi.ModeMarkdown
	tgMsg.DisableWebPagePreview = true

	var sent tgbotapi.Message
	err = retry.Do(
		func() error {
			var serr error
			sent, serr = t.BotAPI.Send(tgMsg)
			return serr
		},
		retry.Attempts(3),
		retry.Delay(2*time.Second),
	)
	if err != nil {
		return "", newError(errlvl.ERROR, errPublish, err)
	}

	return strconv.Itoa(sent.MessageID), nil
}

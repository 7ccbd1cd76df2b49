package publisher

import (
	"errors"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

var (
	errBotInit = errors.New("failed to initialize telegram bot")
	errPublish = errors.New("failed to publish message to channel")
)

func newError(lvl errlvl.Lvl, genericErr, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}

package forexfactory

import (
	"errors"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// ffError is a package-level error type.
type ffError error

var (
	// ErrNoEvents is the not-found condition for a date range with zero
	// events. It is distinct from a transport or parse failure.
	ErrNoEvents ffError = errors.New("no calendar events found for the requested range")
	// ErrNoHistory is the not-found condition for an event id that yields
	// neither history entries nor related news.
	ErrNoHistory ffError = errors.New("no history found for the requested event")
	// ErrHistoryExhausted is returned when the server kept reporting
	// has_more past the page safety bound. Accumulated entries are still
	// returned alongside it.
	ErrHistoryExhausted ffError = errors.New("history pagination exceeded the page limit")

	errParseCalendarPage = errors.New("failed to parse calendar page")
	errParseRangeBody    = errors.New("failed to parse range response body")
	errParseHistoryBody  = errors.New("failed to parse history response body")
	errEncodePayload     = errors.New("failed to encode range payload")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr ffError, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}

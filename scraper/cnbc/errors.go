package cnbc

import (
	"errors"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// cnbcError is a package-level error type.
type cnbcError error

var (
	errFetchLatest  cnbcError = errors.New("failed to fetch cnbc latest-news page")
	errFetchSearch  cnbcError = errors.New("failed to fetch cnbc search results")
	errFetchDetail  cnbcError = errors.New("failed to fetch cnbc article page")
	errParseLatest  cnbcError = errors.New("failed to parse cnbc latest-news page")
	errParseSearch  cnbcError = errors.New("failed to parse cnbc search response body")
	errParseDetail  cnbcError = errors.New("failed to parse cnbc article page")
	errMissingState cnbcError = errors.New("cnbc article page carries no embedded state")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr cnbcError, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}

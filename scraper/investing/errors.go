package investing

import (
	"errors"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// invError is a package-level error type.
type invError error

var (
	errFetchLatest   invError = errors.New("failed to fetch investing latest-news page")
	errFetchSearch   invError = errors.New("failed to fetch investing search results")
	errFetchDetail   invError = errors.New("failed to fetch investing article page")
	errFetchSection  invError = errors.New("failed to fetch investing section page")
	errFetchSections invError = errors.New("failed to fetch investing news index page")
	errParseLatest   invError = errors.New("failed to parse investing latest-news page")
	errParseSearch   invError = errors.New("failed to parse investing search response body")
	errParseDetail   invError = errors.New("failed to parse investing article page")
	errParseSection  invError = errors.New("failed to parse investing section page")
	errParseSections invError = errors.New("failed to parse investing news index page")
	errMissingState  invError = errors.New("investing page carries no embedded state")
	errMissingDigest invError = errors.New("investing embedded state carries no news list")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr invError, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}

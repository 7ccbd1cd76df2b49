package scraper

import (
	"errors"
	"fmt"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

var (
	// ErrUnknownDomain is returned when no scraper is registered for the requested domain.
	ErrUnknownDomain = errors.New("no scraper found for domain")
	// ErrUnsupportedOperation is returned when the domain exists but does not implement the operation.
	ErrUnsupportedOperation = errors.New("operation is not supported for domain")
	// ErrEmptyKeyword rejects empty or whitespace-only search keywords before any network call.
	ErrEmptyKeyword = errors.New("keyword must not be empty")
	// ErrEmptyURL rejects detail-page requests without a URL.
	ErrEmptyURL = errors.New("url must not be empty")
	// ErrEmptyEventID rejects history requests without an event id.
	ErrEmptyEventID = errors.New("event id must not be empty")
	// ErrBadDate rejects calendar dates that are not in YYYY-MM-DD form.
	ErrBadDate = errors.New("date must be in YYYY-MM-DD form")
)

// ParseError reports that a response was fetched but its expected structure
// was absent (missing embedded JSON block, missing selector target).
type ParseError struct {
	Site string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse response: %v", e.Site, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err as a WARN-level parse failure for site.
func NewParseError(site string, err error) error {
	return errlvl.Wrap(&ParseError{Site: site, Err: err}, errlvl.WARN)
}

// Payload is the explicit error shape handed to API callers. It is distinct
// from an empty record list: an empty list means "no results found", a
// Payload means the fetch or parse itself failed.
type Payload struct {
	Error string `json:"error"`
}

// ErrorPayload converts an extractor error into the caller-visible shape.
func ErrorPayload(err error) Payload {
	return Payload{Error: err.Error()}
}

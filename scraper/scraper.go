// Package scraper holds the normalized record shapes, the input validation
// rules and the dispatch table that maps (domain, operation) to a
// site-specific extractor. The routing surface on top of it is someone
// else's problem; this package is the lookup it performs.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/scraper/forexfactory"
)

// LatestFetcher fetches the fixed latest-news listing of one site.
type LatestFetcher interface {
	LatestNews(ctx context.Context) ([]NewsRecord, error)
}

// Searcher queries the site-specific search endpoint with a keyword.
type Searcher interface {
	Search(ctx context.Context, keyword string) ([]NewsRecord, error)
}

// DetailFetcher fetches and parses a single article page.
type DetailFetcher interface {
	Detail(ctx context.Context, url string) (*NewsRecord, error)
}

// Source bundles the extractors one domain implements. Nil fields mean the
// domain does not support that operation.
type Source struct {
	Latest LatestFetcher
	Search Searcher
	Detail DetailFetcher
}

// Scraper is the dispatch table plus the per-operation failure policy.
type Scraper struct {
	sources map[string]*Source
	fetcher fetch.Doer
	logger  *slog.Logger
}

// New creates an empty Scraper. Sources are attached with Register.
func New(fetcher fetch.Doer) *Scraper {
	return &Scraper{
		sources: make(map[string]*Source),
		fetcher: fetcher,
		logger:  slog.Default(),
	}
}

// Register adds a source under the given domain key (lowercased).
func (s *Scraper) Register(domain string, src *Source) *Scraper {
	s.sources[strings.ToLower(domain)] = src
	return s
}

// Domains returns the registered domain keys.
func (s *Scraper) Domains() []string {
	return lo.Keys(s.sources)
}

func (s *Scraper) source(domain string) (*Source, error) {
	src, ok := s.sources[strings.ToLower(domain)]
	if !ok {
		return nil, errlvl.Wrap(fmt.Errorf("%w: %q", ErrUnknownDomain, domain), errlvl.INFO)
	}
	return src, nil
}

// LatestNews fetches the latest-news listing for the domain.
//
// Listing policy: a fetch or parse failure is logged and swallowed, and the
// caller gets an empty slice. Only an unknown domain/operation is an error.
func (s *Scraper) LatestNews(ctx context.Context, domain string) ([]NewsRecord, error) {
	src, err := s.source(domain)
	if err != nil {
		return nil, err
	}
	if src.Latest == nil {
		return nil, errlvl.Wrap(fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, domain, OpLatestNews), errlvl.INFO)
	}

	records, err := src.Latest.LatestNews(ctx)
	if err != nil {
		s.logger.Warn("latest-news fetch failed", "domain", domain, "error", err)
		return []NewsRecord{}, nil
	}
	if records == nil {
		records = []NewsRecord{}
	}
	return records, nil
}

// Search queries the domain's search endpoint. Empty or whitespace-only
// keywords are rejected before any network call. Unlike listings, a failed
// search surfaces the error so callers can distinguish it from zero hits.
func (s *Scraper) Search(ctx context.Context, domain, keyword string) ([]NewsRecord, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, errlvl.Wrap(ErrEmptyKeyword, errlvl.INFO)
	}

	src, err := s.source(domain)
	if err != nil {
		return nil, err
	}
	if src.Search == nil {
		return nil, errlvl.Wrap(fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, domain, OpSearch), errlvl.INFO)
	}

	return src.Search.Search(ctx, keyword)
}

// Detail fetches and parses one article page for the domain.
func (s *Scraper) Detail(ctx context.Context, domain, url string) (*NewsRecord, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errlvl.Wrap(ErrEmptyURL, errlvl.INFO)
	}

	src, err := s.source(domain)
	if err != nil {
		return nil, err
	}
	if src.Detail == nil {
		return nil, errlvl.Wrap(fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, domain, OpDetail), errlvl.INFO)
	}

	return src.Detail.Detail(ctx, url)
}

// CalendarDay scrapes the forexfactory calendar page for one date
// (YYYY-MM-DD) and returns cleaned, forward-filled events.
func (s *Scraper) CalendarDay(ctx context.Context, date string) ([]forexfactory.CalendarEvent, error) {
	day, err := parseISODate(date)
	if err != nil {
		return nil, err
	}

	cs := forexfactory.NewCalendarScraper(s.fetcher, day)
	rows, err := cs.Scrape(ctx)
	if err != nil {
		return nil, err
	}
	return forexfactory.Clean(rows), nil
}

// CalendarRange fetches fully-populated calendar events for [start, end].
func (s *Scraper) CalendarRange(ctx context.Context, start, end string) ([]forexfactory.CalendarEvent, error) {
	if _, err := parseISODate(start); err != nil {
		return nil, err
	}
	if _, err := parseISODate(end); err != nil {
		return nil, err
	}

	rs := forexfactory.NewRangeScraper(s.fetcher)
	return rs.Scrape(ctx, start, end)
}

// EventHistory fetches the full paginated history and related news for one
// calendar event.
func (s *Scraper) EventHistory(ctx context.Context, eventID string) (*forexfactory.EventHistory, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, errlvl.Wrap(ErrEmptyEventID, errlvl.INFO)
	}

	hs := forexfactory.NewHistoryScraper(s.fetcher)
	return hs.Scrape(ctx, eventID)
}

func parseISODate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, errlvl.Wrap(fmt.Errorf("%w: %q", ErrBadDate, date), errlvl.INFO)
	}
	return t, nil
}

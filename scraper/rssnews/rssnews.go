// Package rssnews adapts RSS feeds to the latest-news operation, so feed
// sources sit in the same dispatch table as scraped sites.
package rssnews

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/scraper"
	"github.com/ns-bitcoding/News-Scraper/utils"
)

var (
	errFetchFeed = errors.New("failed to fetch rss feed")
	errParseFeed = errors.New("failed to parse rss feed")
)

var feedHeaders = fetch.HeaderSet{
	"accept":     "application/rss+xml, application/xml;q=0.9, */*;q=0.8",
	"user-agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

// Feed names one RSS source.
type Feed struct {
	Name string
	URL  string
}

// DefaultFeeds are the feed sources registered out of the box.
func DefaultFeeds() []Feed {
	return []Feed{
		{Name: "nasdaq:markets", URL: "https://www.nasdaq.com/feed/rssoutbound?category=Markets"},
		{Name: "nasdaq:commodities", URL: "https://www.nasdaq.com/feed/rssoutbound?category=Commodities"},
		{Name: "cnbc:finance", URL: "https://search.cnbc.com/rs/search/combinedcms/view.xml?partnerId=wrss01&id=10000664"},
	}
}

// Provider fetches one feed and maps its items to news records.
type Provider struct {
	name    string
	url     string
	fetcher fetch.Doer
	parser  *gofeed.Parser
	strip   *bluemonday.Policy
}

func New(fetcher fetch.Doer, feed Feed) *Provider {
	return &Provider{
		name:    feed.Name,
		url:     feed.URL,
		fetcher: fetcher,
		parser:  gofeed.NewParser(),
		strip:   bluemonday.StrictPolicy(),
	}
}

// LatestNews fetches and parses the feed. Item timestamps are normalized to
// RFC 3339 when they parse; otherwise the feed's raw value is kept.
func (p *Provider) LatestNews(ctx context.Context) ([]scraper.NewsRecord, error) {
	body, err := p.fetcher.Get(ctx, p.url, feedHeaders)
	if err != nil {
		return nil, errlvl.Wrap(errors.Join(errFetchFeed, err), errlvl.WARN)
	}

	feed, err := p.parser.ParseString(string(body))
	if err != nil {
		return nil, errlvl.Wrap(errors.Join(errParseFeed, err), errlvl.ERROR)
	}

	var records []scraper.NewsRecord
	for _, item := range feed.Items {
		if item.Link == "" && item.Title == "" {
			continue
		}

		published := item.Published
		if t, perr := utils.ParseDate(item.Published); perr == nil && !t.IsZero() {
			published = t.Format(time.RFC3339)
		}

		records = append(records, scraper.NewsRecord{
			URL:     item.Link,
			Title:   strings.TrimSpace(item.Title),
			Source:  p.name,
			Time:    published,
			Content: strings.TrimSpace(html.UnescapeString(p.strip.Sanitize(item.Description))),
		})
	}
	return records, nil
}

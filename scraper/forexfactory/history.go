package forexfactory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/utils"
)

// maxHistoryPages bounds the pagination loop. The server drives termination
// through its has_more flag; the bound exists so a server that never flips
// the flag cannot spin the scraper forever.
const maxHistoryPages = 50

// HistoryScraper fetches the archive of one calendar event: the related
// news threads from the details endpoint plus every page of past releases.
type HistoryScraper struct {
	fetcher fetch.Doer
	logger  *slog.Logger
}

func NewHistoryScraper(fetcher fetch.Doer) *HistoryScraper {
	return &HistoryScraper{
		fetcher: fetcher,
		logger:  slog.Default(),
	}
}

type historyResponse struct {
	Data struct {
		LinkedThreads struct {
			News []struct {
				HTML string `json:"html"`
			} `json:"news"`
		} `json:"linked_threads"`
		History struct {
			HasMore bool           `json:"has_more"`
			Events  []historyEvent `json:"events"`
		} `json:"history"`
	} `json:"data"`
}

type historyEvent struct {
	EventID  json.Number `json:"event_id"`
	Date     string      `json:"date"`
	Actual   string      `json:"actual"`
	Forecast string      `json:"forecast"`
	Previous string      `json:"previous"`
}

// initialPage is what the details endpoint yields before pagination starts.
type initialPage struct {
	entries     []HistoryEntry
	relatedNews []RelatedNewsItem
	eventID     string // canonical id echoed by the server, used for page URLs
	hasMore     bool
}

// Scrape combines the initial details fetch with the pagination loop.
// When the page bound is hit the accumulated result is returned together
// with ErrHistoryExhausted.
func (h *HistoryScraper) Scrape(ctx context.Context, eventID string) (*EventHistory, error) {
	initial, err := h.fetchEventHistory(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if len(initial.entries) == 0 && len(initial.relatedNews) == 0 {
		return nil, newError(errlvl.INFO, ErrNoHistory, nil)
	}

	rest, pageErr := h.paginate(ctx, initial.eventID, initial.hasMore)

	result := &EventHistory{
		EventID:     eventID,
		History:     append(initial.entries, rest...),
		RelatedNews: initial.relatedNews,
	}
	if pageErr != nil {
		return result, pageErr
	}
	return result, nil
}

// fetchEventHistory GETs the details endpoint: related news fragments, the
// first page of history entries, the continuation flag and the canonical
// event id.
func (h *HistoryScraper) fetchEventHistory(ctx context.Context, eventID string) (*initialPage, error) {
	url := fmt.Sprintf("%s/calendar/details/1-%s", baseURL, eventID)
	body, err := h.fetcher.Get(ctx, url, historyHeaders)
	if err != nil {
		return nil, errlvl.Wrap(err, errlvl.ERROR)
	}

	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newError(errlvl.ERROR, errParseHistoryBody, err)
	}

	page := &initialPage{
		eventID: eventID,
		hasMore: resp.Data.History.HasMore,
	}

	for _, news := range resp.Data.LinkedThreads.News {
		page.relatedNews = append(page.relatedNews, parseRelatedNews(news.HTML))
	}

	for _, ev := range resp.Data.History.Events {
		if id := ev.EventID.String(); id != "" {
			page.eventID = id
		}
		page.entries = append(page.entries, HistoryEntry{
			Date:     ev.Date,
			Actual:   ev.Actual,
			Forecast: ev.Forecast,
			Previous: ev.Previous,
		})
	}

	return page, nil
}

// paginate POSTs successive page indexes (i=1,2,...) while the server keeps
// reporting has_more, appending entries in order. The loop has three ways
// out: the flag flips to false, a fetch/parse failure, or the page bound.
func (h *HistoryScraper) paginate(ctx context.Context, eventID string, hasMore bool) ([]HistoryEntry, error) {
	var entries []HistoryEntry

	for i := 1; hasMore; i++ {
		if i > maxHistoryPages {
			h.logger.Warn("history pagination hit the page bound", "event_id", eventID, "pages", maxHistoryPages)
			return entries, newError(errlvl.WARN, ErrHistoryExhausted, nil)
		}

		url := fmt.Sprintf("%s/calendar/history/1-%s?i=%d", baseURL, eventID, i)
		body, err := h.fetcher.Post(ctx, url, historyHeaders, nil)
		if err != nil {
			return entries, errlvl.Wrap(err, errlvl.ERROR)
		}

		var resp historyResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return entries, newError(errlvl.ERROR, errParseHistoryBody, err)
		}

		hasMore = resp.Data.History.HasMore
		for _, ev := range resp.Data.History.Events {
			if id := ev.EventID.String(); id != "" {
				eventID = id
			}
			entries = append(entries, HistoryEntry{
				Date:     ev.Date,
				Actual:   ev.Actual,
				Forecast: ev.Forecast,
				Previous: ev.Previous,
			})
		}
	}

	return entries, nil
}

// parseRelatedNews extracts one linked-thread fragment. Every field is
// independently optional; on any failure the item degrades to empty fields
// instead of aborting the batch.
func parseRelatedNews(fragment string) RelatedNewsItem {
	var item RelatedNewsItem

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return item
	}

	anchor := doc.Find("a").First()
	if href, ok := anchor.Attr("href"); ok {
		item.URL = utils.AbsoluteURL(baseURL, href)
	}
	item.Title = anchor.AttrOr("title", "")
	item.Image = doc.Find("img").First().AttrOr("src", "")
	item.Source = doc.Find("a[data-source]").First().Text()
	item.Content = doc.Find(`p[class*="flexposts__preview flexposts__preview--pad"]`).First().Text()
	item.Date = doc.Find(`span[class*="flexposts__nowrap flexposts__time"]`).First().Text()
	item.Comment = strings.Trim(doc.Find(".comments").First().Text(), "|")

	return item
}

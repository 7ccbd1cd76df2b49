// Package investing extracts news from investing.com. The site renders with
// Next.js, so listings and articles carry a __NEXT_DATA__ state block; search
// goes through the in-page search service instead.
package investing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/scraper"
	"github.com/ns-bitcoding/News-Scraper/utils"
)

const (
	baseURL   = "https://www.investing.com"
	latestURL = baseURL + "/news/latest-news"
	searchURL = baseURL + "/search/service/SearchInnerPage"

	sourceName = "Investing.com"
)

// Scraper implements the latest-news, search, detail and section-listing
// operations for investing.com.
type Scraper struct {
	fetcher fetch.Doer
	strip   *bluemonday.Policy
}

func New(fetcher fetch.Doer) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		strip:   bluemonday.StrictPolicy(),
	}
}

// plain strips markup from an embedded-state HTML snippet and unescapes
// what remains.
func (s *Scraper) plain(snippet string) string {
	return strings.TrimSpace(html.UnescapeString(s.strip.Sanitize(snippet)))
}

// LatestNews reads the news list out of the latest-news page's embedded
// state. Unlike the detail operation there is no HTML fallback: the state
// block is the listing.
func (s *Scraper) LatestNews(ctx context.Context) ([]scraper.NewsRecord, error) {
	body, err := s.fetcher.Get(ctx, latestURL, listHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchLatest, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseLatest, err)
	}

	state, err := scraper.StateFromScriptID(doc, "__NEXT_DATA__")
	if err != nil {
		return nil, scraper.NewParseError(sourceName, errors.Join(errMissingState, err))
	}

	items, ok := scraper.Dig(state, "props", "pageProps", "state", "newsStore", "_news").([]any)
	if !ok {
		return nil, newError(errlvl.WARN, errMissingDigest, nil)
	}

	var records []scraper.NewsRecord
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		field := func(key string) string {
			v, _ := entry[key].(string)
			return strings.TrimSpace(v)
		}

		href := field("link")
		title := field("title")
		if href == "" && title == "" {
			continue
		}

		source := field("source_name")
		if source == "" {
			source = sourceName
		}
		record := scraper.NewsRecord{
			URL:     utils.AbsoluteURL(baseURL, href),
			Title:   title,
			Source:  source,
			Time:    field("date"),
			Content: s.plain(field("body")),
		}
		if img := field("imageHref"); img != "" {
			record.Images = []scraper.Image{{Text: field("image_copyright"), URL: img}}
		}
		records = append(records, record)
	}
	return records, nil
}

type searchResponse struct {
	News []searchHit `json:"news"`
}

type searchHit struct {
	Link         string `json:"link"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Image        string `json:"image"`
	Content      string `json:"content"`
	ProviderName string `json:"providerName"`
}

// Search posts the keyword to the in-page search service. Spaces get the
// double-encoded form the service expects. Hits without a title are noise
// rows (tickers, ads) and are dropped.
func (s *Scraper) Search(ctx context.Context, keyword string) ([]scraper.NewsRecord, error) {
	encoded := strings.ReplaceAll(strings.TrimSpace(keyword), " ", "%2520")
	payload := fmt.Sprintf("search_text=%s&tab=news&isFilter=true", encoded)

	body, err := s.fetcher.Post(ctx, searchURL, searchHeaders, []byte(payload))
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchSearch, err)
	}

	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, newError(errlvl.ERROR, errParseSearch, err)
	}

	var records []scraper.NewsRecord
	for _, hit := range res.News {
		if strings.TrimSpace(hit.Name) == "" {
			continue
		}
		source := hit.ProviderName
		if source == "" {
			source = sourceName
		}
		record := scraper.NewsRecord{
			URL:     utils.AbsoluteURL(baseURL, hit.Link),
			Title:   hit.Name,
			Source:  source,
			Time:    hit.Date,
			Content: s.plain(hit.Content),
		}
		if hit.Image != "" {
			record.Images = []scraper.Image{{URL: hit.Image}}
		}
		records = append(records, record)
	}
	return records, nil
}

// Detail fetches one article page, combining the embedded state with
// directly-scraped fields. A page without the state block is a parse error;
// individual missing fields are not.
func (s *Scraper) Detail(ctx context.Context, articleURL string) (*scraper.NewsRecord, error) {
	body, err := s.fetcher.Get(ctx, articleURL, pageHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchDetail, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseDetail, err)
	}

	state, err := scraper.StateFromScriptID(doc, "__NEXT_DATA__")
	if err != nil {
		return nil, scraper.NewParseError(sourceName, errors.Join(errMissingState, err))
	}

	record := &scraper.NewsRecord{
		URL:    articleURL,
		Title:  strings.TrimSpace(doc.Find("#articleTitle").First().Text()),
		Source: sourceName,
	}
	if source := scraper.DigString(state, "props", "pageProps", "state", "newsStore", "_article", "source_name"); source != "" {
		record.Source = source
	}

	record.PostedDate, record.PostedTime = scraper.SplitTimestamp(publishedLine(doc))

	// The lead image src sits in the markup but its caption lives in the
	// embedded state's media block.
	imgSrc := doc.Find("img.h-full.w-full.object-contain").First().AttrOr("src", "")
	caption := scraper.DigString(state, "props", "pageProps", "state", "newsStore", "_article", "media", 0, "copyright")
	if imgSrc != "" || caption != "" {
		record.Images = []scraper.Image{{Text: caption, URL: imgSrc}}
	}

	article := doc.Find("div#article").First()
	record.Content = utils.ReplaceUnicodeSymbols(strings.TrimSpace(article.Text()))
	article.Find("a.aqlink.js-hover-me").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		name := strings.TrimSpace(a.Text())
		if !ok || name == "" {
			return
		}
		record.TextLinks = append(record.TextLinks, scraper.TextLink{
			Name: name,
			Href: utils.AbsoluteURL(baseURL, href),
		})
	})

	return record, nil
}

// publishedLine finds the span holding the article's Published/Updated
// timestamp. The surrounding markup changes between page variants, the
// prefix does not.
func publishedLine(doc *goquery.Document) string {
	line := ""
	doc.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if strings.HasPrefix(text, "Published ") || strings.HasPrefix(text, "Updated ") {
			line = text
			return false
		}
		return true
	})
	return line
}

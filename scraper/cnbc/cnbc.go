// Package cnbc extracts news from cnbc.com: the latest-news rail on the
// world page, the queryly-backed search API and article detail pages.
package cnbc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/scraper"
	"github.com/ns-bitcoding/News-Scraper/utils"
)

const (
	baseURL   = "https://www.cnbc.com"
	latestURL = baseURL + "/world/?region=world"

	searchURL = "https://api.queryly.com/cnbc/json.aspx"
	searchKey = "31a35d40a9a64ab3"

	sourceName = "CNBC"
)

// Scraper implements the latest-news, search and detail operations for
// cnbc.com.
type Scraper struct {
	fetcher fetch.Doer
}

func New(fetcher fetch.Doer) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// LatestNews scrapes the latest-news rail. Items missing both a link and a
// title are skipped; everything else is kept as-is.
func (s *Scraper) LatestNews(ctx context.Context) ([]scraper.NewsRecord, error) {
	body, err := s.fetcher.Get(ctx, latestURL, pageHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchLatest, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseLatest, err)
	}

	var records []scraper.NewsRecord
	doc.Find(".LatestNews-container").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a.LatestNews-headline").First()

		href := link.AttrOr("href", "")
		if href != "" {
			href = utils.AbsoluteURL(baseURL, href)
		}
		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if href == "" && title == "" {
			return
		}

		records = append(records, scraper.NewsRecord{
			URL:    href,
			Title:  title,
			Source: sourceName,
			Time:   strings.TrimSpace(item.Find("time").First().Text()),
		})
	})
	return records, nil
}

type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	LiveURL       string `json:"cn:liveUrl"`
	Title         string `json:"cn:title"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
}

// Search queries the queryly search API. Hits come back newest first; the
// result keeps that order.
func (s *Scraper) Search(ctx context.Context, keyword string) ([]scraper.NewsRecord, error) {
	q := url.Values{}
	q.Set("queryly_key", searchKey)
	q.Set("query", keyword)
	q.Set("endindex", "0")
	q.Set("batchsize", "20")
	q.Set("timezoneoffset", "0")
	q.Set("sort", "date")

	body, err := s.fetcher.Get(ctx, searchURL+"?"+q.Encode(), searchHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchSearch, err)
	}

	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, newError(errlvl.ERROR, errParseSearch, err)
	}

	records := make([]scraper.NewsRecord, 0, len(res.Results))
	for _, hit := range res.Results {
		records = append(records, scraper.NewsRecord{
			URL:     hit.LiveURL,
			Title:   hit.Title,
			Source:  sourceName,
			Time:    hit.DatePublished,
			Content: utils.ReplaceUnicodeSymbols(hit.Description),
		})
	}
	return records, nil
}

// Detail fetches one article page and combines its embedded page state with
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

	state, err := scraper.StateFromAssignment(doc, "__s_data")
	if err != nil {
		return nil, scraper.NewParseError(sourceName, errors.Join(errMissingState, err))
	}

	record := &scraper.NewsRecord{
		URL:    articleURL,
		Title:  strings.TrimSpace(doc.Find("h1.ArticleHeader-headline").First().Text()),
		Source: sourceName,
	}
	if brand := scraper.DigString(state, "page", "page", "sourceOrganization", 0, "name"); brand != "" {
		record.Source = brand
	}

	record.PostedDate, record.PostedTime = scraper.SplitTimestamp(
		doc.Find(`time[data-testid="published-timestamp"]`).First().Text(),
	)

	doc.Find(".InlineImage-imageContainer img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok {
			return
		}
		record.Images = append(record.Images, scraper.Image{
			Text: strings.TrimSpace(img.AttrOr("alt", "")),
			URL:  src,
		})
	})

	article := doc.Find(".ArticleBody-articleBody").First()
	record.Content = utils.ReplaceUnicodeSymbols(strings.TrimSpace(article.Text()))
	article.Find("a").Each(func(_ int, a *goquery.Selection) {
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

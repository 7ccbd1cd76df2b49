package investing

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/utils"
)

const newsIndexURL = baseURL + "/news/"

// maxSections caps the category list at the primary nav entries; the index
// page lists more below the fold.
const maxSections = 9

// articleLinkSelector matches article anchors on a category listing. The
// utility class string is stable across the listing variants.
const articleLinkSelector = `a[class*="text-link hover:text-link hover:underline focus:text-link focus:underline whitespace"]`

// Sections reads the news category listings off the /news/ index page,
// most general first. The list is re-read on every crawl pass so category
// changes on the site are picked up without a restart.
func (s *Scraper) Sections(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.Get(ctx, newsIndexURL, pageHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchSections, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseSections, err)
	}

	var sections []string
	doc.Find(`div[class*="list_primary"] div li a`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href != "" {
			sections = append(sections, utils.AbsoluteURL(newsIndexURL, href))
		}
		return len(sections) < maxSections
	})
	return sections, nil
}

// ArticleLinks scrapes one section page and returns the absolute article
// URLs it lists, in page order with duplicates removed.
func (s *Scraper) ArticleLinks(ctx context.Context, sectionURL string) ([]string, error) {
	body, err := s.fetcher.Get(ctx, sectionURL, pageHeaders)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchSection, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseSection, err)
	}

	var links []string
	doc.Find(articleLinkSelector).Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		links = append(links, utils.AbsoluteURL(baseURL, href))
	})
	return lo.Uniq(links), nil
}

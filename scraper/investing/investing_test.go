package investing

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/scraper"
)

// fakeDoer feeds canned responses to the scraper and records every call.
type fakeDoer struct {
	get      func(url string) ([]byte, error)
	post     func(url string, body []byte) ([]byte, error)
	getURLs  []string
	postURLs []string
	postBody []byte
}

func (f *fakeDoer) Get(_ context.Context, url string, _ fetch.HeaderSet) ([]byte, error) {
	f.getURLs = append(f.getURLs, url)
	return f.get(url)
}

func (f *fakeDoer) Post(_ context.Context, url string, _ fetch.HeaderSet, body []byte) ([]byte, error) {
	f.postURLs = append(f.postURLs, url)
	f.postBody = body
	return f.post(url, body)
}

const latestPage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">{"props": {"pageProps": {"state": {"newsStore": {"_news": [
	{"link": "/news/economy/fed-article-1", "title": "Fed seen holding rates", "source_name": "Reuters", "date": "2025-09-02T08:30:00Z", "body": "<p>The Fed is &amp; expected to hold.</p>", "imageHref": "https://i-invdn-com.investing.com/news/fed.jpg", "image_copyright": "© Reuters."},
	{"link": "https://www.investing.com/news/oil-article-2", "title": "Oil slips", "source_name": "", "date": "2025-09-02T07:00:00Z", "body": ""},
	{"link": "", "title": ""}
]}}}}}</script>
</body></html>`

func TestScraper_LatestNews(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(latestPage), nil },
	}

	got, err := New(doer).LatestNews(context.Background())
	if err != nil {
		t.Fatalf("LatestNews() error = %v", err)
	}

	want := []scraper.NewsRecord{
		{
			URL:     "https://www.investing.com/news/economy/fed-article-1",
			Title:   "Fed seen holding rates",
			Source:  "Reuters",
			Time:    "2025-09-02T08:30:00Z",
			Content: "The Fed is & expected to hold.",
			Images:  []scraper.Image{{Text: "© Reuters.", URL: "https://i-invdn-com.investing.com/news/fed.jpg"}},
		},
		{
			URL:    "https://www.investing.com/news/oil-article-2",
			Title:  "Oil slips",
			Source: "Investing.com",
			Time:   "2025-09-02T07:00:00Z",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LatestNews() got = %+v, want %+v", got, want)
	}
	if len(doer.getURLs) != 1 || doer.getURLs[0] != latestURL {
		t.Errorf("LatestNews() fetched %v", doer.getURLs)
	}
}

func TestScraper_LatestNews_missingState(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte("<html><body>blocked</body></html>"), nil },
	}

	if _, err := New(doer).LatestNews(context.Background()); err == nil {
		t.Error("LatestNews() expected error for a page without embedded state")
	}
}

func TestScraper_Search(t *testing.T) {
	const searchBody = `{"news": [
		{"link": "/news/economy/fed-watch-3", "name": "Fed watch: cuts priced out", "date": "2025-09-02", "providerName": "Reuters", "image": "https://i-invdn-com.investing.com/news/fed-watch.jpg", "content": "Markets no longer price a cut."},
		{"link": "/news/noise-row", "name": "", "date": "2025-09-01", "providerName": ""}
	]}`
	doer := &fakeDoer{
		post: func(string, []byte) ([]byte, error) { return []byte(searchBody), nil },
	}

	got, err := New(doer).Search(context.Background(), "fed rate")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []scraper.NewsRecord{
		{
			URL:     "https://www.investing.com/news/economy/fed-watch-3",
			Title:   "Fed watch: cuts priced out",
			Source:  "Reuters",
			Time:    "2025-09-02",
			Content: "Markets no longer price a cut.",
			Images:  []scraper.Image{{URL: "https://i-invdn-com.investing.com/news/fed-watch.jpg"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() got = %+v, want %+v", got, want)
	}

	if len(doer.postURLs) != 1 || doer.postURLs[0] != searchURL {
		t.Fatalf("Search() posted to %v", doer.postURLs)
	}
	if string(doer.postBody) != "search_text=fed%2520rate&tab=news&isFilter=true" {
		t.Errorf("Search() payload = %q", doer.postBody)
	}
}

func TestScraper_Search_badBody(t *testing.T) {
	doer := &fakeDoer{
		post: func(string, []byte) ([]byte, error) { return []byte("<html>captcha</html>"), nil },
	}

	if _, err := New(doer).Search(context.Background(), "fed"); err == nil {
		t.Error("Search() expected parse error for a non-JSON body")
	}
}

const articlePage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">{"props": {"pageProps": {"state": {"newsStore": {"_article": {"source_name": "Bloomberg", "media": [{"copyright": "© Bloomberg. US dollar banknotes"}]}}}}}}</script>
<h1 id="articleTitle">Dollar steadies ahead of payrolls</h1>
<span>Share</span>
<span>Published 09/02/2025, 08:40 AM</span>
<img class="h-full w-full object-contain" src="https://i-invdn-com.investing.com/news/pic1.jpg" alt="US dollar banknotes"/>
<div id="article">
  The dollar held its ground on Tuesday.
  <a class="aqlink js-hover-me" href="/currencies/eur-usd">EUR/USD</a>
  was little changed.
</div>
</body></html>`

func TestScraper_Detail(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(articlePage), nil },
	}

	got, err := New(doer).Detail(context.Background(), "https://www.investing.com/news/forex-news/dollar-4")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}

	if got.Title != "Dollar steadies ahead of payrolls" {
		t.Errorf("Detail() Title = %q", got.Title)
	}
	if got.Source != "Bloomberg" {
		t.Errorf("Detail() Source = %q, want the embedded-state source name", got.Source)
	}
	if got.PostedDate != "09/02/2025" || got.PostedTime != "08:40 AM" {
		t.Errorf("Detail() timestamp = (%q, %q)", got.PostedDate, got.PostedTime)
	}

	wantImages := []scraper.Image{{Text: "© Bloomberg. US dollar banknotes", URL: "https://i-invdn-com.investing.com/news/pic1.jpg"}}
	if !reflect.DeepEqual(got.Images, wantImages) {
		t.Errorf("Detail() Images = %+v", got.Images)
	}

	wantLinks := []scraper.TextLink{{Name: "EUR/USD", Href: "https://www.investing.com/currencies/eur-usd"}}
	if !reflect.DeepEqual(got.TextLinks, wantLinks) {
		t.Errorf("Detail() TextLinks = %+v", got.TextLinks)
	}

	if !strings.Contains(got.Content, "The dollar held its ground on Tuesday.") {
		t.Errorf("Detail() Content = %q", got.Content)
	}
}

func TestScraper_Detail_missingState(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) {
			return []byte(`<html><body><h1 id="articleTitle">No state</h1></body></html>`), nil
		},
	}

	if _, err := New(doer).Detail(context.Background(), "https://www.investing.com/news/x"); err == nil {
		t.Error("Detail() expected error for a page without embedded state")
	}
}

func TestScraper_ArticleLinks(t *testing.T) {
	const linkClass = "text-link hover:text-link hover:underline focus:text-link focus:underline whitespace-normal text-sm font-bold"
	const sectionPage = `<html><body>
	<a class="` + linkClass + `" href="/news/economy/a-1">A</a>
	<a class="` + linkClass + `" href="/news/economy/b-2">B</a>
	<a class="` + linkClass + `" href="/news/economy/a-1">A again</a>
	<a class="text-link" href="/news/economy/not-an-article">skip</a>
	</body></html>`
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(sectionPage), nil },
	}

	got, err := New(doer).ArticleLinks(context.Background(), "https://www.investing.com/news/economy")
	if err != nil {
		t.Fatalf("ArticleLinks() error = %v", err)
	}

	want := []string{
		"https://www.investing.com/news/economy/a-1",
		"https://www.investing.com/news/economy/b-2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ArticleLinks() got = %v, want %v", got, want)
	}
}

func TestScraper_ArticleLinks_fetchError(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return nil, errors.New("boom") },
	}

	if _, err := New(doer).ArticleLinks(context.Background(), "https://www.investing.com/news/economy"); err == nil {
		t.Error("ArticleLinks() expected error when the fetch fails")
	}
}

func TestScraper_Sections(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&items, `<li><a href="/news/section-%d">Section %d</a></li>`, i, i)
	}
	indexPage := `<html><body>
	<div class="mb-4 list_primary__x7Kq1">
	<div><ul>` + items.String() + `</ul></div>
	</div>
	</body></html>`
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(indexPage), nil },
	}

	got, err := New(doer).Sections(context.Background())
	if err != nil {
		t.Fatalf("Sections() error = %v", err)
	}

	// Only the primary nav entries are crawled, twelve are listed.
	if len(got) != maxSections {
		t.Fatalf("Sections() returned %d entries, want %d", len(got), maxSections)
	}
	if got[0] != "https://www.investing.com/news/section-0" {
		t.Errorf("Sections() first entry = %q", got[0])
	}
	if len(doer.getURLs) != 1 || doer.getURLs[0] != newsIndexURL {
		t.Errorf("Sections() fetched %v", doer.getURLs)
	}
}

func TestScraper_Sections_fetchError(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return nil, errors.New("boom") },
	}

	if _, err := New(doer).Sections(context.Background()); err == nil {
		t.Error("Sections() expected error when the index fetch fails")
	}
}

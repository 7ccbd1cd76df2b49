package cnbc

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/scraper"
)

// fakeDoer feeds canned responses to the scraper and records every call.
type fakeDoer struct {
	get     func(url string) ([]byte, error)
	getURLs []string
}

func (f *fakeDoer) Get(_ context.Context, url string, _ fetch.HeaderSet) ([]byte, error) {
	f.getURLs = append(f.getURLs, url)
	return f.get(url)
}

func (f *fakeDoer) Post(_ context.Context, _ string, _ fetch.HeaderSet, _ []byte) ([]byte, error) {
	return nil, errors.New("unexpected POST")
}

const latestPage = `<html><body>
<div class="LatestNews-container">
  <a class="LatestNews-headline" href="/2025/09/02/fed-rates.html" title="Fed holds rates steady">Fed holds rates steady</a>
  <time>2 Hours Ago</time>
</div>
<div class="LatestNews-container">
  <a class="LatestNews-headline" href="https://www.cnbc.com/2025/09/02/oil.html">Oil slips on supply data</a>
</div>
<div class="LatestNews-container">
  <a class="LatestNews-headline"></a>
</div>
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
			URL:    "https://www.cnbc.com/2025/09/02/fed-rates.html",
			Title:  "Fed holds rates steady",
			Source: "CNBC",
			Time:   "2 Hours Ago",
		},
		{
			URL:    "https://www.cnbc.com/2025/09/02/oil.html",
			Title:  "Oil slips on supply data",
			Source: "CNBC",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LatestNews() got = %+v, want %+v", got, want)
	}
	if len(doer.getURLs) != 1 || doer.getURLs[0] != latestURL {
		t.Errorf("LatestNews() fetched %v", doer.getURLs)
	}
}

func TestScraper_LatestNews_fetchError(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return nil, errors.New("boom") },
	}

	if _, err := New(doer).LatestNews(context.Background()); err == nil {
		t.Error("LatestNews() expected error when the fetch fails")
	}
}

func TestScraper_Search(t *testing.T) {
	const searchBody = `{"results": [
		{"cn:liveUrl": "https://www.cnbc.com/2025/09/02/tesla.html", "cn:title": "Tesla shares jump", "description": "Shares of Tesla & co rose.", "datePublished": "2025-09-02T12:00:00"},
		{"cn:liveUrl": "https://www.cnbc.com/2025/09/01/tesla-2.html", "cn:title": "", "description": "", "datePublished": "2025-09-01T09:00:00"}
	]}`
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(searchBody), nil },
	}

	got, err := New(doer).Search(context.Background(), "tesla inc")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []scraper.NewsRecord{
		{
			URL:     "https://www.cnbc.com/2025/09/02/tesla.html",
			Title:   "Tesla shares jump",
			Source:  "CNBC",
			Time:    "2025-09-02T12:00:00",
			Content: "Shares of Tesla & co rose.",
		},
		{
			URL:    "https://www.cnbc.com/2025/09/01/tesla-2.html",
			Source: "CNBC",
			Time:   "2025-09-01T09:00:00",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() got = %+v, want %+v", got, want)
	}

	if len(doer.getURLs) != 1 {
		t.Fatalf("Search() made %d calls", len(doer.getURLs))
	}
	u := doer.getURLs[0]
	if !strings.HasPrefix(u, searchURL+"?") || !strings.Contains(u, "query=tesla+inc") {
		t.Errorf("Search() queried %q", u)
	}
}

func TestScraper_Search_badBody(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte("<html>blocked</html>"), nil },
	}

	if _, err := New(doer).Search(context.Background(), "tesla"); err == nil {
		t.Error("Search() expected parse error for a non-JSON body")
	}
}

const articlePage = `<html><body>
<script>window.__s_data = {"page": {"page": {"sourceOrganization": [{"name": "Reuters"}]}}};</script>
<h1 class="ArticleHeader-headline">Markets rally on jobs data</h1>
<time data-testid="published-timestamp">Published Tue, Sep 2 2025  9:36 AM EDT</time>
<div class="InlineImage-imageContainer"><img src="https://image.cnbcfm.com/api/v1/image/1.jpg" alt="Traders at the NYSE"/></div>
<div class="ArticleBody-articleBody">
  Stocks rose after the report. See the
  <a href="/2025/08/29/jobs-report.html">jobs report</a>
  for details.
</div>
</body></html>`

func TestScraper_Detail(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) { return []byte(articlePage), nil },
	}

	got, err := New(doer).Detail(context.Background(), "https://www.cnbc.com/2025/09/02/markets.html")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}

	if got.URL != "https://www.cnbc.com/2025/09/02/markets.html" {
		t.Errorf("Detail() URL = %q", got.URL)
	}
	if got.Title != "Markets rally on jobs data" {
		t.Errorf("Detail() Title = %q", got.Title)
	}
	if got.Source != "Reuters" {
		t.Errorf("Detail() Source = %q, want the embedded-state brand", got.Source)
	}
	if got.PostedDate != "Tue, Sep 2 2025" || got.PostedTime != "9:36 AM EDT" {
		t.Errorf("Detail() timestamp = (%q, %q)", got.PostedDate, got.PostedTime)
	}

	wantImages := []scraper.Image{{Text: "Traders at the NYSE", URL: "https://image.cnbcfm.com/api/v1/image/1.jpg"}}
	if !reflect.DeepEqual(got.Images, wantImages) {
		t.Errorf("Detail() Images = %+v", got.Images)
	}

	wantLinks := []scraper.TextLink{{Name: "jobs report", Href: "https://www.cnbc.com/2025/08/29/jobs-report.html"}}
	if !reflect.DeepEqual(got.TextLinks, wantLinks) {
		t.Errorf("Detail() TextLinks = %+v", got.TextLinks)
	}

	if !strings.Contains(got.Content, "Stocks rose after the report.") {
		t.Errorf("Detail() Content = %q", got.Content)
	}
}

func TestScraper_Detail_missingState(t *testing.T) {
	doer := &fakeDoer{
		get: func(string) ([]byte, error) {
			return []byte(`<html><body><h1 class="ArticleHeader-headline">No state here</h1></body></html>`), nil
		},
	}

	if _, err := New(doer).Detail(context.Background(), "https://www.cnbc.com/x.html"); err == nil {
		t.Error("Detail() expected error for a page without embedded state")
	}
}

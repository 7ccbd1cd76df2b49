package scraper

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeLatest struct {
	records []NewsRecord
	err     error
}

func (f *fakeLatest) LatestNews(context.Context) ([]NewsRecord, error) {
	return f.records, f.err
}

type fakeSearch struct {
	records []NewsRecord
	err     error
	keyword string
}

func (f *fakeSearch) Search(_ context.Context, keyword string) ([]NewsRecord, error) {
	f.keyword = keyword
	return f.records, f.err
}

type fakeDetail struct {
	record *NewsRecord
	err    error
}

func (f *fakeDetail) Detail(context.Context, string) (*NewsRecord, error) {
	return f.record, f.err
}

func TestScraper_LatestNews(t *testing.T) {
	records := []NewsRecord{{URL: "https://x.com/a", Title: "A"}}
	s := New(nil).Register("CNBC", &Source{Latest: &fakeLatest{records: records}})

	// Domain keys are case-insensitive.
	got, err := s.LatestNews(context.Background(), "cnbc")
	if err != nil {
		t.Fatalf("LatestNews() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("LatestNews() got = %+v", got)
	}
}

func TestScraper_LatestNews_swallowsExtractorFailure(t *testing.T) {
	s := New(nil).Register("cnbc", &Source{Latest: &fakeLatest{err: errors.New("blocked")}})

	got, err := s.LatestNews(context.Background(), "cnbc")
	if err != nil {
		t.Fatalf("LatestNews() error = %v, listing failures must be swallowed", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("LatestNews() got = %v, want an empty non-nil slice", got)
	}
}

func TestScraper_LatestNews_unknownDomain(t *testing.T) {
	s := New(nil)

	_, err := s.LatestNews(context.Background(), "nope")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("LatestNews() error = %v, want ErrUnknownDomain", err)
	}
}

func TestScraper_LatestNews_unsupportedOperation(t *testing.T) {
	s := New(nil).Register("searchonly", &Source{Search: &fakeSearch{}})

	_, err := s.LatestNews(context.Background(), "searchonly")
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("LatestNews() error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestScraper_Search(t *testing.T) {
	records := []NewsRecord{{URL: "https://x.com/a", Title: "A"}}
	search := &fakeSearch{records: records}
	s := New(nil).Register("investing", &Source{Search: search})

	got, err := s.Search(context.Background(), "investing", "fed rate")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("Search() got = %+v", got)
	}
	if search.keyword != "fed rate" {
		t.Errorf("Search() forwarded keyword %q", search.keyword)
	}
}

func TestScraper_Search_emptyKeyword(t *testing.T) {
	s := New(nil).Register("investing", &Source{Search: &fakeSearch{}})

	for _, keyword := range []string{"", "   ", "\t\n"} {
		if _, err := s.Search(context.Background(), "investing", keyword); !errors.Is(err, ErrEmptyKeyword) {
			t.Errorf("Search(%q) error = %v, want ErrEmptyKeyword", keyword, err)
		}
	}
}

func TestScraper_Search_propagatesFailure(t *testing.T) {
	// Unlike listings, a failed search must surface so callers can tell it
	// apart from zero hits.
	wantErr := errors.New("service down")
	s := New(nil).Register("investing", &Source{Search: &fakeSearch{err: wantErr}})

	_, err := s.Search(context.Background(), "investing", "fed")
	if !errors.Is(err, wantErr) {
		t.Errorf("Search() error = %v, want the extractor error", err)
	}
}

func TestScraper_Detail(t *testing.T) {
	record := &NewsRecord{URL: "https://x.com/a", Title: "A"}
	s := New(nil).Register("cnbc", &Source{Detail: &fakeDetail{record: record}})

	got, err := s.Detail(context.Background(), "cnbc", "https://x.com/a")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if got != record {
		t.Errorf("Detail() got = %+v", got)
	}
}

func TestScraper_Detail_emptyURL(t *testing.T) {
	s := New(nil).Register("cnbc", &Source{Detail: &fakeDetail{}})

	if _, err := s.Detail(context.Background(), "cnbc", "  "); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("Detail() error = %v, want ErrEmptyURL", err)
	}
}

func TestScraper_Detail_propagatesFailure(t *testing.T) {
	wantErr := errors.New("article gone")
	s := New(nil).Register("cnbc", &Source{Detail: &fakeDetail{err: wantErr}})

	_, err := s.Detail(context.Background(), "cnbc", "https://x.com/a")
	if !errors.Is(err, wantErr) {
		t.Errorf("Detail() error = %v, want the extractor error", err)
	}
}

func TestScraper_CalendarDay_badDate(t *testing.T) {
	s := New(nil)

	for _, date := range []string{"", "05-09-2025", "2025/09/05", "sep5.2025"} {
		if _, err := s.CalendarDay(context.Background(), date); !errors.Is(err, ErrBadDate) {
			t.Errorf("CalendarDay(%q) error = %v, want ErrBadDate", date, err)
		}
	}
}

func TestScraper_CalendarRange_badDate(t *testing.T) {
	s := New(nil)

	if _, err := s.CalendarRange(context.Background(), "2025-09-04", "bad"); !errors.Is(err, ErrBadDate) {
		t.Errorf("CalendarRange() error = %v, want ErrBadDate", err)
	}
}

func TestScraper_EventHistory_emptyID(t *testing.T) {
	s := New(nil)

	if _, err := s.EventHistory(context.Background(), " "); !errors.Is(err, ErrEmptyEventID) {
		t.Errorf("EventHistory() error = %v, want ErrEmptyEventID", err)
	}
}

func TestErrorPayload(t *testing.T) {
	got := ErrorPayload(errors.New("fetch failed"))
	if got.Error != "fetch failed" {
		t.Errorf("ErrorPayload() = %+v", got)
	}
}

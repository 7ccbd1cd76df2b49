package forexfactory

import (
	"context"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
)

// fakeDoer feeds canned responses to the scrapers and records every call.
type fakeDoer struct {
	get      func(url string) ([]byte, error)
	post     func(url string) ([]byte, error)
	getURLs  []string
	postURLs []string
}

func (f *fakeDoer) Get(_ context.Context, url string, _ fetch.HeaderSet) ([]byte, error) {
	f.getURLs = append(f.getURLs, url)
	return f.get(url)
}

func (f *fakeDoer) Post(_ context.Context, url string, _ fetch.HeaderSet, _ []byte) ([]byte, error) {
	f.postURLs = append(f.postURLs, url)
	return f.post(url)
}

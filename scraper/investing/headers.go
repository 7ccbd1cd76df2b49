package investing

import "github.com/ns-bitcoding/News-Scraper/internal/fetch"

// Header sets per operation. The site answers differently without them, so
// each operation carries the exact set it was recorded with.

// listHeaders is the latest-news request set. The listing is served to an
// XHR-shaped request even though the response is an HTML page.
var listHeaders = fetch.HeaderSet{
	"accept":           "application/json, text/javascript, */*; q=0.01",
	"accept-language":  "en-GB,en-US;q=0.9,en;q=0.8",
	"content-type":     "application/x-www-form-urlencoded",
	"user-agent":       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	"x-requested-with": "XMLHttpRequest",
}

// searchHeaders marks the request as an in-page XHR; the search service
// returns HTML instead of JSON without it.
var searchHeaders = fetch.HeaderSet{
	"accept":           "application/json, text/javascript, */*; q=0.01",
	"accept-language":  "en-GB,en-US;q=0.9,en;q=0.8",
	"content-type":     "application/x-www-form-urlencoded",
	"user-agent":       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	"x-requested-with": "XMLHttpRequest",
}

// pageHeaders is the plain browser set for article and section pages.
var pageHeaders = fetch.HeaderSet{
	"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

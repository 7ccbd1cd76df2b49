package cnbc

import "github.com/ns-bitcoding/News-Scraper/internal/fetch"

var pageHeaders = fetch.HeaderSet{
	"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

// searchHeaders pins the referer to cnbc.com; the queryly endpoint rejects
// anonymous callers.
var searchHeaders = fetch.HeaderSet{
	"accept":          "application/json, text/plain, */*",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"referer":         baseURL + "/",
	"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

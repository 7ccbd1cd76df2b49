package forexfactory

import (
	"fmt"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
)

// Header sets per operation. These mimic a browser and are load-bearing:
// forexfactory answers differently (or not at all) without them.

var calendarHeaders = fetch.HeaderSet{
	"accept":          "application/json, text/plain, */*",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

var historyHeaders = fetch.HeaderSet{
	"accept":          "application/json, text/plain, */*",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
}

// rangeHeaders carries origin/referer pinned to the requested start date.
func rangeHeaders(startDate string) fetch.HeaderSet {
	return fetch.HeaderSet{
		"accept":          "application/json, text/plain, */*",
		"accept-language": "en,en-IN;q=0.9,en-US;q=0.8,hi;q=0.7",
		"content-type":    "application/json",
		"origin":          baseURL,
		"referer":         fmt.Sprintf("%s/calendar?day=%s", baseURL, startDate),
		"user-agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	}
}

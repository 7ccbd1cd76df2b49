// Package forexfactory scrapes the forexfactory.com economic calendar:
// the single-day calendar page, the date-range settings API and the
// per-event history endpoint with its paginated archive.
package forexfactory

import "strings"

const baseURL = "https://www.forexfactory.com"

// Impact is the severity classification of a calendar event. It is a closed
// four-way enum derived from a CSS class token suffix.
type Impact string

const (
	ImpactRed    Impact = "red"
	ImpactOrange Impact = "orange"
	ImpactYellow Impact = "yellow"
	ImpactGray   Impact = "gray"
)

// impactFromToken maps a class token suffix to an Impact. Anything the site
// has not labelled yel/ora/gra falls back to red, which makes red both
// "explicitly high impact" and "unknown". That is the site's own fallback
// and is kept as-is.
func impactFromToken(token string) Impact {
	switch token {
	case "yel":
		return ImpactYellow
	case "ora":
		return ImpactOrange
	case "gra":
		return ImpactGray
	default:
		return ImpactRed
	}
}

// lastHyphenSuffix returns the part of s after its last hyphen
// (e.g. "icon--ff-impact-yel" -> "yel"). Empty input stays empty.
func lastHyphenSuffix(s string) string {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// CalendarEvent is one row of the economic calendar. Day, Date and Time may
// be blank on a raw day-page row (the site only prints them on the first
// event of a day) and are forward-filled by Clean.
type CalendarEvent struct {
	EventID  string `json:"event_id"`
	Day      string `json:"day"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Currency string `json:"currency"`
	Impact   Impact `json:"impact"`
	Event    string `json:"event"`
	Actual   string `json:"actual"`
	Forecast string `json:"forecast"`
	Previous string `json:"previous"`
}

// HistoryEntry is one archived release of a calendar event.
type HistoryEntry struct {
	Date     string `json:"date"`
	Actual   string `json:"history_actual"`
	Forecast string `json:"history_forecast"`
	Previous string `json:"history_previous"`
}

// RelatedNewsItem is one linked news thread attached to an event's details.
// Every field is independently optional; a fragment that cannot be parsed
// yields a zero-valued item rather than aborting the batch.
type RelatedNewsItem struct {
	URL     string `json:"news_url"`
	Title   string `json:"news_title"`
	Image   string `json:"image"`
	Source  string `json:"source"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

// EventHistory is the combined result of a history scrape.
type EventHistory struct {
	EventID     string            `json:"data_event_id"`
	History     []HistoryEntry    `json:"history_data"`
	RelatedNews []RelatedNewsItem `json:"related_news"`
}

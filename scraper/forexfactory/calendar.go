package forexfactory

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// CalendarScraper scrapes the single-day calendar page. The page renders
// merged day/date header cells, so raw rows come back with blanks that
// Clean forward-fills afterwards.
type CalendarScraper struct {
	fetcher fetch.Doer
	url     string
}

// NewCalendarScraper builds a scraper for the calendar page of one day.
func NewCalendarScraper(fetcher fetch.Doer, day time.Time) *CalendarScraper {
	return &CalendarScraper{
		fetcher: fetcher,
		url:     CalendarURL(day),
	}
}

// CalendarURL converts a date to the site's URL token: lowercase 3-letter
// month + day without leading zero + full year (2025-09-05 -> sep5.2025).
func CalendarURL(day time.Time) string {
	token := fmt.Sprintf("%s%d.%d", strings.ToLower(day.Format("Jan")), day.Day(), day.Year())
	return fmt.Sprintf("%s/calendar?day=%s", baseURL, token)
}

// Scrape fetches the calendar page and extracts every table row that
// carries an event-id attribute. Rows are returned raw, in page order.
func (s *CalendarScraper) Scrape(ctx context.Context) ([]CalendarEvent, error) {
	body, err := s.fetcher.Get(ctx, s.url, calendarHeaders)
	if err != nil {
		return nil, errlvl.Wrap(err, errlvl.ERROR)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newError(errlvl.ERROR, errParseCalendarPage, err)
	}

	var events []CalendarEvent
	doc.Find("tr[data-event-id]").Each(func(_ int, row *goquery.Selection) {
		events = append(events, parseEventRow(row))
	})

	return events, nil
}

// parseEventRow extracts one calendar row. Missing cells produce empty
// strings, never an error: the blanks are what Clean fills in.
func parseEventRow(row *goquery.Selection) CalendarEvent {
	ev := CalendarEvent{
		EventID: row.AttrOr("data-event-id", ""),
	}

	// First cell holds "<day> <date...>", e.g. "Mon Sep 5".
	first := strings.TrimSpace(row.Find("td").First().Text())
	parts := strings.Split(first, " ")
	ev.Day = parts[0]
	if len(parts) > 1 {
		ev.Date = strings.Join(parts[1:], " ")
	}

	ev.Time = strings.TrimSpace(row.Find("td.calendar__cell.calendar__time").Text())
	ev.Currency = strings.TrimSpace(row.Find("td.calendar__currency").Text())
	ev.Impact = rowImpact(row)
	ev.Event = strings.TrimSpace(row.Find("span.calendar__event-title").Text())
	ev.Actual = strings.TrimSpace(row.Find("td.calendar__actual").Text())
	ev.Forecast = strings.TrimSpace(row.Find("td.calendar__forecast").Text())
	ev.Previous = strings.TrimSpace(row.Find("td.calendar__previous").Text())

	return ev
}

// rowImpact derives the impact enum from the icon class token
// ("icon--ff-impact-yel" etc.) on the impact cell's span.
func rowImpact(row *goquery.Selection) Impact {
	class := row.Find("td.calendar__cell.calendar__impact span").First().AttrOr("class", "")
	for _, cls := range strings.Fields(class) {
		if strings.Contains(cls, "icon--ff-impact-") {
			return impactFromToken(strings.TrimPrefix(cls, "icon--ff-impact-"))
		}
	}
	return ImpactRed
}

// Clean forward-fills the day/date/time columns of a scraped batch: a row
// with a missing value inherits the nearest preceding row's value, in row
// order. Returns a new slice, input is not modified.
func Clean(rows []CalendarEvent) []CalendarEvent {
	cleaned := make([]CalendarEvent, len(rows))
	copy(cleaned, rows)

	var lastDay, lastDate, lastTime string
	for i := range cleaned {
		if dayMissing(cleaned[i].Day) {
			cleaned[i].Day = lastDay
		} else {
			lastDay = cleaned[i].Day
		}

		if dateMissing(cleaned[i].Date) {
			cleaned[i].Date = lastDate
		} else {
			lastDate = cleaned[i].Date
		}

		if cleaned[i].Time == "" {
			cleaned[i].Time = lastTime
		} else {
			lastTime = cleaned[i].Time
		}
	}

	return cleaned
}

// dayMissing reports whether a day cell is a filler token rather than a real
// day label: empty, the literal "All", or anything containing all/am/pm.
func dayMissing(day string) bool {
	if day == "" || day == "All" {
		return true
	}
	lower := strings.ToLower(day)
	return strings.Contains(lower, "all") || strings.Contains(lower, "am") || strings.Contains(lower, "pm")
}

func dateMissing(date string) bool {
	return date == "" || date == "Day"
}

package forexfactory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

const rangeURL = baseURL + "/calendar/apply-settings/1?navigation=0"

// RangeScraper fetches calendar events for an arbitrary [start, end] window
// through the settings API. Unlike the day page, the range endpoint returns
// fully-populated event nodes, so no forward-fill pass is needed.
type RangeScraper struct {
	fetcher fetch.Doer
}

func NewRangeScraper(fetcher fetch.Doer) *RangeScraper {
	return &RangeScraper{fetcher: fetcher}
}

// rangePayload is the fixed filter the site expects: every impact level and
// the full event-type/currency universe, bounded by the requested window.
type rangePayload struct {
	DefaultView string `json:"default_view"`
	Impacts     []int  `json:"impacts"`
	EventTypes  []int  `json:"event_types"`
	Currencies  []int  `json:"currencies"`
	BeginDate   string `json:"begin_date"`
	EndDate     string `json:"end_date"`
}

type rangeResponse struct {
	Days []rangeDay `json:"days"`
}

type rangeDay struct {
	Date   string       `json:"date"`
	Events []rangeEvent `json:"events"`
}

type rangeEvent struct {
	ID          json.Number `json:"id"`
	Date        string      `json:"date"`
	TimeLabel   string      `json:"timeLabel"`
	Currency    string      `json:"currency"`
	ImpactClass string      `json:"impactClass"`
	Name        string      `json:"name"`
	Actual      string      `json:"actual"`
	Forecast    string      `json:"forecast"`
	Previous    string      `json:"previous"`
}

// Scrape POSTs the filter payload for [start, end] (YYYY-MM-DD strings) and
// flattens days[].events[] into calendar events. A window with zero events
// returns ErrNoEvents so callers can tell "nothing scheduled" from a
// transport failure.
func (r *RangeScraper) Scrape(ctx context.Context, start, end string) ([]CalendarEvent, error) {
	payload, err := json.Marshal(rangePayload{
		DefaultView: "this_week",
		Impacts:     []int{3, 2, 1, 0},
		EventTypes:  []int{1, 2, 3, 4, 5, 7, 8, 9, 10, 11},
		Currencies:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		BeginDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return nil, newError(errlvl.ERROR, errEncodePayload, err)
	}

	body, err := r.fetcher.Post(ctx, rangeURL, rangeHeaders(start), payload)
	if err != nil {
		return nil, errlvl.Wrap(err, errlvl.ERROR)
	}

	var resp rangeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newError(errlvl.ERROR, errParseRangeBody, err)
	}

	events := parseRangeEvents(&resp)
	if len(events) == 0 {
		return nil, newError(errlvl.INFO, ErrNoEvents, nil)
	}

	return events, nil
}

// parseRangeEvents flattens the nested response. An event's day is the
// first whitespace-delimited token of its containing day's date label;
// impact comes from the impactClass suffix after the last hyphen.
func parseRangeEvents(resp *rangeResponse) []CalendarEvent {
	var events []CalendarEvent
	for _, day := range resp.Days {
		dayToken := ""
		if fields := strings.Fields(day.Date); len(fields) > 0 {
			dayToken = fields[0]
		}

		for _, ev := range day.Events {
			events = append(events, CalendarEvent{
				EventID:  ev.ID.String(),
				Day:      dayToken,
				Date:     ev.Date,
				Time:     ev.TimeLabel,
				Currency: ev.Currency,
				Impact:   impactFromToken(lastHyphenSuffix(ev.ImpactClass)),
				Event:    ev.Name,
				Actual:   ev.Actual,
				Forecast: ev.Forecast,
				Previous: ev.Previous,
			})
		}
	}
	return events
}

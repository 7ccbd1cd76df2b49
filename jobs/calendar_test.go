package jobs

import (
	"strings"
	"testing"

	"github.com/ns-bitcoding/News-Scraper/scraper/forexfactory"
)

func Test_formatWeeklyEvents(t *testing.T) {
	events := []forexfactory.CalendarEvent{
		{
			Day:      "Thu",
			Date:     "Sep 4, 2025",
			Time:     "8:30am",
			Currency: "USD",
			Impact:   forexfactory.ImpactRed,
			Event:    "Non-Farm Employment Change",
			Forecast: "180K",
			Previous: "175K",
		},
		{
			Day:      "Thu",
			Date:     "Sep 4, 2025",
			Time:     "10:00am",
			Currency: "EUR",
			Impact:   forexfactory.ImpactYellow,
			Event:    "Retail Sales m/m",
		},
		{
			Day:      "Fri",
			Date:     "Sep 5, 2025",
			Time:     "All Day",
			Currency: "JPY",
			Impact:   forexfactory.ImpactGray,
			Event:    "Bank Holiday",
		},
	}

	got := formatWeeklyEvents(events)

	for _, want := range []string{
		"*Thu Sep 4, 2025*",
		"*Fri Sep 5, 2025*",
		"8:30am Non-Farm Employment Change, forecast: 180K, last: 175K",
		"⚪ JPY Bank Holiday",
		"#calendar #economy",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatWeeklyEvents() missing %q in:\n%s", want, got)
		}
	}

	if strings.Contains(got, "All Day Bank Holiday") {
		t.Error("formatWeeklyEvents() must print untimed events without a time column")
	}

	if strings.Count(got, "*Thu Sep 4, 2025*") != 1 {
		t.Error("formatWeeklyEvents() must print each date header once")
	}
}

func Test_formatWeeklyEvents_empty(t *testing.T) {
	if got := formatWeeklyEvents(nil); got != "" {
		t.Errorf("formatWeeklyEvents(nil) = %q, want empty", got)
	}
}

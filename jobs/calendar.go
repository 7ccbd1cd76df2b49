package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ns-bitcoding/News-Scraper/internal/scraperr"
	"github.com/ns-bitcoding/News-Scraper/scraper/forexfactory"
)

// calendarFetcher fetches fully-populated calendar events for a date range.
type calendarFetcher interface {
	CalendarRange(ctx context.Context, start, end string) ([]forexfactory.CalendarEvent, error)
}

type messagePublisher interface {
	Publish(msg string) (string, error)
}

// CalendarJob publishes the economic-calendar plan for the upcoming week.
type CalendarJob struct {
	calendar  calendarFetcher
	publisher messagePublisher
	logger    *slog.Logger
}

func NewCalendarJob(calendar calendarFetcher, publisher messagePublisher) *CalendarJob {
	return &CalendarJob{
		calendar:  calendar,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

// Run returns the weekly digest job. Schedule it once a week on Monday.
func (j *CalendarJob) Run() JobFunc {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		j.logger.Info("[calendar] running weekly digest")

		tx := sentry.StartTransaction(ctx, "RunWeeklyCalendarJob")
		tx.Op = "job-calendar"

		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			ctx = sentry.SetHubOnContext(ctx, hub)
		}

		defer func() {
			tx.Finish()
			hub.Flush(2 * time.Second)
		}()

		from := time.Now().UTC().Truncate(24 * time.Hour)
		to := from.Add(7 * 24 * time.Hour)

		span := tx.StartChild("CalendarRange")
		events, err := j.calendar.CalendarRange(ctx, from.Format("2006-01-02"), to.Format("2006-01-02"))
		span.Finish()
		if err != nil {
			if errors.Is(err, forexfactory.ErrNoEvents) {
				j.logger.Info("[calendar] no events scheduled for the week")
				return
			}
			j.logger.Error("[calendar] fetching events failed", "error", err)
			scraperr.CaptureException("CalendarJobError", hub, err)
			return
		}

		msg := formatWeeklyEvents(events)
		if msg == "" {
			return
		}

		span = tx.StartChild("TelegramPublisher.Publish")
		_, err = j.publisher.Publish(msg)
		span.Finish()
		if err != nil {
			j.logger.Error("[calendar] publishing digest failed", "error", err)
			scraperr.CaptureException("CalendarJobError", hub, err)
		}
	}
}

var impactMarker = map[forexfactory.Impact]string{
	forexfactory.ImpactRed:    "\U0001F534",
	forexfactory.ImpactOrange: "\U0001F7E0",
	forexfactory.ImpactYellow: "\U0001F7E1",
	forexfactory.ImpactGray:   "⚪",
}

// formatWeeklyEvents renders events grouped by date. Untimed events (bank
// holidays and the like) are printed without a time column.
func formatWeeklyEvents(events []forexfactory.CalendarEvent) string {
	if len(events) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Economic calendar for the upcoming week\n")

	lastDate := ""
	for _, e := range events {
		if e.Date != lastDate {
			lastDate = e.Date
			fmt.Fprintf(&b, "\n*%s %s*\n", e.Day, e.Date)
		}

		marker := impactMarker[e.Impact]
		if e.Time == "" || strings.EqualFold(e.Time, "All Day") {
			fmt.Fprintf(&b, "%s %s %s\n", marker, e.Currency, e.Event)
			continue
		}

		fmt.Fprintf(&b, "%s %s %s %s", marker, e.Currency, e.Time, e.Event)
		if e.Forecast != "" {
			fmt.Fprintf(&b, ", forecast: %s", e.Forecast)
		}
		if e.Previous != "" {
			fmt.Fprintf(&b, ", last: %s", e.Previous)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n#calendar #economy")
	return b.String()
}

package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/ns-bitcoding/News-Scraper/archivist"
)

// maxSummaryTitles bounds how many headlines make it into one digest.
const maxSummaryTitles = 10

type newsFinder interface {
	FindAllSince(ctx context.Context, since time.Time) ([]*archivist.News, error)
}

// SummaryJob publishes a short recap of what the crawler archived.
type SummaryJob struct {
	news      newsFinder
	publisher messagePublisher
	logger    *slog.Logger
}

func NewSummaryJob(news newsFinder, publisher messagePublisher) *SummaryJob {
	return &SummaryJob{
		news:      news,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

// Run returns the daily summary job covering the trailing window.
func (j *SummaryJob) Run(window time.Duration) JobFunc {
	return func() {
		_ = retry.Do(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
			defer cancel()

			rows, err := j.news.FindAllSince(ctx, time.Now().UTC().Add(-window))
			if err != nil {
				j.logger.Error("[summary] fetching archived news failed", "error", err)
				return err
			}
			if len(rows) == 0 {
				j.logger.Info("[summary] nothing archived in the window")
				return nil
			}

			if _, err := j.publisher.Publish(formatSummary(rows)); err != nil {
				j.logger.Error("[summary] publishing failed", "error", err)
				return err
			}
			return nil
		}, retry.Attempts(3), retry.Delay(10*time.Second))
	}
}

func formatSummary(rows []*archivist.News) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Archived %d new articles\n\n", len(rows))

	for i, row := range rows {
		if i == maxSummaryTitles {
			fmt.Fprintf(&b, "...and %d more\n", len(rows)-maxSummaryTitles)
			break
		}
		title := row.Title
		if title == "" {
			title = row.URL
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", title, row.URL)
	}

	b.WriteString("\n#news #summary")
	return b.String()
}

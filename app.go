package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-co-op/gocron/v2"

	"github.com/ns-bitcoding/News-Scraper/archivist"
	"github.com/ns-bitcoding/News-Scraper/crawler"
	"github.com/ns-bitcoding/News-Scraper/internal/fetch"
	"github.com/ns-bitcoding/News-Scraper/jobs"
	"github.com/ns-bitcoding/News-Scraper/publisher"
	"github.com/ns-bitcoding/News-Scraper/scraper"
	"github.com/ns-bitcoding/News-Scraper/scraper/cnbc"
	"github.com/ns-bitcoding/News-Scraper/scraper/investing"
	"github.com/ns-bitcoding/News-Scraper/scraper/rssnews"
)

type App struct {
	cfg       *Config
	scraper   *scraper.Scraper
	archivist *archivist.Archivist
	publisher *publisher.TelegramPublisher // nil when Telegram is not configured
	crawler   *crawler.Crawler
	logger    *slog.Logger
}

func newApp(cfg *Config) (*App, error) {
	arch, err := archivist.NewArchivist(cfg.env.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var pub *publisher.TelegramPublisher
	if cfg.env.TelegramBotToken != "" && cfg.env.TelegramChannelID != "" {
		pub, err = publisher.NewTelegramPublisher(cfg.env.TelegramChannelID, cfg.env.TelegramBotToken)
		if err != nil {
			return nil, err
		}
	}

	client := fetch.NewClient()

	cnbcScraper := cnbc.New(client)
	investingScraper := investing.New(client)

	s := scraper.New(client).
		Register("cnbc", &scraper.Source{
			Latest: cnbcScraper,
			Search: cnbcScraper,
			Detail: cnbcScraper,
		}).
		Register("investing", &scraper.Source{
			Latest: investingScraper,
			Search: investingScraper,
			Detail: investingScraper,
		})
	for _, feed := range rssnews.DefaultFeeds() {
		s.Register(feed.Name, &scraper.Source{Latest: rssnews.New(client, feed)})
	}

	var notifier crawler.Notifier
	if pub != nil {
		notifier = pub
	}
	cr := crawler.New(investingScraper, arch.Entities.News, notifier, crawler.Config{
		Sections:     cfg.sections,
		SectionDelay: cfg.sectionDelay,
		CycleDelay:   cfg.cycleDelay,
		Concurrency:  cfg.concurrency,
	})

	return &App{
		cfg:       cfg,
		scraper:   s,
		archivist: arch,
		publisher: pub,
		crawler:   cr,
		logger:    slog.Default(),
	}, nil
}

// start schedules the digest jobs, launches the crawler and blocks until
// SIGINT/SIGTERM.
func (a *App) start() {
	// Sentry hub for fatal errors
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
	})
	defer hub.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		hub.CaptureException(err)
		panic(err)
	}

	if a.publisher != nil {
		calendarJob := jobs.NewCalendarJob(a.scraper, a.publisher)
		_, err = s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
			gocron.NewTask(calendarJob.Run()),
		)
		if err != nil {
			hub.AddBreadcrumb(&sentry.Breadcrumb{
				Category: "scheduler",
				Message:  "Error scheduling the weekly calendar digest",
				Level:    sentry.LevelFatal,
			}, nil)
			hub.CaptureException(err)
			panic(err)
		}

		summaryJob := jobs.NewSummaryJob(a.archivist.Entities.News, a.publisher)
		_, err = s.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(20, 0, 0))),
			gocron.NewTask(summaryJob.Run(24*time.Hour)),
		)
		if err != nil {
			hub.AddBreadcrumb(&sentry.Breadcrumb{
				Category: "scheduler",
				Message:  "Error scheduling the daily news summary",
				Level:    sentry.LevelFatal,
			}, nil)
			hub.CaptureException(err)
			panic(err)
		}
	}

	s.Start()
	defer func() { _ = s.Shutdown() }()

	a.logger.Info("news scraper started", "domains", a.scraper.Domains())

	if err := a.crawler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		hub.CaptureException(err)
		a.logger.Error("crawler stopped", "error", err)
	}
}

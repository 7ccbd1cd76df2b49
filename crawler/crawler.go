// Package crawler runs the continuous news crawl: it walks the
// investing.com section listings, fetches articles it has not stored yet
// and archives them, forever.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ns-bitcoding/News-Scraper/archivist"
	"github.com/ns-bitcoding/News-Scraper/internal/scraperr"
	"github.com/ns-bitcoding/News-Scraper/scraper"
)

// Source discovers section pages, lists them and fetches single articles.
type Source interface {
	Sections(ctx context.Context) ([]string, error)
	ArticleLinks(ctx context.Context, sectionURL string) ([]string, error)
	Detail(ctx context.Context, url string) (*scraper.NewsRecord, error)
}

// Store persists articles and answers which URLs are already archived.
type Store interface {
	Create(ctx context.Context, n []*archivist.News) error
	ExistingUrls(ctx context.Context, urls []string) ([]string, error)
}

// Notifier announces freshly stored articles. Optional.
type Notifier interface {
	Publish(msg string) (string, error)
}

// Config tunes the crawl cadence.
type Config struct {
	Sections     []string      // fixed section list; empty means discover per pass
	SectionDelay time.Duration // pause between section listings
	CycleDelay   time.Duration // pause between full passes
	Concurrency  int           // parallel article fetches per section
}

// Crawler walks the section listings and archives what it has not seen.
// Seen URLs are kept in memory for the process lifetime and double-checked
// against the store, so restarts do not re-fetch archived articles.
type Crawler struct {
	source   Source
	store    Store
	notifier Notifier
	cfg      Config
	logger   *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func New(source Source, store Store, notifier Notifier, cfg Config) *Crawler {
	if cfg.SectionDelay == 0 {
		cfg.SectionDelay = 30 * time.Second
	}
	if cfg.CycleDelay == 0 {
		cfg.CycleDelay = 120 * time.Second
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 5
	}

	return &Crawler{
		source:   source,
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		logger:   slog.Default(),
		seen:     make(map[string]struct{}),
	}
}

// Run crawls until the context is cancelled. A failed section is logged,
// reported and skipped; it never stops the loop.
func (c *Crawler) Run(ctx context.Context) error {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		ctx = sentry.SetHubOnContext(ctx, hub)
	}

	for {
		passID := uuid.New().String()
		c.logger.Info("starting crawl pass", "pass_id", passID)

		sections := c.cfg.Sections
		if len(sections) == 0 {
			var err error
			sections, err = c.source.Sections(ctx)
			if err != nil {
				c.logger.Error("section discovery failed", "pass_id", passID, "error", err)
				scraperr.CaptureException("CrawlerError", hub, err)
			}
		}

		for _, section := range sections {
			stored, err := c.CrawlSection(ctx, section)
			if err != nil {
				c.logger.Error("section crawl failed", "pass_id", passID, "section", section, "error", err)
				scraperr.CaptureException("CrawlerError", hub, err)
			} else if stored > 0 {
				c.logger.Info("section crawled", "pass_id", passID, "section", section, "new_articles", stored)
			}

			if err := sleepCtx(ctx, c.cfg.SectionDelay); err != nil {
				return err
			}
		}

		if err := sleepCtx(ctx, c.cfg.CycleDelay); err != nil {
			return err
		}
	}
}

// CrawlSection processes one section listing and returns how many new
// articles were stored.
func (c *Crawler) CrawlSection(ctx context.Context, section string) (int, error) {
	links, err := c.source.ArticleLinks(ctx, section)
	if err != nil {
		return 0, err
	}

	fresh, err := c.filterSeen(ctx, links)
	if err != nil {
		return 0, err
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	records := make([]*scraper.NewsRecord, len(fresh))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for i, link := range fresh {
		i, link := i, link
		g.Go(func() error {
			record, err := c.source.Detail(gctx, link)
			if err != nil {
				// One bad article does not fail the section.
				c.logger.Warn("article fetch failed", "url", link, "error", err)
				return nil
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	rows := make([]*archivist.News, 0, len(records))
	storedURLs := make([]string, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		row, err := archivist.FromRecord(record, section)
		if err != nil {
			c.logger.Warn("record not storable", "url", record.URL, "error", err)
			continue
		}
		rows = append(rows, row)
		storedURLs = append(storedURLs, record.URL)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := c.store.Create(ctx, rows); err != nil {
		return 0, err
	}
	c.markSeen(storedURLs)

	if c.notifier != nil {
		if _, err := c.notifier.Publish(fmt.Sprintf("%d new articles archived from %s", len(rows), section)); err != nil {
			c.logger.Warn("notification failed", "error", err)
		}
	}
	return len(rows), nil
}

// filterSeen drops URLs already crawled this process or already archived.
// URLs found in the store are promoted into the in-memory set so the store
// is only asked about them once.
func (c *Crawler) filterSeen(ctx context.Context, links []string) ([]string, error) {
	c.mu.Lock()
	unseen := make([]string, 0, len(links))
	for _, link := range links {
		if _, ok := c.seen[link]; !ok {
			unseen = append(unseen, link)
		}
	}
	c.mu.Unlock()
	if len(unseen) == 0 {
		return nil, nil
	}

	archived, err := c.store.ExistingUrls(ctx, unseen)
	if err != nil {
		return nil, err
	}
	c.markSeen(archived)

	archivedSet := make(map[string]struct{}, len(archived))
	for _, u := range archived {
		archivedSet[u] = struct{}{}
	}

	fresh := make([]string, 0, len(unseen))
	for _, link := range unseen {
		if _, ok := archivedSet[link]; !ok {
			fresh = append(fresh, link)
		}
	}
	return fresh, nil
}

func (c *Crawler) markSeen(urls []string) {
	c.mu.Lock()
	for _, u := range urls {
		c.seen[u] = struct{}{}
	}
	c.mu.Unlock()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

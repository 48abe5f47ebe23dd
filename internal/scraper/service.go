package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ytget/shockbase/internal/download"
	"github.com/ytget/shockbase/internal/logging"
	"github.com/ytget/shockbase/internal/model"
)

// ErrIndexUnavailable is returned when the series overview cannot be read
var ErrIndexUnavailable = errors.New("series index unavailable")

// ProgressFunc is called after each series is processed
type ProgressFunc func(done, total int, series string)

// Options configures a Crawler
type Options struct {
	IndexURL     string
	BaseURL      string
	ImageBaseURL string
	Logger       *slog.Logger
	OnSeries     ProgressFunc
}

// Crawler walks the catalog site level by level
type Crawler struct {
	fetcher      download.Fetcher
	indexURL     string
	baseURL      string
	imageBaseURL string
	logger       *slog.Logger
	onSeries     ProgressFunc
}

// NewCrawler creates a crawler using fetcher for every page
func NewCrawler(fetcher download.Fetcher, opts Options) *Crawler {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.IndexURL == "" {
		opts.IndexURL = opts.BaseURL + "series_overview.php/"
	}
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = DefaultImageBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	return &Crawler{
		fetcher:      fetcher,
		indexURL:     opts.IndexURL,
		baseURL:      opts.BaseURL,
		imageBaseURL: opts.ImageBaseURL,
		logger:       opts.Logger,
		onSeries:     opts.OnSeries,
	}
}

// Crawl fetches every series and subseries page and returns the records in
// site order. A failing series or subseries page is logged and skipped; only
// an unreadable index aborts the crawl.
func (c *Crawler) Crawl(ctx context.Context) ([]model.WatchRecord, model.CrawlStats, error) {
	stats := model.CrawlStats{RunID: uuid.NewString()}
	logger := c.logger.With(slog.String("run_id", stats.RunID))

	series, err := c.seriesLinks(ctx)
	if err != nil {
		logger.Error("series index failed", slog.String("url", c.indexURL), slog.Any("error", err))
		return nil, stats, err
	}
	logger.Info("crawl started", slog.Int("series", len(series)))

	var records []model.WatchRecord
	for i, s := range series {
		if err := ctx.Err(); err != nil {
			return records, stats, err
		}

		found, err := c.crawlSeries(ctx, logger, s, &stats)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return records, stats, ctxErr
			}
			stats.SkippedSeries++
			logger.Warn("series skipped",
				slog.String("series", s.Name),
				slog.String("url", s.URL),
				slog.Any("error", err),
			)
		} else {
			stats.Series++
			records = append(records, found...)
		}

		if c.onSeries != nil {
			c.onSeries(i+1, len(series), s.Name)
		}
	}

	stats.Records = len(records)
	logger.Info("crawl finished",
		slog.Int("series", stats.Series),
		slog.Int("subseries", stats.Subseries),
		slog.Int("records", stats.Records),
		slog.Int("skipped", stats.Skipped()),
	)
	return records, stats, nil
}

func (c *Crawler) seriesLinks(ctx context.Context) ([]model.Link, error) {
	page, err := c.fetcher.Fetch(ctx, c.indexURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}

	links, err := ParseSeriesIndex(bytes.NewReader(page), c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	return links, nil
}

func (c *Crawler) crawlSeries(ctx context.Context, logger *slog.Logger, series model.Link, stats *model.CrawlStats) ([]model.WatchRecord, error) {
	page, err := c.fetcher.Fetch(ctx, series.URL)
	if err != nil {
		return nil, err
	}

	subseries, err := ParseSeriesPage(bytes.NewReader(page), c.baseURL)
	if err != nil {
		return nil, err
	}

	var records []model.WatchRecord
	for _, sub := range subseries {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		found, err := c.crawlSubseries(ctx, series.Name, sub)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			stats.SkippedSubseries++
			logger.Warn("subseries skipped",
				slog.String("series", series.Name),
				slog.String("subseries", sub.Name),
				slog.String("url", sub.URL),
				slog.Any("error", err),
			)
			continue
		}

		stats.Subseries++
		records = append(records, found...)
		logger.Debug("subseries crawled",
			slog.String("series", series.Name),
			slog.String("subseries", sub.Name),
			slog.Int("records", len(found)),
		)
	}
	return records, nil
}

func (c *Crawler) crawlSubseries(ctx context.Context, series string, subseries model.Link) ([]model.WatchRecord, error) {
	page, err := c.fetcher.Fetch(ctx, subseries.URL)
	if err != nil {
		return nil, err
	}
	return ParseSubseriesPage(bytes.NewReader(page), series, subseries.Name, c.imageBaseURL)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ytget/shockbase/internal/download"
	"github.com/ytget/shockbase/internal/platform"
	"github.com/ytget/shockbase/internal/scraper"
)

type crawlOptions struct {
	output       string
	timeout      time.Duration
	indexURL     string
	baseURL      string
	imageBaseURL string
	noProgress   bool
	reveal       bool
}

func newCrawlCommand(logs *logFlags) *cobra.Command {
	opts := &crawlOptions{}

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl shockbase.org and write the watch dataset as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logs.logger(cmd)
			if err != nil {
				return err
			}
			return runCrawl(cmd, opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "shockbase.csv", "CSV file to write")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-request timeout")
	cmd.Flags().StringVar(&opts.indexURL, "index-url", "", "Series overview page (default derived from --base-url)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", scraper.DefaultBaseURL, "Base URL for series and subseries links")
	cmd.Flags().StringVar(&opts.imageBaseURL, "image-base-url", scraper.DefaultImageBaseURL, "Base URL for full-size pictures")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "Reveal the written file in the system file manager")

	return cmd
}

func runCrawl(cmd *cobra.Command, opts *crawlOptions, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	fetcher := download.NewService(download.Options{
		Timeout: opts.timeout,
		Logger:  logger,
	})

	var bar *progressbar.ProgressBar
	crawler := scraper.NewCrawler(fetcher, scraper.Options{
		IndexURL:     opts.indexURL,
		BaseURL:      opts.baseURL,
		ImageBaseURL: opts.imageBaseURL,
		Logger:       logger,
		OnSeries: func(done, total int, series string) {
			if opts.noProgress {
				return
			}
			if bar == nil {
				bar = newProgressBar(cmd.ErrOrStderr(), total)
			}
			bar.Describe(series)
			_ = bar.Set(done)
		},
	})

	records, stats, err := crawler.Crawl(cmd.Context())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		if errors.Is(err, scraper.ErrIndexUnavailable) {
			fmt.Fprintln(out, "Failed to retrieve the data.")
		}
		return err
	}

	if err := scraper.WriteCSVFile(opts.output, records); err != nil {
		return err
	}

	logger.Info("dataset written",
		slog.String("run_id", stats.RunID),
		slog.String("path", opts.output),
		slog.Int("records", stats.Records),
		slog.Int("skipped", stats.Skipped()),
	)
	fmt.Fprintf(out, "Data successfully saved to %s.\n", opts.output)

	if opts.reveal {
		if err := platform.OpenFileInManager(opts.output); err != nil {
			logger.Warn("reveal failed", slog.String("path", opts.output), slog.Any("error", err))
		}
	}
	return nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Processing series"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

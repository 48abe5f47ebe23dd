package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/shockbase/internal/logging"
)

type logFlags struct {
	level  string
	format string
}

func newRootCommand() *cobra.Command {
	logs := &logFlags{}

	rootCmd := &cobra.Command{
		Use:           "shockbase",
		Short:         "Crawl and inspect the shockbase.org watch catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logs.level, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logs.format, "log-format", logging.FormatConsole, "Log format (console, json)")

	rootCmd.AddCommand(newCrawlCommand(logs))
	rootCmd.AddCommand(newSummaryCommand())

	return rootCmd
}

// logger builds a logger writing to the command's error stream
func (f *logFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  f.level,
		Format: f.format,
		Output: cmd.ErrOrStderr(),
	})
}

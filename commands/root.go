package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-history-monitor/internal/analyzer"
	"github.com/penwyp/go-history-monitor/internal/util"
)

var (
	// Logging related
	debug bool

	// Input data
	historyFile string

	// Reporting window
	since string
	until string

	// Output related
	outputFormat string
	timezone     string
	topN         int
	watch        bool

	rootCmd = &cobra.Command{
		Use:   "go-history-monitor [flags]",
		Short: "Shell history usage visualizer",
		Long: `go-history-monitor reads a fish shell history file and renders command
usage as a calendar heatmap and proportional bar charts.

Examples:
  go-history-monitor                                  # Report the last year of usage
  go-history-monitor --file /path/to/fish_history     # Analyze a specific history file
  go-history-monitor --since 2024-07-15               # Report from a fixed start date
  go-history-monitor --output json --top 10           # Top 10 commands as JSON
  go-history-monitor --watch                          # Re-render when history changes`,
		RunE: runReport,
	}
)

const (
	defaultLogFile     = "~/.go-history-monitor/logs/app.log"
	defaultHistoryFile = "~/.local/share/fish/fish_history"
	dateLayout         = "2006-01-02"

	// Default look-back when --since is not given.
	defaultWindowDays = 365
)

func init() {
	// Input data configuration
	rootCmd.PersistentFlags().StringVar(&historyFile, "file", defaultHistoryFile,
		"History file path")

	// Time window
	rootCmd.Flags().StringVar(&since, "since", "",
		"Window start date (YYYY-MM-DD, default one year back)")
	rootCmd.Flags().StringVar(&until, "until", "",
		"Window end date (YYYY-MM-DD, default now)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "report",
		"Output format (report, json, csv, table)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.Flags().IntVar(&topN, "top", 5,
		"Number of most used commands to detail (0 = none)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-run the report when the history file changes")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runReport(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	// Initialize logging
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}
	tp := util.GetTimeProvider()

	sinceTime := tp.Now().AddDate(0, 0, -defaultWindowDays)
	if since != "" {
		t, err := time.ParseInLocation(dateLayout, since, tp.Location())
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", since, err)
		}
		sinceTime = t
	}

	untilTime := tp.Now()
	if until != "" {
		t, err := time.ParseInLocation(dateLayout, until, tp.Location())
		if err != nil {
			return fmt.Errorf("invalid --until date %q: %w", until, err)
		}
		untilTime = t
	}
	if untilTime.Before(sinceTime) {
		return fmt.Errorf("--until (%s) is before --since (%s)", untilTime.Format(dateLayout), sinceTime.Format(dateLayout))
	}

	config := &analyzer.Config{
		HistoryFile:  expandPath(historyFile),
		OutputFormat: outputFormat,
		Since:        sinceTime,
		Until:        untilTime,
		TopN:         topN,
		Watch:        watch,
	}

	a := analyzer.New(config)
	return a.Run()
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

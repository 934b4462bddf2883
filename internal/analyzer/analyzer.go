package analyzer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-history-monitor/internal/core/model"
	"github.com/penwyp/go-history-monitor/internal/data/aggregator"
	"github.com/penwyp/go-history-monitor/internal/data/history"
	"github.com/penwyp/go-history-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-history-monitor/internal/presentation/render"
	"github.com/penwyp/go-history-monitor/internal/util"
)

type Config struct {
	HistoryFile  string
	OutputFormat string
	Since        time.Time
	Until        time.Time
	TopN         int
	Watch        bool
}

type Analyzer struct {
	config   *Config
	out      io.Writer
	renderer *render.Renderer
}

func New(config *Config) *Analyzer {
	return NewWithOutput(config, os.Stdout)
}

// NewWithOutput creates an Analyzer writing to the given writer instead
// of stdout.
func NewWithOutput(config *Config, out io.Writer) *Analyzer {
	return &Analyzer{
		config:   config,
		out:      out,
		renderer: render.New(out),
	}
}

func (a *Analyzer) Run() error {
	if a.config.Watch {
		return a.watch()
	}
	return a.runOnce()
}

func (a *Analyzer) runOnce() error {
	startTime := time.Now()
	util.LogInfo("Starting history analysis...")

	// Phase 1: Read history lines
	readStart := time.Now()
	lines, err := history.ReadLines(a.config.HistoryFile)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	util.LogDebugf("Phase 1 - Read duration: %v, %d lines", time.Since(readStart), len(lines))

	// Phase 2: Parse usage entries
	parseStart := time.Now()
	records, skipped := history.ParseLines(lines)
	if skipped > 0 {
		util.LogWarnf("Skipped %d malformed history entries", skipped)
	}
	util.LogDebugf("Phase 2 - Parse duration: %v, found %d commands", time.Since(parseStart), len(records))
	util.LogInfof("Found %d used commands", len(records))

	// Phase 3: Restrict to the reporting window
	filterStart := time.Now()
	windowed := aggregator.FilterWindow(records, a.config.Since, a.config.Until)
	util.LogDebugf("Phase 3 - Window filter duration: %v, %d commands in window", time.Since(filterStart), len(windowed))

	// Phase 4: Sum buckets across commands
	sumStart := time.Now()
	totals := aggregator.Sum(windowed)
	util.LogDebugf("Phase 4 - Aggregation duration: %v", time.Since(sumStart))

	// Phase 5: Render
	outputStart := time.Now()
	err = a.output(windowed, totals)
	util.LogDebugf("Phase 5 - Output duration: %v", time.Since(outputStart))

	util.LogDebugf("Total duration: %v", time.Since(startTime))
	return err
}

func (a *Analyzer) output(records map[string]*model.CommandRecord, totals *aggregator.BucketTotals) error {
	top := aggregator.TopByCount(records, a.config.TopN)

	switch a.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter(a.out).Format(formatter.Summarize(top))
	case "csv":
		return formatter.NewCSVFormatter(a.out).Format(formatter.Summarize(top))
	case "table":
		return formatter.NewTableFormatter(a.out).Format(formatter.Summarize(top))
	default:
		return a.report(top, totals)
	}
}

// report prints the full visual report: calendar heatmap, weekly and
// hourly charts, then a per-command hourly breakdown of the top commands.
// Charts with no data in the window are skipped, not fatal.
func (a *Analyzer) report(top []*model.CommandRecord, totals *aggregator.BucketTotals) error {
	if err := a.renderer.Calendar(totals.Calendar, a.config.Since, a.config.Until); err != nil {
		if !errors.Is(err, render.ErrNoData) {
			return err
		}
		util.LogWarn("No usage data in the selected window, skipping calendar")
	}

	if err := a.renderer.WeeklyChart(totals.Weekly); err != nil && !errors.Is(err, render.ErrNoData) {
		return err
	}
	if err := a.renderer.HourlyChart(totals.Hourly); err != nil && !errors.Is(err, render.ErrNoData) {
		return err
	}

	for _, record := range top {
		fmt.Fprintf(a.out, "%s:\t%d\n", record.Name, record.Count)
		if err := a.renderer.HourlyChart(record.HourlyUsage); err != nil && !errors.Is(err, render.ErrNoData) {
			return err
		}
	}

	return nil
}

// watch re-runs the report whenever the history file changes. The watch
// is on the parent directory so rename-based rewrites keep working.
func (a *Analyzer) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := a.runOnce(); err != nil {
		return err
	}

	dir := filepath.Dir(a.config.HistoryFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	util.LogInfof("Watching %s for changes", a.config.HistoryFile)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != a.config.HistoryFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			util.LogDebugf("History file changed (%s), re-running report", event.Op)
			if err := a.runOnce(); err != nil {
				util.LogErrorf("Report failed: %v", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogWarnf("Watcher error: %v", watchErr)
		case <-interrupt:
			return nil
		}
	}
}

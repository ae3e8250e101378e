// Package main is the kwmap CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/config"
	"github.com/seoforge/kwmap/internal/ingest"
	"github.com/seoforge/kwmap/internal/matching"
	"github.com/seoforge/kwmap/internal/models"
	"github.com/seoforge/kwmap/internal/report"
	"github.com/seoforge/kwmap/internal/server"
	"github.com/seoforge/kwmap/internal/storage"
	"github.com/seoforge/kwmap/internal/watcher"
	"github.com/seoforge/kwmap/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "kwmap.yaml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "map":
		runMap()
	case "serve":
		runServe()
	case "watch":
		runWatch()
	case "history":
		runHistory()
	case "version", "--version", "-v":
		fmt.Printf("kwmap version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig loads the config file at path. When path is the default and no
// such file exists, built-in defaults are used so the tool works with flags
// alone.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func runMap() {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	keywordsPath := fs.String("keywords", "", "keywords file (overrides config)")
	pagesPath := fs.String("pages", "", "page export file, CSV or XLSX (overrides config)")
	outputPath := fs.String("output", "", "output CSV path (overrides config)")
	workers := fs.Int("workers", 0, "concurrent keyword workers (0 = number of CPUs)")
	save := fs.Bool("save", false, "record this run in history (requires storage.database_path)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, logger := setup(*configPath, *debug)
	defer logger.Sync()
	applyOverrides(cfg, *keywordsPath, *pagesPath, *outputPath, *workers)

	if err := runPipeline(cfg, *save, logger); err != nil {
		logger.Error("mapping failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "kwmap: %v\n", err)
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, logger := setup(*configPath, *debug)
	defer logger.Sync()

	var store *storage.Store
	if cfg.Storage.DatabasePath != "" {
		var err error
		store, err = storage.Open(cfg.Storage.DatabasePath)
		if err != nil {
			logger.Fatal("failed to open run history", zap.Error(err))
		}
		defer store.Close()
	}

	matcher := matching.NewMatcher(cfg.Scoring, matching.WithWorkers(cfg.Matching.Workers))
	srv := server.NewServer(matcher, store, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForSignal()
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	keywordsPath := fs.String("keywords", "", "keywords file (overrides config)")
	pagesPath := fs.String("pages", "", "page export file (overrides config)")
	outputPath := fs.String("output", "", "output CSV path (overrides config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, logger := setup(*configPath, *debug)
	defer logger.Sync()
	applyOverrides(cfg, *keywordsPath, *pagesPath, *outputPath, 0)

	rerun := func() {
		if err := runPipeline(cfg, false, logger); err != nil {
			logger.Error("mapping failed", zap.Error(err))
		}
	}
	rerun()

	w := watcher.New(
		[]string{cfg.Inputs.KeywordsPath, cfg.Inputs.PagesPath},
		time.Duration(cfg.Watch.DebounceMS)*time.Millisecond,
		rerun,
		logger,
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("failed to start watcher", zap.Error(err))
	}
	defer w.Stop()

	waitForSignal()
	logger.Info("shutting down")
}

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 20, "maximum runs to list")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwmap: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.DatabasePath == "" {
		fmt.Fprintln(os.Stderr, "kwmap: run history is not configured (set storage.database_path)")
		os.Exit(1)
	}
	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwmap: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwmap: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  keywords=%d matched=%d (%.1f%%) avg=%.2f\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.ID,
			run.TotalCount,
			run.MatchedCount,
			run.MatchRate()*100,
			run.AverageScore,
		)
	}
}

// setup loads config and builds the logger, exiting on failure.
func setup(configPath string, debug bool) (*config.Config, *zap.Logger) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwmap: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwmap: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

func applyOverrides(cfg *config.Config, keywords, pages, output string, workers int) {
	if keywords != "" {
		cfg.Inputs.KeywordsPath = keywords
	}
	if pages != "" {
		cfg.Inputs.PagesPath = pages
	}
	if output != "" {
		cfg.Output.Path = output
	}
	if workers > 0 {
		cfg.Matching.Workers = workers
	}
}

// runPipeline loads both inputs, matches every keyword, writes the result
// CSV, and prints the summary. When save is set and history is configured,
// the run is also recorded.
func runPipeline(cfg *config.Config, save bool, logger *zap.Logger) error {
	keywords, err := ingest.LoadKeywords(cfg.Inputs.KeywordsPath, logger)
	if err != nil {
		return err
	}
	pages, err := ingest.LoadPages(cfg.Inputs.PagesPath, logger)
	if err != nil {
		return err
	}

	matcher := matching.NewMatcher(cfg.Scoring,
		matching.WithWorkers(cfg.Matching.Workers),
		matching.WithLogger(logger),
	)
	results := matcher.MatchAll(keywords, pages)

	if err := report.WriteCSV(cfg.Output.Path, results); err != nil {
		return err
	}
	logger.Info("results saved",
		zap.String("path", cfg.Output.Path),
		zap.Int("results", len(results)),
	)

	summary := report.Summarize(results, cfg.Output.TopN)
	if err := summary.Write(os.Stdout); err != nil {
		return err
	}

	if save && cfg.Storage.DatabasePath != "" {
		store, err := storage.Open(cfg.Storage.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		run := &models.MatchRun{
			KeywordsPath: cfg.Inputs.KeywordsPath,
			PagesPath:    cfg.Inputs.PagesPath,
			TotalCount:   summary.Total,
			MatchedCount: summary.Matched,
			AverageScore: summary.AverageScore,
		}
		if err := store.SaveRun(context.Background(), run, results); err != nil {
			return err
		}
		logger.Info("run recorded", zap.String("id", run.ID))
	}
	return nil
}

func waitForSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

func printUsage() {
	fmt.Print(`kwmap - keyword-to-URL mapping for crawled-site exports

Usage: kwmap <command> [flags]

Commands:
  map      Match keywords against a page export and write the result CSV
  serve    Start the HTTP matching API
  watch    Re-run the mapping whenever an input file changes
  history  List recorded runs
  version  Print version
  help     Show this help

Run "kwmap <command> -h" for command flags.
`)
}

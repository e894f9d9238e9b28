// Package app initializes and holds long-lived application services, acting as a dependency injection container.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/courtside/leaderscraper/internal/clock/system"
	"github.com/courtside/leaderscraper/internal/config"
	"github.com/courtside/leaderscraper/internal/id/uuid"
	"github.com/courtside/leaderscraper/internal/leaders"
	"github.com/courtside/leaderscraper/internal/logging"
	"github.com/courtside/leaderscraper/internal/shell"
)

// App holds the shared services for one scraper session: configuration,
// logger, the scrape pipeline, and the interactive shell around it. It is
// initialized once at startup and torn down by Close.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	shell  *shell.Shell
}

// GetLogger returns the shared zap logger instance.
func (a *App) GetLogger() *zap.Logger {
	return a.logger
}

// GetConfig exposes the loaded configuration.
func (a *App) GetConfig() config.Config {
	return a.cfg
}

// GetShell returns the interactive shell wired to the pipeline.
func (a *App) GetShell() *shell.Shell {
	return a.shell
}

// Close flushes the logger. Best effort; stderr sync failures are expected
// on some platforms.
func (a *App) Close() {
	_ = a.logger.Sync()
}

// New builds the full service graph from the given config path. A non-empty
// outputDir overrides the configured CSV directory. It fails fast when
// configuration is invalid or the output directory cannot be created. The
// shell reads selections from in and prints to out.
func New(cfgPath, outputDir string, in io.Reader, out io.Writer) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	logger, err := logging.New(cfg.Logging.Development, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.Info("initializing scraper services",
		zap.String("source", cfg.Source.URL),
		zap.String("output_dir", cfg.Output.Dir),
	)

	clk := system.New()

	sink, err := leaders.NewCSVSink(cfg.Output.Dir, clk, logger)
	if err != nil {
		return nil, fmt.Errorf("init sink: %w", err)
	}

	fetcher := leaders.NewCollyFetcher(leaders.FetcherConfig{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Timeout(),
	}, logger)

	pipeline := leaders.NewPipeline(
		fetcher,
		leaders.NewParser(cfg.Board.MaxEntries, logger),
		sink,
		leaders.NewExponentialRetryPolicy(cfg.HTTP.MaxRetries, cfg.BackoffInitial(), cfg.BackoffMax()),
		clk,
		uuid.New(),
		leaders.PipelineConfig{SourceURL: cfg.Source.URL},
		logger,
	)

	sh := shell.New(
		pipeline,
		leaders.NewPresenter(),
		shell.Config{MaxEntries: cfg.Board.MaxEntries},
		in,
		out,
		logger,
	)

	return &App{cfg: cfg, logger: logger, shell: sh}, nil
}

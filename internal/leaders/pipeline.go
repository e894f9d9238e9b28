package leaders

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PipelineConfig carries the knobs for one scrape run.
type PipelineConfig struct {
	SourceURL string
}

// Pipeline executes one full run: fetch with retry, parse, export. It holds
// no state between runs; every Run builds and discards its own Board.
type Pipeline struct {
	fetcher Fetcher
	parser  *Parser
	sink    Sink
	policy  RetryPolicy
	clock   Clock
	idGen   IDGenerator
	cfg     PipelineConfig
	logger  *zap.Logger
}

// NewPipeline constructs a Pipeline.
func NewPipeline(
	fetcher Fetcher,
	parser *Parser,
	sink Sink,
	policy RetryPolicy,
	clock Clock,
	idGen IDGenerator,
	cfg PipelineConfig,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		parser:  parser,
		sink:    sink,
		policy:  policy,
		clock:   clock,
		idGen:   idGen,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run scrapes one category. A parse success with a failed export still
// returns the board; the export failure travels in Result.ExportErr so the
// caller can report it separately.
func (p *Pipeline) Run(ctx context.Context, cat Category) (Result, error) {
	runID, err := p.idGen.NewID()
	if err != nil {
		runID = "unknown"
	}
	log := p.logger.With(zap.String("run_id", runID), zap.String("category", cat.Slug))

	doc, err := p.fetchWithRetry(ctx, log)
	if err != nil {
		return Result{RunID: runID}, err
	}

	board, err := p.parser.Parse(doc.Body, cat)
	if err != nil {
		log.Error("parse failed", zap.Error(err))
		return Result{RunID: runID}, err
	}
	board.FetchedAt = p.clock.Now()

	result := Result{RunID: runID, Board: board}
	path, err := p.sink.Save(ctx, board)
	if err != nil {
		log.Error("export failed", zap.Error(err))
		result.ExportErr = err
		return result, nil
	}
	result.ExportPath = path
	return result, nil
}

// fetchWithRetry drives the retry policy around the transport. Attempts are
// 1-based; the policy owns both the retryable predicate and the delays.
func (p *Pipeline) fetchWithRetry(ctx context.Context, log *zap.Logger) (Document, error) {
	var lastErr error
	attempt := 0
	for {
		attempt++
		log.Info("fetching leaders page",
			zap.String("url", p.cfg.SourceURL),
			zap.Int("attempt", attempt),
		)
		doc, err := p.fetcher.Fetch(ctx, p.cfg.SourceURL)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		if !p.policy.ShouldRetry(err, attempt) {
			break
		}
		delay := p.policy.Backoff(attempt)
		log.Warn("fetch attempt failed, retrying",
			zap.Error(err),
			zap.Duration("backoff", delay),
		)
		select {
		case <-ctx.Done():
			return Document{}, &NetworkError{URL: p.cfg.SourceURL, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(delay):
		}
	}
	log.Error("fetch failed", zap.Int("attempts", attempt), zap.Error(lastErr))
	return Document{}, &NetworkError{URL: p.cfg.SourceURL, Attempts: attempt, Err: lastErr}
}

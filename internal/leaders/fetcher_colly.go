package leaders

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// FetcherConfig controls collector behavior.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// CollyFetcher implements Fetcher using the Colly collector.
type CollyFetcher struct {
	baseCollector *colly.Collector
	logger        *zap.Logger
}

// NewCollyFetcher constructs a configured Colly-based Fetcher.
func NewCollyFetcher(cfg FetcherConfig, logger *zap.Logger) *CollyFetcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	opts := []colly.CollectorOption{
		colly.Async(false),
		colly.AllowURLRevisit(),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	base := colly.NewCollector(opts...)
	base.IgnoreRobotsTxt = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          8,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	})
	base.SetRequestTimeout(timeout)

	return &CollyFetcher{
		baseCollector: base,
		logger:        logger,
	}
}

// Fetch retrieves the page via a clone of the base collector.
func (f *CollyFetcher) Fetch(ctx context.Context, rawURL string) (Document, error) {
	collector := f.baseCollector.Clone()
	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() {
			resultCh <- res
		})
	}

	start := time.Now()
	collector.OnResponse(func(r *colly.Response) {
		doc := Document{
			URL:        rawURL,
			StatusCode: r.StatusCode,
			Body:       append([]byte{}, r.Body...),
			Duration:   time.Since(start),
		}
		send(fetchResult{doc: doc})
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode >= 400 {
			send(fetchResult{err: &StatusError{URL: rawURL, StatusCode: r.StatusCode}})
			return
		}
		if err == nil {
			err = errors.New("unknown colly error")
		}
		send(fetchResult{err: err})
	})

	// Visit runs synchronously and reports any non-2xx status as an untyped
	// error, after OnError has already queued the typed one. The queued
	// result wins; the Visit error is only a fallback.
	visitErr := collector.Visit(rawURL)
	collector.Wait()

	select {
	case res := <-resultCh:
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		if res.err != nil {
			return Document{}, res.err
		}
		f.logger.Debug("page fetched",
			zap.String("url", rawURL),
			zap.Int("status", res.doc.StatusCode),
			zap.Duration("duration", res.doc.Duration),
		)
		return res.doc, nil
	default:
		if visitErr != nil {
			return Document{}, visitErr
		}
		return Document{}, errors.New("colly fetch produced no result")
	}
}

type fetchResult struct {
	doc Document
	err error
}

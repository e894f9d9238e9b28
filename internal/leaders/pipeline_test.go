package leaders

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFetcher struct {
	mu       sync.Mutex
	attempts int
	fails    int
	failWith error
	body     []byte
}

func (f *countingFetcher) Fetch(_ context.Context, url string) (Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.attempts <= f.fails {
		return Document{}, f.failWith
	}
	return Document{URL: url, StatusCode: 200, Body: f.body}, nil
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

type fakeIDGen struct{}

func (fakeIDGen) NewID() (string, error) { return "run-fixed", nil }

type failingSink struct{}

func (failingSink) Save(context.Context, Board) (string, error) {
	return "", &ExportError{Path: "data/denied.csv", Err: errors.New("permission denied")}
}

func newTestPipeline(t *testing.T, fetcher Fetcher, sink Sink, maxRetries int) *Pipeline {
	t.Helper()
	return NewPipeline(
		fetcher,
		NewParser(15, zap.NewNop()),
		sink,
		NewExponentialRetryPolicy(maxRetries, time.Millisecond, 5*time.Millisecond),
		&fakeClock{now: time.Date(2026, 2, 14, 9, 30, 5, 0, time.UTC)},
		fakeIDGen{},
		PipelineConfig{SourceURL: "https://example.com/leaders.html"},
		zap.NewNop(),
	)
}

func TestPipelineRetriesTransientThenSucceeds(t *testing.T) {
	t.Parallel()

	// Fails 2 times, succeeds on 3rd attempt.
	fetcher := &countingFetcher{
		fails:    2,
		failWith: &StatusError{URL: "https://example.com", StatusCode: 503},
		body:     fixtureDocument(20),
	}
	dir := t.TempDir()
	sink, err := NewCSVSink(dir, &fakeClock{now: time.Now().UTC()}, zap.NewNop())
	require.NoError(t, err)

	result, err := newTestPipeline(t, fetcher, sink, 3).Run(context.Background(), mustCategory(t, "Points Per Game"))
	require.NoError(t, err)
	require.Equal(t, 3, fetcher.count())
	require.Len(t, result.Board.Entries, 15)
	require.NotEmpty(t, result.ExportPath)
}

func TestPipelineExhaustsRetries(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{
		fails:    10,
		failWith: &StatusError{URL: "https://example.com", StatusCode: 502},
	}

	_, err := newTestPipeline(t, fetcher, failingSink{}, 3).Run(context.Background(), mustCategory(t, "Points Per Game"))

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, 3, netErr.Attempts)
	require.Equal(t, 3, fetcher.count(), "must retry exactly the configured number of times")
}

func TestPipelinePermanentErrorFailsFast(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{
		fails:    10,
		failWith: &StatusError{URL: "https://example.com", StatusCode: 404},
	}

	_, err := newTestPipeline(t, fetcher, failingSink{}, 3).Run(context.Background(), mustCategory(t, "Points Per Game"))

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, 1, fetcher.count(), "4xx must not be retried")
}

func TestPipelineParseFailureYieldsNoBoard(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{body: []byte("<html><body>no tables</body></html>")}

	result, err := newTestPipeline(t, fetcher, failingSink{}, 3).Run(context.Background(), mustCategory(t, "Assists Per Game"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Empty(t, result.Board.Entries)
	require.Empty(t, result.ExportPath)
}

func TestPipelineExportFailureKeepsBoard(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{body: fixtureDocument(20)}

	result, err := newTestPipeline(t, fetcher, failingSink{}, 3).Run(context.Background(), mustCategory(t, "Points Per Game"))
	require.NoError(t, err, "export failure is partial success, not run failure")
	require.Len(t, result.Board.Entries, 15)

	var exportErr *ExportError
	require.ErrorAs(t, result.ExportErr, &exportErr)
	require.Empty(t, result.ExportPath)
}

func TestPipelineEndToEndFixture(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{body: fixtureDocument(20)}
	dir := t.TempDir()
	sink, err := NewCSVSink(dir, &fakeClock{now: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)}, zap.NewNop())
	require.NoError(t, err)

	result, err := newTestPipeline(t, fetcher, sink, 3).Run(context.Background(), mustCategory(t, "Points Per Game"))
	require.NoError(t, err)
	require.Len(t, result.Board.Entries, 15, "20 source rows truncate to the configured max")
	require.Equal(t, "run-fixed", result.RunID)
	require.False(t, result.Board.FetchedAt.IsZero())

	f, err := os.Open(result.ExportPath)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 16, "header plus exactly 15 data rows")
}

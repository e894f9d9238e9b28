package leaders

import (
	"context"
	"time"
)

// Fetcher retrieves the leaders page and returns the raw document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

// RetryPolicy decides whether and when a failed fetch is attempted again.
// It is deliberately separate from the transport so it can be exercised with
// a fake fetcher.
type RetryPolicy interface {
	ShouldRetry(err error, attempt int) bool
	Backoff(attempt int) time.Duration
}

// Sink persists a board and returns the path of the written artifact.
type Sink interface {
	Save(ctx context.Context, board Board) (string, error)
}

// Clock abstracts time.Now for timestamped filenames.
type Clock interface {
	Now() time.Time
}

// IDGenerator mints run identifiers used to correlate log lines.
type IDGenerator interface {
	NewID() (string, error)
}

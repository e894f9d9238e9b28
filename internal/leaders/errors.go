package leaders

import (
	"errors"
	"fmt"
	"net"
)

// NetworkError is raised when a URL stays unreachable after all retries.
type NetworkError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is raised when the category table is missing from the document
// or no complete rows could be extracted from it.
type ParseError struct {
	Category Category
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Category.Label, e.Reason)
}

// ExportError is raised when the CSV export cannot be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// StatusError reports a non-success HTTP response. Server-side failures are
// transient and eligible for retry; client errors are not.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Transient reports whether the status is expected to resolve on retry.
func (e *StatusError) Transient() bool { return e.StatusCode >= 500 }

type transienter interface {
	Transient() bool
}

// IsTransient classifies an error as retryable: 5xx statuses, timeouts, and
// other net-level failures such as connection resets.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var t transienter
	if errors.As(err, &t) {
		return t.Transient()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

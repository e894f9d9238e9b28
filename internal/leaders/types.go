// Package leaders defines the scrape pipeline and the types shared across it.
package leaders

import "time"

// Entry is one ranked row of a leaders table.
type Entry struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

// Board is the ranked, size-bounded result set for one category and one run.
// It is built fresh per request and never mutated afterwards.
type Board struct {
	Category  Category  `json:"category"`
	Entries   []Entry   `json:"entries"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Document is the raw page returned by a Fetcher implementation.
type Document struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Result carries everything one pipeline run produced. ExportErr is kept
// separate so a failed export does not discard a successfully parsed board.
type Result struct {
	RunID      string
	Board      Board
	ExportPath string
	ExportErr  error
}

package leaders

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// CSVSink writes one timestamped CSV per board under a fixed directory.
// Files are only ever created, never rewritten.
type CSVSink struct {
	root   string
	clock  Clock
	logger *zap.Logger
}

// NewCSVSink returns a sink rooted at dir, creating it if absent.
func NewCSVSink(root string, clock Clock, logger *zap.Logger) (*CSVSink, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, &ExportError{Path: root, Err: fmt.Errorf("create output dir: %w", err)}
	}
	return &CSVSink{root: root, clock: clock, logger: logger}, nil
}

// Save writes the board as `<slug>_<YYYYMMDD_HHMMSS>.csv` with a
// rank,name,team,value header. Values keep their document units.
func (s *CSVSink) Save(ctx context.Context, board Board) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ExportError{Path: s.root, Err: err}
	}

	name := fmt.Sprintf("%s_%s.csv", board.Category.Slug, s.clock.Now().Format("20060102_150405"))
	target := filepath.Join(s.root, name)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", &ExportError{Path: target, Err: err}
	}

	w := csv.NewWriter(f)
	writeErr := w.Write([]string{"rank", "name", "team", "value"})
	for _, entry := range board.Entries {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{
			strconv.Itoa(entry.Rank),
			entry.Player,
			entry.Team,
			strconv.FormatFloat(entry.Value, 'f', -1, 64),
		})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return "", &ExportError{Path: target, Err: writeErr}
	}

	s.logger.Info("board exported",
		zap.String("category", board.Category.Slug),
		zap.String("path", target),
		zap.Int("rows", len(board.Entries)),
	)
	return target, nil
}

package leaders

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Presenter renders a Board as an aligned text table. It carries no state and
// produces no side effects; the caller decides where the text goes.
type Presenter struct{}

// NewPresenter creates a Presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Render returns the board as a bordered table, one line per entry.
func (Presenter) Render(board Board) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Top %d %s Leaders", len(board.Entries), board.Category.Label)
	t.AppendHeader(table.Row{"Rank", "Player", "Team", board.Category.Label})
	for _, entry := range board.Entries {
		t.AppendRow(table.Row{
			entry.Rank,
			entry.Player,
			entry.Team,
			FormatValue(board.Category, entry.Value),
		})
	}
	return t.Render()
}

// FormatValue renders a statistic for display: one decimal place for per-game
// counts, and percentage categories rescaled from the document's 0..1 form to
// a percent figure (0.921 -> "92.1%").
func FormatValue(cat Category, value float64) string {
	if cat.Percentage {
		return fmt.Sprintf("%.1f%%", value*100)
	}
	return fmt.Sprintf("%.1f", value)
}

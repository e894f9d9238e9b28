package leaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	perGame := mustCategory(t, "Points Per Game")
	require.Equal(t, "30.5", FormatValue(perGame, 30.5))
	require.Equal(t, "12.0", FormatValue(perGame, 12))

	pct := mustCategory(t, "Free Throw Percentage")
	require.Equal(t, "92.1%", FormatValue(pct, 0.921))
	require.Equal(t, "50.0%", FormatValue(pct, 0.5))
}

func TestRenderPerGameBoard(t *testing.T) {
	t.Parallel()

	board := Board{
		Category: mustCategory(t, "Points Per Game"),
		Entries: []Entry{
			{Rank: 1, Player: "Shai Gilgeous-Alexander", Team: "OKC", Value: 32.7},
			{Rank: 2, Player: "Giannis Antetokounmpo", Team: "MIL", Value: 30.5},
		},
	}

	out := NewPresenter().Render(board)
	require.Contains(t, out, "Top 2 Points Per Game Leaders")
	require.Contains(t, out, "Shai Gilgeous-Alexander")
	require.Contains(t, out, "OKC")
	require.Contains(t, out, "30.5")

	lines := strings.Split(out, "\n")
	var rowLines int
	for _, line := range lines {
		if strings.Contains(line, "OKC") || strings.Contains(line, "MIL") {
			rowLines++
		}
	}
	require.Equal(t, 2, rowLines, "one rendered line per entry")
}

func TestRenderPercentageBoard(t *testing.T) {
	t.Parallel()

	board := Board{
		Category: mustCategory(t, "Free Throw Percentage"),
		Entries: []Entry{
			{Rank: 1, Player: "Stephen Curry", Team: "GSW", Value: 0.921},
		},
	}

	out := NewPresenter().Render(board)
	require.Contains(t, out, "92.1%")
	require.NotContains(t, out, "0.9%", "percentages must be rescaled from document units")
}

package leaders

import (
	"fmt"
	"strings"
)

// fixtureDocument builds a leaders page shaped like the live source: one
// div-per-category container, a header row, then ranked rows with who/desc/
// value cells. rowsPerTable controls how many data rows each table carries.
func fixtureDocument(rowsPerTable int) []byte {
	var b strings.Builder
	b.WriteString("<html><body><h1>NBA 2025 Leaders</h1>")
	for _, cat := range Categories() {
		writeFixtureTable(&b, cat, rowsPerTable)
	}
	b.WriteString("</body></html>")
	return []byte(b.String())
}

func writeFixtureTable(b *strings.Builder, cat Category, rows int) {
	fmt.Fprintf(b, `<div id="%s"><table>`, cat.TableID)
	b.WriteString(`<tr><th>Rank</th><th>Player</th><th>Value</th></tr>`)
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(b,
			`<tr><td class="rank">%d.</td>`+
				`<td class="who"><a href="/players/p%02d.html">%s</a> <span class="desc">(%s)</span></td>`+
				`<td class="value">%s</td></tr>`,
			i, i, fixturePlayer(cat, i), fixtureTeam(i), fixtureValue(cat, i),
		)
	}
	b.WriteString("</table></div>")
}

func fixturePlayer(cat Category, rank int) string {
	return fmt.Sprintf("%s Player %d", cat.Label, rank)
}

func fixtureTeam(rank int) string {
	teams := []string{"BOS", "OKC", "DEN", "MIL", "PHO", "DAL", "NYK", "MIN", "LAL", "CLE"}
	return teams[(rank-1)%len(teams)]
}

// fixtureValue prints values the way the site does: one decimal for per-game
// stats, a leading-dot three-decimal form for percentages.
func fixtureValue(cat Category, rank int) string {
	if cat.Percentage {
		return fmt.Sprintf(".%03d", 950-(rank-1)*10)
	}
	return fmt.Sprintf("%.1f", 35.0-float64(rank-1)*0.5)
}

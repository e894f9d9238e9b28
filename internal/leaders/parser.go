package leaders

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Parser extracts a ranked Board for one category out of the leaders page.
type Parser struct {
	maxEntries int
	logger     *zap.Logger
}

// NewParser builds a Parser that truncates boards to maxEntries rows.
func NewParser(maxEntries int, logger *zap.Logger) *Parser {
	if maxEntries <= 0 {
		maxEntries = 15
	}
	return &Parser{maxEntries: maxEntries, logger: logger}
}

// Parse locates the category's table container and extracts its rows in
// document order. Rows that do not yield a full entry (header and separator
// rows, rows with an unparsable value) are skipped rather than failing the
// whole parse; a missing container or zero extracted rows is a ParseError.
func (p *Parser) Parse(body []byte, cat Category) (Board, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Board{}, &ParseError{Category: cat, Reason: fmt.Sprintf("invalid document: %v", err)}
	}

	container := doc.Find("div#" + cat.TableID)
	if container.Length() == 0 {
		return Board{}, &ParseError{Category: cat, Reason: "table " + cat.TableID + " not found"}
	}

	entries := make([]Entry, 0, p.maxEntries)
	lastRank := 0
	container.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		entry, ok := p.parseRow(row, lastRank)
		if !ok {
			return true
		}
		entries = append(entries, entry)
		lastRank = entry.Rank
		return len(entries) < p.maxEntries
	})

	if len(entries) == 0 {
		return Board{}, &ParseError{Category: cat, Reason: "no rows extracted from " + cat.TableID}
	}

	p.logger.Debug("table parsed",
		zap.String("category", cat.Slug),
		zap.Int("rows", len(entries)),
	)
	return Board{Category: cat, Entries: entries}, nil
}

// parseRow pulls one entry from a table row. The source blanks or repeats the
// rank cell for tied rows, so ranks are forced monotonic: a document rank at
// or below lastRank falls back to lastRank+1.
func (p *Parser) parseRow(row *goquery.Selection, lastRank int) (Entry, bool) {
	who := row.Find("td.who")
	if who.Length() == 0 {
		return Entry{}, false
	}
	player := strings.TrimSpace(who.Find("a").First().Text())
	if player == "" {
		return Entry{}, false
	}

	team := strings.TrimSpace(who.Find("span.desc").First().Text())
	team = strings.Trim(team, "()")
	if team == "" {
		return Entry{}, false
	}

	valueText := strings.TrimSpace(row.Find("td.value").First().Text())
	if valueText == "" {
		return Entry{}, false
	}
	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return Entry{}, false
	}

	rank := lastRank + 1
	rankText := strings.TrimSpace(row.Find("td.rank").First().Text())
	rankText = strings.TrimSuffix(rankText, ".")
	if n, err := strconv.Atoi(rankText); err == nil && n > lastRank {
		rank = n
	}

	return Entry{Rank: rank, Player: player, Team: team, Value: value}, true
}

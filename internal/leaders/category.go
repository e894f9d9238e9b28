package leaders

import (
	"sort"
	"strconv"
	"strings"
)

// Category identifies one of the supported statistics. TableID is the id of
// the container that holds the category's table in the source document.
type Category struct {
	Slug       string
	Label      string
	TableID    string
	Percentage bool
}

// Categories returns the supported categories sorted by label, which is also
// the order the shell menu presents them in.
func Categories() []Category {
	cats := make([]Category, len(categories))
	copy(cats, categories)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Label < cats[j].Label })
	return cats
}

var categories = []Category{
	{Slug: "points_per_game", Label: "Points Per Game", TableID: "leaders_pts_per_g"},
	{Slug: "rebounds_per_game", Label: "Rebounds Per Game", TableID: "leaders_trb_per_g"},
	{Slug: "assists_per_game", Label: "Assists Per Game", TableID: "leaders_ast_per_g"},
	{Slug: "steals_per_game", Label: "Steals Per Game", TableID: "leaders_stl_per_g"},
	{Slug: "blocks_per_game", Label: "Blocks Per Game", TableID: "leaders_blk_per_g"},
	{Slug: "turnovers_per_game", Label: "Turnovers Per Game", TableID: "leaders_tov_per_g"},
	{Slug: "field_goal_percentage", Label: "Field Goal Percentage", TableID: "leaders_fg_pct", Percentage: true},
	{Slug: "3_point_percentage", Label: "3 Point Percentage", TableID: "leaders_fg3_pct", Percentage: true},
	{Slug: "free_throw_percentage", Label: "Free Throw Percentage", TableID: "leaders_ft_pct", Percentage: true},
}

// LookupCategory resolves a menu selection, which may be a 1-based index into
// the sorted menu or a case-insensitive label.
func LookupCategory(selection string) (Category, bool) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return Category{}, false
	}
	menu := Categories()
	if idx, err := strconv.Atoi(selection); err == nil {
		if idx < 1 || idx > len(menu) {
			return Category{}, false
		}
		return menu[idx-1], true
	}
	for _, cat := range menu {
		if strings.EqualFold(cat.Label, selection) {
			return cat, true
		}
	}
	return Category{}, false
}

// Package catalog derives the navigation views of the hub from the calculator registry:
// category and search filtering, the favorites list, recently used calculators and
// the essentials shown on the dashboard.
package catalog

import (
	"strings"

	"calchub/internal/calculators"
	"calchub/pkg/calctypes"
)

// Limits used by the dashboard and the sidebar for recently used calculators.
const (
	DashboardRecents = 4
	SidebarRecents   = 3
)

// Filter keeps the definitions in category (or all of them for CategoryAll) whose
// name or description contains query, ignoring case. An empty query matches everything.
func Filter(defs []*calctypes.Definition, category calctypes.Category, query string) []*calctypes.Definition {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*calctypes.Definition, 0, len(defs))
	for _, def := range defs {
		if category != calctypes.CategoryAll && category != "" && def.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(def.Name), query) &&
			!strings.Contains(strings.ToLower(def.Description), query) {
			continue
		}
		matched = append(matched, def)
	}
	return matched
}

// Favorites returns the definitions whose id is in ids, in registry order.
func Favorites(defs []*calctypes.Definition, ids []string) []*calctypes.Definition {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var favs []*calctypes.Definition
	for _, def := range defs {
		if wanted[def.ID] {
			favs = append(favs, def)
		}
	}
	return favs
}

// Recents walks history newest first and returns each calculator once, up to limit.
// History entries for calculators that are no longer registered are skipped.
func Recents(defs []*calctypes.Definition, history []calctypes.HistoryItem, limit int) []*calctypes.Definition {
	byID := make(map[string]*calctypes.Definition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	seen := make(map[string]bool)
	var recents []*calctypes.Definition
	for _, item := range history {
		if limit > 0 && len(recents) >= limit {
			break
		}
		if seen[item.CalculatorID] {
			continue
		}
		seen[item.CalculatorID] = true
		if def, ok := byID[item.CalculatorID]; ok {
			recents = append(recents, def)
		}
	}
	return recents
}

// Essentials returns the keypad calculators pinned on the dashboard.
func Essentials(reg *calculators.Registry) []*calctypes.Definition {
	var out []*calctypes.Definition
	for _, id := range []string{calculators.BasicID, calculators.ScientificID} {
		if def, ok := reg.Get(id); ok {
			out = append(out, def)
		}
	}
	return out
}

// Categories returns the sidebar entries with the number of calculators in each.
func Categories(defs []*calctypes.Definition) []Entry {
	counts := make(map[calctypes.Category]int)
	for _, def := range defs {
		counts[def.Category]++
	}
	infos := calctypes.Categories()
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		n := counts[info.ID]
		if info.ID == calctypes.CategoryAll {
			n = len(defs)
		}
		entries = append(entries, Entry{CategoryInfo: info, Count: n})
	}
	return entries
}

// Entry is a sidebar category with its calculator count.
type Entry struct {
	calctypes.CategoryInfo
	Count int
}

package builtin

import (
	"fmt"

	"calchub/internal/catalog"
	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// HistoryCommand implements the \history command.
type HistoryCommand struct{}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *HistoryCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "Show or clear recorded calculations"
}

// Usage returns the syntax and usage examples for the history command.
func (c *HistoryCommand) Usage() string {
	return "\\history[limit=N, clear]"
}

// HelpInfo returns structured help information for the history command.
func (c *HistoryCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "limit", Description: "Number of entries to show", Type: "int", Default: "10"},
			{Name: "clear", Description: "Delete all history", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\history", Description: "Ten most recent calculations"},
			{Command: "\\history[limit=3]", Description: "Three most recent"},
			{Command: "\\history[clear]", Description: "Forget everything"},
		},
		Notes: []string{"Newest entries come first; older ones drop off past the configured limit"},
	}
}

// Execute lists or clears the history.
func (c *HistoryCommand) Execute(args map[string]string, _ string) error {
	history, err := service[*services.HistoryService]("history")
	if err != nil {
		return err
	}
	p := printer()

	if hasFlag(args, "clear") {
		if err := history.Clear(); err != nil {
			return err
		}
		if metrics, err := service[*services.MetricsService]("metrics"); err == nil {
			metrics.SetHistorySize(0)
		}
		p.Success("History cleared")
		return nil
	}

	limit, err := intOption(args, "limit", 10)
	if err != nil {
		return err
	}
	items := history.Recent(limit)
	if len(items) == 0 {
		p.Info("No calculations recorded yet")
		return nil
	}
	for i, item := range items {
		p.Println(fmt.Sprintf("%3d. %s  %-16s %s", i+1, item.Timestamp.Format(historyTimeLayout), item.CalculatorID, item.Headline))
	}
	return nil
}

// RecentCommand implements the \recent command: distinct calculators from history.
type RecentCommand struct{}

// Name returns the command name "recent" for registration and lookup.
func (c *RecentCommand) Name() string {
	return "recent"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *RecentCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the recent command does.
func (c *RecentCommand) Description() string {
	return "List recently used calculators"
}

// Usage returns the syntax and usage examples for the recent command.
func (c *RecentCommand) Usage() string {
	return "\\recent[limit=N]"
}

// HelpInfo returns structured help information for the recent command.
func (c *RecentCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "limit", Description: "Number of calculators to show", Type: "int", Default: fmt.Sprint(catalog.SidebarRecents)},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\recent", Description: "Calculators from the latest history entries"},
		},
	}
}

// Execute prints the distinct calculators of the most recent history entries.
func (c *RecentCommand) Execute(args map[string]string, _ string) error {
	limit, err := intOption(args, "limit", catalog.SidebarRecents)
	if err != nil {
		return err
	}
	defs, err := recentDefinitions(limit)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		printer().Info("No recent calculators")
		return nil
	}
	favorites, _ := service[*services.FavoritesService]("favorites")
	for _, def := range defs {
		printer().Println(calculatorLine(def, favorites != nil && favorites.Contains(def.ID)))
	}
	return nil
}

func recentDefinitions(limit int) ([]*calctypes.Definition, error) {
	cat, err := service[*services.CatalogService]("catalog")
	if err != nil {
		return nil, err
	}
	history, err := service[*services.HistoryService]("history")
	if err != nil {
		return nil, err
	}
	return catalog.Recents(cat.All(), history.List(), limit), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&HistoryCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register history command: %v", err))
	}
	if err := commands.GlobalRegistry.Register(&RecentCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register recent command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// ListCommand implements the \list command: the calculator catalog, filtered by category and search text.
type ListCommand struct{}

// Name returns the command name "list" for registration and lookup.
func (c *ListCommand) Name() string {
	return "list"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *ListCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the list command does.
func (c *ListCommand) Description() string {
	return "List calculators by category and search text"
}

// Usage returns the syntax and usage examples for the list command.
func (c *ListCommand) Usage() string {
	return "\\list[category=name] [search]"
}

// HelpInfo returns structured help information for the list command.
func (c *ListCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "category", Description: "All, Finance, Health, Math, Engineering, Utility or Advanced", Type: "string", Default: "All"},
			{Name: "categories", Description: "Show the categories with their calculator counts", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\list", Description: "Every calculator"},
			{Command: "\\list[category=math] fraction", Description: "Math calculators mentioning fraction"},
			{Command: "\\list[categories]", Description: "Category overview"},
		},
		Notes: []string{
			"Search text matches names and descriptions, ignoring case",
			"Favorites are marked with ★",
		},
	}
}

// Execute prints the matching calculators.
func (c *ListCommand) Execute(args map[string]string, input string) error {
	catalog, err := service[*services.CatalogService]("catalog")
	if err != nil {
		return err
	}
	p := printer()

	if hasFlag(args, "categories") {
		for _, entry := range catalog.Categories() {
			p.Println(fmt.Sprintf("  %s %-12s %d", entry.Icon.Glyph(), entry.Label, entry.Count))
		}
		return nil
	}

	category, err := calctypes.ParseCategory(args["category"])
	if err != nil {
		return err
	}
	result, err := catalog.Search(services.SearchOptions{Category: category, Query: input})
	if err != nil {
		return err
	}
	if result.Count == 0 {
		p.Info("No calculators match")
		return nil
	}

	favorites, _ := service[*services.FavoritesService]("favorites")
	for _, def := range result.Calculators {
		p.Println(calculatorLine(def, favorites != nil && favorites.Contains(def.ID)))
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ListCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register list command: %v", err))
	}
}

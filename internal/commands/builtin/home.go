package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/catalog"
	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// dashboardFavorites caps the favorites shown on the dashboard.
const dashboardFavorites = 4

// HomeCommand implements the \home command, the dashboard overview.
type HomeCommand struct{}

// Name returns the command name "home" for registration and lookup.
func (c *HomeCommand) Name() string {
	return "home"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *HomeCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the home command does.
func (c *HomeCommand) Description() string {
	return "Show the dashboard"
}

// Usage returns the syntax and usage examples for the home command.
func (c *HomeCommand) Usage() string {
	return "\\home"
}

// HelpInfo returns structured help information for the home command.
func (c *HomeCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\home", Description: "Essentials, favorites, recents, tasks, notepad and stopwatch"},
		},
	}
}

// Execute prints every dashboard panel.
func (c *HomeCommand) Execute(_ map[string]string, _ string) error {
	cat, err := service[*services.CatalogService]("catalog")
	if err != nil {
		return err
	}
	favorites, err := favoriteDefinitions()
	if err != nil {
		return err
	}
	if len(favorites) > dashboardFavorites {
		favorites = favorites[:dashboardFavorites]
	}
	recents, err := recentDefinitions(catalog.DashboardRecents)
	if err != nil {
		return err
	}
	notes, err := service[*services.NotesService]("notes")
	if err != nil {
		return err
	}
	stopwatch, err := service[*services.StopwatchService]("stopwatch")
	if err != nil {
		return err
	}

	panel("Essentials", definitionItems(cat.Essentials()), "")
	panel("Favorites", definitionItems(favorites), "Star calculators with \\fav")
	panel("Recent", definitionItems(recents), "Nothing calculated yet")

	todos := notes.Todos()
	open := 0
	items := make([]string, len(todos))
	for i, todo := range todos {
		if !todo.Done {
			open++
		}
		items[i] = strings.TrimSpace(todoLine(i+1, todo))
	}
	panel(fmt.Sprintf("Tasks (%d open)", open), items, "No tasks")

	var noteLines []string
	if note := notes.Note(); note != "" {
		noteLines = strings.Split(note, "\n")
	}
	panel("Notepad", noteLines, "Empty")
	panel("Stopwatch", []string{stopwatchLine(stopwatch)}, "")
	return nil
}

func definitionItems(defs []*calctypes.Definition) []string {
	items := make([]string, len(defs))
	for i, def := range defs {
		items[i] = fmt.Sprintf("%s %-16s %s", def.Icon.Glyph(), def.ID, def.Name)
	}
	return items
}

// panel prints a titled list, using the theme's list renderer when styling is on.
func panel(title string, items []string, empty string) {
	p := printer()
	p.Bold(title)
	p.Println("")
	if len(items) == 0 {
		if empty != "" {
			p.Println("  " + empty)
		}
		return
	}
	if p.IsStylable() {
		if themes, err := service[*services.ThemeService]("theme"); err == nil {
			p.Block(themes.Active().CreateSimpleList(items).String())
			return
		}
	}
	for _, item := range items {
		p.Println("  • " + item)
	}
}

func init() {
	if err := commands.GlobalRegistry.Register(&HomeCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register home command: %v", err))
	}
}

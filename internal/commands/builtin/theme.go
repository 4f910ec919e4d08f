package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// ThemeCommand implements the \theme command.
type ThemeCommand struct{}

// Name returns the command name "theme" for registration and lookup.
func (c *ThemeCommand) Name() string {
	return "theme"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *ThemeCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the theme command does.
func (c *ThemeCommand) Description() string {
	return "List themes or switch the active one"
}

// Usage returns the syntax and usage examples for the theme command.
func (c *ThemeCommand) Usage() string {
	return "\\theme [name]"
}

// HelpInfo returns structured help information for the theme command.
func (c *ThemeCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\theme", Description: "List themes, marking the active one"},
			{Command: "\\theme dark", Description: "Switch to the dark theme"},
		},
		Notes: []string{"The plain theme turns off colors"},
	}
}

// Execute lists or activates a theme.
func (c *ThemeCommand) Execute(_ map[string]string, input string) error {
	themes, err := service[*services.ThemeService]("theme")
	if err != nil {
		return err
	}
	p := printer()

	name := strings.TrimSpace(input)
	if name == "" {
		active := themes.Active().Name
		for _, t := range themes.GetAvailableThemes() {
			marker := " "
			if t == active {
				marker = "*"
			}
			p.Println(fmt.Sprintf("%s %s", marker, t))
		}
		return nil
	}

	if err := themes.SetActive(name); err != nil {
		return err
	}
	if config, err := service[*services.ConfigurationService]("configuration"); err == nil {
		config.Set(services.ConfigTheme, themes.Active().Name)
	}
	p.Success(fmt.Sprintf("Theme set to %s", themes.Active().Name))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ThemeCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register theme command: %v", err))
	}
}

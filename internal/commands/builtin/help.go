package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// HelpCommand implements the \help command for listing commands and showing detailed usage.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *HelpCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show command help"
}

// Usage returns the syntax and usage examples for the help command.
func (c *HelpCommand) Usage() string {
	return "\\help [command]"
}

// HelpInfo returns structured help information for the help command.
func (c *HelpCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\help", Description: "List every command"},
			{Command: "\\help open", Description: "Detailed help for \\open"},
			{Command: "\\help[key]", Description: "Bracket form of the same request"},
		},
	}
}

// Execute lists all commands, or shows one command in detail when named
// in brackets or as the message.
func (c *HelpCommand) Execute(args map[string]string, input string) error {
	requested := strings.TrimPrefix(strings.TrimSpace(input), "\\")
	for key := range args {
		requested = key
		break
	}

	if requested != "" {
		return c.showCommandHelp(requested)
	}
	c.showAllCommands()
	return nil
}

func (c *HelpCommand) showCommandHelp(name string) error {
	info, ok := commands.GlobalRegistry.HelpInfo(name)
	if !ok {
		return fmt.Errorf("command '%s' not found. Use \\help to see all available commands", name)
	}

	md := helpMarkdown(info)
	p := printer()
	if p.IsStylable() {
		if rendered, err := renderMarkdown(md); err == nil {
			p.Block(rendered)
			return nil
		}
	}
	p.Block(md)
	return nil
}

func (c *HelpCommand) showAllCommands() {
	p := printer()
	p.Println("calchub commands:")
	for _, cmd := range commands.GlobalRegistry.GetAll() {
		p.Println(fmt.Sprintf("  %-28s %s", cmd.Usage(), cmd.Description()))
	}
	p.Println("")
	p.Println("Lines without a leading \\ are key presses for the open calculator, e.g. 7 + 3 =")
	p.Println("Use \\help[command] for detailed help on a specific command")
}

// renderMarkdown renders through the markdown service with the active theme.
func renderMarkdown(md string) (string, error) {
	markdown, err := service[*services.MarkdownService]("markdown")
	if err != nil {
		return "", err
	}
	themeName := ""
	if themes, err := service[*services.ThemeService]("theme"); err == nil {
		themeName = themes.Active().Name
	}
	return markdown.RenderWithTheme(md, themeName)
}

// helpMarkdown lays out a command's help as a markdown document.
func helpMarkdown(info calctypes.HelpInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# \\%s\n\n%s\n\n", info.Command, info.Description)
	fmt.Fprintf(&b, "**Usage:** `%s`\n\n", info.Usage)
	fmt.Fprintf(&b, "**Parse mode:** %s\n", info.ParseMode)

	if len(info.Options) > 0 {
		b.WriteString("\n## Options\n\n")
		for _, opt := range info.Options {
			line := fmt.Sprintf("- `%s` (%s)", opt.Name, opt.Type)
			if opt.Required {
				line += " required"
			}
			line += ": " + opt.Description
			if opt.Default != "" {
				line += fmt.Sprintf(" (default %s)", opt.Default)
			}
			b.WriteString(line + "\n")
		}
	}
	if len(info.Examples) > 0 {
		b.WriteString("\n## Examples\n\n")
		for _, ex := range info.Examples {
			fmt.Fprintf(&b, "- `%s`: %s\n", ex.Command, ex.Description)
		}
	}
	if len(info.Notes) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, note := range info.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

func init() {
	if err := commands.GlobalRegistry.Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}

package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/data/embedded"
	"calchub/pkg/calctypes"
)

// DemoCommand implements the \demo command, running a bundled script.
type DemoCommand struct{}

// Name returns the command name "demo" for registration and lookup.
func (c *DemoCommand) Name() string {
	return "demo"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *DemoCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the demo command does.
func (c *DemoCommand) Description() string {
	return "List or run the bundled demo scripts"
}

// Usage returns the syntax and usage examples for the demo command.
func (c *DemoCommand) Usage() string {
	return "\\demo [name]"
}

// HelpInfo returns structured help information for the demo command.
func (c *DemoCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\demo", Description: "List the demos"},
			{Command: "\\demo tour", Description: "Walk through every calculator"},
		},
		Notes: []string{"Demos are ordinary .calc scripts; each line runs as if typed"},
	}
}

// Execute lists the scripts or runs one through the command registry.
func (c *DemoCommand) Execute(_ map[string]string, input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		names, err := embedded.ScriptNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			printer().Println("  " + n)
		}
		return nil
	}

	script, err := embedded.LoadScript(name)
	if err != nil {
		return err
	}
	if err := commands.GlobalRegistry.RunScript(script); err != nil {
		return fmt.Errorf("demo %s: %w", name, err)
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&DemoCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register demo command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/pkg/calctypes"
)

// ExitCommand implements the \exit command for ending the calchub session.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *ExitCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exit the shell"
}

// Usage returns the syntax and usage examples for the exit command.
func (c *ExitCommand) Usage() string {
	return "\\exit"
}

// HelpInfo returns structured help information for the exit command.
func (c *ExitCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\exit", Description: "End the session"},
		},
		Notes: []string{
			"Favorites, history, notes and todos are already persisted",
			"In a script, \\exit stops the script without an error",
		},
	}
}

// Execute asks the shell to stop.
func (c *ExitCommand) Execute(_ map[string]string, _ string) error {
	return commands.ErrExit
}

func init() {
	if err := commands.GlobalRegistry.Register(&ExitCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register exit command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// CloseCommand implements the \close command.
type CloseCommand struct{}

// Name returns the command name "close" for registration and lookup.
func (c *CloseCommand) Name() string {
	return "close"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *CloseCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the close command does.
func (c *CloseCommand) Description() string {
	return "Close the open calculator"
}

// Usage returns the syntax and usage examples for the close command.
func (c *CloseCommand) Usage() string {
	return "\\close"
}

// HelpInfo returns structured help information for the close command.
func (c *CloseCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\close", Description: "Return to the dashboard"},
		},
	}
}

// Execute deselects the calculator.
func (c *CloseCommand) Execute(_ map[string]string, _ string) error {
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}
	def := workbench.Current()
	if !workbench.Close() {
		printer().Info("No calculator is open")
		return nil
	}
	printer().Success(fmt.Sprintf("Closed %s", def.Name))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&CloseCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register close command: %v", err))
	}
}

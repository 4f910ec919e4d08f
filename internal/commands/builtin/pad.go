package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/keypad"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// PadCommand implements the \pad command, drawing the open keypad.
type PadCommand struct{}

// Name returns the command name "pad" for registration and lookup.
func (c *PadCommand) Name() string {
	return "pad"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *PadCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the pad command does.
func (c *PadCommand) Description() string {
	return "Draw the keypad of the open calculator"
}

// Usage returns the syntax and usage examples for the pad command.
func (c *PadCommand) Usage() string {
	return "\\pad"
}

// HelpInfo returns structured help information for the pad command.
func (c *PadCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\pad", Description: "Display, caption and key caps"},
		},
	}
}

// Execute renders the keypad with the active theme.
func (c *PadCommand) Execute(_ map[string]string, _ string) error {
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}
	def := workbench.Current()
	if def == nil {
		return fmt.Errorf("no calculator is open (use \\open first)")
	}
	m := workbench.Machine()
	if m == nil {
		return fmt.Errorf("calculator '%s' has no keypad", def.ID)
	}
	printer().Block(keypad.Render(m, faceStyles()))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&PadCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register pad command: %v", err))
	}
}

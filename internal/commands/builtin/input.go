package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// InputCommand implements the \input command: it shows or changes the open calculator's inputs.
type InputCommand struct{}

// Name returns the command name "input" for registration and lookup.
func (c *InputCommand) Name() string {
	return "input"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *InputCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the input command does.
func (c *InputCommand) Description() string {
	return "Show or set the inputs of the open calculator"
}

// Usage returns the syntax and usage examples for the input command.
func (c *InputCommand) Usage() string {
	return "\\input[id=value, ...]"
}

// HelpInfo returns structured help information for the input command.
func (c *InputCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "reset", Description: "Restore every input to its default", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\input", Description: "List inputs with their current values"},
			{Command: "\\input[n1=1, d1=3, op=subtract]", Description: "Set several inputs at once"},
			{Command: "\\input[reset]", Description: "Back to the defaults"},
		},
		Notes: []string{
			"Values are checked against the input type before anything changes",
			"Select inputs accept one of the listed options",
		},
	}
}

// Execute lists, resets or updates the inputs.
func (c *InputCommand) Execute(args map[string]string, _ string) error {
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}
	def := workbench.Current()
	if def == nil {
		return fmt.Errorf("no calculator is open (use \\open first)")
	}
	p := printer()

	if hasFlag(args, "reset") {
		if err := workbench.ResetInputs(); err != nil {
			return err
		}
		p.Success(fmt.Sprintf("Inputs of %s reset to defaults", def.Name))
		return nil
	}

	if len(args) == 0 {
		printInputs(def, workbench.Inputs())
		return nil
	}

	if err := workbench.SetInputs(args); err != nil {
		return err
	}
	p.Success(fmt.Sprintf("Updated %s", strings.Join(sortedKeys(args), ", ")))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&InputCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register input command: %v", err))
	}
}

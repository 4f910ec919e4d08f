package builtin

import (
	"fmt"
	"sort"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/keypad"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// OpenCommand implements the \open command for selecting a calculator.
type OpenCommand struct{}

// Name returns the command name "open" for registration and lookup.
func (c *OpenCommand) Name() string {
	return "open"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *OpenCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the open command does.
func (c *OpenCommand) Description() string {
	return "Open a calculator with its default inputs"
}

// Usage returns the syntax and usage examples for the open command.
func (c *OpenCommand) Usage() string {
	return "\\open calculator"
}

// HelpInfo returns structured help information for the open command.
func (c *OpenCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\open math-basic", Description: "Open by id"},
			{Command: "\\open fraction", Description: "Open by a unique part of the id or name"},
		},
		Notes: []string{
			"Opening a calculator resets its inputs to their defaults",
			"Keypad calculators start with a display of 0",
		},
	}
}

// Execute opens the calculator and shows its form.
func (c *OpenCommand) Execute(_ map[string]string, input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("calculator is required. Usage: %s", c.Usage())
	}
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}
	def, err := workbench.Open(input)
	if err != nil {
		return err
	}

	p := printer()
	p.Success(fmt.Sprintf("Opened %s (%s)", def.Name, def.ID))
	p.Println(def.Description)
	if m := workbench.Machine(); m != nil {
		p.Block(keypad.Render(m, faceStyles()))
		return nil
	}
	printInputs(def, workbench.Inputs())
	return nil
}

// printInputs lists a calculator's inputs with their current values.
func printInputs(def *calctypes.Definition, inputs calctypes.Inputs) {
	p := printer()
	for _, in := range def.Inputs {
		line := fmt.Sprintf("  %-10s %-20s %s", in.ID, in.Label, inputs.String(in.ID))
		if in.Unit != "" {
			line += " " + in.Unit
		}
		if len(in.Options) > 0 {
			values := make([]string, len(in.Options))
			for i, opt := range in.Options {
				values[i] = opt.Value
			}
			line += "  (" + strings.Join(values, "|") + ")"
		}
		p.Println(line)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	if err := commands.GlobalRegistry.Register(&OpenCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register open command: %v", err))
	}
}

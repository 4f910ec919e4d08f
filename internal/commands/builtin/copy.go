package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/calculators"
	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// writeClipboard is replaced in tests.
var writeClipboard = systemClipboard

// CopyCommand implements the \copy command for putting a result on the clipboard.
type CopyCommand struct{}

// Name returns the command name "copy" for registration and lookup.
func (c *CopyCommand) Name() string {
	return "copy"
}

// ParseMode returns ParseModeRaw so literal text is copied as typed.
func (c *CopyCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeRaw
}

// Description returns a brief description of what the copy command does.
func (c *CopyCommand) Description() string {
	return "Copy the current result or some text to the clipboard"
}

// Usage returns the syntax and usage examples for the copy command.
func (c *CopyCommand) Usage() string {
	return "\\copy [text]"
}

// HelpInfo returns structured help information for the copy command.
func (c *CopyCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\copy", Description: "Copy the headline result or keypad display"},
			{Command: "\\copy 3/4", Description: "Copy literal text"},
		},
		Notes: []string{
			"When no clipboard is available the value is printed instead",
			"Copying does not add to history",
		},
	}
}

// Execute copies the text, or the open calculator's current value.
func (c *CopyCommand) Execute(_ map[string]string, input string) error {
	text := strings.TrimSpace(input)
	if text == "" {
		value, err := currentValue()
		if err != nil {
			return err
		}
		text = value
	}

	p := printer()
	if err := writeClipboard(text); err != nil {
		p.Warning(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		p.Info(fmt.Sprintf("Value: %s", text))
		return nil
	}
	p.Success(fmt.Sprintf("Copied %d characters to clipboard", len(text)))
	return nil
}

// currentValue is the keypad display, or the headline of a fresh evaluation.
func currentValue() (string, error) {
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return "", err
	}
	def := workbench.Current()
	if def == nil {
		return "", fmt.Errorf("nothing to copy: no calculator is open")
	}
	if m := workbench.Machine(); m != nil {
		return m.Display(), nil
	}
	ev := calculators.Evaluate(def, workbench.Inputs())
	if ev == nil || ev.Failed() {
		return "", fmt.Errorf("nothing to copy: %s has no valid result", def.Name)
	}
	headline, ok := ev.Headline()
	if !ok {
		return "", fmt.Errorf("nothing to copy: %s produced no output", def.Name)
	}
	return headline.Display(), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&CopyCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register copy command: %v", err))
	}
}

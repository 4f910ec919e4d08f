package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/keypad"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// KeyCommand implements the \key command. Lines that are not commands are sent here too.
type KeyCommand struct{}

// Name returns the command name "key" for registration and lookup.
func (c *KeyCommand) Name() string {
	return "key"
}

// ParseMode returns ParseModeRaw so key sequences reach the keypad untouched.
func (c *KeyCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeRaw
}

// Description returns a brief description of what the key command does.
func (c *KeyCommand) Description() string {
	return "Press keys on the open keypad calculator"
}

// Usage returns the syntax and usage examples for the key command.
func (c *KeyCommand) Usage() string {
	return "\\key keys"
}

// HelpInfo returns structured help information for the key command.
func (c *KeyCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\key 7 + 3 =", Description: "Add two numbers"},
			{Command: "12 * 4 =", Description: "Plain lines are pressed as keys"},
			{Command: "\\key 2 sqrt", Description: "Square root of the display"},
			{Command: "\\key AC", Description: "Clear the keypad"},
		},
		Notes: []string{
			"Digit runs like 12 press each digit in turn",
			"ASCII aliases: * for ×, / for ÷, sqrt, pi, sq, C for AC, DEL",
			"Scientific keys only work on the scientific keypad",
		},
	}
}

// Execute presses the keys and prints the display.
func (c *KeyCommand) Execute(_ map[string]string, input string) error {
	input = strings.TrimSpace(input)
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}
	if workbench.Current() == nil {
		return fmt.Errorf("no calculator is open; try \\open math-basic and then type keys like 7 + 3 =")
	}

	if input != "" {
		keys, err := keypad.ParseKeys(input)
		if err != nil {
			return err
		}
		if _, err := workbench.Press(keys...); err != nil {
			return err
		}
	}

	m := workbench.Machine()
	if m == nil {
		return fmt.Errorf("calculator '%s' has no keypad", workbench.Current().ID)
	}
	printer().Println(displayLine(m))
	return nil
}

// displayLine renders "[caption] display", with READY when there is no caption.
func displayLine(m *keypad.Machine) string {
	caption := m.Caption()
	if caption == "" {
		caption = "READY"
	}
	return fmt.Sprintf("[%s] %s", caption, m.Display())
}

func init() {
	if err := commands.GlobalRegistry.Register(&KeyCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register key command: %v", err))
	}
}

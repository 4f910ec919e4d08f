package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/version"
	"calchub/pkg/calctypes"
)

// VersionCommand implements the \version command.
type VersionCommand struct{}

// Name returns the command name "version" for registration and lookup.
func (c *VersionCommand) Name() string {
	return "version"
}

// ParseMode returns ParseModeKeyValue for consistency with other builtin commands.
func (c *VersionCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string {
	return "Show calchub version information"
}

// Usage returns the syntax and usage examples for the version command.
func (c *VersionCommand) Usage() string {
	return "\\version[detail]"
}

// HelpInfo returns structured help information for the version command.
func (c *VersionCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "detail", Description: "Include commit, build date, Go version and platform", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\version", Description: "One-line version string"},
			{Command: "\\version[detail]", Description: "Full build information"},
		},
	}
}

// Execute prints the version.
func (c *VersionCommand) Execute(args map[string]string, _ string) error {
	if hasFlag(args, "detail") {
		printer().Println(version.GetDetailedVersion())
		return nil
	}
	printer().Println(version.GetFormattedVersion())
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&VersionCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register version command: %v", err))
	}
}

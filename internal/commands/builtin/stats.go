package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// StatsCommand implements the \stats command, printing session counters.
type StatsCommand struct{}

// Name returns the command name "stats" for registration and lookup.
func (c *StatsCommand) Name() string {
	return "stats"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *StatsCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the stats command does.
func (c *StatsCommand) Description() string {
	return "Show session counters for calculations and key presses"
}

// Usage returns the syntax and usage examples for the stats command.
func (c *StatsCommand) Usage() string {
	return "\\stats"
}

// HelpInfo returns structured help information for the stats command.
func (c *StatsCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\stats", Description: "Counters since the shell started"},
		},
		Notes: []string{"Counters reset when the shell exits"},
	}
}

// Execute prints each sample as "name{labels} value".
func (c *StatsCommand) Execute(_ map[string]string, _ string) error {
	metrics, err := service[*services.MetricsService]("metrics")
	if err != nil {
		return err
	}
	stats, err := metrics.Snapshot()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		printer().Info("No activity recorded yet")
		return nil
	}
	for _, s := range stats {
		name := s.Name
		if s.Labels != "" {
			name = fmt.Sprintf("%s{%s}", s.Name, s.Labels)
		}
		printer().Println(fmt.Sprintf("  %-60s %s", name, calctypes.FormatNumber(s.Value)))
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&StatsCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register stats command: %v", err))
	}
}

package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// TimerCommand implements the \timer command for the dashboard stopwatch.
type TimerCommand struct{}

// Name returns the command name "timer" for registration and lookup.
func (c *TimerCommand) Name() string {
	return "timer"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *TimerCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the timer command does.
func (c *TimerCommand) Description() string {
	return "Start, pause, reset or show the stopwatch"
}

// Usage returns the syntax and usage examples for the timer command.
func (c *TimerCommand) Usage() string {
	return "\\timer [start|pause|reset]"
}

// HelpInfo returns structured help information for the timer command.
func (c *TimerCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\timer start", Description: "Start or resume"},
			{Command: "\\timer pause", Description: "Pause, keeping the elapsed time"},
			{Command: "\\timer reset", Description: "Stop and return to 00:00"},
			{Command: "\\timer", Description: "Show elapsed time"},
		},
		Notes: []string{"Elapsed time is shown as MM:SS; minutes keep counting past 59"},
	}
}

// Execute applies the action and prints the stopwatch.
func (c *TimerCommand) Execute(_ map[string]string, input string) error {
	stopwatch, err := service[*services.StopwatchService]("stopwatch")
	if err != nil {
		return err
	}
	p := printer()

	switch action := strings.ToLower(strings.TrimSpace(input)); action {
	case "start":
		if !stopwatch.Start() {
			p.Info("Stopwatch is already running")
		} else {
			p.Success("Stopwatch started")
		}
	case "pause", "stop":
		if !stopwatch.Pause() {
			p.Info("Stopwatch is not running")
		} else {
			p.Success("Stopwatch paused")
		}
	case "reset":
		stopwatch.Reset()
		p.Success("Stopwatch reset")
	case "", "show", "status":
	default:
		return fmt.Errorf("unknown timer action '%s'. Usage: %s", action, c.Usage())
	}
	p.Println(stopwatchLine(stopwatch))
	return nil
}

func stopwatchLine(s *services.StopwatchService) string {
	state := "paused"
	if s.Running() {
		state = "running"
	}
	return fmt.Sprintf("⏱ %s (%s)", s.Display(), state)
}

func init() {
	if err := commands.GlobalRegistry.Register(&TimerCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register timer command: %v", err))
	}
}

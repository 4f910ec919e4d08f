package builtin

import (
	"fmt"

	"calchub/internal/commands"
	"calchub/internal/logger"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// CalcCommand implements the \calc command.
type CalcCommand struct{}

// Name returns the command name "calc" for registration and lookup.
func (c *CalcCommand) Name() string {
	return "calc"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *CalcCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the calc command does.
func (c *CalcCommand) Description() string {
	return "Evaluate the open calculator and record the result"
}

// Usage returns the syntax and usage examples for the calc command.
func (c *CalcCommand) Usage() string {
	return "\\calc[id=value, ...]"
}

// HelpInfo returns structured help information for the calc command.
func (c *CalcCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "quiet", Description: "Evaluate without adding to history", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\calc", Description: "Evaluate with the current inputs"},
			{Command: "\\calc[val=ff, fromBase=16]", Description: "Set inputs, then evaluate"},
		},
		Notes: []string{
			"Other options are treated as inputs, exactly like \\input",
			"Results with an input error are shown but not recorded",
		},
	}
}

// Execute evaluates the open calculator and prints its outputs.
func (c *CalcCommand) Execute(args map[string]string, _ string) error {
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return err
	}

	quiet := hasFlag(args, "quiet")
	values := make(map[string]string, len(args))
	for k, v := range args {
		if k != "quiet" {
			values[k] = v
		}
	}
	if len(values) > 0 {
		if err := workbench.SetInputs(values); err != nil {
			return err
		}
	}

	ev, err := workbench.Results()
	if err != nil {
		return err
	}
	p := printer()
	if ev == nil {
		p.Warning("The calculator could not produce a result for these inputs")
		return nil
	}
	p.Results(ev.Outputs)

	if quiet || ev.Failed() {
		return nil
	}
	headline, ok := ev.Headline()
	if !ok {
		return nil
	}
	history, err := service[*services.HistoryService]("history")
	if err != nil {
		logger.Debug("History unavailable", "error", err)
		return nil
	}
	def := workbench.Current()
	if _, err := history.Add(def, workbench.Inputs(), headline.Display()); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	if metrics, err := service[*services.MetricsService]("metrics"); err == nil {
		metrics.SetHistorySize(history.Len())
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&CalcCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register calc command: %v", err))
	}
}

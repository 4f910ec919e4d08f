package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// NoteCommand implements the \note command for the dashboard notepad.
type NoteCommand struct{}

// Name returns the command name "note" for registration and lookup.
func (c *NoteCommand) Name() string {
	return "note"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *NoteCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the note command does.
func (c *NoteCommand) Description() string {
	return "Show, replace or extend the notepad"
}

// Usage returns the syntax and usage examples for the note command.
func (c *NoteCommand) Usage() string {
	return "\\note[append, clear] [text]"
}

// HelpInfo returns structured help information for the note command.
func (c *NoteCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "append", Description: "Add the text as a new line", Type: "bool", Default: "false"},
			{Name: "clear", Description: "Empty the notepad", Type: "bool", Default: "false"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\note", Description: "Show the notepad"},
			{Command: "\\note Loan rate 4.2%", Description: "Replace the notepad"},
			{Command: "\\note[append] Ask about fees", Description: "Add a line"},
		},
	}
}

// Execute reads or writes the note.
func (c *NoteCommand) Execute(args map[string]string, input string) error {
	notes, err := service[*services.NotesService]("notes")
	if err != nil {
		return err
	}
	p := printer()

	switch {
	case hasFlag(args, "clear"):
		if err := notes.SetNote(""); err != nil {
			return err
		}
		p.Success("Notepad cleared")
	case strings.TrimSpace(input) == "":
		if notes.Note() == "" {
			p.Info("Notepad is empty")
			return nil
		}
		p.Block(notes.Note())
	case hasFlag(args, "append") && notes.Note() != "":
		if err := notes.SetNote(notes.Note() + "\n" + input); err != nil {
			return err
		}
		p.Success("Note updated")
	default:
		if err := notes.SetNote(input); err != nil {
			return err
		}
		p.Success("Note saved")
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&NoteCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register note command: %v", err))
	}
}

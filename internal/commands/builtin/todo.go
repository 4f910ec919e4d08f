package builtin

import (
	"fmt"
	"strings"

	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// TodoCommand implements the \todo command for the dashboard task list.
type TodoCommand struct{}

// Name returns the command name "todo" for registration and lookup.
func (c *TodoCommand) Name() string {
	return "todo"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *TodoCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the todo command does.
func (c *TodoCommand) Description() string {
	return "List, add, complete or remove tasks"
}

// Usage returns the syntax and usage examples for the todo command.
func (c *TodoCommand) Usage() string {
	return "\\todo[done=N, rm=N] [text]"
}

// HelpInfo returns structured help information for the todo command.
func (c *TodoCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []calctypes.HelpOption{
			{Name: "done", Description: "Toggle completion of a task by position or id", Type: "string"},
			{Name: "rm", Description: "Remove a task by position or id", Type: "string"},
		},
		Examples: []calctypes.HelpExample{
			{Command: "\\todo", Description: "List tasks, newest first"},
			{Command: "\\todo Compare mortgage offers", Description: "Add a task"},
			{Command: "\\todo[done=1]", Description: "Tick the newest task"},
			{Command: "\\todo[rm=2]", Description: "Remove the second task"},
		},
		Notes: []string{"Positions are the numbers shown by \\todo"},
	}
}

// Execute dispatches on the given option.
func (c *TodoCommand) Execute(args map[string]string, input string) error {
	notes, err := service[*services.NotesService]("notes")
	if err != nil {
		return err
	}
	p := printer()

	if ref, ok := args["done"]; ok {
		todo, err := notes.ToggleTodo(ref)
		if err != nil {
			return err
		}
		if todo.Done {
			p.Success(fmt.Sprintf("Completed: %s", todo.Text))
		} else {
			p.Success(fmt.Sprintf("Reopened: %s", todo.Text))
		}
		return nil
	}
	if ref, ok := args["rm"]; ok {
		todo, err := notes.RemoveTodo(ref)
		if err != nil {
			return err
		}
		p.Success(fmt.Sprintf("Removed: %s", todo.Text))
		return nil
	}
	if strings.TrimSpace(input) != "" {
		todo, err := notes.AddTodo(input)
		if err != nil {
			return err
		}
		p.Success(fmt.Sprintf("Added: %s", todo.Text))
		return nil
	}

	todos := notes.Todos()
	if len(todos) == 0 {
		p.Info("No tasks")
		return nil
	}
	for i, todo := range todos {
		p.Println(todoLine(i+1, todo))
	}
	return nil
}

func todoLine(pos int, todo calctypes.Todo) string {
	mark := " "
	if todo.Done {
		mark = "x"
	}
	return fmt.Sprintf("%3d. [%s] %s", pos, mark, todo.Text)
}

func init() {
	if err := commands.GlobalRegistry.Register(&TodoCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register todo command: %v", err))
	}
}

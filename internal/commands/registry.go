// Package commands provides command registration and execution for calchub.
// Commands register themselves with the global registry during initialization and
// are looked up by name when a parsed input line is executed.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"calchub/internal/logger"
	"calchub/internal/parser"
	"calchub/pkg/calctypes"
)

// ErrExit is returned by a command that asks the session to end.
var ErrExit = errors.New("exit requested")

// CommentPrefix starts a line that is ignored by the shell and by scripts.
const CommentPrefix = "%%"

// Registry manages command registration and lookup for calchub commands.
// It provides thread-safe registration and retrieval of commands by name.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]calctypes.Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]calctypes.Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty or if a command with the same name is already registered.
func (r *Registry) Register(cmd calctypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
	return nil
}

// Unregister removes a command from the registry by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (calctypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns every registered command sorted by name.
func (r *Registry) GetAll() []calctypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]calctypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// CommandNames returns the sorted command names.
func (r *Registry) CommandNames() []string {
	all := r.GetAll()
	names := make([]string, len(all))
	for i, cmd := range all {
		names[i] = cmd.Name()
	}
	return names
}

// HelpInfo returns the structured help of a command.
func (r *Registry) HelpInfo(name string) (calctypes.HelpInfo, bool) {
	cmd, ok := r.Get(name)
	if !ok {
		return calctypes.HelpInfo{}, false
	}
	return cmd.HelpInfo(), true
}

// Execute runs a command by name with the provided arguments and input.
func (r *Registry) Execute(name string, args map[string]string, input string) error {
	cmd, exists := r.Get(name)
	if !exists {
		return fmt.Errorf("unknown command: %s", name)
	}
	return cmd.Execute(args, input)
}

// GetParseMode returns the parse mode for a command by name.
// Returns ParseModeKeyValue as default if the command is not found.
func (r *Registry) GetParseMode(name string) calctypes.ParseMode {
	cmd, exists := r.Get(name)
	if !exists {
		return calctypes.ParseModeKeyValue
	}
	return cmd.ParseMode()
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// ExecuteLine parses one input line and runs it. Blank lines and comments do nothing.
// Raw-mode commands receive everything after the command name, brackets included.
func (r *Registry) ExecuteLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, CommentPrefix) {
		return nil
	}

	cmd := parser.ParseInput(line)
	args := cmd.Options
	input := cmd.Message
	if r.GetParseMode(cmd.Name) == calctypes.ParseModeRaw {
		args = map[string]string{}
		if cmd.BracketContent != "" {
			input = strings.TrimSpace("[" + cmd.BracketContent + "] " + cmd.Message)
		}
	}

	logger.CommandExecution(cmd.Name, args)
	return r.Execute(cmd.Name, args, input)
}

// RunScript executes a script line by line and stops at the first failing line.
// An exit request ends the script without an error.
func (r *Registry) RunScript(script string) error {
	scanner := bufio.NewScanner(strings.NewReader(script))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		err := r.ExecuteLine(scanner.Text())
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

// GlobalRegistry is the global command registry instance used throughout calchub.
// Commands register themselves with this instance during initialization.
var GlobalRegistry = NewRegistry()

// GetGlobalRegistry returns the global command registry.
func GetGlobalRegistry() *Registry {
	return GlobalRegistry
}

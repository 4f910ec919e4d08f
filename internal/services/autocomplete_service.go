package services

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"calchub/pkg/calctypes"
)

// CommandSource lists the commands available for completion.
type CommandSource interface {
	CommandNames() []string
	HelpInfo(name string) (calctypes.HelpInfo, bool)
}

// calculatorCommands take a calculator reference as their message.
var calculatorCommands = []string{"open", "fav"}

var _ readline.AutoCompleter = (*AutoCompleteService)(nil)

// AutoCompleteService provides tab completion for commands, calculator ids and options.
// It implements the readline.AutoCompleter interface to integrate with ishell.
type AutoCompleteService struct {
	initialized bool
	commands    CommandSource
	catalog     *CatalogService
	workbench   *WorkbenchService
}

// NewAutoCompleteService creates a completer over the given catalog and workbench.
// Either may be nil; the command source is attached later with SetCommandSource.
func NewAutoCompleteService(catalog *CatalogService, workbench *WorkbenchService) *AutoCompleteService {
	return &AutoCompleteService{catalog: catalog, workbench: workbench}
}

// Name returns the service name "autocomplete" for registration.
func (a *AutoCompleteService) Name() string {
	return "autocomplete"
}

// Initialize sets up the AutoCompleteService for operation.
func (a *AutoCompleteService) Initialize() error {
	a.initialized = true
	return nil
}

// SetCommandSource attaches the command registry.
func (a *AutoCompleteService) SetCommandSource(source CommandSource) {
	a.commands = source
}

// Do implements the readline.AutoCompleter interface.
func (a *AutoCompleteService) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if !a.initialized {
		return nil, 0
	}

	lineStr := string(line)
	if pos > len(line) {
		pos = len(line)
	}
	// pos counts runes; work on the byte prefix up to the cursor
	prefix := string(line[:pos])

	wordStart := findWordStart(prefix)
	currentWord := prefix[wordStart:]

	var suggestions [][]rune
	for _, completion := range a.getCompletions(lineStr, prefix, currentWord) {
		if strings.HasPrefix(completion, currentWord) {
			suggestions = append(suggestions, []rune(strings.TrimPrefix(completion, currentWord)))
		}
	}
	return suggestions, len([]rune(currentWord))
}

// Complete returns the full candidates for the word ending at the end of line.
func (a *AutoCompleteService) Complete(line string) []string {
	wordStart := findWordStart(line)
	return a.getCompletions(line, line, line[wordStart:])
}

// findWordStart returns the byte offset where the word before the cursor begins.
func findWordStart(prefix string) int {
	for i := len(prefix) - 1; i >= 0; i-- {
		switch prefix[i] {
		case ' ', '[', ']', ',', '=':
			return i + 1
		}
	}
	return 0
}

func (a *AutoCompleteService) getCompletions(line, prefix, currentWord string) []string {
	if isInsideBrackets(prefix) {
		if isAfterHelpCommand(prefix) {
			return a.commandNames(currentWord, "")
		}
		return a.optionCompletions(line, currentWord)
	}

	if isAfterHelpCommand(prefix) {
		return a.commandNames(currentWord, "")
	}

	if name, ok := messageCommand(prefix); ok {
		for _, cmd := range calculatorCommands {
			if name == cmd {
				return a.calculatorIDs(currentWord)
			}
		}
		return []string{}
	}

	if strings.HasPrefix(currentWord, "\\") {
		return a.commandNames(strings.TrimPrefix(currentWord, "\\"), "\\")
	}
	if strings.HasPrefix(line, "\\") {
		return []string{}
	}
	// Plain lines are key sequences; offer commands only for an empty first word.
	if currentWord == "" && strings.TrimSpace(prefix) == "" {
		return a.commandNames("", "\\")
	}
	return []string{}
}

func (a *AutoCompleteService) commandNames(prefix, lead string) []string {
	completions := make([]string, 0)
	if a.commands == nil {
		return completions
	}
	for _, name := range a.commands.CommandNames() {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, lead+name)
		}
	}
	sort.Strings(completions)
	return completions
}

func (a *AutoCompleteService) calculatorIDs(prefix string) []string {
	completions := make([]string, 0)
	if a.catalog == nil {
		return completions
	}
	for _, id := range a.catalog.IDs() {
		if strings.HasPrefix(id, prefix) {
			completions = append(completions, id)
		}
	}
	sort.Strings(completions)
	return completions
}

// optionCompletions offers option names inside brackets. For \input the options are
// the input ids of the open calculator.
func (a *AutoCompleteService) optionCompletions(line, currentWord string) []string {
	completions := make([]string, 0)
	name := extractCommandName(line)
	if name == "" {
		return completions
	}

	if name == "input" && a.workbench != nil {
		if def := a.workbench.Current(); def != nil {
			for _, in := range def.Inputs {
				if strings.HasPrefix(in.ID, currentWord) {
					completions = append(completions, in.ID+"=")
				}
			}
		}
		sort.Strings(completions)
		return completions
	}

	if a.commands == nil {
		return completions
	}
	info, ok := a.commands.HelpInfo(name)
	if !ok {
		return completions
	}
	for _, option := range info.Options {
		if !strings.HasPrefix(option.Name, currentWord) {
			continue
		}
		if option.Type == "bool" {
			completions = append(completions, option.Name)
		} else {
			completions = append(completions, option.Name+"=")
		}
	}
	sort.Strings(completions)
	return completions
}

// extractCommandName returns the command name of a line starting with a backslash.
func extractCommandName(line string) string {
	if !strings.HasPrefix(line, "\\") {
		return ""
	}
	line = line[1:]
	if idx := strings.IndexAny(line, "[ "); idx != -1 {
		return line[:idx]
	}
	return line
}

// messageCommand reports the command name when the cursor sits in the message part
// of a bracket-free command line.
func messageCommand(prefix string) (string, bool) {
	if !strings.HasPrefix(prefix, "\\") {
		return "", false
	}
	space := strings.Index(prefix, " ")
	if space == -1 {
		return "", false
	}
	head := prefix[1:space]
	if idx := strings.Index(head, "["); idx != -1 {
		if !strings.HasSuffix(head, "]") {
			return "", false
		}
		head = head[:idx]
	}
	return head, true
}

// isInsideBrackets reports whether the last [ before the cursor is still open.
func isInsideBrackets(prefix string) bool {
	return strings.LastIndex(prefix, "[") > strings.LastIndex(prefix, "]")
}

// isAfterHelpCommand handles both \help command and \help[command].
func isAfterHelpCommand(prefix string) bool {
	if strings.HasPrefix(prefix, "\\help ") {
		return true
	}
	return strings.HasPrefix(prefix, "\\help[") && isInsideBrackets(prefix)
}

// Package parser turns shell input lines into commands.
// A command line has the form \name[key=value, flag, key="quoted, value"] message.
// Lines without a leading backslash become the default command with the whole line as message.
package parser

import (
	"sort"
	"strings"
)

// DefaultCommand receives input lines that do not start with a backslash.
// In calchub those are key sequences for the open calculator.
const DefaultCommand = "key"

// Command is a parsed input line.
type Command struct {
	Name           string
	BracketContent string
	Options        map[string]string
	Message        string
}

// ParseInput parses a line. It never fails: malformed bracket syntax is kept in the name
// so the command lookup reports it.
func ParseInput(input string) *Command {
	input = strings.TrimSpace(input)
	cmd := &Command{Options: make(map[string]string)}

	if !strings.HasPrefix(input, "\\") {
		cmd.Name = DefaultCommand
		cmd.Message = input
		return cmd
	}

	input = strings.TrimSpace(input[1:])
	if input == "" {
		cmd.Name = DefaultCommand
		return cmd
	}

	head, message := splitHead(input)
	cmd.Message = message

	open := strings.Index(head, "[")
	if open > 0 && strings.HasSuffix(head, "]") {
		cmd.Name = head[:open]
		cmd.BracketContent = strings.TrimSpace(head[open+1 : len(head)-1])
		cmd.Options = ParseKeyValueOptions(cmd.BracketContent)
		return cmd
	}

	cmd.Name = head
	return cmd
}

// splitHead separates "name[...]" from the message. Spaces inside brackets
// belong to the head.
func splitHead(input string) (string, string) {
	depth := 0
	var quote byte
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			if depth > 0 {
				quote = c
			}
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case c == ' ' || c == '\t':
			if depth == 0 {
				return input[:i], strings.TrimSpace(input[i+1:])
			}
		}
	}
	return input, ""
}

// ParseKeyValueOptions parses "a=1, flag, b='x, y'" into a map. Flags map to "".
func ParseKeyValueOptions(content string) map[string]string {
	options := make(map[string]string)
	for _, part := range splitByComma(content) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, found := strings.Cut(part, "="); found {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			options[key] = Unquote(strings.TrimSpace(value))
			continue
		}
		options[part] = ""
	}
	return options
}

// splitByComma splits on commas outside single or double quotes.
func splitByComma(s string) []string {
	var parts []string
	var current strings.Builder
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
			current.WriteByte(c)
		case quote != 0 && c == quote:
			quote = 0
			current.WriteByte(c)
		case quote == 0 && c == ',':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// Unquote strips one pair of matching single or double quotes.
func Unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// String renders the command back into input syntax with options sorted by key.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString("\\" + c.Name)
	if len(c.Options) > 0 {
		keys := make([]string, 0, len(c.Options))
		for k := range c.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("[")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			if v := c.Options[k]; v != "" {
				b.WriteString(k + "=\"" + v + "\"")
			} else {
				b.WriteString(k)
			}
		}
		b.WriteString("]")
	}
	if c.Message != "" {
		b.WriteString(" " + c.Message)
	}
	return b.String()
}

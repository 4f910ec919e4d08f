// Package calctypes defines command system types for calchub.
// This file contains the types for command parsing and the structured help system.
package calctypes

// ParseMode defines how command arguments are parsed from user input.
type ParseMode int

const (
	// ParseModeKeyValue parses arguments as key=value pairs within brackets
	ParseModeKeyValue ParseMode = iota
	// ParseModeRaw treats the entire input as raw text without parsing
	ParseModeRaw
)

// String returns a readable name for the parse mode.
func (p ParseMode) String() string {
	switch p {
	case ParseModeKeyValue:
		return "Key-Value (supports [key=value] syntax)"
	case ParseModeRaw:
		return "Raw (passes input directly without parsing)"
	default:
		return "Unknown"
	}
}

// HelpInfo represents structured help information for a command.
// It provides rich help data that can be rendered in both plain text and markdown.
type HelpInfo struct {
	Command     string        `json:"command"`            // Command name
	Description string        `json:"description"`        // Brief description of what the command does
	Usage       string        `json:"usage"`              // Usage syntax
	ParseMode   ParseMode     `json:"parse_mode"`         // How the command parses arguments
	Options     []HelpOption  `json:"options,omitempty"`  // Command options/parameters
	Examples    []HelpExample `json:"examples,omitempty"` // Usage examples
	Notes       []string      `json:"notes,omitempty"`    // Additional notes or warnings
}

// HelpOption represents a command option/parameter with detailed information.
type HelpOption struct {
	Name        string `json:"name"`              // Option name
	Description string `json:"description"`       // What this option does
	Required    bool   `json:"required"`          // Whether this option is required
	Type        string `json:"type"`              // Data type (string, bool, int, etc.)
	Default     string `json:"default,omitempty"` // Default value if not specified
}

// HelpExample represents a usage example with explanation.
type HelpExample struct {
	Command     string `json:"command"`     // Example command
	Description string `json:"description"` // What this example demonstrates
}

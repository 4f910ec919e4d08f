// Package output provides the console printer used by every calchub command.
// Styling is injected through StyleProvider so the package does not depend on the
// theme service; without a provider the printer falls back to plain prefixes.
package output

// StyleProvider is implemented by styling services (the theme service) and by test doubles.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "info" or "error".
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether styles can be used; otherwise the printer prints plain text.
	IsAvailable() bool
}

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// Mode selects how the printer renders.
type Mode int

const (
	// ModeAuto styles output when a provider is set and the terminal supports colour.
	ModeAuto Mode = iota
	// ModeStyled always applies the style provider.
	ModeStyled
	// ModePlain uses plain text with semantic prefixes.
	ModePlain
	// ModeJSON writes one JSON object per message.
	ModeJSON
)

// SemanticType names the meaning of a piece of output.
type SemanticType string

// Semantic types understood by the printer and the theme service.
const (
	SemanticPlain     SemanticType = "plain"
	SemanticInfo      SemanticType = "info"
	SemanticSuccess   SemanticType = "success"
	SemanticWarning   SemanticType = "warning"
	SemanticError     SemanticType = "error"
	SemanticCommand   SemanticType = "command"
	SemanticKeyword   SemanticType = "keyword"
	SemanticVariable  SemanticType = "variable"
	SemanticHighlight SemanticType = "highlight"
	SemanticBold      SemanticType = "bold"
)

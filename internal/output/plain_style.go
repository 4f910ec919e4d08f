package output

import "strings"

// PlainTextStyle renders text with an optional marker prefix.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a plain style with the given prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.
func (p *PlainTextStyle) Render(text ...string) string {
	return p.prefix + strings.Join(text, " ")
}

// PlainStyleProvider marks semantic output with symbols instead of colours.
type PlainStyleProvider struct{}

// NewPlainStyleProvider creates a plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle implements StyleProvider.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return NewPlainTextStyle("✓ ")
	case SemanticWarning:
		return NewPlainTextStyle("⚠ ")
	case SemanticError:
		return NewPlainTextStyle("✗ ")
	case SemanticInfo:
		return NewPlainTextStyle("ℹ ")
	case SemanticCommand:
		return NewPlainTextStyle("\\")
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable implements StyleProvider.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}

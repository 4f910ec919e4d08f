// Package calctypes defines theme-related data structures for calchub's rendering system.
package calctypes

// ThemeConfig represents a theme configuration loaded from YAML.
type ThemeConfig struct {
	// Name is the theme identifier (e.g., "default", "dark", "light", "plain")
	Name string `yaml:"name" json:"name"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Styles contains the color and style definitions for different semantic elements
	Styles ThemeStyles `yaml:"styles" json:"styles"`
}

// ThemeStyles defines the styling configuration for different semantic elements.
type ThemeStyles struct {
	Keyword   StyleConfig `yaml:"keyword" json:"keyword"`
	Variable  StyleConfig `yaml:"variable" json:"variable"`
	Command   StyleConfig `yaml:"command" json:"command"`
	Success   StyleConfig `yaml:"success" json:"success"`
	Error     StyleConfig `yaml:"error" json:"error"`
	Warning   StyleConfig `yaml:"warning" json:"warning"`
	Info      StyleConfig `yaml:"info" json:"info"`
	Highlight StyleConfig `yaml:"highlight" json:"highlight"`
	Bold      StyleConfig `yaml:"bold" json:"bold"`
	Italic    StyleConfig `yaml:"italic" json:"italic"`
	Underline StyleConfig `yaml:"underline" json:"underline"`

	// Key cap styles for the physical calculator face
	KeyNumber   StyleConfig `yaml:"key_number" json:"key_number"`
	KeyOperator StyleConfig `yaml:"key_operator" json:"key_operator"`
	KeyEquals   StyleConfig `yaml:"key_equals" json:"key_equals"`
	KeyFunction StyleConfig `yaml:"key_function" json:"key_function"`
	KeyScience  StyleConfig `yaml:"key_science" json:"key_science"`
	Screen      StyleConfig `yaml:"screen" json:"screen"`
}

// StyleConfig defines the visual styling for a semantic element.
// Colors can be plain strings or adaptive {light, dark} maps.
type StyleConfig struct {
	Foreground    interface{} `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background    interface{} `yaml:"background,omitempty" json:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty" json:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty" json:"strikethrough,omitempty"`
}

// ThemeFile represents a complete theme file loaded from YAML.
type ThemeFile struct {
	ThemeConfig `yaml:",inline" json:",inline"`
}

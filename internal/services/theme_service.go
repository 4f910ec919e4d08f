package services

import (
	"fmt"
	"sort"
	"strings"

	"calchub/internal/data/embedded"
	"calchub/internal/keypad"
	"calchub/internal/logger"
	"calchub/internal/output"
	"calchub/pkg/calctypes"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
	"gopkg.in/yaml.v3"
)

// ThemeService loads the embedded themes and tracks the active one.
type ThemeService struct {
	initialized bool
	themes      map[string]*Theme
	active      string
}

// Theme holds the lipgloss styles for semantic output and for the calculator face.
type Theme struct {
	Name      string
	Keyword   lipgloss.Style
	Variable  lipgloss.Style
	Command   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Highlight lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Underline lipgloss.Style
	Face      keypad.FaceStyles
}

// NewThemeService creates a new ThemeService instance with themes loaded from YAML.
func NewThemeService() *ThemeService {
	service := &ThemeService{
		themes: make(map[string]*Theme),
		active: "default",
	}
	service.loadThemesFromYAML()
	return service
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// Initialize sets up the ThemeService for operation.
func (t *ThemeService) Initialize() error {
	t.initialized = true
	return nil
}

func (t *ThemeService) loadThemesFromYAML() {
	themeFiles := map[string][]byte{
		"default": embedded.DefaultThemeData,
		"dark":    embedded.DarkThemeData,
		"light":   embedded.LightThemeData,
		"plain":   embedded.PlainThemeData,
	}

	for themeName, themeData := range themeFiles {
		theme, err := t.loadThemeFile(themeData)
		if err != nil {
			logger.Error("Failed to load theme", "theme", themeName, "error", err)
			t.themes[themeName] = plainTheme(themeName)
			continue
		}
		t.themes[themeName] = theme
	}

	if _, exists := t.themes["plain"]; !exists {
		t.themes["plain"] = plainTheme("plain")
	}
}

func (t *ThemeService) loadThemeFile(data []byte) (*Theme, error) {
	var themeFile calctypes.ThemeFile
	if err := yaml.Unmarshal(data, &themeFile); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return t.convertThemeConfig(&themeFile.ThemeConfig), nil
}

func (t *ThemeService) convertThemeConfig(config *calctypes.ThemeConfig) *Theme {
	s := config.Styles
	return &Theme{
		Name:      config.Name,
		Keyword:   t.createStyle(s.Keyword),
		Variable:  t.createStyle(s.Variable),
		Command:   t.createStyle(s.Command),
		Success:   t.createStyle(s.Success),
		Error:     t.createStyle(s.Error),
		Warning:   t.createStyle(s.Warning),
		Info:      t.createStyle(s.Info),
		Highlight: t.createStyle(s.Highlight),
		Bold:      t.createStyle(s.Bold),
		Italic:    t.createStyle(s.Italic),
		Underline: t.createStyle(s.Underline),
		Face: keypad.FaceStyles{
			Screen:   t.createStyle(s.Screen),
			Number:   t.createStyle(s.KeyNumber),
			Operator: t.createStyle(s.KeyOperator),
			Equals:   t.createStyle(s.KeyEquals),
			Function: t.createStyle(s.KeyFunction),
			Science:  t.createStyle(s.KeyScience),
		},
	}
}

// createStyle converts a StyleConfig to a lipgloss.Style.
func (t *ThemeService) createStyle(config calctypes.StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if config.Foreground != nil {
		if color := parseColor(config.Foreground); color != nil {
			style = style.Foreground(color)
		}
	}
	if config.Background != nil {
		if color := parseColor(config.Background); color != nil {
			style = style.Background(color)
		}
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	if config.Strikethrough != nil && *config.Strikethrough {
		style = style.Strikethrough(true)
	}
	return style
}

// parseColor accepts a colour string or an adaptive {light, dark} map.
func parseColor(colorValue interface{}) lipgloss.TerminalColor {
	switch v := colorValue.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

func plainTheme(name string) *Theme {
	return &Theme{
		Name:      name,
		Keyword:   lipgloss.NewStyle(),
		Variable:  lipgloss.NewStyle(),
		Command:   lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle(),
		Info:      lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle(),
		Bold:      lipgloss.NewStyle(),
		Italic:    lipgloss.NewStyle(),
		Underline: lipgloss.NewStyle(),
		Face:      keypad.PlainFaceStyles(),
	}
}

// GetAvailableThemes returns the theme names in sorted order.
func (t *ThemeService) GetAvailableThemes() []string {
	themes := make([]string, 0, len(t.themes))
	for name := range t.themes {
		themes = append(themes, name)
	}
	sort.Strings(themes)
	return themes
}

// GetThemeByName resolves a theme case-insensitively; "dark1" is an alias of "dark".
// Unknown names fall back to the plain theme.
func (t *ThemeService) GetThemeByName(theme string) *Theme {
	normalized := strings.ToLower(strings.TrimSpace(theme))
	if normalized == "dark1" {
		normalized = "dark"
	}
	if normalized == "" {
		normalized = "plain"
	}
	if themeObj, exists := t.themes[normalized]; exists {
		return themeObj
	}
	logger.Debug("Invalid theme requested, using plain theme", "theme", theme, "available", t.GetAvailableThemes())
	return t.themes["plain"]
}

// SetActive switches the active theme. Unknown names are rejected.
func (t *ThemeService) SetActive(name string) error {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "dark1" {
		normalized = "dark"
	}
	if _, exists := t.themes[normalized]; !exists {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(t.GetAvailableThemes(), ", "))
	}
	t.active = normalized
	return nil
}

// Active returns the active theme.
func (t *ThemeService) Active() *Theme {
	return t.GetThemeByName(t.active)
}

// GetStyle implements output.StyleProvider for the active theme.
func (t *ThemeService) GetStyle(semantic string) output.TextStyle {
	return t.Active().Style(output.SemanticType(semantic))
}

// IsAvailable implements output.StyleProvider.
func (t *ThemeService) IsAvailable() bool {
	return t.initialized && t.active != "plain"
}

// Style returns the theme's style for a semantic type.
func (th *Theme) Style(semantic output.SemanticType) lipgloss.Style {
	switch semantic {
	case output.SemanticKeyword:
		return th.Keyword
	case output.SemanticVariable:
		return th.Variable
	case output.SemanticCommand:
		return th.Command
	case output.SemanticSuccess:
		return th.Success
	case output.SemanticError:
		return th.Error
	case output.SemanticWarning:
		return th.Warning
	case output.SemanticInfo:
		return th.Info
	case output.SemanticHighlight:
		return th.Highlight
	case output.SemanticBold:
		return th.Bold
	default:
		return lipgloss.NewStyle()
	}
}

// CreateList creates a new list with theme styling applied.
func (th *Theme) CreateList() *list.List {
	return list.New().EnumeratorStyle(th.Keyword)
}

// CreateSimpleList creates a list from items.
func (th *Theme) CreateSimpleList(items []string) *list.List {
	l := th.CreateList()
	for _, item := range items {
		l.Item(item)
	}
	return l
}

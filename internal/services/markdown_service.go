package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"calchub/internal/logger"
)

// MarkdownService renders help pages and calculator descriptions with glamour.
type MarkdownService struct {
	initialized bool
	renderer    *glamour.TermRenderer
	wordWrap    int
}

// NewMarkdownService creates a new MarkdownService instance.
func NewMarkdownService() *MarkdownService {
	return &MarkdownService{wordWrap: 80}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return "markdown"
}

// Initialize creates the default renderer with terminal style detection.
func (m *MarkdownService) Initialize() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.wordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	m.renderer = renderer
	m.initialized = true
	logger.Debug("MarkdownService initialized successfully")
	return nil
}

// Render renders markdown with the auto-detected style.
func (m *MarkdownService) Render(markdown string) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// RenderWithTheme renders markdown with the glamour style matching a calchub theme.
func (m *MarkdownService) RenderWithTheme(markdown string, themeName string) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	style := GlamourStyle(themeName)
	if style == "auto" {
		return m.Render(markdown)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(m.wordWrap),
	)
	if err != nil {
		logger.Debug("Failed to create renderer with style, falling back to default", "style", style, "error", err)
		return m.Render(markdown)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	return rendered, nil
}

// SetWordWrap changes the wrap width of subsequent renders.
func (m *MarkdownService) SetWordWrap(width int) error {
	if width <= 0 {
		return fmt.Errorf("word wrap width must be positive, got %d", width)
	}
	m.wordWrap = width
	if m.initialized {
		m.initialized = false
		return m.Initialize()
	}
	return nil
}

// GlamourStyle maps a calchub theme name to a glamour standard style.
func GlamourStyle(themeName string) string {
	switch strings.ToLower(themeName) {
	case "dark", "dark1":
		return "dark"
	case "light":
		return "light"
	case "plain":
		return "notty"
	default:
		return "auto"
	}
}

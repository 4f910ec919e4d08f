package services

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/output"
)

func TestThemeService_LoadsEmbeddedThemes(t *testing.T) {
	ts := NewThemeService()
	require.NoError(t, ts.Initialize())

	assert.Equal(t, "theme", ts.Name())
	assert.Equal(t, []string{"dark", "default", "light", "plain"}, ts.GetAvailableThemes())
	assert.Equal(t, "default", ts.Active().Name)
}

func TestThemeService_GetThemeByName(t *testing.T) {
	ts := NewThemeService()

	tests := []struct {
		input    string
		expected string
	}{
		{"dark", "dark"},
		{"DARK", "dark"},
		{"dark1", "dark"},
		{" light ", "light"},
		{"", "plain"},
		{"neon", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ts.GetThemeByName(tt.input).Name)
		})
	}
}

func TestThemeService_SetActive(t *testing.T) {
	ts := NewThemeService()
	require.NoError(t, ts.Initialize())

	require.NoError(t, ts.SetActive("Light"))
	assert.Equal(t, "light", ts.Active().Name)
	assert.True(t, ts.IsAvailable())

	err := ts.SetActive("neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: dark, default, light, plain")
	assert.Equal(t, "light", ts.Active().Name)

	require.NoError(t, ts.SetActive("plain"))
	assert.False(t, ts.IsAvailable())
}

func TestThemeService_NotAvailableBeforeInitialize(t *testing.T) {
	ts := NewThemeService()
	assert.False(t, ts.IsAvailable())
}

func TestThemeService_StyleProvider(t *testing.T) {
	ts := NewThemeService()
	require.NoError(t, ts.Initialize())
	require.NoError(t, ts.SetActive("dark"))

	var provider output.StyleProvider = ts
	rendered := provider.GetStyle(string(output.SemanticError)).Render("boom")
	assert.Equal(t, "boom", ansi.Strip(rendered))

	plain := ts.Active().Style(output.SemanticPlain).Render("text")
	assert.Equal(t, "text", plain)
}

func TestTheme_CreateSimpleList(t *testing.T) {
	ts := NewThemeService()
	l := ts.GetThemeByName("plain").CreateSimpleList([]string{"math-basic", "math-fractions"})
	text := ansi.Strip(l.String())
	assert.Contains(t, text, "math-basic")
	assert.Contains(t, text, "math-fractions")
}

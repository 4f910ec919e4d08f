package services

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_Render(t *testing.T) {
	m := NewMarkdownService()
	_, err := m.Render("# Title")
	assert.EqualError(t, err, "markdown service not initialized")

	require.NoError(t, m.Initialize())
	assert.Equal(t, "markdown", m.Name())

	out, err := m.Render("# Fraction Solver\n\nAdds **fractions**.")
	require.NoError(t, err)
	text := ansi.Strip(out)
	assert.Contains(t, text, "Fraction Solver")
	assert.Contains(t, text, "fractions")

	_, err = m.Render("   ")
	assert.EqualError(t, err, "markdown content cannot be empty")
}

func TestMarkdownService_RenderWithTheme(t *testing.T) {
	m := NewMarkdownService()
	require.NoError(t, m.Initialize())

	for _, theme := range []string{"plain", "dark", "light", "default"} {
		t.Run(theme, func(t *testing.T) {
			out, err := m.RenderWithTheme("Press `7 + 3 =`", theme)
			require.NoError(t, err)
			assert.Contains(t, ansi.Strip(out), "7 + 3 =")
		})
	}
}

func TestMarkdownService_SetWordWrap(t *testing.T) {
	m := NewMarkdownService()
	assert.Error(t, m.SetWordWrap(0))
	require.NoError(t, m.SetWordWrap(40))
	require.NoError(t, m.Initialize())
	require.NoError(t, m.SetWordWrap(60))

	_, err := m.Render("text")
	assert.NoError(t, err)
}

func TestGlamourStyle(t *testing.T) {
	assert.Equal(t, "dark", GlamourStyle("dark1"))
	assert.Equal(t, "dark", GlamourStyle("Dark"))
	assert.Equal(t, "light", GlamourStyle("light"))
	assert.Equal(t, "notty", GlamourStyle("plain"))
	assert.Equal(t, "auto", GlamourStyle("default"))
}

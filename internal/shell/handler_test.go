package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/output"
	"calchub/internal/services"
	"calchub/internal/testutils"
)

// MockConsole records what the handler prints, like an ishell context would show it.
type MockConsole struct {
	output        strings.Builder
	printfCalled  bool
	printlnCalled bool
}

func (m *MockConsole) Printf(format string, args ...interface{}) {
	m.printfCalled = true
	m.output.WriteString(fmt.Sprintf(format, args...))
}

func (m *MockConsole) Println(args ...interface{}) {
	m.printlnCalled = true
	m.output.WriteString(fmt.Sprintln(args...))
}

func (m *MockConsole) GetOutput() string {
	return m.output.String()
}

// setupTestEnvironment initializes every service in test mode and captures printer output.
func setupTestEnvironment(t *testing.T) *output.CaptureBuffer {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	testutils.ResetTestCounters()

	prevServices := services.GetGlobalRegistry()
	prevPrinter := output.GetGlobalPrinter()
	t.Cleanup(func() {
		require.NoError(t, Shutdown())
		services.SetGlobalRegistry(prevServices)
		output.SetGlobalPrinter(prevPrinter)
		viper.Reset()
	})

	viper.Reset()
	services.SetGlobalRegistry(services.NewRegistry())
	require.NoError(t, InitializeServices(true), "Failed to initialize test services")

	buf := output.NewCaptureBuffer()
	output.SetGlobalPrinter(output.NewPrinter(output.WithWriter(buf), output.TestMode()))
	return buf
}

func TestHandleLine_IgnoresBlankAndComments(t *testing.T) {
	buf := setupTestEnvironment(t)

	for _, line := range []string{"", "   ", "%% a comment", "  %% indented comment"} {
		console := &MockConsole{}
		assert.False(t, HandleLine(console, line))
		assert.Empty(t, console.GetOutput())
		assert.False(t, console.printfCalled)
		assert.False(t, console.printlnCalled)
	}
	assert.Empty(t, buf.String())
}

func TestHandleLine_ReportsErrors(t *testing.T) {
	setupTestEnvironment(t)

	console := &MockConsole{}
	assert.False(t, HandleLine(console, "\\bogus"))
	assert.Equal(t, "Error: unknown command: bogus\nType \\help for available commands\n", console.GetOutput())

	console = &MockConsole{}
	HandleLine(console, "\\help bogus")
	assert.Equal(t, "Error: command 'bogus' not found. Use \\help to see all available commands\n", console.GetOutput())
	assert.False(t, console.printlnCalled)
}

func TestHandleLine_Exit(t *testing.T) {
	setupTestEnvironment(t)
	console := &MockConsole{}
	assert.True(t, HandleLine(console, "\\exit"))
	assert.Empty(t, console.GetOutput())
}

func TestHandleLine_Session(t *testing.T) {
	buf := setupTestEnvironment(t)
	console := &MockConsole{}

	HandleLine(console, "\\open math-basic")
	buf.Reset()

	for _, line := range []string{
		"7 + 3 =",
		"× 2 =",
		"\\calc",
		"\\history",
		"\\todo buy milk",
		"\\todo",
		"\\timer",
		"\\close",
	} {
		HandleLine(console, line)
	}

	expected := `[7 + 3 =] 10
[10 × 2 =] 20
▸ Computed Value  20
  1. 2025-01-01 00:00:01  math-basic       20
✓ Added: buy milk
  1. [ ] buy milk
⏱ 00:00 (paused)
✓ Closed Normal Calculator
`
	testutils.AssertGolden(t, expected, buf.String())
	assert.Empty(t, console.GetOutput())
}

func TestInitializeServices_RegistersEverything(t *testing.T) {
	setupTestEnvironment(t)

	registry := services.GetGlobalRegistry()
	for _, name := range []string{
		"configuration", "catalog", "metrics", "workbench", "favorites", "history",
		"notes", "stopwatch", "theme", "markdown", "autocomplete",
	} {
		assert.True(t, registry.HasService(name), name)
	}

	config, err := services.Lookup[*services.ConfigurationService]("configuration")
	require.NoError(t, err)
	assert.True(t, config.IsTestMode())
	assert.Equal(t, "memory", string(config.StoreKind()))

	themes, err := services.Lookup[*services.ThemeService]("theme")
	require.NoError(t, err)
	assert.Equal(t, "default", themes.Active().Name)
}

func TestInitializeServices_TwiceKeepsStoreOpen(t *testing.T) {
	t.Setenv("CALCHUB_STORE", "sqlite")
	setupTestEnvironment(t)

	require.NoError(t, InitializeServices(true))

	favorites, err := services.Lookup[*services.FavoritesService]("favorites")
	require.NoError(t, err)
	added, err := favorites.Toggle("math-basic")
	require.NoError(t, err)
	assert.True(t, added)

	history, err := services.Lookup[*services.HistoryService]("history")
	require.NoError(t, err)
	assert.Equal(t, 0, history.Len())

	themes, err := services.Lookup[*services.ThemeService]("theme")
	require.NoError(t, err)
	assert.Equal(t, "default", themes.Active().Name)
}

func TestInitializeServices_ThemeFromEnvironment(t *testing.T) {
	t.Setenv("CALCHUB_THEME", "dark")
	setupTestEnvironment(t)

	themes, err := services.Lookup[*services.ThemeService]("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", themes.Active().Name)
}

func TestInitializeServices_UnknownThemeKeepsDefault(t *testing.T) {
	t.Setenv("CALCHUB_THEME", "neon")
	setupTestEnvironment(t)

	themes, err := services.Lookup[*services.ThemeService]("theme")
	require.NoError(t, err)
	assert.Equal(t, "default", themes.Active().Name)
}

func TestInitializeServices_CompletesCommands(t *testing.T) {
	setupTestEnvironment(t)

	autocomplete, err := services.Lookup[*services.AutoCompleteService]("autocomplete")
	require.NoError(t, err)
	assert.Contains(t, autocomplete.Complete("\\op"), "\\open")
	assert.Contains(t, autocomplete.Complete("\\open math-f"), "math-fractions")
}

func TestRunScript(t *testing.T) {
	buf := setupTestEnvironment(t)

	dir := testutils.CreateTempDir(t, map[string]string{
		"ok.calc":     "%% add\n\\open math-basic\n2 + 2 =\n\\close\n",
		"broken.calc": "\\open math-basic\n\\nope\n\\close\n",
		"exit.calc":   "\\note kept\n\\exit\n\\note lost\n",
		"notes.txt":   "\\note\n",
	})

	require.NoError(t, RunScript(filepath.Join(dir, "ok.calc")))
	assert.Contains(t, buf.String(), "[2 + 2 =] 4")

	err := RunScript(filepath.Join(dir, "broken.calc"))
	assert.EqualError(t, err, "broken.calc: line 2: unknown command: nope")

	require.NoError(t, RunScript(filepath.Join(dir, "exit.calc")))
	notes, err := services.Lookup[*services.NotesService]("notes")
	require.NoError(t, err)
	assert.Equal(t, "kept", notes.Note())

	err = RunScript(filepath.Join(dir, "notes.txt"))
	assert.EqualError(t, err, "script file must have .calc extension, got: .txt")

	err = RunScript(filepath.Join(dir, "missing.calc"))
	assert.Contains(t, err.Error(), "script file does not exist")

	err = RunScript(dir)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestShutdown_Idempotent(t *testing.T) {
	setupTestEnvironment(t)
	require.NoError(t, Shutdown())
	require.NoError(t, Shutdown())
	_, err := os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "calchub", "calchub.json"))
	assert.True(t, os.IsNotExist(err))
}

// Package shell provides the interactive shell interface and input processing for calchub.
// It integrates the command system with the ishell interactive environment and handles user input routing.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/abiosoft/ishell/v2"

	"calchub/internal/commands"
	_ "calchub/internal/commands/builtin" // Import for side effects (init functions)
	"calchub/internal/data/embedded"
	"calchub/internal/logger"
	"calchub/internal/output"
	"calchub/internal/services"
	"calchub/internal/store"
	"calchub/pkg/calctypes"
)

// Console is the part of an ishell context the input handler writes to.
type Console interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

var (
	storeMu     sync.Mutex
	activeStore store.Store
)

// ProcessInput handles user input from the interactive shell and executes commands.
func ProcessInput(c *ishell.Context) {
	if len(c.RawArgs) == 0 {
		return
	}
	if HandleLine(c, strings.Join(c.RawArgs, " ")) {
		c.Stop()
	}
}

// HandleLine executes one line and reports failures on the console.
// It returns true when the line asked the session to end.
func HandleLine(c Console, rawInput string) bool {
	rawInput = strings.TrimSpace(rawInput)
	if rawInput == "" || strings.HasPrefix(rawInput, commands.CommentPrefix) {
		return false
	}

	err := commands.GlobalRegistry.ExecuteLine(rawInput)
	if errors.Is(err, commands.ErrExit) {
		return true
	}
	if err != nil {
		logger.Error("Command failed", "command", rawInput, "error", err)
		c.Printf("Error: %s\n", err.Error())
		// Check if this looks like a help command to avoid infinite loops
		if !strings.Contains(strings.ToLower(rawInput), "help") {
			c.Println("Type \\help for available commands")
		}
	}
	return false
}

// InitializeServices sets up all required services for the calchub environment.
func InitializeServices(testMode bool) error {
	registry := services.GetGlobalRegistry()

	// Configuration comes first: the store and history limit depend on it.
	config := services.NewConfigurationService(nil)
	if testMode {
		config.Set(services.ConfigTestMode, true)
	}
	if err := config.Initialize(); err != nil {
		return err
	}

	st, err := acquireStore(registry, config)
	if err != nil {
		return err
	}

	catalog := services.NewCatalogService(nil)
	metrics := services.NewMetricsService()
	workbench := services.NewWorkbenchService(catalog, metrics)
	history := services.NewHistoryService(st, config.HistoryLimit(), config)
	themes := services.NewThemeService()
	autocomplete := services.NewAutoCompleteService(catalog, workbench)
	autocomplete.SetCommandSource(commands.GlobalRegistry)

	for _, svc := range []calctypes.Service{
		config,
		catalog,
		metrics,
		workbench,
		services.NewFavoritesService(st),
		history,
		services.NewNotesService(st, config),
		services.NewStopwatchService(nil),
		themes,
		services.NewMarkdownService(),
		autocomplete,
	} {
		if registry.HasService(svc.Name()) {
			continue
		}
		if err := registry.RegisterService(svc); err != nil {
			return err
		}
	}

	if err := registry.InitializeAll(); err != nil {
		return err
	}
	config = registered(registry, config)
	metrics = registered(registry, metrics)
	history = registered(registry, history)
	themes = registered(registry, themes)

	if err := themes.SetActive(config.Theme()); err != nil {
		logger.Warn("Falling back to the default theme", "error", err)
	}
	metrics.SetHistorySize(history.Len())

	output.ConfigureGlobal(output.ForSession(config.IsTestMode(), themes))

	logger.Debug("Services initialized", "store", config.StoreKind(), "dataDir", config.DataDir())
	return nil
}

// Shutdown closes the store opened by InitializeServices.
func Shutdown() error {
	storeMu.Lock()
	defer storeMu.Unlock()
	if activeStore == nil {
		return nil
	}
	err := activeStore.Close()
	activeStore = nil
	return err
}

// registered returns the instance registered under svc's name. It differs from svc
// when an earlier initialization registered that service first.
func registered[T calctypes.Service](registry *services.Registry, svc T) T {
	existing, err := registry.GetService(svc.Name())
	if err != nil {
		return svc
	}
	if typed, ok := existing.(T); ok {
		return typed
	}
	return svc
}

// storeBackedServices hold the store they were created with.
var storeBackedServices = []string{"favorites", "history", "notes"}

// acquireStore opens the configured store. While services holding the active store
// are registered, that store is reused instead of being replaced.
func acquireStore(registry *services.Registry, config *services.ConfigurationService) (store.Store, error) {
	storeMu.Lock()
	defer storeMu.Unlock()
	if activeStore != nil {
		for _, name := range storeBackedServices {
			if registry.HasService(name) {
				return activeStore, nil
			}
		}
	}

	st, err := store.Open(config.StoreKind(), config.DataDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", config.StoreKind(), err)
	}
	if activeStore != nil {
		_ = activeStore.Close()
	}
	activeStore = st
	return st, nil
}

// ValidateScriptFile checks that path names an existing .calc file.
func ValidateScriptFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat script file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("script path is a directory: %s", path)
	}
	if ext := filepath.Ext(path); ext != embedded.ScriptExtension {
		return fmt.Errorf("script file must have %s extension, got: %s", embedded.ScriptExtension, ext)
	}
	return nil
}

// RunScript executes a .calc script file line by line, stopping at the first failure.
func RunScript(path string) error {
	if err := ValidateScriptFile(path); err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	logger.Debug("Running script", "path", path)
	if err := commands.GlobalRegistry.RunScript(string(content)); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

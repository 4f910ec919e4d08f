// Package builtin contains the calchub shell commands. Every command registers itself
// with the global command registry in init and reaches hub state only through services.
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"calchub/internal/keypad"
	"calchub/internal/output"
	"calchub/internal/parser"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

func printer() *output.Printer {
	return output.GetGlobalPrinter()
}

func service[T calctypes.Service](name string) (T, error) {
	svc, err := services.Lookup[T](name)
	if err != nil {
		return svc, fmt.Errorf("%s service not available: %w", name, err)
	}
	return svc, nil
}

// hasFlag reports whether a bracket option is present and not explicitly false.
func hasFlag(args map[string]string, name string) bool {
	v, ok := args[name]
	return ok && parser.FlagEnabled(v)
}

// intOption reads a positive integer option, returning def when absent.
func intOption(args map[string]string, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, v)
	}
	return n, nil
}

// calculatorLine renders "id  name" with a star for favorites.
func calculatorLine(def *calctypes.Definition, favorite bool) string {
	star := " "
	if favorite {
		star = "★"
	}
	return fmt.Sprintf("%s %s %-16s %s", star, def.Icon.Glyph(), def.ID, def.Name)
}

// faceStyles returns the active theme's keypad styles, or plain ones when output is not styled.
func faceStyles() keypad.FaceStyles {
	if !printer().IsStylable() {
		return keypad.PlainFaceStyles()
	}
	themes, err := service[*services.ThemeService]("theme")
	if err != nil {
		return keypad.PlainFaceStyles()
	}
	return themes.Active().Face
}

// currentOrResolve returns the calculator named by ref, or the open one when ref is empty.
func currentOrResolve(ref string) (*calctypes.Definition, error) {
	ref = strings.TrimSpace(ref)
	if ref != "" {
		catalog, err := service[*services.CatalogService]("catalog")
		if err != nil {
			return nil, err
		}
		return catalog.Resolve(ref)
	}
	workbench, err := service[*services.WorkbenchService]("workbench")
	if err != nil {
		return nil, err
	}
	if def := workbench.Current(); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("no calculator given and none is open")
}

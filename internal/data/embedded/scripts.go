package embedded

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed scripts/*.calc
var scriptsFS embed.FS

// ScriptExtension is the file extension of calchub scripts.
const ScriptExtension = ".calc"

// ScriptNames lists the embedded scripts without their extension.
func ScriptNames() ([]string, error) {
	entries, err := scriptsFS.ReadDir("scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scripts: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ScriptExtension) {
			names = append(names, strings.TrimSuffix(e.Name(), ScriptExtension))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadScript returns the content of an embedded script. The extension is optional.
func LoadScript(name string) (string, error) {
	name = strings.TrimSuffix(name, ScriptExtension)
	data, err := scriptsFS.ReadFile(path.Join("scripts", name+ScriptExtension))
	if err != nil {
		return "", fmt.Errorf("script %q not found", name)
	}
	return string(data), nil
}

package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// CreateTempFile writes content to filename inside a fresh temp dir and returns its path.
func CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create temp file successfully")
	return filePath
}

// CreateTempDir creates a temp dir holding the given files, creating subdirectories as needed.
func CreateTempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for filename, content := range files {
		filePath := filepath.Join(tmpDir, filename)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "Should create file %s", filename)
	}
	return tmpDir
}

// AssertGolden fails the test with a readable diff when actual differs from expected.
// Trailing newlines are ignored on both sides.
func AssertGolden(t *testing.T, expected, actual string) {
	t.Helper()
	expected = strings.TrimRight(expected, "\n")
	actual = strings.TrimRight(actual, "\n")
	if expected == actual {
		return
	}
	t.Errorf("output differs from golden:\n%s", Diff(expected, actual))
}

// Diff renders the character-level differences between two texts, one change per line.
func Diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("- " + quote(diff.Text) + "\n")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+ " + quote(diff.Text) + "\n")
		case diffmatchpatch.DiffEqual:
			text := diff.Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			b.WriteString("  " + quote(text) + "\n")
		}
	}
	return b.String()
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\n", "\\n") + "\""
}

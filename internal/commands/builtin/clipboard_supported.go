//go:build !linux

package builtin

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// systemClipboard writes text to the desktop clipboard, initializing it on first use.
func systemClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard initialization failed: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

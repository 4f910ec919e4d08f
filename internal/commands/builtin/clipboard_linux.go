//go:build linux

package builtin

import "errors"

var errNoClipboard = errors.New("no system clipboard on this platform")

// systemClipboard reports that copying is unsupported; headless Linux builds carry no X11 bindings.
func systemClipboard(string) error {
	return errNoClipboard
}

package output

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter replaces the printer used by the package-level helpers.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the printer commands write to.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal replaces the global printer with one built from options.
func ConfigureGlobal(options ...Option) {
	SetGlobalPrinter(NewPrinter(options...))
}

// Println writes a line through the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Info writes an informational line through the global printer.
func Info(text string) {
	GetGlobalPrinter().Info(text)
}

// Error writes an error line through the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}

// SupportsColor reports whether the terminal renders colour.
// NO_COLOR and non-terminal outputs resolve to the Ascii profile.
func SupportsColor() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// DisableColor pins lipgloss to the Ascii profile so rendered output is byte-stable.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

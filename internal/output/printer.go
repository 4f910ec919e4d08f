package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"calchub/pkg/calctypes"
)

// Printer writes semantic output in plain, styled or JSON form.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto unless options say otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print writes text as is.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf writes formatted text as is.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success writes a success line.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning writes a warning line.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error writes an error line.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Command writes a command name inline.
func (p *Printer) Command(text string) {
	p.output(SemanticCommand, text, false)
}

// Keyword writes a keyword inline.
func (p *Printer) Keyword(text string) {
	p.output(SemanticKeyword, text, false)
}

// Highlight writes emphasised text inline.
func (p *Printer) Highlight(text string) {
	p.output(SemanticHighlight, text, false)
}

// Bold writes bold text inline.
func (p *Printer) Bold(text string) {
	p.output(SemanticBold, text, false)
}

// Block writes pre-rendered multi-line content such as the calculator face.
func (p *Printer) Block(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeJSON {
		p.write(p.renderJSON("block", map[string]interface{}{"lines": strings.Split(text, "\n")}))
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	p.write(text)
}

// Results writes formatted calculator outputs as an aligned table.
func (p *Printer) Results(outputs []calctypes.OutputField) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeJSON {
		p.write(p.renderJSON("results", map[string]interface{}{"results": outputs}))
		return
	}
	var styles StyleProvider
	if p.isStylable() {
		styles = p.styleProvider
	}
	p.write(FormatResults(outputs, styles))
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string
	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(semantic, map[string]interface{}{"message": text})
	case ModePlain, ModeAuto, ModeStyled:
		finalText = p.renderText(semantic, text, addNewline)
	}
	p.write(finalText)
}

func (p *Printer) write(text string) {
	_, _ = fmt.Fprint(p.writer, text)
}

func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	var provider StyleProvider = NewPlainStyleProvider()
	if p.isStylable() {
		provider = p.styleProvider
	}
	result := provider.GetStyle(string(semantic)).Render(text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

func (p *Printer) renderJSON(semantic SemanticType, fields map[string]interface{}) string {
	fields["type"] = semantic
	jsonBytes, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprintf("%v\n", fields)
	}
	return string(jsonBytes) + "\n"
}

// SetWriter changes the destination.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetMode changes the rendering mode.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// SetStyleProvider replaces the style provider. Nil disables styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable reports whether styles will be applied.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isStylable()
}

func (p *Printer) isStylable() bool {
	if p.forcePlain || p.mode == ModePlain || p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	return p.mode == ModeStyled || SupportsColor()
}

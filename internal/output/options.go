package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles sets the style provider. Unavailable providers are ignored.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the rendering mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// JSON switches the printer to one JSON object per message.
func JSON() Option {
	return WithMode(ModeJSON)
}

// TestMode pins plain prefixes so transcripts are byte-stable. Styles set by
// other options are ignored.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.forcePlain = true
	}
}

// ForSession picks the printer setup of a calchub session: plain transcripts in
// test mode, otherwise theme styles whenever the terminal renders colour.
func ForSession(testMode bool, themes StyleProvider) Option {
	if testMode {
		return TestMode()
	}
	return func(p *Printer) {
		WithStyles(themes)(p)
		p.mode = ModeAuto
	}
}

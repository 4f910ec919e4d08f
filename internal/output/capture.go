package output

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer records what a printer writes, for transcripts in tests and
// batch comparisons.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureBuffer returns an empty buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything captured so far.
func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the capture split on newlines, without the trailing empty line.
func (c *CaptureBuffer) Lines() []string {
	content := strings.TrimSuffix(c.String(), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// Reset drops the captured output.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// Capture runs fn against a printer writing into a fresh buffer and returns the
// transcript. Without options the printer is in test mode.
func Capture(fn func(*Printer), options ...Option) string {
	buffer := NewCaptureBuffer()
	if len(options) == 0 {
		options = []Option{TestMode()}
	}
	fn(NewPrinter(append([]Option{WithWriter(buffer)}, options...)...))
	return buffer.String()
}

package services

import (
	"fmt"
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// StopwatchService is the dashboard stopwatch. Elapsed time accumulates across pauses.
type StopwatchService struct {
	mu      sync.Mutex
	clock   Clock
	started time.Time
	running bool
	elapsed time.Duration
}

// NewStopwatchService creates a stopped stopwatch reading clock (time.Now when nil).
func NewStopwatchService(clock Clock) *StopwatchService {
	if clock == nil {
		clock = time.Now
	}
	return &StopwatchService{clock: clock}
}

// Name returns the service name for registration and identification.
func (s *StopwatchService) Name() string {
	return "stopwatch"
}

// Initialize is a no-op.
func (s *StopwatchService) Initialize() error {
	return nil
}

// Start runs the stopwatch. It reports false when it was already running.
func (s *StopwatchService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.started = s.clock()
	s.running = true
	return true
}

// Pause stops the stopwatch, keeping the elapsed time. It reports false when it was not running.
func (s *StopwatchService) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.elapsed += s.clock().Sub(s.started)
	s.running = false
	return true
}

// Reset stops the stopwatch and zeroes it.
func (s *StopwatchService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.elapsed = 0
}

// Running reports whether the stopwatch is counting.
func (s *StopwatchService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the total counted time.
func (s *StopwatchService) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return s.elapsed + s.clock().Sub(s.started)
	}
	return s.elapsed
}

// Display returns the elapsed time as mm:ss.
func (s *StopwatchService) Display() string {
	return FormatElapsed(s.Elapsed())
}

// FormatElapsed renders whole seconds as zero-padded minutes and seconds.
// Minutes are not wrapped into hours.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

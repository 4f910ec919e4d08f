// Package testutils provides deterministic generators and helpers for calchub testing.
// Generated values keep their production format so golden output stays realistic.
package testutils

import (
	"fmt"
	"sync"
	"time"

	"calchub/pkg/calctypes"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex

	timeCounter int64
	timeMutex   sync.Mutex
)

// BaseTime is the first deterministic timestamp handed out in test mode.
var BaseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// GenerateUUID returns a random UUID, or a counter-based one in test mode:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
func GenerateUUID(p calctypes.TestModeProvider) string {
	if p != nil && p.IsTestMode() {
		return getDeterministicUUID()
	}
	return uuid.New().String()
}

// GetCurrentTime returns time.Now, or BaseTime plus one second per call in test mode.
func GetCurrentTime(p calctypes.TestModeProvider) time.Time {
	if p != nil && p.IsTestMode() {
		return getDeterministicTime()
	}
	return time.Now()
}

func getDeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

func getDeterministicTime() time.Time {
	timeMutex.Lock()
	defer timeMutex.Unlock()

	timeCounter++
	return BaseTime.Add(time.Duration(timeCounter) * time.Second)
}

// ResetTestCounters resets the deterministic counters. Only call from tests.
func ResetTestCounters() {
	idMutex.Lock()
	timeMutex.Lock()
	defer idMutex.Unlock()
	defer timeMutex.Unlock()

	idCounter = 0
	timeCounter = 0
}

// StaticTestMode is a TestModeProvider with a fixed answer.
type StaticTestMode bool

// IsTestMode implements calctypes.TestModeProvider.
func (s StaticTestMode) IsTestMode() bool {
	return bool(s)
}

package builtin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"calchub/internal/commands"
	"calchub/internal/output"
	"calchub/internal/services"
	"calchub/internal/store"
	"calchub/internal/testutils"
	"calchub/pkg/calctypes"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// testHub wires every service over a memory store and captures printer output.
type testHub struct {
	out       *output.CaptureBuffer
	workbench *services.WorkbenchService
	history   *services.HistoryService
	metrics   *services.MetricsService
	notes     *services.NotesService
	clock     *testClock
}

func setupHub(t *testing.T) *testHub {
	t.Helper()
	testutils.ResetTestCounters()

	prevServices := services.GetGlobalRegistry()
	prevPrinter := output.GetGlobalPrinter()
	prevClipboard := writeClipboard
	t.Cleanup(func() {
		services.SetGlobalRegistry(prevServices)
		output.SetGlobalPrinter(prevPrinter)
		writeClipboard = prevClipboard
	})

	st := store.NewMemoryStore()
	testMode := testutils.StaticTestMode(true)
	clock := &testClock{now: testutils.BaseTime}

	catalog := services.NewCatalogService(nil)
	metrics := services.NewMetricsService()
	h := &testHub{
		out:       output.NewCaptureBuffer(),
		workbench: services.NewWorkbenchService(catalog, metrics),
		history:   services.NewHistoryService(st, 0, testMode),
		metrics:   metrics,
		notes:     services.NewNotesService(st, testMode),
		clock:     clock,
	}

	reg := services.NewRegistry()
	for _, svc := range []calctypes.Service{
		catalog,
		metrics,
		h.workbench,
		services.NewFavoritesService(st),
		h.history,
		h.notes,
		services.NewStopwatchService(clock.Now),
		services.NewThemeService(),
		services.NewMarkdownService(),
	} {
		require.NoError(t, reg.RegisterService(svc))
	}
	require.NoError(t, reg.InitializeAll())
	services.SetGlobalRegistry(reg)

	output.SetGlobalPrinter(output.NewPrinter(output.WithWriter(h.out), output.TestMode()))
	return h
}

// run executes one line and returns what it printed.
func (h *testHub) run(t *testing.T, line string) string {
	t.Helper()
	h.out.Reset()
	require.NoError(t, commands.GlobalRegistry.ExecuteLine(line), "line: %s", line)
	return h.out.String()
}

// fail executes one line that must fail and returns the error.
func (h *testHub) fail(t *testing.T, line string) error {
	t.Helper()
	h.out.Reset()
	err := commands.GlobalRegistry.ExecuteLine(line)
	require.Error(t, err, "line: %s", line)
	return err
}

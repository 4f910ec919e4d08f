package services

import (
	"fmt"
	"strings"
	"sync"

	"calchub/internal/calculators"
	"calchub/internal/keypad"
	"calchub/internal/logger"
	"calchub/pkg/calctypes"
)

// WorkbenchService holds the calculator the session is working with: its definition,
// the current input values and, for widget calculators, the keypad machine.
type WorkbenchService struct {
	mu      sync.Mutex
	catalog *CatalogService
	metrics *MetricsService
	current *calctypes.Definition
	inputs  calctypes.Inputs
	machine *keypad.Machine
}

// NewWorkbenchService creates a workbench that resolves calculators through catalog.
// metrics may be nil.
func NewWorkbenchService(catalog *CatalogService, metrics *MetricsService) *WorkbenchService {
	return &WorkbenchService{catalog: catalog, metrics: metrics}
}

// Name returns the service name for registration and identification.
func (w *WorkbenchService) Name() string {
	return "workbench"
}

// Initialize checks that a catalog is attached.
func (w *WorkbenchService) Initialize() error {
	if w.catalog == nil {
		return fmt.Errorf("workbench service requires a catalog")
	}
	return nil
}

// Open selects the calculator named by ref and seeds its inputs from the defaults.
// Widget calculators get a fresh keypad whose value is written to the input slot.
func (w *WorkbenchService) Open(ref string) (*calctypes.Definition, error) {
	def, err := w.catalog.Resolve(ref)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = def
	w.inputs = calculators.Defaults(def)
	w.machine = nil
	if def.HasWidget() {
		w.machine = keypad.New(def.Widget, keypad.WithSink(w.receive))
	}
	logger.Debug("Calculator opened", "calculator", def.ID, "widget", def.HasWidget())
	return def, nil
}

// receive is the keypad sink. It runs inside Press, which holds the lock.
func (w *WorkbenchService) receive(id string, value float64) {
	if w.inputs != nil {
		w.inputs[id] = value
	}
}

// Close deselects the current calculator. It reports false when nothing was open.
func (w *WorkbenchService) Close() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return false
	}
	logger.Debug("Calculator closed", "calculator", w.current.ID)
	w.current = nil
	w.inputs = nil
	w.machine = nil
	return true
}

// Current returns the open calculator, or nil.
func (w *WorkbenchService) Current() *calctypes.Definition {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Inputs returns a copy of the current input values.
func (w *WorkbenchService) Inputs() calctypes.Inputs {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inputs == nil {
		return nil
	}
	return w.inputs.Clone()
}

// Machine returns the keypad of the open calculator, or nil when it has none.
func (w *WorkbenchService) Machine() *keypad.Machine {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine
}

// SetInput coerces raw for the input id and stores it.
func (w *WorkbenchService) SetInput(id, raw string) error {
	return w.SetInputs(map[string]string{id: raw})
}

// SetInputs applies several values at once. Nothing is stored if any value is rejected.
func (w *WorkbenchService) SetInputs(values map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return fmt.Errorf("no calculator is open (use \\open first)")
	}

	coerced := make(calctypes.Inputs, len(values))
	for id, raw := range values {
		spec, ok := w.current.Input(id)
		if !ok {
			return fmt.Errorf("calculator '%s' has no input '%s' (inputs: %s)", w.current.ID, id, inputIDs(w.current))
		}
		v, err := spec.Coerce(raw)
		if err != nil {
			return err
		}
		coerced[id] = v
	}
	for id, v := range coerced {
		w.inputs[id] = v
	}
	return nil
}

// ResetInputs restores the defaults and clears the keypad.
func (w *WorkbenchService) ResetInputs() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return fmt.Errorf("no calculator is open (use \\open first)")
	}
	w.inputs = calculators.Defaults(w.current)
	if w.machine != nil {
		w.machine.Clear()
	}
	return nil
}

// Results evaluates the open calculator on its current inputs.
// A calculator that fails internally yields a nil evaluation and no error.
func (w *WorkbenchService) Results() (*calculators.Evaluation, error) {
	w.mu.Lock()
	def := w.current
	var inputs calctypes.Inputs
	if w.inputs != nil {
		inputs = w.inputs.Clone()
	}
	w.mu.Unlock()

	if def == nil {
		return nil, fmt.Errorf("no calculator is open (use \\open first)")
	}

	ev := calculators.Evaluate(def, inputs)
	switch {
	case ev == nil:
		w.metrics.IncCalculation(def.ID, OutcomeFailed)
	case ev.Failed():
		w.metrics.IncCalculation(def.ID, OutcomeInvalid)
	default:
		w.metrics.IncCalculation(def.ID, OutcomeOK)
	}
	return ev, nil
}

// Press feeds keys to the keypad and returns how many changed it.
func (w *WorkbenchService) Press(keys ...keypad.Key) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return 0, fmt.Errorf("no calculator is open (use \\open first)")
	}
	if w.machine == nil {
		return 0, fmt.Errorf("calculator '%s' has no keypad", w.current.ID)
	}

	handled := 0
	for _, k := range keys {
		w.metrics.IncKeyPress(k.Kind().String())
		if w.machine.Press(k) {
			handled++
		}
	}
	return handled, nil
}

func inputIDs(def *calctypes.Definition) string {
	ids := make([]string, len(def.Inputs))
	for i, in := range def.Inputs {
		ids[i] = in.ID
	}
	return strings.Join(ids, ", ")
}

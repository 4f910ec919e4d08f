// Package keypad implements the input state machine of the physical calculator widget.
//
// A Machine interprets discrete key events the way a four-function calculator does:
// digits build the display buffer, a binary operator captures the buffer as the pending
// operand, and equals applies the pending operation. The machine has two phases,
// EnteringOperand and AwaitingOperand, and every key is handled by an exhaustive switch
// over them. No key ever fails; keys that make no sense in the current state are ignored.
package keypad

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"calchub/internal/logger"
	"calchub/pkg/calctypes"
)

// InputSlot is the host form input the machine keeps in sync with its buffer.
const InputSlot = "num1"

// maxDisplay is the number of characters an evaluated result may occupy.
const maxDisplay = 12

// Phase is the state of the operand currently on the display.
type Phase int

const (
	// EnteringOperand appends typed digits to the buffer.
	EnteringOperand Phase = iota
	// AwaitingOperand replaces the buffer with the next typed digit.
	AwaitingOperand
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case EnteringOperand:
		return "EnteringOperand"
	case AwaitingOperand:
		return "AwaitingOperand"
	default:
		return "Unknown"
	}
}

// Operator is a binary operator waiting for its right-hand operand.
type Operator int

// Binary operators.
const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the key label of the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return string(KeyAdd)
	case OpSubtract:
		return string(KeySubtract)
	case OpMultiply:
		return string(KeyMultiply)
	case OpDivide:
		return string(KeyDivide)
	default:
		return "?"
	}
}

// Apply evaluates a OP b. Division by exactly zero yields 0.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

func operatorFor(k Key) (Operator, bool) {
	switch k {
	case KeyAdd:
		return OpAdd, true
	case KeySubtract:
		return OpSubtract, true
	case KeyMultiply:
		return OpMultiply, true
	case KeyDivide:
		return OpDivide, true
	}
	return 0, false
}

// pending is the left-hand side captured by an operator key.
type pending struct {
	op      Operator
	operand float64
}

// Sink receives the buffer's numeric value whenever the machine changes it.
// It mirrors the host form's onChange(id, value) callback.
type Sink func(id string, value float64)

// Option configures a Machine.
type Option func(*Machine)

// WithSink installs the host form callback.
func WithSink(sink Sink) Option {
	return func(m *Machine) {
		m.sink = sink
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine is the session state of one physical calculator widget.
// It is owned by a single session and is not safe for concurrent use.
type Machine struct {
	kind    calctypes.WidgetKind
	display string
	caption string
	phase   Phase
	pending *pending
	sink    Sink
	logger  *log.Logger
}

// New creates a machine showing "0" for the given keypad.
func New(kind calctypes.WidgetKind, opts ...Option) *Machine {
	m := &Machine{
		kind:    kind,
		display: "0",
		phase:   EnteringOperand,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logger.NewStyledLogger("Keypad")
	}
	return m
}

// Kind returns the keypad the machine was created for.
func (m *Machine) Kind() calctypes.WidgetKind {
	return m.kind
}

// Display returns the on-screen buffer.
func (m *Machine) Display() string {
	return m.display
}

// Caption returns the history caption shown above the buffer.
func (m *Machine) Caption() string {
	return m.caption
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Pending returns the pending operator and operand, if any.
func (m *Machine) Pending() (Operator, float64, bool) {
	if m.pending == nil {
		return 0, 0, false
	}
	return m.pending.op, m.pending.operand, true
}

// Value returns the numeric value of the buffer.
func (m *Machine) Value() float64 {
	return parseDisplay(m.display)
}

// Press handles one key and reports whether it changed the machine.
func (m *Machine) Press(k Key) bool {
	if k.scientificOnly() && m.kind != calctypes.WidgetScientific {
		m.logger.Debug("Ignoring scientific key", "key", k)
		return false
	}

	var handled bool
	switch k.Kind() {
	case KindNumber:
		handled = m.enterDigit(k)
	case KindOperator:
		op, _ := operatorFor(k)
		handled = m.chooseOperator(op)
	case KindEquals:
		handled = m.equals()
	case KindFunction:
		handled = m.function(k)
	case KindScience:
		handled = m.science(k)
	case KindUnknown:
		handled = false
	}

	if handled {
		m.logger.Debug("Key handled", "key", k, "phase", m.phase, "display", m.display)
	}
	return handled
}

// PressAll handles keys in order and returns how many changed the machine.
func (m *Machine) PressAll(keys ...Key) int {
	n := 0
	for _, k := range keys {
		if m.Press(k) {
			n++
		}
	}
	return n
}

func (m *Machine) enterDigit(k Key) bool {
	switch m.phase {
	case AwaitingOperand:
		if k == KeyDecimal {
			m.display = "0."
		} else {
			m.display = string(k)
		}
		m.phase = EnteringOperand
	case EnteringOperand:
		switch {
		case k == KeyDecimal && strings.Contains(m.display, "."):
			return false
		case m.display == "0" && k != KeyDecimal:
			m.display = string(k)
		default:
			m.display += string(k)
		}
	}
	m.emit(m.Value())
	return true
}

func (m *Machine) chooseOperator(op Operator) bool {
	operand := m.Value()
	m.pending = &pending{op: op, operand: operand}
	m.caption = fmt.Sprintf("%s %s", calctypes.FormatNumber(operand), op.Symbol())
	m.phase = AwaitingOperand
	m.emit(operand)
	return true
}

func (m *Machine) equals() bool {
	if m.pending == nil {
		return false
	}
	current := m.Value()
	res := m.pending.op.Apply(m.pending.operand, current)
	m.display = formatResult(res)
	m.caption = fmt.Sprintf("%s %s %s =",
		calctypes.FormatNumber(m.pending.operand), m.pending.op.Symbol(), calctypes.FormatNumber(current))
	m.pending = nil
	m.emit(res)
	return true
}

func (m *Machine) function(k Key) bool {
	switch k {
	case KeyClear:
		m.Clear()
		return true
	case KeyDelete:
		if m.phase == AwaitingOperand {
			return false
		}
		trimmed := m.display[:len(m.display)-1]
		if trimmed == "" || trimmed == "-" {
			trimmed = "0"
		}
		m.display = trimmed
		m.emit(m.Value())
		return true
	case KeyPercent:
		return m.unary(func(v float64) float64 { return v / 100 })
	}
	return false
}

func (m *Machine) science(k Key) bool {
	switch k {
	case KeySqrt:
		return m.unary(math.Sqrt)
	case KeySin:
		return m.unary(math.Sin)
	case KeyCos:
		return m.unary(math.Cos)
	case KeyTan:
		return m.unary(math.Tan)
	case KeyLog:
		return m.unary(math.Log10)
	case KeyLn:
		return m.unary(math.Log)
	case KeySquare:
		return m.unary(func(v float64) float64 { return v * v })
	case KeyPi:
		return m.unary(func(float64) float64 { return math.Pi })
	}
	return false
}

// unary replaces the buffer with f(buffer). The phase and caption are left alone.
func (m *Machine) unary(f func(float64) float64) bool {
	res := f(m.Value())
	m.display = formatResult(res)
	m.emit(res)
	return true
}

// Clear resets the machine to its initial state and reports 0 to the host.
func (m *Machine) Clear() {
	m.display = "0"
	m.caption = ""
	m.pending = nil
	m.phase = EnteringOperand
	m.emit(0)
}

func (m *Machine) emit(v float64) {
	if m.sink != nil {
		m.sink(InputSlot, v)
	}
}

// formatResult renders integral results without decimals and everything else with
// four fixed decimals, cut to the display width.
func formatResult(v float64) string {
	var s string
	if calctypes.IsIntegral(v) {
		s = calctypes.FormatNumber(v)
	} else {
		s = calctypes.FormatFixed(v, 4)
	}
	if len(s) > maxDisplay {
		s = s[:maxDisplay]
	}
	return s
}

// parseDisplay reads the longest numeric prefix of the buffer, NaN if there is none.
func parseDisplay(s string) float64 {
	for end := len(s); end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
	}
	return math.NaN()
}

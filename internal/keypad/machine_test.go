package keypad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/pkg/calctypes"
)

type sinkRecorder struct {
	ids    []string
	values []float64
}

func (r *sinkRecorder) sink(id string, v float64) {
	r.ids = append(r.ids, id)
	r.values = append(r.values, v)
}

func (r *sinkRecorder) last() float64 {
	return r.values[len(r.values)-1]
}

func press(t *testing.T, m *Machine, line string) {
	t.Helper()
	keys, err := ParseKeys(line)
	require.NoError(t, err)
	m.PressAll(keys...)
}

func TestMachine_InitialState(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	assert.Equal(t, "0", m.Display())
	assert.Equal(t, "", m.Caption())
	assert.Equal(t, EnteringOperand, m.Phase())
	_, _, ok := m.Pending()
	assert.False(t, ok)
}

func TestMachine_Sequences(t *testing.T) {
	tests := []struct {
		name            string
		keys            string
		expectedDisplay string
		expectedCaption string
	}{
		{"addition", "7 + 3 =", "10", "7 + 3 ="},
		{"division by zero", "8 ÷ 0 =", "0", "8 ÷ 0 ="},
		{"non integral result", "10 ÷ 3 =", "3.3333", "10 ÷ 3 ="},
		{"subtraction to negative", "2 - 5 =", "-3", "2 - 5 ="},
		{"multiplication", "6 × 7 =", "42", "6 × 7 ="},
		{"leading zero replaced", "0 0 7", "7", ""},
		{"decimal from zero", ". 5", "0.5", ""},
		{"second decimal ignored", "1 . 2 . 3", "1.23", ""},
		{"operator caption", "12 +", "12", "12 +"},
		{"decimal after operator", "4 + . 5 =", "4.5000", "4 + 0.5 ="},
		{"equals without operator is a no-op", "5 =", "5", ""},
		{"operator replaces pending operand", "7 + 3 + 2 =", "5", "3 + 2 ="},
		{"equals reuses buffer as right operand", "7 + =", "14", "7 + 7 ="},
		{"long result truncated", "99999999 × 99999999 =", "999999980000", "99999999 × 99999999 ="},
		{"non integral truncated", "1234567 ÷ 7 =", "176366.7143", "1234567 ÷ 7 ="},
		{"clear", "7 + 3 AC", "0", ""},
		{"percent", "50 %", "0.5000", ""},
		{"delete last digit", "123 DEL", "12", ""},
		{"delete to zero", "5 DEL", "0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(calctypes.WidgetBasic)
			press(t, m, tt.keys)
			assert.Equal(t, tt.expectedDisplay, m.Display())
			assert.Equal(t, tt.expectedCaption, m.Caption())
		})
	}
}

func TestMachine_SquareRoot(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "16 √")
	assert.Equal(t, "4", m.Display())

	m = New(calctypes.WidgetBasic)
	press(t, m, "2 √")
	assert.Equal(t, "1.4142", m.Display())
}

func TestMachine_SquareRootOfNegativeIsNaN(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "0 - 9 = √")
	assert.Equal(t, "NaN", m.Display())
	assert.True(t, math.IsNaN(m.Value()))
}

func TestMachine_ClearResetsEverything(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "9 ×")
	require.Equal(t, AwaitingOperand, m.Phase())

	m.Press(KeyClear)
	assert.Equal(t, "0", m.Display())
	assert.Equal(t, "", m.Caption())
	assert.Equal(t, EnteringOperand, m.Phase())
	_, _, ok := m.Pending()
	assert.False(t, ok)
}

func TestMachine_PhaseTransitions(t *testing.T) {
	m := New(calctypes.WidgetBasic)

	m.Press(KeyFive)
	assert.Equal(t, EnteringOperand, m.Phase())

	m.Press(KeyAdd)
	assert.Equal(t, AwaitingOperand, m.Phase())
	op, operand, ok := m.Pending()
	require.True(t, ok)
	assert.Equal(t, OpAdd, op)
	assert.Equal(t, 5.0, operand)

	m.Press(KeyTwo)
	assert.Equal(t, EnteringOperand, m.Phase())
	assert.Equal(t, "2", m.Display())

	m.Press(KeyEquals)
	_, _, ok = m.Pending()
	assert.False(t, ok)
	assert.Equal(t, "7", m.Display())
}

func TestMachine_DeleteWhileAwaitingIsNoop(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "8 +")
	assert.False(t, m.Press(KeyDelete))
	assert.Equal(t, "8", m.Display())
}

func TestMachine_SinkReceivesValues(t *testing.T) {
	rec := &sinkRecorder{}
	m := New(calctypes.WidgetBasic, WithSink(rec.sink))

	press(t, m, "7 + 3 =")
	require.NotEmpty(t, rec.values)
	assert.Equal(t, 10.0, rec.last())
	for _, id := range rec.ids {
		assert.Equal(t, InputSlot, id)
	}

	press(t, m, "AC 10 ÷ 3 =")
	assert.InDelta(t, 3.333333, rec.last(), 1e-6)

	m.Press(KeyClear)
	assert.Equal(t, 0.0, rec.last())

	press(t, m, "16 √")
	assert.Equal(t, 4.0, rec.last())
}

func TestMachine_NoopsDoNotEmit(t *testing.T) {
	rec := &sinkRecorder{}
	m := New(calctypes.WidgetBasic, WithSink(rec.sink))

	assert.False(t, m.Press(KeyEquals))
	assert.False(t, m.Press(Key("bogus")))
	assert.Empty(t, rec.values)
}

func TestMachine_ScientificKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{"square", "9 x²", "81"},
		{"pi", "π", "3.1416"},
		{"ln of one", "1 ln", "0"},
		{"sin zero", "0 sin", "0"},
		{"cos zero", "0 cos", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(calctypes.WidgetScientific)
			press(t, m, tt.keys)
			assert.Equal(t, tt.expected, m.Display())
		})
	}
}

func TestMachine_LogBaseTen(t *testing.T) {
	m := New(calctypes.WidgetScientific)
	press(t, m, "1000 log")
	assert.InDelta(t, 3.0, m.Value(), 1e-9)
}

func TestMachine_ScientificKeysIgnoredOnBasicFace(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "9")
	assert.False(t, m.Press(KeySquare))
	assert.False(t, m.Press(KeyPi))
	assert.Equal(t, "9", m.Display())

	assert.True(t, m.Press(KeySqrt))
	assert.Equal(t, "3", m.Display())
}

func TestOperator_Apply(t *testing.T) {
	assert.Equal(t, 5.0, OpAdd.Apply(2, 3))
	assert.Equal(t, -1.0, OpSubtract.Apply(2, 3))
	assert.Equal(t, 6.0, OpMultiply.Apply(2, 3))
	assert.Equal(t, 2.0, OpDivide.Apply(6, 3))
	assert.Equal(t, 0.0, OpDivide.Apply(6, 0))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "EnteringOperand", EnteringOperand.String())
	assert.Equal(t, "AwaitingOperand", AwaitingOperand.String())
	assert.Equal(t, "Unknown", Phase(9).String())
}

func TestParseDisplay(t *testing.T) {
	assert.Equal(t, 12.5, parseDisplay("12.5"))
	assert.Equal(t, 0.0, parseDisplay("0."))
	assert.True(t, math.IsNaN(parseDisplay("NaN")))
	assert.Equal(t, 12.0, parseDisplay("12abc"))
	assert.True(t, math.IsNaN(parseDisplay("")))
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "4", formatResult(4))
	assert.Equal(t, "0", formatResult(math.Copysign(0, -1)))
	assert.Equal(t, "0.3333", formatResult(1.0/3.0))
	assert.Equal(t, "Infinity", formatResult(math.Inf(1)))
	assert.Len(t, formatResult(123456789012345), maxDisplay)
}

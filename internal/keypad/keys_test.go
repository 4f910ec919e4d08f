package keypad

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/pkg/calctypes"
)

func TestParseKey_Aliases(t *testing.T) {
	tests := []struct {
		token    string
		expected Key
	}{
		{"7", KeySeven},
		{".", KeyDecimal},
		{"*", KeyMultiply},
		{"x", KeyMultiply},
		{"/", KeyDivide},
		{"C", KeyClear},
		{"clear", KeyClear},
		{"AC", KeyClear},
		{"sqrt", KeySqrt},
		{"pi", KeyPi},
		{"sq", KeySquare},
		{"DEL", KeyDelete},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			k, err := ParseKey(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestParseKey_Unknown(t *testing.T) {
	_, err := ParseKey("frobnicate")
	assert.ErrorContains(t, err, "unknown key")
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("12+3=")
	require.NoError(t, err)
	assert.Equal(t, []Key{KeyOne, KeyTwo, KeyAdd, KeyThree, KeyEquals}, keys)

	keys, err = ParseKeys("9 x² π ac")
	require.NoError(t, err)
	assert.Equal(t, []Key{KeyNine, KeySquare, KeyPi, KeyClear}, keys)

	keys, err = ParseKeys("7x3")
	require.NoError(t, err)
	assert.Equal(t, []Key{KeySeven, KeyMultiply, KeyThree}, keys)

	_, err = ParseKeys("7 & 3")
	assert.Error(t, err)
}

func TestKey_Kind(t *testing.T) {
	assert.Equal(t, KindNumber, KeyFive.Kind())
	assert.Equal(t, KindNumber, KeyDecimal.Kind())
	assert.Equal(t, KindOperator, KeyDivide.Kind())
	assert.Equal(t, KindEquals, KeyEquals.Kind())
	assert.Equal(t, KindFunction, KeyClear.Kind())
	assert.Equal(t, KindScience, KeySqrt.Kind())
	assert.Equal(t, KindUnknown, Key("?").Kind())
}

func TestLayout(t *testing.T) {
	basic := Layout(calctypes.WidgetBasic)
	require.Len(t, basic, 5)
	assert.Equal(t, KeyClear, basic[0][0].Key)
	assert.Equal(t, 2, basic[4][0].Span)

	sci := Layout(calctypes.WidgetScientific)
	require.Len(t, sci, 7)
	assert.Equal(t, KeySin, sci[0][0].Key)
	assert.Equal(t, KeySqrt, sci[0][3].Key)
}

func TestRender_PlainFace(t *testing.T) {
	m := New(calctypes.WidgetBasic)
	press(t, m, "7 + 3 =")

	face := ansi.Strip(Render(m, PlainFaceStyles()))
	lines := strings.Split(strings.TrimSuffix(face, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasSuffix(lines[0], "7 + 3 ="))
	assert.True(t, strings.HasSuffix(lines[1], "10"))
	assert.Contains(t, lines[2], "[ AC  ]")
	assert.Equal(t, ansi.StringWidth(lines[2]), ansi.StringWidth(lines[6]))
}

func TestRender_ReadyCaption(t *testing.T) {
	m := New(calctypes.WidgetScientific)
	face := ansi.Strip(Render(m, PlainFaceStyles()))
	assert.Contains(t, face, "READY")
	assert.Contains(t, face, "sin")
}

func TestKeyKind_String(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "operator", KindOperator.String())
	assert.Equal(t, "equals", KindEquals.String())
	assert.Equal(t, "function", KindFunction.String())
	assert.Equal(t, "science", KindScience.String())
	assert.Equal(t, "unknown", KeyKind(42).String())
}

package calctypes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"integer", 10, "10"},
		{"negative integer", -42, "-42"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"fraction", 0.5, "0.5"},
		{"large integer", 123456789012, "123456789012"},
		{"exponent above threshold", 1e21, "1e+21"},
		{"small exponent", 1e-7, "1e-7"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "3.3333", FormatFixed(10.0/3.0, 4))
	assert.Equal(t, "0.0000", FormatFixed(math.Copysign(0, -1), 4))
	assert.Equal(t, "NaN", FormatFixed(math.NaN(), 4))
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral(4))
	assert.True(t, IsIntegral(-3))
	assert.False(t, IsIntegral(2.5))
	assert.False(t, IsIntegral(math.NaN()))
	assert.False(t, IsIntegral(math.Inf(1)))
}

func TestInputs_Number(t *testing.T) {
	in := Inputs{
		"float":  2.5,
		"int":    7,
		"string": " 12 ",
		"empty":  "",
		"junk":   "abc",
		"truthy": true,
	}

	assert.Equal(t, 2.5, in.Number("float"))
	assert.Equal(t, 7.0, in.Number("int"))
	assert.Equal(t, 12.0, in.Number("string"))
	assert.Equal(t, 0.0, in.Number("empty"))
	assert.True(t, math.IsNaN(in.Number("junk")))
	assert.True(t, math.IsNaN(in.Number("missing")))
	assert.Equal(t, 1.0, in.Number("truthy"))
}

func TestInputs_StringAndClone(t *testing.T) {
	in := Inputs{"val": 255.0, "base": "16"}
	assert.Equal(t, "255", in.String("val"))
	assert.Equal(t, "16", in.String("base"))
	assert.Equal(t, "", in.String("missing"))

	clone := in.Clone()
	clone["val"] = 1.0
	assert.Equal(t, 255.0, in["val"])
}

func TestInputSpec_Coerce(t *testing.T) {
	number := InputSpec{ID: "n1", Type: InputNumber}
	v, err := number.Coerce("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	v, err = number.Coerce("")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = number.Coerce("x")
	assert.ErrorContains(t, err, "expects a number")

	sel := InputSpec{ID: "op", Type: InputSelect, Options: []SelectOption{{Label: "Add", Value: "add"}}}
	v, err = sel.Coerce("add")
	require.NoError(t, err)
	assert.Equal(t, "add", v)
	_, err = sel.Coerce("pow")
	assert.ErrorContains(t, err, "must be one of: add")

	slider := InputSpec{ID: "pct", Type: InputSlider}
	_, err = slider.Coerce("150")
	assert.ErrorContains(t, err, "between 0 and 100")

	date := InputSpec{ID: "d", Type: InputDate}
	_, err = date.Coerce("2024-02-30")
	assert.Error(t, err)
	v, err = date.Coerce("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-28", v)
}

func TestResult_Failure(t *testing.T) {
	msg, ok := ErrorResult("bad").Failure()
	assert.True(t, ok)
	assert.Equal(t, "bad", msg)

	_, ok = Result{"dec": 1.0}.Failure()
	assert.False(t, ok)
}

func TestOutputField_Display(t *testing.T) {
	assert.Equal(t, "255", OutputField{Value: 255.0}.Display())
	assert.Equal(t, "0xFF", OutputField{Value: "0xFF"}.Display())
	assert.Equal(t, "3", OutputField{Value: 3}.Display())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("math")
	require.NoError(t, err)
	assert.Equal(t, CategoryMath, c)

	c, err = ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	_, err = ParseCategory("astrology")
	assert.Error(t, err)
}

func TestIcon_GlyphFallback(t *testing.T) {
	assert.Equal(t, IconCalculator.Glyph(), Icon(99).Glyph())
	assert.Equal(t, "Binary", IconBinary.String())
}

func TestWidgetKind_String(t *testing.T) {
	assert.Equal(t, "basic", WidgetBasic.String())
	assert.Equal(t, "scientific", WidgetScientific.String())
	assert.Equal(t, "none", WidgetNone.String())
}

// Package calctypes defines calculator definition types for calchub.
// This file contains the immutable calculator record, its input specifications and the
// raw/formatted result shapes exchanged between a calculator and the rendering layer.
package calctypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrorField is the result key a calculator uses to report invalid input.
const ErrorField = "error"

// InputType selects how an input is collected and coerced.
type InputType string

// Input types supported by calculator forms.
const (
	InputNumber   InputType = "number"
	InputSelect   InputType = "select"
	InputSlider   InputType = "slider"
	InputDate     InputType = "date"
	InputText     InputType = "text"
	InputCurrency InputType = "currency"
)

// IsNumeric reports whether values of this type are stored as numbers.
func (t InputType) IsNumeric() bool {
	return t == InputNumber || t == InputCurrency || t == InputSlider
}

// SelectOption is one choice of a select input.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InputSpec describes a single calculator input. It drives form rendering only.
type InputSpec struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Type        InputType      `json:"type"`
	Default     any            `json:"defaultValue"`
	Min         float64        `json:"min,omitempty"`
	Max         float64        `json:"max,omitempty"`
	Step        float64        `json:"step,omitempty"`
	Unit        string         `json:"unit,omitempty"`
	Description string         `json:"description,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
}

// SliderBounds returns min, max and step with the slider defaults applied (0, 100, 1).
func (s InputSpec) SliderBounds() (float64, float64, float64) {
	minV, maxV, step := s.Min, s.Max, s.Step
	if maxV == 0 {
		maxV = 100
	}
	if step == 0 {
		step = 1
	}
	return minV, maxV, step
}

// Coerce converts raw text typed by the user into the value stored for this input.
// Numeric inputs become float64 (an empty string stays empty), select inputs must
// name one of the option values and dates must be YYYY-MM-DD.
func (s InputSpec) Coerce(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch s.Type {
	case InputNumber, InputCurrency, InputSlider:
		if raw == "" {
			return "", nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("input %s expects a number, got %q", s.ID, raw)
		}
		if s.Type == InputSlider {
			minV, maxV, _ := s.SliderBounds()
			if v < minV || v > maxV {
				return nil, fmt.Errorf("input %s must be between %s and %s", s.ID, FormatNumber(minV), FormatNumber(maxV))
			}
		}
		return v, nil
	case InputSelect:
		for _, opt := range s.Options {
			if opt.Value == raw {
				return raw, nil
			}
		}
		values := make([]string, len(s.Options))
		for i, opt := range s.Options {
			values[i] = opt.Value
		}
		return nil, fmt.Errorf("input %s must be one of: %s", s.ID, strings.Join(values, ", "))
	case InputDate:
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return nil, fmt.Errorf("input %s expects a date (YYYY-MM-DD), got %q", s.ID, raw)
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// Inputs maps input ids to their current values.
type Inputs map[string]any

// Number reads an input as a number the way a loosely typed form would:
// an empty string is 0, unparsable text and missing values are NaN.
func (in Inputs) Number(id string) float64 {
	v, ok := in[id]
	if !ok || v == nil {
		return math.NaN()
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// String reads an input as text. Numbers are rendered with FormatNumber.
func (in Inputs) String(id string) string {
	v, ok := in[id]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return FormatNumber(s)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprint(s)
	}
}

// Clone returns a shallow copy of the inputs.
func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Result is the raw record produced by a calculator.
type Result map[string]any

// ErrorResult builds a result that reports invalid input.
func ErrorResult(msg string) Result {
	return Result{ErrorField: msg}
}

// Failure returns the error message carried by the result, if any.
func (r Result) Failure() (string, bool) {
	msg, ok := r[ErrorField].(string)
	return msg, ok && msg != ""
}

// DisplayType tells the rendering layer how to present a value.
type DisplayType string

// Display types used by formatted outputs.
const (
	DisplayNumber   DisplayType = "number"
	DisplayText     DisplayType = "text"
	DisplayCurrency DisplayType = "currency"
	DisplayPercent  DisplayType = "percent"
)

// OutputField is one formatted line of a calculator's results.
type OutputField struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Value     any         `json:"value"`
	Type      DisplayType `json:"type"`
	Highlight bool        `json:"highlight,omitempty"`
}

// Display renders the value as text.
func (o OutputField) Display() string {
	switch v := o.Value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// ChartKind names the visualisation a chart is meant for.
type ChartKind string

// Chart kinds.
const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// ChartSeries is a named sequence of values.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is optional chart data derived from a raw result.
type Chart struct {
	Kind   ChartKind     `json:"kind"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// Definition is the immutable record describing one calculator.
// Calculate and FormatResults must be pure; ChartData is optional.
type Definition struct {
	ID            string
	Name          string
	Description   string
	Category      Category
	Icon          Icon
	Widget        WidgetKind
	Inputs        []InputSpec
	Calculate     func(Inputs) Result
	FormatResults func(Result) []OutputField
	ChartData     func(Result) *Chart
}

// Input returns the specification of the input with the given id.
func (d *Definition) Input(id string) (InputSpec, bool) {
	for _, in := range d.Inputs {
		if in.ID == id {
			return in, true
		}
	}
	return InputSpec{}, false
}

// HasWidget reports whether the calculator is driven by the physical keypad.
func (d *Definition) HasWidget() bool {
	return d.Widget != WidgetNone
}

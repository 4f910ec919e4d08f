package calculators

import "calchub/pkg/calctypes"

// Identifiers of the keypad-driven calculators.
const (
	BasicID      = "math-basic"
	ScientificID = "math-scientific"
)

// BasicArithmetic is the four-function calculator operated through the keypad.
// Its only input is the keypad's buffer.
func BasicArithmetic() *calctypes.Definition {
	return &calctypes.Definition{
		ID:          BasicID,
		Name:        "Normal Calculator",
		Description: "Tactile, real-life calculation experience with high precision and physical feedback.",
		Category:    calctypes.CategoryMath,
		Icon:        calctypes.IconCalculator,
		Widget:      calctypes.WidgetBasic,
		Inputs: []calctypes.InputSpec{
			{ID: "num1", Label: "Value A", Type: calctypes.InputNumber, Default: 0.0},
		},
		Calculate: func(in calctypes.Inputs) calctypes.Result {
			return calctypes.Result{"result": in.Number("num1")}
		},
		FormatResults: func(raw calctypes.Result) []calctypes.OutputField {
			return []calctypes.OutputField{
				{ID: "res", Label: "Computed Value", Value: raw["result"], Type: calctypes.DisplayNumber, Highlight: true},
			}
		},
	}
}

// ScientificAdvanced is the scientific calculator; the keypad adds the scientific row.
func ScientificAdvanced() *calctypes.Definition {
	return &calctypes.Definition{
		ID:          ScientificID,
		Name:        "Scientific Pro",
		Description: "A physical scientific engine for advanced engineering, physics, and mathematical research.",
		Category:    calctypes.CategoryMath,
		Icon:        calctypes.IconAtom,
		Widget:      calctypes.WidgetScientific,
		Inputs: []calctypes.InputSpec{
			{ID: "num1", Label: "Primary Buffer", Type: calctypes.InputNumber, Default: 0.0},
		},
		Calculate: func(in calctypes.Inputs) calctypes.Result {
			return calctypes.Result{"res": in.Number("num1")}
		},
		FormatResults: func(raw calctypes.Result) []calctypes.OutputField {
			return []calctypes.OutputField{
				{ID: "res", Label: "Current Output", Value: raw["res"], Type: calctypes.DisplayNumber, Highlight: true},
			}
		},
	}
}

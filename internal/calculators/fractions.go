package calculators

import (
	"math"
	"strconv"

	"calchub/pkg/calctypes"
)

// FractionsID identifies the fraction solver.
const FractionsID = "math-fractions"

const (
	errZeroDenominator = "Denominator cannot be zero"
	errInvalidNumber   = "Invalid number"
	errUnknownOperator = "Unknown operator"
)

// FractionCalc adds, subtracts, multiplies or divides two fractions and simplifies the result.
func FractionCalc() *calctypes.Definition {
	return &calctypes.Definition{
		ID:          FractionsID,
		Name:        "Fraction Solver",
		Description: "Add, subtract, multiply, or divide fractions and get simplified results.",
		Category:    calctypes.CategoryMath,
		Icon:        calctypes.IconLayers,
		Inputs: []calctypes.InputSpec{
			{ID: "n1", Label: "Num 1", Type: calctypes.InputNumber, Default: 1.0},
			{ID: "d1", Label: "Den 1", Type: calctypes.InputNumber, Default: 2.0},
			{ID: "op", Label: "Operator", Type: calctypes.InputSelect, Default: "add", Options: []calctypes.SelectOption{
				{Label: "Add (+)", Value: "add"},
				{Label: "Subtract (-)", Value: "subtract"},
				{Label: "Multiply (×)", Value: "multiply"},
				{Label: "Divide (÷)", Value: "divide"},
			}},
			{ID: "n2", Label: "Num 2", Type: calctypes.InputNumber, Default: 1.0},
			{ID: "d2", Label: "Den 2", Type: calctypes.InputNumber, Default: 4.0},
		},
		Calculate:     solveFraction,
		FormatResults: formatFraction,
	}
}

func solveFraction(in calctypes.Inputs) calctypes.Result {
	var terms [4]int64
	for i, id := range []string{"n1", "d1", "n2", "d2"} {
		f := in.Number(id)
		if !calctypes.IsIntegral(f) || math.Abs(f) >= 1<<31 {
			return calctypes.ErrorResult(errInvalidNumber)
		}
		terms[i] = int64(f)
	}
	n1, d1, n2, d2 := terms[0], terms[1], terms[2], terms[3]
	if d1 == 0 || d2 == 0 {
		return calctypes.ErrorResult(errZeroDenominator)
	}

	var num, den int64
	switch in.String("op") {
	case "add":
		num, den = n1*d2+n2*d1, d1*d2
	case "subtract":
		num, den = n1*d2-n2*d1, d1*d2
	case "multiply":
		num, den = n1*n2, d1*d2
	case "divide":
		num, den = n1*d2, d1*n2
	default:
		return calctypes.ErrorResult(errUnknownOperator)
	}
	if den == 0 {
		return calctypes.ErrorResult(errZeroDenominator)
	}

	num, den = simplify(num, den)
	return calctypes.Result{
		"num":     num,
		"den":     den,
		"decimal": float64(num) / float64(den),
	}
}

func formatFraction(raw calctypes.Result) []calctypes.OutputField {
	if msg, failed := raw.Failure(); failed {
		return []calctypes.OutputField{{ID: "err", Label: "Error", Value: msg, Type: calctypes.DisplayText}}
	}
	num, _ := raw["num"].(int64)
	den, _ := raw["den"].(int64)
	decimal, _ := raw["decimal"].(float64)
	return []calctypes.OutputField{
		{ID: "frac", Label: "Simplified Fraction", Value: strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10), Type: calctypes.DisplayText, Highlight: true},
		{ID: "dec", Label: "Decimal Value", Value: calctypes.FormatFixed(decimal, 4), Type: calctypes.DisplayNumber},
	}
}

// simplify divides out the greatest common divisor and moves the sign onto the numerator.
// den must be non-zero.
func simplify(num, den int64) (int64, int64) {
	common := gcd(abs(num), abs(den))
	num, den = num/common, den/common
	if den < 0 {
		num, den = -num, -den
	}
	return num, den
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

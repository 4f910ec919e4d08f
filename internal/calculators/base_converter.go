package calculators

import (
	"strconv"
	"strings"

	"calchub/pkg/calctypes"
)

// BaseConverterID identifies the base converter.
const BaseConverterID = "math-base-conv"

const errInvalidForBase = "Invalid Number for Base"

var supportedBases = map[int]bool{2: true, 8: true, 10: true, 16: true}

// BaseConverter converts an integer between decimal, binary, hexadecimal and octal.
func BaseConverter() *calctypes.Definition {
	return &calctypes.Definition{
		ID:          BaseConverterID,
		Name:        "Base Converter",
		Description: "Convert numbers between Decimal, Binary, Hexadecimal, and Octal bases.",
		Category:    calctypes.CategoryMath,
		Icon:        calctypes.IconBinary,
		Inputs: []calctypes.InputSpec{
			{ID: "val", Label: "Input Value", Type: calctypes.InputText, Default: "255"},
			{ID: "fromBase", Label: "Input Base", Type: calctypes.InputSelect, Default: "10", Options: []calctypes.SelectOption{
				{Label: "Decimal (10)", Value: "10"},
				{Label: "Binary (2)", Value: "2"},
				{Label: "Hexadecimal (16)", Value: "16"},
				{Label: "Octal (8)", Value: "8"},
			}},
		},
		Calculate:     convertBase,
		FormatResults: formatBase,
	}
}

func convertBase(in calctypes.Inputs) calctypes.Result {
	base, err := strconv.Atoi(strings.TrimSpace(in.String("fromBase")))
	if err != nil || !supportedBases[base] {
		return calctypes.ErrorResult(errInvalidForBase)
	}

	dec, ok := parseRadixPrefix(in.String("val"), base)
	if !ok {
		return calctypes.ErrorResult(errInvalidForBase)
	}

	return calctypes.Result{
		"dec": dec,
		"bin": strconv.FormatInt(dec, 2),
		"hex": strings.ToUpper(strconv.FormatInt(dec, 16)),
		"oct": strconv.FormatInt(dec, 8),
	}
}

func formatBase(raw calctypes.Result) []calctypes.OutputField {
	if msg, failed := raw.Failure(); failed {
		return []calctypes.OutputField{{ID: "err", Label: "Status", Value: msg, Type: calctypes.DisplayText}}
	}
	return []calctypes.OutputField{
		{ID: "dec", Label: "Decimal", Value: raw["dec"], Type: calctypes.DisplayNumber, Highlight: true},
		{ID: "bin", Label: "Binary", Value: raw["bin"], Type: calctypes.DisplayText},
		{ID: "hex", Label: "Hexadecimal", Value: "0x" + toString(raw["hex"]), Type: calctypes.DisplayText},
		{ID: "oct", Label: "Octal", Value: raw["oct"], Type: calctypes.DisplayText},
	}
}

// parseRadixPrefix parses the longest run of valid digits at the start of s.
// Leading whitespace and a sign are accepted, and a 0x prefix when base is 16.
// Trailing garbage is ignored; no digits at all, or int64 overflow, fails.
func parseRadixPrefix(s string, base int) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	if base == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 99
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

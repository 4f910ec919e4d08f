package output

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"calchub/pkg/calctypes"
)

const highlightMarker = "▸ "

// FormatResults lays calculator outputs out as "label  value" rows with aligned values.
// The highlighted output is marked; styles may be nil for plain rendering.
func FormatResults(outputs []calctypes.OutputField, styles StyleProvider) string {
	if len(outputs) == 0 {
		return ""
	}

	width := 0
	for _, o := range outputs {
		if w := ansi.StringWidth(o.Label); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, o := range outputs {
		marker := strings.Repeat(" ", ansi.StringWidth(highlightMarker))
		if o.Highlight {
			marker = highlightMarker
		}
		label := o.Label + strings.Repeat(" ", width-ansi.StringWidth(o.Label))
		value := DisplayValue(o)
		if styles != nil {
			label = styles.GetStyle(string(SemanticKeyword)).Render(label)
			if o.Highlight {
				value = styles.GetStyle(string(SemanticHighlight)).Render(value)
			}
		}
		b.WriteString(marker + label + "  " + value + "\n")
	}
	return b.String()
}

// DisplayValue renders an output value according to its display type.
func DisplayValue(o calctypes.OutputField) string {
	text := o.Display()
	f, isFloat := o.Value.(float64)
	switch o.Type {
	case calctypes.DisplayCurrency:
		if isFloat && !math.IsNaN(f) && !math.IsInf(f, 0) {
			if f < 0 {
				return "-$" + calctypes.FormatFixed(-f, 2)
			}
			return "$" + calctypes.FormatFixed(f, 2)
		}
		return text
	case calctypes.DisplayPercent:
		return text + "%"
	default:
		return text
	}
}

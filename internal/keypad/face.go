package keypad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// capWidth is the inner width of a single-span key cap.
const capWidth = 5

// FaceStyles holds the styles used to draw the calculator face.
type FaceStyles struct {
	Screen   lipgloss.Style
	Number   lipgloss.Style
	Operator lipgloss.Style
	Equals   lipgloss.Style
	Function lipgloss.Style
	Science  lipgloss.Style
}

// PlainFaceStyles returns unstyled caps, used for tests and plain terminals.
func PlainFaceStyles() FaceStyles {
	plain := lipgloss.NewStyle()
	return FaceStyles{
		Screen:   plain,
		Number:   plain,
		Operator: plain,
		Equals:   plain,
		Function: plain,
		Science:  plain,
	}
}

func (s FaceStyles) forKind(kind KeyKind) lipgloss.Style {
	switch kind {
	case KindNumber:
		return s.Number
	case KindOperator:
		return s.Operator
	case KindEquals:
		return s.Equals
	case KindFunction:
		return s.Function
	case KindScience:
		return s.Science
	default:
		return s.Number
	}
}

// Render draws the screen (caption and display) above the key grid.
func Render(m *Machine, styles FaceStyles) string {
	rows := Layout(m.Kind())
	width := 0
	for _, row := range rows {
		w := 0
		for _, b := range row {
			w += capSpanWidth(b.Span)
		}
		if w > width {
			width = w
		}
	}

	caption := m.Caption()
	if caption == "" {
		caption = "READY"
	}

	var sb strings.Builder
	sb.WriteString(styles.Screen.Render(alignRight(caption, width)))
	sb.WriteString("\n")
	sb.WriteString(styles.Screen.Render(alignRight(m.Display(), width)))
	sb.WriteString("\n")

	for _, row := range rows {
		for _, b := range row {
			sb.WriteString(styles.forKind(b.Key.Kind()).Render(renderCap(b)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// capSpanWidth is the printed width of a cap spanning n columns, brackets included.
func capSpanWidth(span int) int {
	if span < 1 {
		span = 1
	}
	return span * (capWidth + 2)
}

func renderCap(b Button) string {
	inner := capSpanWidth(b.Span) - 2
	label := b.Label()
	pad := inner - ansi.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	return "[" + strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left) + "]"
}

func alignRight(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", width-w) + text
}

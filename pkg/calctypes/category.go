package calctypes

import (
	"fmt"
	"strings"
)

// Category groups calculators in the navigation.
type Category string

// Calculator categories. CategoryAll is only meaningful as a filter.
const (
	CategoryAll         Category = "All"
	CategoryFinance     Category = "Finance"
	CategoryHealth      Category = "Health"
	CategoryMath        Category = "Math"
	CategoryEngineering Category = "Engineering"
	CategoryUtility     Category = "Utility"
	CategoryAdvanced    Category = "Advanced"
)

// CategoryInfo is a navigation entry for a category.
type CategoryInfo struct {
	ID    Category
	Label string
	Icon  Icon
}

// Categories returns the navigation entries in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryAll, Label: "All Tools", Icon: IconBox},
		{ID: CategoryFinance, Label: "Finance", Icon: IconTrendingUp},
		{ID: CategoryHealth, Label: "Health", Icon: IconActivity},
		{ID: CategoryMath, Label: "Math", Icon: IconCalculator},
		{ID: CategoryEngineering, Label: "Engineering", Icon: IconCpu},
		{ID: CategoryUtility, Label: "Utility", Icon: IconSettings},
		{ID: CategoryAdvanced, Label: "Advanced", Icon: IconBrainCircuit},
	}
}

// ParseCategory resolves a category name case-insensitively. An empty name is All.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c.ID), name) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Icon identifies the glyph shown next to a calculator or category.
type Icon int

// Known icons. Unknown values render as IconCalculator.
const (
	IconCalculator Icon = iota
	IconAtom
	IconBinary
	IconLayers
	IconBox
	IconTrendingUp
	IconActivity
	IconCpu
	IconSettings
	IconBrainCircuit
)

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconAtom:
		return "⚛"
	case IconBinary:
		return "01"
	case IconLayers:
		return "½"
	case IconBox:
		return "▦"
	case IconTrendingUp:
		return "↗"
	case IconActivity:
		return "♥"
	case IconCpu:
		return "⚙"
	case IconSettings:
		return "✎"
	case IconBrainCircuit:
		return "✦"
	default:
		return "▤"
	}
}

// String returns the icon name.
func (i Icon) String() string {
	switch i {
	case IconCalculator:
		return "Calculator"
	case IconAtom:
		return "Atom"
	case IconBinary:
		return "Binary"
	case IconLayers:
		return "Layers"
	case IconBox:
		return "Box"
	case IconTrendingUp:
		return "TrendingUp"
	case IconActivity:
		return "Activity"
	case IconCpu:
		return "Cpu"
	case IconSettings:
		return "Settings"
	case IconBrainCircuit:
		return "BrainCircuit"
	default:
		return "Calculator"
	}
}

// WidgetKind selects the physical keypad a calculator is operated with.
type WidgetKind int

const (
	// WidgetNone means the calculator uses a plain input form.
	WidgetNone WidgetKind = iota
	// WidgetBasic is the four-function keypad.
	WidgetBasic
	// WidgetScientific adds the scientific key row.
	WidgetScientific
)

// String returns a readable name for the widget kind.
func (w WidgetKind) String() string {
	switch w {
	case WidgetNone:
		return "none"
	case WidgetBasic:
		return "basic"
	case WidgetScientific:
		return "scientific"
	default:
		return "unknown"
	}
}

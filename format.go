package measure

import (
	"math"

	"golang.org/x/text/number"
)

// FormatNearest renders the value in the candidate unit whose
// converted amount lies closest to target. A zero target uses the
// type's configured target (default 500); no units means the type's
// default unit set. The amount is rendered with locale numeric
// grouping and at most two fraction digits, followed by the unit's
// suffix.
//
//	Distance.Of("centimetres", 500).FormatNearest(6) // "5 metres"
//	Distance.Of("centimetres", 500).FormatNearest(400) // "500cm"
func (v Value) FormatNearest(target float64, units ...string) string {
	v.guard()
	if target == 0 {
		target = v.t.target()
	}
	if len(units) == 0 {
		units = v.t.defaultUnits()
	}

	best := units[0]
	bestDistance := math.Inf(1)
	for _, unit := range units {
		distance := math.Abs(target - v.To(unit))
		if distance <= bestDistance {
			best = unit
			bestDistance = distance
		}
	}
	return v.t.render(v.To(best), best)
}

// String renders the value with default nearest-unit formatting.
func (v Value) String() string {
	return v.FormatNearest(0)
}

func (t *Type) render(value float64, unit string) string {
	formatted := t.printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))

	suffix, ok := t.format.Suffixes[unit]
	if !ok || suffix.isZero() {
		return formatted + " " + unit
	}
	// Singular when the rendered amount reads as exactly 1.
	if formatted == t.printer.Sprintf("%v", number.Decimal(1)) {
		return formatted + suffix.Singular
	}
	return formatted + suffix.Plural
}

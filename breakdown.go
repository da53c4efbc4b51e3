package measure

import (
	"math"
	"sort"
)

// BreakdownOptions controls BreakdownIn. The zero value produces a
// complete fixed-shape record: every requested unit appears and every
// amount is floored.
type BreakdownOptions struct {
	// SkipZero omits units whose computed amount is exactly zero.
	SkipZero bool
	// FloatLast keeps the fractional amount on the smallest unit
	// instead of flooring it.
	FloatLast bool
}

// Breakdown decomposes the value across its type's default units,
// largest non-zero units first with the fractional remainder on the
// smallest: Distance 2.5 metres → {metres: 2, centimetres: 50}.
func (v Value) Breakdown() Description {
	v.guard()
	return v.breakdown(v.t.defaultUnits(), BreakdownOptions{SkipZero: true, FloatLast: true})
}

// BreakdownIn decomposes the value across an explicit unit list. An
// empty list yields an empty description; duplicate units collapse to
// a single entry. Panics on unknown unit names.
func (v Value) BreakdownIn(units []string, opts BreakdownOptions) Description {
	v.guard()
	seen := make(map[string]bool, len(units))
	deduped := make([]string, 0, len(units))
	for _, unit := range units {
		v.t.ratio(unit)
		if seen[unit] {
			continue
		}
		seen[unit] = true
		deduped = append(deduped, unit)
	}
	return v.breakdown(deduped, opts)
}

func (v Value) breakdown(units []string, opts BreakdownOptions) Description {
	result := Description{}
	if len(units) == 0 {
		return result
	}

	// Largest physical unit first: ascending ratio order.
	ordered := v.t.sortByRatio(units)

	remaining := v.ref
	negative := remaining < 0
	if negative {
		remaining = -remaining
	}

	for i, unit := range ordered {
		ratio := v.t.table[unit]
		amount := remaining * ratio
		if !opts.FloatLast || i < len(ordered)-1 {
			amount = math.Floor(amount)
		}
		if amount == 0 && opts.SkipZero {
			continue
		}
		result[unit] = amount
		remaining -= amount / ratio
		if remaining < 0 {
			remaining = 0
		}
	}

	// Never return an empty breakdown for a non-empty unit list.
	if len(result) == 0 {
		unit := ordered[0]
		for _, candidate := range ordered {
			if candidate == v.t.refUnit {
				unit = candidate
				break
			}
		}
		result[unit] = 0
	}

	if negative {
		for unit, amount := range result {
			result[unit] = -amount
		}
	}
	return result
}

// sortByRatio returns units ordered ascending by conversion ratio,
// ties by name, without touching the input slice.
func (t *Type) sortByRatio(units []string) []string {
	ordered := append([]string(nil), units...)
	sort.Slice(ordered, func(i, j int) bool {
		ri, rj := t.table[ordered[i]], t.table[ordered[j]]
		if ri != rj {
			return ri < rj
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

// Package measure builds immutable measurement value types from unit
// conversion tables. A Type is created once from a table mapping unit
// names to ratios (how many of that unit make up one reference
// quantity); every Value of that type stores a single scalar in
// reference units and supports arithmetic, comparison, mixed-unit
// breakdown, nearest-unit formatting, and a round-trippable JSON shape.
//
// Six ready-made types (Distance, Angle, Period, Weight, DataSize,
// Frequency) are plain instantiations of the same factory.
package measure

import (
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTarget is the nearest-unit formatting target used when a type
// does not configure its own.
const DefaultTarget = 500

// Table maps unit names to conversion ratios. A ratio expresses how
// many of the unit equal one reference quantity, e.g. with metres as
// the reference: {"metres": 1, "centimetres": 100, "kilometres": 0.001}.
type Table map[string]float64

// Suffix is the display suffix for a unit. Singular is used when the
// rendered value is exactly 1, Plural otherwise. A plain suffix sets
// both to the same string. The zero Suffix renders as a space followed
// by the unit name.
type Suffix struct {
	Singular string
	Plural   string
}

// Text returns a Suffix appended verbatim regardless of value,
// e.g. Text("cm").
func Text(s string) Suffix {
	return Suffix{Singular: s, Plural: s}
}

// Pair returns a value-selected Suffix, e.g. Pair(" metre", " metres").
func Pair(singular, plural string) Suffix {
	return Suffix{Singular: singular, Plural: plural}
}

func (s Suffix) isZero() bool {
	return s.Singular == "" && s.Plural == ""
}

// Format holds a type's display metadata.
type Format struct {
	// Suffixes maps unit names to display suffixes. Units without an
	// entry render as value, space, unit name.
	Suffixes map[string]Suffix
	// Target is the default target for nearest-unit selection.
	// Zero means DefaultTarget.
	Target float64
	// Units restricts the default unit set used for breakdown,
	// formatting and JSON. Empty means every table unit.
	Units []string
}

// Options configures a Type at build time.
type Options struct {
	// Name identifies the type in errors, the store and the CLI.
	Name string
	// ReferenceUnit is the storage basis. Empty selects the
	// median-ratio unit of the table.
	ReferenceUnit string
	Format        Format
}

// Type is an immutable measurement type built from a conversion table.
// It is safe for concurrent use; all state is fixed at construction.
type Type struct {
	name    string
	table   Table
	units   []string // ascending by ratio, ties by name
	refUnit string
	format  Format
	printer *message.Printer
}

// New builds a measurement type from a conversion table. The table
// must be non-empty with finite positive ratios; the declared
// reference unit, format units and suffix keys must be table keys.
func New(table Table, opts Options) (*Type, error) {
	if len(table) == 0 {
		return nil, newError(ErrCodeInvalidTable, "conversion table is empty")
	}

	units := make([]string, 0, len(table))
	for unit, ratio := range table {
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
			return nil, newErrorWithContext(ErrCodeInvalidTable,
				"conversion ratio must be finite and positive",
				map[string]any{"unit": unit, "ratio": ratio})
		}
		units = append(units, unit)
	}
	sort.Slice(units, func(i, j int) bool {
		ri, rj := table[units[i]], table[units[j]]
		if ri != rj {
			return ri < rj
		}
		return units[i] < units[j]
	})

	refUnit := opts.ReferenceUnit
	if refUnit == "" {
		refUnit = units[len(units)/2]
	} else if _, ok := table[refUnit]; !ok {
		return nil, newErrorWithContext(ErrCodeInvalidTable,
			"reference unit is not in the table",
			map[string]any{"unit": refUnit})
	}

	if opts.Format.Target < 0 || math.IsNaN(opts.Format.Target) || math.IsInf(opts.Format.Target, 0) {
		return nil, newError(ErrCodeInvalidTable, "format target must be finite and non-negative")
	}
	for _, unit := range opts.Format.Units {
		if _, ok := table[unit]; !ok {
			return nil, newErrorWithContext(ErrCodeInvalidTable,
				"format unit is not in the table",
				map[string]any{"unit": unit})
		}
	}
	for unit := range opts.Format.Suffixes {
		if _, ok := table[unit]; !ok {
			return nil, newErrorWithContext(ErrCodeInvalidTable,
				"suffix unit is not in the table",
				map[string]any{"unit": unit})
		}
	}

	t := &Type{
		name:    opts.Name,
		table:   make(Table, len(table)),
		units:   units,
		refUnit: refUnit,
		format: Format{
			Suffixes: make(map[string]Suffix, len(opts.Format.Suffixes)),
			Target:   opts.Format.Target,
			Units:    append([]string(nil), opts.Format.Units...),
		},
		printer: message.NewPrinter(language.English),
	}
	for unit, ratio := range table {
		t.table[unit] = ratio
	}
	for unit, suffix := range opts.Format.Suffixes {
		t.format.Suffixes[unit] = suffix
	}
	return t, nil
}

// MustNew is New, panicking on error. Intended for package-level type
// declarations with known-good tables.
func MustNew(table Table, opts Options) *Type {
	t, err := New(table, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the type's configured name, which may be empty.
func (t *Type) Name() string {
	return t.name
}

// Units returns the type's unit names in canonical order: ascending by
// conversion ratio, i.e. largest physical unit first.
func (t *Type) Units() []string {
	return append([]string(nil), t.units...)
}

// ReferenceUnit returns the unit used as the internal storage basis.
func (t *Type) ReferenceUnit() string {
	return t.refUnit
}

// Ratio returns the conversion ratio for unit and whether the unit
// exists in the table.
func (t *Type) Ratio(unit string) (float64, bool) {
	ratio, ok := t.table[unit]
	return ratio, ok
}

// ratio resolves a unit or panics with an UNKNOWN_UNIT error.
func (t *Type) ratio(unit string) float64 {
	ratio, ok := t.table[unit]
	if !ok {
		panic(newErrorWithContext(ErrCodeUnknownUnit, "unknown unit",
			map[string]any{"type": t.name, "unit": unit}))
	}
	return ratio
}

// defaultUnits returns the configured format units, or every table
// unit in canonical order.
func (t *Type) defaultUnits() []string {
	if len(t.format.Units) > 0 {
		return t.format.Units
	}
	return t.units
}

func (t *Type) target() float64 {
	if t.format.Target > 0 {
		return t.format.Target
	}
	return DefaultTarget
}

package measure

import "math"

// Description is a partial unit→amount mapping usable wherever a full
// Value is expected, e.g. Description{"metres": 2, "centimetres": 50}.
type Description map[string]float64

// Operand is either a Value of the same type or a raw Description.
// Descriptions are coerced through the receiving value's conversion
// table.
type Operand interface {
	operandRef(t *Type) (float64, error)
}

// Value is an immutable quantity of one measurement Type. The zero
// Value belongs to no type and is rejected by every operation; obtain
// values from a Type. All operations return new values, so a Value is
// safe to share and reuse across goroutines.
type Value struct {
	t   *Type
	ref float64
}

func (v Value) operandRef(t *Type) (float64, error) {
	if v.t == nil {
		return 0, newError(ErrCodeInvalidValue, "value was not created by a measurement type")
	}
	if v.t != t {
		return 0, newErrorWithContext(ErrCodeTypeMismatch,
			"value belongs to a different measurement type",
			map[string]any{"want": t.name, "got": v.t.name})
	}
	return v.ref, nil
}

func (d Description) operandRef(t *Type) (float64, error) {
	var sum float64
	for unit, amount := range d {
		ratio, ok := t.table[unit]
		if !ok {
			return 0, newErrorWithContext(ErrCodeUnknownUnit, "unknown unit",
				map[string]any{"type": t.name, "unit": unit})
		}
		if math.IsNaN(amount) {
			return 0, newErrorWithContext(ErrCodeInvalidAmount, "amount is not a number",
				map[string]any{"type": t.name, "unit": unit})
		}
		sum += amount / ratio
	}
	return sum, nil
}

// coerce resolves an operand or panics with the coercion error.
// Invalid operands are programmer errors.
func (v Value) coerce(o Operand) float64 {
	ref, err := o.operandRef(v.t)
	if err != nil {
		panic(err)
	}
	return ref
}

func (v Value) guard() {
	if v.t == nil {
		panic(newError(ErrCodeInvalidValue, "value was not created by a measurement type"))
	}
}

func (t *Type) value(ref float64) Value {
	return Value{t: t, ref: ref}
}

// New constructs a value from a description. An empty description
// yields the zero quantity. Fails on not-a-number amounts and unknown
// unit names.
func (t *Type) New(d Description) (Value, error) {
	ref, err := d.operandRef(t)
	if err != nil {
		return Value{}, err
	}
	return t.value(ref), nil
}

// Must is New, panicking on error. New and Must are equivalent
// constructor forms.
func (t *Type) Must(d Description) Value {
	v, err := t.New(d)
	if err != nil {
		panic(err)
	}
	return v
}

// Of constructs a value holding amount of a single unit,
// e.g. Distance.Of("kilometres", 1).
func (t *Type) Of(unit string, amount float64) Value {
	return t.Must(Description{unit: amount})
}

// Zero returns the zero quantity of the type.
func (t *Type) Zero() Value {
	return t.value(0)
}

// Total folds Add over the operands starting from zero. No operands
// yields zero.
func (t *Type) Total(operands ...Operand) Value {
	total := t.Zero()
	for _, o := range operands {
		total = total.Add(o)
	}
	return total
}

// Type returns the measurement type the value belongs to, or nil for
// the zero Value.
func (v Value) Type() *Type {
	return v.t
}

// To converts the value to the named unit.
func (v Value) To(unit string) float64 {
	v.guard()
	return v.ref * v.t.ratio(unit)
}

// Multiply scales the value by a plain number.
func (v Value) Multiply(scalar float64) Value {
	v.guard()
	return v.t.value(v.ref * scalar)
}

// Divide divides the value by a plain number. To divide by another
// quantity use Ratio.
func (v Value) Divide(scalar float64) Value {
	v.guard()
	return v.t.value(v.ref / scalar)
}

// Ratio returns the dimensionless quotient of the value and another
// quantity. A zero divisor yields a non-finite result rather than an
// error.
func (v Value) Ratio(o Operand) float64 {
	v.guard()
	return v.ref / v.coerce(o)
}

// Remainder returns the value modulo scalar, computed in
// reference-unit terms. The remainder is taken on the quantity
// expressed in the reference unit regardless of any unit the caller
// has in mind.
func (v Value) Remainder(scalar float64) Value {
	v.guard()
	unit := v.t.refUnit
	return v.t.Must(Description{unit: math.Mod(v.To(unit), scalar)})
}

// Blend linearly interpolates from the value towards target. Bias is
// unclamped; values outside [0, 1] extrapolate.
func (v Value) Blend(target Operand, bias float64) Value {
	v.guard()
	other := v.coerce(target)
	return v.t.value(v.ref + bias*(other-v.ref))
}

// Add returns the sum of the value and every operand.
func (v Value) Add(operands ...Operand) Value {
	v.guard()
	sum := v.ref
	for _, o := range operands {
		sum += v.coerce(o)
	}
	return v.t.value(sum)
}

// Subtract returns the value minus the operand.
func (v Value) Subtract(o Operand) Value {
	v.guard()
	return v.t.value(v.ref - v.coerce(o))
}

// Floor rounds the value down to a whole number of the named unit.
// The result is exact in that unit, not necessarily in the reference
// unit.
func (v Value) Floor(unit string) Value {
	v.guard()
	return v.t.Must(Description{unit: math.Floor(v.To(unit))})
}

// Ceil rounds the value up to a whole number of the named unit.
func (v Value) Ceil(unit string) Value {
	v.guard()
	return v.t.Must(Description{unit: math.Ceil(v.To(unit))})
}

// Round rounds the value to the nearest whole number of the named
// unit.
func (v Value) Round(unit string) Value {
	v.guard()
	return v.t.Must(Description{unit: math.Round(v.To(unit))})
}

// Absolute returns the non-negative magnitude of the value. A
// non-negative value returns itself; aliasing is safe since values are
// immutable.
func (v Value) Absolute() Value {
	v.guard()
	if v.ref < 0 {
		return v.t.value(-v.ref)
	}
	return v
}

// Equals reports whether the value and operand hold the same
// reference value. Comparison is exact; there is no epsilon tolerance.
func (v Value) Equals(o Operand) bool {
	v.guard()
	return v.ref == v.coerce(o)
}

// GreaterThan reports whether the value exceeds the operand.
func (v Value) GreaterThan(o Operand) bool {
	v.guard()
	return v.ref > v.coerce(o)
}

// GreaterThanOrEqual reports whether the value is at least the operand.
func (v Value) GreaterThanOrEqual(o Operand) bool {
	v.guard()
	return v.ref >= v.coerce(o)
}

// LessThan reports whether the value is below the operand.
func (v Value) LessThan(o Operand) bool {
	v.guard()
	return v.ref < v.coerce(o)
}

// LessThanOrEqual reports whether the value is at most the operand.
func (v Value) LessThanOrEqual(o Operand) bool {
	v.guard()
	return v.ref <= v.coerce(o)
}

package measure

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
)

// MarshalJSON emits the value as a flat single-unit object. Among the
// type's default units, the unit whose converted amount has the
// shortest decimal rendering wins (ties go to the larger unit), so
// 500 centimetres serializes as {"metres":5}. The object feeds back
// into Type.New / Type.FromJSON unchanged.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.t == nil {
		return nil, newError(ErrCodeInvalidValue, "value was not created by a measurement type")
	}
	units := v.t.sortByRatio(v.t.defaultUnits())

	best := units[0]
	bestLen := -1
	for _, unit := range units {
		n := len(strconv.FormatFloat(v.To(unit), 'f', -1, 64))
		if bestLen < 0 || n < bestLen {
			best = unit
			bestLen = n
		}
	}
	return json.Marshal(v.breakdown([]string{best}, BreakdownOptions{SkipZero: true, FloatLast: true}))
}

// FromJSON decodes a description object produced by MarshalJSON (or
// written by hand) into a value of the type.
func (t *Type) FromJSON(data []byte) (Value, error) {
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return Value{}, wrapError(ErrCodeInvalidAmount, "malformed measurement document", err)
	}
	return t.New(d)
}

// Value implements database/sql/driver.Valuer; the stored form is the
// JSON shape.
func (v Value) Value() (driver.Value, error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// ScanValue decodes a database column previously written via
// driver.Valuer back into a value of the type.
func (t *Type) ScanValue(src any) (Value, error) {
	switch data := src.(type) {
	case string:
		return t.FromJSON([]byte(data))
	case []byte:
		return t.FromJSON(data)
	default:
		return Value{}, newErrorWithContext(ErrCodeInvalidAmount,
			"unsupported column type for measurement",
			map[string]any{"type": t.name})
	}
}

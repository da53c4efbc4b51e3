package measure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNearestPicksClosestUnit(t *testing.T) {
	v := Distance.Of("centimetres", 500)
	assert.Equal(t, "5 metres", v.FormatNearest(6))
	assert.Equal(t, "500cm", v.FormatNearest(400))
}

func TestFormatNearestDefaultTarget(t *testing.T) {
	// Default target 500 favours centimetres for 5 metres.
	assert.Equal(t, "500cm", Distance.Of("metres", 5).FormatNearest(0))
}

func TestFormatNearestExplicitUnits(t *testing.T) {
	v := Distance.Of("metres", 5)
	assert.Equal(t, "5,000mm", v.FormatNearest(1, "millimetres"))
	assert.Equal(t, "0.25km", Distance.Of("metres", 250).FormatNearest(1, "kilometres"))
}

func TestFormatSingularPlural(t *testing.T) {
	assert.Equal(t, "1 metre", Distance.Of("metres", 1).FormatNearest(1, "metres"))
	assert.Equal(t, "2 metres", Distance.Of("metres", 2).FormatNearest(1, "metres"))
	assert.Equal(t, "0 metres", Distance.Zero().FormatNearest(1, "metres"))
	assert.Equal(t, "-1 metres", Distance.Of("metres", -1).FormatNearest(1, "metres"))
}

func TestFormatDefaultSuffixIsUnitName(t *testing.T) {
	typ := MustNew(Table{"widgets": 1}, Options{})
	assert.Equal(t, "3 widgets", typ.Of("widgets", 3).FormatNearest(0))
}

func TestFormatGroupsThousands(t *testing.T) {
	v := Distance.Of("metres", 1234567.89)
	assert.Equal(t, "1,234,567.89 metres", v.FormatNearest(1, "metres"))
}

func TestFormatCapsFractionDigits(t *testing.T) {
	v := Distance.Of("metres", 1.23456)
	assert.Equal(t, "1.23 metres", v.FormatNearest(1, "metres"))
}

func TestFormatTieGoesToLaterUnit(t *testing.T) {
	typ := MustNew(Table{"first": 1, "second": 1}, Options{})
	// Both units are equidistant from any target; the later candidate
	// wins.
	assert.Equal(t, "7 second", typ.Of("first", 7).FormatNearest(0, "first", "second"))
}

func TestStringUsesDefaultFormatting(t *testing.T) {
	v := Distance.Of("centimetres", 500)
	assert.Equal(t, v.FormatNearest(0), v.String())
	assert.Equal(t, "500cm", fmt.Sprintf("%s", v))
}

func TestFormatSuffixText(t *testing.T) {
	assert.Equal(t, "90°", Angle.Of("degrees", 90).FormatNearest(1, "degrees"))
	assert.Equal(t, "2.5 rad", Angle.Of("radians", 2.5).FormatNearest(1, "radians"))
	assert.Equal(t, "512KB", DataSize.Of("kilobytes", 512).FormatNearest(1, "kilobytes"))
}

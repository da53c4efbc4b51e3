package measure

import "math"

// Predefined measurement types. Each is a plain factory invocation:
// curated conversion tables and suffix maps, no behavior of its own.
// Ratios express units per reference quantity (see Table).
var (
	// Distance is metre-based with metric and imperial units. Default
	// formatting and JSON stay metric.
	Distance = MustNew(Table{
		"kilometres":  0.001,
		"metres":      1,
		"centimetres": 100,
		"millimetres": 1000,
		"miles":       1 / 1609.344,
		"yards":       1 / 0.9144,
		"feet":        1 / 0.3048,
		"inches":      1 / 0.0254,
	}, Options{
		Name:          "distance",
		ReferenceUnit: "metres",
		Format: Format{
			Suffixes: map[string]Suffix{
				"kilometres":  Text("km"),
				"centimetres": Text("cm"),
				"millimetres": Text("mm"),
				"metres":      Pair(" metre", " metres"),
				"miles":       Pair(" mile", " miles"),
				"yards":       Pair(" yard", " yards"),
				"feet":        Pair(" foot", " feet"),
				"inches":      Pair(" inch", " inches"),
			},
			Units: []string{"kilometres", "metres", "centimetres", "millimetres"},
		},
	})

	// Angle is degree-based.
	Angle = MustNew(Table{
		"turns":      1.0 / 360,
		"radians":    math.Pi / 180,
		"degrees":    1,
		"gradians":   400.0 / 360,
		"arcminutes": 60,
		"arcseconds": 3600,
	}, Options{
		Name:          "angle",
		ReferenceUnit: "degrees",
		Format: Format{
			Suffixes: map[string]Suffix{
				"turns":      Pair(" turn", " turns"),
				"radians":    Text(" rad"),
				"degrees":    Text("°"),
				"gradians":   Text(" grad"),
				"arcminutes": Text("′"),
				"arcseconds": Text("″"),
			},
			Units: []string{"turns", "degrees", "arcminutes", "arcseconds"},
		},
	})

	// Period is second-based time.
	Period = MustNew(Table{
		"milliseconds": 1000,
		"seconds":      1,
		"minutes":      1.0 / 60,
		"hours":        1.0 / 3600,
		"days":         1.0 / 86400,
		"weeks":        1.0 / 604800,
		"years":        1.0 / 31557600, // Julian year
	}, Options{
		Name:          "period",
		ReferenceUnit: "seconds",
		Format: Format{
			Suffixes: map[string]Suffix{
				"milliseconds": Text("ms"),
				"seconds":      Pair(" second", " seconds"),
				"minutes":      Pair(" minute", " minutes"),
				"hours":        Pair(" hour", " hours"),
				"days":         Pair(" day", " days"),
				"weeks":        Pair(" week", " weeks"),
				"years":        Pair(" year", " years"),
			},
			Units: []string{"weeks", "days", "hours", "minutes", "seconds", "milliseconds"},
		},
	})

	// Weight is kilogram-based mass.
	Weight = MustNew(Table{
		"milligrams": 1e6,
		"grams":      1000,
		"kilograms":  1,
		"tonnes":     0.001,
		"ounces":     1 / 0.028349523125,
		"pounds":     1 / 0.45359237,
		"stone":      1 / 6.35029318,
	}, Options{
		Name:          "weight",
		ReferenceUnit: "kilograms",
		Format: Format{
			Suffixes: map[string]Suffix{
				"milligrams": Text("mg"),
				"grams":      Text("g"),
				"kilograms":  Text("kg"),
				"tonnes":     Pair(" tonne", " tonnes"),
				"ounces":     Text("oz"),
				"pounds":     Text("lb"),
				"stone":      Text("st"),
			},
			Units: []string{"tonnes", "kilograms", "grams", "milligrams"},
		},
	})

	// DataSize is byte-based with binary multiples.
	DataSize = MustNew(Table{
		"bits":      8,
		"bytes":     1,
		"kilobytes": 1.0 / 1024,
		"megabytes": 1.0 / (1024 * 1024),
		"gigabytes": 1.0 / (1024 * 1024 * 1024),
		"terabytes": 1.0 / (1024 * 1024 * 1024 * 1024),
	}, Options{
		Name:          "datasize",
		ReferenceUnit: "bytes",
		Format: Format{
			Suffixes: map[string]Suffix{
				"bits":      Text("b"),
				"bytes":     Text("B"),
				"kilobytes": Text("KB"),
				"megabytes": Text("MB"),
				"gigabytes": Text("GB"),
				"terabytes": Text("TB"),
			},
			Units: []string{"terabytes", "gigabytes", "megabytes", "kilobytes", "bytes"},
		},
	})

	// Frequency is hertz-based.
	Frequency = MustNew(Table{
		"millihertz": 1000,
		"hertz":      1,
		"kilohertz":  0.001,
		"megahertz":  1e-6,
		"gigahertz":  1e-9,
	}, Options{
		Name:          "frequency",
		ReferenceUnit: "hertz",
		Format: Format{
			Suffixes: map[string]Suffix{
				"millihertz": Text("mHz"),
				"hertz":      Text("Hz"),
				"kilohertz":  Text("kHz"),
				"megahertz":  Text("MHz"),
				"gigahertz":  Text("GHz"),
			},
		},
	})
)

// Quantities lists the predefined types by name.
func Quantities() map[string]*Type {
	return map[string]*Type{
		Distance.Name():  Distance,
		Angle.Name():     Angle,
		Period.Name():    Period,
		Weight.Name():    Weight,
		DataSize.Name():  DataSize,
		Frequency.Name(): Frequency,
	}
}

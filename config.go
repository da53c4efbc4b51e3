package measure

import (
	"os"

	"gopkg.in/yaml.v3"
)

// TypeDefinition is the YAML shape of a user-defined measurement type:
//
//	units:
//	  metres: 1
//	  centimetres: 100
//	reference: metres
//	format:
//	  target: 500
//	  units: [metres, centimetres]
//	  suffixes:
//	    centimetres: cm
//	    metres: [" metre", " metres"]
type TypeDefinition struct {
	Units     Table            `yaml:"units"`
	Reference string           `yaml:"reference"`
	Format    FormatDefinition `yaml:"format"`
}

// FormatDefinition is the YAML shape of a type's format metadata.
type FormatDefinition struct {
	Target   float64           `yaml:"target"`
	Units    []string          `yaml:"units"`
	Suffixes map[string]Suffix `yaml:"suffixes"`
}

// UnmarshalYAML accepts either a plain scalar suffix ("cm") or a
// two-element [singular, plural] sequence.
func (s *Suffix) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}
		*s = Text(text)
		return nil
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return newError(ErrCodeInvalidConfig, "suffix sequence must have exactly two entries")
		}
		*s = Pair(pair[0], pair[1])
		return nil
	default:
		return newError(ErrCodeInvalidConfig, "suffix must be a string or a [singular, plural] pair")
	}
}

// ParseTypes builds measurement types from a YAML document mapping
// type names to definitions.
func ParseTypes(data []byte) (map[string]*Type, error) {
	var doc struct {
		Types map[string]TypeDefinition `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, wrapError(ErrCodeInvalidConfig, "malformed type definitions", err)
	}
	if len(doc.Types) == 0 {
		return nil, newError(ErrCodeInvalidConfig, "no types defined")
	}

	types := make(map[string]*Type, len(doc.Types))
	for name, def := range doc.Types {
		t, err := New(def.Units, Options{
			Name:          name,
			ReferenceUnit: def.Reference,
			Format: Format{
				Suffixes: def.Format.Suffixes,
				Target:   def.Format.Target,
				Units:    def.Format.Units,
			},
		})
		if err != nil {
			return nil, wrapError(ErrCodeInvalidConfig, "invalid definition for type "+name, err)
		}
		types[name] = t
	}
	return types, nil
}

// LoadTypes reads measurement type definitions from a YAML file.
func LoadTypes(path string) (map[string]*Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrCodeInvalidConfig, "reading type definitions", err)
	}
	return ParseTypes(data)
}

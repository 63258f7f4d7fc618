package element

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type jsonDeclaration struct {
	Kind       string          `json:"kind"`
	Attributes json.RawMessage `json:"attributes"`
}

type yamlDeclaration struct {
	Kind       string    `yaml:"kind"`
	Attributes yaml.Node `yaml:"attributes"`
}

// UnmarshalJSON decodes {"kind": ..., "attributes": {...}}, dispatching the
// attributes payload to the record matching kind.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	var raw jsonDeclaration
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return err
	}
	attrs, err := decodeAttributes(kind, func(target any) error {
		if len(raw.Attributes) == 0 || string(raw.Attributes) == "null" {
			return nil
		}
		return json.Unmarshal(raw.Attributes, target)
	})
	if err != nil {
		return fmt.Errorf("element: decode %s attributes: %w", kind, err)
	}
	*d = New(attrs)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (d *Declaration) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlDeclaration
	if err := value.Decode(&raw); err != nil {
		return err
	}
	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return err
	}
	attrs, err := decodeAttributes(kind, func(target any) error {
		if raw.Attributes.Kind == 0 {
			return nil
		}
		return raw.Attributes.Decode(target)
	})
	if err != nil {
		return fmt.Errorf("element: decode %s attributes: %w", kind, err)
	}
	*d = New(attrs)
	return nil
}

func decodeAttributes(kind Kind, decode func(any) error) (Attributes, error) {
	switch kind {
	case KindMeta:
		var attrs MetaAttrs
		err := decode(&attrs)
		return attrs, err
	case KindLink:
		var attrs LinkAttrs
		err := decode(&attrs)
		return attrs, err
	case KindScript:
		var attrs ScriptAttrs
		err := decode(&attrs)
		return attrs, err
	case KindStyle:
		var attrs StyleAttrs
		err := decode(&attrs)
		return attrs, err
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

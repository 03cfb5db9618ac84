// Package schema implements the minimal subset of JSON Schema used to
// describe and validate tool parameters.
package schema

import "fmt"

type Schema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties,omitempty"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties any                 `json:"additionalProperties,omitempty"`
}

type Property struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
}

// Object builds an object schema that rejects properties it does not declare.
func Object(properties map[string]Property, required ...string) Schema {
	return Schema{
		Type:                 "object",
		Properties:           properties,
		Required:             required,
		AdditionalProperties: false,
	}
}

// Validate checks an argument map against the schema. Any violation is
// reported as an error; nil means the arguments are safe to hand to an
// executor.
func (s Schema) Validate(input map[string]any) error {
	for _, field := range s.Required {
		if _, ok := input[field]; !ok {
			return fmt.Errorf("missing required field: %s", field)
		}
	}

	for name, value := range input {
		prop, ok := s.Properties[name]
		if !ok {
			if allowed, isBool := s.AdditionalProperties.(bool); isBool && !allowed {
				return fmt.Errorf("unexpected field: %s", name)
			}
			continue
		}

		switch prop.Type {
		case "string":
			if _, ok := value.(string); !ok {
				return fmt.Errorf("field %s must be a string", name)
			}
		case "number", "integer":
			switch value.(type) {
			case int, int32, int64, float32, float64:
			default:
				return fmt.Errorf("field %s must be a number", name)
			}
		case "boolean":
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("field %s must be a boolean", name)
			}
		}

		if len(prop.Enum) > 0 {
			matched := false
			for _, allowed := range prop.Enum {
				if value == allowed {
					matched = true
					break
				}
			}
			if !matched {
				return fmt.Errorf("field %s must be one of %v", name, prop.Enum)
			}
		}
	}

	return nil
}

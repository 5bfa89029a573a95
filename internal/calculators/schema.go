// Package calculators defines the dispatch contract every calculator in the
// suite shares: a name, a schema describing its parameters, and a calculate
// function producing a report. A host application routes any calculator
// request through the same name -> validate -> calculate pipeline.
package calculators

import (
	"fmt"
)

// FieldType enumerates the parameter types a schema can declare.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldString FieldType = "string"
	FieldArray  FieldType = "array"
	FieldObject FieldType = "object"
)

// Field describes one parameter of a calculator.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty"`
	Maximum     *float64  `json:"maximum,omitempty"`
}

// Schema is a JSON-Schema-like descriptor of a calculator's parameters.
type Schema struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Validate checks params against the schema: required fields must be
// present, and declared types and numeric bounds must hold. Unknown params
// are ignored.
func (s *Schema) Validate(params map[string]any) error {
	for _, field := range s.Fields {
		value, ok := params[field.Name]
		if !ok {
			if field.Required {
				return fmt.Errorf("missing required parameter %q", field.Name)
			}
			continue
		}

		switch field.Type {
		case FieldNumber:
			number, ok := asFloat(value)
			if !ok {
				return fmt.Errorf("parameter %q must be a number, got %T", field.Name, value)
			}
			if field.Minimum != nil && number < *field.Minimum {
				return fmt.Errorf("parameter %q must be >= %v, got %v", field.Name, *field.Minimum, number)
			}
			if field.Maximum != nil && number > *field.Maximum {
				return fmt.Errorf("parameter %q must be <= %v, got %v", field.Name, *field.Maximum, number)
			}
		case FieldString:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("parameter %q must be a string, got %T", field.Name, value)
			}
		case FieldArray:
			if _, ok := value.([]any); !ok {
				return fmt.Errorf("parameter %q must be an array, got %T", field.Name, value)
			}
		case FieldObject:
			if _, ok := value.(map[string]any); !ok {
				return fmt.Errorf("parameter %q must be an object, got %T", field.Name, value)
			}
		}
	}
	return nil
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func floatPtr(f float64) *float64 {
	return &f
}

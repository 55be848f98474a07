package recordio

import (
	"errors"
	"fmt"
)

// FieldType identifies how a field's values are represented.
type FieldType int

const (
	// String is a text field with an optional fixed capacity in characters.
	String FieldType = iota
	// Double is a 64-bit floating point field.
	Double
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

var ErrDuplicateField = errors.New("duplicate field name")

// Field describes one column: name, value type, and for string fields an
// optional fixed capacity (0 means unbounded).
type Field struct {
	Name string
	Type FieldType
	Size int
}

// Schema is an ordered list of uniquely named fields. Once handed to the
// adapter a schema is treated as immutable; derive new ones via Clone.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema from the given fields, rejecting duplicate names.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := s.AddField(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddField appends a field, preserving order and name uniqueness.
func (s *Schema) AddField(f Field) error {
	if _, exists := s.index[f.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
	}
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

// Clone returns an independent copy of the schema.
func (s *Schema) Clone() *Schema {
	c := &Schema{
		fields: make([]Field, len(s.fields)),
		index:  make(map[string]int, len(s.index)),
	}
	copy(c.fields, s.fields)
	for name, i := range s.index {
		c.index[name] = i
	}
	return c
}

// FieldIndex resolves a field name to its position. The lookup is backed by a
// map built at construction time so callers can resolve once and use indexed
// access per row.
func (s *Schema) FieldIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Field returns the descriptor at position i.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// NumFields returns the number of fields in the schema.
func (s *Schema) NumFields() int {
	return len(s.fields)
}

// Fields returns the ordered field descriptors. The returned slice is a copy.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the ordered field names.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

package recordio

// Row is an ordered tuple of field values conforming to a schema. A nil value
// means the field is null (unset). Rows are positionally aligned with their
// schema; they carry no field names of their own.
type Row []any

// IsNull reports whether the value at position i is unset.
func (r Row) IsNull(i int) bool {
	return r[i] == nil
}

// StringValue returns the value at position i as a string. The second return
// is false when the field is null or not a string.
func (r Row) StringValue(i int) (string, bool) {
	v, ok := r[i].(string)
	return v, ok
}

// FloatValue returns the value at position i as a float64. The second return
// is false when the field is null or not a double.
func (r Row) FloatValue(i int) (float64, bool) {
	v, ok := r[i].(float64)
	return v, ok
}

// Builder is a reusable output-row buffer. The adapter owns exactly one and
// resets it before each row; Finalize snapshots the current values so the
// emitted Row is independent of later resets.
type Builder struct {
	schema *Schema
	values []any
}

// NewBuilder creates a builder for rows of the given schema.
func NewBuilder(schema *Schema) *Builder {
	return &Builder{
		schema: schema,
		values: make([]any, schema.NumFields()),
	}
}

// Reset clears every value back to unset.
func (b *Builder) Reset() {
	for i := range b.values {
		b.values[i] = nil
	}
}

// SetString writes a string value at position i, truncating to the field's
// fixed capacity when one is declared.
func (b *Builder) SetString(i int, v string) {
	if size := b.schema.Field(i).Size; size > 0 {
		if runes := []rune(v); len(runes) > size {
			v = string(runes[:size])
		}
	}
	b.values[i] = v
}

// SetFloat writes a float value at position i.
func (b *Builder) SetFloat(i int, v float64) {
	b.values[i] = v
}

// SetNull marks the value at position i as unset.
func (b *Builder) SetNull(i int) {
	b.values[i] = nil
}

// Finalize returns an immutable snapshot of the buffered values.
func (b *Builder) Finalize() Row {
	out := make(Row, len(b.values))
	copy(out, b.values)
	return out
}

// Copier applies a positional field mapping from source rows into a builder.
// Mappings are added once, at schema-negotiation time, so per-row copying is a
// plain indexed loop with no name lookups.
type Copier struct {
	mappings []mapping
}

type mapping struct {
	dst, src int
}

func NewCopier() *Copier {
	return &Copier{}
}

// Add registers that destination position dst receives the value at source
// position src.
func (c *Copier) Add(dst, src int) {
	c.mappings = append(c.mappings, mapping{dst: dst, src: src})
}

// Copy applies every registered mapping from in into b.
func (c *Copier) Copy(b *Builder, in Row) {
	for _, m := range c.mappings {
		b.values[m.dst] = in[m.src]
	}
}

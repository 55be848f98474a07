package recordio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema_PreservesOrder(t *testing.T) {
	s, err := NewSchema(
		Field{Name: "id", Type: Double},
		Field{Name: "comment", Type: String},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "comment"}, s.FieldNames())
	assert.Equal(t, 2, s.NumFields())
}

func TestNewSchema_RejectsDuplicateNames(t *testing.T) {
	_, err := NewSchema(
		Field{Name: "comment", Type: String},
		Field{Name: "comment", Type: String},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestSchema_AddFieldRejectsDuplicate(t *testing.T) {
	s, err := NewSchema(Field{Name: "id", Type: Double})
	require.NoError(t, err)
	assert.ErrorIs(t, s.AddField(Field{Name: "id", Type: String}), ErrDuplicateField)
}

func TestSchema_FieldIndex(t *testing.T) {
	s, err := NewSchema(
		Field{Name: "id", Type: Double},
		Field{Name: "comment", Type: String},
	)
	require.NoError(t, err)

	i, ok := s.FieldIndex("comment")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.FieldIndex("missing")
	assert.False(t, ok)
}

func TestSchema_CloneIsIndependent(t *testing.T) {
	s, err := NewSchema(Field{Name: "id", Type: Double})
	require.NoError(t, err)

	c := s.Clone()
	require.NoError(t, c.AddField(Field{Name: "extra", Type: String, Size: 100}))

	assert.Equal(t, 1, s.NumFields())
	assert.Equal(t, 2, c.NumFields())

	_, ok := s.FieldIndex("extra")
	assert.False(t, ok)
}

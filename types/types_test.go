package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnType(t *testing.T) {
	assert.True(t, Long.IsNumeric())
	assert.True(t, Float.IsNumeric())
	assert.True(t, Double.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.False(t, DoubleArray.IsNumeric())

	assert.True(t, DoubleArray.IsArray())
	assert.False(t, Double.IsArray())
	assert.Equal(t, Double, DoubleArray.ElementType())
	assert.Equal(t, Unknown, Long.ElementType())
}

func TestParseColumnType(t *testing.T) {
	tests := map[string]ColumnType{
		"bigint":        Long,
		"FLOAT":         Float,
		"double":        Double,
		"VARCHAR":       String,
		"array<double>": DoubleArray,
		"ARRAY<BIGINT>": LongArray,
		"ARRAY<thing>":  Unknown,
		"geometry":      Unknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseColumnType(in), in)
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.WithDefaults()
	assert.Equal(t, NewConfig(), c)
	assert.NoError(t, c.Validate())

	c.VirtualColumnPrefix = "bad prefix"
	assert.Error(t, c.Validate())
}

package extraction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/druid-example/utils/registry"
)

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

func TestStringLengthFnApply(t *testing.T) {
	fn, err := NewStringLengthFn(3)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{"截断", str("foobar"), str("foo")},
		{"短字符串原样返回", str("x"), str("x")},
		{"恰好等长", str("abc"), str("abc")},
		{"空字符串", str(""), str("")},
		{"空值", nil, nil},
		{"多字节字符按字符截断", str("héllo"), str("hél")},
		{"中文", str("流式处理引擎"), str("流式处")},
		{"字符数不足但字节数超出", str("流式"), str("流式")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fn.Apply(tt.input))
		})
	}

	zero, err := NewStringLengthFn(0)
	require.NoError(t, err)
	assert.Equal(t, str(""), ApplyString(zero, "abc"))
}

func TestStringLengthFnProperties(t *testing.T) {
	fn, err := NewStringLengthFn(3)
	require.NoError(t, err)
	assert.False(t, fn.PreservesOrdering())
	assert.Equal(t, ManyToOne, fn.ExtractionType())
	assert.Equal(t, "MANY_TO_ONE", fn.ExtractionType().String())
	assert.Equal(t, StringLengthTypeName, fn.Type())
	assert.Equal(t, 3, fn.Length())
	assert.Equal(t, []byte{0xFF, 0x00, 0, 0, 0, 3}, fn.CacheKey())
	assert.Equal(t, "StringLengthFn{length=3}", fn.String())

	other, _ := NewStringLengthFn(4)
	same, _ := NewStringLengthFn(3)
	assert.True(t, fn.Equal(same))
	assert.False(t, fn.Equal(other))
	assert.NotEqual(t, fn.CacheKey(), other.CacheKey())

	_, err = NewStringLengthFn(-1)
	assert.Error(t, err)
}

func TestStringLengthFnJSON(t *testing.T) {
	fn, _ := NewStringLengthFn(3)
	data, err := json.Marshal(fn)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"example","length":3}`, string(data))

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, fn.Equal(decoded))

	_, err = Decode([]byte(`{"type":"example"}`))
	assert.Error(t, err)
	_, err = Decode([]byte(`{"type":"example","length":-2}`))
	assert.Error(t, err)
	_, err = Decode([]byte(`{"type":"regex","expr":"a"}`))
	assert.ErrorIs(t, err, registry.ErrUnknownType)
}

func TestSubstringFn(t *testing.T) {
	prefix, err := NewSubstringFn(0, intp(1))
	require.NoError(t, err)
	assert.Equal(t, str("a"), prefix.Apply(str("abc")))
	assert.True(t, prefix.PreservesOrdering())

	mid, err := NewSubstringFn(2, intp(2))
	require.NoError(t, err)
	assert.Equal(t, str("cd"), mid.Apply(str("abcdef")))
	assert.Equal(t, str("c"), mid.Apply(str("abc")))
	assert.Nil(t, mid.Apply(str("ab")))
	assert.Nil(t, mid.Apply(nil))
	assert.False(t, mid.PreservesOrdering())

	rest, err := NewSubstringFn(1, nil)
	require.NoError(t, err)
	assert.Equal(t, str("式处理"), rest.Apply(str("流式处理")))
	assert.Equal(t, "SubstringFn{index=1}", rest.String())
	assert.Equal(t, []byte{0x09, 0, 0, 0, 1, 0xFF, 0xFF, 0xFF, 0xFF}, rest.CacheKey())

	_, err = NewSubstringFn(-1, nil)
	assert.Error(t, err)
	_, err = NewSubstringFn(0, intp(-1))
	assert.Error(t, err)
}

func TestSubstringFnJSON(t *testing.T) {
	decoded, err := Decode([]byte(`{"type":"substring","index":0,"length":1}`))
	require.NoError(t, err)
	want, _ := NewSubstringFn(0, intp(1))
	assert.True(t, want.Equal(decoded))

	noLength, _ := NewSubstringFn(0, nil)
	assert.False(t, noLength.Equal(decoded))

	data, err := json.Marshal(noLength)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"substring","index":0}`, string(data))

	fn, _ := NewStringLengthFn(1)
	assert.False(t, want.Equal(fn))
}

func TestRegisteredFns(t *testing.T) {
	assert.Equal(t, []string{"example", "substring"}, Fns.Names())
}

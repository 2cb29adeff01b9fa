package functions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/druid-example/types"
)

func TestExampleSumEval(t *testing.T) {
	e, err := Compile("example_sum(x, 1)")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, e.RequiredBindings())
	assert.Equal(t, types.DoubleArray, e.OutputType())
	assert.Equal(t, "example_sum(x, 1)", e.String())

	tests := []struct {
		name  string
		input interface{}
		want  interface{}
	}{
		{"双精度数组", []float64{1.5, 2.5}, []float64{2.5, 3.5}},
		{"整数数组", []int64{1, 2, 3}, []float64{2, 3, 4}},
		{"跳过空元素", []interface{}{1, nil, 2.5}, []float64{2, 3.5}},
		{"空数组", []interface{}{}, []float64{}},
		{"字符串数组", []string{"1", "2"}, nil},
		{"混合数组", []interface{}{1, "a"}, nil},
		{"非数组", 3.0, nil},
		{"空值", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Eval(map[string]interface{}{"x": tt.input})
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := e.Eval(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExampleSumLiterals(t *testing.T) {
	for _, src := range []string{
		"example_sum(x, 1.5)",
		"example_sum(x, -2)",
		"example_sum(x, -0.5)",
		"example_sum(x, +3)",
		"EXAMPLE_SUM(x, 1)",
	} {
		_, err := Compile(src)
		assert.NoError(t, err, src)
	}

	e := MustCompile("example_sum(x, -0.5)")
	got, err := e.Eval(map[string]interface{}{"x": []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, got)
}

func TestExampleSumValidation(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		argument string
		message  string
	}{
		{"参数过少", "example_sum(x)", "", "requires 2 arguments"},
		{"参数过多", "example_sum(x, 1, 2)", "", "requires 2 arguments"},
		{"非字面量", "example_sum(x, y)", ArgumentToAdd, "literal"},
		{"表达式", "example_sum(x, 1 + 1)", ArgumentToAdd, "literal"},
		{"字符串字面量", `example_sum(x, "1")`, ArgumentToAdd, "Argument to add must be a number"},
		{"布尔字面量", "example_sum(x, true)", ArgumentToAdd, "Argument to add must be a number"},
		{"嵌套调用", "len(example_sum(x, y))", ArgumentToAdd, "literal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), err.Error())
			assert.Equal(t, ExampleSumName, ve.Function)
			assert.Equal(t, tt.argument, ve.Argument)
			assert.Contains(t, ve.Message, tt.message)
		})
	}
}

func TestExampleSumExecute(t *testing.T) {
	m := NewExampleSumMacro()
	assert.Equal(t, TypeArray, m.GetType())
	assert.Equal(t, "array", m.GetCategory())
	assert.NotEmpty(t, m.GetDescription())
	assert.Equal(t, "example_sum(arr, 2)", m.Stringify("arr", "2"))

	_, err := m.Execute([]interface{}{[]float64{1}})
	assert.Error(t, err)
	_, err = m.Execute([]interface{}{[]float64{1}, "2"})
	assert.Error(t, err)

	out, err := m.Execute([]interface{}{[...]int{1, 2}, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12}, out)
}

func TestCompileExpressions(t *testing.T) {
	e, err := Compile("  a * 2 + b  ")
	require.NoError(t, err)
	assert.Equal(t, "a * 2 + b", e.String())
	assert.Equal(t, []string{"a", "b"}, e.RequiredBindings())
	assert.Equal(t, types.Unknown, e.OutputType())

	out, err := e.Eval(map[string]interface{}{"a": 1.5, "b": 1.0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, out)

	nested := MustCompile("len(example_sum(prices, 1))")
	assert.Equal(t, []string{"prices"}, nested.RequiredBindings())
	out, err = nested.Eval(map[string]interface{}{"prices": []float64{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, out)

	_, err = Compile("")
	assert.Error(t, err)
	_, err = Compile("a +")
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("(") })
}

func TestCustomFunction(t *testing.T) {
	err := RegisterCustomFunction("double_it", TypeCustom, "math", "doubles", 1, 1,
		func(args []interface{}) (interface{}, error) {
			v, _ := args[0].(float64)
			return v * 2, nil
		})
	require.NoError(t, err)
	defer Unregister("double_it")

	assert.Error(t, RegisterCustomFunction("DOUBLE_IT", TypeCustom, "math", "", 1, 1, nil))

	e, err := Compile("double_it(x) + 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, e.RequiredBindings())
	out, err := e.Eval(map[string]interface{}{"x": 2.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, out)

	out, err = Execute("Double_It", []interface{}{4.0})
	require.NoError(t, err)
	assert.Equal(t, 8.0, out)
	_, err = Execute("double_it", nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "double_it")

	_, isMacro := GetMacro("double_it")
	assert.False(t, isMacro)
	assert.Len(t, GetByType(TypeCustom), 1)
}

func TestRegistry(t *testing.T) {
	r := NewFunctionRegistry()
	require.NoError(t, r.Register(NewExampleSumMacro()))
	assert.Error(t, r.Register(NewExampleSumMacro()))
	assert.Equal(t, []string{"example_sum"}, r.Names())

	m, ok := r.GetMacro("EXAMPLE_SUM")
	require.True(t, ok)
	assert.Equal(t, types.DoubleArray, m.OutputType())

	assert.True(t, r.Unregister("Example_Sum"))
	assert.False(t, r.Unregister("example_sum"))
	assert.Empty(t, r.GetByType(TypeArray))

	_, err := Execute("missing_fn", nil)
	assert.Error(t, err)

	assert.True(t, strings.Contains(strings.Join(Names(), ","), ExampleSumName))
}

func TestValidationErrorMessage(t *testing.T) {
	e := &ValidationError{Function: "f", Argument: "A", Message: "bad"}
	assert.Equal(t, "function[f] A: bad", e.Error())
	e = &ValidationError{Function: "f", Message: "bad"}
	assert.Equal(t, "function[f] bad", e.Error())
}

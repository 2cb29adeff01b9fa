/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNullableDouble(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect float64
		ok     bool
	}{
		{"nil", nil, 0, false},
		{"int", 123, 123, true},
		{"int64", int64(-7), -7, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 2.25, 2.25, true},
		{"json number", json.Number("40"), 40, true},
		{"numeric string", "106.793700", 106.7937, true},
		{"invalid string", "abc", 0, false},
		{"invalid type", []int{1, 2, 3}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNullableDouble(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expect, got, 1e-9)
		})
	}
}

func TestToFloat64SpecialValues(t *testing.T) {
	f, err := ToFloat64E("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	f, err = ToFloat64E("Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	assert.Equal(t, 0.0, ToFloat64("not a number"))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber(1))
	assert.True(t, IsNumber(uint8(1)))
	assert.True(t, IsNumber(3.5))
	assert.True(t, IsNumber(json.Number("1")))
	assert.False(t, IsNumber("1"))
	assert.False(t, IsNumber(nil))
	assert.False(t, IsNumber(true))
}

func TestToSlice(t *testing.T) {
	s, ok := ToSlice([]float64{1, 2})
	require.True(t, ok)
	assert.Equal(t, []interface{}{1.0, 2.0}, s)

	s, ok = ToSlice([]interface{}{"a", nil})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"a", nil}, s)

	_, ok = ToSlice("abc")
	assert.False(t, ok)
	_, ok = ToSlice(nil)
	assert.False(t, ok)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "40", ToString(40))
	assert.Equal(t, "spot", ToString("spot"))
	assert.Equal(t, "[a b]", ToString([]string{"a", "b"}))
}

/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast wraps github.com/spf13/cast with the null handling the
// adapters need: nil and unconvertible values are reported instead of being
// silently turned into zero.
package cast

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	spfcast "github.com/spf13/cast"
)

func ToFloat64E(x any) (float64, error) {
	if n, ok := x.(json.Number); ok {
		return n.Float64()
	}
	return spfcast.ToFloat64E(x)
}

// ToFloat64 returns 0 for nil or unconvertible values.
func ToFloat64(x any) float64 {
	f, _ := ToFloat64E(x)
	return f
}

func ToInt64E(x any) (int64, error) {
	if n, ok := x.(json.Number); ok {
		return n.Int64()
	}
	return spfcast.ToInt64E(x)
}

func ToStringE(x any) (string, error) {
	return spfcast.ToStringE(x)
}

func ToString(x any) string {
	if x == nil {
		return ""
	}
	s, err := spfcast.ToStringE(x)
	if err != nil {
		return fmt.Sprintf("%v", x)
	}
	return s
}

func ToTimeE(x any) (time.Time, error) {
	return spfcast.ToTimeE(x)
}

// ToNullableDouble converts a numeric sample. ok is false for nil, for
// strings that do not hold a number and for non-numeric types.
func ToNullableDouble(x any) (float64, bool) {
	if x == nil {
		return 0, false
	}
	f, err := ToFloat64E(x)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumber reports whether x holds a Go numeric value (strings excluded).
func IsNumber(x any) bool {
	switch x.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// ToSlice returns the elements of any slice or array value.
// ok is false when x is not a slice or array.
func ToSlice(x any) ([]any, bool) {
	if x == nil {
		return nil, false
	}
	if s, ok := x.([]any); ok {
		return s, true
	}
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out, true
}

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

package types

import "strings"

// ColumnType is the value type of a column, an aggregation result or an
// expression output, as the host engine reports it.
type ColumnType string

const (
	// Unknown 无法推断类型
	Unknown     ColumnType = ""
	Long        ColumnType = "LONG"
	Float       ColumnType = "FLOAT"
	Double      ColumnType = "DOUBLE"
	String      ColumnType = "STRING"
	Complex     ColumnType = "COMPLEX"
	LongArray   ColumnType = "ARRAY<LONG>"
	DoubleArray ColumnType = "ARRAY<DOUBLE>"
	StringArray ColumnType = "ARRAY<STRING>"
)

// IsNumeric reports whether values of this type are scalar numbers.
func (t ColumnType) IsNumeric() bool {
	switch t {
	case Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsArray reports whether this is an ARRAY<...> type.
func (t ColumnType) IsArray() bool {
	return strings.HasPrefix(string(t), "ARRAY<") && strings.HasSuffix(string(t), ">")
}

// ElementType returns the element type of an array type, or Unknown.
func (t ColumnType) ElementType() ColumnType {
	if !t.IsArray() {
		return Unknown
	}
	s := string(t)
	return ColumnType(s[len("ARRAY<") : len(s)-1])
}

// ParseColumnType accepts the host's spelling of a type name, case-insensitively.
// Unrecognised names map to Unknown.
func ParseColumnType(name string) ColumnType {
	upper := strings.ToUpper(strings.TrimSpace(name))
	switch upper {
	case "LONG", "BIGINT", "INTEGER", "INT":
		return Long
	case "FLOAT", "REAL":
		return Float
	case "DOUBLE", "DECIMAL":
		return Double
	case "STRING", "VARCHAR":
		return String
	case "COMPLEX":
		return Complex
	}
	t := ColumnType(upper)
	if t.IsArray() {
		if elem := ParseColumnType(string(t.ElementType())); elem != Unknown {
			return ColumnType("ARRAY<" + string(elem) + ">")
		}
	}
	return Unknown
}

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

// Package segment holds the column-access capability the host hands to
// aggregators, plus the cursors used to drive them over in-memory rows,
// Apache Arrow records and expression-backed virtual columns.
package segment

import (
	"math"

	"github.com/rulego/druid-example/utils/cast"
)

// ColumnValueSelector reads the value of one column at the cursor's current row.
// The numeric getters return 0 when IsNull is true.
type ColumnValueSelector interface {
	IsNull() bool
	GetDouble() float64
	GetFloat() float32
	GetLong() int64
	GetObject() interface{}
}

// ColumnSelectorFactory hands out selectors by column name. Unknown columns
// yield a selector that is always null, never an error.
type ColumnSelectorFactory interface {
	MakeColumnValueSelector(column string) ColumnValueSelector
}

// ColumnInspector is implemented by factories that know which columns exist.
type ColumnInspector interface {
	HasColumn(column string) bool
}

// Cursor walks rows; selectors made from it follow its position.
type Cursor interface {
	ColumnSelectorFactory
	Advance()
	IsDone() bool
	Reset()
}

// NilSelector is the selector for a column that does not exist.
var NilSelector ColumnValueSelector = nilSelector{}

type nilSelector struct{}

func (nilSelector) IsNull() bool           { return true }
func (nilSelector) GetDouble() float64     { return 0 }
func (nilSelector) GetFloat() float32      { return 0 }
func (nilSelector) GetLong() int64         { return 0 }
func (nilSelector) GetObject() interface{} { return nil }

// objectSelector derives numeric views from an object getter.
type objectSelector struct {
	get func() interface{}
}

// ObjectSelector adapts a value getter into a ColumnValueSelector. Values that
// cannot be read as numbers are null for the numeric views.
func ObjectSelector(get func() interface{}) ColumnValueSelector {
	return objectSelector{get: get}
}

func (s objectSelector) IsNull() bool {
	_, ok := cast.ToNullableDouble(s.get())
	return !ok
}

func (s objectSelector) GetDouble() float64 {
	f, _ := cast.ToNullableDouble(s.get())
	return f
}

func (s objectSelector) GetFloat() float32 {
	return float32(s.GetDouble())
}

func (s objectSelector) GetLong() int64 {
	f := s.GetDouble()
	if math.IsNaN(f) {
		return 0
	}
	return int64(f)
}

func (s objectSelector) GetObject() interface{} {
	return s.get()
}

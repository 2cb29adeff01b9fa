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

package segment

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// RecordCursor walks the rows of an Arrow record batch, the columnar layout
// segments are scanned in. The cursor retains the record until Release.
type RecordCursor struct {
	rec arrow.Record
	row int
}

func NewRecordCursor(rec arrow.Record) *RecordCursor {
	rec.Retain()
	return &RecordCursor{rec: rec}
}

func (c *RecordCursor) Advance() {
	if !c.IsDone() {
		c.row++
	}
}

func (c *RecordCursor) IsDone() bool {
	return int64(c.row) >= c.rec.NumRows()
}

func (c *RecordCursor) Reset() {
	c.row = 0
}

// Release drops the cursor's reference on the record.
func (c *RecordCursor) Release() {
	if c.rec != nil {
		c.rec.Release()
		c.rec = nil
	}
}

func (c *RecordCursor) MakeColumnValueSelector(column string) ColumnValueSelector {
	idx := c.rec.Schema().FieldIndices(column)
	if len(idx) == 0 {
		return NilSelector
	}
	return &arrowSelector{cursor: c, col: c.rec.Column(idx[0])}
}

func (c *RecordCursor) HasColumn(column string) bool {
	return c.rec != nil && len(c.rec.Schema().FieldIndices(column)) > 0
}

type arrowSelector struct {
	cursor *RecordCursor
	col    arrow.Array
}

func (s *arrowSelector) IsNull() bool {
	if s.cursor.IsDone() || s.col.IsNull(s.cursor.row) {
		return true
	}
	_, ok := s.number()
	return !ok
}

// number reads the current row of a numeric column.
func (s *arrowSelector) number() (float64, bool) {
	i := s.cursor.row
	switch a := s.col.(type) {
	case *array.Float64:
		return a.Value(i), true
	case *array.Float32:
		return float64(a.Value(i)), true
	case *array.Int64:
		return float64(a.Value(i)), true
	case *array.Int32:
		return float64(a.Value(i)), true
	case *array.Int16:
		return float64(a.Value(i)), true
	case *array.Int8:
		return float64(a.Value(i)), true
	case *array.Uint64:
		return float64(a.Value(i)), true
	case *array.Uint32:
		return float64(a.Value(i)), true
	case *array.Uint16:
		return float64(a.Value(i)), true
	case *array.Uint8:
		return float64(a.Value(i)), true
	default:
		return 0, false
	}
}

func (s *arrowSelector) GetDouble() float64 {
	if s.cursor.IsDone() || s.col.IsNull(s.cursor.row) {
		return 0
	}
	f, _ := s.number()
	return f
}

func (s *arrowSelector) GetFloat() float32 {
	return float32(s.GetDouble())
}

func (s *arrowSelector) GetLong() int64 {
	if s.cursor.IsDone() || s.col.IsNull(s.cursor.row) {
		return 0
	}
	if a, ok := s.col.(*array.Int64); ok {
		return a.Value(s.cursor.row)
	}
	f := s.GetDouble()
	if math.IsNaN(f) {
		return 0
	}
	return int64(f)
}

func (s *arrowSelector) GetObject() interface{} {
	if s.cursor.IsDone() || s.col.IsNull(s.cursor.row) {
		return nil
	}
	if f, ok := s.number(); ok {
		if a, isInt := s.col.(*array.Int64); isInt {
			return a.Value(s.cursor.row)
		}
		return f
	}
	return s.col.GetOneForMarshal(s.cursor.row)
}

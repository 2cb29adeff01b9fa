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

import "github.com/rulego/druid-example/model"

// MapCursor walks a slice of field maps.
type MapCursor struct {
	rows   []map[string]interface{}
	offset int
}

// NewMapCursor 创建基于map行的游标
func NewMapCursor(rows []map[string]interface{}) *MapCursor {
	return &MapCursor{rows: rows}
}

// NewInputRowCursor walks parsed ingestion rows.
func NewInputRowCursor(rows []*model.InputRow) *MapCursor {
	maps := make([]map[string]interface{}, len(rows))
	for i, r := range rows {
		maps[i] = r.Event.Map()
	}
	return NewMapCursor(maps)
}

func (c *MapCursor) Advance() {
	if c.offset < len(c.rows) {
		c.offset++
	}
}

func (c *MapCursor) IsDone() bool {
	return c.offset >= len(c.rows)
}

func (c *MapCursor) Reset() {
	c.offset = 0
}

func (c *MapCursor) MakeColumnValueSelector(column string) ColumnValueSelector {
	return ObjectSelector(func() interface{} {
		if c.IsDone() {
			return nil
		}
		return c.rows[c.offset][column]
	})
}

// HasColumn reports whether any row carries the column.
func (c *MapCursor) HasColumn(column string) bool {
	for _, row := range c.rows {
		if _, ok := row[column]; ok {
			return true
		}
	}
	return false
}

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

package table

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rulego/druid-example/model"
)

const minWidth = 4

// Write renders rows as an ASCII table. Columns follow fieldOrder; columns
// not named there are appended in alphabetical order.
func Write(w io.Writer, rows []map[string]interface{}, fieldOrder []string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}
	columns := columnsOf(rows, fieldOrder)

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(minWidth, utf8.RuneCountInString(col))
		for _, row := range rows {
			if v, ok := row[col]; ok {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell(v)))
			}
		}
	}

	var sb strings.Builder
	border(&sb, widths)
	line(&sb, widths, columns)
	border(&sb, widths)
	values := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			values[i] = ""
			if v, ok := row[col]; ok {
				values[i] = cell(v)
			}
		}
		line(&sb, widths, values)
	}
	border(&sb, widths)
	fmt.Fprintf(&sb, "(%d rows)\n", len(rows))
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteInputRows renders parsed rows with the timestamp first, then the
// row's dimensions, then the remaining fields.
func WriteInputRows(w io.Writer, rows []*model.InputRow) error {
	data := make([]map[string]interface{}, len(rows))
	order := []string{"__time"}
	seen := map[string]bool{"__time": true}
	for i, r := range rows {
		m := r.Event.Map()
		m["__time"] = r.GetTimestamp().UTC().Format("2006-01-02T15:04:05.000Z")
		data[i] = m
		for _, d := range r.Dimensions {
			if !seen[d] {
				seen[d] = true
				order = append(order, d)
			}
		}
	}
	return Write(w, data, order)
}

func columnsOf(rows []map[string]interface{}, fieldOrder []string) []string {
	set := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			set[col] = true
		}
	}
	columns := make([]string, 0, len(set))
	for _, col := range fieldOrder {
		if set[col] {
			columns = append(columns, col)
			delete(set, col)
		}
	}
	rest := make([]string, 0, len(set))
	for col := range set {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func cell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case []string:
		return "[" + strings.Join(x, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func border(sb *strings.Builder, widths []int) {
	sb.WriteByte('+')
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
}

func line(sb *strings.Builder, widths []int, values []string) {
	sb.WriteByte('|')
	for i, v := range values {
		sb.WriteByte(' ')
		sb.WriteString(v)
		sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(v)))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')
}

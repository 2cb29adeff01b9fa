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

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/rulego/druid-example/utils/cast"
)

type RowEvent interface {
	GetTimestamp() time.Time
}

// Fields is a field-name → value mapping that remembers insertion order.
type Fields struct {
	names  []string
	values map[string]interface{}
}

func NewFields() *Fields {
	return &Fields{values: make(map[string]interface{})}
}

// FieldsOf builds Fields from alternating name, value arguments.
func FieldsOf(kv ...interface{}) *Fields {
	f := NewFields()
	for i := 0; i+1 < len(kv); i += 2 {
		f.Set(fmt.Sprint(kv[i]), kv[i+1])
	}
	return f
}

// Set adds or replaces a field. Replacing keeps the original position.
func (f *Fields) Set(name string, value interface{}) {
	if f.values == nil {
		f.values = make(map[string]interface{})
	}
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

func (f *Fields) Get(name string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Map returns an unordered copy.
func (f *Fields) Map() map[string]interface{} {
	out := make(map[string]interface{}, f.Len())
	if f == nil {
		return out
	}
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Fields) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range f.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", name, f.values[name])
	}
	sb.WriteByte('}')
	return sb.String()
}

// InputRow is one parsed ingestion row: its timestamp, the names of the
// columns to ingest as dimensions, and every parsed field.
type InputRow struct {
	Timestamp  time.Time
	Dimensions []string
	Event      *Fields
}

// GetTimestamp 获取时间戳
func (r *InputRow) GetTimestamp() time.Time {
	return r.Timestamp
}

// Raw returns the parsed value of a field, nil when absent.
func (r *InputRow) Raw(name string) interface{} {
	v, _ := r.Event.Get(name)
	return v
}

// Dimension returns the values of a dimension as strings. Lists yield one
// entry per element; nil and missing fields yield an empty slice.
func (r *InputRow) Dimension(name string) []string {
	v := r.Raw(name)
	if v == nil {
		return []string{}
	}
	if s, ok := v.([]string); ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	if items, ok := cast.ToSlice(v); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item == nil {
				continue
			}
			out = append(out, cast.ToString(item))
		}
		return out
	}
	return []string{cast.ToString(v)}
}

// Metric returns a field as a number. ok is false for nil or non-numeric values.
func (r *InputRow) Metric(name string) (float64, bool) {
	return cast.ToNullableDouble(r.Raw(name))
}

func (r *InputRow) String() string {
	return fmt.Sprintf("InputRow{timestamp=%s, dimensions=%v, event=%s}",
		r.Timestamp.UTC().Format(time.RFC3339Nano), r.Dimensions, r.Event)
}

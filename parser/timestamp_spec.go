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

package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rulego/druid-example/model"
	"github.com/rulego/druid-example/utils/cast"
)

const (
	DefaultTimestampColumn = "timestamp"
	DefaultTimestampFormat = "auto"
)

// Timestamp formats understood besides Go layouts.
const (
	FormatAuto   = "auto"
	FormatISO    = "iso"
	FormatMillis = "millis"
	FormatPosix  = "posix"
	FormatMicro  = "micro"
	FormatNano   = "nano"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

// TimestampSpec locates and parses the row timestamp.
type TimestampSpec struct {
	Column string
	Format string
	// MissingValue is used when the column is absent or null
	MissingValue *time.Time
}

func NewTimestampSpec(column, format string, missingValue *time.Time) TimestampSpec {
	if column == "" {
		column = DefaultTimestampColumn
	}
	if format == "" {
		format = DefaultTimestampFormat
	}
	return TimestampSpec{Column: column, Format: format, MissingValue: missingValue}
}

// DefaultTimestampSpec reads "timestamp" in auto format.
func DefaultTimestampSpec() TimestampSpec {
	return NewTimestampSpec("", "", nil)
}

// Extract reads the timestamp from a parsed row.
func (s TimestampSpec) Extract(fields *model.Fields) (time.Time, error) {
	v, _ := fields.Get(s.Column)
	if v == nil {
		if s.MissingValue != nil {
			return *s.MissingValue, nil
		}
		return time.Time{}, fmt.Errorf("null timestamp in column %q", s.Column)
	}
	t, err := s.Parse(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp column %q: %w", s.Column, err)
	}
	return t, nil
}

// Parse converts a raw timestamp value according to Format.
func (s TimestampSpec) Parse(v interface{}) (time.Time, error) {
	switch strings.ToLower(s.Format) {
	case FormatAuto, "":
		if str, ok := v.(string); ok && !isInteger(str) {
			return parseISO(str)
		}
		return fromEpoch(v, time.Millisecond)
	case FormatISO:
		return parseISO(cast.ToString(v))
	case FormatMillis:
		return fromEpoch(v, time.Millisecond)
	case FormatPosix:
		return fromEpoch(v, time.Second)
	case FormatMicro:
		return fromEpoch(v, time.Microsecond)
	case FormatNano:
		return fromEpoch(v, time.Nanosecond)
	default:
		t, err := time.Parse(s.Format, cast.ToString(v))
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}
}

func (s TimestampSpec) Equal(other TimestampSpec) bool {
	if s.Column != other.Column || s.Format != other.Format {
		return false
	}
	if s.MissingValue == nil || other.MissingValue == nil {
		return s.MissingValue == nil && other.MissingValue == nil
	}
	return s.MissingValue.Equal(*other.MissingValue)
}

func (s TimestampSpec) String() string {
	return fmt.Sprintf("TimestampSpec{column='%s', format='%s'}", s.Column, s.Format)
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func fromEpoch(v interface{}, unit time.Duration) (time.Time, error) {
	var n int64
	var err error
	if s, ok := v.(string); ok && isInteger(strings.TrimSpace(s)) {
		// 十进制解析，前导零不按八进制处理
		n, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	} else {
		n, err = cast.ToInt64E(v)
	}
	if err != nil {
		// 允许带小数的数值
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return time.Time{}, fmt.Errorf("not an epoch value: %v", v)
		}
		n = int64(f)
	}
	switch unit {
	case time.Second:
		return time.Unix(n, 0).UTC(), nil
	case time.Millisecond:
		return time.UnixMilli(n).UTC(), nil
	case time.Microsecond:
		return time.UnixMicro(n).UTC(), nil
	default:
		return time.Unix(0, n).UTC(), nil
	}
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("not an ISO-8601 timestamp: %q", s)
	}
	return t.UTC(), nil
}

type timestampSpecJSON struct {
	Column          string     `json:"column,omitempty"`
	Format          string     `json:"format,omitempty"`
	TimestampColumn string     `json:"timestampColumn,omitempty"`
	TimestampFormat string     `json:"timestampFormat,omitempty"`
	MissingValue    *time.Time `json:"missingValue,omitempty"`
}

func (s TimestampSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(timestampSpecJSON{Column: s.Column, Format: s.Format, MissingValue: s.MissingValue})
}

// UnmarshalJSON accepts both column/format and the older
// timestampColumn/timestampFormat names.
func (s *TimestampSpec) UnmarshalJSON(data []byte) error {
	var spec timestampSpecJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("timestampSpec: %w", err)
	}
	column, format := spec.Column, spec.Format
	if column == "" {
		column = spec.TimestampColumn
	}
	if format == "" {
		format = spec.TimestampFormat
	}
	*s = NewTimestampSpec(column, format, spec.MissingValue)
	return nil
}

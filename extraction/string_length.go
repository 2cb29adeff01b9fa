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

package extraction

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rulego/druid-example/cachekey"
)

// StringLengthTypeName is the descriptor type of StringLengthFn.
const StringLengthTypeName = "example"

// StringLengthFn keeps at most length characters of a string.
type StringLengthFn struct {
	length int
}

func NewStringLengthFn(length int) (*StringLengthFn, error) {
	if length < 0 {
		return nil, fmt.Errorf("%s: length must not be negative, got %d", StringLengthTypeName, length)
	}
	if length > math.MaxInt32 {
		return nil, fmt.Errorf("%s: length %d out of range", StringLengthTypeName, length)
	}
	return &StringLengthFn{length: length}, nil
}

func (f *StringLengthFn) Type() string { return StringLengthTypeName }
func (f *StringLengthFn) Length() int  { return f.length }

// Apply truncates on character boundaries, never inside a multi-byte rune.
func (f *StringLengthFn) Apply(value *string) *string {
	if value == nil {
		return nil
	}
	s := *value
	// 字节数不超过长度时字符数也不会超过
	if len(s) <= f.length || utf8.RuneCountInString(s) <= f.length {
		return value
	}
	n := 0
	for i := range s {
		if n == f.length {
			out := s[:i]
			return &out
		}
		n++
	}
	return value
}

func (f *StringLengthFn) PreservesOrdering() bool { return false }

func (f *StringLengthFn) ExtractionType() ExtractionType { return ManyToOne }

func (f *StringLengthFn) CacheKey() []byte {
	return cachekey.New().AppendInt32(int32(f.length)).Build()
}

func (f *StringLengthFn) Equal(other Fn) bool {
	o, ok := other.(*StringLengthFn)
	return ok && o != nil && f != nil && o.length == f.length
}

func (f *StringLengthFn) String() string {
	return fmt.Sprintf("StringLengthFn{length=%d}", f.length)
}

type stringLengthJSON struct {
	Type   string `json:"type"`
	Length *int   `json:"length"`
}

func (f *StringLengthFn) MarshalJSON() ([]byte, error) {
	return json.Marshal(stringLengthJSON{Type: StringLengthTypeName, Length: &f.length})
}

func (f *StringLengthFn) UnmarshalJSON(data []byte) error {
	var spec stringLengthJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("%s: %w", StringLengthTypeName, err)
	}
	if spec.Length == nil {
		return fmt.Errorf("%s: length is required", StringLengthTypeName)
	}
	built, err := NewStringLengthFn(*spec.Length)
	if err != nil {
		return err
	}
	*f = *built
	return nil
}

func init() {
	Fns.MustRegister(StringLengthTypeName, func(data []byte) (Fn, error) {
		f := &StringLengthFn{}
		if err := f.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return f, nil
	})
}

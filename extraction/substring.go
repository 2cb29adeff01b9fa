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
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// SubstringTypeName is the descriptor type of SubstringFn.
const SubstringTypeName = "substring"

// built-in functions key their cache entries with a single code byte
const substringCacheID byte = 0x09

// SubstringFn returns length characters starting at index, or the rest of
// the string when length is nil. A start past the end yields nil.
type SubstringFn struct {
	index  int
	length *int
}

func NewSubstringFn(index int, length *int) (*SubstringFn, error) {
	if index < 0 {
		return nil, fmt.Errorf("%s: index must not be negative, got %d", SubstringTypeName, index)
	}
	if length != nil && *length < 0 {
		return nil, fmt.Errorf("%s: length must not be negative, got %d", SubstringTypeName, *length)
	}
	f := &SubstringFn{index: index}
	if length != nil {
		l := *length
		f.length = &l
	}
	return f, nil
}

func (f *SubstringFn) Type() string { return SubstringTypeName }

func (f *SubstringFn) Apply(value *string) *string {
	if value == nil {
		return nil
	}
	runes := []rune(*value)
	if f.index >= len(runes) {
		return nil
	}
	end := len(runes)
	if f.length != nil && f.index+*f.length < end {
		end = f.index + *f.length
	}
	out := string(runes[f.index:end])
	return &out
}

// PreservesOrdering holds only for prefixes
func (f *SubstringFn) PreservesOrdering() bool { return f.index == 0 }

func (f *SubstringFn) ExtractionType() ExtractionType { return ManyToOne }

func (f *SubstringFn) CacheKey() []byte {
	length := int32(-1)
	if f.length != nil {
		length = int32(*f.length)
	}
	key := []byte{substringCacheID}
	key = binary.BigEndian.AppendUint32(key, uint32(f.index))
	return binary.BigEndian.AppendUint32(key, uint32(length))
}

func (f *SubstringFn) Equal(other Fn) bool {
	o, ok := other.(*SubstringFn)
	if !ok || o == nil || f == nil || o.index != f.index {
		return false
	}
	if o.length == nil || f.length == nil {
		return o.length == nil && f.length == nil
	}
	return *o.length == *f.length
}

func (f *SubstringFn) String() string {
	if f.length == nil {
		return fmt.Sprintf("SubstringFn{index=%d}", f.index)
	}
	return fmt.Sprintf("SubstringFn{index=%d, length=%d}", f.index, *f.length)
}

type substringJSON struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Length *int   `json:"length,omitempty"`
}

func (f *SubstringFn) MarshalJSON() ([]byte, error) {
	return json.Marshal(substringJSON{Type: SubstringTypeName, Index: f.index, Length: f.length})
}

func (f *SubstringFn) UnmarshalJSON(data []byte) error {
	var spec substringJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("%s: %w", SubstringTypeName, err)
	}
	built, err := NewSubstringFn(spec.Index, spec.Length)
	if err != nil {
		return err
	}
	*f = *built
	return nil
}

func init() {
	Fns.MustRegister(SubstringTypeName, func(data []byte) (Fn, error) {
		f := &SubstringFn{}
		if err := f.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return f, nil
	})
}

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

// Package extraction holds string transforms applied to dimension values
// before grouping and filtering.
package extraction

import (
	"github.com/rulego/druid-example/utils/registry"
)

// ExtractionType tells the optimizer how many inputs may map to one output.
type ExtractionType int

const (
	// OneToOne 单射: distinct inputs give distinct outputs
	OneToOne ExtractionType = iota
	// ManyToOne 多对一
	ManyToOne
)

func (t ExtractionType) String() string {
	switch t {
	case OneToOne:
		return "ONE_TO_ONE"
	case ManyToOne:
		return "MANY_TO_ONE"
	default:
		return "UNKNOWN"
	}
}

// Fn is a pure string transform. nil in means nil out.
type Fn interface {
	Type() string
	Apply(value *string) *string
	// PreservesOrdering reports whether a <= b implies Apply(a) <= Apply(b)
	PreservesOrdering() bool
	ExtractionType() ExtractionType
	CacheKey() []byte
	Equal(other Fn) bool
}

// Fns resolves extraction function descriptors by their "type" field.
var Fns = registry.New[Fn]("extractionFn", "type")

// Decode builds an Fn from its JSON descriptor.
func Decode(data []byte) (Fn, error) {
	return Fns.Decode(data)
}

// ApplyString is Apply for callers holding a plain string.
func ApplyString(fn Fn, value string) *string {
	return fn.Apply(&value)
}

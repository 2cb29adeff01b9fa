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

package aggregator

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rulego/druid-example/cachekey"
	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/segment"
	"github.com/rulego/druid-example/types"
	"github.com/rulego/druid-example/utils/cast"
)

// SumTypeName is the descriptor type of SumFactory.
const SumTypeName = "exampleSum"

var log = logger.Named("aggregator")

// SumFactory is the exampleSum aggregation: the float64 sum of fieldName,
// published as name.
type SumFactory struct {
	name      string
	fieldName string
}

// NewSumFactory validates and builds a factory. Both fields are required.
func NewSumFactory(name, fieldName string) (*SumFactory, error) {
	if name == "" {
		return nil, fmt.Errorf("%s: name is required", SumTypeName)
	}
	if fieldName == "" {
		return nil, fmt.Errorf("%s: fieldName is required", SumTypeName)
	}
	return &SumFactory{name: name, fieldName: fieldName}, nil
}

// MustSumFactory is NewSumFactory for statically known arguments.
func MustSumFactory(name, fieldName string) *SumFactory {
	f, err := NewSumFactory(name, fieldName)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *SumFactory) Type() string      { return SumTypeName }
func (f *SumFactory) Name() string      { return f.name }
func (f *SumFactory) FieldName() string { return f.fieldName }

func (f *SumFactory) Factorize(columns segment.ColumnSelectorFactory) Aggregator {
	return NewSumAggregator(columns.MakeColumnValueSelector(f.fieldName))
}

func (f *SumFactory) FactorizeBuffered(columns segment.ColumnSelectorFactory) BufferAggregator {
	return NewSumBufferAggregator(columns.MakeColumnValueSelector(f.fieldName))
}

// Compare sorts nil before every number and numbers ascending, with NaN
// after +Inf and -0 before +0.
func (f *SumFactory) Compare(lhs, rhs interface{}) int {
	switch {
	case lhs == nil && rhs == nil:
		return 0
	case lhs == nil:
		return -1
	case rhs == nil:
		return 1
	}
	return compareDoubles(cast.ToFloat64(lhs), cast.ToFloat64(rhs))
}

func compareDoubles(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	// equal, NaN, or signed zeros: order by bit pattern with NaN canonicalised
	ab, bb := doubleKey(a), doubleKey(b)
	switch {
	case ab < bb:
		return -1
	case ab > bb:
		return 1
	default:
		return 0
	}
}

func doubleKey(v float64) int64 {
	if math.IsNaN(v) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(v))
}

// Combine adds two partial sums. A nil side contributes nothing.
func (f *SumFactory) Combine(lhs, rhs interface{}) interface{} {
	if lhs == nil && rhs == nil {
		return nil
	}
	return cast.ToFloat64(lhs) + cast.ToFloat64(rhs)
}

func (f *SumFactory) CombiningFactory() Factory {
	return &SumFactory{name: f.name, fieldName: f.name}
}

func (f *SumFactory) MergingFactory(other Factory) (Factory, error) {
	if o, ok := other.(*SumFactory); ok && o != nil && o.name == f.name {
		return f.CombiningFactory(), nil
	}
	err := &NotMergeableError{Left: f, Right: other}
	log.Warn("%v", err)
	return nil, err
}

func (f *SumFactory) RequiredColumns() []Factory {
	return []Factory{&SumFactory{name: f.fieldName, fieldName: f.fieldName}}
}

func (f *SumFactory) RequiredFields() []string {
	return []string{f.fieldName}
}

// Deserialize parses strings as doubles, which is how some serializers
// write NaN and Infinity. Everything else passes through.
func (f *SumFactory) Deserialize(object interface{}) (interface{}, error) {
	switch v := object.(type) {
	case string:
		d, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%s %s: cannot deserialize %q: %w", SumTypeName, f.name, v, err)
		}
		return d, nil
	case json.Number:
		return v.Float64()
	default:
		return object, nil
	}
}

func (f *SumFactory) FinalizeComputation(object interface{}) interface{} {
	return object
}

func (f *SumFactory) CacheKey() []byte {
	return cachekey.New().AppendString(f.fieldName).Build()
}

func (f *SumFactory) TypeName() string                   { return "float" }
func (f *SumFactory) IntermediateType() types.ColumnType { return types.Float }
func (f *SumFactory) ResultType() types.ColumnType       { return types.Float }
func (f *SumFactory) MaxIntermediateSize() int           { return doubleBytes }

func (f *SumFactory) Equal(other Factory) bool {
	o, ok := other.(*SumFactory)
	if !ok || o == nil || f == nil {
		return ok && o == f
	}
	return f.name == o.name && f.fieldName == o.fieldName
}

func (f *SumFactory) String() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("SumFactory{name='%s', fieldName='%s'}", f.name, f.fieldName)
}

type sumFactoryJSON struct {
	Type      string  `json:"type"`
	Name      *string `json:"name"`
	FieldName *string `json:"fieldName"`
}

func (f *SumFactory) MarshalJSON() ([]byte, error) {
	return json.Marshal(sumFactoryJSON{Type: SumTypeName, Name: &f.name, FieldName: &f.fieldName})
}

func (f *SumFactory) UnmarshalJSON(data []byte) error {
	var spec sumFactoryJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("%s: %w", SumTypeName, err)
	}
	if spec.Type != "" && spec.Type != SumTypeName {
		return fmt.Errorf("%s: unexpected type %q", SumTypeName, spec.Type)
	}
	if spec.Name == nil {
		return fmt.Errorf("%s: name is required", SumTypeName)
	}
	if spec.FieldName == nil {
		return fmt.Errorf("%s: fieldName is required", SumTypeName)
	}
	built, err := NewSumFactory(*spec.Name, *spec.FieldName)
	if err != nil {
		return err
	}
	*f = *built
	return nil
}

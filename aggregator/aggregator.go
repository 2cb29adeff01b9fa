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
	"github.com/rulego/druid-example/segment"
	"github.com/rulego/druid-example/types"
)

// Aggregator accumulates one value on the heap.
// It is not safe for concurrent use; Clone gives an independent accumulator.
type Aggregator interface {
	// Aggregate folds the selector's current value into the accumulator
	Aggregate()
	Get() interface{}
	GetFloat() float32
	GetLong() int64
	GetDouble() float64
	// Clone returns a fresh accumulator over the same column
	Clone() Aggregator
	Close()
}

// BufferAggregator keeps its state in a caller-owned buffer at a caller-given
// offset. The slot size is the factory's MaxIntermediateSize.
type BufferAggregator interface {
	// Init must be called once per slot before the first Aggregate
	Init(buf []byte, position int)
	Aggregate(buf []byte, position int)
	Get(buf []byte, position int) interface{}
	GetFloat(buf []byte, position int) float32
	GetLong(buf []byte, position int) int64
	GetDouble(buf []byte, position int) float64
	Close()
}

// Factory describes one aggregation and builds its accumulators.
type Factory interface {
	// Type is the registered descriptor type
	Type() string
	// Name is the output field
	Name() string
	Factorize(columns segment.ColumnSelectorFactory) Aggregator
	FactorizeBuffered(columns segment.ColumnSelectorFactory) BufferAggregator
	// Compare orders intermediate values, nil first
	Compare(lhs, rhs interface{}) int
	// Combine merges two partial results
	Combine(lhs, rhs interface{}) interface{}
	// CombiningFactory aggregates already-aggregated values of Name
	CombiningFactory() Factory
	// MergingFactory returns a factory able to merge results of this and
	// other, or a *NotMergeableError
	MergingFactory(other Factory) (Factory, error)
	RequiredColumns() []Factory
	RequiredFields() []string
	// Deserialize converts a value read back from a serialized result
	Deserialize(object interface{}) (interface{}, error)
	FinalizeComputation(object interface{}) interface{}
	CacheKey() []byte
	TypeName() string
	IntermediateType() types.ColumnType
	ResultType() types.ColumnType
	MaxIntermediateSize() int
	Equal(other Factory) bool
}

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
	"encoding/binary"
	"math"

	"github.com/rulego/druid-example/segment"
)

// SumAggregator sums a numeric column in float64, whatever the input width.
// Null samples are skipped.
type SumAggregator struct {
	selector segment.ColumnValueSelector
	sum      float64
}

func NewSumAggregator(selector segment.ColumnValueSelector) *SumAggregator {
	return &SumAggregator{selector: selector}
}

func (a *SumAggregator) Aggregate() {
	if a.selector.IsNull() {
		return
	}
	a.sum += a.selector.GetDouble()
}

func (a *SumAggregator) Get() interface{} {
	return a.sum
}

func (a *SumAggregator) GetFloat() float32 {
	return float32(a.sum)
}

// GetLong truncates toward zero
func (a *SumAggregator) GetLong() int64 {
	return truncate(a.sum)
}

func (a *SumAggregator) GetDouble() float64 {
	return a.sum
}

func (a *SumAggregator) Clone() Aggregator {
	return NewSumAggregator(a.selector)
}

// Close 无资源需要释放
func (a *SumAggregator) Close() {}

// slot size of the buffer form
const doubleBytes = 8

// SumBufferAggregator sums into an 8-byte big-endian double slot.
type SumBufferAggregator struct {
	selector segment.ColumnValueSelector
}

func NewSumBufferAggregator(selector segment.ColumnValueSelector) *SumBufferAggregator {
	return &SumBufferAggregator{selector: selector}
}

func (a *SumBufferAggregator) Init(buf []byte, position int) {
	// slot size is given by MaxIntermediateSize on the factory
	putDouble(buf, position, 0)
}

func (a *SumBufferAggregator) Aggregate(buf []byte, position int) {
	if a.selector.IsNull() {
		return
	}
	putDouble(buf, position, getDouble(buf, position)+a.selector.GetDouble())
}

func (a *SumBufferAggregator) Get(buf []byte, position int) interface{} {
	return getDouble(buf, position)
}

func (a *SumBufferAggregator) GetFloat(buf []byte, position int) float32 {
	return float32(getDouble(buf, position))
}

func (a *SumBufferAggregator) GetLong(buf []byte, position int) int64 {
	return truncate(getDouble(buf, position))
}

func (a *SumBufferAggregator) GetDouble(buf []byte, position int) float64 {
	return getDouble(buf, position)
}

func (a *SumBufferAggregator) Close() {}

func putDouble(buf []byte, position int, v float64) {
	binary.BigEndian.PutUint64(buf[position:position+doubleBytes], math.Float64bits(v))
}

func getDouble(buf []byte, position int) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf[position : position+doubleBytes]))
}

// truncate converts like a Java (long) cast: NaN is 0 and out-of-range
// values saturate.
func truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(v)
	}
}

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

/*
Package aggregator provides the exampleSum aggregation for the host query engine.

The host resolves a descriptor such as

	{"type": "exampleSum", "name": "total", "fieldName": "m1"}

through the package registry into a Factory, then asks the factory for
aggregators bound to a column of the segment being scanned.

# Two accumulator forms

Aggregator keeps its running sum on the heap, one accumulator per instance:

	agg := factory.Factorize(cursor)
	for !cursor.IsDone() {
		agg.Aggregate()
		cursor.Advance()
	}
	total := agg.Get()

BufferAggregator keeps the sum in an 8-byte slot of a caller-owned buffer so
the host can pack many slots side by side:

	buf := make([]byte, factory.MaxIntermediateSize()*slots)
	bagg := factory.FactorizeBuffered(cursor)
	bagg.Init(buf, 8*slot)
	bagg.Aggregate(buf, 8*slot)

The slot layout is one big-endian IEEE-754 double. Only one goroutine may write
a given slot at a time; distinct slots are independent.

# Merging

Partial results from different segments are merged with Combine, or by
aggregating them again through CombiningFactory, whose input column is the
original output name. MergingFactory refuses factories that describe a
different metric and returns a *NotMergeableError.
*/
package aggregator

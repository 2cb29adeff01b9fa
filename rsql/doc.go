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
Package rsql binds SQL aggregate functions to native aggregations.

The host SQL planner parses a query such as

	SELECT EXAMPLE_SUM(m1 * 2) FROM foo

and hands each aggregate call to the SqlAggregator registered under the
function's name. The binding either returns an Aggregation built from
aggregator factories or declines with (nil, nil), in which case the planner
falls back to its own machinery or reports the call as unsupported.

# Operands

An Operand is either a direct column reference, used verbatim as the
aggregator's input field, or an expression. Expressions are materialised as
virtual columns through a VirtualColumnRegistry:

	vcr := rsql.NewVirtualColumnRegistry("v")
	agg, err := rsql.PlanAggregate(vcr, "a0", &rsql.AggregateCall{
		Function: "EXAMPLE_SUM",
		Operands: []rsql.Operand{rsql.ExpressionOperand("m1 * 2", types.Double)},
		Type:     types.Double,
	})
	// agg.Factories[0] reads column "v0"; vcr.VirtualColumns() computes it

# Errors

Operand checks and planning failures are *PlanError values classified by
ErrorType.
*/
package rsql

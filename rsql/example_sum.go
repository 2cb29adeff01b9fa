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

package rsql

import (
	"github.com/rulego/druid-example/aggregator"
	"github.com/rulego/druid-example/types"
)

// ExampleSumName is the SQL name of the exampleSum aggregator.
const ExampleSumName = "EXAMPLE_SUM"

var exampleSumFunction = &AggFunction{
	Name:             ExampleSumName,
	Families:         []OperandFamily{FamilyNumeric},
	RequiredOperands: 1,
	LiteralOperands:  []int{1},
	ReturnType:       ReturnTypeArg0,
	Category:         CategoryUserDefined,
}

// ExampleSumSqlAggregator maps EXAMPLE_SUM(x) onto an exampleSum factory.
type ExampleSumSqlAggregator struct{}

func NewExampleSumSqlAggregator() *ExampleSumSqlAggregator {
	return &ExampleSumSqlAggregator{}
}

func (a *ExampleSumSqlAggregator) Function() *AggFunction {
	return exampleSumFunction
}

func (a *ExampleSumSqlAggregator) ToAggregation(vcr VirtualColumnRegistry, name string, call *AggregateCall) (*Aggregation, error) {
	if call.Distinct {
		return nil, nil
	}
	if len(call.Operands) != 1 {
		return nil, nil
	}
	arg := call.Operands[0]
	if !arg.Type.IsNumeric() {
		return nil, nil
	}
	if call.Type == types.Unknown {
		log.Debug("%s: cannot infer type of %s", ExampleSumName, call)
		return nil, nil
	}

	var fieldName string
	if arg.IsDirectColumnAccess() {
		fieldName = arg.Column
	} else {
		if vcr == nil {
			return nil, nil
		}
		vc, err := vcr.GetOrCreateVirtualColumnForExpression(arg.Expression, call.Type)
		if err != nil {
			return nil, err
		}
		fieldName = vc
	}

	factory, err := aggregator.NewSumFactory(name, fieldName)
	if err != nil {
		return nil, &PlanError{Type: ErrorTypeInvalidOperands, Function: ExampleSumName, Message: "bad aggregation", Err: err}
	}
	return NewAggregation(factory), nil
}

func init() {
	if err := RegisterSqlAggregator(NewExampleSumSqlAggregator()); err != nil {
		panic(err)
	}
}

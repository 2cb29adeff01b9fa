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

package functions

import (
	"fmt"

	"github.com/expr-lang/expr/ast"

	"github.com/rulego/druid-example/types"
	"github.com/rulego/druid-example/utils/cast"
)

const (
	ExampleSumName = "example_sum"

	// ArgumentToAdd names the constant operand of example_sum
	ArgumentToAdd = "ARGUMENT_TO_ADD"
)

// ExampleSumMacro implements example_sum(array, number): number is added to
// each element. Null elements are dropped; an input that is not an array of
// numbers yields nil.
type ExampleSumMacro struct {
	*BaseFunction
}

func NewExampleSumMacro() *ExampleSumMacro {
	return &ExampleSumMacro{
		BaseFunction: NewBaseFunction(ExampleSumName, TypeArray, "array",
			"adds a constant to every element of a numeric array", 2, 2),
	}
}

func (f *ExampleSumMacro) OutputType() types.ColumnType {
	return types.DoubleArray
}

func (f *ExampleSumMacro) Validate(args []ast.Node) error {
	if err := f.ValidateArgCount(len(args)); err != nil {
		return err
	}
	lit, ok := literalValue(args[1])
	if !ok {
		return &ValidationError{Function: ExampleSumName, Argument: ArgumentToAdd, Message: "argument must be a literal"}
	}
	if !cast.IsNumber(lit) {
		return &ValidationError{Function: ExampleSumName, Argument: ArgumentToAdd, Message: "Argument to add must be a number"}
	}
	return nil
}

func (f *ExampleSumMacro) Execute(args []interface{}) (interface{}, error) {
	if err := f.ValidateArgCount(len(args)); err != nil {
		return nil, err
	}
	add, err := cast.ToFloat64E(args[1])
	if err != nil || !cast.IsNumber(args[1]) {
		return nil, &ValidationError{Function: ExampleSumName, Argument: ArgumentToAdd, Message: "Argument to add must be a number"}
	}
	values, ok := cast.ToSlice(args[0])
	if !ok {
		return nil, nil
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if !cast.IsNumber(v) {
			return nil, nil
		}
		out = append(out, cast.ToFloat64(v)+add)
	}
	return out, nil
}

// Stringify renders a call from already rendered arguments.
func (f *ExampleSumMacro) Stringify(arg, toAdd string) string {
	return fmt.Sprintf("%s(%s, %s)", ExampleSumName, arg, toAdd)
}

// literalValue returns the constant held by a literal node. Signed numeric
// literals are unary nodes over a number.
func literalValue(node ast.Node) (interface{}, bool) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return n.Value, true
	case *ast.FloatNode:
		return n.Value, true
	case *ast.StringNode:
		return n.Value, true
	case *ast.BoolNode:
		return n.Value, true
	case *ast.NilNode:
		return nil, true
	case *ast.UnaryNode:
		inner, ok := literalValue(n.Node)
		if !ok || !cast.IsNumber(inner) {
			return nil, false
		}
		switch n.Operator {
		case "+":
			return inner, true
		case "-":
			switch v := inner.(type) {
			case int:
				return -v, true
			case float64:
				return -v, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

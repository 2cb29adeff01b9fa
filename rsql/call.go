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
	"fmt"
	"strings"

	"github.com/rulego/druid-example/types"
)

// Operand is one argument of an aggregate call, already translated by the
// planner into a column reference or a native expression.
type Operand struct {
	// Column is set for direct column access
	Column string
	// Expression is set otherwise
	Expression string
	Type       types.ColumnType
	Literal    bool
}

func ColumnOperand(column string, t types.ColumnType) Operand {
	return Operand{Column: column, Type: t}
}

func ExpressionOperand(expression string, t types.ColumnType) Operand {
	return Operand{Expression: expression, Type: t}
}

func LiteralOperand(literal string, t types.ColumnType) Operand {
	return Operand{Expression: literal, Type: t, Literal: true}
}

func (o Operand) IsDirectColumnAccess() bool {
	return o.Column != ""
}

func (o Operand) String() string {
	if o.IsDirectColumnAccess() {
		return o.Column
	}
	return o.Expression
}

// AggregateCall is an aggregate function call as the planner sees it.
// Type is the inferred result type, Unknown when inference failed.
type AggregateCall struct {
	Function string
	Distinct bool
	Operands []Operand
	Type     types.ColumnType
}

func (c *AggregateCall) String() string {
	args := make([]string, len(c.Operands))
	for i, op := range c.Operands {
		args[i] = op.String()
	}
	distinct := ""
	if c.Distinct {
		distinct = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)", c.Function, distinct, strings.Join(args, ", "))
}

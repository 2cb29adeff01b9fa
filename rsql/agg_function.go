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

	"github.com/rulego/druid-example/types"
)

// OperandFamily is the set of SQL types an operand position accepts.
type OperandFamily string

const (
	FamilyNumeric OperandFamily = "NUMERIC"
	FamilyString  OperandFamily = "STRING"
	FamilyAny     OperandFamily = "ANY"
)

// Accepts reports whether a value of type t belongs to the family.
func (f OperandFamily) Accepts(t types.ColumnType) bool {
	switch f {
	case FamilyNumeric:
		return t.IsNumeric()
	case FamilyString:
		return t == types.String
	case FamilyAny:
		return true
	default:
		return false
	}
}

// FunctionCategory 函数分类
type FunctionCategory string

const (
	CategoryUserDefined FunctionCategory = "USER_DEFINED_FUNCTION"
	CategorySystem      FunctionCategory = "SYSTEM"
)

// ReturnTypeInference derives the call's type from its operand types.
type ReturnTypeInference func(operands []types.ColumnType) types.ColumnType

// ReturnTypeArg0 returns the type of the first operand.
func ReturnTypeArg0(operands []types.ColumnType) types.ColumnType {
	if len(operands) == 0 {
		return types.Unknown
	}
	return operands[0]
}

// AggFunction describes an aggregate function to the SQL planner.
type AggFunction struct {
	Name     string
	Families []OperandFamily
	// RequiredOperands is the exact operand count
	RequiredOperands int
	// LiteralOperands holds positions that must be literals
	LiteralOperands []int
	ReturnType      ReturnTypeInference
	Category        FunctionCategory
}

// CheckOperands validates operands against the signature.
func (f *AggFunction) CheckOperands(operands []Operand) error {
	if len(operands) != f.RequiredOperands {
		return &PlanError{
			Type:     ErrorTypeInvalidOperands,
			Function: f.Name,
			Message:  fmt.Sprintf("expects %d operand(s), got %d", f.RequiredOperands, len(operands)),
		}
	}
	for i, op := range operands {
		if i < len(f.Families) && !f.Families[i].Accepts(op.Type) {
			return &PlanError{
				Type:     ErrorTypeInvalidOperands,
				Function: f.Name,
				Message:  fmt.Sprintf("operand %d must be %s, got %s", i, f.Families[i], displayType(op.Type)),
			}
		}
	}
	for _, pos := range f.LiteralOperands {
		if pos < len(operands) && !operands[pos].Literal {
			return &PlanError{
				Type:     ErrorTypeInvalidOperands,
				Function: f.Name,
				Message:  fmt.Sprintf("operand %d must be a literal", pos),
			}
		}
	}
	return nil
}

// InferReturnType applies ReturnType, Unknown when none is set.
func (f *AggFunction) InferReturnType(operands []Operand) types.ColumnType {
	if f.ReturnType == nil {
		return types.Unknown
	}
	ts := make([]types.ColumnType, len(operands))
	for i, op := range operands {
		ts[i] = op.Type
	}
	return f.ReturnType(ts)
}

func displayType(t types.ColumnType) string {
	if t == types.Unknown {
		return "UNKNOWN"
	}
	return string(t)
}

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
	"errors"
	"fmt"
	"strings"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	ErrorTypeUnknownFunction ErrorType = iota
	ErrorTypeInvalidOperands
	ErrorTypeUnsupported
	ErrorTypeVirtualColumn
)

// PlanError is a failure to turn an aggregate call into an aggregation.
type PlanError struct {
	Type     ErrorType
	Function string
	Message  string
	Err      error
}

func (e *PlanError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] ", e.getErrorTypeName()))
	if e.Function != "" {
		builder.WriteString(e.Function)
		builder.WriteString(": ")
	}
	builder.WriteString(e.Message)
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// getErrorTypeName 获取错误类型名称
func (e *PlanError) getErrorTypeName() string {
	switch e.Type {
	case ErrorTypeUnknownFunction:
		return "UNKNOWN_FUNCTION"
	case ErrorTypeInvalidOperands:
		return "INVALID_OPERANDS"
	case ErrorTypeUnsupported:
		return "UNSUPPORTED"
	case ErrorTypeVirtualColumn:
		return "VIRTUAL_COLUMN"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsPlanError reports whether err is a *PlanError of type t.
func IsPlanError(err error, t ErrorType) bool {
	var pe *PlanError
	return errors.As(err, &pe) && pe.Type == t
}

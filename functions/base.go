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
)

// BaseFunction 基础函数实现，提供通用功能
type BaseFunction struct {
	name        string
	fnType      FunctionType
	category    string
	description string
	minArgs     int
	maxArgs     int // -1 表示无限制
}

func NewBaseFunction(name string, fnType FunctionType, category, description string, minArgs, maxArgs int) *BaseFunction {
	return &BaseFunction{
		name:        name,
		fnType:      fnType,
		category:    category,
		description: description,
		minArgs:     minArgs,
		maxArgs:     maxArgs,
	}
}

func (bf *BaseFunction) GetName() string {
	return bf.name
}

func (bf *BaseFunction) GetType() FunctionType {
	return bf.fnType
}

func (bf *BaseFunction) GetCategory() string {
	return bf.category
}

func (bf *BaseFunction) GetDescription() string {
	return bf.description
}

// ValidateArgCount 验证参数数量
func (bf *BaseFunction) ValidateArgCount(argCount int) error {
	if argCount < bf.minArgs || (bf.maxArgs != -1 && argCount > bf.maxArgs) {
		return &ValidationError{Function: bf.name, Message: bf.arityMessage(argCount)}
	}
	return nil
}

func (bf *BaseFunction) arityMessage(got int) string {
	switch {
	case bf.minArgs == bf.maxArgs:
		return fmt.Sprintf("requires %d arguments, got %d", bf.minArgs, got)
	case got < bf.minArgs:
		return fmt.Sprintf("requires at least %d arguments, got %d", bf.minArgs, got)
	default:
		return fmt.Sprintf("accepts at most %d arguments, got %d", bf.maxArgs, got)
	}
}

// CustomFunction 自定义函数
type CustomFunction struct {
	*BaseFunction
	executor func(args []interface{}) (interface{}, error)
}

func (f *CustomFunction) Execute(args []interface{}) (interface{}, error) {
	if err := f.ValidateArgCount(len(args)); err != nil {
		return nil, err
	}
	return f.executor(args)
}

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
	"sort"
	"strings"
	"sync"

	"github.com/expr-lang/expr/ast"

	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/types"
)

// FunctionType 函数类型枚举
type FunctionType string

const (
	// 数组函数
	TypeArray FunctionType = "array"
	// 数学函数
	TypeMath FunctionType = "math"
	// 用户自定义函数
	TypeCustom FunctionType = "custom"
)

var log = logger.Named("functions")

// Function is a scalar function callable from expressions.
type Function interface {
	GetName() string
	GetType() FunctionType
	GetCategory() string
	GetDescription() string
	// Execute evaluates the function on already evaluated arguments
	Execute(args []interface{}) (interface{}, error)
}

// ExprMacro is a Function whose arguments are checked at compile time.
type ExprMacro interface {
	Function
	// Validate inspects the unevaluated argument expressions.
	// Failures should be *ValidationError.
	Validate(args []ast.Node) error
	// OutputType is the type of Execute's result
	OutputType() types.ColumnType
}

// FunctionRegistry 函数注册器, names are case-insensitive
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

// 全局函数注册器实例
var globalRegistry = NewFunctionRegistry()

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// Register 注册函数
func (r *FunctionRegistry) Register(fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if name == "" {
		return fmt.Errorf("function name must not be empty")
	}
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}
	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	log.Debug("registered function %s (%s)", name, fn.GetType())
	return nil
}

func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetMacro returns name only when it is registered as an ExprMacro.
func (r *FunctionRegistry) GetMacro(name string) (ExprMacro, bool) {
	fn, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	m, ok := fn.(ExprMacro)
	return m, ok
}

func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Function, len(r.categories[fnType]))
	copy(out, r.categories[fnType])
	return out
}

// Names lists registered names, sorted.
func (r *FunctionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister 注销函数
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	fn, exists := r.functions[name]
	if !exists {
		return false
	}
	delete(r.functions, name)

	fnType := fn.GetType()
	funcs := r.categories[fnType]
	for i, f := range funcs {
		if strings.ToLower(f.GetName()) == name {
			r.categories[fnType] = append(funcs[:i:i], funcs[i+1:]...)
			break
		}
	}
	return true
}

// 全局函数注册和获取方法
func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

func GetMacro(name string) (ExprMacro, bool) {
	return globalRegistry.GetMacro(name)
}

func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

func Names() []string {
	return globalRegistry.Names()
}

func Unregister(name string) bool {
	return globalRegistry.Unregister(name)
}

// RegisterCustomFunction 注册自定义函数
func RegisterCustomFunction(name string, fnType FunctionType, category, description string,
	minArgs, maxArgs int, executor func(args []interface{}) (interface{}, error)) error {

	return Register(&CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, minArgs, maxArgs),
		executor:     executor,
	})
}

// Execute 执行函数
func Execute(name string, args []interface{}) (interface{}, error) {
	fn, exists := Get(name)
	if !exists {
		return nil, fmt.Errorf("function %s not found", name)
	}
	return fn.Execute(args)
}

func init() {
	if err := Register(NewExampleSumMacro()); err != nil {
		panic(err)
	}
}

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

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/druid-example/types"
)

// Expr is a compiled expression. It is safe for concurrent Eval.
type Expr struct {
	source     string
	program    *vm.Program
	bindings   []string
	outputType types.ColumnType
}

// Compile parses expression, validates every macro call in it and compiles
// it with the registered functions.
func Compile(expression string) (*Expr, error) {
	return globalRegistry.Compile(expression)
}

// MustCompile is Compile for statically known expressions.
func MustCompile(expression string) *Expr {
	e, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return e
}

// Compile compiles expression against the functions of r.
func (r *FunctionRegistry) Compile(expression string) (*Expr, error) {
	source := strings.TrimSpace(expression)
	if source == "" {
		return nil, fmt.Errorf("empty expression")
	}
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", source, err)
	}

	v := &callVisitor{callees: make(map[ast.Node]struct{})}
	ast.Walk(&tree.Node, v)

	options := []expr.Option{expr.AllowUndefinedVariables()}
	seen := make(map[string]struct{})
	for _, call := range v.calls {
		name := call.name
		fn, ok := r.Get(name)
		if !ok {
			continue
		}
		if m, isMacro := fn.(ExprMacro); isMacro {
			if err = m.Validate(call.node.Arguments); err != nil {
				return nil, err
			}
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		options = append(options, expr.Function(name, wrap(fn)))
	}

	program, err := expr.Compile(source, options...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", source, err)
	}
	return &Expr{
		source:     source,
		program:    program,
		bindings:   v.bindings(),
		outputType: r.outputType(tree.Node),
	}, nil
}

// outputType is known only when the whole expression is a macro call.
func (r *FunctionRegistry) outputType(root ast.Node) types.ColumnType {
	call, ok := root.(*ast.CallNode)
	if !ok {
		return types.Unknown
	}
	ident, ok := call.Callee.(*ast.IdentifierNode)
	if !ok {
		return types.Unknown
	}
	if m, ok := r.GetMacro(ident.Value); ok {
		return m.OutputType()
	}
	return types.Unknown
}

func wrap(fn Function) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		return fn.Execute(params)
	}
}

// Eval runs the expression over one row. Missing bindings are nil.
func (e *Expr) Eval(bindings map[string]interface{}) (interface{}, error) {
	env := bindings
	if env == nil {
		env = map[string]interface{}{}
	}
	out, err := expr.Run(e.program, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", e.source, err)
	}
	return out, nil
}

// RequiredBindings lists the identifiers the expression reads, sorted.
func (e *Expr) RequiredBindings() []string {
	out := make([]string, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// OutputType is the declared result type, Unknown when it cannot be told
// without evaluating.
func (e *Expr) OutputType() types.ColumnType {
	return e.outputType
}

func (e *Expr) String() string {
	return e.source
}

type namedCall struct {
	name string
	node *ast.CallNode
}

// callVisitor collects function calls and free identifiers.
type callVisitor struct {
	calls   []namedCall
	idents  []string
	callees map[ast.Node]struct{}
}

func (v *callVisitor) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.CallNode:
		if ident, ok := n.Callee.(*ast.IdentifierNode); ok {
			v.callees[ident] = struct{}{}
			v.calls = append(v.calls, namedCall{name: ident.Value, node: n})
		}
	case *ast.IdentifierNode:
		v.idents = append(v.idents, n.Value)
	}
}

// bindings drops callee names. The walk is post-order, so callees are known
// only once it has finished.
func (v *callVisitor) bindings() []string {
	callees := make(map[string]struct{}, len(v.callees))
	for node := range v.callees {
		callees[node.(*ast.IdentifierNode).Value] = struct{}{}
	}
	set := make(map[string]struct{}, len(v.idents))
	for _, name := range v.idents {
		if _, isCallee := callees[name]; isCallee {
			continue
		}
		set[name] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

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

package segment

import (
	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/types"
)

// Evaluator is a compiled per-row expression.
type Evaluator interface {
	// Eval computes the value for one row given its input bindings.
	Eval(bindings map[string]interface{}) (interface{}, error)
	// RequiredBindings lists the input columns the expression reads.
	RequiredBindings() []string
	String() string
}

// VirtualColumn is a column computed from other columns of the same row.
type VirtualColumn struct {
	Name       string
	Expression Evaluator
	OutputType types.ColumnType
}

// VirtualColumns layers computed columns over a base selector factory.
type VirtualColumns []*VirtualColumn

// Find returns the virtual column with the given name.
func (vcs VirtualColumns) Find(name string) (*VirtualColumn, bool) {
	if i := vcs.index(name); i >= 0 {
		return vcs[i], true
	}
	return nil, false
}

func (vcs VirtualColumns) index(name string) int {
	for i, vc := range vcs {
		if vc.Name == name {
			return i
		}
	}
	return -1
}

// Wrap returns a factory that serves virtual columns and delegates every
// other column to base.
//
// An input of a virtual column resolves to a base column when base reports
// it through ColumnInspector, otherwise to a virtual column defined earlier
// in vcs, otherwise to base. Later columns are never visible, so the
// definitions cannot reference each other in a cycle.
func (vcs VirtualColumns) Wrap(base ColumnSelectorFactory) ColumnSelectorFactory {
	return &virtualColumnSelectorFactory{base: base, columns: vcs}
}

type virtualColumnSelectorFactory struct {
	base    ColumnSelectorFactory
	columns VirtualColumns
}

func (f *virtualColumnSelectorFactory) MakeColumnValueSelector(column string) ColumnValueSelector {
	idx := f.columns.index(column)
	if idx < 0 {
		return f.base.MakeColumnValueSelector(column)
	}
	return f.makeVirtual(idx)
}

// HasColumn reports virtual columns and whatever base reports.
func (f *virtualColumnSelectorFactory) HasColumn(column string) bool {
	return f.columns.index(column) >= 0 || f.baseHas(column)
}

func (f *virtualColumnSelectorFactory) baseHas(column string) bool {
	ins, ok := f.base.(ColumnInspector)
	return ok && ins.HasColumn(column)
}

func (f *virtualColumnSelectorFactory) input(name string, idx int) ColumnValueSelector {
	if f.baseHas(name) {
		return f.base.MakeColumnValueSelector(name)
	}
	if j := f.columns.index(name); j >= 0 && j < idx {
		return f.makeVirtual(j)
	}
	return f.base.MakeColumnValueSelector(name)
}

func (f *virtualColumnSelectorFactory) makeVirtual(idx int) ColumnValueSelector {
	vc := f.columns[idx]
	inputs := make(map[string]ColumnValueSelector)
	for _, name := range vc.Expression.RequiredBindings() {
		inputs[name] = f.input(name, idx)
	}
	return ObjectSelector(func() interface{} {
		bindings := make(map[string]interface{}, len(inputs))
		for name, sel := range inputs {
			bindings[name] = sel.GetObject()
		}
		v, err := vc.Expression.Eval(bindings)
		if err != nil {
			logger.Debug("virtual column %s: %v", vc.Name, err)
			return nil
		}
		return v
	})
}

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
	"sync"

	"github.com/rulego/druid-example/functions"
	"github.com/rulego/druid-example/segment"
	"github.com/rulego/druid-example/types"
)

// VirtualColumnRegistry materialises expressions as named columns for the
// query being planned.
type VirtualColumnRegistry interface {
	// GetOrCreateVirtualColumnForExpression returns the column computing
	// expression as type t, creating it on first use.
	GetOrCreateVirtualColumnForExpression(expression string, t types.ColumnType) (string, error)
	VirtualColumns() segment.VirtualColumns
}

type vcKey struct {
	expression string
	outputType types.ColumnType
}

// DefaultVirtualColumnRegistry names columns <prefix>0, <prefix>1, ... and
// compiles expressions with the functions package. Generated names skip
// every column an expression reads and every column passed to
// ReserveColumns, so a virtual column never shadows an input column.
type DefaultVirtualColumnRegistry struct {
	mu       sync.Mutex
	prefix   string
	next     int
	reserved map[string]bool
	byKey    map[vcKey]*segment.VirtualColumn
	columns  segment.VirtualColumns
}

func NewVirtualColumnRegistry(prefix string) *DefaultVirtualColumnRegistry {
	if prefix == "" {
		prefix = types.NewConfig().VirtualColumnPrefix
	}
	return &DefaultVirtualColumnRegistry{
		prefix:   prefix,
		reserved: make(map[string]bool),
		byKey:    make(map[vcKey]*segment.VirtualColumn),
	}
}

// ReserveColumns declares input columns that generated names must avoid.
func (r *DefaultVirtualColumnRegistry) ReserveColumns(columns ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range columns {
		r.reserved[c] = true
	}
}

func (r *DefaultVirtualColumnRegistry) GetOrCreateVirtualColumnForExpression(expression string, t types.ColumnType) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := vcKey{expression: expression, outputType: t}
	if vc, ok := r.byKey[key]; ok {
		return vc.Name, nil
	}
	compiled, err := functions.Compile(expression)
	if err != nil {
		return "", &PlanError{
			Type:    ErrorTypeVirtualColumn,
			Message: fmt.Sprintf("cannot materialise expression %q", expression),
			Err:     err,
		}
	}
	for _, name := range compiled.RequiredBindings() {
		r.reserved[name] = true
	}
	vc := &segment.VirtualColumn{
		Name:       r.unusedName(),
		Expression: compiled,
		OutputType: t,
	}
	r.byKey[key] = vc
	r.columns = append(r.columns, vc)
	return vc.Name, nil
}

func (r *DefaultVirtualColumnRegistry) unusedName() string {
	for {
		name := fmt.Sprintf("%s%d", r.prefix, r.next)
		r.next++
		if !r.reserved[name] {
			return name
		}
	}
}

// VirtualColumns returns the columns created so far, in creation order.
func (r *DefaultVirtualColumnRegistry) VirtualColumns() segment.VirtualColumns {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(segment.VirtualColumns, len(r.columns))
	copy(out, r.columns)
	return out
}

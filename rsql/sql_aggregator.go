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
	"sort"
	"strings"
	"sync"

	"github.com/rulego/druid-example/aggregator"
	"github.com/rulego/druid-example/logger"
)

var log = logger.Named("rsql")

// Aggregation is the native form of one SQL aggregate call.
type Aggregation struct {
	Factories []aggregator.Factory
}

func NewAggregation(factories ...aggregator.Factory) *Aggregation {
	return &Aggregation{Factories: factories}
}

// OutputName is the name of the last factory, the one carrying the result.
func (a *Aggregation) OutputName() string {
	if a == nil || len(a.Factories) == 0 {
		return ""
	}
	return a.Factories[len(a.Factories)-1].Name()
}

// SqlAggregator translates calls of one SQL aggregate function.
type SqlAggregator interface {
	Function() *AggFunction
	// ToAggregation returns (nil, nil) when the call cannot be handled
	ToAggregation(vcr VirtualColumnRegistry, name string, call *AggregateCall) (*Aggregation, error)
}

var (
	sqlMu          sync.RWMutex
	sqlAggregators = make(map[string]SqlAggregator)
)

// RegisterSqlAggregator 注册SQL聚合函数, names are case-insensitive
func RegisterSqlAggregator(agg SqlAggregator) error {
	name := strings.ToUpper(agg.Function().Name)
	sqlMu.Lock()
	defer sqlMu.Unlock()
	if _, exists := sqlAggregators[name]; exists {
		return fmt.Errorf("sql aggregator %s already registered", name)
	}
	sqlAggregators[name] = agg
	log.Debug("registered sql aggregator %s", name)
	return nil
}

func UnregisterSqlAggregator(name string) bool {
	sqlMu.Lock()
	defer sqlMu.Unlock()
	name = strings.ToUpper(name)
	if _, exists := sqlAggregators[name]; !exists {
		return false
	}
	delete(sqlAggregators, name)
	return true
}

func GetSqlAggregator(name string) (SqlAggregator, bool) {
	sqlMu.RLock()
	defer sqlMu.RUnlock()
	agg, ok := sqlAggregators[strings.ToUpper(name)]
	return agg, ok
}

// SqlAggregatorNames lists registered function names, sorted.
func SqlAggregatorNames() []string {
	sqlMu.RLock()
	defer sqlMu.RUnlock()
	names := make([]string, 0, len(sqlAggregators))
	for name := range sqlAggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlanAggregate resolves, checks and translates one call the way the host
// planner does. A declined call is a PlanError of type ErrorTypeUnsupported.
func PlanAggregate(vcr VirtualColumnRegistry, name string, call *AggregateCall) (*Aggregation, error) {
	agg, ok := GetSqlAggregator(call.Function)
	if !ok {
		return nil, &PlanError{Type: ErrorTypeUnknownFunction, Function: call.Function, Message: "no such aggregate function"}
	}
	if err := agg.Function().CheckOperands(call.Operands); err != nil {
		return nil, err
	}
	out, err := agg.ToAggregation(vcr, name, call)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, &PlanError{
			Type:     ErrorTypeUnsupported,
			Function: agg.Function().Name,
			Message:  fmt.Sprintf("cannot translate %s", call),
		}
	}
	return out, nil
}

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

package druidexample

import (
	"fmt"

	"github.com/rulego/druid-example/aggregator"
	"github.com/rulego/druid-example/cachekey"
	"github.com/rulego/druid-example/extraction"
	"github.com/rulego/druid-example/functions"
	"github.com/rulego/druid-example/indexer"
	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/parser"
	"github.com/rulego/druid-example/rsql"
	"github.com/rulego/druid-example/types"
)

// Name is the extension's name as the host lists it.
const Name = "druid-example-extension"

// Extension 汇总本扩展注册的全部组件
type Extension struct {
	config types.Config
}

// New 创建扩展实例
func New(options ...Option) *Extension {
	e := &Extension{config: types.NewConfig()}
	for _, option := range options {
		option(e)
	}
	logger.Debug("extension %s ready, components: %v", Name, e.Components())
	return e
}

// Config returns the effective configuration.
func (e *Extension) Config() types.Config {
	return e.config
}

// Components lists registered type names per extension point.
func (e *Extension) Components() map[string][]string {
	return map[string][]string{
		aggregator.Factories.Kind(): aggregator.Factories.Names(),
		extraction.Fns.Kind():       extraction.Fns.Names(),
		parser.Specs.Kind():         parser.Specs.Names(),
		indexer.Parsers.Kind():      indexer.Parsers.Names(),
		"sqlAggregator":             rsql.SqlAggregatorNames(),
		"exprMacro":                 functions.Names(),
	}
}

// DecodeAggregator reads an aggregator descriptor, JSON or YAML.
func (e *Extension) DecodeAggregator(data []byte) (aggregator.Factory, error) {
	js, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	return aggregator.Decode(js)
}

// DecodeExtractionFn reads an extraction function descriptor, JSON or YAML.
func (e *Extension) DecodeExtractionFn(data []byte) (extraction.Fn, error) {
	js, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	return extraction.Decode(js)
}

// DecodeParseSpec reads a parse spec descriptor, JSON or YAML.
func (e *Extension) DecodeParseSpec(data []byte) (parser.ParseSpec, error) {
	js, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	return parser.Decode(js)
}

// DecodeInputRowParser reads an input row parser descriptor, JSON or YAML.
func (e *Extension) DecodeInputRowParser(data []byte) (indexer.ByteBufferInputRowParser, error) {
	js, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	return indexer.Decode(js)
}

// CompileExpression compiles a native expression, validating macros.
func (e *Extension) CompileExpression(expression string) (*functions.Expr, error) {
	return functions.Compile(expression)
}

// NewVirtualColumnRegistry returns a registry using the configured prefix.
func (e *Extension) NewVirtualColumnRegistry() *rsql.DefaultVirtualColumnRegistry {
	return rsql.NewVirtualColumnRegistry(e.config.VirtualColumnPrefix)
}

// PlanAggregate translates one SQL aggregate call.
func (e *Extension) PlanAggregate(vcr rsql.VirtualColumnRegistry, name string, call *rsql.AggregateCall) (*rsql.Aggregation, error) {
	return rsql.PlanAggregate(vcr, name, call)
}

// Keyed is implemented by components that contribute to result cache keys.
type Keyed interface {
	CacheKey() []byte
}

// Fingerprint returns a stable short identifier of a component's cache key.
func (e *Extension) Fingerprint(component Keyed) (string, error) {
	if component == nil {
		return "", fmt.Errorf("fingerprint: nil component")
	}
	return cachekey.Fingerprint(component.CacheKey()), nil
}

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

/*
Package druidexample 是一个示例扩展，演示如何向列式分析引擎注册自定义组件。

The extension contributes one component for each extension point of the host:

• exampleSum      - 求和聚合器，堆内与缓冲区两种形态 (package aggregator)
• EXAMPLE_SUM     - SQL 聚合函数绑定 (package rsql)
• example         - 字符串截断提取函数 (package extraction)
• exampleParser   - ROT13 + Base64 行解码器 (package indexer)
• example format  - 带提取函数的 JSON 解析规范 (package parser)
• example_sum     - 数组加常量的表达式宏 (package functions)

Each component registers itself under its type name when its package is
imported. The Extension type gathers all of them behind one value and decodes
descriptors the way the host reads them from ingestion and query specs.

# 快速开始

	ext := druidexample.New(druidexample.WithLogLevel(logger.DEBUG))

	agg, err := ext.DecodeAggregator([]byte(`{"type":"exampleSum","name":"a0","fieldName":"m1"}`))
	if err != nil {
		return err
	}

	rowParser, err := ext.DecodeInputRowParser([]byte(`
	type: exampleParser
	parseSpec:
	  format: example
	  timestampSpec: {column: timestamp, format: iso}
	  dimensionsSpec: {dimensions: [product]}
	  extractionFn: {type: example, length: 3}
	`))

Descriptors may be JSON or YAML; YAML is converted to JSON before decoding.

# 配置

Options apply to the process-wide logger and to SQL planning defaults:

	ext := druidexample.New(
		druidexample.WithConfig(cfg),
		druidexample.WithDiscardLog(),
	)

LoadConfig reads a types.Config from a JSON or YAML file.
*/
package druidexample

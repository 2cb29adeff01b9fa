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

// Package indexer holds ingestion-time row codecs: parsers that turn a raw
// message payload into rows before indexing.
package indexer

import (
	"github.com/rulego/druid-example/model"
	"github.com/rulego/druid-example/parser"
	"github.com/rulego/druid-example/utils/registry"
)

// ByteBufferInputRowParser decodes one message payload into rows.
type ByteBufferInputRowParser interface {
	Type() string
	ParseSpec() parser.ParseSpec
	// ParseBatch may return several rows for one payload
	ParseBatch(input []byte) ([]*model.InputRow, error)
	WithParseSpec(spec parser.ParseSpec) ByteBufferInputRowParser
	Equal(other ByteBufferInputRowParser) bool
}

// Parsers resolves row parser descriptors by their "type" field.
var Parsers = registry.New[ByteBufferInputRowParser]("inputRowParser", "type")

// Decode builds a ByteBufferInputRowParser from its JSON descriptor.
func Decode(data []byte) (ByteBufferInputRowParser, error) {
	return Parsers.Decode(data)
}

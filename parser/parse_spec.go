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

// Package parser turns raw ingestion lines into rows. A ParseSpec describes
// the line grammar plus where the timestamp and dimensions live; its Parser
// produces an ordered field map which StringInputRowParser turns into a
// model.InputRow.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/model"
	"github.com/rulego/druid-example/utils/registry"
)

var log = logger.Named("parser")

// Parser turns one line into fields. Failures are *ParseError.
type Parser interface {
	Parse(input string) (*model.Fields, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(input string) (*model.Fields, error)

func (f ParserFunc) Parse(input string) (*model.Fields, error) {
	return f(input)
}

// ParseSpec describes a line grammar. Implementations are immutable; the
// With methods return modified copies.
type ParseSpec interface {
	Format() string
	TimestampSpec() TimestampSpec
	DimensionsSpec() DimensionsSpec
	MakeParser() (Parser, error)
	WithTimestampSpec(spec TimestampSpec) ParseSpec
	WithDimensionsSpec(spec DimensionsSpec) ParseSpec
	Equal(other ParseSpec) bool
}

// Specs resolves parse spec descriptors by their "format" field.
var Specs = registry.New[ParseSpec]("parseSpec", "format")

// Decode builds a ParseSpec from its JSON descriptor.
func Decode(data []byte) (ParseSpec, error) {
	return Specs.Decode(data)
}

// baseSpec carries the parts every grammar shares.
type baseSpec struct {
	timestampSpec  TimestampSpec
	dimensionsSpec DimensionsSpec
}

func (b baseSpec) TimestampSpec() TimestampSpec   { return b.timestampSpec }
func (b baseSpec) DimensionsSpec() DimensionsSpec { return b.dimensionsSpec }

func (b baseSpec) equal(other ParseSpec) bool {
	return b.timestampSpec.Equal(other.TimestampSpec()) && b.dimensionsSpec.Equal(other.DimensionsSpec())
}

type baseSpecJSON struct {
	Format         string          `json:"format"`
	TimestampSpec  *TimestampSpec  `json:"timestampSpec,omitempty"`
	DimensionsSpec *DimensionsSpec `json:"dimensionsSpec,omitempty"`
}

func (b baseSpec) toJSON(format string) baseSpecJSON {
	ts, ds := b.timestampSpec, b.dimensionsSpec
	return baseSpecJSON{Format: format, TimestampSpec: &ts, DimensionsSpec: &ds}
}

// decodeBase reads the shared fields, applying defaults for absent specs.
func decodeBase(format string, data []byte) (baseSpec, error) {
	var spec baseSpecJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return baseSpec{}, fmt.Errorf("%s parseSpec: %w", format, err)
	}
	if spec.Format != "" && spec.Format != format {
		return baseSpec{}, fmt.Errorf("%s parseSpec: unexpected format %q", format, spec.Format)
	}
	b := baseSpec{timestampSpec: DefaultTimestampSpec()}
	if spec.TimestampSpec != nil {
		b.timestampSpec = *spec.TimestampSpec
	}
	if spec.DimensionsSpec != nil {
		b.dimensionsSpec = *spec.DimensionsSpec
	}
	return b, nil
}

// register wires a concrete spec type into Specs.
func register[T interface {
	ParseSpec
	json.Unmarshaler
}](format string, newSpec func() T) {
	Specs.MustRegister(format, func(data []byte) (ParseSpec, error) {
		spec := newSpec()
		if err := spec.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return spec, nil
	})
}

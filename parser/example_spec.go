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

package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rulego/druid-example/extraction"
	"github.com/rulego/druid-example/model"
)

const ExampleFormat = "example"

// ExampleParseSpec reads JSON objects and runs every string field, other
// than the timestamp column, through an extraction function. Lists are
// transformed element by element; nested objects are left alone.
type ExampleParseSpec struct {
	baseSpec
	extractionFn extraction.Fn
}

func NewExampleParseSpec(ts TimestampSpec, ds DimensionsSpec, fn extraction.Fn) (*ExampleParseSpec, error) {
	if fn == nil {
		return nil, errors.New("example parseSpec: extractionFn is required")
	}
	return &ExampleParseSpec{
		baseSpec:     baseSpec{timestampSpec: ts, dimensionsSpec: ds},
		extractionFn: fn,
	}, nil
}

func (s *ExampleParseSpec) Format() string              { return ExampleFormat }
func (s *ExampleParseSpec) ExtractionFn() extraction.Fn { return s.extractionFn }

func (s *ExampleParseSpec) MakeParser() (Parser, error) {
	column := s.timestampSpec.Column
	return ParserFunc(func(input string) (*model.Fields, error) {
		parsed, err := ParseJSONObject(input)
		if err != nil {
			return nil, err
		}
		out := model.NewFields()
		for _, name := range parsed.Names() {
			v, _ := parsed.Get(name)
			if name != column {
				v = s.transform(v)
			}
			out.Set(name, v)
		}
		return out, nil
	}), nil
}

func (s *ExampleParseSpec) transform(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if r := s.extractionFn.Apply(&val); r != nil {
			return *r
		}
		return nil
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.transform(item)
		}
		return out
	case []string:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.transform(item)
		}
		return out
	default:
		return v
	}
}

func (s *ExampleParseSpec) WithTimestampSpec(spec TimestampSpec) ParseSpec {
	return &ExampleParseSpec{baseSpec: baseSpec{timestampSpec: spec, dimensionsSpec: s.dimensionsSpec}, extractionFn: s.extractionFn}
}

func (s *ExampleParseSpec) WithDimensionsSpec(spec DimensionsSpec) ParseSpec {
	return &ExampleParseSpec{baseSpec: baseSpec{timestampSpec: s.timestampSpec, dimensionsSpec: spec}, extractionFn: s.extractionFn}
}

func (s *ExampleParseSpec) Equal(other ParseSpec) bool {
	o, ok := other.(*ExampleParseSpec)
	return ok && s.equal(other) && s.extractionFn.Equal(o.extractionFn)
}

func (s *ExampleParseSpec) String() string {
	return fmt.Sprintf("ExampleParseSpec{%s, dimensions=%v, extractionFn=%v}",
		s.timestampSpec, s.dimensionsSpec.Dimensions, s.extractionFn)
}

type exampleSpecJSON struct {
	baseSpecJSON
	ExtractionFn json.RawMessage `json:"extractionFn,omitempty"`
}

func (s *ExampleParseSpec) MarshalJSON() ([]byte, error) {
	fn, err := json.Marshal(s.extractionFn)
	if err != nil {
		return nil, fmt.Errorf("example parseSpec: %w", err)
	}
	return json.Marshal(exampleSpecJSON{baseSpecJSON: s.toJSON(ExampleFormat), ExtractionFn: fn})
}

func (s *ExampleParseSpec) UnmarshalJSON(data []byte) error {
	b, err := decodeBase(ExampleFormat, data)
	if err != nil {
		return err
	}
	var spec exampleSpecJSON
	if err = json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("example parseSpec: %w", err)
	}
	if len(spec.ExtractionFn) == 0 || string(spec.ExtractionFn) == "null" {
		return errors.New("example parseSpec: extractionFn is required")
	}
	fn, err := extraction.Decode(spec.ExtractionFn)
	if err != nil {
		return fmt.Errorf("example parseSpec: %w", err)
	}
	built, err := NewExampleParseSpec(b.timestampSpec, b.dimensionsSpec, fn)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

func init() {
	register(ExampleFormat, func() *ExampleParseSpec { return &ExampleParseSpec{} })
}

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
	"io"
	"strings"

	"github.com/rulego/druid-example/model"
)

const JSONFormat = "json"

// JSONParseSpec reads one JSON object per line.
type JSONParseSpec struct {
	baseSpec
}

func NewJSONParseSpec(ts TimestampSpec, ds DimensionsSpec) *JSONParseSpec {
	return &JSONParseSpec{baseSpec{timestampSpec: ts, dimensionsSpec: ds}}
}

func (s *JSONParseSpec) Format() string { return JSONFormat }

func (s *JSONParseSpec) MakeParser() (Parser, error) {
	return ParserFunc(ParseJSONObject), nil
}

func (s *JSONParseSpec) WithTimestampSpec(spec TimestampSpec) ParseSpec {
	return NewJSONParseSpec(spec, s.dimensionsSpec)
}

func (s *JSONParseSpec) WithDimensionsSpec(spec DimensionsSpec) ParseSpec {
	return NewJSONParseSpec(s.timestampSpec, spec)
}

func (s *JSONParseSpec) Equal(other ParseSpec) bool {
	_, ok := other.(*JSONParseSpec)
	return ok && s.equal(other)
}

func (s *JSONParseSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toJSON(JSONFormat))
}

func (s *JSONParseSpec) UnmarshalJSON(data []byte) error {
	b, err := decodeBase(JSONFormat, data)
	if err != nil {
		return err
	}
	s.baseSpec = b
	return nil
}

func init() {
	register(JSONFormat, func() *JSONParseSpec { return &JSONParseSpec{} })
}

// ParseJSONObject decodes a JSON object keeping the field order of the input.
// Integral numbers become int64, other numbers float64; nested objects are
// plain maps.
func ParseJSONObject(input string) (*model.Fields, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, NewParseError(input, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, NewParseError(input, fmt.Errorf("expected a JSON object, got %v", tok))
	}

	fields := model.NewFields()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, NewParseError(input, err)
		}
		key, _ := tok.(string)
		var value interface{}
		if err = dec.Decode(&value); err != nil {
			return nil, NewParseError(input, err)
		}
		fields.Set(key, normalizeJSON(value))
	}
	// closing brace
	if _, err = dec.Token(); err != nil {
		return nil, NewParseError(input, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, NewParseError(input, errors.New("trailing data after JSON object"))
	}
	return fields, nil
}

func normalizeJSON(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	case []interface{}:
		for i := range val {
			val[i] = normalizeJSON(val[i])
		}
		return val
	case map[string]interface{}:
		for k := range val {
			val[k] = normalizeJSON(val[k])
		}
		return val
	default:
		return v
	}
}

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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rulego/druid-example/model"
)

const (
	TSVFormat = "tsv"
	CSVFormat = "csv"

	// DefaultListDelimiter separates the values of a multi-value cell
	DefaultListDelimiter = "\u0001"
)

// DelimitedParseSpec reads tab- or comma-separated lines against a fixed
// column list. CSV honours quoting, TSV splits on every delimiter.
type DelimitedParseSpec struct {
	baseSpec
	format        string
	delimiter     string
	listDelimiter string
	columns       []string
}

// NewDelimitedParseSpec builds a tsv or csv spec. Empty delimiters take the
// format defaults.
func NewDelimitedParseSpec(format string, ts TimestampSpec, ds DimensionsSpec, columns []string, delimiter, listDelimiter string) (*DelimitedParseSpec, error) {
	switch format {
	case TSVFormat:
		if delimiter == "" {
			delimiter = "\t"
		}
	case CSVFormat:
		if delimiter == "" {
			delimiter = ","
		}
	default:
		return nil, fmt.Errorf("unsupported delimited format %q", format)
	}
	if listDelimiter == "" {
		listDelimiter = DefaultListDelimiter
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s parseSpec: columns are required", format)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%s parseSpec: duplicate column %q", format, c)
		}
		seen[c] = struct{}{}
	}
	if format == CSVFormat && utf8.RuneCountInString(delimiter) != 1 {
		return nil, fmt.Errorf("csv parseSpec: delimiter must be a single character, got %q", delimiter)
	}
	return &DelimitedParseSpec{
		baseSpec:      baseSpec{timestampSpec: ts, dimensionsSpec: ds},
		format:        format,
		delimiter:     delimiter,
		listDelimiter: listDelimiter,
		columns:       slices.Clone(columns),
	}, nil
}

func (s *DelimitedParseSpec) Format() string        { return s.format }
func (s *DelimitedParseSpec) Columns() []string     { return slices.Clone(s.columns) }
func (s *DelimitedParseSpec) Delimiter() string     { return s.delimiter }
func (s *DelimitedParseSpec) ListDelimiter() string { return s.listDelimiter }

func (s *DelimitedParseSpec) MakeParser() (Parser, error) {
	return ParserFunc(s.parse), nil
}

func (s *DelimitedParseSpec) parse(input string) (*model.Fields, error) {
	values, err := s.split(input)
	if err != nil {
		return nil, NewParseError(input, err)
	}
	if len(values) > len(s.columns) {
		return nil, NewParseError(input, fmt.Errorf("got %d values for %d columns", len(values), len(s.columns)))
	}
	fields := model.NewFields()
	for i, v := range values {
		fields.Set(s.columns[i], s.cell(v))
	}
	return fields, nil
}

func (s *DelimitedParseSpec) split(input string) ([]string, error) {
	input = strings.TrimRight(input, "\r\n")
	if s.format == TSVFormat {
		return strings.Split(input, s.delimiter), nil
	}
	r := csv.NewReader(strings.NewReader(input))
	r.Comma, _ = utf8.DecodeRuneInString(s.delimiter)
	r.FieldsPerRecord = -1
	return r.Read()
}

// cell maps "" to nil and splits multi-value cells.
func (s *DelimitedParseSpec) cell(v string) interface{} {
	if v == "" {
		return nil
	}
	if strings.Contains(v, s.listDelimiter) {
		return strings.Split(v, s.listDelimiter)
	}
	return v
}

func (s *DelimitedParseSpec) WithTimestampSpec(spec TimestampSpec) ParseSpec {
	c := *s
	c.timestampSpec = spec
	return &c
}

func (s *DelimitedParseSpec) WithDimensionsSpec(spec DimensionsSpec) ParseSpec {
	c := *s
	c.dimensionsSpec = spec
	return &c
}

func (s *DelimitedParseSpec) Equal(other ParseSpec) bool {
	o, ok := other.(*DelimitedParseSpec)
	return ok && s.equal(other) &&
		s.format == o.format &&
		s.delimiter == o.delimiter &&
		s.listDelimiter == o.listDelimiter &&
		slices.Equal(s.columns, o.columns)
}

type delimitedSpecJSON struct {
	baseSpecJSON
	Delimiter     string   `json:"delimiter,omitempty"`
	ListDelimiter string   `json:"listDelimiter,omitempty"`
	Columns       []string `json:"columns"`
}

func (s *DelimitedParseSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(delimitedSpecJSON{
		baseSpecJSON:  s.toJSON(s.format),
		Delimiter:     s.delimiter,
		ListDelimiter: s.listDelimiter,
		Columns:       s.columns,
	})
}

func (s *DelimitedParseSpec) unmarshal(format string, data []byte) error {
	b, err := decodeBase(format, data)
	if err != nil {
		return err
	}
	var spec delimitedSpecJSON
	if err = json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("%s parseSpec: %w", format, err)
	}
	built, err := NewDelimitedParseSpec(format, b.timestampSpec, b.dimensionsSpec, spec.Columns, spec.Delimiter, spec.ListDelimiter)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

// UnmarshalJSON takes the format from the descriptor, defaulting to tsv.
func (s *DelimitedParseSpec) UnmarshalJSON(data []byte) error {
	format := s.format
	if format == "" {
		var head struct {
			Format string `json:"format"`
		}
		_ = json.Unmarshal(data, &head)
		format = head.Format
	}
	if format == "" {
		format = TSVFormat
	}
	return s.unmarshal(format, data)
}

func init() {
	register(TSVFormat, func() *DelimitedParseSpec { return &DelimitedParseSpec{format: TSVFormat} })
	register(CSVFormat, func() *DelimitedParseSpec { return &DelimitedParseSpec{format: CSVFormat} })
}

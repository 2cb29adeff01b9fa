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

package indexer

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/model"
	"github.com/rulego/druid-example/parser"
)

// ExampleParserTypeName is the descriptor type of ExampleByteBufferInputRowParser.
const ExampleParserTypeName = "exampleParser"

var (
	log = logger.Named("indexer")

	errInvalidUTF8 = errors.New("payload is not valid UTF-8")
)

// ExampleByteBufferInputRowParser reads payloads written as
// ROT13(Base64(UTF8(line))) and parses the line with its ParseSpec.
// Each payload is exactly one row. Not safe for concurrent use.
type ExampleByteBufferInputRowParser struct {
	parseSpec    parser.ParseSpec
	stringParser *parser.StringInputRowParser
}

func NewExampleByteBufferInputRowParser(spec parser.ParseSpec) (*ExampleByteBufferInputRowParser, error) {
	if spec == nil {
		return nil, fmt.Errorf("%s: parseSpec is required", ExampleParserTypeName)
	}
	return &ExampleByteBufferInputRowParser{parseSpec: spec}, nil
}

func (p *ExampleByteBufferInputRowParser) Type() string                { return ExampleParserTypeName }
func (p *ExampleByteBufferInputRowParser) ParseSpec() parser.ParseSpec { return p.parseSpec }

func (p *ExampleByteBufferInputRowParser) WithParseSpec(spec parser.ParseSpec) ByteBufferInputRowParser {
	return &ExampleByteBufferInputRowParser{parseSpec: spec}
}

func (p *ExampleByteBufferInputRowParser) ParseBatch(input []byte) ([]*model.InputRow, error) {
	if p.stringParser == nil {
		p.stringParser = parser.NewStringInputRowParser(p.parseSpec)
	}
	line, err := DecodeRot13Base64(input)
	if err != nil {
		log.Debug("dropping payload: %v", err)
		return nil, err
	}
	row, err := p.stringParser.Parse(line)
	if err != nil {
		return nil, parser.NewParseError(string(input), err)
	}
	return []*model.InputRow{row}, nil
}

// DecodeRot13Base64 recovers the line carried by a payload. Failures are
// *parser.ParseError holding the raw payload.
func DecodeRot13Base64(input []byte) (string, error) {
	if !utf8.Valid(input) {
		return "", parser.NewParseError(string(input), errInvalidUTF8)
	}
	decoded, err := base64.StdEncoding.DecodeString(Rot13(string(input)))
	if err != nil {
		return "", parser.NewParseError(string(input), fmt.Errorf("base64: %w", err))
	}
	if !utf8.Valid(decoded) {
		return "", parser.NewParseError(string(input), errInvalidUTF8)
	}
	return string(decoded), nil
}

// EncodeRot13Base64 is the inverse of DecodeRot13Base64.
func EncodeRot13Base64(line string) []byte {
	return []byte(Rot13(base64.StdEncoding.EncodeToString([]byte(line))))
}

// Rot13 rotates ASCII letters by 13 places within their case. Every other
// character is kept, so Rot13(Rot13(s)) == s.
func Rot13(s string) string {
	out := []byte(s)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'm', c >= 'A' && c <= 'M':
			out[i] = c + 13
		case c >= 'n' && c <= 'z', c >= 'N' && c <= 'Z':
			out[i] = c - 13
		}
	}
	return string(out)
}

func (p *ExampleByteBufferInputRowParser) Equal(other ByteBufferInputRowParser) bool {
	o, ok := other.(*ExampleByteBufferInputRowParser)
	if !ok || o == nil {
		return false
	}
	if p.parseSpec == nil || o.parseSpec == nil {
		return p.parseSpec == nil && o.parseSpec == nil
	}
	return p.parseSpec.Equal(o.parseSpec)
}

func (p *ExampleByteBufferInputRowParser) String() string {
	return fmt.Sprintf("ExampleByteBufferInputRowParser{parseSpec=%v}", p.parseSpec)
}

type exampleParserJSON struct {
	Type      string          `json:"type"`
	ParseSpec json.RawMessage `json:"parseSpec"`
}

func (p *ExampleByteBufferInputRowParser) MarshalJSON() ([]byte, error) {
	spec, err := json.Marshal(p.parseSpec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ExampleParserTypeName, err)
	}
	return json.Marshal(exampleParserJSON{Type: ExampleParserTypeName, ParseSpec: spec})
}

func (p *ExampleByteBufferInputRowParser) UnmarshalJSON(data []byte) error {
	var raw exampleParserJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", ExampleParserTypeName, err)
	}
	if len(raw.ParseSpec) == 0 || string(raw.ParseSpec) == "null" {
		return fmt.Errorf("%s: parseSpec is required", ExampleParserTypeName)
	}
	spec, err := parser.Decode(raw.ParseSpec)
	if err != nil {
		return fmt.Errorf("%s: %w", ExampleParserTypeName, err)
	}
	*p = ExampleByteBufferInputRowParser{parseSpec: spec}
	return nil
}

func init() {
	Parsers.MustRegister(ExampleParserTypeName, func(data []byte) (ByteBufferInputRowParser, error) {
		p := &ExampleByteBufferInputRowParser{}
		if err := p.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return p, nil
	})
}

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
	"errors"

	"github.com/rulego/druid-example/model"
)

// StringInputRowParser parses text lines into InputRows with a ParseSpec.
// It is not safe for concurrent use.
type StringInputRowParser struct {
	spec   ParseSpec
	parser Parser
}

func NewStringInputRowParser(spec ParseSpec) *StringInputRowParser {
	return &StringInputRowParser{spec: spec}
}

func (p *StringInputRowParser) ParseSpec() ParseSpec {
	return p.spec
}

// Parse parses one line. Every failure is a *ParseError carrying input.
func (p *StringInputRowParser) Parse(input string) (*model.InputRow, error) {
	if p.spec == nil {
		return nil, NewParseError(input, errors.New("no parseSpec configured"))
	}
	if p.parser == nil {
		parser, err := p.spec.MakeParser()
		if err != nil {
			return nil, NewParseError(input, err)
		}
		p.parser = parser
	}
	fields, err := p.parser.Parse(input)
	if err != nil {
		log.Debug("dropping row: %v", err)
		return nil, asParseError(input, err)
	}
	row, err := p.ParseFields(fields)
	if err != nil {
		log.Debug("dropping row: %v", err)
		return nil, NewParseError(input, err)
	}
	return row, nil
}

// ParseFields builds an InputRow from already parsed fields.
func (p *StringInputRowParser) ParseFields(fields *model.Fields) (*model.InputRow, error) {
	ts := p.spec.TimestampSpec()
	timestamp, err := ts.Extract(fields)
	if err != nil {
		return nil, err
	}
	return &model.InputRow{
		Timestamp:  timestamp,
		Dimensions: p.spec.DimensionsSpec().Resolve(fields, ts.Column),
		Event:      fields,
	}, nil
}

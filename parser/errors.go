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
	"fmt"
)

// ErrUnparseable is matched by every *ParseError via errors.Is.
var ErrUnparseable = errors.New("unparseable row")

// ParseError is a row-level failure. Input holds the offending raw text so
// the ingestion pipeline can report or skip it.
type ParseError struct {
	Input string
	Err   error
}

// NewParseError 创建行解析错误
func NewParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to parse row [%s]", e.Input)
	}
	return fmt.Sprintf("unable to parse row [%s]: %v", e.Input, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrUnparseable
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// asParseError wraps err for input unless it already is a *ParseError.
func asParseError(input string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return NewParseError(input, err)
}

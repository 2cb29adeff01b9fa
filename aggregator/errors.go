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

package aggregator

import (
	"errors"
	"fmt"
)

// ErrNotMergeable is matched by every *NotMergeableError via errors.Is.
var ErrNotMergeable = errors.New("aggregation factories are not mergeable")

// NotMergeableError is returned by MergingFactory when two factories do not
// describe the same metric.
type NotMergeableError struct {
	Left  Factory
	Right Factory
}

func (e *NotMergeableError) Error() string {
	return fmt.Sprintf("%s: %v and %v", ErrNotMergeable.Error(), describe(e.Left), describe(e.Right))
}

func (e *NotMergeableError) Is(target error) bool {
	return target == ErrNotMergeable
}

func (e *NotMergeableError) Unwrap() error {
	return ErrNotMergeable
}

func describe(f Factory) interface{} {
	if f == nil {
		return "<nil>"
	}
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%s(%s)", f.Type(), f.Name())
}

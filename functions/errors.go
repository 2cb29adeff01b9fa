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

package functions

import (
	"fmt"
)

// ValidationError reports misuse of a function found at compile time.
// Argument names the offending argument when there is one.
type ValidationError struct {
	Function string
	Argument string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Argument != "" {
		return fmt.Sprintf("function[%s] %s: %s", e.Function, e.Argument, e.Message)
	}
	return fmt.Sprintf("function[%s] %s", e.Function, e.Message)
}

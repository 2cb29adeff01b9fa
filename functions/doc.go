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

/*
Package functions provides the scalar functions available inside host
expressions, and the bridge that compiles those expressions with
github.com/expr-lang/expr.

# Macros

A function implementing ExprMacro gets to inspect its unevaluated arguments
when an expression is compiled, so misuse is reported before any row is read.
example_sum is such a macro:

	example_sum(prices, 1.5)    // adds 1.5 to every element of prices

Its second argument must be a numeric literal; anything else fails Compile
with a *ValidationError naming ARGUMENT_TO_ADD.

# Compiling

	e, err := functions.Compile("example_sum(prices, 1)")
	if err != nil {
		return err
	}
	out, err := e.Eval(map[string]interface{}{"prices": []float64{1, 2}})
	// out == []float64{2, 3}

Compiled expressions implement segment.Evaluator and can back virtual columns.
Functions are looked up case-insensitively in the package registry; custom
functions registered with Register become callable in every expression
compiled afterwards.
*/
package functions

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
Package types defines the value types the host engine reports for columns,
aggregation results and expressions, and the extension's configuration.

# Column types

	types.Long, types.Float, types.Double   // scalar numerics
	types.String, types.Complex
	types.DoubleArray, types.LongArray, types.StringArray

ParseColumnType accepts SQL spellings such as BIGINT, VARCHAR and
ARRAY<DOUBLE>. Unrecognised names map to Unknown, which the SQL binding
treats as "cannot infer".

# Configuration

	cfg := types.NewConfig()               // LogLevel "INFO", VirtualColumnPrefix "v"
	cfg = types.Config{LogLevel: "DEBUG"}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		// ...
	}
*/
package types

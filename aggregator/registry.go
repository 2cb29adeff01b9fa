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
	"github.com/rulego/druid-example/utils/registry"
)

// Factories resolves aggregation descriptors by their "type" field.
var Factories = registry.New[Factory]("aggregator", "type")

func init() {
	Factories.MustRegister(SumTypeName, func(data []byte) (Factory, error) {
		f := &SumFactory{}
		if err := f.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return f, nil
	})
}

// Decode builds a Factory from its JSON descriptor.
func Decode(data []byte) (Factory, error) {
	return Factories.Decode(data)
}

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
	"fmt"
	"slices"

	"github.com/rulego/druid-example/model"
)

// DimensionsSpec selects which row fields are ingested as dimensions.
// An empty Dimensions list means every field except the timestamp and the
// exclusions.
type DimensionsSpec struct {
	Dimensions          []string
	DimensionExclusions []string
}

func NewDimensionsSpec(dimensions, exclusions []string) DimensionsSpec {
	return DimensionsSpec{
		Dimensions:          slices.Clone(dimensions),
		DimensionExclusions: slices.Clone(exclusions),
	}
}

// Resolve returns the dimension names for one row.
func (s DimensionsSpec) Resolve(fields *model.Fields, timestampColumn string) []string {
	if len(s.Dimensions) > 0 {
		return slices.Clone(s.Dimensions)
	}
	names := fields.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == timestampColumn || slices.Contains(s.DimensionExclusions, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func (s DimensionsSpec) Equal(other DimensionsSpec) bool {
	return slices.Equal(s.Dimensions, other.Dimensions) &&
		slices.Equal(s.DimensionExclusions, other.DimensionExclusions)
}

type dimensionsSpecJSON struct {
	Dimensions          []json.RawMessage `json:"dimensions"`
	DimensionExclusions []string          `json:"dimensionExclusions"`
}

func (s DimensionsSpec) MarshalJSON() ([]byte, error) {
	dims := s.Dimensions
	if dims == nil {
		dims = []string{}
	}
	excl := s.DimensionExclusions
	if excl == nil {
		excl = []string{}
	}
	return json.Marshal(map[string][]string{"dimensions": dims, "dimensionExclusions": excl})
}

// UnmarshalJSON accepts dimensions given as plain names or as schema objects
// carrying a "name" field.
func (s *DimensionsSpec) UnmarshalJSON(data []byte) error {
	var spec dimensionsSpecJSON
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("dimensionsSpec: %w", err)
	}
	dims := make([]string, 0, len(spec.Dimensions))
	for _, raw := range spec.Dimensions {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			dims = append(dims, name)
			continue
		}
		var schema struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &schema); err != nil || schema.Name == "" {
			return fmt.Errorf("dimensionsSpec: invalid dimension %s", string(raw))
		}
		dims = append(dims, schema.Name)
	}
	*s = NewDimensionsSpec(dims, spec.DimensionExclusions)
	return nil
}

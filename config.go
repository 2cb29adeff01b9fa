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

package druidexample

import (
	"bytes"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/rulego/druid-example/types"
)

// LoadConfig reads a configuration file. JSON and YAML are both accepted.
func LoadConfig(path string) (types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a configuration document and fills defaults.
// Unknown fields are rejected.
func ParseConfig(data []byte) (types.Config, error) {
	var config types.Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return types.Config{}, fmt.Errorf("parse config: %w", err)
	}
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return types.Config{}, err
	}
	return config, nil
}

// toJSON converts a YAML or JSON descriptor to JSON. JSON input is returned
// unchanged so that number formatting survives.
func toJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return trimmed, nil
	}
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("descriptor is neither JSON nor YAML: %w", err)
	}
	return out, nil
}

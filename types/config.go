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

package types

import (
	"fmt"
	"strings"
)

const (
	// DefaultLogLevel 默认日志级别
	DefaultLogLevel = "INFO"
	// DefaultVirtualColumnPrefix 虚拟列默认前缀，生成 v0, v1, ...
	DefaultVirtualColumnPrefix = "v"
)

// Config 扩展配置
type Config struct {
	// LogLevel is one of DEBUG, INFO, WARN, ERROR, OFF.
	LogLevel string `json:"logLevel"`
	// VirtualColumnPrefix names the columns materialized for SQL expression operands.
	VirtualColumnPrefix string `json:"virtualColumnPrefix"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		LogLevel:            DefaultLogLevel,
		VirtualColumnPrefix: DefaultVirtualColumnPrefix,
	}
}

// WithDefaults fills empty fields from NewConfig.
func (c Config) WithDefaults() Config {
	d := NewConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.VirtualColumnPrefix == "" {
		c.VirtualColumnPrefix = d.VirtualColumnPrefix
	}
	return c
}

// Validate checks the configuration
func (c Config) Validate() error {
	if strings.ContainsAny(c.VirtualColumnPrefix, " \t\n") {
		return fmt.Errorf("virtualColumnPrefix %q must not contain whitespace", c.VirtualColumnPrefix)
	}
	return nil
}

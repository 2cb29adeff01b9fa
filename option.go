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
	"io"

	"github.com/rulego/druid-example/logger"
	"github.com/rulego/druid-example/types"
)

// Option 表示对扩展默认行为的修改配置。
type Option func(*Extension)

// WithConfig replaces the extension configuration. Empty fields take defaults
// and the log level is applied to the default logger.
func WithConfig(config types.Config) Option {
	return func(e *Extension) {
		e.config = config.WithDefaults()
		if level, err := logger.ParseLevel(e.config.LogLevel); err == nil {
			logger.GetDefault().SetLevel(level)
		} else {
			logger.Warn("ignoring log level: %v", err)
		}
	}
}

// WithLogger 设置自定义日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	ext := druidexample.New(WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Extension) {
		logger.SetDefault(log)
	}
}

// WithLogLevel 设置日志级别
func WithLogLevel(level logger.Level) Option {
	return func(e *Extension) {
		e.config.LogLevel = level.String()
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Extension) {
		e.config.LogLevel = level.String()
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog 禁用所有日志输出
func WithDiscardLog() Option {
	return func(e *Extension) {
		e.config.LogLevel = logger.OFF.String()
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

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

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{" Info ", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"ERROR", ERROR, false},
		{"off", OFF, false},
		{"verbose", INFO, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDefaultLogger_LevelFiltering 测试日志级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel  Level
		messageLevel Level
		shouldLog    bool
	}{
		{DEBUG, DEBUG, true},
		{DEBUG, ERROR, true},
		{INFO, DEBUG, false},
		{INFO, WARN, true},
		{WARN, INFO, false},
		{WARN, WARN, true},
		{ERROR, WARN, false},
		{ERROR, ERROR, true},
		{OFF, ERROR, false},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		l := NewLogger(test.loggerLevel, &buf)

		switch test.messageLevel {
		case DEBUG:
			l.Debug("test message")
		case INFO:
			l.Info("test message")
		case WARN:
			l.Warn("test message")
		case ERROR:
			l.Error("test message")
		}

		assert.Equal(t, test.shouldLog, strings.Contains(buf.String(), "test message"),
			"logger=%s message=%s", test.loggerLevel, test.messageLevel)
	}
}

func TestDefaultLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(DEBUG, &buf)

	l.Info("factory %s has %d fields", "exampleSum", 2)
	output := buf.String()
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "factory exampleSum has 2 fields")
}

func TestDefaultLogger_With(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(INFO, &buf)
	child := root.With("indexer").With("rot13")

	child.Warn("bad row")
	assert.Contains(t, buf.String(), "[WARN] [indexer.rot13] bad row")

	// 子日志器与父日志器共享级别
	buf.Reset()
	root.SetLevel(ERROR)
	child.Warn("suppressed")
	assert.Empty(t, buf.String())
}

func TestDiscardLogger(t *testing.T) {
	l := NewDiscardLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.SetLevel(DEBUG)
	assert.Same(t, l, l.With("component"))
}

func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")
	output := buf.String()
	for _, msg := range []string{"global debug", "global info", "global warn", "global error"} {
		assert.Contains(t, output, msg)
	}

	// Named resolves the default lazily
	named := Named("aggregator")
	var other bytes.Buffer
	SetDefault(NewLogger(DEBUG, &other))
	named.Info("after swap")
	assert.Contains(t, other.String(), "[aggregator] after swap")
	assert.NotContains(t, buf.String(), "after swap")
}

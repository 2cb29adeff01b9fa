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

// Package registry is the name-keyed lookup table the host uses to resolve a
// descriptor's declared "type" (or "format") to a concrete implementation.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rulego/druid-example/logger"
)

var (
	// ErrUnknownType is returned when a descriptor names a type nobody registered.
	ErrUnknownType = errors.New("unknown type")
	// ErrDuplicateType is returned when a name is registered twice.
	ErrDuplicateType = errors.New("type already registered")
)

// DecodeFunc builds a value from its full JSON descriptor.
type DecodeFunc[T any] func(data []byte) (T, error)

// Registry maps type names to decoders. The zero value is not usable; use New.
type Registry[T any] struct {
	mu       sync.RWMutex
	kind     string
	key      string
	decoders map[string]DecodeFunc[T]
}

// New creates a registry. kind names what is registered (used in errors),
// key is the discriminator field in descriptors, usually "type".
func New[T any](kind, key string) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		key:      key,
		decoders: make(map[string]DecodeFunc[T]),
	}
}

// Kind returns the name of what this registry holds.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register 注册类型
func (r *Registry[T]) Register(name string, decode DecodeFunc[T]) error {
	if name == "" {
		return fmt.Errorf("%s: empty type name", r.kind)
	}
	if decode == nil {
		return fmt.Errorf("%s %s: nil decoder", r.kind, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[name]; exists {
		return fmt.Errorf("%s %s: %w", r.kind, name, ErrDuplicateType)
	}
	r.decoders[name] = decode
	logger.Debug("registered %s type %q", r.kind, name)
	return nil
}

// MustRegister is Register for package init functions.
func (r *Registry[T]) MustRegister(name string, decode DecodeFunc[T]) {
	if err := r.Register(name, decode); err != nil {
		panic(err)
	}
}

// Unregister 注销类型
func (r *Registry[T]) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[name]; !exists {
		return false
	}
	delete(r.decoders, name)
	return true
}

// Get returns the decoder registered under name.
func (r *Registry[T]) Get(name string) (DecodeFunc[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decoders[name]
	return d, ok
}

// Names lists the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.decoders))
	for name := range r.decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode reads the discriminator field from data and dispatches to the
// matching decoder.
func (r *Registry[T]) Decode(data []byte) (T, error) {
	var zero T
	name, err := Discriminator(data, r.key)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", r.kind, err)
	}
	decode, ok := r.Get(name)
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", r.kind, name, ErrUnknownType)
	}
	return decode(data)
}

// Discriminator extracts the string field key from a JSON object.
func Discriminator(data []byte, key string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("invalid descriptor: %w", err)
	}
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("descriptor is missing %q", key)
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil || name == "" {
		return "", fmt.Errorf("descriptor field %q must be a non-empty string", key)
	}
	return name, nil
}

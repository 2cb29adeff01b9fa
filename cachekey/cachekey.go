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

// Package cachekey builds the byte strings the host's result cache uses to
// tell differently configured aggregations and extraction functions apart.
//
// Built-in host components use 1-byte codes starting at 0x00. Extensions use
// 0xFF followed by their own site-specific byte; this extension uses 0x00.
package cachekey

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/dchest/siphash"
)

// ExtensionPrefix is prepended to every key produced by this extension.
var ExtensionPrefix = [2]byte{0xFF, 0x00}

// fixed siphash keys; fingerprints must be identical across processes
const (
	k0 = 0x3c5f0e8b9a7d2e41
	k1 = 0xd2a1f06b47c9e833
)

// Builder accumulates a cache key.
type Builder struct {
	buf []byte
}

// New starts a key with the extension prefix.
func New() *Builder {
	b := &Builder{buf: make([]byte, 0, 16)}
	b.buf = append(b.buf, ExtensionPrefix[:]...)
	return b
}

// AppendString appends the UTF-8 bytes of s without a length or terminator.
func (b *Builder) AppendString(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

// AppendInt32 appends v as 4 big-endian bytes.
func (b *Builder) AppendInt32(v int32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(v))
	return b
}

// Build returns a copy of the accumulated key.
func (b *Builder) Build() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Fingerprint condenses a cache key into a short, URL-safe string suitable as
// a map key or file name.
func Fingerprint(key []byte) string {
	lo, hi := siphash.Hash128(k0, k1, key)
	mem := make([]byte, 0, 16)
	mem = binary.LittleEndian.AppendUint64(mem, lo)
	mem = binary.LittleEndian.AppendUint64(mem, hi)
	return base64.RawURLEncoding.EncodeToString(mem)
}

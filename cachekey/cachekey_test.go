package cachekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	key := New().AppendString("nilly").Build()
	assert.Equal(t, []byte{0xFF, 0x00, 'n', 'i', 'l', 'l', 'y'}, key)

	key = New().AppendInt32(3).Build()
	assert.Equal(t, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x03}, key)

	key = New().AppendInt32(-1).Build()
	assert.Equal(t, []byte{0xFF, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, key)
}

func TestBuildReturnsCopy(t *testing.T) {
	b := New().AppendString("a")
	first := b.Build()
	b.AppendString("b")
	assert.Equal(t, []byte{0xFF, 0x00, 'a'}, first)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(New().AppendString("x").Build())
	b := Fingerprint(New().AppendString("x").Build())
	c := Fingerprint(New().AppendString("y").Build())

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	// 16 bytes, unpadded base64url
	assert.Len(t, a, 22)
}

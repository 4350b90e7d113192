/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU32RoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, SerializeU32(buf, 0))
	require.NoError(t, SerializeU32(buf, 1234567))

	v, err := DeserializeU32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	v, err = DeserializeU32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(1234567), v)
}

func TestI64RoundTrip(t *testing.T) {
	for _, expected := range []int64{0, 42, -42, 1 << 60, -(1 << 60)} {
		buf := &bytes.Buffer{}
		require.NoError(t, SerializeI64(buf, expected))
		v, err := DeserializeI64(buf)
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, expected := range []string{"", "hello", "with\nnewline", "unicode: héllo"} {
		buf := &bytes.Buffer{}
		require.NoError(t, SerializeString(buf, expected))
		s, err := DeserializeString(buf)
		require.NoError(t, err)
		assert.Equal(t, expected, s)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	expected := []byte{0, 1, 2, 255}
	buf := &bytes.Buffer{}
	require.NoError(t, SerializeBytes(buf, expected))
	bs, err := DeserializeBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, expected, bs)
}

func TestDeserializeFromShortInput(t *testing.T) {
	_, err := DeserializeU32(bytes.NewReader([]byte{1, 2}))
	assert.Error(t, err)

	_, err = DeserializeString(bytes.NewReader([]byte{5, 0, 0, 0, 'h', 'i'}))
	assert.Error(t, err)
}

func TestMemoryMouthBuffersUntilFlush(t *testing.T) {
	mouth := &MemoryMouth{}
	mouth.Say("a")
	mouth.Say("b")
	assert.Empty(t, mouth.Outputs)

	mouth.Flush()
	assert.Equal(t, []string{"ab"}, mouth.Outputs)

	// An empty flush adds nothing.
	mouth.Flush()
	assert.Equal(t, []string{"ab"}, mouth.Outputs)
}

func TestWriterMouth(t *testing.T) {
	buf := &bytes.Buffer{}
	mouth := NewWriterMouth(buf)
	mouth.Say("hello ")
	mouth.Say("world")
	assert.Empty(t, buf.String())

	mouth.Flush()
	assert.Equal(t, "hello world", buf.String())
}

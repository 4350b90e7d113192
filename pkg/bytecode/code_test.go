/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeUInt31(t *testing.T) {
	cases := []int{0, 1, 42, 1 << 20, math.MaxInt32}
	for _, v := range cases {
		buf := make([]byte, 4)
		EncodeUInt31(buf, v)
		assert.Equal(t, v, DecodeUInt31(buf))
	}
}

func TestEncodeUInt31OutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	assert.Panics(t, func() { EncodeUInt31(buf, -1) })
	assert.Panics(t, func() { EncodeUInt31(buf, math.MaxInt32+1) })
}

func TestEncodeDecodeSInt32(t *testing.T) {
	cases := []int{0, 1, -1, 123456, -123456, math.MaxInt32, math.MinInt32}
	for _, v := range cases {
		buf := make([]byte, 4)
		EncodeSInt32(buf, v)
		assert.Equal(t, v, DecodeSInt32(buf))
	}
}

func TestOperandsSize(t *testing.T) {
	assert.Equal(t, 0, OperandsSize(OpRet))
	assert.Equal(t, 0, OperandsSize(OpIgnoreOne))
	assert.Equal(t, 1, OperandsSize(OpCall))
	assert.Equal(t, 4, OperandsSize(OpPushLiteral))
	assert.Equal(t, 4, OperandsSize(OpJump))
	assert.Equal(t, 8, OperandsSize(OpAccessField))
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CharStream_Navigation(t *testing.T) {
	cs := NewCharStream([]rune("ab c"))
	//
	assert.Equal(t, 'a', cs.CurrentChar())
	assert.Equal(t, 'b', cs.NextChar())
	assert.Equal(t, rune(0), cs.PrevChar())
	assert.True(t, cs.MoveToNextChar())
	assert.Equal(t, 'a', cs.PrevChar())
	assert.Equal(t, 'c', cs.LookAhead(2))
	assert.Equal(t, 3, cs.DistanceFromEnd())
	// Clamped at either end
	cs.Advance(10)
	assert.True(t, cs.IsEndOfStream())
	assert.Equal(t, 4, cs.Position())
	assert.False(t, cs.MoveToNextChar())
	assert.Equal(t, rune(0), cs.CurrentChar())
	cs.Advance(-10)
	assert.Equal(t, 0, cs.Position())
}

func Test_CharStream_Range(t *testing.T) {
	cs := NewCharStreamRange([]rune("abcdef"), 2, 4)
	//
	assert.Equal(t, 2, cs.Position())
	assert.Equal(t, 'c', cs.CurrentChar())
	assert.Equal(t, rune(0), cs.PrevChar())
	assert.Equal(t, rune(0), cs.CharAt(4))
	assert.Equal(t, "cd", string(cs.Remaining()))
	assert.Equal(t, "cd", cs.Slice(0, 10))
	// Out of range bounds are clamped
	cs = NewCharStreamRange([]rune("abc"), 5, 10)
	assert.True(t, cs.IsEndOfStream())
	assert.Equal(t, 3, cs.Start())
	assert.Equal(t, 3, cs.End())
}

func Test_CharStream_Whitespace(t *testing.T) {
	cs := NewCharStream([]rune(" \t x\r\ny"))
	//
	cs.SkipWhitespace()
	assert.Equal(t, 'x', cs.CurrentChar())
	cs.SkipToWhitespace()
	assert.True(t, cs.IsAtNewLine())
	assert.False(t, cs.IsWhiteSpace())
	cs.SkipLineBreak()
	assert.Equal(t, 'y', cs.CurrentChar())
}

func Test_CharStream_LineBreaks(t *testing.T) {
	cs := NewCharStream([]rune("ab\n\rc"))
	//
	cs.MoveToEol()
	assert.Equal(t, 2, cs.Position())
	// LF then CR are two separate breaks
	cs.SkipLineBreak()
	assert.Equal(t, 3, cs.Position())
	cs.SkipLineBreak()
	assert.Equal(t, 4, cs.Position())
	// Not at a break
	cs.SkipLineBreak()
	assert.Equal(t, 4, cs.Position())
}

func Test_CharStream_Empty(t *testing.T) {
	cs := NewCharStream(nil)
	//
	assert.True(t, cs.IsEndOfStream())
	assert.Equal(t, rune(0), cs.CurrentChar())
	assert.Equal(t, 0, cs.DistanceFromEnd())
	cs.SkipWhitespace()
	cs.MoveToEol()
	assert.Equal(t, 0, cs.Position())
}

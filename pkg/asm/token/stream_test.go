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
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Stream_Empty(t *testing.T) {
	stream := NewStream(nil, 0)
	//
	assert.True(t, stream.IsEndOfStream())
	assert.True(t, stream.IsEndOfLine())
	assert.Equal(t, END_OF_STREAM, stream.CurrentToken().Kind())
	assert.Equal(t, END_OF_STREAM, stream.PreviousToken().Kind())
	assert.Equal(t, END_OF_STREAM, stream.LookAhead(5).Kind())
}

func Test_Stream_Navigation(t *testing.T) {
	stream := NewStream(sampleTokens(), 9)
	//
	assert.Equal(t, SYMBOL, stream.CurrentToken().Kind())
	assert.Equal(t, SYMBOL, stream.NextToken().Kind())
	assert.Equal(t, END_OF_STREAM, stream.PreviousToken().Kind())
	assert.Equal(t, COMMA, stream.LookAhead(2).Kind())
	//
	first := stream.MoveToNextToken()
	assert.Equal(t, 0, first.Start())
	assert.Equal(t, 1, stream.Position())
	assert.Equal(t, first, stream.PreviousToken())
	//
	stream.MoveToEol()
	assert.Equal(t, END_OF_LINE, stream.CurrentToken().Kind())
	assert.True(t, stream.IsEndOfLine())
	assert.False(t, stream.IsEndOfStream())
	//
	stream.Advance(100)
	assert.True(t, stream.IsEndOfStream())
	assert.Equal(t, 9, stream.CurrentToken().Start())
	//
	stream.Advance(-100)
	assert.Equal(t, 0, stream.Position())
}

func Test_Stream_SentinelIsShared(t *testing.T) {
	stream := NewStream(sampleTokens(), 0)
	// Sentinel never precedes the last token
	assert.Equal(t, 9, stream.At(-1).Start())
	assert.Same(t, stream.At(-1), stream.At(1000))
}

func Test_Token_SubKind(t *testing.T) {
	tok := New(SYMBOL, 0, 3)
	tok.SetSubKind(REFERENCE)
	tok.SetSubKind(REFERENCE)
	assert.Equal(t, REFERENCE, tok.SubKind())
	assert.Panics(t, func() { tok.SetSubKind(INSTRUCTION) })
}

func Test_MatchingBrace(t *testing.T) {
	pairs := map[Kind]Kind{
		OPEN_BRACKET: CLOSE_BRACKET,
		OPEN_CURLY:   CLOSE_CURLY,
		OPEN_BRACE:   CLOSE_BRACE,
	}
	//
	for open, closing := range pairs {
		require.True(t, open.IsOpenBrace())
		require.True(t, closing.IsCloseBrace())
		assert.Equal(t, closing, MatchingBrace(open))
		assert.Equal(t, open, MatchingBrace(closing))
	}
	//
	assert.Panics(t, func() { MatchingBrace(COMMA) })
}

// "add r0, r1\n" (approximately)
func sampleTokens() []*Token {
	return []*Token{
		New(SYMBOL, 0, 3),
		New(SYMBOL, 4, 2),
		New(COMMA, 6, 1),
		New(SYMBOL, 7, 2),
		New(END_OF_LINE, 9, 0),
	}
}

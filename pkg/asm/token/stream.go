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

// Stream is a cursor over a sequence of tokens.  Any attempt to access a
// position outside the sequence (before the start, or after the end) returns
// a synthetic END_OF_STREAM token, hence callers never need bounds checks.
type Stream struct {
	tokens []*Token
	index  int
	// Sentinel returned for any out-of-bounds access.
	eos *Token
}

// NewStream constructs a stream over a given token sequence.  The end position
// determines where the synthetic END_OF_STREAM token is located, which is
// usually the length of the original text.
func NewStream(tokens []*Token, end int) *Stream {
	// Never place the sentinel before the last token
	if n := len(tokens); n > 0 {
		end = max(end, tokens[n-1].End())
	}
	//
	return &Stream{tokens, 0, New(END_OF_STREAM, end, 0)}
}

// Tokens returns the underlying token sequence.
func (p *Stream) Tokens() []*Token {
	return p.tokens
}

// Len returns the number of tokens in the stream (excluding the sentinel).
func (p *Stream) Len() int {
	return len(p.tokens)
}

// Position returns the index of the current token.
func (p *Stream) Position() int {
	return p.index
}

// SetPosition moves the cursor to a given index, which is clamped to lie
// between the first token and the sentinel.
func (p *Stream) SetPosition(index int) {
	p.index = max(0, min(index, len(p.tokens)))
}

// Advance moves the cursor by n tokens (which may be negative).
func (p *Stream) Advance(n int) {
	p.SetPosition(p.index + n)
}

// At returns the token at a given absolute index, or the sentinel if this is
// out of bounds.
func (p *Stream) At(index int) *Token {
	if index < 0 || index >= len(p.tokens) {
		return p.eos
	}
	//
	return p.tokens[index]
}

// CurrentToken returns the token under the cursor.
func (p *Stream) CurrentToken() *Token {
	return p.At(p.index)
}

// NextToken returns the token after the cursor.
func (p *Stream) NextToken() *Token {
	return p.At(p.index + 1)
}

// PreviousToken returns the token before the cursor.
func (p *Stream) PreviousToken() *Token {
	return p.At(p.index - 1)
}

// LookAhead returns the token k positions on from the cursor (k may be
// negative).
func (p *Stream) LookAhead(k int) *Token {
	return p.At(p.index + k)
}

// MoveToNextToken advances the cursor by one token, returning the token which
// was under the cursor beforehand.
func (p *Stream) MoveToNextToken() *Token {
	token := p.CurrentToken()
	p.Advance(1)
	//
	return token
}

// MoveToEol advances the cursor until it reaches an END_OF_LINE token or the
// end of the stream.  The END_OF_LINE token itself is not consumed.
func (p *Stream) MoveToEol() {
	for !p.IsEndOfLine() {
		p.index++
	}
}

// IsEndOfLine checks whether the cursor is at an END_OF_LINE token, or the end
// of the stream.
func (p *Stream) IsEndOfLine() bool {
	return p.CurrentToken().Is(END_OF_LINE, END_OF_STREAM)
}

// IsEndOfStream checks whether the cursor has passed the last token.
func (p *Stream) IsEndOfStream() bool {
	return p.index >= len(p.tokens)
}

// Matches checks whether the current token has one of the given kinds.
func (p *Stream) Matches(kinds ...Kind) bool {
	return p.CurrentToken().Is(kinds...)
}

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

// CharStream provides bounded random-access iteration over a slice of source
// text, with one character of lookback and (arbitrary) lookahead.  Reading
// beyond the bounds of the stream yields the sentinel character 0.  The
// position of the stream is always clamped to lie within its range, hence all
// operations are total.
type CharStream struct {
	text []rune
	// Range of the underlying text covered by this stream.
	start, end int
	// Current position within the range.
	position int
}

// NewCharStream constructs a character stream covering the entirety of a given
// text.
func NewCharStream(text []rune) *CharStream {
	return &CharStream{text, 0, len(text), 0}
}

// NewCharStreamRange constructs a character stream covering a given range of
// a text.  The range is clamped to the text bounds.
func NewCharStreamRange(text []rune, start, end int) *CharStream {
	end = max(0, min(end, len(text)))
	start = max(0, min(start, end))
	//
	return &CharStream{text, start, end, start}
}

// Text returns the underlying text of this stream.
func (p *CharStream) Text() []rune {
	return p.text
}

// Position returns the current position within the stream.
func (p *CharStream) Position() int {
	return p.position
}

// SetPosition moves the stream to a given position, which is clamped to the
// range of the stream.
func (p *CharStream) SetPosition(position int) {
	p.position = max(p.start, min(position, p.end))
}

// Start returns the first position of this stream.
func (p *CharStream) Start() int {
	return p.start
}

// End returns one past the last position of this stream.
func (p *CharStream) End() int {
	return p.end
}

// DistanceFromEnd returns the number of characters remaining in the stream.
func (p *CharStream) DistanceFromEnd() int {
	return p.end - p.position
}

// IsEndOfStream checks whether the stream is exhausted.
func (p *CharStream) IsEndOfStream() bool {
	return p.position >= p.end
}

// CurrentChar returns the character at the current position, or 0 if none.
func (p *CharStream) CurrentChar() rune {
	return p.CharAt(p.position)
}

// NextChar returns the character after the current position, or 0 if none.
func (p *CharStream) NextChar() rune {
	return p.CharAt(p.position + 1)
}

// PrevChar returns the character before the current position, or 0 if none.
func (p *CharStream) PrevChar() rune {
	return p.CharAt(p.position - 1)
}

// LookAhead returns the character n positions on from the current position (n
// can be negative), or 0 if this lies outside the stream.
func (p *CharStream) LookAhead(n int) rune {
	return p.CharAt(p.position + n)
}

// CharAt returns the character at a given absolute position, or 0 if this lies
// outside the range of the stream.
func (p *CharStream) CharAt(position int) rune {
	if position < p.start || position >= p.end {
		return 0
	}
	//
	return p.text[position]
}

// Remaining returns the slice of text from the current position to the end of
// the stream.
func (p *CharStream) Remaining() []rune {
	return p.text[p.position:p.end]
}

// Slice returns the text between two absolute positions (clamped to the range
// of the stream).
func (p *CharStream) Slice(start, end int) string {
	start = max(p.start, min(start, p.end))
	end = max(start, min(end, p.end))
	//
	return string(p.text[start:end])
}

// MoveToNextChar advances the stream by one character, returning false if the
// stream was already exhausted.
func (p *CharStream) MoveToNextChar() bool {
	if p.position < p.end {
		p.position++
		return true
	}
	//
	return false
}

// Advance moves the stream by n characters (which may be negative).
func (p *CharStream) Advance(n int) {
	p.SetPosition(p.position + n)
}

// IsWhiteSpace checks whether the current character is intra-line whitespace.
// Line breaks are not considered whitespace here, since they terminate
// statements.
func (p *CharStream) IsWhiteSpace() bool {
	return IsWhiteSpace(p.CurrentChar())
}

// IsAtNewLine checks whether the current character begins a line break.
func (p *CharStream) IsAtNewLine() bool {
	return IsNewLine(p.CurrentChar())
}

// SkipWhitespace moves past any intra-line whitespace.
func (p *CharStream) SkipWhitespace() {
	for !p.IsEndOfStream() && p.IsWhiteSpace() {
		p.position++
	}
}

// SkipToWhitespace moves forward until the next whitespace character, line
// break or end of stream.
func (p *CharStream) SkipToWhitespace() {
	for !p.IsEndOfStream() && !p.IsWhiteSpace() && !p.IsAtNewLine() {
		p.position++
	}
}

// SkipLineBreak consumes a single line break, treating CR, LF and CRLF as one
// unit.  Nothing happens if the stream is not positioned at a line break.
func (p *CharStream) SkipLineBreak() {
	switch p.CurrentChar() {
	case '\r':
		p.position++
		//
		if p.CurrentChar() == '\n' {
			p.position++
		}
	case '\n':
		p.position++
	}
}

// MoveToEol moves forward to the next line break (or end of stream), without
// consuming it.
func (p *CharStream) MoveToEol() {
	for !p.IsEndOfStream() && !p.IsAtNewLine() {
		p.position++
	}
}

// IsWhiteSpace checks whether a character is intra-line whitespace.
func IsWhiteSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\f', '\v', 0xA0, 0xFEFF:
		return true
	}
	//
	return false
}

// IsNewLine checks whether a character starts a line break.
func IsNewLine(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

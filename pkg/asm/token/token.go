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

// Package token defines the lexical tokens of ARM assembly source text, along
// with a bounded cursor over token sequences.
package token

import (
	"fmt"

	"github.com/consensys/go-armasm/pkg/util/source"
)

// Token associates a lexical class with a given range of characters in the
// text being scanned.  The kind and span of a token are fixed at construction,
// whilst the subkind is assigned (at most once) later on by the parser.
type Token struct {
	kind    Kind
	span    source.Span
	subKind SubKind
}

// New constructs a token of a given kind covering length characters from
// start.
func New(kind Kind, start int, length int) *Token {
	return &Token{kind, source.NewSpan(start, start+length), NONE}
}

// NewWithSubKind constructs a token with an initial subkind (e.g. registers,
// which are identified during lexing).
func NewWithSubKind(kind Kind, subKind SubKind, start int, length int) *Token {
	return &Token{kind, source.NewSpan(start, start+length), subKind}
}

// Kind returns the lexical class of this token.
func (t *Token) Kind() Kind {
	return t.kind
}

// SubKind returns the refined classification of this token.
func (t *Token) SubKind() SubKind {
	return t.subKind
}

// SetSubKind assigns the refined classification of this token.  This can
// happen only once: reassigning the same subkind is permitted, but assigning a
// different one indicates a parser bug.
func (t *Token) SetSubKind(subKind SubKind) {
	if t.subKind != NONE && t.subKind != subKind {
		panic(fmt.Sprintf("token %s already classified as %s (not %s)", t, t.subKind, subKind))
	}
	//
	t.subKind = subKind
}

// Span returns the span of text covered by this token.
func (t *Token) Span() source.Span {
	return t.span
}

// Start returns the first position of this token.
func (t *Token) Start() int {
	return t.span.Start()
}

// End returns one past the last position of this token.
func (t *Token) End() int {
	return t.span.End()
}

// Length returns the number of characters in this token.
func (t *Token) Length() int {
	return t.span.Length()
}

// Is checks whether this token is of a given kind.
func (t *Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.kind == k {
			return true
		}
	}
	//
	return false
}

func (t *Token) String() string {
	if t.subKind != NONE {
		return fmt.Sprintf("%s/%s@%s", t.kind, t.subKind, t.span.String())
	}
	//
	return fmt.Sprintf("%s@%s", t.kind, t.span.String())
}

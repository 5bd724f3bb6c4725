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
package ast

import (
	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/collection/array"
	"github.com/consensys/go-armasm/pkg/util/source"
)

// Context holds the state shared by all stages of a single parse.  This
// includes the tokens of the document, the diagnostics found so far, and the
// symbol sites identified by the parser.  A fresh context is created for every
// parse, and the root of the resulting tree retains it.
type Context struct {
	file    *source.File
	version int
	// All tokens, including comments.
	tokens []*token.Token
	// Tokens excluding comments, as walked by the parser.
	stream *token.Stream
	root   *Root
	errors []ParseError
	seen   map[errorKey]bool
	// Symbol sites, in order of discovery.  Duplicates are permitted.
	definitions  []*token.Token
	declarations []*token.Token
	references   []*token.Token
	// Table for validating names, or nil if validation is disabled.
	instructions *isa.Set
}

// NewContext constructs a context for parsing a given (already tokenized)
// document.  The instruction set may be nil, in which case statement names are
// not validated.
func NewContext(file *source.File, version int, tokens []*token.Token, instructions *isa.Set) *Context {
	filtered := array.RemoveMatching(tokens, func(t *token.Token) bool {
		return t.Kind().IsComment()
	})
	//
	ctx := &Context{
		file:         file,
		version:      version,
		tokens:       tokens,
		stream:       token.NewStream(filtered, len(file.Contents())),
		seen:         make(map[errorKey]bool),
		instructions: instructions,
	}
	//
	ctx.root = &Root{context: ctx}
	//
	return ctx
}

// File returns the document being parsed.
func (p *Context) File() *source.File {
	return p.file
}

// Version returns the document version this context was created for.
func (p *Context) Version() int {
	return p.version
}

// Tokens returns all tokens of the document, including comments.
func (p *Context) Tokens() []*token.Token {
	return p.tokens
}

// Stream returns the comment-free token stream walked by the parser.
func (p *Context) Stream() *token.Stream {
	return p.stream
}

// Root returns the root of the tree being built in this context.
func (p *Context) Root() *Root {
	return p.root
}

// InstructionSet returns the table used to validate names, or nil.
func (p *Context) InstructionSet() *isa.Set {
	return p.instructions
}

// AddError records a diagnostic, unless an identical diagnostic (i.e. of the
// same type over the same span) has already been recorded.  Returns true if
// the diagnostic was recorded.
func (p *Context) AddError(err ParseError) bool {
	key := errorKey{err.Start(), err.Length(), err.Type()}
	//
	if p.seen[key] {
		return false
	}
	//
	p.seen[key] = true
	p.errors = append(p.errors, err)
	//
	return true
}

// ReportError records a diagnostic anchored relative to a given token.
func (p *Context) ReportError(errType ErrorType, location ErrorLocation, tok *token.Token) bool {
	return p.AddError(NewParseError(errType, location, tok))
}

// Errors returns the diagnostics recorded so far, in order of discovery.
func (p *Context) Errors() []ParseError {
	return p.errors
}

// AddDefinition records a symbol defined by ".equ" (or similar) or "=", or
// the name of a macro.
func (p *Context) AddDefinition(tok *token.Token) {
	tok.SetSubKind(token.DEFINITION)
	p.definitions = append(p.definitions, tok)
}

// AddDeclaration records a label which declares storage.
func (p *Context) AddDeclaration(tok *token.Token) {
	tok.SetSubKind(token.DECLARATION)
	p.declarations = append(p.declarations, tok)
}

// AddReference records a symbol used within an operand.
func (p *Context) AddReference(tok *token.Token) {
	tok.SetSubKind(token.REFERENCE)
	p.references = append(p.references, tok)
}

// Definitions returns the definition sites recorded so far.
func (p *Context) Definitions() []*token.Token {
	return p.definitions
}

// Declarations returns the declaration sites recorded so far.
func (p *Context) Declarations() []*token.Token {
	return p.declarations
}

// References returns the reference sites recorded so far.
func (p *Context) References() []*token.Token {
	return p.references
}

// Text returns the text of a given token.
func (p *Context) Text(tok *token.Token) string {
	return p.file.Text(tok.Span())
}

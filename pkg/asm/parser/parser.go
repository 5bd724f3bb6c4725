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

// Package parser builds the abstract syntax tree for a document of ARM
// assembly.  Parsing never fails: problems are recorded as diagnostics in the
// parse context, and a tree covering as much of the document as possible is
// always produced.
package parser

import (
	"fmt"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/lexer"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Parse tokenizes and parses a given document.  The instruction set is used to
// validate instruction and directive names, and may be nil to disable this.
// The version is recorded in the resulting context so that consumers can
// determine which revision of a document a tree describes.
func Parse(file *source.File, version int, options lexer.Options, instructions *isa.Set) *ast.Root {
	var (
		tokens = lexer.Tokenize(file.Contents(), options)
		ctx    = ast.NewContext(file, version, tokens, instructions)
		parser = newParser(ctx)
	)
	//
	parser.parseStatements()
	//
	log.Debugf("parsed %s (version %d): %d tokens, %d statements, %d errors", displayName(file), version,
		len(tokens), len(ctx.Root().Children()), len(ctx.Errors()))
	//
	return ctx.Root()
}

// ParseString parses a given string under the given options, without
// validating names.
func ParseString(text string, options lexer.Options) *ast.Root {
	return Parse(source.NewSourceString(text), 0, options, nil)
}

func displayName(file *source.File) string {
	if file.Filename() == "" {
		return "<string>"
	}
	//
	return file.Filename()
}

type parser struct {
	ctx    *ast.Context
	stream *token.Stream
	// Names of macros defined so far, which are valid instructions.
	macros map[string]bool
	// Symbols used as operands within the current statement.
	symbols []*token.Token
	// Most recent statement added to the tree.
	previous *ast.Statement
}

func newParser(ctx *ast.Context) *parser {
	return &parser{ctx: ctx, stream: ctx.Stream(), macros: make(map[string]bool)}
}

// Parse every line of the document in turn.
func (p *parser) parseStatements() {
	root := p.ctx.Root()
	//
	for !p.stream.IsEndOfStream() {
		if stmt := p.parseStatement(); stmt != nil {
			root.AddStatement(stmt)
			p.previous = stmt
		}
		// Statements always consume exactly one line
		if !p.stream.IsEndOfLine() {
			panic(fmt.Sprintf("statement ended before end of line (%s)", p.stream.CurrentToken()))
		} else if p.stream.Matches(token.END_OF_LINE) {
			p.stream.MoveToNextToken()
		}
	}
}

// Text returns the text of a given token.
func (p *parser) text(tok *token.Token) string {
	return p.ctx.Text(tok)
}

// Record the symbols used as operands by the current statement as references,
// unless they have already been classified otherwise.
func (p *parser) classifySymbols() {
	for _, tok := range p.symbols {
		if tok.SubKind() == token.NONE && !strings.HasPrefix(p.text(tok), "%") {
			p.ctx.AddReference(tok)
		}
	}
	//
	p.symbols = p.symbols[:0]
}

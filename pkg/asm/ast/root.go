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
	"errors"
	"sort"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/source"
)

// Root is the top of the tree, whose children are the statements of the
// document.  The root has no parent, and retains the context of the parse
// which produced it.
type Root struct {
	node
	context *Context
}

// SetParent fails for the root, since it cannot be owned.
func (p *Root) SetParent(parent Node) error {
	if parent != nil {
		return errors.New("root cannot have a parent")
	}
	//
	return nil
}

// Context returns the context of the parse which produced this tree.
func (p *Root) Context() *Context {
	return p.context
}

// AddStatement appends a statement to the document.
func (p *Root) AddStatement(stmt *Statement) {
	AppendChild(p, stmt)
}

// Statements returns the statements of the document, in order.
func (p *Root) Statements() []*Statement {
	stmts := make([]*Statement, len(p.children))
	//
	for i, child := range p.children {
		stmts[i] = child.(*Statement)
	}
	//
	return stmts
}

// Labels returns the label tokens of all statements, in order.
func (p *Root) Labels() []*token.Token {
	var labels []*token.Token
	//
	for _, stmt := range p.Statements() {
		if stmt.Label() != nil {
			labels = append(labels, stmt.Label())
		}
	}
	//
	return labels
}

// Definitions returns the symbols defined in the document.
func (p *Root) Definitions() []*token.Token {
	return p.context.Definitions()
}

// Declarations returns the symbols declared in the document.
func (p *Root) Declarations() []*token.Token {
	return p.context.Declarations()
}

// References returns the symbols referenced in the document.
func (p *Root) References() []*token.Token {
	return p.context.References()
}

// Errors returns the diagnostics of the document.
func (p *Root) Errors() []ParseError {
	return p.context.Errors()
}

// Text returns the text covered by a given node.
func (p *Root) Text(n Node) string {
	return p.context.File().Text(n.Span())
}

// SymbolName returns the name of the symbol in a given token, by stripping any
// immediate marker, relocation qualifier or label colon.  For example, the
// name of "#:lower16:value" is "value".
func (p *Root) SymbolName(tok *token.Token) string {
	name := p.context.Text(tok)
	//
	if tok.Kind() == token.LABEL {
		return strings.TrimSuffix(name, ":")
	}
	//
	name = strings.TrimLeft(name, "#$")
	// Relocation qualifier
	if strings.HasPrefix(name, ":") {
		if i := strings.IndexByte(name[1:], ':'); i >= 0 {
			name = name[i+2:]
		}
	}
	//
	return name
}

// NodeFromPosition finds the deepest node containing a given position, or
// nil if the position is not within any statement.
func (p *Root) NodeFromPosition(position int) Node {
	return p.descend(func(n Node) bool {
		return n.Span().Contains(position)
	}, position)
}

// NodeFromRange finds the deepest node which fully encloses a given span, or
// nil if no statement encloses it.
func (p *Root) NodeFromRange(span source.Span) Node {
	return p.descend(func(n Node) bool {
		return n.Span().Encloses(span)
	}, span.Start())
}

// StatementFromPosition finds the statement containing a given position, or
// nil.
func (p *Root) StatementFromPosition(position int) *Statement {
	if child := find(p.children, position); child != nil && child.Span().Contains(position) {
		return child.(*Statement)
	}
	//
	return nil
}

// TokenFromPosition finds the token (including comments) containing a given
// position, or nil.
func (p *Root) TokenFromPosition(position int) *token.Token {
	tokens := p.context.Tokens()
	// Find first token ending after position
	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End() > position
	})
	//
	if i < len(tokens) && tokens[i].Span().Contains(position) {
		return tokens[i]
	}
	//
	return nil
}

// Walk down from the root towards position, whilst the matching child
// satisfies the given predicate.
func (p *Root) descend(predicate func(Node) bool, position int) Node {
	var current Node
	//
	for children := p.children; ; children = current.Children() {
		child := find(children, position)
		//
		if child == nil || !predicate(child) {
			return current
		}
		//
		current = child
	}
}

// Find the last child starting at or before a given position using binary
// search, or nil if there is none.  This relies on children being ordered by
// position.
func find(children []Node, position int) Node {
	i := sort.Search(len(children), func(i int) bool {
		return children[i].Start() > position
	})
	//
	if i == 0 {
		return nil
	}
	//
	return children[i-1]
}

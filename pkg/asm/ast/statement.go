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
)

// StatementKind distinguishes the variants of a statement.
type StatementKind uint8

const (
	// EMPTY_STATEMENT is a label on its own.
	EMPTY_STATEMENT StatementKind = iota
	// UNKNOWN_STATEMENT is a line which could not be recognised.
	UNKNOWN_STATEMENT
	// DIRECTIVE_STATEMENT is a directive (e.g. ".align 2").
	DIRECTIVE_STATEMENT
	// INSTRUCTION_STATEMENT is an instruction or macro invocation.
	INSTRUCTION_STATEMENT
	// MACRO_BEGIN is a ".macro" directive.
	MACRO_BEGIN
	// SYMBOL_DEFINITION is either ".equ name, value" (or similar) or
	// "name = value".
	SYMBOL_DEFINITION
	// SYMBOL_DECLARATION is a data directive declaring a label (e.g. "name:
	// .word 0").
	SYMBOL_DECLARATION
)

var statementKindNames = []string{
	"Empty", "Unknown", "Directive", "Instruction", "MacroBegin", "SymbolDefinition", "SymbolDeclaration",
}

func (k StatementKind) String() string {
	return statementKindNames[k]
}

// Statement represents one logical line of assembly, consisting of an optional
// label, an optional name (i.e. directive or instruction) and its operands.
// The leading children of a statement are the label and name (amongst
// others), and the offset determines where its operands begin.
type Statement struct {
	node
	kind StatementKind
	// Class of the directive (for statements named by a directive).
	class  isa.DirectiveClass
	label  *token.Token
	name   *token.Token
	symbol *token.Token
	offset int
}

// NewStatement constructs a statement with a given set of children.  The label,
// name and symbol tokens are optional.  For symbol definitions and
// declarations, the symbol identifies the symbol being defined or declared;
// for macros, it identifies the macro name.
func NewStatement(kind StatementKind, class isa.DirectiveClass, label, name, symbol *token.Token, offset int,
	children ...Node) *Statement {
	stmt := &Statement{kind: kind, class: class, label: label, name: name, symbol: symbol, offset: offset}
	//
	for _, child := range children {
		AppendChild(stmt, child)
	}
	//
	return stmt
}

// Kind returns the variant of this statement.
func (p *Statement) Kind() StatementKind {
	return p.kind
}

// SubKind returns the class of the directive naming this statement.  This is
// OTHER for statements not named by a directive.
func (p *Statement) SubKind() isa.DirectiveClass {
	return p.class
}

// Label returns the label of this statement, or nil.
func (p *Statement) Label() *token.Token {
	return p.label
}

// Name returns the directive or instruction naming this statement, or nil.
func (p *Statement) Name() *token.Token {
	return p.name
}

// Symbol returns the symbol defined or declared by this statement, or the name
// of the macro it begins.  This is nil for other statements.
func (p *Statement) Symbol() *token.Token {
	return p.symbol
}

// Offset returns the number of leading children which precede the operands.
func (p *Statement) Offset() int {
	return p.offset
}

// Operands returns the children of this statement following its label, name
// (and similar).
func (p *Statement) Operands() []Node {
	return p.children[min(p.offset, len(p.children)):]
}

// OperandList returns the list of operands of this statement, or nil if it has
// none.
func (p *Statement) OperandList() *CommaSeparatedList {
	for _, child := range p.Operands() {
		if list, ok := child.(*CommaSeparatedList); ok {
			return list
		}
	}
	//
	return nil
}

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
package parser

import (
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/token"
)

// statement accumulates the parts of a statement, which is constructed once
// the whole line has been consumed.
type statement struct {
	kind   ast.StatementKind
	class  isa.DirectiveClass
	label  *token.Token
	name   *token.Token
	symbol *token.Token
	offset int
	// Children in position order.
	children []ast.Node
}

func (s *statement) add(child ast.Node) {
	s.children = append(s.children, child)
}

// Mark the start of the operands as being after the current children.
func (s *statement) markOperands() {
	s.offset = len(s.children)
}

// Parse the statement on the current line, leaving the stream at the end of the
// line.  Blank lines produce no statement.
func (p *parser) parseStatement() *ast.Statement {
	var (
		stmt   statement
		errors = len(p.ctx.Errors())
	)
	//
	if p.stream.Matches(token.LABEL) {
		stmt.label = p.stream.MoveToNextToken()
		stmt.add(ast.NewTokenNode(stmt.label))
	}
	//
	switch tok := p.stream.CurrentToken(); {
	case p.stream.IsEndOfLine():
		if stmt.label == nil {
			return nil
		}
		//
		stmt.kind = ast.EMPTY_STATEMENT
		stmt.markOperands()
	case tok.Kind() == token.DIRECTIVE:
		p.parseDirective(&stmt)
	case tok.Kind() == token.SYMBOL && p.isAssignment():
		p.parseAssignment(&stmt)
	case tok.Kind() == token.SYMBOL:
		p.parseInstruction(&stmt)
	default:
		stmt.kind = ast.UNKNOWN_STATEMENT
		stmt.markOperands()
	}
	// Swallow anything left on the line
	if !p.stream.IsEndOfLine() {
		first := p.stream.CurrentToken()
		//
		for !p.stream.IsEndOfLine() {
			stmt.add(ast.NewTokenNode(p.stream.MoveToNextToken()))
		}
		//
		if len(p.ctx.Errors()) == errors {
			p.ctx.ReportError(ast.UNEXPECTED_TOKEN, ast.AT_TOKEN, first)
		}
	}
	//
	p.classifySymbols()
	//
	return ast.NewStatement(stmt.kind, stmt.class, stmt.label, stmt.name, stmt.symbol, stmt.offset, stmt.children...)
}

// Check for "symbol = expression".
func (p *parser) isAssignment() bool {
	next := p.stream.NextToken()
	return next.Kind() == token.OPERATOR && p.text(next) == "="
}

func (p *parser) parseDirective(stmt *statement) {
	name := p.stream.MoveToNextToken()
	//
	stmt.kind = ast.DIRECTIVE_STATEMENT
	stmt.name = name
	stmt.class = p.classifyDirective(name)
	stmt.add(ast.NewTokenNode(name))
	stmt.markOperands()
	//
	switch stmt.class {
	case isa.DEFINITION:
		p.parseDefinition(stmt)
	case isa.MACRO:
		p.parseMacro(stmt)
	case isa.DATA:
		p.parseDeclaration(stmt)
	default:
		p.parseOperands(stmt)
	}
}

// Determine the class of a directive, checking it exists when names are being
// validated.
func (p *parser) classifyDirective(name *token.Token) isa.DirectiveClass {
	instructions := p.ctx.InstructionSet()
	//
	if instructions == nil {
		return isa.ClassifyDirective(p.text(name))
	} else if class, ok := instructions.Directive(p.text(name)); ok {
		return class
	}
	//
	p.ctx.ReportError(ast.UNKNOWN_DIRECTIVE, ast.AT_TOKEN, name)
	//
	return isa.ClassifyDirective(p.text(name))
}

// Parse ".equ name, value" (and similar).
func (p *parser) parseDefinition(stmt *statement) {
	stmt.kind = ast.SYMBOL_DEFINITION
	//
	switch tok := p.stream.CurrentToken(); {
	case tok.Kind() == token.SYMBOL && tok.SubKind() == token.NONE:
		stmt.symbol = tok
		p.ctx.AddDefinition(tok)
		// A value must follow the name
		if p.stream.NextToken().Is(token.END_OF_LINE, token.END_OF_STREAM) {
			p.ctx.ReportError(ast.UNEXPECTED_END_OF_LINE, ast.AFTER_TOKEN, tok)
		}
	case p.stream.IsEndOfLine():
		p.ctx.ReportError(ast.SYMBOL_NAME_EXPECTED, ast.AFTER_TOKEN, stmt.name)
	default:
		p.ctx.ReportError(ast.SYMBOL_NAME_EXPECTED, ast.AT_TOKEN, tok)
	}
	//
	p.parseOperands(stmt)
}

// Parse ".macro name params".  Macro parameters are not parsed, since their
// syntax is free-form (e.g. "a, b=1" or "a b").
func (p *parser) parseMacro(stmt *statement) {
	stmt.kind = ast.MACRO_BEGIN
	//
	switch tok := p.stream.CurrentToken(); {
	case tok.Kind() == token.SYMBOL && tok.SubKind() == token.NONE:
		p.stream.MoveToNextToken()
		stmt.symbol = tok
		stmt.add(ast.NewTokenNode(tok))
		p.ctx.AddDefinition(tok)
		p.macros[strings.ToLower(p.text(tok))] = true
	case p.stream.IsEndOfLine():
		p.ctx.ReportError(ast.MACRO_NAME_EXPECTED, ast.AFTER_TOKEN, stmt.name)
	default:
		p.ctx.ReportError(ast.MACRO_NAME_EXPECTED, ast.AT_TOKEN, tok)
	}
	//
	stmt.markOperands()
	//
	for !p.stream.IsEndOfLine() {
		stmt.add(ast.NewTokenNode(p.stream.MoveToNextToken()))
	}
}

// A data directive declares the label on the same line or, failing that, the
// label of a preceding label-only statement.
func (p *parser) parseDeclaration(stmt *statement) {
	declared := stmt.label
	//
	if declared == nil && p.previous != nil && p.previous.Kind() == ast.EMPTY_STATEMENT {
		declared = p.previous.Label()
	}
	//
	if declared != nil && declared.SubKind() == token.NONE {
		stmt.kind = ast.SYMBOL_DECLARATION
		stmt.symbol = declared
		p.ctx.AddDeclaration(declared)
	}
	//
	p.parseOperands(stmt)
}

// Parse "symbol = expression".
func (p *parser) parseAssignment(stmt *statement) {
	symbol := p.stream.MoveToNextToken()
	equals := p.stream.MoveToNextToken()
	//
	stmt.kind = ast.SYMBOL_DEFINITION
	stmt.symbol = symbol
	stmt.add(ast.NewTokenNode(symbol))
	stmt.add(ast.NewTokenNode(equals))
	stmt.markOperands()
	p.ctx.AddDefinition(symbol)
	//
	if expr, ok := p.parseExpression(); expr != nil {
		stmt.add(expr)
	} else if ok && p.stream.IsEndOfLine() {
		p.ctx.ReportError(ast.EXPRESSION_EXPECTED, ast.AFTER_TOKEN, equals)
	}
}

func (p *parser) parseInstruction(stmt *statement) {
	name := p.stream.MoveToNextToken()
	//
	stmt.kind = ast.INSTRUCTION_STATEMENT
	stmt.name = name
	stmt.add(ast.NewTokenNode(name))
	stmt.markOperands()
	name.SetSubKind(token.INSTRUCTION)
	//
	if !p.isValidInstruction(p.text(name)) {
		p.ctx.ReportError(ast.UNKNOWN_INSTRUCTION, ast.AT_TOKEN, name)
	}
	//
	p.parseOperands(stmt)
}

// Check whether an instruction name is known.  Macro parameters (e.g. "\op")
// cannot be checked.
func (p *parser) isValidInstruction(name string) bool {
	instructions := p.ctx.InstructionSet()
	//
	return instructions == nil || strings.HasPrefix(name, "\\") || instructions.IsInstruction(name) ||
		p.macros[strings.ToLower(name)]
}

// Parse the comma-separated operands of a statement (if any).
func (p *parser) parseOperands(stmt *statement) {
	if list, _ := p.parseList(false); list != nil {
		stmt.add(list)
	}
}

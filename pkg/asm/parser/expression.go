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
	"fmt"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/collection/stack"
)

// Symbols which act as prefix operators in operand position, such as "lsl" in
// "add r0, r1, r2, lsl #2".
var shiftSpecifiers = map[string]bool{
	"lsl": true, "lsr": true, "asr": true, "ror": true, "rrx": true, "msl": true,
	"uxtb": true, "uxth": true, "uxtw": true, "uxtx": true,
	"sxtb": true, "sxth": true, "sxtw": true, "sxtx": true,
}

// pending is an operator waiting on the operator stack.  The token is nil for
// the sentinel, and for operators written by adjacency.
type pending struct {
	opType ast.OperatorType
	token  *token.Token
	unary  bool
}

var sentinel = pending{opType: ast.SENTINEL}

// Parse an expression using the shunting-yard algorithm, stopping at a comma,
// a closing bracket or the end of the line.  This returns nil for an empty
// expression.  The flag is false if parsing was abandoned because of an error,
// in which case the returned expression holds whatever was successfully parsed
// (and the stream is left at the offending token).
func (p *parser) parseExpression() (*ast.Expression, bool) {
	var (
		operands  = stack.NewStack[ast.Node]()
		operators = stack.NewStack(sentinel)
		// Indicates whether the last thing parsed was an operand
		afterOperand = false
		ok           = true
	)
	//
	for ok && !p.isEndOfExpression(0) {
		tok := p.stream.CurrentToken()
		//
		switch {
		case afterOperand && p.isAdjacentBracket(tok):
			// Function call or index
			opType := ast.CALL
			//
			if tok.Kind() == token.OPEN_BRACKET {
				opType = ast.INDEX
			}
			//
			p.pushBinary(operands, operators, pending{opType: opType})
			//
			var operand ast.Node
			operand, ok = p.parseOperand()
			operands.Push(operand)
		case p.isShift(tok, afterOperand):
			p.stream.MoveToNextToken()
			operators.Push(pending{ast.SHIFT, tok, true})
		case isOperand(tok):
			if afterOperand {
				p.ctx.ReportError(ast.OPERATOR_EXPECTED, ast.BEFORE_TOKEN, tok)
				ok = false
			} else {
				var operand ast.Node
				operand, ok = p.parseOperand()
				operands.Push(operand)
				afterOperand = true
			}
		case tok.Kind() == token.OPERATOR && afterOperand:
			afterOperand, ok = p.parseInfixOperator(operands, operators)
		case tok.Kind() == token.OPERATOR:
			ok = p.parsePrefixOperator(operators)
		default:
			p.ctx.ReportError(ast.UNEXPECTED_TOKEN, ast.AT_TOKEN, tok)
			ok = false
		}
	}
	// Check for a dangling operator
	if ok && !afterOperand && operators.Len() > 1 {
		p.ctx.ReportError(ast.OPERAND_EXPECTED, ast.AFTER_TOKEN, p.stream.PreviousToken())
		ok = false
	}
	//
	root := p.reduceAll(operands, operators, !afterOperand)
	//
	if root == nil {
		return nil, ok
	}
	//
	return ast.NewExpression(root), ok
}

// Parse an operator which follows an operand.  This is either a binary
// operator, or one of the postfix operators "!" (writeback) and "^" (user bank
// transfer).  The latter is only postfix at the end of an expression, and
// otherwise means exclusive-or.  This returns whether an operand was just
// completed, along with whether parsing can continue.
func (p *parser) parseInfixOperator(operands *stack.Stack[ast.Node], operators *stack.Stack[pending]) (bool, bool) {
	var (
		tok  = p.stream.CurrentToken()
		text = p.text(tok)
	)
	//
	if text == "!" || (text == "^" && p.isEndOfExpression(1)) {
		opType := ast.WRITEBACK
		//
		if text == "^" {
			opType = ast.USER_BANK
		}
		//
		p.stream.MoveToNextToken()
		tok.SetSubKind(token.NOOP)
		// Postfix operators bind tighter than anything else
		operand := operands.Pop()
		operands.Push(p.build(pending{opType, tok, false}, operand, nil))
		//
		return true, true
	} else if opType, ok := ast.BinaryOperatorType(text); ok {
		p.stream.MoveToNextToken()
		p.pushBinary(operands, operators, pending{opType, tok, false})
		//
		return false, true
	}
	// Prefix-only operator (e.g. "~") following an operand
	p.ctx.ReportError(ast.UNEXPECTED_TOKEN, ast.AT_TOKEN, tok)
	//
	return true, false
}

// Parse an operator in operand position, which must be a prefix operator.
func (p *parser) parsePrefixOperator(operators *stack.Stack[pending]) bool {
	tok := p.stream.CurrentToken()
	//
	if opType, ok := ast.UnaryOperatorType(p.text(tok)); ok {
		p.stream.MoveToNextToken()
		//
		if ast.IsNoop(opType) {
			tok.SetSubKind(token.NOOP)
		}
		//
		operators.Push(pending{opType, tok, true})
		//
		return true
	}
	// Binary-only operator (e.g. "*") where an operand was expected
	p.ctx.ReportError(ast.OPERAND_EXPECTED, ast.BEFORE_TOKEN, tok)
	//
	return false
}

// Push a binary operator, first reducing any operators on the stack which bind
// at least as tightly.
func (p *parser) pushBinary(operands *stack.Stack[ast.Node], operators *stack.Stack[pending], op pending) {
	var (
		precedence    = ast.Precedence(op.opType, false)
		associativity = ast.AssociativityOf(op.opType, false)
	)
	//
	for top := operators.Top(); top.opType != ast.SENTINEL; top = operators.Top() {
		topPrecedence := ast.Precedence(top.opType, top.unary)
		//
		if topPrecedence < precedence || (topPrecedence == precedence && associativity == ast.RIGHT) {
			break
		}
		//
		p.reduce(operands, operators, false)
	}
	//
	operators.Push(op)
}

// Reduce every remaining operator.  When the expression was cut short, the
// operator on top of the stack may be missing its right operand.
func (p *parser) reduceAll(operands *stack.Stack[ast.Node], operators *stack.Stack[pending], missing bool) ast.Node {
	for operators.Top().opType != ast.SENTINEL {
		p.reduce(operands, operators, missing)
		missing = false
	}
	//
	switch operands.Len() {
	case 0:
		return nil
	case 1:
		return operands.Pop()
	default:
		panic(fmt.Sprintf("expression left %d operands", operands.Len()))
	}
}

// Pop the top operator, and combine it with its operand(s).
func (p *parser) reduce(operands *stack.Stack[ast.Node], operators *stack.Stack[pending], missing bool) {
	var (
		op          = operators.Pop()
		left, right ast.Node
	)
	//
	if !missing {
		right = operands.Pop()
	}
	//
	if !op.unary {
		left = operands.Pop()
	}
	//
	operands.Push(p.build(op, left, right))
}

// Construct an operator node, checking its operands are positioned either side
// of it.
func (p *parser) build(op pending, left ast.Node, right ast.Node) ast.Node {
	var start, end int
	//
	switch {
	case op.token != nil:
		start, end = op.token.Start(), op.token.End()
	case right != nil:
		start, end = right.Start(), right.Start()
	case left != nil:
		start, end = left.End(), left.End()
	}
	//
	if left != nil && left.End() > start {
		p.reportMisplaced(op, left)
		left = nil
	}
	//
	if right != nil && right.Start() < end {
		p.reportMisplaced(op, right)
		right = nil
	}
	//
	return ast.NewOperator(op.opType, op.token, op.unary, left, right)
}

func (p *parser) reportMisplaced(op pending, operand ast.Node) {
	tok := op.token
	//
	if tok == nil {
		tok = firstToken(operand)
	}
	//
	p.ctx.ReportError(ast.UNEXPECTED_TOKEN, ast.AT_TOKEN, tok)
}

// Find the first token within a given (non-empty) subtree.
func firstToken(n ast.Node) *token.Token {
	for {
		if leaf, ok := n.(*ast.TokenNode); ok {
			return leaf.Token()
		}
		//
		n = n.Children()[0]
	}
}

// Parse a single operand: a number, string or symbol, a parenthesised group or
// a bracketed list.
func (p *parser) parseOperand() (ast.Node, bool) {
	tok := p.stream.CurrentToken()
	//
	switch tok.Kind() {
	case token.OPEN_BRACE:
		return p.parseGroup()
	case token.OPEN_BRACKET, token.OPEN_CURLY:
		return p.parseList(true)
	case token.SYMBOL:
		if tok.SubKind() == token.NONE {
			p.symbols = append(p.symbols, tok)
		}
	}
	//
	p.stream.MoveToNextToken()
	//
	return ast.NewTokenNode(tok), true
}

// Parse "(expression)".
func (p *parser) parseGroup() (*ast.Group, bool) {
	open := p.stream.MoveToNextToken()
	expr, ok := p.parseExpression()
	//
	if !ok {
		return ast.NewGroup(open, expr, nil), false
	}
	//
	closing, ok := p.parseClosingBrace(open)
	//
	return ast.NewGroup(open, expr, closing), ok
}

// Parse the brace matching a given opening brace.  A mismatched brace is
// consumed, but the expression is abandoned.
func (p *parser) parseClosingBrace(open *token.Token) (*token.Token, bool) {
	tok := p.stream.CurrentToken()
	//
	switch {
	case tok.Kind() == token.MatchingBrace(open.Kind()):
		return p.stream.MoveToNextToken(), true
	case tok.Kind().IsCloseBrace():
		p.ctx.ReportError(ast.BRACE_MISMATCH, ast.AT_TOKEN, tok)
		return p.stream.MoveToNextToken(), false
	default:
		p.ctx.ReportError(ast.CLOSE_BRACE_EXPECTED, ast.AFTER_TOKEN, p.stream.PreviousToken())
		return nil, false
	}
}

// Check whether the token k positions ahead terminates an expression.
func (p *parser) isEndOfExpression(k int) bool {
	tok := p.stream.LookAhead(k)
	//
	return tok.Is(token.COMMA, token.END_OF_LINE, token.END_OF_STREAM) || tok.Kind().IsCloseBrace()
}

// Check whether a token can start an operand.
func isOperand(tok *token.Token) bool {
	return tok.Is(token.NUMBER, token.STRING, token.SYMBOL, token.OPEN_BRACE, token.OPEN_BRACKET, token.OPEN_CURLY)
}

// An opening bracket or parenthesis written directly after an operand (e.g.
// "f(x)" or "v0.s[1]") applies that operand.
func (p *parser) isAdjacentBracket(tok *token.Token) bool {
	return tok.Is(token.OPEN_BRACE, token.OPEN_BRACKET) && p.stream.PreviousToken().End() == tok.Start()
}

// A shift specifier in operand position which is followed by its amount.
// Otherwise, it is just a symbol (e.g. "rrx" or "uxtw" on their own).
func (p *parser) isShift(tok *token.Token, afterOperand bool) bool {
	if afterOperand || tok.Kind() != token.SYMBOL || !shiftSpecifiers[strings.ToLower(p.text(tok))] {
		return false
	}
	//
	next := p.stream.NextToken()
	//
	return isOperand(next) || (next.Kind() == token.OPERATOR && next.SubKind() == token.NOOP)
}

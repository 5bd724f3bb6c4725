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
	"github.com/consensys/go-armasm/pkg/asm/token"
)

// Expression wraps the root of an operator/operand tree.  An empty expression
// has no children, and is therefore never added to the tree.
type Expression struct {
	node
}

// NewExpression constructs an expression over a given subtree, which may be
// nil for an empty expression.
func NewExpression(root Node) *Expression {
	expr := &Expression{}
	//
	if root != nil {
		AppendChild(expr, root)
	}
	//
	return expr
}

// Root returns the top-most operator or operand of this expression, or nil if
// it is empty.
func (p *Expression) Root() Node {
	if len(p.children) == 0 {
		return nil
	}
	//
	return p.children[0]
}

// IsEmpty checks whether this expression has no content.
func (p *Expression) IsEmpty() bool {
	return len(p.children) == 0
}

// Operator applies an operator to one or two operands.  Unary operators only
// have a right operand, whilst postfix operators only have a left operand.
// Operands may be missing from a malformed expression.
type Operator struct {
	node
	opType  OperatorType
	token   *token.Token
	unary   bool
	postfix bool
	left    Node
	right   Node
}

// NewOperator constructs an operator node.  The token is nil for operators
// written by adjacency (i.e. CALL and INDEX), and either operand can be nil.
func NewOperator(opType OperatorType, tok *token.Token, unary bool, left Node, right Node) *Operator {
	op := &Operator{opType: opType, token: tok, unary: unary, postfix: IsPostfixOperator(opType), left: left,
		right: right}
	//
	if left != nil {
		AppendChild(op, left)
	}
	//
	if tok != nil {
		AppendChild(op, NewTokenNode(tok))
	}
	//
	if right != nil {
		AppendChild(op, right)
	}
	//
	return op
}

// Type returns the type of this operator.
func (p *Operator) Type() OperatorType {
	return p.opType
}

// Token returns the token of this operator, or nil for CALL and INDEX.
func (p *Operator) Token() *token.Token {
	return p.token
}

// IsUnary checks whether this is a prefix operator.
func (p *Operator) IsUnary() bool {
	return p.unary
}

// IsPostfix checks whether this is a postfix operator.
func (p *Operator) IsPostfix() bool {
	return p.postfix
}

// Left returns the left operand of this operator, or nil.
func (p *Operator) Left() Node {
	return p.left
}

// Right returns the right operand of this operator, or nil.
func (p *Operator) Right() Node {
	return p.right
}

// Precedence returns the precedence of this operator.
func (p *Operator) Precedence() uint {
	return Precedence(p.opType, p.unary)
}

// Associativity returns the associativity of this operator.
func (p *Operator) Associativity() Associativity {
	return AssociativityOf(p.opType, p.unary)
}

// Group is a parenthesised expression, which acts as a single operand.
type Group struct {
	node
	open    *token.Token
	closing *token.Token
	expr    *Expression
}

// NewGroup constructs a group.  The expression is nil for "()", and the
// closing token is nil when missing.
func NewGroup(open *token.Token, expr *Expression, closing *token.Token) *Group {
	group := &Group{open: open, closing: closing, expr: expr}
	//
	AppendChild(group, NewTokenNode(open))
	//
	if expr != nil && !expr.IsEmpty() {
		AppendChild(group, expr)
	}
	//
	if closing != nil {
		AppendChild(group, NewTokenNode(closing))
	}
	//
	return group
}

// Expression returns the expression within this group, or nil if it is empty.
func (p *Group) Expression() *Expression {
	if p.expr == nil || p.expr.IsEmpty() {
		return nil
	}
	//
	return p.expr
}

// IsClosed checks whether this group has its closing parenthesis.
func (p *Group) IsClosed() bool {
	return p.closing != nil
}

// Precedence returns the precedence of a group, which binds more tightly than
// any operator.
func (p *Group) Precedence() uint {
	return GROUP_PRECEDENCE
}

// Associativity returns the associativity of a group.
func (p *Group) Associativity() Associativity {
	return RIGHT
}

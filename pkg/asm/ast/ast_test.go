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
	"testing"

	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Ownership and spans
// ============================================================================

func Test_Node_DerivedSpan(t *testing.T) {
	var (
		a    = token.New(token.SYMBOL, 0, 1)
		plus = token.New(token.OPERATOR, 2, 1)
		b    = token.New(token.SYMBOL, 4, 1)
		op   = NewOperator(ADD, plus, false, NewTokenNode(a), NewTokenNode(b))
		expr = NewExpression(op)
	)
	//
	assert.Equal(t, source.NewSpan(0, 5), op.Span())
	assert.Equal(t, source.NewSpan(0, 5), expr.Span())
	assert.Equal(t, expr, op.Parent())
	assert.Equal(t, Node(expr), RootOf(op.Left()))
	assert.Len(t, op.Children(), 3)
}

func Test_Node_EmptyExpression(t *testing.T) {
	expr := NewExpression(nil)
	//
	assert.True(t, expr.IsEmpty())
	assert.Nil(t, expr.Root())
	assert.Equal(t, source.NewSpan(0, 0), expr.Span())
}

func Test_Node_Reparent(t *testing.T) {
	leaf := NewTokenNode(token.New(token.SYMBOL, 0, 1))
	NewExpression(leaf)
	//
	assert.Panics(t, func() { NewExpression(leaf) })
}

func Test_Node_SameParent(t *testing.T) {
	leaf := NewTokenNode(token.New(token.SYMBOL, 0, 1))
	expr := NewExpression(leaf)
	//
	assert.NoError(t, leaf.SetParent(expr))
}

func Test_Node_OutOfOrder(t *testing.T) {
	var (
		a    = token.New(token.SYMBOL, 4, 1)
		plus = token.New(token.OPERATOR, 2, 1)
		b    = token.New(token.SYMBOL, 0, 1)
	)
	//
	assert.Panics(t, func() { NewOperator(ADD, plus, false, NewTokenNode(a), NewTokenNode(b)) })
}

func Test_Node_RootParent(t *testing.T) {
	ctx := newContext("", nil)
	//
	assert.Nil(t, ctx.Root().Parent())
	assert.NoError(t, ctx.Root().SetParent(nil))
	assert.Error(t, ctx.Root().SetParent(NewExpression(nil)))
}

// ============================================================================
// Errors
// ============================================================================

func Test_ParseError_Location(t *testing.T) {
	tok := token.New(token.SYMBOL, 2, 3)
	//
	assert.Equal(t, "OperandExpected@2-2", NewParseError(OPERAND_EXPECTED, BEFORE_TOKEN, tok).String())
	assert.Equal(t, "OperandExpected@2-5", NewParseError(OPERAND_EXPECTED, AT_TOKEN, tok).String())
	assert.Equal(t, "OperandExpected@5-5", NewParseError(OPERAND_EXPECTED, AFTER_TOKEN, tok).String())
	assert.Equal(t, 3, NewParseError(OPERAND_EXPECTED, AT_TOKEN, tok).Length())
	assert.Equal(t, "operand expected", NewParseError(OPERAND_EXPECTED, AT_TOKEN, tok).Message())
}

func Test_ParseError_Dedup(t *testing.T) {
	var (
		ctx = newContext("mov", nil)
		tok = ctx.Tokens()[0]
	)
	//
	assert.True(t, ctx.ReportError(UNKNOWN_INSTRUCTION, AT_TOKEN, tok))
	assert.False(t, ctx.ReportError(UNKNOWN_INSTRUCTION, AT_TOKEN, tok))
	// Different type, same span
	assert.True(t, ctx.ReportError(UNEXPECTED_TOKEN, AT_TOKEN, tok))
	// Same type, different span
	assert.True(t, ctx.ReportError(UNKNOWN_INSTRUCTION, AFTER_TOKEN, tok))
	assert.Len(t, ctx.Errors(), 3)
}

func Test_ParseErrorType_Names(t *testing.T) {
	for e := UNEXPECTED_TOKEN; e <= UNEXPECTED_END_OF_LINE; e++ {
		actual, ok := ParseErrorType(e.String())
		//
		assert.True(t, ok)
		assert.Equal(t, e, actual)
	}
	//
	_, ok := ParseErrorType("NoSuchError")
	assert.False(t, ok)
}

func Test_ParseError_SyntaxError(t *testing.T) {
	var (
		ctx = newContext("mov", nil)
		err = NewParseError(UNKNOWN_INSTRUCTION, AT_TOKEN, ctx.Tokens()[0])
	)
	//
	serr := err.SyntaxError(ctx.File())
	assert.Equal(t, "unknown instruction", serr.Message())
	assert.Equal(t, source.NewSpan(0, 3), serr.Span())
}

// ============================================================================
// Root
// ============================================================================

func Test_Root_SymbolName(t *testing.T) {
	var (
		ctx   = newContext("#:lower16:value foo: $bar", nil)
		root  = ctx.Root()
		toks  = ctx.Tokens()
		label = token.New(token.LABEL, 16, 4)
	)
	//
	assert.Equal(t, "value", root.SymbolName(toks[0]))
	assert.Equal(t, "foo", root.SymbolName(label))
	assert.Equal(t, "bar", root.SymbolName(toks[2]))
}

func Test_Root_Queries(t *testing.T) {
	var (
		ctx       = newContext("mov r0, r1", nil)
		toks      = ctx.Tokens()
		mov, r0   = toks[0], toks[1]
		comma, r1 = toks[2], toks[3]
		item0     = NewListItem(NewExpression(NewTokenNode(r0)), comma)
		item1     = NewListItem(NewExpression(NewTokenNode(r1)), nil)
		list      = NewCommaSeparatedList(nil, []*ListItem{item0, item1}, nil)
		stmt      = NewStatement(INSTRUCTION_STATEMENT, isa.OTHER, nil, mov, nil, 1, NewTokenNode(mov), list)
		root      = ctx.Root()
	)
	//
	root.AddStatement(stmt)
	// Deepest node
	leaf, isToken := root.NodeFromPosition(5).(*TokenNode)
	assert.True(t, isToken)
	assert.Equal(t, r0, leaf.Token())
	// Whitespace within statement
	assert.Equal(t, Node(stmt), root.NodeFromPosition(3))
	// Beyond the statement
	assert.Nil(t, root.NodeFromPosition(12))
	// Enclosing range
	assert.Equal(t, Node(item0), root.NodeFromRange(source.NewSpan(4, 7)))
	// Statements
	assert.Equal(t, stmt, root.StatementFromPosition(0))
	assert.Nil(t, root.StatementFromPosition(10))
	// Tokens
	assert.Equal(t, comma, root.TokenFromPosition(6))
	assert.Nil(t, root.TokenFromPosition(7))
	// Accessors
	assert.Equal(t, []*Statement{stmt}, root.Statements())
	assert.Equal(t, list, stmt.OperandList())
	assert.Len(t, stmt.Operands(), 1)
	assert.Len(t, list.Expressions(), 2)
	assert.Equal(t, "r0, r1", root.Text(list))
	assert.Empty(t, root.Labels())
}

func Test_Root_Walk(t *testing.T) {
	var (
		a     = token.New(token.SYMBOL, 0, 1)
		plus  = token.New(token.OPERATOR, 2, 1)
		b     = token.New(token.SYMBOL, 4, 1)
		expr  = NewExpression(NewOperator(ADD, plus, false, NewTokenNode(a), NewTokenNode(b)))
		count = 0
		depth = 0
	)
	//
	Walk(expr, func(n Node, d int) bool {
		count++
		depth = max(depth, d)
		//
		return true
	})
	//
	assert.Equal(t, 5, count)
	assert.Equal(t, 2, depth)
	// Skip children
	count = 0
	//
	Walk(expr, func(n Node, d int) bool {
		count++
		return false
	})
	//
	assert.Equal(t, 1, count)
}

func Test_Context_Symbols(t *testing.T) {
	var (
		ctx  = newContext("x y z", nil)
		toks = ctx.Tokens()
	)
	//
	ctx.AddDefinition(toks[0])
	ctx.AddDeclaration(toks[1])
	ctx.AddReference(toks[2])
	//
	assert.Equal(t, token.DEFINITION, toks[0].SubKind())
	assert.Equal(t, token.DECLARATION, toks[1].SubKind())
	assert.Equal(t, token.REFERENCE, toks[2].SubKind())
	assert.Equal(t, []*token.Token{toks[0]}, ctx.Root().Definitions())
	assert.Equal(t, []*token.Token{toks[1]}, ctx.Root().Declarations())
	assert.Equal(t, []*token.Token{toks[2]}, ctx.Root().References())
}

func Test_Context_FiltersComments(t *testing.T) {
	var (
		file = source.NewSourceString("x @c")
		toks = []*token.Token{token.New(token.SYMBOL, 0, 1), token.New(token.LINE_COMMENT, 2, 2)}
		ctx  = NewContext(file, 0, toks, nil)
	)
	//
	assert.Len(t, ctx.Tokens(), 2)
	assert.Equal(t, 1, ctx.Stream().Len())
}

// Construct a context over a given text, where each whitespace-separated word
// becomes a symbol token (or a comma).
func newContext(text string, instructions *isa.Set) *Context {
	var (
		tokens []*token.Token
		start  = -1
		runes  = []rune(text)
	)
	//
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, token.New(token.SYMBOL, start, end-start))
			start = -1
		}
	}
	//
	for i, c := range runes {
		switch {
		case c == ' ':
			flush(i)
		case c == ',':
			flush(i)
			tokens = append(tokens, token.New(token.COMMA, i, 1))
		case start < 0:
			start = i
		}
	}
	//
	flush(len(runes))
	//
	return NewContext(source.NewSourceString(text), 0, tokens, instructions)
}

// ============================================================================
// Operators
// ============================================================================

func Test_Operator_Lookup(t *testing.T) {
	for _, text := range []string{"+", "-", "~", "!", "=", "#"} {
		op, ok := UnaryOperatorType(text)
		//
		assert.True(t, ok, text)
		assert.True(t, IsUnaryOperator(op), text)
	}
	//
	for _, text := range []string{"+", "*", "<<", "<>", "==", "^", "||"} {
		op, ok := BinaryOperatorType(text)
		//
		assert.True(t, ok, text)
		assert.True(t, IsBinaryOperator(op), text)
	}
	// Prefix only, or infix only
	_, ok := BinaryOperatorType("~")
	assert.False(t, ok)
	_, ok = UnaryOperatorType("*")
	assert.False(t, ok)
	_, ok = UnaryOperatorType("shift")
	assert.False(t, ok)
	// Postfix forms are never found by text
	op, _ := BinaryOperatorType("^")
	assert.Equal(t, BITWISE_XOR, op)
	op, _ = UnaryOperatorType("!")
	assert.Equal(t, LOGICAL_NOT, op)
}

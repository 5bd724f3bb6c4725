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

import "fmt"

// OperatorType identifies an operator within an expression.
type OperatorType uint8

const (
	// SENTINEL bounds the operator stack during parsing, and never appears in
	// the tree.
	SENTINEL OperatorType = iota
	// ADD is binary "+" or unary plus.
	ADD
	// SUBTRACT is binary "-" or unary minus.
	SUBTRACT
	// MULTIPLY is "*"
	MULTIPLY
	// DIVIDE is "/"
	DIVIDE
	// MODULO is "%"
	MODULO
	// SHIFT_LEFT is "<<"
	SHIFT_LEFT
	// SHIFT_RIGHT is ">>"
	SHIFT_RIGHT
	// EQUAL is "=="
	EQUAL
	// NOT_EQUAL is "!=" or "<>"
	NOT_EQUAL
	// LESS is "<"
	LESS
	// LESS_EQUAL is "<="
	LESS_EQUAL
	// GREATER is ">"
	GREATER
	// GREATER_EQUAL is ">="
	GREATER_EQUAL
	// BITWISE_AND is "&"
	BITWISE_AND
	// BITWISE_OR is "|"
	BITWISE_OR
	// BITWISE_XOR is "^"
	BITWISE_XOR
	// LOGICAL_AND is "&&"
	LOGICAL_AND
	// LOGICAL_OR is "||"
	LOGICAL_OR
	// BITWISE_NOT is unary "~"
	BITWISE_NOT
	// LOGICAL_NOT is unary "!"
	LOGICAL_NOT
	// LITERAL is unary "=" (e.g. "ldr r0, =value"), which has no arithmetic
	// meaning.
	LITERAL
	// IMMEDIATE is unary "#" before a parenthesised expression, which has no
	// arithmetic meaning.
	IMMEDIATE
	// SHIFT is a shift or extend specifier (e.g. "lsl #2" or "uxtw").
	SHIFT
	// CALL is an operand immediately followed by a parenthesised group (e.g.
	// "f(x)").
	CALL
	// INDEX is an operand immediately followed by a bracketed list (e.g.
	// "v0.s[1]").
	INDEX
	// WRITEBACK is postfix "!" (e.g. "[r0, #4]!"), which has no arithmetic
	// meaning.
	WRITEBACK
	// USER_BANK is postfix "^" (e.g. "ldm r0, {r1}^"), which has no arithmetic
	// meaning.
	USER_BANK
)

// Associativity determines how operators of equal precedence group.
type Associativity uint8

const (
	// LEFT groups "a op b op c" as "(a op b) op c"
	LEFT Associativity = iota
	// RIGHT groups "a op b op c" as "a op (b op c)"
	RIGHT
)

// GROUP_PRECEDENCE is the precedence of a parenthesised group.
const GROUP_PRECEDENCE = 300

type operatorInfo struct {
	name          string
	precedence    uint
	associativity Associativity
}

// Binary precedence of each operator type.  Unary and postfix forms have their
// own precedence (see Precedence).
var operators = []operatorInfo{
	{"sentinel", 0, LEFT},
	{"+", 100, LEFT},
	{"-", 100, LEFT},
	{"*", 140, LEFT},
	{"/", 140, LEFT},
	{"%", 130, LEFT},
	{"<<", 120, LEFT},
	{">>", 120, LEFT},
	{"==", 90, LEFT},
	{"!=", 90, LEFT},
	{"<", 90, LEFT},
	{"<=", 90, LEFT},
	{">", 90, LEFT},
	{">=", 90, LEFT},
	{"&", 40, LEFT},
	{"|", 40, LEFT},
	{"^", 40, RIGHT},
	{"&&", 35, LEFT},
	{"||", 30, LEFT},
	{"~", 200, RIGHT},
	{"!", 50, RIGHT},
	{"=", 50, RIGHT},
	{"#", 50, RIGHT},
	{"shift", 200, RIGHT},
	{"call", 300, LEFT},
	{"index", 300, LEFT},
	{"!", 300, LEFT},
	{"^", 300, LEFT},
}

func (t OperatorType) String() string {
	if int(t) < len(operators) {
		return operators[t].name
	}
	//
	return fmt.Sprintf("OperatorType(%d)", uint8(t))
}

// Precedence determines how tightly an operator of this type binds, where
// higher values bind more tightly.  Unary plus and minus bind more tightly
// than any binary arithmetic.
func Precedence(t OperatorType, unary bool) uint {
	if unary && (t == ADD || t == SUBTRACT) {
		return 200
	}
	//
	return operators[t].precedence
}

// AssociativityOf determines the associativity of an operator of this type.
// Unary operators are always right associative.
func AssociativityOf(t OperatorType, unary bool) Associativity {
	if unary {
		return RIGHT
	}
	//
	return operators[t].associativity
}

// IsUnaryOperator checks whether operators of this type can be used in prefix
// position.
func IsUnaryOperator(t OperatorType) bool {
	switch t {
	case ADD, SUBTRACT, BITWISE_NOT, LOGICAL_NOT, LITERAL, IMMEDIATE, SHIFT:
		return true
	}
	//
	return false
}

// IsBinaryOperator checks whether operators of this type can be used in infix
// position.
func IsBinaryOperator(t OperatorType) bool {
	return (t >= ADD && t <= LOGICAL_OR) || t == CALL || t == INDEX
}

// IsPostfixOperator checks whether operators of this type are used in postfix
// position.
func IsPostfixOperator(t OperatorType) bool {
	return t == WRITEBACK || t == USER_BANK
}

// IsNoop checks whether operators of this type have no arithmetic meaning.
func IsNoop(t OperatorType) bool {
	switch t {
	case LITERAL, IMMEDIATE, WRITEBACK, USER_BANK:
		return true
	}
	//
	return false
}

// BinaryOperatorType determines the type of the binary operator written with a
// given text (e.g. "<<"), if any.
func BinaryOperatorType(text string) (OperatorType, bool) {
	if text == "<>" {
		return NOT_EQUAL, true
	}
	//
	return lookupOperator(text, IsBinaryOperator)
}

// UnaryOperatorType determines the type of the prefix operator written with a
// given text (e.g. "~"), if any.  Shift specifiers are not covered, since
// these are symbols.
func UnaryOperatorType(text string) (OperatorType, bool) {
	return lookupOperator(text, func(t OperatorType) bool {
		return t != SHIFT && IsUnaryOperator(t)
	})
}

func lookupOperator(text string, accept func(OperatorType) bool) (OperatorType, bool) {
	for i := range operators {
		if t := OperatorType(i); accept(t) && operators[t].name == text {
			return t, true
		}
	}
	//
	return SENTINEL, false
}

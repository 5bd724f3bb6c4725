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
	"fmt"

	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/source"
)

// ErrorType identifies the kind of problem reported by a diagnostic.
type ErrorType uint8

const (
	// UNEXPECTED_TOKEN signals a token which cannot appear where it does.
	UNEXPECTED_TOKEN ErrorType = iota
	// OPERAND_EXPECTED signals an operator missing one of its operands.
	OPERAND_EXPECTED
	// OPERATOR_EXPECTED signals two adjacent operands.
	OPERATOR_EXPECTED
	// EXPRESSION_EXPECTED signals an empty item in an operand list.
	EXPRESSION_EXPECTED
	// CLOSE_BRACE_EXPECTED signals an unclosed bracket, brace or parenthesis.
	CLOSE_BRACE_EXPECTED
	// BRACE_MISMATCH signals a closing bracket of the wrong kind.
	BRACE_MISMATCH
	// SYMBOL_NAME_EXPECTED signals a definition without a symbol name.
	SYMBOL_NAME_EXPECTED
	// MACRO_NAME_EXPECTED signals a macro definition without a name.
	MACRO_NAME_EXPECTED
	// UNKNOWN_INSTRUCTION signals an instruction not in the instruction set.
	UNKNOWN_INSTRUCTION
	// UNKNOWN_DIRECTIVE signals a directive not in the instruction set.
	UNKNOWN_DIRECTIVE
	// UNEXPECTED_END_OF_LINE signals a line which ended prematurely.
	UNEXPECTED_END_OF_LINE
)

var errorNames = []string{
	"UnexpectedToken", "OperandExpected", "OperatorExpected", "ExpressionExpected",
	"CloseBraceExpected", "BraceMismatch", "SymbolNameExpected", "MacroNameExpected",
	"UnknownInstruction", "UnknownDirective", "UnexpectedEndOfLine",
}

var errorMessages = []string{
	"unexpected token", "operand expected", "operator expected", "expression expected",
	"closing brace expected", "mismatched brace", "symbol name expected", "macro name expected",
	"unknown instruction", "unknown directive", "unexpected end of line",
}

func (e ErrorType) String() string {
	if int(e) < len(errorNames) {
		return errorNames[e]
	}
	//
	return fmt.Sprintf("ErrorType(%d)", uint8(e))
}

// Message returns the default human-readable description of this error type.
func (e ErrorType) Message() string {
	if int(e) < len(errorMessages) {
		return errorMessages[e]
	}
	//
	return "syntax error"
}

// ParseErrorType converts the name of an error type (e.g. "OperandExpected")
// back into an error type.
func ParseErrorType(name string) (ErrorType, bool) {
	for i, n := range errorNames {
		if n == name {
			return ErrorType(i), true
		}
	}
	//
	return 0, false
}

// ErrorLocation anchors a diagnostic relative to the token it concerns.
type ErrorLocation uint8

const (
	// BEFORE_TOKEN anchors a diagnostic immediately before a token.
	BEFORE_TOKEN ErrorLocation = iota
	// AT_TOKEN anchors a diagnostic on the token itself.
	AT_TOKEN
	// AFTER_TOKEN anchors a diagnostic immediately after a token (e.g. for
	// something missing at the end of a line).
	AFTER_TOKEN
)

func (l ErrorLocation) String() string {
	switch l {
	case BEFORE_TOKEN:
		return "before"
	case AT_TOKEN:
		return "at"
	default:
		return "after"
	}
}

// ParseError is a recoverable diagnostic produced by the parser.
type ParseError struct {
	errType  ErrorType
	location ErrorLocation
	span     source.Span
}

// NewParseError constructs a diagnostic anchored relative to a given token.
// Diagnostics before or after a token have zero length.
func NewParseError(errType ErrorType, location ErrorLocation, tok *token.Token) ParseError {
	var span source.Span
	//
	switch location {
	case BEFORE_TOKEN:
		span = source.NewSpan(tok.Start(), tok.Start())
	case AT_TOKEN:
		span = tok.Span()
	default:
		span = source.NewSpan(tok.End(), tok.End())
	}
	//
	return ParseError{errType, location, span}
}

// Type returns the kind of this diagnostic.
func (e ParseError) Type() ErrorType {
	return e.errType
}

// Location returns the anchor of this diagnostic.
func (e ParseError) Location() ErrorLocation {
	return e.location
}

// Span returns the text covered by this diagnostic.
func (e ParseError) Span() source.Span {
	return e.span
}

// Start returns the first position of this diagnostic.
func (e ParseError) Start() int {
	return e.span.Start()
}

// Length returns the number of characters covered by this diagnostic.
func (e ParseError) Length() int {
	return e.span.Length()
}

// Message returns the human-readable description of this diagnostic.
func (e ParseError) Message() string {
	return e.errType.Message()
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s@%s", e.errType, e.span)
}

// SyntaxError converts this diagnostic into a syntax error on a given file, for
// reporting.
func (e ParseError) SyntaxError(file *source.File) *source.SyntaxError {
	return file.SyntaxError(e.span, e.Message())
}

// Identifies diagnostics for deduplication.
type errorKey struct {
	start   int
	length  int
	errType ErrorType
}

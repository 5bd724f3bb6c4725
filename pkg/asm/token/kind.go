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
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	// UNKNOWN signals text which could not be classified.
	UNKNOWN Kind = iota
	// LABEL signals "name:" at the start of a line.
	LABEL
	// DIRECTIVE signals ".name" in statement position.
	DIRECTIVE
	// SYMBOL signals an identifier (instruction, register, symbol, etc).
	SYMBOL
	// COMMA signals ","
	COMMA
	// STRING signals a quoted string or character literal.
	STRING
	// NUMBER signals a numeric literal.
	NUMBER
	// OPEN_BRACKET signals "["
	OPEN_BRACKET
	// CLOSE_BRACKET signals "]"
	CLOSE_BRACKET
	// OPEN_CURLY signals "{"
	OPEN_CURLY
	// CLOSE_CURLY signals "}"
	CLOSE_CURLY
	// OPEN_BRACE signals "("
	OPEN_BRACE
	// CLOSE_BRACE signals ")"
	CLOSE_BRACE
	// OPERATOR signals an arithmetic, logical or no-op operator.
	OPERATOR
	// LINE_COMMENT signals a comment running to the end of the line.
	LINE_COMMENT
	// BLOCK_COMMENT signals "/* ... */"
	BLOCK_COMMENT
	// END_OF_LINE signals a line break (CR, LF or CRLF).
	END_OF_LINE
	// END_OF_STREAM signals the end of the token stream.
	END_OF_STREAM
)

var kindNames = []string{
	"Unknown", "Label", "Directive", "Symbol", "Comma", "String", "Number",
	"OpenBracket", "CloseBracket", "OpenCurly", "CloseCurly", "OpenBrace", "CloseBrace",
	"Operator", "LineComment", "BlockComment", "EndOfLine", "EndOfStream",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsComment checks whether this kind is either form of comment.
func (k Kind) IsComment() bool {
	return k == LINE_COMMENT || k == BLOCK_COMMENT
}

// IsOpenBrace checks whether this kind opens any of the three bracket pairs.
func (k Kind) IsOpenBrace() bool {
	return k == OPEN_BRACKET || k == OPEN_CURLY || k == OPEN_BRACE
}

// IsCloseBrace checks whether this kind closes any of the three bracket pairs.
func (k Kind) IsCloseBrace() bool {
	return k == CLOSE_BRACKET || k == CLOSE_CURLY || k == CLOSE_BRACE
}

// MatchingBrace returns the kind which pairs with a given bracket kind (e.g.
// "[" pairs with "]" and vice versa).  Calling this on anything other than a
// bracket is a programming error.
func MatchingBrace(kind Kind) Kind {
	switch kind {
	case OPEN_BRACKET:
		return CLOSE_BRACKET
	case CLOSE_BRACKET:
		return OPEN_BRACKET
	case OPEN_CURLY:
		return CLOSE_CURLY
	case CLOSE_CURLY:
		return OPEN_CURLY
	case OPEN_BRACE:
		return CLOSE_BRACE
	case CLOSE_BRACE:
		return OPEN_BRACE
	}
	//
	panic(fmt.Sprintf("no matching brace for %s", kind))
}

// SubKind refines the classification of a token, and is typically discovered
// during parsing rather than lexing.
type SubKind uint8

const (
	// NONE signals no refinement.
	NONE SubKind = iota
	// INSTRUCTION signals a symbol naming an instruction (or macro invocation).
	INSTRUCTION
	// REGISTER signals a symbol naming a register.
	REGISTER
	// DEFINITION signals a symbol defined by ".equ" or "=", or a macro name.
	DEFINITION
	// DECLARATION signals a label introducing storage (e.g. "name: .word").
	DECLARATION
	// REFERENCE signals a symbol used within an operand.
	REFERENCE
	// NOOP signals an operator with no arithmetic meaning (e.g. "!", "=", "^").
	NOOP
)

var subKindNames = []string{
	"None", "Instruction", "Register", "Definition", "Declaration", "Reference", "Noop",
}

func (k SubKind) String() string {
	if int(k) < len(subKindNames) {
		return subKindNames[k]
	}
	//
	return fmt.Sprintf("SubKind(%d)", uint8(k))
}

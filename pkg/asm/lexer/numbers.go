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
package lexer

import (
	"github.com/consensys/go-armasm/pkg/util/source"
	"github.com/consensys/go-armasm/pkg/util/source/lex"
)

// Rules for describing numbers.  A number is either a hexadecimal, binary,
// octal or decimal integer, or a decimal floating-point number.
var (
	digit         = lex.Within('0', '9')
	decimalDigits = lex.Many(digit)
	octalDigits   = lex.Many(lex.Within('0', '7'))
	binaryDigits  = lex.Many(lex.Within('0', '1'))
	hexDigits     = lex.Many(lex.Or(digit, lex.Within('a', 'f'), lex.Within('A', 'F')))
	sign          = lex.Or(lex.Unit('+'), lex.Unit('-'))
	//
	hexNumber    = lex.Sequence[rune](lex.Or(lex.String("0x"), lex.String("0X")), hexDigits)
	binaryNumber = lex.Sequence[rune](lex.Or(lex.String("0b"), lex.String("0B")), binaryDigits)
	fraction     = lex.Sequence[rune](lex.Unit('.'), decimalDigits)
	exponent     = lex.Sequence[rune](lex.Or(lex.Unit('e'), lex.Unit('E')), lex.Optional(sign), decimalDigits)
)

// ScanNumber determines the length of the numeric literal starting at the
// current position of a character stream, or returns 0 if no literal starts
// there.  The stream itself is not moved.  A literal may have a leading sign,
// provided this is immediately followed by a digit (or by "." and a digit).  A
// malformed exponent (e.g. "1e+") invalidates the entire literal, as does a
// literal running straight into an identifier character (e.g. "1f").
func ScanNumber(cs *source.CharStream) int {
	return int(numberLength(cs.Remaining()))
}

func numberLength(items []rune) uint {
	var n uint
	// Optional sign, only when a literal really follows
	if sign(items) > 0 {
		if digit(items[1:]) == 0 && fraction(items[1:]) == 0 {
			return 0
		}
		//
		n = 1
	}
	//
	m := literalLength(items[n:])
	// Check literal does not run into an identifier
	if m == 0 || (int(n+m) < len(items) && isIdentifierChar(items[n+m])) {
		return 0
	}
	//
	return n + m
}

func literalLength(items []rune) uint {
	if m := hexNumber(items); m > 0 {
		return m
	} else if m := binaryNumber(items); m > 0 {
		return m
	}
	//
	var (
		integer = decimalDigits(items)
		n       = integer
		float   = false
	)
	//
	if m := fraction(items[n:]); m > 0 {
		n, float = n+m, true
	}
	//
	if n == 0 {
		return 0
	} else if int(n) < len(items) && (items[n] == 'e' || items[n] == 'E') {
		m := exponent(items[n:])
		// A dangling exponent invalidates everything
		if m == 0 {
			return 0
		}
		//
		n, float = n+m, true
	}
	// Leading zero signals octal for integers
	if !float && integer > 1 && items[0] == '0' && octalDigits(items) != integer {
		return 0
	}
	//
	return n
}

func isIdentifierChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '$'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

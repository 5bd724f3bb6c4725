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

// Package lexer turns ARM assembly source text into a flat sequence of
// classified tokens.  The lexer never fails: text which cannot be classified
// is emitted as UNKNOWN tokens, such that every non-whitespace character of the
// input belongs to exactly one token.
package lexer

import (
	"fmt"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/source"
	"github.com/consensys/go-armasm/pkg/util/source/lex"
	log "github.com/sirupsen/logrus"
)

// Tokenize splits a given text into tokens according to the given language
// options.  Comments and line breaks are included in the result.
func Tokenize(text []rune, options Options) []*token.Token {
	tokenizer := newTokenizer(text, options)
	tokens := tokenizer.run()
	//
	log.Debugf("tokenized %d characters into %d tokens", len(text), len(tokens))
	//
	return tokens
}

// Punctuation which terminates an unknown run, since it could start a new
// token.
const hardStops = ",[](){}+-*/%&|^!=<>~#\"';"

// Qualifiers permitted between colons after an immediate marker (e.g.
// "#:lower16:sym").
var relocationQualifiers = []string{
	"lower16", "upper16", "lo12", "abs_g0", "abs_g0_nc", "abs_g1", "abs_g1_nc",
	"abs_g2", "abs_g2_nc", "abs_g3", "got", "got_lo12", "pg_hi21", "tprel_lo12",
	"tprel_hi12", "tlsdesc", "tlsdesc_lo12", "dtprel_lo12",
}

// The text between the colons of a relocation qualifier.
var qualifierName = lex.Many(lex.Not(':', ' ', '\t', '\n', '\r'))

type tokenizer struct {
	cs      *source.CharStream
	options Options
	tokens  []*token.Token
	// Set when nothing other than block comments has been emitted since the
	// last line break.
	startOfLine bool
	// Set when the next symbol occupies the name position of a statement
	// (i.e. it is the first token of the line, or the first after a label).
	namePosition bool
	// Instruction name of the current statement (if any)
	mnemonic string
}

func newTokenizer(text []rune, options Options) *tokenizer {
	return &tokenizer{source.NewCharStream(text), options, nil, true, true, ""}
}

func (p *tokenizer) run() []*token.Token {
	for !p.cs.IsEndOfStream() {
		position := p.cs.Position()
		//
		p.next()
		// Every subsequent guarantee relies on this
		if p.cs.Position() <= position {
			panic(fmt.Sprintf("tokenizer stalled at position %d", position))
		}
	}
	//
	return p.tokens
}

// Process (at least) one character of input, emitting at most one token.
func (p *tokenizer) next() {
	cs := p.cs
	//
	if cs.SkipWhitespace(); cs.IsEndOfStream() {
		return
	} else if p.scanComment() || p.scanLineBreak() {
		return
	} else if p.startOfLine && p.scanLabel() {
		return
	} else if p.scanImmediate() || p.scanQualifiedSymbol() || p.scanPunctuation() || p.scanNumber() {
		return
	} else if ch := cs.CurrentChar(); ch == '+' || ch == '-' {
		p.emit(token.OPERATOR, cs.Position(), 1)
		cs.MoveToNextChar()
	} else if p.namePosition && p.scanDirective() {
		return
	} else if !p.scanSymbol() {
		p.scanUnknown()
	}
}

func (p *tokenizer) scanComment() bool {
	var (
		cs    = p.cs
		start = cs.Position()
		ch    = cs.CurrentChar()
	)
	//
	switch {
	case p.options.AllowCBlockComments && ch == '/' && cs.NextChar() == '*':
		cs.Advance(2)
		// Unterminated comments run to the end of the stream
		for !cs.IsEndOfStream() && (cs.CurrentChar() != '*' || cs.NextChar() != '/') {
			cs.MoveToNextChar()
		}
		//
		cs.Advance(2)
		p.emitComment(token.BLOCK_COMMENT, start)
	case p.options.AllowCLineComments && ch == '/' && cs.NextChar() == '/',
		p.options.LineCommentChar != 0 && ch == p.options.LineCommentChar,
		p.options.AllowHashComments && ch == '#' && p.startOfLine:
		cs.MoveToEol()
		p.emitComment(token.LINE_COMMENT, start)
	default:
		return false
	}
	//
	return true
}

func (p *tokenizer) scanLineBreak() bool {
	var (
		cs    = p.cs
		start = cs.Position()
	)
	//
	if cs.IsAtNewLine() {
		cs.SkipLineBreak()
	} else if cs.CurrentChar() == ';' {
		// Statement separator
		cs.MoveToNextChar()
	} else {
		return false
	}
	//
	p.tokens = append(p.tokens, token.New(token.END_OF_LINE, start, cs.Position()-start))
	p.startOfLine = true
	p.mnemonic = ""
	p.namePosition = true
	//
	return true
}

// Labels are either a symbol followed by a colon or, when colons are not
// required, any symbol starting in the first column.
func (p *tokenizer) scanLabel() bool {
	var (
		cs     = p.cs
		start  = cs.Position()
		length = symbolLength(cs.Remaining())
	)
	//
	if length == 0 {
		return false
	} else if cs.CharAt(start+length) == ':' {
		cs.Advance(length + 1)
	} else if !p.options.ColonInLabels && cs.CharAt(start) != '.' && (start == 0 || source.IsNewLine(cs.PrevChar())) {
		cs.Advance(length)
	} else {
		return false
	}
	//
	p.tokens = append(p.tokens, token.New(token.LABEL, start, cs.Position()-start))
	p.startOfLine = false
	//
	return true
}

// An immediate marker ("#" or "$") is folded into the token which follows it.
func (p *tokenizer) scanImmediate() bool {
	var (
		cs    = p.cs
		start = cs.Position()
		ch    = cs.CurrentChar()
		rest  []rune
	)
	//
	if ch != '#' && ch != '$' {
		return false
	}
	//
	rest = cs.Remaining()[1:]
	//
	switch next := cs.NextChar(); {
	case next == '"' || next == '\'':
		cs.MoveToNextChar()
		p.scanString(start)
	case next == ':' && qualifiedSymbolLength(rest) > 0:
		cs.Advance(1 + qualifiedSymbolLength(rest))
		p.emit(token.SYMBOL, start, cs.Position()-start)
	case numberLength(rest) > 0:
		cs.Advance(1 + int(numberLength(rest)))
		p.emit(token.NUMBER, start, cs.Position()-start)
	case symbolLength(rest) > 0:
		cs.Advance(1 + symbolLength(rest))
		p.emit(token.SYMBOL, start, cs.Position()-start)
	case next == '(':
		cs.MoveToNextChar()
		p.emitWithSubKind(token.OPERATOR, token.NOOP, start, 1)
	default:
		// Never drop the marker
		cs.MoveToNextChar()
		p.emit(token.UNKNOWN, start, 1)
	}
	//
	return true
}

// Relocation qualifiers can also appear without an immediate marker (e.g.
// "adrp x0, :got:sym").
func (p *tokenizer) scanQualifiedSymbol() bool {
	var (
		cs     = p.cs
		start  = cs.Position()
		length = qualifiedSymbolLength(cs.Remaining())
	)
	//
	if length == 0 {
		return false
	}
	//
	cs.Advance(length)
	p.emit(token.SYMBOL, start, length)
	//
	return true
}

// Punctuation and operators which cannot be confused with numbers.
func (p *tokenizer) scanPunctuation() bool {
	var (
		cs    = p.cs
		start = cs.Position()
		ch    = cs.CurrentChar()
		next  = cs.NextChar()
	)
	//
	switch ch {
	case '<', '>', '=', '!', '&', '|':
		if isDoubleOperator(ch, next) {
			p.emit(token.OPERATOR, start, 2)
		} else {
			p.emit(token.OPERATOR, start, 1)
		}
	case '%':
		if isLetter(next) && p.previous().Is(token.COMMA, token.DIRECTIVE) {
			// Symbol type (e.g. "%function")
			p.emit(token.SYMBOL, start, 1+symbolLength(cs.Remaining()[1:]))
		} else {
			p.emit(token.OPERATOR, start, 1)
		}
	case '/', '*', '^', '~':
		p.emit(token.OPERATOR, start, 1)
	case ',':
		p.emit(token.COMMA, start, 1)
	case '[':
		p.emit(token.OPEN_BRACKET, start, 1)
	case ']':
		p.emit(token.CLOSE_BRACKET, start, 1)
	case '{':
		p.emit(token.OPEN_CURLY, start, 1)
	case '}':
		p.emit(token.CLOSE_CURLY, start, 1)
	case '(':
		p.emit(token.OPEN_BRACE, start, 1)
	case ')':
		p.emit(token.CLOSE_BRACE, start, 1)
	case '"', '\'':
		p.scanString(start)
		return true
	default:
		return false
	}
	//
	cs.Advance(p.tokens[len(p.tokens)-1].Length())
	//
	return true
}

func isDoubleOperator(first, second rune) bool {
	switch string([]rune{first, second}) {
	case "<<", ">>", "<=", ">=", "<>", "==", "!=", "&&", "||":
		return true
	}
	//
	return false
}

// Scan a quoted string (or character literal) whose token begins at a given
// start position (which may precede the opening quote, e.g. for an immediate
// marker).  Unterminated strings run to the end of the line.
func (p *tokenizer) scanString(start int) {
	var (
		cs    = p.cs
		quote = cs.CurrentChar()
	)
	//
	cs.MoveToNextChar()
	//
	if quote == '\'' {
		// Character literals may omit the closing quote (e.g. 'a)
		if cs.CurrentChar() == '\\' {
			cs.MoveToNextChar()
		}
		//
		if !cs.IsAtNewLine() {
			cs.MoveToNextChar()
		}
		//
		if cs.CurrentChar() == '\'' {
			cs.MoveToNextChar()
		}
	} else {
		for !cs.IsEndOfStream() && !cs.IsAtNewLine() && cs.CurrentChar() != quote {
			if cs.CurrentChar() == '\\' && !source.IsNewLine(cs.NextChar()) {
				cs.MoveToNextChar()
			}
			//
			cs.MoveToNextChar()
		}
		//
		if cs.CurrentChar() == quote {
			cs.MoveToNextChar()
		}
	}
	//
	p.emit(token.STRING, start, cs.Position()-start)
}

// Signed literals are only numbers where an operand is expected, otherwise the
// sign is an operator (e.g. "a-1").
func (p *tokenizer) scanNumber() bool {
	var (
		cs     = p.cs
		start  = cs.Position()
		ch     = cs.CurrentChar()
		length = ScanNumber(cs)
	)
	//
	if length == 0 {
		return false
	} else if (ch == '+' || ch == '-') && !p.previous().Is(token.END_OF_STREAM, token.END_OF_LINE,
		token.OPEN_BRACKET, token.OPEN_CURLY, token.OPEN_BRACE, token.COMMA, token.OPERATOR, token.DIRECTIVE) {
		return false
	}
	//
	cs.Advance(length)
	p.emit(token.NUMBER, start, length)
	//
	return true
}

// Directives must start with "." followed by a letter or digit (e.g. ".4byte"),
// and must be followed by whitespace or the end of the line.
func (p *tokenizer) scanDirective() bool {
	var (
		cs     = p.cs
		start  = cs.Position()
		length = symbolLength(cs.Remaining())
	)
	//
	if next := cs.NextChar(); cs.CurrentChar() != '.' || !(isLetter(next) || isDigit(next)) || length < 2 {
		return false
	}
	//
	if end := cs.CharAt(start + length); end != 0 && !source.IsWhiteSpace(end) && !source.IsNewLine(end) &&
		end != ';' && end != p.options.LineCommentChar {
		return false
	}
	//
	cs.Advance(length)
	p.emit(token.DIRECTIVE, start, length)
	//
	return true
}

func (p *tokenizer) scanSymbol() bool {
	var (
		cs     = p.cs
		start  = cs.Position()
		length = symbolLength(cs.Remaining())
	)
	//
	if length == 0 {
		return false
	}
	//
	cs.Advance(length)
	//
	name := cs.Slice(start, start+length)
	//
	if p.namePosition {
		p.mnemonic = name
		p.emit(token.SYMBOL, start, length)
	} else if IsRegister(name, &p.options) || IsCoprocessorRegister(name, p.mnemonic, &p.options) {
		p.emitWithSubKind(token.SYMBOL, token.REGISTER, start, length)
	} else {
		p.emit(token.SYMBOL, start, length)
	}
	//
	return true
}

// Consume everything up to the next whitespace or hard stop, ensuring at least
// one character is consumed.
func (p *tokenizer) scanUnknown() {
	var (
		cs    = p.cs
		start = cs.Position()
	)
	//
	cs.MoveToNextChar()
	//
	for !cs.IsEndOfStream() && !cs.IsWhiteSpace() && !cs.IsAtNewLine() && !p.isHardStop(cs.CurrentChar()) {
		cs.MoveToNextChar()
	}
	//
	p.emit(token.UNKNOWN, start, cs.Position()-start)
}

func (p *tokenizer) isHardStop(ch rune) bool {
	return strings.ContainsRune(hardStops, ch) || ch == p.options.LineCommentChar
}

// Determine the previous token which is not a comment, or END_OF_STREAM if
// there is none.
func (p *tokenizer) previous() *token.Token {
	for i := len(p.tokens) - 1; i >= 0; i-- {
		if !p.tokens[i].Kind().IsComment() {
			return p.tokens[i]
		}
	}
	//
	return token.New(token.END_OF_STREAM, 0, 0)
}

func (p *tokenizer) emit(kind token.Kind, start int, length int) {
	p.emitWithSubKind(kind, token.NONE, start, length)
}

func (p *tokenizer) emitWithSubKind(kind token.Kind, subKind token.SubKind, start int, length int) {
	p.tokens = append(p.tokens, token.NewWithSubKind(kind, subKind, start, length))
	p.startOfLine = false
	p.namePosition = false
}

// Comments do not affect the start of line status.
func (p *tokenizer) emitComment(kind token.Kind, start int) {
	p.tokens = append(p.tokens, token.New(kind, start, p.cs.Position()-start))
}

// Determine the length of a symbol at the start of some text.  Symbols start
// with a letter, digit, "_", "$", "." or "\" (for macro parameters) and
// continue with letters, digits, "_", "$", "." or "\".
func symbolLength(text []rune) int {
	n := 0
	//
	for n < len(text) && (isIdentifierChar(text[n]) || text[n] == '.' || text[n] == '\\') {
		n++
	}
	//
	return n
}

// Determine the length of a qualified symbol (e.g. ":lower16:sym") at the start
// of some text.
func qualifiedSymbolLength(text []rune) int {
	if len(text) == 0 || text[0] != ':' {
		return 0
	}
	//
	qualifier := int(qualifierName(text[1:]))
	//
	if qualifier == 0 || 1+qualifier >= len(text) || text[1+qualifier] != ':' {
		return 0
	} else if !isRelocationQualifier(string(text[1 : 1+qualifier])) {
		return 0
	} else if length := symbolLength(text[2+qualifier:]); length > 0 {
		return 2 + qualifier + length
	}
	//
	return 0
}

func isRelocationQualifier(name string) bool {
	name = strings.ToLower(name)
	//
	for _, q := range relocationQualifiers {
		if q == name {
			return true
		}
	}
	//
	return false
}

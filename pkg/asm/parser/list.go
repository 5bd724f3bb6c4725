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
	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/token"
)

// Parse a comma-separated list of expressions.  A braced list (e.g. "[r0, #4]"
// or "{r4-r7, lr}") starts at its opening bracket and must be closed, whilst an
// unbraced list (i.e. the operands of a statement) runs to the end of the line.
// An unbraced list without any items is nil.  The flag is false if parsing was
// abandoned because of an error.
func (p *parser) parseList(braced bool) (*ast.CommaSeparatedList, bool) {
	var (
		open  *token.Token
		items []*ast.ListItem
	)
	//
	if braced {
		open = p.stream.MoveToNextToken()
	}
	//
	for {
		expr, ok := p.parseExpression()
		//
		if !ok {
			if expr != nil {
				items = append(items, ast.NewListItem(expr, nil))
			}
			//
			return p.newList(open, items, nil), false
		} else if !p.stream.Matches(token.COMMA) {
			if expr != nil {
				items = append(items, ast.NewListItem(expr, nil))
			} else if len(items) > 0 {
				// Trailing comma
				p.ctx.ReportError(ast.EXPRESSION_EXPECTED, ast.AFTER_TOKEN, p.stream.PreviousToken())
			}
			//
			break
		} else if expr == nil {
			// Empty item
			p.ctx.ReportError(ast.EXPRESSION_EXPECTED, ast.BEFORE_TOKEN, p.stream.CurrentToken())
		}
		//
		items = append(items, ast.NewListItem(expr, p.stream.MoveToNextToken()))
	}
	//
	if !braced {
		return p.newList(nil, items, nil), p.stream.IsEndOfLine()
	}
	//
	closing, ok := p.parseClosingBrace(open)
	//
	return ast.NewCommaSeparatedList(open, items, closing), ok
}

// Construct a list, except for an unbraced list without items.
func (p *parser) newList(open *token.Token, items []*ast.ListItem, closing *token.Token) *ast.CommaSeparatedList {
	if open == nil && len(items) == 0 {
		return nil
	}
	//
	return ast.NewCommaSeparatedList(open, items, closing)
}

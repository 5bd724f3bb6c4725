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

import "github.com/consensys/go-armasm/pkg/asm/token"

// ListItem is one expression of a comma-separated list, along with the comma
// which follows it (if any).
type ListItem struct {
	node
	expr  *Expression
	comma *token.Token
}

// NewListItem constructs a list item.  Either the expression (if empty) or the
// comma (if absent) can be nil, but not both.
func NewListItem(expr *Expression, comma *token.Token) *ListItem {
	item := &ListItem{expr: expr, comma: comma}
	//
	if expr != nil && !expr.IsEmpty() {
		AppendChild(item, expr)
	}
	//
	if comma != nil {
		AppendChild(item, NewTokenNode(comma))
	}
	//
	return item
}

// Expression returns the expression of this item, or nil if it is empty.
func (p *ListItem) Expression() *Expression {
	if p.expr == nil || p.expr.IsEmpty() {
		return nil
	}
	//
	return p.expr
}

// Comma returns the comma following this item, or nil.
func (p *ListItem) Comma() *token.Token {
	return p.comma
}

// CommaSeparatedList is a sequence of expressions separated by commas, which
// is optionally enclosed in brackets or braces (e.g. "[r0, #4]" or "{r4,
// lr}").
type CommaSeparatedList struct {
	node
	open    *token.Token
	closing *token.Token
	items   []*ListItem
}

// NewCommaSeparatedList constructs a list.  The open and close tokens are nil
// for lists without brackets, and the close token is also nil when missing.
func NewCommaSeparatedList(open *token.Token, items []*ListItem, closing *token.Token) *CommaSeparatedList {
	list := &CommaSeparatedList{open: open, closing: closing, items: items}
	//
	if open != nil {
		AppendChild(list, NewTokenNode(open))
	}
	//
	for _, item := range items {
		AppendChild(list, item)
	}
	//
	if closing != nil {
		AppendChild(list, NewTokenNode(closing))
	}
	//
	return list
}

// Items returns the items of this list.
func (p *CommaSeparatedList) Items() []*ListItem {
	return p.items
}

// IsBraced checks whether this list is enclosed in brackets or braces.
func (p *CommaSeparatedList) IsBraced() bool {
	return p.open != nil
}

// Open returns the opening bracket of this list, or nil.
func (p *CommaSeparatedList) Open() *token.Token {
	return p.open
}

// Close returns the closing bracket of this list, or nil.
func (p *CommaSeparatedList) Close() *token.Token {
	return p.closing
}

// Expressions returns the non-empty expressions of this list.
func (p *CommaSeparatedList) Expressions() []*Expression {
	var exprs []*Expression
	//
	for _, item := range p.items {
		if expr := item.Expression(); expr != nil {
			exprs = append(exprs, expr)
		}
	}
	//
	return exprs
}

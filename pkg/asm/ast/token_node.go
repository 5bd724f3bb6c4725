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
	"github.com/consensys/go-armasm/pkg/util/source"
)

// TokenNode is a leaf of the tree, wrapping exactly one token.
type TokenNode struct {
	node
	token *token.Token
}

// NewTokenNode constructs a leaf for a given token.
func NewTokenNode(tok *token.Token) *TokenNode {
	return &TokenNode{token: tok}
}

// Token returns the token held by this leaf.
func (p *TokenNode) Token() *token.Token {
	return p.token
}

// Start returns the start of the underlying token.
func (p *TokenNode) Start() int {
	return p.token.Start()
}

// End returns the end of the underlying token.
func (p *TokenNode) End() int {
	return p.token.End()
}

// Span returns the span of the underlying token.
func (p *TokenNode) Span() source.Span {
	return p.token.Span()
}

func (p *TokenNode) addChild(child Node) {
	panic("token nodes cannot have children")
}

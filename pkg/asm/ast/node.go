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

// Package ast provides the abstract syntax tree produced by parsing ARM
// assembly, along with the context of the parse which produced it.  Nodes do
// not store their own position; instead, the span of a node is derived from
// its first and last children, with tokens forming the leaves of the tree.
package ast

import (
	"fmt"

	"github.com/consensys/go-armasm/pkg/util/source"
)

// Node represents an arbitrary node in the tree.  Every node (other than the
// root) is owned by exactly one parent, which is assigned once when the node is
// added to the tree.
type Node interface {
	// Parent returns the node owning this node, or nil if this is the root.
	Parent() Node
	// SetParent assigns the owner of this node.  Assigning the same parent
	// again has no effect, but assigning a different parent is an error.
	SetParent(parent Node) error
	// Children returns the child nodes of this node, ordered by position.
	Children() []Node
	// Start returns the first position covered by this node.
	Start() int
	// End returns one past the last position covered by this node.
	End() int
	// Span returns the span of text covered by this node.
	Span() source.Span
	//
	addChild(child Node)
}

// AppendChild adds a given child to the end of a parent's children.  Children
// must be added in position order, and may only be owned by one parent.
// Violating either requirement indicates a bug in the parser.
func AppendChild(parent Node, child Node) {
	if err := child.SetParent(parent); err != nil {
		panic(err.Error())
	} else if children := parent.Children(); len(children) > 0 && children[len(children)-1].End() > child.Start() {
		panic(fmt.Sprintf("child at %s added out of order", child.Span()))
	}
	//
	parent.addChild(child)
}

// RootOf finds the root of the tree containing a given node, by walking up
// through its parents.
func RootOf(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	//
	return n
}

// Walk visits every node in the subtree rooted at a given node in depth-first
// order, passing the depth of each node relative to n.  Children of a node are
// skipped when the visitor returns false.
func Walk(n Node, visitor func(Node, int) bool) {
	walk(n, 0, visitor)
}

func walk(n Node, depth int, visitor func(Node, int) bool) {
	if visitor(n, depth) {
		for _, child := range n.Children() {
			walk(child, depth+1, visitor)
		}
	}
}

// node provides the ownership and derived range functionality shared by all
// nodes which have children.
type node struct {
	parent   Node
	children []Node
}

func (p *node) Parent() Node {
	return p.parent
}

func (p *node) SetParent(parent Node) error {
	if p.parent != nil && p.parent != parent {
		return fmt.Errorf("node already owned by a different parent")
	}
	//
	p.parent = parent
	//
	return nil
}

func (p *node) Children() []Node {
	return p.children
}

// Start returns the start of the first child, or 0 for a childless node.
func (p *node) Start() int {
	if len(p.children) == 0 {
		return 0
	}
	//
	return p.children[0].Start()
}

// End returns the end of the last child, or 0 for a childless node.
func (p *node) End() int {
	if len(p.children) == 0 {
		return 0
	}
	//
	return p.children[len(p.children)-1].End()
}

func (p *node) Span() source.Span {
	return source.NewSpan(p.Start(), p.End())
}

func (p *node) addChild(child Node) {
	p.children = append(p.children, child)
}

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
package stack

// Stack is a LIFO stack backed by a slice.  Accessing an empty stack is a
// programming error, and panics.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding zero or more initial items, where the last
// item given is on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{append([]T(nil), items...)}
}

// IsEmpty checks whether there are any items left on the stack.
func (p *Stack[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() int {
	return len(p.items)
}

// Peek returns the item offset positions below the top of the stack, where an
// offset of 0 gives the top item.
func (p *Stack[T]) Peek(offset int) T {
	var n = len(p.items) - offset - 1
	//
	if n < 0 || offset < 0 {
		panic("peek out-of-bounds")
	}
	//
	return p.items[n]
}

// Top returns the item on top of the stack.
func (p *Stack[T]) Top() T {
	return p.Peek(0)
}

// Push a new item onto the stack.
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Pop the top item off the stack.
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	//
	item := p.items[n-1]
	p.items = p.items[:n-1]
	//
	return item
}

// Items returns the items on the stack, from bottom to top.
func (p *Stack[T]) Items() []T {
	return p.items
}

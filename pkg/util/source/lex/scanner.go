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
package lex

import (
	"cmp"
)

// Scanner is a function which accepts zero or more leading items of a given
// sequence, returning how many were accepted.  A return of zero signals that
// the scanner did not match.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items.  That is, for this scanner to
// match, it must match all the given items (one after the other) in their
// given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i := range chars {
			if items[i] != chars[i] {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// String expects a given string s.
// It is equivalent to [Unit](s[0], s[1], ...)
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Within accepts any item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more repetitions of a given scanner.  Since a zero
// return signals failure, Many on its own "fails" when nothing matches.  Use
// [Optional] within a [Sequence] where an empty match is permitted.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			//
			if n == 0 {
				break
			}
			//
			index += n
		}
		// done
		return index
	}
}

// optional marks a scanner whose failure does not abort an enclosing sequence.
type optional[T any] struct {
	scanner Scanner[T]
}

// Element is either a plain scanner, or an optional one.  Elements are used to
// describe sequences.
type Element[T any] interface {
	scan(items []T) (uint, bool)
}

func (s Scanner[T]) scan(items []T) (uint, bool) {
	n := s(items)
	return n, n > 0
}

func (s optional[T]) scan(items []T) (uint, bool) {
	return s.scanner(items), true
}

// Optional constructs a sequence element which is permitted to match nothing.
func Optional[T any](scanner Scanner[T]) Element[T] {
	return optional[T]{scanner}
}

// Sequence matches all the given elements in order, where each element
// consumes the input right after the previous one ends.  The sequence fails if
// any non-optional element fails, or if the overall match is empty.
func Sequence[T any](elements ...Element[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, element := range elements {
			m, ok := element.scan(items[n:])
			if !ok {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Not accepts any single item other than those given.
func Not[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 0
		}
		//
		for _, c := range chars {
			if items[0] == c {
				return 0
			}
		}
		//
		return 1
	}
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_PushPop(t *testing.T) {
	stack := NewStack(1, 2)
	stack.Push(3)
	//
	assert.Equal(t, 3, stack.Len())
	assert.Equal(t, 3, stack.Top())
	assert.Equal(t, 1, stack.Peek(2))
	assert.Equal(t, []int{1, 2, 3}, stack.Items())
	//
	assert.Equal(t, 3, stack.Pop())
	assert.Equal(t, 2, stack.Pop())
	assert.Equal(t, 1, stack.Pop())
	assert.True(t, stack.IsEmpty())
}

func Test_Stack_Empty(t *testing.T) {
	stack := NewStack[string]()
	//
	assert.True(t, stack.IsEmpty())
	assert.Panics(t, func() { stack.Pop() })
	assert.Panics(t, func() { stack.Top() })
	assert.Panics(t, func() { stack.Peek(-1) })
}

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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Span(t *testing.T) {
	span := NewSpan(2, 5)
	//
	assert.Equal(t, 3, span.Length())
	assert.False(t, span.IsEmpty())
	assert.True(t, span.Contains(2))
	assert.False(t, span.Contains(5))
	assert.True(t, span.Encloses(NewSpan(3, 5)))
	assert.False(t, span.Encloses(NewSpan(1, 3)))
	assert.Equal(t, NewSpan(1, 5), span.Union(NewSpan(1, 3)))
	assert.Equal(t, "2-5", span.String())
	assert.True(t, NewSpan(4, 4).IsEmpty())
	assert.Panics(t, func() { NewSpan(5, 2) })
}

func Test_File_Lines(t *testing.T) {
	file := NewSourceString("ab\r\ncd\ne\rf")
	lines := file.Lines()
	//
	require.Len(t, lines, 4)
	//
	for i, expected := range []string{"ab", "cd", "e", "f"} {
		assert.Equal(t, expected, lines[i].String())
		assert.Equal(t, i+1, lines[i].Number())
	}
	//
	assert.Equal(t, 4, lines[1].Start())
	assert.Equal(t, 2, lines[1].Length())
}

func Test_File_TrailingLine(t *testing.T) {
	lines := NewSourceString("x\n").Lines()
	//
	require.Len(t, lines, 2)
	assert.Equal(t, "", lines[1].String())
}

func Test_File_Text(t *testing.T) {
	file := NewSourceString("héllo")
	// Spans are rune offsets
	assert.Equal(t, "él", file.Text(NewSpan(1, 3)))
	assert.Equal(t, "lo", file.Text(NewSpan(3, 10)))
}

func Test_File_SyntaxError(t *testing.T) {
	file := NewSourceFile("test.s", []byte("mov r0\nfoo r1\n"))
	err := file.SyntaxError(NewSpan(7, 10), "unknown instruction")
	line := err.FirstEnclosingLine()
	//
	assert.Equal(t, "test.s", err.SourceFile().Filename())
	assert.Equal(t, "unknown instruction", err.Message())
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "foo r1", line.String())
	assert.Equal(t, "7:10:unknown instruction", err.Error())
}

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
package isa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Isa_Load32(t *testing.T) {
	set, err := Load(ARCH_32)
	require.NoError(t, err)
	assert.Equal(t, "arm32", set.Name())
	assert.Greater(t, set.Len(), 100)
	//
	for _, name := range []string{"add", "ADD", "adds", "addeq", "addseq", "addeqs", "ldr.w", "vadd.f32", "bls", "bxle", "bics", "push"} {
		assert.True(t, set.IsInstruction(name), name)
	}
	//
	for _, name := range []string{"fadd", "xyz", "addx", "eq", "s", ""} {
		assert.False(t, set.IsInstruction(name), name)
	}
}

func Test_Isa_Load64(t *testing.T) {
	set, err := Load(ARCH_64)
	require.NoError(t, err)
	//
	for _, name := range []string{"adrp", "b.eq", "b.ne", "ldp", "fmov", "cbz", "ret"} {
		assert.True(t, set.IsInstruction(name), name)
	}
	//
	assert.False(t, set.IsInstruction("push"))
	//
	class, ok := set.Directive(".xword")
	assert.True(t, ok)
	assert.Equal(t, DATA, class)
}

func Test_Isa_LoadUnknown(t *testing.T) {
	_, err := Load("mips")
	assert.Error(t, err)
}

func Test_Isa_Directives(t *testing.T) {
	set, err := Load(ARCH_32)
	require.NoError(t, err)
	//
	checks := map[string]DirectiveClass{
		".word":    DATA,
		".ASCIZ":   DATA,
		".equ":     DEFINITION,
		"set":      DEFINITION,
		".macro":   MACRO,
		".endm":    ENDMACRO,
		".text":    SECTION,
		".ltorg":   SECTION,
		".ifdef":   CONDITIONAL,
		".include": INCLUDE,
		".thumb":   OTHER,
		".global":  OTHER,
	}
	//
	for name, expected := range checks {
		class, ok := set.Directive(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, class, name)
	}
	//
	_, ok := set.Directive(".nonsense")
	assert.False(t, ok)
}

func Test_Isa_ClassifyDirective(t *testing.T) {
	assert.Equal(t, DEFINITION, ClassifyDirective(".equiv"))
	assert.Equal(t, DATA, ClassifyDirective(".byte"))
	assert.Equal(t, MACRO, ClassifyDirective(".MACRO"))
	assert.Equal(t, OTHER, ClassifyDirective(".thumb"))
	assert.Equal(t, OTHER, ClassifyDirective(".unknown"))
}

func Test_Isa_Read(t *testing.T) {
	table := `
name: custom
instructions: [frob, twiddle]
directives:
  data: [blob]
`
	set, err := Read("test", strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, "custom", set.Name())
	assert.True(t, set.IsInstruction("frobeq"))
	assert.False(t, set.IsInstruction("add"))
	// Common directives are always available
	class, ok := set.Directive(".blob")
	assert.True(t, ok)
	assert.Equal(t, DATA, class)
	//
	class, ok = set.Directive(".equ")
	assert.True(t, ok)
	assert.Equal(t, DEFINITION, class)
}

func Test_Isa_ReadInvalid(t *testing.T) {
	_, err := Read("test", strings.NewReader("directives:\n  bogus: [x]\n"))
	assert.Error(t, err)
	//
	_, err = Read("test", strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)
	//
	_, err = Read("test", strings.NewReader("instructions: {"))
	assert.Error(t, err)
}

func Test_Isa_ReadEmpty(t *testing.T) {
	set, err := Read("empty", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, "empty", set.Name())
}

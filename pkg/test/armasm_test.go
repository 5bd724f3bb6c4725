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
package test

import (
	"testing"

	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/lexer"
	"github.com/consensys/go-armasm/pkg/asm/parser"
	"github.com/consensys/go-armasm/pkg/test/util"
	"github.com/consensys/go-armasm/pkg/util/source"
	"github.com/stretchr/testify/require"
)

// ===================================================================
// Valid Tests
// ===================================================================

func Test_Valid_Hello(t *testing.T) {
	checkValid(t, "armasm/valid/hello")
}

func Test_Valid_Expressions(t *testing.T) {
	checkValid(t, "armasm/valid/expressions")
}

func Test_Valid_Loop(t *testing.T) {
	checkValid(t, "armasm/valid/loop")
}

func Test_Valid_Macro(t *testing.T) {
	checkValid(t, "armasm/valid/macro")
}

func Test_Valid64_Entry(t *testing.T) {
	checkValid64(t, "armasm/valid64/entry")
}

// ===================================================================
// Invalid Tests
// ===================================================================

func Test_Invalid_Operands(t *testing.T) {
	checkInvalid(t, "armasm/invalid/operands")
}

func Test_Invalid_Braces(t *testing.T) {
	checkInvalid(t, "armasm/invalid/braces")
}

func Test_Invalid_Lists(t *testing.T) {
	checkInvalid(t, "armasm/invalid/lists")
}

func Test_Invalid_Names(t *testing.T) {
	checkInvalid(t, "armasm/invalid/names")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkValid(t *testing.T, test string) {
	util.CheckValid(t, test, "s", compiler(t, lexer.DefaultOptions(), isa.ARCH_32))
}

func checkValid64(t *testing.T, test string) {
	util.CheckValid(t, test, "s", compiler(t, lexer.DefaultOptions64(), isa.ARCH_64))
}

func checkInvalid(t *testing.T, test string) {
	util.CheckInvalid(t, test, "s", compiler(t, lexer.DefaultOptions(), isa.ARCH_32))
}

// Construct a compiler which parses a file against the built-in instruction
// set of a given architecture.
func compiler(t *testing.T, options lexer.Options, arch string) util.ErrorCompiler {
	instructions, err := isa.Load(arch)
	require.NoError(t, err)
	//
	return func(file *source.File) []source.SyntaxError {
		var errors []source.SyntaxError
		//
		root := parser.Parse(file, 0, options, instructions)
		//
		for _, err := range root.Errors() {
			errors = append(errors, *err.SyntaxError(file))
		}
		//
		return errors
	}
}

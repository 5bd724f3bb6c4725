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
package lexer

import (
	"fmt"
	"strings"
)

// Register names for the AArch32 and AArch64 execution states, keyed on their
// lowercase form.
var (
	registers32 = map[string]bool{}
	registers64 = map[string]bool{}
)

// Coprocessor and coprocessor register names in AArch32.  These are only
// registers in the operands of coprocessor instructions (e.g. "mcr p15, 0, r0,
// c1, c0, 0"), and are otherwise ordinary symbols.
var coprocessors32 = map[string]bool{}

// Mnemonic prefixes of the AArch32 coprocessor instructions, covering their
// "2", "l" and condition code variants (e.g. "mcr2", "ldcl", "mrceq").
var coprocessorMnemonics = []string{"mcr", "mrc", "mcrr", "mrrc", "cdp", "ldc", "stc"}

// Vector and predicate registers in AArch64 may carry an arrangement (e.g.
// "v0.4s" or "z3.d"), which is ignored for classification.
var arrangedPrefixes = []string{"v", "z", "p"}

func init() {
	// AArch32 core registers and their aliases
	addRegisters(registers32, "r", 0, 15)
	addRegisters(registers32, "a", 1, 4)
	addRegisters(registers32, "v", 1, 8)
	addRegisterNames(registers32, "sp", "lr", "pc", "ip", "fp", "sl", "sb", "tr")
	// VFP / NEON
	addRegisters(registers32, "s", 0, 31)
	addRegisters(registers32, "d", 0, 31)
	addRegisters(registers32, "q", 0, 15)
	// Coprocessors
	addRegisters(coprocessors32, "p", 0, 15)
	addRegisters(coprocessors32, "c", 0, 15)
	addRegisters(coprocessors32, "cr", 0, 15)
	// Status and system registers
	addRegisterNames(registers32, "apsr", "cpsr", "spsr", "fpscr", "fpsid", "fpexc",
		"mvfr0", "mvfr1", "mvfr2", "apsr_nzcv", "apsr_g", "apsr_nzcvq", "apsr_nzcvqg")
	//
	for _, psr := range []string{"cpsr", "spsr"} {
		for _, field := range []string{"c", "x", "s", "f", "fc", "fs", "fx", "sf", "sc", "xc", "fsx", "fsxc", "cxsf"} {
			registers32[psr+"_"+field] = true
		}
	}
	// AArch64 general purpose registers
	addRegisters(registers64, "x", 0, 30)
	addRegisters(registers64, "w", 0, 30)
	addRegisterNames(registers64, "sp", "wsp", "xzr", "wzr", "lr", "fp", "ip0", "ip1")
	// SIMD and floating point
	for _, prefix := range []string{"v", "b", "h", "s", "d", "q", "z"} {
		addRegisters(registers64, prefix, 0, 31)
	}
	// SVE predicates
	addRegisters(registers64, "p", 0, 15)
	// Special registers
	addRegisterNames(registers64, "nzcv", "fpcr", "fpsr", "daif", "currentel", "spsel",
		"elr_el1", "elr_el2", "elr_el3", "sp_el0", "sp_el1", "sp_el2",
		"spsr_el1", "spsr_el2", "spsr_el3", "tpidr_el0", "tpidrro_el0", "ffr")
}

func addRegisters(table map[string]bool, prefix string, first int, last int) {
	for i := first; i <= last; i++ {
		table[fmt.Sprintf("%s%d", prefix, i)] = true
	}
}

func addRegisterNames(table map[string]bool, names ...string) {
	for _, name := range names {
		table[name] = true
	}
}

// IsRegister checks whether a given symbol names a register under the given
// options.  Names are matched case-insensitively.
func IsRegister(name string, options *Options) bool {
	var (
		lower = strings.ToLower(name)
		table = registers32
	)
	//
	if options.Is64BitRegisterSet {
		table = registers64
	}
	//
	if table[lower] || options.IsReservedRegister(name) {
		return true
	} else if !options.Is64BitRegisterSet {
		return false
	}
	// Strip arrangement (e.g. "v0.16b")
	if index := strings.IndexByte(lower, '.'); index > 0 && table[lower[:index]] {
		for _, prefix := range arrangedPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return true
			}
		}
	}
	//
	return false
}

// IsCoprocessorRegister checks whether a given symbol names a coprocessor (or
// coprocessor register) within an operand of a given instruction.  This never
// holds for AArch64.
func IsCoprocessorRegister(name string, mnemonic string, options *Options) bool {
	if options.Is64BitRegisterSet || !coprocessors32[strings.ToLower(name)] {
		return false
	}
	//
	mnemonic = strings.ToLower(mnemonic)
	//
	for _, prefix := range coprocessorMnemonics {
		if strings.HasPrefix(mnemonic, prefix) {
			return true
		}
	}
	//
	return false
}

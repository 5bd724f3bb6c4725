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

// DirectiveClass groups directives by their effect on the surrounding
// statement.
type DirectiveClass uint8

const (
	// OTHER covers any directive not in one of the classes below.
	OTHER DirectiveClass = iota
	// DATA directives emit storage, and can declare a preceding label (e.g.
	// ".word").
	DATA
	// DEFINITION directives assign a value to a symbol (e.g. ".equ").
	DEFINITION
	// MACRO begins a macro definition.
	MACRO
	// ENDMACRO ends a macro definition.
	ENDMACRO
	// SECTION directives switch the current section.
	SECTION
	// CONDITIONAL directives guard assembly (e.g. ".ifdef").
	CONDITIONAL
	// INCLUDE directives read another file.
	INCLUDE
)

var classNames = []string{"other", "data", "definition", "macro", "endmacro", "section", "conditional", "include"}

func (c DirectiveClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	//
	return "other"
}

func parseDirectiveClass(name string) (DirectiveClass, bool) {
	for i, n := range classNames {
		if n == name {
			return DirectiveClass(i), true
		}
	}
	//
	return OTHER, false
}

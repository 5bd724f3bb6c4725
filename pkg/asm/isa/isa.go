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

// Package isa provides the instruction and directive tables used to validate
// statement names.  Tables are described in YAML, and tables for the AArch32
// and AArch64 execution states are built in.
package isa

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tables embed.FS

// ARCH_32 identifies the built-in AArch32 table.
const ARCH_32 = "arm32"

// ARCH_64 identifies the built-in AArch64 table.
const ARCH_64 = "aarch64"

// Condition codes which may be appended to instruction names.
var conditionCodes = []string{
	"eq", "ne", "cs", "hs", "cc", "lo", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al",
}

// Directives understood by GNU as regardless of the target, which are used to
// classify directives when no table has been loaded.
var commonDirectives map[string]DirectiveClass

func init() {
	var (
		data []byte
		err  error
		set  *Set
	)
	//
	if data, err = tables.ReadFile("tables/directives.yaml"); err == nil {
		set, err = decode("directives", bytes.NewReader(data))
	}
	//
	if err != nil {
		panic(fmt.Sprintf("built-in directive table is corrupt: %s", err))
	}
	//
	commonDirectives = set.directives
}

// Set is a loaded table of instruction mnemonics and directives.  A set is
// never modified after it has been read, and can be shared between parses.
type Set struct {
	name         string
	instructions map[string]bool
	directives   map[string]DirectiveClass
}

// tableFile describes the YAML layout of a table, for example:
//
//	name: arm32
//	instructions: [add, sub, ldr, str]
//	directives:
//	  data: [word, byte]
//	  other: [thumb, arm]
type tableFile struct {
	Name         string              `yaml:"name"`
	Instructions []string            `yaml:"instructions"`
	Directives   map[string][]string `yaml:"directives"`
}

// Load returns the built-in table for a given architecture (either ARCH_32 or
// ARCH_64).
func Load(arch string) (*Set, error) {
	data, err := tables.ReadFile(fmt.Sprintf("tables/%s.yaml", arch))
	//
	if err != nil {
		return nil, fmt.Errorf("unknown architecture \"%s\"", arch)
	}
	//
	return Read(arch, bytes.NewReader(data))
}

// ReadFile reads a table from a given YAML file.
func ReadFile(filename string) (*Set, error) {
	file, err := os.Open(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	return Read(filename, file)
}

// Read decodes a table from YAML.  The directives common to all targets are
// always included, hence a table need only list target-specific directives.
func Read(name string, reader io.Reader) (*Set, error) {
	set, err := decode(name, reader)
	//
	if err != nil {
		return nil, err
	}
	//
	for directive, class := range commonDirectives {
		if _, ok := set.directives[directive]; !ok {
			set.directives[directive] = class
		}
	}
	//
	log.Debugf("loaded %d instructions and %d directives from %s", len(set.instructions), len(set.directives), set.name)
	//
	return set, nil
}

func decode(name string, reader io.Reader) (*Set, error) {
	var (
		table   tableFile
		decoder = yaml.NewDecoder(reader)
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&table); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	//
	if table.Name != "" {
		name = table.Name
	}
	//
	set := &Set{name, make(map[string]bool), make(map[string]DirectiveClass)}
	//
	for _, mnemonic := range table.Instructions {
		set.instructions[strings.ToLower(mnemonic)] = true
	}
	//
	for key, directives := range table.Directives {
		class, ok := parseDirectiveClass(key)
		//
		if !ok {
			return nil, fmt.Errorf("reading %s: unknown directive class \"%s\"", name, key)
		}
		//
		for _, directive := range directives {
			set.directives[normaliseDirective(directive)] = class
		}
	}
	//
	return set, nil
}

// Name returns the name of this table (e.g. "arm32").
func (p *Set) Name() string {
	return p.name
}

// Len returns the number of distinct mnemonics in this table.
func (p *Set) Len() int {
	return len(p.instructions)
}

// IsInstruction checks whether a given name denotes an instruction of this
// table.  Names are matched case-insensitively, and may carry a qualifier
// (e.g. ".w" or ".f32"), a condition code and a flag-setting "s" suffix.
func (p *Set) IsInstruction(name string) bool {
	name = strings.ToLower(name)
	// Drop qualifiers
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	//
	if p.instructions[name] {
		return true
	}
	//
	for _, stem := range stems(name) {
		if p.instructions[stem] {
			return true
		}
	}
	//
	return false
}

// Directive looks up the class of a given directive (with or without its
// leading "."), returning false if the directive is unknown.
func (p *Set) Directive(name string) (DirectiveClass, bool) {
	class, ok := p.directives[normaliseDirective(name)]
	return class, ok
}

// ClassifyDirective determines the class of a given directive from the
// directives common to all targets.  Unknown directives are classified as
// OTHER.
func ClassifyDirective(name string) DirectiveClass {
	if class, ok := commonDirectives[normaliseDirective(name)]; ok {
		return class
	}
	//
	return OTHER
}

// Determine the candidate mnemonics obtained by stripping a condition code
// and/or flag-setting suffix.  Both orders are considered, since pre-UAL
// syntax places the condition before the "s" (e.g. "addeqs" vs "addseq").
func stems(name string) []string {
	var result []string
	//
	if stem, ok := trimCondition(name); ok {
		result = append(result, stem)
		//
		if s, ok := trimFlags(stem); ok {
			result = append(result, s)
		}
	}
	//
	if stem, ok := trimFlags(name); ok {
		result = append(result, stem)
		//
		if c, ok := trimCondition(stem); ok {
			result = append(result, c)
		}
	}
	//
	return result
}

func trimCondition(name string) (string, bool) {
	for _, cc := range conditionCodes {
		if len(name) > len(cc) && strings.HasSuffix(name, cc) {
			return name[:len(name)-len(cc)], true
		}
	}
	//
	return name, false
}

func trimFlags(name string) (string, bool) {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return name[:len(name)-1], true
	}
	//
	return name, false
}

func normaliseDirective(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "."))
}

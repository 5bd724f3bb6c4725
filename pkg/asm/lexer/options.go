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

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Options configures the syntax profile accepted by the tokenizer.
type Options struct {
	// LineCommentChar starts a comment running to the end of the line.  A value
	// of 0 disables this form of comment.
	LineCommentChar rune `toml:"-"`
	// AllowCLineComments enables "//" comments.
	AllowCLineComments bool `toml:"c_line_comments"`
	// AllowCBlockComments enables "/* ... */" comments.
	AllowCBlockComments bool `toml:"c_block_comments"`
	// AllowHashComments enables "#" comments when "#" is the first thing on a
	// line (e.g. for preprocessor output).
	AllowHashComments bool `toml:"hash_comments"`
	// ColonInLabels requires labels to be terminated by ":".  Otherwise, any
	// symbol starting in the first column is a label.
	ColonInLabels bool `toml:"colon_in_labels"`
	// Is64BitRegisterSet selects the AArch64 register names, rather than the
	// AArch32 ones.
	Is64BitRegisterSet bool `toml:"aarch64"`
	// ReservedRegisterNames lists additional names to be classified as
	// registers (e.g. aliases introduced with ".req").
	ReservedRegisterNames []string `toml:"reserved_registers"`
}

// DefaultOptions returns the syntax profile of GNU as for AArch32.
func DefaultOptions() Options {
	return Options{
		LineCommentChar:     '@',
		AllowCLineComments:  true,
		AllowCBlockComments: true,
		AllowHashComments:   true,
		ColonInLabels:       true,
		Is64BitRegisterSet:  false,
	}
}

// DefaultOptions64 returns the syntax profile of GNU as for AArch64.
func DefaultOptions64() Options {
	return Options{
		LineCommentChar:     0,
		AllowCLineComments:  true,
		AllowCBlockComments: true,
		AllowHashComments:   true,
		ColonInLabels:       true,
		Is64BitRegisterSet:  true,
	}
}

// IsReservedRegister checks whether a given name was declared as a register
// by these options.
func (p *Options) IsReservedRegister(name string) bool {
	for _, n := range p.ReservedRegisterNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	//
	return false
}

// optionsFile mirrors Options for decoding, since the comment character is
// written as a string in configuration files.
type optionsFile struct {
	Options
	LineComment *string `toml:"line_comment"`
}

// ReadOptionsFile reads a TOML configuration file, applying its settings on
// top of the defaults for the architecture it selects.  For example:
//
//	aarch64 = true
//	line_comment = "//"
//	reserved_registers = ["tmp", "acc"]
//
// A line_comment of "" disables single-character line comments.  Unknown keys
// are reported as an error.
func ReadOptionsFile(filename string) (Options, error) {
	return ReadOptionsFileWith(filename, DefaultOptions())
}

// ReadOptionsFileWith reads a TOML configuration file, applying its settings on
// top of a given profile (e.g. DefaultOptions64).
func ReadOptionsFileWith(filename string, defaults Options) (Options, error) {
	var (
		config optionsFile
		meta   toml.MetaData
		err    error
	)
	//
	config.Options = defaults
	//
	if meta, err = toml.DecodeFile(filename, &config); err != nil {
		return Options{}, fmt.Errorf("reading %s: %w", filename, err)
	} else if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("reading %s: unknown setting \"%s\"", filename, undecoded[0])
	}
	//
	if config.Is64BitRegisterSet && !meta.IsDefined("line_comment") {
		// AArch64 has no single-character line comment by default
		config.LineCommentChar = 0
	}
	//
	if config.LineComment != nil {
		if config.LineCommentChar, err = ParseCommentChar(*config.LineComment); err != nil {
			return Options{}, fmt.Errorf("reading %s: %w", filename, err)
		}
	}
	//
	log.Debugf("read language options from %s (aarch64=%t)", filename, config.Is64BitRegisterSet)
	//
	return config.Options, nil
}

// ParseCommentChar converts the textual form of a line comment marker into a
// comment character.  The empty string disables such comments, whilst "//" is
// accepted (and ignored) since C line comments are configured separately.
func ParseCommentChar(text string) (rune, error) {
	runes := []rune(text)
	//
	switch {
	case len(runes) == 0 || text == "//":
		return 0, nil
	case len(runes) == 1:
		return runes[0], nil
	default:
		return 0, fmt.Errorf("invalid line comment marker \"%s\"", text)
	}
}

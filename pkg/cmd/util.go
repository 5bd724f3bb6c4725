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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/isa"
	"github.com/consensys/go-armasm/pkg/asm/lexer"
	"github.com/consensys/go-armasm/pkg/asm/parser"
	"github.com/consensys/go-armasm/pkg/util/perf"
	"github.com/consensys/go-armasm/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EXIT_USAGE indicates invalid flags or arguments.
const EXIT_USAGE = 2

// EXIT_IO indicates a file could not be read.
const EXIT_IO = 3

// EXIT_DIAGNOSTICS indicates one or more diagnostics were reported.
const EXIT_DIAGNOSTICS = 4

// Config captures everything needed to parse a source file, as determined
// from the command-line flags.
type Config struct {
	// Syntax profile given to the tokenizer.
	Options lexer.Options
	// Instruction set used to validate names (or nil).
	Instructions *isa.Set
}

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// Configure sets the log level and determines the syntax profile and
// instruction set selected by the persistent flags.  Any problem reading the
// configuration is fatal.
func Configure(cmd *cobra.Command) Config {
	var (
		config Config
		err    error
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Language options
	if config.Options, err = readOptions(GetString(cmd, "config"), GetFlag(cmd, "arch64")); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	if text := GetString(cmd, "comment-char"); text != "" {
		if config.Options.LineCommentChar, err = lexer.ParseCommentChar(text); err != nil {
			fmt.Println(err)
			os.Exit(EXIT_USAGE)
		}
	}
	// Instruction set
	config.Instructions = readInstructionSet(cmd, config.Options)
	//
	return config
}

// Determine the syntax profile from an (optional) configuration file.  The
// "--arch64" flag selects the AArch64 profile as the starting point, and takes
// precedence over the file.
func readOptions(filename string, arch64 bool) (lexer.Options, error) {
	var (
		options = lexer.DefaultOptions()
		err     error
	)
	//
	if arch64 {
		options = lexer.DefaultOptions64()
	}
	//
	if filename != "" {
		if options, err = lexer.ReadOptionsFileWith(filename, options); err != nil {
			return options, err
		}
	}
	//
	if arch64 {
		options.Is64BitRegisterSet = true
	}
	//
	return options, nil
}

func readInstructionSet(cmd *cobra.Command, options lexer.Options) *isa.Set {
	var (
		instructions *isa.Set
		err          error
	)
	//
	if GetFlag(cmd, "no-isa") {
		return nil
	} else if filename := GetString(cmd, "isa"); filename != "" {
		instructions, err = isa.ReadFile(filename)
	} else if options.Is64BitRegisterSet {
		instructions, err = isa.Load(isa.ARCH_64)
	} else {
		instructions, err = isa.Load(isa.ARCH_32)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return instructions
}

// ReadSourceFiles reads the given source files, or exits if any cannot be
// read.
func ReadSourceFiles(filenames []string) []source.File {
	for _, filename := range filenames {
		log.Debugf("including source file %s", filename)
	}
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	return files
}

// ParseSourceFiles reads and parses the given source files.
func ParseSourceFiles(config Config, filenames []string) []*ast.Root {
	var (
		files = ReadSourceFiles(filenames)
		roots = make([]*ast.Root, len(files))
	)
	//
	for i := range files {
		stats := perf.NewStats()
		roots[i] = parser.Parse(&files[i], 0, config.Options, config.Instructions)
		//
		stats.Log(fmt.Sprintf("parsing %s", files[i].Filename()))
	}
	//
	return roots
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	fmt.Println(expandTabs(line.String()))
	// Print indent, accounting for tabs
	fmt.Print(strings.Repeat(" ", len(expandTabs(line.String()[:prefixLength(line.String(), lineOffset)]))))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// Determine the byte length of the first n runes of a string.
func prefixLength(text string, n int) int {
	runes := []rune(text)
	//
	return len(string(runes[:min(n, len(runes))]))
}

// Expand tabs into spaces, using a tab width of 8.
func expandTabs(text string) string {
	var builder strings.Builder
	//
	for _, ch := range text {
		if ch == '\t' {
			builder.WriteString(strings.Repeat(" ", 8-builder.Len()%8))
		} else {
			builder.WriteRune(ch)
		}
	}
	//
	return builder.String()
}

// Determine the line number on which a given position lies.
func lineNumber(file *source.File, position int) int {
	line := file.FindFirstEnclosingLine(source.NewSpan(position, position))
	return line.Number()
}

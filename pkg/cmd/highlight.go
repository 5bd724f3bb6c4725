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
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/consensys/go-armasm/pkg/util/termio"
	"github.com/spf13/cobra"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] source_file(s)",
	Short: "print assembly source files with semantic highlighting.",
	Long: `Parse one or more assembly source files, and print them with each token
	coloured according to its classification (e.g. instruction, register, label).
	Colours are only used when writing to a terminal, unless forced.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := Configure(cmd)
		colour := GetFlag(cmd, "color") || termio.IsTerminal(os.Stdout.Fd())
		//
		for _, root := range ParseSourceFiles(config, args) {
			fmt.Print(highlight(root, colour))
		}
	},
}

// Produce the text of a document with ANSI escapes around each token.
func highlight(root *ast.Root, colour bool) string {
	var (
		builder  strings.Builder
		contents = root.Context().File().Contents()
		reset    = termio.ResetAnsiEscape().Build()
		last     = 0
	)
	//
	for _, tok := range root.Context().Tokens() {
		// Whitespace between tokens
		builder.WriteString(string(contents[last:tok.Start()]))
		//
		text := string(contents[tok.Start():tok.End()])
		//
		if escape, ok := tokenEscape(tok); ok && colour {
			builder.WriteString(escape.Build())
			builder.WriteString(text)
			builder.WriteString(reset)
		} else {
			builder.WriteString(text)
		}
		//
		last = tok.End()
	}
	//
	builder.WriteString(string(contents[last:]))
	//
	return builder.String()
}

// Determine the escape used to colour a given token, if any.
func tokenEscape(tok *token.Token) (termio.AnsiEscape, bool) {
	escape := termio.NewAnsiEscape()
	//
	switch tok.SubKind() {
	case token.INSTRUCTION:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_BLUE), true
	case token.REGISTER:
		return escape.FgColour(termio.TERM_CYAN), true
	case token.DEFINITION, token.DECLARATION:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW), true
	case token.REFERENCE:
		return escape.FgColour(termio.TERM_YELLOW), true
	}
	//
	switch tok.Kind() {
	case token.LABEL:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW), true
	case token.DIRECTIVE:
		return escape.FgColour(termio.TERM_MAGENTA), true
	case token.NUMBER:
		return escape.FgColour(termio.TERM_GREEN), true
	case token.STRING:
		return escape.FgColour(termio.TERM_RED), true
	case token.LINE_COMMENT, token.BLOCK_COMMENT:
		return termio.ItalicAnsiEscape().FgColour(termio.TERM_WHITE), true
	case token.UNKNOWN:
		return termio.UnderlineAnsiEscape().FgColour(termio.TERM_RED), true
	}
	//
	return escape, false
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.Flags().Bool("color", false, "force coloured output")
}

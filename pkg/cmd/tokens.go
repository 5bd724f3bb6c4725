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
	"strconv"

	"github.com/consensys/go-armasm/pkg/asm/lexer"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] source_file(s)",
	Short: "print the token stream of assembly source files.",
	Long: `Tokenise one or more assembly source files, and print the resulting tokens.
	Each token is printed with its line number, kind (and subkind) and text.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := Configure(cmd)
		comments := GetFlag(cmd, "comments")
		eol := GetFlag(cmd, "eol")
		//
		for _, file := range ReadSourceFiles(args) {
			fmt.Printf("%s:\n", file.Filename())
			//
			for _, tok := range lexer.Tokenize(file.Contents(), config.Options) {
				if (!comments && tok.Kind().IsComment()) || (!eol && tok.Kind() == token.END_OF_LINE) {
					continue
				}
				//
				text := strconv.Quote(file.Text(tok.Span()))
				fmt.Printf("%4d: %-28s %s\n", lineNumber(&file, tok.Start()), tok.String(), text)
			}
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().Bool("comments", true, "include comment tokens")
	tokensCmd.Flags().Bool("eol", false, "include end-of-line tokens")
}

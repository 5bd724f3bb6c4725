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

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/asm/token"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] source_file(s)",
	Short: "list the symbols of assembly source files.",
	Long: `Parse one or more assembly source files, and list the symbols which they
	define (e.g. with ".equ"), declare (e.g. "name: .word 0") or reference.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := Configure(cmd)
		references := GetFlag(cmd, "references")
		//
		for _, root := range ParseSourceFiles(config, args) {
			fmt.Printf("%s:\n", root.Context().File().Filename())
			printSymbols(root, "definition", root.Definitions())
			printSymbols(root, "declaration", root.Declarations())
			//
			if references {
				printSymbols(root, "reference", root.References())
			}
		}
	},
}

func printSymbols(root *ast.Root, kind string, tokens []*token.Token) {
	file := root.Context().File()
	//
	for _, tok := range tokens {
		fmt.Printf("%4d: %-12s %s\n", lineNumber(file, tok.Start()), kind, root.SymbolName(tok))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(symbolsCmd)
	symbolsCmd.Flags().BoolP("references", "r", false, "include symbol references")
}

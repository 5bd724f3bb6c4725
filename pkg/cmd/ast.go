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
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] source_file(s)",
	Short: "print the syntax tree of assembly source files.",
	Long:  `Parse one or more assembly source files, and print the resulting syntax trees with one node per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := Configure(cmd)
		tokens := GetFlag(cmd, "tokens")
		//
		for _, root := range ParseSourceFiles(config, args) {
			fmt.Printf("%s:\n", root.Context().File().Filename())
			//
			ast.Walk(root, func(n ast.Node, depth int) bool {
				if _, ok := n.(*ast.TokenNode); ok && !tokens {
					return false
				} else if depth > 0 {
					fmt.Printf("%s%s\n", strings.Repeat("  ", depth), describeNode(root, n))
				}
				//
				return true
			})
		}
	},
}

// Describe a node in a form suitable for a tree dump.
func describeNode(root *ast.Root, n ast.Node) string {
	switch n := n.(type) {
	case *ast.Statement:
		return fmt.Sprintf("%s(%s)@%s", n.Kind(), n.SubKind(), n.Span())
	case *ast.Operator:
		return fmt.Sprintf("Operator(%s)@%s", n.Type(), n.Span())
	case *ast.Group:
		return fmt.Sprintf("Group@%s", n.Span())
	case *ast.CommaSeparatedList:
		return fmt.Sprintf("List@%s", n.Span())
	case *ast.ListItem:
		return fmt.Sprintf("Item@%s", n.Span())
	case *ast.Expression:
		return fmt.Sprintf("Expression@%s %s", n.Span(), strconv.Quote(root.Text(n)))
	case *ast.TokenNode:
		return fmt.Sprintf("%s %s", n.Token(), strconv.Quote(root.Text(n)))
	default:
		return fmt.Sprintf("%T@%s", n, n.Span())
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().Bool("tokens", false, "include token leaves")
}

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

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] source_file(s)",
	Short: "check assembly source files for syntax errors.",
	Long: `Parse one or more assembly source files, and report any diagnostics found.
	Instruction and directive names are validated against the instruction set
	of the selected architecture, unless disabled.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := Configure(cmd)
		quiet := GetFlag(cmd, "quiet")
		count := 0
		//
		for _, root := range ParseSourceFiles(config, args) {
			file := root.Context().File()
			//
			for _, err := range root.Errors() {
				if !quiet {
					printSyntaxError(err.SyntaxError(file))
				}
				//
				count++
			}
		}
		//
		if count > 0 {
			fmt.Printf("%d error(s) found\n", count)
			os.Exit(EXIT_DIAGNOSTICS)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("quiet", "q", false, "only report the number of errors")
}

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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-armasm/pkg/asm/lexer"
	"github.com/consensys/go-armasm/pkg/asm/parser"
	"github.com/consensys/go-armasm/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExpandTabs(t *testing.T) {
	assert.Equal(t, "        mov", expandTabs("\tmov"))
	assert.Equal(t, "ab      c", expandTabs("ab\tc"))
	assert.Equal(t, "no tabs", expandTabs("no tabs"))
}

func Test_PrefixLength(t *testing.T) {
	assert.Equal(t, 3, prefixLength("abcdef", 3))
	assert.Equal(t, 3, prefixLength("é1", 2))
	assert.Equal(t, 2, prefixLength("ab", 5))
}

func Test_LineNumber(t *testing.T) {
	file := source.NewSourceString("mov r0\n\nadd r1\n")
	//
	assert.Equal(t, 1, lineNumber(file, 0))
	assert.Equal(t, 2, lineNumber(file, 7))
	assert.Equal(t, 3, lineNumber(file, 8))
}

func Test_Highlight_Plain(t *testing.T) {
	text := "main:\tmov r0, #1 @ comment\n\t.word x\n"
	root := parser.ParseString(text, lexer.DefaultOptions())
	//
	assert.Equal(t, text, highlight(root, false))
}

func Test_Highlight_Colour(t *testing.T) {
	text := "\tmov r0, #1 @ comment\n"
	root := parser.ParseString(text, lexer.DefaultOptions())
	actual := highlight(root, true)
	//
	assert.Contains(t, actual, "\033[1;34mmov\033[0m")
	assert.Contains(t, actual, "\033[36mr0\033[0m")
	assert.Contains(t, actual, "\033[32m#1\033[0m")
	assert.Contains(t, actual, "\033[3;37m@ comment\033[0m")
	// Stripping escapes recovers the original
	stripped := actual
	//
	for _, escape := range []string{"\033[1;34m", "\033[36m", "\033[32m", "\033[3;37m", "\033[0m"} {
		stripped = strings.ReplaceAll(stripped, escape, "")
	}
	//
	assert.Equal(t, text, stripped)
}

func Test_ReadOptions(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "armasm.toml")
	require.NoError(t, os.WriteFile(filename, []byte("colon_in_labels = false\n"), 0o600))
	//
	options, err := readOptions(filename, false)
	require.NoError(t, err)
	assert.Equal(t, '@', options.LineCommentChar)
	assert.False(t, options.Is64BitRegisterSet)
	// AArch64 comments apply even with a configuration file
	options, err = readOptions(filename, true)
	require.NoError(t, err)
	assert.Equal(t, rune(0), options.LineCommentChar)
	assert.True(t, options.Is64BitRegisterSet)
	assert.False(t, options.ColonInLabels)
	//
	options, err = readOptions("", true)
	require.NoError(t, err)
	assert.Equal(t, lexer.DefaultOptions64(), options)
}

// Source files are only announced when debugging.
func Test_ReadSourceFiles_Logging(t *testing.T) {
	var (
		filename = filepath.Join(t.TempDir(), "main.s")
		hook     = test.NewGlobal()
		level    = log.GetLevel()
	)
	//
	defer log.SetLevel(level)
	require.NoError(t, os.WriteFile(filename, []byte("\tmov r0, r1\n"), 0o600))
	//
	log.SetLevel(log.InfoLevel)
	assert.Len(t, ReadSourceFiles([]string{filename}), 1)
	assert.Empty(t, hook.AllEntries())
	//
	log.SetLevel(log.DebugLevel)
	ReadSourceFiles([]string{filename})
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, log.DebugLevel, hook.LastEntry().Level)
}

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
package util

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/consensys/go-armasm/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the assembly source files making up the test corpus are found.
const TestDir = "../../testdata"

// ErrorCompiler parses a source file and produces zero or more errors.
type ErrorCompiler func(*source.File) []source.SyntaxError

// CheckValid checks that a given source file parses without any errors.
func CheckValid(t *testing.T, test, ext string, compiler ErrorCompiler) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, ext)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	if actual := compiler(srcfile); len(actual) > 0 {
		msg := fmt.Sprintf("Error %s should have parsed\n", filename)
		//
		for _, err := range actual {
			msg = fmt.Sprintf("%s unexpected error %s", msg, errorToString(err))
		}
		//
		t.Fatal(msg)
	}
}

// CheckInvalid checks that a given source file produces exactly the errors
// listed in its leading attributes.
func CheckInvalid(t *testing.T, test, ext string, compiler ErrorCompiler) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, ext)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Parse source file to produce errors
	actual := compiler(srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	//
	checkExpectedErrors(t, srcfile, actual, expected)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have parsed\n", srcfile.Filename())
	}
	//
	sortErrors(actual)
	sortErrors(expected)
	//
	var (
		failed = false
		msg    = fmt.Sprintf("Error %s\n", srcfile.Filename())
	)
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) {
			if expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
				continue
			}
		}
		//
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s", msg, errorToString(actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

// Sort errors by position, then message.
func sortErrors(errs []source.SyntaxError) {
	sort.SliceStable(errs, func(i, j int) bool {
		lhs, rhs := errs[i].Span(), errs[j].Span()
		//
		switch {
		case lhs.Start() != rhs.Start():
			return lhs.Start() < rhs.Start()
		case lhs.End() != rhs.End():
			return lhs.End() < rhs.End()
		default:
			return errs[i].Message() < errs[j].Message()
		}
	})
}

func readSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	//
	return source.NewSourceFile(filename, bytes)
}

// Convert an error into a human readable string, giving its line and columns.
func errorToString(err source.SyntaxError) string {
	var (
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = span.Start() - line.Start()
		length     = min(line.Length()-lineOffset, span.Length())
	)
	//
	return fmt.Sprintf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}

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
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-armasm/pkg/asm/ast"
	"github.com/consensys/go-armasm/pkg/util/source"
)

// Prefixes of an expected error attribute, depending upon which comment syntax
// the file uses.
var errorPrefixes = []string{"@error:", "//error:"}

// Extract the syntax error from a given line in the source file, or return
// false if it does not describe an error.  For example,
// "@error:3:11-11:OperandExpected" expects an OperandExpected diagnostic just
// before the eleventh column of line 3.
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
	)
	//
	for _, prefix := range errorPrefixes {
		if strings.HasPrefix(contents, prefix) {
			line, start, end, errType, err := parseExpectedErrorLine(strings.TrimPrefix(contents, prefix))
			//
			if err != nil {
				return true, source.SyntaxError{}, fmt.Errorf("%s (%s)", err.Error(), contents)
			}
			//
			span, err := determineFileSpan(line, start, end, lines)
			//
			return true, *srcfile.SyntaxError(span, errType.Message()), err
		}
	}
	// No error
	return false, source.SyntaxError{}, nil
}

func parseExpectedErrorLine(contents string) (line, start, end int, errType ast.ErrorType, err error) {
	var (
		splits = strings.Split(contents, ":")
		ok     bool
	)
	//
	if len(splits) != 3 {
		return 0, 0, 0, 0, fmt.Errorf("malformed expected error, should be e.g. \"@error:X:Y-Z:ErrorType\"")
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid line \"%s\" (%s)", splits[0], err.Error())
	} else if line == 0 {
		return 0, 0, 0, 0, fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[0])
	}
	// Parse span
	if start, end, err = parseExpectedErrorSpan(splits[1]); err != nil {
		return 0, 0, 0, 0, err
	}
	// Parse error type
	if errType, ok = ast.ParseErrorType(strings.TrimSpace(splits[2])); !ok {
		return 0, 0, 0, 0, fmt.Errorf("unknown error type \"%s\"", splits[2])
	}
	//
	return line, start, end, errType, nil
}

func parseExpectedErrorSpan(span string) (start, end int, err error) {
	var splits = strings.Split(span, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span)
	}
	// Parse span start
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span)
	}
	// Parse span end
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (negative length)", span)
	}
	//
	return start, end, nil
}

// Determine the span of the file to which a given line and column range
// corresponds.  Column numbers start from 1, whereas spans start from 0.
// Empty spans are permitted just beyond the last character of a line, since
// these arise for diagnostics anchored after the last token.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	//
	start--
	end--
	//
	if start > line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end), nil
}

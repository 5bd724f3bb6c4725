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
package perf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Stats_Elapsed(t *testing.T) {
	stats := NewStats()
	time.Sleep(time.Millisecond)
	//
	assert.GreaterOrEqual(t, stats.Elapsed(), time.Millisecond)
}

// Ensures allocations escape to the heap.
var sink [][]byte

func Test_Stats_Allocated(t *testing.T) {
	stats := NewStats()
	buffer := make([][]byte, 16)
	//
	for i := range buffer {
		buffer[i] = make([]byte, 4096)
	}
	//
	sink = buffer
	//
	assert.Len(t, sink, 16)
	assert.Positive(t, stats.Allocated())
	assert.NotPanics(t, func() { stats.Log("allocating") })
}

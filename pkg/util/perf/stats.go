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

// Package perf provides a lightweight means of measuring the time and memory
// taken by a stage of processing.
package perf

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// Stats provides a snapshot of elapsed time and memory allocation at a given
// point in time.
type Stats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewStats takes a snapshot of the current time and memory allocation.
func NewStats() *Stats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &Stats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time passed since this snapshot was taken.
func (p *Stats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Allocated returns the number of bytes allocated since this snapshot was
// taken.
func (p *Stats) Allocated() uint64 {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return m.TotalAlloc - p.startMem
}

// Log reports the difference between the state now and as it was when the
// snapshot was taken.
func (p *Stats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	//
	log.Debugf("%s took %0.3fms using %vKb (%v GC events)", prefix, float64(p.Elapsed().Microseconds())/1000, alloc, gcs)
}

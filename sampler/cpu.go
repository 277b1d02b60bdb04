//
// Copyright 2016 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package sampler

import (
	"time"

	mapset "github.com/deckarep/golang-set"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

// processKey identifies one process across passes. A recycled pid comes with a new create time.
type processKey struct {
	pid        int32
	createTime int64
}

type cpuReference struct {
	cpuSeconds float64
	at         time.Time
}

// cpuTracker owns the reference points CPU rates are measured against. It is only ever touched
// by the sampling goroutine.
type cpuTracker struct {
	normalization types.CPUNormalization

	processes  map[processKey]cpuReference
	lastSystem *hostinfo.CPUTimes
}

func newCPUTracker(normalization types.CPUNormalization) *cpuTracker {
	return &cpuTracker{
		normalization: normalization,
		processes:     make(map[processKey]cpuReference),
	}
}

// processPercent records cpuSeconds as the new reference for key and returns the rate since the
// previous one. The first sighting is not ready and reads 0.
func (t *cpuTracker) processPercent(key processKey, cpuSeconds float64, now time.Time, cores int) (float64, bool) {
	prior, seen := t.processes[key]
	t.processes[key] = cpuReference{cpuSeconds: cpuSeconds, at: now}
	if !seen {
		return 0, false
	}

	wall := now.Sub(prior.at).Seconds()
	if wall <= 0 {
		// keep the older reference so the next pass measures a real interval
		t.processes[key] = prior
		return 0, false
	}

	coreRelative := (cpuSeconds - prior.cpuSeconds) / wall * 100
	if t.normalization == types.NormalizeSystem && cores > 0 {
		coreRelative /= float64(cores)
	}
	return clampPercent(coreRelative, t.normalization.Ceiling(cores)), true
}

// systemPercent works off the host-wide busy and total counters, independent of any per-process figure.
func (t *cpuTracker) systemPercent(times hostinfo.CPUTimes, cores int) (float64, bool) {
	prior := t.lastSystem
	t.lastSystem = &times
	if prior == nil {
		return 0, false
	}

	total := times.Total - prior.Total
	if total <= 0 {
		return 0, false
	}

	percent := (times.Busy - prior.Busy) / total * 100
	if t.normalization == types.NormalizePerCore && cores > 0 {
		percent *= float64(cores)
	}
	return clampPercent(percent, t.normalization.Ceiling(cores)), true
}

// prune forgets the references of every process not in seen and returns how many were dropped.
func (t *cpuTracker) prune(seen mapset.Set) int {
	known := mapset.NewThreadUnsafeSet()
	for key := range t.processes {
		known.Add(key)
	}

	stale := known.Difference(seen)
	for key := range stale.Iter() {
		delete(t.processes, key.(processKey))
	}
	return stale.Cardinality()
}

func (t *cpuTracker) tracked() int {
	return len(t.processes)
}

func clampPercent(value, ceiling float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > ceiling:
		return ceiling
	default:
		return value
	}
}

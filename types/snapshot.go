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

// Package types declares the data model shared by the sampler, the rolling store and the query layer.
package types

import (
	"time"
)

// ProcessRecord is one process observed during one sampling pass. Records are built fresh
// on every pass and are never modified after the snapshot holding them is published.
type ProcessRecord struct {
	Pid  int32
	Name string

	// CPUPercent is the rate since the previous reference sample of the same process, scaled according
	// to the CPUNormalization in effect. CPUReady is false on the first sighting of a process, in which
	// case CPUPercent is always 0.
	CPUPercent float64
	CPUReady   bool

	MemoryBytes   uint64
	MemoryPercent float64
	Status        ProcessStatus
	ThreadCount   int32

	// CreateTime is in milliseconds since the epoch. Together with Pid it identifies a process
	// across passes, since PIDs get recycled.
	CreateTime int64
}

// Snapshot is the atomic unit the sampler produces and the store holds.
type Snapshot struct {
	Timestamp time.Time
	// Generation is assigned by the store on publish and increases by one for every publish.
	Generation uint64

	Processes []ProcessRecord

	AggregateCPUPercent    float64
	AggregateCPUReady      bool
	AggregateMemoryPercent float64
	Uptime                 time.Duration

	CPUNormalization CPUNormalization
}

// Point derives the time series point that accompanies this snapshot.
func (s *Snapshot) Point() SeriesPoint {
	return SeriesPoint{
		Timestamp:     s.Timestamp,
		Generation:    s.Generation,
		CPUPercent:    s.AggregateCPUPercent,
		CPUReady:      s.AggregateCPUReady,
		MemoryPercent: s.AggregateMemoryPercent,
	}
}

// FindProcess is a best-effort lookup by pid.
func (s *Snapshot) FindProcess(pid int32) (ProcessRecord, bool) {
	for _, p := range s.Processes {
		if p.Pid == pid {
			return p, true
		}
	}
	return ProcessRecord{}, false
}

// SeriesPoint is one entry of the rolling aggregate history.
type SeriesPoint struct {
	Timestamp     time.Time
	Generation    uint64
	CPUPercent    float64
	CPUReady      bool
	MemoryPercent float64
}

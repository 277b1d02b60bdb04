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

// Package protocol declares the JSON documents exchanged between the query endpoint and its clients.
// Timestamps are milliseconds since the epoch.
package protocol

import (
	"time"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
)

type Error struct {
	Code    uint64 `json:"code"`
	Message string `json:"message"`
}

type ProcessMetrics struct {
	Pid           int32   `json:"pid"`
	ExeName       string  `json:"exe_name"`
	CPUPercent    float64 `json:"cpu_percent"`
	CPUReady      bool    `json:"cpu_ready"`
	MemoryRes     uint64  `json:"memory_resident"`
	MemoryPercent float64 `json:"memory_percent"`
	StateName     string  `json:"state_name"`
	Threads       int32   `json:"threads"`
	StartTime     int64   `json:"time_start_time"`
}

type SnapshotResult struct {
	Timestamp        int64            `json:"timestamp"`
	Generation       uint64           `json:"generation"`
	CPUPercent       float64          `json:"cpu_percent"`
	CPUReady         bool             `json:"cpu_ready"`
	MemoryPercent    float64          `json:"memory_percent"`
	UptimeSeconds    float64          `json:"uptime_seconds"`
	CPUNormalization string           `json:"cpu_normalization"`
	Metrics          []ProcessMetrics `json:"metrics"`
}

type SeriesPoint struct {
	Timestamp     int64   `json:"timestamp"`
	Generation    uint64  `json:"generation"`
	CPUPercent    float64 `json:"cpu_percent"`
	CPUReady      bool    `json:"cpu_ready"`
	MemoryPercent float64 `json:"memory_percent"`
}

type SeriesResult struct {
	Points []SeriesPoint `json:"points"`
}

type DashboardResult struct {
	Snapshot *SnapshotResult `json:"snapshot"`
	Series   *SeriesResult   `json:"series"`
}

type TopResult struct {
	SortBy  string           `json:"sort"`
	Metrics []ProcessMetrics `json:"metrics"`
}

type KillResult struct {
	Pid     int32  `json:"pid"`
	Outcome string `json:"outcome"`
}

func NewProcessMetrics(r types.ProcessRecord) ProcessMetrics {
	return ProcessMetrics{
		Pid:           r.Pid,
		ExeName:       r.Name,
		CPUPercent:    r.CPUPercent,
		CPUReady:      r.CPUReady,
		MemoryRes:     r.MemoryBytes,
		MemoryPercent: r.MemoryPercent,
		StateName:     string(r.Status),
		Threads:       r.ThreadCount,
		StartTime:     r.CreateTime,
	}
}

func (m ProcessMetrics) Record() types.ProcessRecord {
	return types.ProcessRecord{
		Pid:           m.Pid,
		Name:          m.ExeName,
		CPUPercent:    m.CPUPercent,
		CPUReady:      m.CPUReady,
		MemoryBytes:   m.MemoryRes,
		MemoryPercent: m.MemoryPercent,
		Status:        types.ParseProcessStatus(m.StateName),
		ThreadCount:   m.Threads,
		CreateTime:    m.StartTime,
	}
}

func newProcessMetricsList(records []types.ProcessRecord) []ProcessMetrics {
	metrics := make([]ProcessMetrics, 0, len(records))
	for _, r := range records {
		metrics = append(metrics, NewProcessMetrics(r))
	}
	return metrics
}

func recordsOf(metrics []ProcessMetrics) []types.ProcessRecord {
	records := make([]types.ProcessRecord, 0, len(metrics))
	for _, m := range metrics {
		records = append(records, m.Record())
	}
	return records
}

func NewSnapshotResult(s types.Snapshot) *SnapshotResult {
	return &SnapshotResult{
		Timestamp:        utils.TimestampMillis(s.Timestamp),
		Generation:       s.Generation,
		CPUPercent:       s.AggregateCPUPercent,
		CPUReady:         s.AggregateCPUReady,
		MemoryPercent:    s.AggregateMemoryPercent,
		UptimeSeconds:    utils.ScaleFractionalDuration(s.Uptime, time.Second),
		CPUNormalization: string(s.CPUNormalization),
		Metrics:          newProcessMetricsList(s.Processes),
	}
}

// Snapshot converts back to the domain type. Timestamps lose sub-millisecond precision on the wire.
func (r *SnapshotResult) Snapshot() types.Snapshot {
	return types.Snapshot{
		Timestamp:              utils.FromTimestampMillis(r.Timestamp),
		Generation:             r.Generation,
		Processes:              recordsOf(r.Metrics),
		AggregateCPUPercent:    r.CPUPercent,
		AggregateCPUReady:      r.CPUReady,
		AggregateMemoryPercent: r.MemoryPercent,
		Uptime:                 time.Duration(r.UptimeSeconds * float64(time.Second)),
		CPUNormalization:       types.CPUNormalization(r.CPUNormalization),
	}
}

func NewSeriesResult(points []types.SeriesPoint) *SeriesResult {
	result := &SeriesResult{Points: make([]SeriesPoint, 0, len(points))}
	for _, p := range points {
		result.Points = append(result.Points, SeriesPoint{
			Timestamp:     utils.TimestampMillis(p.Timestamp),
			Generation:    p.Generation,
			CPUPercent:    p.CPUPercent,
			CPUReady:      p.CPUReady,
			MemoryPercent: p.MemoryPercent,
		})
	}
	return result
}

func (r *SeriesResult) SeriesPoints() []types.SeriesPoint {
	points := make([]types.SeriesPoint, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, types.SeriesPoint{
			Timestamp:     utils.FromTimestampMillis(p.Timestamp),
			Generation:    p.Generation,
			CPUPercent:    p.CPUPercent,
			CPUReady:      p.CPUReady,
			MemoryPercent: p.MemoryPercent,
		})
	}
	return points
}

func NewDashboardResult(s types.Snapshot, points []types.SeriesPoint) *DashboardResult {
	return &DashboardResult{
		Snapshot: NewSnapshotResult(s),
		Series:   NewSeriesResult(points),
	}
}

// Parts converts back to the domain types. A missing member decodes as its zero value.
func (r *DashboardResult) Parts() (types.Snapshot, []types.SeriesPoint) {
	var snap types.Snapshot
	if r.Snapshot != nil {
		snap = r.Snapshot.Snapshot()
	}
	points := []types.SeriesPoint{}
	if r.Series != nil {
		points = r.Series.SeriesPoints()
	}
	return snap, points
}

func NewTopResult(sortBy string, records []types.ProcessRecord) *TopResult {
	return &TopResult{
		SortBy:  sortBy,
		Metrics: newProcessMetricsList(records),
	}
}

func (r *TopResult) Records() []types.ProcessRecord {
	return recordsOf(r.Metrics)
}

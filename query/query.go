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

// Package query is the read side consumed by presentation adapters. It holds no state of its own.
package query

//go:generate mockgen -source=query.go -destination=mock_query.go -package=query

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

// ErrUnavailable means nothing has been published yet. It is a normal state during startup, not a failure.
var ErrUnavailable = errors.New("no snapshot available yet")

type SortBy string

const (
	SortByCPU    SortBy = "cpu"
	SortByMemory SortBy = "memory"

	DefaultTopCount = 10
)

func ParseSortBy(raw string) (SortBy, error) {
	switch SortBy(raw) {
	case "", SortByCPU:
		return SortByCPU, nil
	case SortByMemory:
		return SortByMemory, nil
	default:
		return "", errors.Errorf("unknown sort '%s', expected cpu or memory", raw)
	}
}

type Service interface {
	CurrentSnapshot() (types.Snapshot, error)
	// TimeSeries is oldest first and empty before the first publish.
	TimeSeries() []types.SeriesPoint
	// Dashboard returns the current snapshot together with the series as of that same publish.
	Dashboard() (types.Snapshot, []types.SeriesPoint, error)
	KillProcess(ctx context.Context, pid int32) types.TerminationOutcome
	// TopProcesses returns at most n records of the current snapshot, highest first.
	TopProcesses(n int, sortBy SortBy) ([]types.ProcessRecord, error)
}

// Backend is the part of the store the query layer reads from.
type Backend interface {
	Current() (types.Snapshot, bool)
	Series() []types.SeriesPoint
	Read() (types.Snapshot, []types.SeriesPoint, bool)
	RequestTermination(ctx context.Context, pid int32) types.TerminationOutcome
}

type StoreQuery struct {
	backend Backend
}

func NewStoreQuery(backend Backend) *StoreQuery {
	return &StoreQuery{backend: backend}
}

func (q *StoreQuery) CurrentSnapshot() (types.Snapshot, error) {
	snap, ok := q.backend.Current()
	if !ok {
		return types.Snapshot{}, ErrUnavailable
	}
	return snap, nil
}

func (q *StoreQuery) TimeSeries() []types.SeriesPoint {
	return q.backend.Series()
}

func (q *StoreQuery) Dashboard() (types.Snapshot, []types.SeriesPoint, error) {
	snap, series, ok := q.backend.Read()
	if !ok {
		return types.Snapshot{}, nil, ErrUnavailable
	}
	return snap, series, nil
}

func (q *StoreQuery) KillProcess(ctx context.Context, pid int32) types.TerminationOutcome {
	return q.backend.RequestTermination(ctx, pid)
}

func (q *StoreQuery) TopProcesses(n int, sortBy SortBy) ([]types.ProcessRecord, error) {
	snap, err := q.CurrentSnapshot()
	if err != nil {
		return nil, err
	}
	return TopOf(snap.Processes, n, sortBy), nil
}

// TopOf sorts a copy of records. Ties are broken by pid so the order is stable between passes.
func TopOf(records []types.ProcessRecord, n int, sortBy SortBy) []types.ProcessRecord {
	if n <= 0 {
		n = DefaultTopCount
	}

	sorted := append([]types.ProcessRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch sortBy {
		case SortByMemory:
			if a.MemoryBytes != b.MemoryBytes {
				return a.MemoryBytes > b.MemoryBytes
			}
		default:
			if a.CPUPercent != b.CPUPercent {
				return a.CPUPercent > b.CPUPercent
			}
		}
		return a.Pid < b.Pid
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

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

// Package store holds the latest process snapshot and the bounded history of aggregate metrics.
//
// The store is single-writer, multi-reader. Publish builds a new immutable state and swaps it in
// with one atomic pointer store, so readers never lock and never observe a snapshot paired with a
// series from a different publish.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	log "github.com/sirupsen/logrus"
)

const (
	// EventTypePublished is emitted after each successful publish. The target is the published types.Snapshot.
	EventTypePublished = "published"
)

var (
	ErrStaleSnapshot   = errors.New("snapshot is older than the current one")
	ErrInvalidCapacity = errors.New("series capacity must be positive")
)

type state struct {
	snapshot types.Snapshot
	series   *Series
}

type Store struct {
	utils.EventConsumerRegistry

	terminator hostinfo.Terminator
	capacity   int

	// mu serializes writers only
	mu         sync.Mutex
	generation uint64
	current    atomic.Pointer[state]
}

func NewStore(capacity int, terminator hostinfo.Terminator) (*Store, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Store{
		capacity:   capacity,
		terminator: terminator,
	}, nil
}

func (s *Store) Capacity() int {
	return s.capacity
}

// Publish replaces the current snapshot wholesale and appends point to the series, evicting the oldest
// point when at capacity. Both become visible to readers at once. The generation of the snapshot and
// the point is assigned here, any caller supplied value is overwritten.
func (s *Store) Publish(snapshot types.Snapshot, point types.SeriesPoint) error {
	s.mu.Lock()

	prior := s.current.Load()
	if prior != nil && snapshot.Timestamp.Before(prior.snapshot.Timestamp) {
		s.mu.Unlock()
		return errors.Wrapf(ErrStaleSnapshot, "publishing %v after %v", snapshot.Timestamp, prior.snapshot.Timestamp)
	}

	s.generation++
	snapshot.Generation = s.generation
	point.Generation = s.generation

	// the caller keeps its slice, readers get one nobody else can touch
	snapshot.Processes = append([]types.ProcessRecord(nil), snapshot.Processes...)

	var series *Series
	if prior == nil {
		series = NewSeries(s.capacity)
	} else {
		series = prior.series
	}

	next := &state{
		snapshot: snapshot,
		series:   series.Append(point),
	}
	s.current.Store(next)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"generation": snapshot.Generation,
		"processes":  len(snapshot.Processes),
		"points":     next.series.Len(),
	}).Debug("Published snapshot")

	if err := s.EmitEvent(utils.NewEvent(EventTypePublished, snapshot)); err != nil {
		log.WithError(err).Warn("Publish event consumer failed")
	}

	return nil
}

// Current returns the latest snapshot, or false when nothing has been published yet. The returned
// Processes slice is shared with other readers and must not be modified.
func (s *Store) Current() (types.Snapshot, bool) {
	st := s.current.Load()
	if st == nil {
		return types.Snapshot{}, false
	}
	return st.snapshot, true
}

// Series returns a copy of the aggregate history, oldest first.
func (s *Store) Series() []types.SeriesPoint {
	st := s.current.Load()
	if st == nil {
		return []types.SeriesPoint{}
	}
	return st.series.Points()
}

// Read returns the snapshot and the series from the same publish.
func (s *Store) Read() (types.Snapshot, []types.SeriesPoint, bool) {
	st := s.current.Load()
	if st == nil {
		return types.Snapshot{}, []types.SeriesPoint{}, false
	}
	return st.snapshot, st.series.Points(), true
}

// RequestTermination forwards to the OS and reports the immediate outcome. The store's own state is
// left alone, the next sampling pass reflects the exit.
func (s *Store) RequestTermination(ctx context.Context, pid int32) types.TerminationOutcome {
	logger := log.WithField("pid", pid)

	if pid <= 0 {
		logger.Debug("Refusing to terminate invalid pid")
		return types.NotFound
	}
	if current, ok := s.Current(); ok {
		if record, found := current.FindProcess(pid); found {
			logger = logger.WithField("name", record.Name)
		}
	}

	err := s.terminator.TerminateProcess(ctx, pid)
	switch {
	case err == nil:
		return types.Terminated
	case errors.Is(err, hostinfo.ErrProcessGone):
		logger.Debug("Termination target not found")
		return types.NotFound
	case errors.Is(err, hostinfo.ErrAccessDenied):
		logger.Info("Termination denied")
		return types.AccessDenied
	default:
		logger.WithError(err).Warn("Termination failed, reporting as denied")
		return types.AccessDenied
	}
}

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

package store

import (
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

// Series is an immutable bounded FIFO of aggregate points. Append returns a new Series and leaves
// the receiver untouched, which lets readers hold on to a Series while the sampler moves on.
type Series struct {
	capacity int
	points   []types.SeriesPoint
}

func NewSeries(capacity int) *Series {
	return &Series{
		capacity: capacity,
		points:   []types.SeriesPoint{},
	}
}

// Append adds p as the newest point. When already at capacity the oldest point is evicted, never any other.
func (s *Series) Append(p types.SeriesPoint) *Series {
	drop := len(s.points) + 1 - s.capacity
	if drop < 0 {
		drop = 0
	}

	points := make([]types.SeriesPoint, 0, len(s.points)+1-drop)
	points = append(points, s.points[drop:]...)
	points = append(points, p)

	return &Series{
		capacity: s.capacity,
		points:   points,
	}
}

// Points returns a copy, oldest first.
func (s *Series) Points() []types.SeriesPoint {
	out := make([]types.SeriesPoint, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Series) Len() int {
	return len(s.points)
}

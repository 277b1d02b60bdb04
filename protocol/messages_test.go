//
// Copyright 2017 Rackspace
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

package protocol_test

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/protocol"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshotResult(t *testing.T) {
	raw, err := os.ReadFile("testdata/snapshot.json")
	require.NoError(t, err)

	var result protocol.SnapshotResult
	require.NoError(t, json.Unmarshal(raw, &result))

	snap := result.Snapshot()
	assert.Equal(t, time.Unix(1700000000, 123*int64(time.Millisecond)), snap.Timestamp)
	assert.Equal(t, uint64(42), snap.Generation)
	assert.True(t, snap.AggregateCPUReady)
	assert.Equal(t, 3600500*time.Millisecond, snap.Uptime)
	assert.Equal(t, types.NormalizeSystem, snap.CPUNormalization)

	require.Len(t, snap.Processes, 2)
	assert.Equal(t, types.ProcessRecord{
		Pid:           4242,
		Name:          "postgres",
		CPUPercent:    12.5,
		MemoryBytes:   536870912,
		MemoryPercent: 6.4,
		Status:        types.StatusDiskSleep,
		ThreadCount:   9,
		CreateTime:    1699999000000,
	}, snap.Processes[1])
}

func TestSnapshotResult_EncodesEmptyProcessListAsArray(t *testing.T) {
	encoded, err := json.Marshal(protocol.NewSnapshotResult(types.Snapshot{}))
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &generic))
	assert.Equal(t, []interface{}{}, generic["metrics"])
	assert.Equal(t, float64(0), generic["timestamp"])
}

func TestSeriesResult(t *testing.T) {
	points := []types.SeriesPoint{
		{Timestamp: time.Unix(10, 0), Generation: 1, CPUPercent: 5, CPUReady: false, MemoryPercent: 20},
		{Timestamp: time.Unix(12, 0), Generation: 2, CPUPercent: 7.5, CPUReady: true, MemoryPercent: 21},
	}

	result := protocol.NewSeriesResult(points)
	require.Len(t, result.Points, 2)
	assert.Equal(t, int64(10000), result.Points[0].Timestamp)
	assert.Equal(t, int64(12000), result.Points[1].Timestamp)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded protocol.SeriesResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	got := decoded.SeriesPoints()
	require.Len(t, got, 2)
	for i := range points {
		assert.True(t, points[i].Timestamp.Equal(got[i].Timestamp))
		assert.Equal(t, points[i].Generation, got[i].Generation)
		assert.Equal(t, points[i].CPUReady, got[i].CPUReady)
	}
}

func TestSeriesResult_EmptyIsArray(t *testing.T) {
	encoded, err := json.Marshal(protocol.NewSeriesResult(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"points":[]}`, string(encoded))
}

func TestDashboardResult(t *testing.T) {
	snap := types.Snapshot{
		Timestamp:  time.Unix(20, 0),
		Generation: 9,
		Processes:  []types.ProcessRecord{{Pid: 7, Name: "sh", Status: types.StatusSleeping}},
	}

	encoded, err := json.Marshal(protocol.NewDashboardResult(snap, []types.SeriesPoint{snap.Point()}))
	require.NoError(t, err)

	var decoded protocol.DashboardResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	gotSnap, gotSeries := decoded.Parts()
	assert.Equal(t, uint64(9), gotSnap.Generation)
	require.Len(t, gotSnap.Processes, 1)
	require.Len(t, gotSeries, 1)
	assert.Equal(t, gotSnap.Generation, gotSeries[0].Generation)
	assert.True(t, gotSnap.Timestamp.Equal(gotSeries[0].Timestamp))
}

func TestDashboardResult_MissingMembers(t *testing.T) {
	var decoded protocol.DashboardResult
	require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))

	snap, series := decoded.Parts()
	assert.Zero(t, snap.Generation)
	assert.Empty(t, series)
}

func TestKillResult(t *testing.T) {
	encoded, err := json.Marshal(protocol.KillResult{Pid: 4242, Outcome: string(types.NotFound)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pid":4242,"outcome":"not_found"}`, string(encoded))
}

package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopView_KeepsLastGoodReading(t *testing.T) {
	st, err := store.NewStore(5, nil)
	require.NoError(t, err)
	server := httptest.NewServer(endpoint.NewServer(query.NewStoreQuery(st), nil))

	view := &topView{client: endpoint.NewClient(server.URL), count: 1, sortBy: query.SortByMemory}
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, view.refresh(ctx, &out))
	assert.Contains(t, out.String(), "No data yet")

	snap := types.Snapshot{
		Timestamp: time.Unix(1700000000, 0),
		Processes: []types.ProcessRecord{
			{Pid: 1, Name: "small", MemoryBytes: 1024},
			{Pid: 2, Name: "large", MemoryBytes: 1 << 30},
		},
	}
	require.NoError(t, st.Publish(snap, snap.Point()))

	out.Reset()
	require.NoError(t, view.refresh(ctx, &out))
	assert.Contains(t, out.String(), "large")
	assert.NotContains(t, out.String(), "small")

	server.Close()

	out.Reset()
	assert.Error(t, view.refresh(ctx, &out))
	assert.Contains(t, out.String(), "large")
	assert.Contains(t, out.String(), "(stale, last update")
}

func TestTopView_MarksStaleWhenServerLosesData(t *testing.T) {
	populated, err := store.NewStore(5, nil)
	require.NoError(t, err)
	snap := types.Snapshot{
		Timestamp: time.Unix(1700000000, 0),
		Processes: []types.ProcessRecord{{Pid: 2, Name: "large", MemoryBytes: 1 << 30}},
	}
	require.NoError(t, populated.Publish(snap, snap.Point()))
	first := httptest.NewServer(endpoint.NewServer(query.NewStoreQuery(populated), nil))
	defer first.Close()

	restarted, err := store.NewStore(5, nil)
	require.NoError(t, err)
	second := httptest.NewServer(endpoint.NewServer(query.NewStoreQuery(restarted), nil))
	defer second.Close()

	view := &topView{client: endpoint.NewClient(first.URL), count: 5, sortBy: query.SortByCPU}
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, view.refresh(ctx, &out))
	assert.NotContains(t, out.String(), "(stale")

	view.client = endpoint.NewClient(second.URL)
	out.Reset()
	err = view.refresh(ctx, &out)
	assert.ErrorIs(t, err, query.ErrUnavailable)
	assert.Contains(t, out.String(), "large")
	assert.Contains(t, out.String(), "(stale, last update")
	assert.NotContains(t, out.String(), "No data yet")
}

func TestTopView_SummaryMatchesSnapshotGeneration(t *testing.T) {
	st, err := store.NewStore(5, nil)
	require.NoError(t, err)
	server := httptest.NewServer(endpoint.NewServer(query.NewStoreQuery(st), nil))
	defer server.Close()

	for i := 1; i <= 3; i++ {
		snap := types.Snapshot{Timestamp: time.Unix(1700000000+int64(i), 0)}
		require.NoError(t, st.Publish(snap, snap.Point()))
	}

	view := &topView{client: endpoint.NewClient(server.URL), count: 5, sortBy: query.SortByCPU}
	require.NoError(t, view.fetch(context.Background()))

	require.NotNil(t, view.last)
	require.Len(t, view.lastSeries, 3)
	assert.Equal(t, view.last.Generation, view.lastSeries[len(view.lastSeries)-1].Generation)
}

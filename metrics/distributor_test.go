package metrics

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDistributor struct {
	snapshots []types.Snapshot
}

func (d *recordingDistributor) Start(ctx context.Context) error {
	return nil
}

func (d *recordingDistributor) Distribute(snapshot types.Snapshot) {
	d.snapshots = append(d.snapshots, snapshot)
}

func TestMetricsDistributor_Disabled(t *testing.T) {
	md := NewMetricsDistributor(context.Background(), config.NewConfig("some-guid"))
	assert.False(t, md.Enabled())
}

func TestMetricsDistributor_HandleEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := &recordingDistributor{}
	md := &MetricsDistributor{distributors: []metricsDistributorType{recorder}, ctx: context.Background()}

	other := utils.NewMockEvent(ctrl)
	other.EXPECT().Type().Return("something-else").AnyTimes()
	assert.NoError(t, md.HandleEvent(other))

	assert.NoError(t, md.HandleEvent(utils.NewEvent(store.EventTypePublished, types.Snapshot{Generation: 7})))
	assert.Error(t, md.HandleEvent(utils.NewEvent(store.EventTypePublished, "not a snapshot")))

	require.Len(t, recorder.snapshots, 1)
	assert.Equal(t, uint64(7), recorder.snapshots[0].Generation)
}

func TestMetricsDistributor_FromStore(t *testing.T) {
	recorder := &recordingDistributor{}
	md := &MetricsDistributor{distributors: []metricsDistributorType{recorder}, ctx: context.Background()}

	st, err := store.NewStore(3, nil)
	require.NoError(t, err)
	st.RegisterEventConsumer(md)

	snap := types.Snapshot{Timestamp: time.Unix(1700000000, 0)}
	require.NoError(t, st.Publish(snap, snap.Point()))

	require.Len(t, recorder.snapshots, 1)
	assert.Equal(t, uint64(1), recorder.snapshots[0].Generation)
}

func TestStatsdDistributor_SendsGaugesAndServiceCheck(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()

	cfg := config.NewConfig("some-guid")
	cfg.StatsdEndpoint = conn.LocalAddr().String()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	md := NewMetricsDistributor(ctx, cfg)
	require.True(t, md.Enabled())
	md.Start()

	md.Distribute(types.Snapshot{
		Generation:             1,
		AggregateCPUPercent:    12.5,
		AggregateCPUReady:      true,
		AggregateMemoryPercent: 40,
		CPUNormalization:       types.NormalizeSystem,
		Processes:              []types.ProcessRecord{{Pid: 1}, {Pid: 2}},
	})

	expected := []string{
		"procmon.cpu_percent:12.5|g",
		"procmon.memory_percent:40|g",
		"procmon.processes:2|g",
		"_sc|",
		"sampler|0",
		"instance:some-guid",
	}

	var received strings.Builder
	buf := make([]byte, 65536)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && !containsAll(received.String(), expected) {
		require.NoError(t, conn.SetReadDeadline(deadline))
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			break
		}
		received.Write(buf[:n])
		received.WriteString("\n")
	}

	for _, e := range expected {
		assert.Contains(t, received.String(), e)
	}
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

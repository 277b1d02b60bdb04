package commands

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steadySource(ctrl *gomock.Controller) *hostinfo.MockSource {
	source := hostinfo.NewMockSource(ctrl)
	source.EXPECT().NumCPU(gomock.Any()).Return(2, nil).AnyTimes()
	source.EXPECT().SystemMemory(gomock.Any()).Return(hostinfo.Memory{Total: 1 << 30, UsedPercent: 25}, nil).AnyTimes()
	source.EXPECT().Uptime(gomock.Any()).Return(time.Hour, nil).AnyTimes()
	passes := 0.0
	source.EXPECT().SystemCPUTimes(gomock.Any()).DoAndReturn(func(ctx context.Context) (hostinfo.CPUTimes, error) {
		passes++
		return hostinfo.CPUTimes{Busy: passes, Total: 4 * passes}, nil
	}).AnyTimes()
	source.EXPECT().ListProcesses(gomock.Any()).Return([]int32{1, 4242}, nil).AnyTimes()
	source.EXPECT().ReadProcess(gomock.Any(), int32(1)).
		Return(hostinfo.ProcessFields{Pid: 1, Name: "init", CreateTime: 1, Status: "S", ThreadCount: 1}, nil).AnyTimes()
	source.EXPECT().ReadProcess(gomock.Any(), int32(4242)).
		Return(hostinfo.ProcessFields{Pid: 4242, Name: "worker", CreateTime: 2, Status: "R", ThreadCount: 4}, nil).AnyTimes()
	return source
}

func TestServe_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := steadySource(ctrl)
	source.EXPECT().TerminateProcess(gomock.Any(), int32(4242)).Return(nil)

	cfg := config.NewConfig("test-guid")
	cfg.SampleInterval = 20 * time.Millisecond
	cfg.SeriesCapacity = 3

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- Serve(ctx, cfg, source, listener)
	}()

	client := endpoint.NewClient(listener.Addr().String())

	var snap types.Snapshot
	require.Eventually(t, func() bool {
		snap, err = client.CurrentSnapshot(ctx)
		return err == nil && snap.Generation >= 4
	}, 5*time.Second, 10*time.Millisecond)

	assert.Len(t, snap.Processes, 2)
	assert.True(t, snap.AggregateCPUReady)

	series, err := client.TimeSeries(ctx)
	require.NoError(t, err)
	assert.Len(t, series, 3)

	outcome, err := client.KillProcess(ctx, 4242)
	require.NoError(t, err)
	assert.Equal(t, types.Terminated, outcome)

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestServe_UnavailableBeforeFirstSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := hostinfo.NewMockSource(ctrl)
	source.EXPECT().ListProcesses(gomock.Any()).Return(nil, assert.AnError).AnyTimes()

	cfg := config.NewConfig("test-guid")
	cfg.SampleInterval = 10 * time.Millisecond

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- Serve(ctx, cfg, source, listener)
	}()

	_, err = endpoint.NewClient(listener.Addr().String()).CurrentSnapshot(ctx)
	assert.ErrorIs(t, err, query.ErrUnavailable)

	cancel()
	assert.NoError(t, <-served)
}

func TestLoadServeConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "procmon.cfg")
	require.NoError(t, os.WriteFile(path, []byte("series_capacity 10\nlisten_address 0.0.0.0:1\n"), 0o600))

	priorPath := configFilePath
	defer func() { configFilePath = priorPath }()
	configFilePath = path

	require.NoError(t, ServeCmd.ParseFlags([]string{"--interval", "500ms", "--cpu-normalization", "per_core"}))

	cfg, err := loadServeConfig(ServeCmd, "some-guid")
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, 10, cfg.SeriesCapacity)
	assert.Equal(t, types.NormalizePerCore, cfg.CPUNormalization)
	assert.Equal(t, "0.0.0.0:1", cfg.ListenAddress)
	assert.Equal(t, "some-guid", cfg.Guid)
}

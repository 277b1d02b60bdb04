package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Unix(1700000000, 0)

func at(i int) time.Time {
	return epoch.Add(time.Duration(i) * time.Second)
}

func snapshotAt(i int) types.Snapshot {
	return types.Snapshot{
		Timestamp: at(i),
		Processes: []types.ProcessRecord{
			{Pid: 1, Name: "init", Status: types.StatusSleeping},
			{Pid: int32(100 + i), Name: fmt.Sprintf("worker-%d", i), Status: types.StatusRunning},
		},
		AggregateCPUPercent:    float64(i),
		AggregateCPUReady:      i > 1,
		AggregateMemoryPercent: 50,
	}
}

func publish(t *testing.T, st *store.Store, i int) types.Snapshot {
	snap := snapshotAt(i)
	require.NoError(t, st.Publish(snap, snap.Point()))
	return snap
}

func newStore(t *testing.T, capacity int, terminator hostinfo.Terminator) *store.Store {
	st, err := store.NewStore(capacity, terminator)
	require.NoError(t, err)
	return st
}

func TestNewStore_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := store.NewStore(capacity, nil)
		assert.ErrorIs(t, err, store.ErrInvalidCapacity)
	}
}

func TestStore_UnavailableBeforePublish(t *testing.T) {
	st := newStore(t, 5, nil)

	_, ok := st.Current()
	assert.False(t, ok)
	assert.Empty(t, st.Series())

	_, series, ok := st.Read()
	assert.False(t, ok)
	assert.Empty(t, series)
}

func TestStore_CurrentAfterOnePublish(t *testing.T) {
	st := newStore(t, 5, nil)
	snap := publish(t, st, 1)

	got, ok := st.Current()
	require.True(t, ok)

	expected := snap
	expected.Generation = 1
	assert.Equal(t, expected, got)

	series := st.Series()
	require.Len(t, series, 1)
	assert.Equal(t, uint64(1), series[0].Generation)
	assert.Equal(t, at(1), series[0].Timestamp)
}

func TestStore_SeriesEvictsOldestFirst(t *testing.T) {
	st := newStore(t, 5, nil)

	for i := 1; i <= 7; i++ {
		publish(t, st, i)
	}

	series := st.Series()
	require.Len(t, series, 5)
	for i, p := range series {
		assert.Equal(t, at(i+3), p.Timestamp, "point %d", i)
	}
}

func TestStore_SeriesNeverExceedsCapacity(t *testing.T) {
	tests := []struct {
		capacity  int
		publishes int
	}{
		{capacity: 1, publishes: 10},
		{capacity: 3, publishes: 2},
		{capacity: 50, publishes: 120},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("capacity=%d", tt.capacity), func(t *testing.T) {
			st := newStore(t, tt.capacity, nil)
			for i := 1; i <= tt.publishes; i++ {
				publish(t, st, i)
				assert.LessOrEqual(t, len(st.Series()), tt.capacity)
			}
			series := st.Series()
			latest := series[len(series)-1]
			assert.Equal(t, at(tt.publishes), latest.Timestamp)
		})
	}
}

func TestStore_RejectsStaleSnapshot(t *testing.T) {
	st := newStore(t, 5, nil)
	publish(t, st, 5)

	older := snapshotAt(4)
	err := st.Publish(older, older.Point())

	assert.ErrorIs(t, err, store.ErrStaleSnapshot)
	got, _ := st.Current()
	assert.Equal(t, at(5), got.Timestamp)
	assert.Len(t, st.Series(), 1)
}

func TestStore_AcceptsEqualTimestamp(t *testing.T) {
	st := newStore(t, 5, nil)
	publish(t, st, 5)

	same := snapshotAt(5)
	assert.NoError(t, st.Publish(same, same.Point()))
	got, _ := st.Current()
	assert.Equal(t, uint64(2), got.Generation)
}

func TestStore_PublishDetachesCallerSlice(t *testing.T) {
	st := newStore(t, 5, nil)
	snap := snapshotAt(1)
	require.NoError(t, st.Publish(snap, snap.Point()))

	snap.Processes[0].Name = "mutated"

	got, _ := st.Current()
	assert.Equal(t, "init", got.Processes[0].Name)
}

func TestStore_SeriesReturnsCopy(t *testing.T) {
	st := newStore(t, 5, nil)
	publish(t, st, 1)

	series := st.Series()
	series[0].CPUPercent = 99

	assert.Equal(t, 1.0, st.Series()[0].CPUPercent)
}

func TestStore_ReadIsConsistentUnderConcurrentPublish(t *testing.T) {
	st := newStore(t, 10, nil)
	const publishes = 2000

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var lastTimestamp time.Time
			for {
				select {
				case <-stop:
					return
				default:
				}

				snap, series, ok := st.Read()
				if !ok {
					continue
				}
				latest := series[len(series)-1]
				if latest.Generation != snap.Generation || !latest.Timestamp.Equal(snap.Timestamp) {
					t.Errorf("torn read: snapshot generation %d, series generation %d", snap.Generation, latest.Generation)
					return
				}

				current, _ := st.Current()
				if current.Timestamp.Before(lastTimestamp) {
					t.Errorf("timestamp went backwards: %v after %v", current.Timestamp, lastTimestamp)
					return
				}
				lastTimestamp = current.Timestamp
			}
		}()
	}

	for i := 1; i <= publishes; i++ {
		snap := snapshotAt(i)
		require.NoError(t, st.Publish(snap, snap.Point()))
	}
	close(stop)
	wg.Wait()

	got, _ := st.Current()
	assert.Equal(t, uint64(publishes), got.Generation)
}

func TestStore_RequestTermination(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected types.TerminationOutcome
	}{
		{name: "terminated", err: nil, expected: types.Terminated},
		{name: "gone", err: errors.Wrap(hostinfo.ErrProcessGone, "pid 4242"), expected: types.NotFound},
		{name: "denied", err: errors.Wrap(hostinfo.ErrAccessDenied, "pid 1"), expected: types.AccessDenied},
		{name: "unclassified", err: errors.New("boom"), expected: types.AccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			terminator := hostinfo.NewMockTerminator(ctrl)
			terminator.EXPECT().TerminateProcess(gomock.Any(), int32(4242)).Return(tt.err)

			st := newStore(t, 5, terminator)
			assert.Equal(t, tt.expected, st.RequestTermination(context.Background(), 4242))
		})
	}
}

func TestStore_RequestTermination_InvalidPid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	terminator := hostinfo.NewMockTerminator(ctrl)
	st := newStore(t, 5, terminator)

	assert.Equal(t, types.NotFound, st.RequestTermination(context.Background(), 0))
	assert.Equal(t, types.NotFound, st.RequestTermination(context.Background(), -3))
}

func TestStore_RequestTermination_LeavesSnapshotAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	terminator := hostinfo.NewMockTerminator(ctrl)
	terminator.EXPECT().TerminateProcess(gomock.Any(), int32(4242)).Return(hostinfo.ErrProcessGone)

	st := newStore(t, 5, terminator)
	publish(t, st, 1)
	before, _ := st.Current()

	assert.Equal(t, types.NotFound, st.RequestTermination(context.Background(), 4242))

	after, _ := st.Current()
	assert.Equal(t, before, after)
}

func TestStore_PublishEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := utils.NewMockEventConsumer(ctrl)
	st := newStore(t, 5, nil)
	st.RegisterEventConsumer(consumer)

	consumer.EXPECT().HandleEvent(gomock.Any()).DoAndReturn(func(evt utils.Event) error {
		assert.Equal(t, store.EventTypePublished, evt.Type())
		snap, ok := evt.Target().(types.Snapshot)
		if assert.True(t, ok) {
			assert.Equal(t, uint64(1), snap.Generation)
		}
		return nil
	})

	publish(t, st, 1)
}

func TestStore_ConsumerErrorDoesNotFailPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := utils.NewMockEventConsumer(ctrl)
	consumer.EXPECT().HandleEvent(gomock.Any()).Return(errors.New("sink down"))

	st := newStore(t, 5, nil)
	st.RegisterEventConsumer(consumer)

	publish(t, st, 1)
	_, ok := st.Current()
	assert.True(t, ok)
}

func TestStore_RequestTermination_LogsKnownProcessName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hook := test.NewGlobal()
	defer log.StandardLogger().ReplaceHooks(make(log.LevelHooks))

	terminator := hostinfo.NewMockTerminator(ctrl)
	terminator.EXPECT().TerminateProcess(gomock.Any(), int32(101)).Return(hostinfo.ErrAccessDenied)

	st := newStore(t, 5, terminator)
	publish(t, st, 1)

	assert.Equal(t, types.AccessDenied, st.RequestTermination(context.Background(), 101))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Termination denied", entry.Message)
	assert.Equal(t, "worker-1", entry.Data["name"])
	assert.Equal(t, int32(101), entry.Data["pid"])
}

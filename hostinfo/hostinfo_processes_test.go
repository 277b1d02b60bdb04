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

package hostinfo_test

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unusedPid is well above any pid_max a test host will be configured with.
const unusedPid = int32(2147483000)

func TestHostSource_ListProcesses(t *testing.T) {
	hs := hostinfo.NewHostSource()

	pids, err := hs.ListProcesses(context.Background())
	if err != nil {
		t.Skip("Unable to get host process information.  Skipping for now", err)
	}

	assert.Contains(t, pids, int32(os.Getpid()))
}

func TestHostSource_ReadProcess_Self(t *testing.T) {
	hs := hostinfo.NewHostSource()
	pid := int32(os.Getpid())

	fields, err := hs.ReadProcess(context.Background(), pid)
	if err != nil {
		t.Skip("Unable to inspect our own process.  Skipping", err)
	}

	assert.Equal(t, pid, fields.Pid)
	assert.NotEmpty(t, fields.Name)
	assert.NotZero(t, fields.MemoryBytes)
	assert.NotZero(t, fields.CreateTime)
	assert.GreaterOrEqual(t, fields.ThreadCount, int32(1))
	assert.GreaterOrEqual(t, fields.CPUTimeSeconds, 0.0)
}

func TestHostSource_ReadProcess_Gone(t *testing.T) {
	hs := hostinfo.NewHostSource()

	_, err := hs.ReadProcess(context.Background(), unusedPid)

	require.Error(t, err)
	assert.ErrorIs(t, err, hostinfo.ErrProcessGone)
	assert.True(t, hostinfo.IsTransient(err))
}

func TestHostSource_TerminateProcess_Gone(t *testing.T) {
	hs := hostinfo.NewHostSource()

	err := hs.TerminateProcess(context.Background(), unusedPid)

	assert.ErrorIs(t, err, hostinfo.ErrProcessGone)
}

func TestHostSource_TerminateProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sleep is not available")
	}
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Skip("Unable to start a child process.  Skipping", err)
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	hs := hostinfo.NewHostSource()
	err := hs.TerminateProcess(context.Background(), int32(cmd.Process.Pid))
	require.NoError(t, err)

	select {
	case waitErr := <-done:
		assert.Error(t, waitErr, "child should have exited due to the signal")
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("child did not exit after termination signal")
	}
}

func TestHostSource_SystemCounters(t *testing.T) {
	hs := hostinfo.NewHostSource()
	ctx := context.Background()

	times, err := hs.SystemCPUTimes(ctx)
	if err != nil {
		t.Skip("We cannot get cpu stats right now.  Skipping")
	}
	assert.Greater(t, times.Total, 0.0)
	assert.LessOrEqual(t, times.Busy, times.Total)

	memory, err := hs.SystemMemory(ctx)
	require.NoError(t, err)
	assert.NotZero(t, memory.Total)
	assert.Greater(t, memory.UsedPercent, 0.0)
	assert.LessOrEqual(t, memory.UsedPercent, 100.0)

	cores, err := hs.NumCPU(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cores, 1)
}

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

package hostinfo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
	log "github.com/sirupsen/logrus"
)

// HostSource reads the local host through gopsutil.
type HostSource struct{}

func NewHostSource() *HostSource {
	return &HostSource{}
}

func (*HostSource) ListProcesses(ctx context.Context) ([]int32, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing processes")
	}
	return pids, nil
}

func (hs *HostSource) ReadProcess(ctx context.Context, pid int32) (ProcessFields, error) {
	fields := ProcessFields{Pid: pid}

	pr, err := process.NewProcess(pid)
	if err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}

	if fields.Name, err = pr.NameWithContext(ctx); err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}
	if fields.CreateTime, err = pr.CreateTimeWithContext(ctx); err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}

	times, err := pr.TimesWithContext(ctx)
	if err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}
	fields.CPUTimeSeconds = times.User + times.System

	memory, err := pr.MemoryInfoWithContext(ctx)
	if err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}
	fields.MemoryBytes = memory.RSS

	if fields.Status, err = pr.StatusWithContext(ctx); err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}

	if fields.ThreadCount, err = pr.NumThreadsWithContext(ctx); err != nil {
		return fields, classifyProcessError(ctx, pid, err)
	}

	return fields, nil
}

// TerminateProcess sends SIGTERM (TerminateProcess on Windows). It does not wait for the process to exit.
func (*HostSource) TerminateProcess(ctx context.Context, pid int32) error {
	pr, err := process.NewProcess(pid)
	if err != nil {
		return classifyProcessError(ctx, pid, err)
	}

	if err := pr.TerminateWithContext(ctx); err != nil {
		return classifyProcessError(ctx, pid, err)
	}

	log.WithField("pid", pid).Info("Termination signal sent")
	return nil
}

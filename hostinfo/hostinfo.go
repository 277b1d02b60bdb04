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

// Package hostinfo is the operating system side of sampling: it enumerates processes, reads their
// fields, reads the system-wide counters and delivers termination signals.
package hostinfo

//go:generate mockgen -source=hostinfo.go -destination=mock_source.go -package=hostinfo

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrProcessGone indicates the process exited between enumeration and inspection.
	ErrProcessGone = errors.New("process no longer exists")
	// ErrAccessDenied indicates the process exists but may not be inspected or signalled by us.
	ErrAccessDenied = errors.New("access to process denied")
)

// ProcessFields is the raw per-process reading. CPUTimeSeconds is cumulative user+system time, the
// sampler turns it into a rate.
type ProcessFields struct {
	Pid            int32
	Name           string
	CPUTimeSeconds float64
	CreateTime     int64
	MemoryBytes    uint64
	Status         string
	ThreadCount    int32
}

// CPUTimes holds cumulative system-wide CPU seconds across all cores.
type CPUTimes struct {
	Busy  float64
	Total float64
}

// Memory is the system-wide memory reading of one pass. Total is in bytes.
type Memory struct {
	Total       uint64
	UsedPercent float64
}

// Source is the unreliable, racy enumerator the sampler pulls from. Processes can disappear or
// become inaccessible at any moment between ListProcesses and ReadProcess.
type Source interface {
	ListProcesses(ctx context.Context) ([]int32, error)
	// ReadProcess fails with an error wrapping ErrProcessGone or ErrAccessDenied for transient conditions.
	ReadProcess(ctx context.Context, pid int32) (ProcessFields, error)

	SystemCPUTimes(ctx context.Context) (CPUTimes, error)
	SystemMemory(ctx context.Context) (Memory, error)
	NumCPU(ctx context.Context) (int, error)
	Uptime(ctx context.Context) (time.Duration, error)

	Terminator
}

// Terminator delivers termination requests to the OS.
type Terminator interface {
	// TerminateProcess returns once the signal has been issued. It fails with an error wrapping
	// ErrProcessGone or ErrAccessDenied.
	TerminateProcess(ctx context.Context, pid int32) error
}

// IsTransient reports whether err is one of the per-process conditions that are expected while sampling.
func IsTransient(err error) bool {
	return errors.Is(err, ErrProcessGone) || errors.Is(err, ErrAccessDenied)
}

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

package types

import (
	"fmt"
	"strings"
)

type ProcessStatus string

const (
	StatusRunning   ProcessStatus = "running"
	StatusSleeping  ProcessStatus = "sleeping"
	StatusDiskSleep ProcessStatus = "disk_sleep"
	StatusStopped   ProcessStatus = "stopped"
	StatusZombie    ProcessStatus = "zombie"
	StatusIdle      ProcessStatus = "idle"
	StatusUnknown   ProcessStatus = "unknown"
)

// ParseProcessStatus accepts both the single letter codes of /proc/<pid>/stat and the
// spelled out names some platforms report.
func ParseProcessStatus(raw string) ProcessStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "r", "running":
		return StatusRunning
	case "s", "sleep", "sleeping":
		return StatusSleeping
	case "d", "disk-sleep", "disk_sleep", "wait":
		return StatusDiskSleep
	case "t", "stop", "stopped", "tracing-stop":
		return StatusStopped
	case "z", "zombie":
		return StatusZombie
	case "i", "idle":
		return StatusIdle
	default:
		return StatusUnknown
	}
}

// CPUNormalization selects how CPU percentages are scaled. The same mode is applied to per-process
// and aggregate figures.
type CPUNormalization string

const (
	// NormalizeSystem divides by the logical core count, so every figure lies within 0..100.
	NormalizeSystem CPUNormalization = "system"
	// NormalizePerCore keeps figures relative to a single core, so they lie within 0..100*cores.
	NormalizePerCore CPUNormalization = "per_core"
)

var ValidCPUNormalizations = []string{string(NormalizeSystem), string(NormalizePerCore)}

func ParseCPUNormalization(raw string) (CPUNormalization, error) {
	switch CPUNormalization(raw) {
	case NormalizeSystem, NormalizePerCore:
		return CPUNormalization(raw), nil
	default:
		return "", fmt.Errorf("unknown cpu normalization '%s', expected one of %v", raw, ValidCPUNormalizations)
	}
}

// Ceiling is the largest value a percentage can reach under this mode on a host with cores logical CPUs.
func (n CPUNormalization) Ceiling(cores int) float64 {
	if n == NormalizePerCore && cores > 0 {
		return 100 * float64(cores)
	}
	return 100
}

// TerminationOutcome is the typed result of a termination request.
type TerminationOutcome string

const (
	Terminated   TerminationOutcome = "terminated"
	NotFound     TerminationOutcome = "not_found"
	AccessDenied TerminationOutcome = "access_denied"
)

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
	"github.com/shirou/gopsutil/cpu"
)

// SystemCPUTimes returns the cumulative counters summed over all cores. Iowait counts as idle,
// steal and guest time are already part of the other buckets or of busy time.
func (*HostSource) SystemCPUTimes(ctx context.Context) (CPUTimes, error) {
	stats, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUTimes{}, errors.Wrap(err, "reading cpu times")
	}
	if len(stats) == 0 {
		return CPUTimes{}, errors.New("no cpu times reported")
	}

	return cpuTimesFromStat(stats[0]), nil
}

func cpuTimesFromStat(s cpu.TimesStat) CPUTimes {
	idle := s.Idle + s.Iowait
	busy := s.User + s.System + s.Nice + s.Irq + s.Softirq + s.Steal
	return CPUTimes{
		Busy:  busy,
		Total: busy + idle,
	}
}

func (*HostSource) NumCPU(ctx context.Context) (int, error) {
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, errors.Wrap(err, "counting cpus")
	}
	return count, nil
}

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

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

const (
	dashboardTitle = "Real-Time Process Monitoring Dashboard"
	maxNameWidth   = 32
)

func renderProcessTable(w io.Writer, records []types.ProcessRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tNAME\tCPU %\tMEMORY\tSTATUS\tTHREADS")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			r.Pid, truncate(r.Name, maxNameWidth), formatCPU(r.CPUPercent, r.CPUReady), formatMemory(r.MemoryBytes), r.Status, r.ThreadCount)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, snap types.Snapshot, series []types.SeriesPoint) {
	fmt.Fprintf(w, "CPU %s (%s)  Memory %.1f%%  Processes %d  Uptime %s\n",
		formatCPU(snap.AggregateCPUPercent, snap.AggregateCPUReady), snap.CPUNormalization,
		snap.AggregateMemoryPercent, len(snap.Processes), snap.Uptime.Truncate(time.Second))

	if stats, ok := summarizeSeries(series); ok {
		fmt.Fprintf(w, "Last %d samples  CPU min/avg/max %.1f/%.1f/%.1f  Memory min/avg/max %.1f/%.1f/%.1f\n",
			len(series), stats.cpuMin, stats.cpuAvg, stats.cpuMax, stats.memMin, stats.memAvg, stats.memMax)
	}
}

func renderDashboard(w io.Writer, snap types.Snapshot, top []types.ProcessRecord, series []types.SeriesPoint) error {
	fmt.Fprintln(w, dashboardTitle)
	renderSummary(w, snap, series)
	fmt.Fprintln(w)
	if err := renderProcessTable(w, top); err != nil {
		return err
	}
	fmt.Fprintln(w, "Press Ctrl+C to exit.")
	return nil
}

type seriesStats struct {
	cpuMin, cpuAvg, cpuMax float64
	memMin, memAvg, memMax float64
}

// summarizeSeries leaves points whose CPU rate was not ready out of the CPU figures.
func summarizeSeries(series []types.SeriesPoint) (seriesStats, bool) {
	if len(series) == 0 {
		return seriesStats{}, false
	}

	var stats seriesStats
	cpuCount := 0
	for i, p := range series {
		if i == 0 || p.MemoryPercent < stats.memMin {
			stats.memMin = p.MemoryPercent
		}
		if p.MemoryPercent > stats.memMax {
			stats.memMax = p.MemoryPercent
		}
		stats.memAvg += p.MemoryPercent

		if !p.CPUReady {
			continue
		}
		if cpuCount == 0 || p.CPUPercent < stats.cpuMin {
			stats.cpuMin = p.CPUPercent
		}
		if p.CPUPercent > stats.cpuMax {
			stats.cpuMax = p.CPUPercent
		}
		stats.cpuAvg += p.CPUPercent
		cpuCount++
	}

	stats.memAvg /= float64(len(series))
	if cpuCount > 0 {
		stats.cpuAvg /= float64(cpuCount)
	}
	return stats, true
}

func formatCPU(percent float64, ready bool) string {
	if !ready {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", percent)
}

func formatMemory(bytes uint64) string {
	return datasize.ByteSize(bytes).HumanReadable()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "~"
}

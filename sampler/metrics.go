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

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricNamespace = "procmon"
	metricSubsystem = "sampler"

	metricLabelReason = "reason"

	skipReasonGone   = "gone"
	skipReasonDenied = "denied"
	skipReasonOther  = "other"
)

type samplerMetrics struct {
	ticks               prometheus.Counter
	enumerationFailures prometheus.Counter
	publishFailures     prometheus.Counter
	skipped             *prometheus.CounterVec
	tickDuration        prometheus.Histogram
	processes           prometheus.Gauge
	trackedReferences   prometheus.Gauge
}

func newSamplerMetrics(reg prometheus.Registerer) *samplerMetrics {
	m := &samplerMetrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "ticks_total",
			Help:      "Sampling passes started",
		}),
		enumerationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "enumeration_failures_total",
			Help:      "Sampling passes that published nothing because the process table or system counters could not be read",
		}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "publish_failures_total",
			Help:      "Snapshots the store refused",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "skipped_processes_total",
			Help:      "Processes left out of a snapshot because they could not be read",
		}, []string{metricLabelReason}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "tick_duration_seconds",
			Help:      "Wall time of one sampling pass",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		processes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "processes",
			Help:      "Processes in the latest published snapshot",
		}),
		trackedReferences: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "cpu_references",
			Help:      "Processes the sampler holds a CPU reference point for",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ticks,
			m.enumerationFailures,
			m.publishFailures,
			m.skipped,
			m.tickDuration,
			m.processes,
			m.trackedReferences,
		)
	}

	return m
}

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

// Package sampler periodically reads the process table and system counters, turns them into an
// immutable snapshot and publishes it to the store.
package sampler

import (
	"context"
	"runtime"
	"time"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	log "github.com/sirupsen/logrus"
)

// ErrEnumeration wraps any failure that prevented a whole pass from producing a snapshot.
var ErrEnumeration = errors.New("enumeration failed")

// Publisher is the write side of the store.
type Publisher interface {
	Publish(snapshot types.Snapshot, point types.SeriesPoint) error
}

// Sampler is the single writer of the store. Run and Tick must not be called concurrently.
type Sampler struct {
	source    hostinfo.Source
	publisher Publisher

	interval      time.Duration
	normalization types.CPUNormalization

	cpu     *cpuTracker
	cores   int
	metrics *samplerMetrics
}

// NewSampler registers the sampler's collectors with reg, which may be nil.
func NewSampler(cfg *config.Config, source hostinfo.Source, publisher Publisher, reg prometheus.Registerer) *Sampler {
	return &Sampler{
		source:        source,
		publisher:     publisher,
		interval:      cfg.SampleInterval,
		normalization: cfg.CPUNormalization,
		cpu:           newCPUTracker(cfg.CPUNormalization),
		metrics:       newSamplerMetrics(reg),
	}
}

// Run samples until ctx is done. A pass that is underway when ctx is cancelled completes and
// publishes before Run returns.
func (s *Sampler) Run(ctx context.Context) {
	log.WithFields(log.Fields{
		"interval":      s.interval,
		"normalization": s.normalization,
	}).Info("Sampler started")
	defer log.Info("Sampler stopped")

	passCtx := context.WithoutCancel(ctx)
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-utils.ChannelOfTimer(timer):
			started := time.Now()
			if err := s.Tick(passCtx); err != nil {
				log.WithError(err).Warn("Sampling pass failed, retrying on next tick")
			}

			// passes never overlap, an overrun starts the next one right away
			next := s.interval - time.Since(started)
			if next < 0 {
				next = 0
			}
			timer.Reset(next)
		}
	}
}

// Tick runs one sampling pass synchronously and publishes its snapshot.
func (s *Sampler) Tick(ctx context.Context) error {
	s.metrics.ticks.Inc()
	started := time.Now()
	defer func() {
		s.metrics.tickDuration.Observe(utils.ScaleFractionalDuration(time.Since(started), time.Second))
	}()

	snapshot, err := s.sample(ctx)
	if err != nil {
		s.metrics.enumerationFailures.Inc()
		return errors.Wrap(ErrEnumeration, err.Error())
	}

	if err := s.publisher.Publish(snapshot, snapshot.Point()); err != nil {
		s.metrics.publishFailures.Inc()
		return errors.Wrap(err, "publishing snapshot")
	}

	s.metrics.processes.Set(float64(len(snapshot.Processes)))
	return nil
}

func (s *Sampler) sample(ctx context.Context) (types.Snapshot, error) {
	pids, err := s.source.ListProcesses(ctx)
	if err != nil {
		return types.Snapshot{}, errors.Wrap(err, "listing processes")
	}

	cpuTimes, err := s.source.SystemCPUTimes(ctx)
	if err != nil {
		return types.Snapshot{}, errors.Wrap(err, "reading system cpu times")
	}

	memory, err := s.source.SystemMemory(ctx)
	if err != nil {
		return types.Snapshot{}, errors.Wrap(err, "reading system memory")
	}

	now := utils.Now()
	cores := s.numCPU(ctx)

	uptime, err := s.source.Uptime(ctx)
	if err != nil {
		log.WithError(err).Debug("Unable to read uptime")
	}

	status := utils.NewStatusLine()
	seen := mapset.NewThreadUnsafeSet()
	processes := make([]types.ProcessRecord, 0, len(pids))
	skipped := 0

	for _, pid := range pids {
		fields, err := s.source.ReadProcess(ctx, pid)
		if err != nil {
			s.skip(pid, err)
			skipped++
			continue
		}

		key := processKey{pid: fields.Pid, createTime: fields.CreateTime}
		seen.Add(key)
		cpuPercent, ready := s.cpu.processPercent(key, fields.CPUTimeSeconds, now, cores)

		processes = append(processes, types.ProcessRecord{
			Pid:           fields.Pid,
			Name:          fields.Name,
			CPUPercent:    cpuPercent,
			CPUReady:      ready,
			MemoryBytes:   fields.MemoryBytes,
			MemoryPercent: memoryPercentOf(fields.MemoryBytes, memory.Total),
			Status:        types.ParseProcessStatus(fields.Status),
			ThreadCount:   fields.ThreadCount,
			CreateTime:    fields.CreateTime,
		})
	}

	pruned := s.cpu.prune(seen)
	s.metrics.trackedReferences.Set(float64(s.cpu.tracked()))

	aggregateCPU, aggregateReady := s.cpu.systemPercent(cpuTimes, cores)

	status.Add("processes", len(processes))
	status.Add("skipped", skipped)
	status.Add("pruned", pruned)
	status.Add("cpu", aggregateCPU)
	status.Add("mem", memory.UsedPercent)
	log.WithField("status", status.String()).Debug("Sampled")

	return types.Snapshot{
		Timestamp:              now,
		Processes:              processes,
		AggregateCPUPercent:    aggregateCPU,
		AggregateCPUReady:      aggregateReady,
		AggregateMemoryPercent: memory.UsedPercent,
		Uptime:                 uptime,
		CPUNormalization:       s.normalization,
	}, nil
}

// memoryPercentOf is resident bytes over the total read once for the whole pass.
func memoryPercentOf(resident, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(resident) * 100 / float64(total)
}

func (s *Sampler) skip(pid int32, err error) {
	logger := log.WithFields(log.Fields{
		"pid": pid,
		"err": err,
	})

	if !hostinfo.IsTransient(err) {
		s.metrics.skipped.WithLabelValues(skipReasonOther).Inc()
		logger.WithField("reason", skipReasonOther).Info("Skipping unreadable process")
		return
	}

	reason := skipReasonDenied
	if errors.Is(err, hostinfo.ErrProcessGone) {
		reason = skipReasonGone
	}
	s.metrics.skipped.WithLabelValues(reason).Inc()
	logger.WithField("reason", reason).Debug("Skipping process")
}

// numCPU caches the first successful reading, the core count does not change under a running sampler.
func (s *Sampler) numCPU(ctx context.Context) int {
	if s.cores > 0 {
		return s.cores
	}

	cores, err := s.source.NumCPU(ctx)
	if err != nil || cores <= 0 {
		log.WithError(err).Debug("Unable to read logical core count, using runtime value")
		return runtime.NumCPU()
	}
	s.cores = cores
	return cores
}

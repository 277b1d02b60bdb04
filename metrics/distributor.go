//
// Copyright 2017 Rackspace
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

package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	log "github.com/sirupsen/logrus"
)

const (
	statsdNamespace   = "procmon."
	serviceCheckName  = "sampler"
	snapshotQueueSize = 100
)

// MetricsDistributor fans published snapshots out to the configured metrics sinks. It is registered
// as an event consumer of the store and never blocks a publish.
type MetricsDistributor struct {
	distributors []metricsDistributorType
	ctx          context.Context
}

type metricsDistributorType interface {
	Start(ctx context.Context) error
	Distribute(snapshot types.Snapshot)
}

func NewMetricsDistributor(ctx context.Context, cfg *config.Config) *MetricsDistributor {
	distributor := &MetricsDistributor{ctx: ctx}

	if cfg.StatsdEndpoint != "" {
		distributor.distributors = append(distributor.distributors, newStatsdDistributor(cfg.StatsdEndpoint, cfg.Guid))
	}

	return distributor
}

// Enabled reports whether any sink is configured.
func (md *MetricsDistributor) Enabled() bool {
	return len(md.distributors) > 0
}

func (md *MetricsDistributor) Start() {
	for _, d := range md.distributors {
		err := d.Start(md.ctx)
		if err != nil {
			log.WithError(err).WithField("type", d).Warn("Failed to start distributor type")
		}
	}
}

func (md *MetricsDistributor) Distribute(snapshot types.Snapshot) {
	for _, d := range md.distributors {
		d.Distribute(snapshot)
	}
}

// HandleEvent consumes the store's published events.
func (md *MetricsDistributor) HandleEvent(evt utils.Event) error {
	if evt.Type() != store.EventTypePublished {
		return nil
	}
	snapshot, ok := evt.Target().(types.Snapshot)
	if !ok {
		return fmt.Errorf("unexpected %s event target %T", evt.Type(), evt.Target())
	}
	md.Distribute(snapshot)
	return nil
}

type statsdDistributor struct {
	statsdEndpoint string
	instanceId     string
	snapshots      chan types.Snapshot
	statsdClient   *statsd.Client
}

func newStatsdDistributor(statsdEndpoint string, instanceId string) *statsdDistributor {
	return &statsdDistributor{
		statsdEndpoint: statsdEndpoint,
		instanceId:     instanceId,
		snapshots:      make(chan types.Snapshot, snapshotQueueSize),
	}
}

func (d *statsdDistributor) String() string {
	return fmt.Sprintf("statsdDistributor[endpoint=%s]", d.statsdEndpoint)
}

func (d *statsdDistributor) Start(ctx context.Context) error {
	var err error
	d.statsdClient, err = statsd.New(d.statsdEndpoint, statsd.WithNamespace(statsdNamespace))
	if err != nil {
		return err
	}

	log.WithField("endpoint", d.statsdEndpoint).Info("Using statsd metrics distribution type")

	go d.run(ctx)

	return nil
}

// Distribute drops the snapshot when the sender has fallen behind.
func (d *statsdDistributor) Distribute(snapshot types.Snapshot) {
	select {
	case d.snapshots <- snapshot:
	default:
		log.WithField("generation", snapshot.Generation).Debug("Statsd queue full, dropping snapshot")
	}
}

func (d *statsdDistributor) run(ctx context.Context) {
	defer d.statsdClient.Close()

	for {
		select {
		case snapshot := <-d.snapshots:
			d.sendToStatsd(snapshot)

		case <-ctx.Done():
			return
		}
	}
}

func (d *statsdDistributor) tags(snapshot types.Snapshot) []string {
	tags := []string{
		"instance:" + d.instanceId,
		"normalization:" + string(snapshot.CPUNormalization),
	}

	hostname, hostnameErr := os.Hostname()
	if hostnameErr != nil {
		log.WithError(hostnameErr).Warn("Unable to identify our own hostname")
	} else {
		tags = append(tags, "host:"+hostname)
	}
	return tags
}

func (d *statsdDistributor) sendToStatsd(snapshot types.Snapshot) {
	tags := d.tags(snapshot)

	gauges := map[string]float64{
		"memory_percent": snapshot.AggregateMemoryPercent,
		"processes":      float64(len(snapshot.Processes)),
		"uptime_seconds": utils.ScaleFractionalDuration(snapshot.Uptime, time.Second),
	}
	// an unready rate is a placeholder 0, not a measurement
	if snapshot.AggregateCPUReady {
		gauges["cpu_percent"] = snapshot.AggregateCPUPercent
	}

	for name, value := range gauges {
		log.WithField("metric", name).Debug("Sending metric to statsd")
		if err := d.statsdClient.Gauge(name, value, tags, 1); err != nil {
			log.WithError(err).WithField("metric", name).Debug("Failed to send metric to statsd")
		}
	}

	serviceCheck := statsd.NewServiceCheck(serviceCheckName, statsd.Ok)
	serviceCheck.Message = fmt.Sprintf("generation %d", snapshot.Generation)
	serviceCheck.Tags = tags
	log.WithField("service", serviceCheckName).Debug("Sending service check to statsd")
	if err := d.statsdClient.ServiceCheck(serviceCheck); err != nil {
		log.WithError(err).Debug("Failed to send service check to statsd")
	}
}

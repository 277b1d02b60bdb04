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

// Package metrics carries the sampler's own metrics off the host: a Prometheus registry that is
// exposed on the query endpoint and optionally pushed to a gateway, and statsd distribution of
// every published snapshot.
package metrics

import (
	"context"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPrometheusPushGatewayPort = "9091"
	prometheusService                = "prometheus"
	prometheusProto                  = "tcp"
)

var (
	// PushInterval is how often the registry is pushed to the gateway
	PushInterval = 10 * time.Second

	lookupSRV = net.LookupSRV
)

// NewRegistry returns a registry that already carries the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// StartMetricsPusher pushes gatherer to the gateway named by cfg.PrometheusUri until ctx is done.
// It does nothing when no URI is configured.
func StartMetricsPusher(ctx context.Context, cfg *config.Config, gatherer prometheus.Gatherer) {
	if cfg.PrometheusUri == "" {
		return
	}
	go runMetricsPusher(ctx, cfg, gatherer)
}

func runMetricsPusher(ctx context.Context, cfg *config.Config, gatherer prometheus.Gatherer) {
	log.Debug("Metrics pusher waiting to start...")
	defer log.Debug("Metric pusher exiting")

	gateway, err := resolveGateway(cfg.PrometheusUri)
	if err != nil {
		log.WithFields(log.Fields{
			"err": err,
			"uri": cfg.PrometheusUri,
		}).Warn("Failed to resolve Prometheus gateway, metrics will not be pushed")
		return
	}

	log.WithField("gateway", gateway).Info("Pushing metrics to Prometheus gateway")
	groupings := buildGroupings(cfg)

	ticker := time.NewTicker(PushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if err := pushPrometheusMetrics(cfg, gateway, groupings, gatherer); err != nil {
				log.WithFields(log.Fields{
					"err":     err,
					"gateway": gateway,
				}).Warn("Failed to push metrics to Prometheus gateway")
			}
		}
	}
}

// resolveGateway turns tcp://host[:port] or srv://domain into a gateway URL.
func resolveGateway(uri string) (string, error) {
	gatewayUri, err := url.Parse(uri)
	if err != nil {
		return "", errors.Wrap(err, "parsing gateway URI")
	}

	switch gatewayUri.Scheme {
	case "srv":
		_, addrs, err := lookupSRV(prometheusService, prometheusProto, gatewayUri.Hostname())
		if err != nil {
			return "", errors.Wrap(err, "resolving gateway service")
		}
		if len(addrs) == 0 {
			return "", errors.Errorf("no addresses resolved for %s", gatewayUri.Hostname())
		}
		return "http://" + net.JoinHostPort(addrs[0].Target, strconv.Itoa(int(addrs[0].Port))), nil

	case "tcp", "http":
		port := gatewayUri.Port()
		if port == "" {
			port = defaultPrometheusPushGatewayPort
		}
		return "http://" + net.JoinHostPort(gatewayUri.Hostname(), port), nil

	default:
		return "", errors.Errorf("unsupported gateway URI scheme '%s'", gatewayUri.Scheme)
	}
}

func buildGroupings(cfg *config.Config) map[string]string {
	groupings := map[string]string{
		"instance": cfg.Guid,
	}
	hostname, err := os.Hostname()
	if err == nil {
		groupings["hostname"] = hostname
	} else {
		log.WithField("err", err).Debug("Failed to get our hostname")
	}
	return groupings
}

func pushPrometheusMetrics(cfg *config.Config, gateway string, groupings map[string]string, gatherer prometheus.Gatherer) error {
	pusher := push.New(gateway, cfg.AgentName).Gatherer(gatherer)
	for name, value := range groupings {
		pusher = pusher.Grouping(name, value)
	}
	return pusher.Push()
}

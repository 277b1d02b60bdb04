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

// serve
package commands

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/metrics"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/sampler"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFilePath string
	serveFlags     struct {
		interval      time.Duration
		capacity      int
		normalization string
		listen        string
	}
	ServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start sampling and serve the query endpoint",
		Long:  "Start sampling processes on a fixed cadence, retain the rolling history and serve it over HTTP",
		Run:   serveCmdRun,
	}
)

func init() {
	ServeCmd.Flags().StringVar(&configFilePath, "config", "",
		"Path to a file containing the config, such as "+config.DefaultConfigPathLinux+". Defaults to $"+config.EnvConfigPath)
	ServeCmd.Flags().DurationVar(&serveFlags.interval, "interval", config.DefaultSampleInterval, "Sampling interval")
	ServeCmd.Flags().IntVar(&serveFlags.capacity, "capacity", config.DefaultSeriesCapacity, "Number of aggregate points retained")
	ServeCmd.Flags().StringVar(&serveFlags.normalization, "cpu-normalization", string(config.DefaultCPUNormalization),
		"How CPU percentages are scaled, system or per_core")
	ServeCmd.Flags().StringVar(&serveFlags.listen, "listen", config.DefaultListenAddress, "Address of the query endpoint")
}

func serveCmdRun(cmd *cobra.Command, args []string) {
	guid := uuid.NewV4()
	cfg, err := loadServeConfig(cmd, guid.String())
	if err != nil {
		utils.Die(err, "Failed to load configuration")
	}
	log.WithField("guid", guid).Info("Assigned unique identifier")

	utils.CheckFDLimit()

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		utils.Die(err, "Failed to bind query endpoint")
	}

	ctx, cancel := context.WithCancel(context.Background())
	signalNotify := utils.HandleInterrupts()
	go func() {
		<-signalNotify
		log.Info("Shutdown...")
		cancel()
	}()

	if err := Serve(ctx, cfg, hostinfo.NewHostSource(), listener); err != nil {
		log.WithError(err).Error("Query endpoint failed")
		cancel()
		utils.Exit(1)
	}
}

// loadServeConfig layers defaults, then the config file, then any flag given explicitly.
func loadServeConfig(cmd *cobra.Command, guid string) (*config.Config, error) {
	cfg := config.NewConfig(guid)

	path := configFilePath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.SampleInterval = serveFlags.interval
	}
	if flags.Changed("capacity") {
		cfg.SeriesCapacity = serveFlags.capacity
	}
	if flags.Changed("cpu-normalization") {
		if err := cfg.ParseFields([]string{"cpu_normalization", serveFlags.normalization}); err != nil {
			return nil, err
		}
	}
	if flags.Changed("listen") {
		cfg.ListenAddress = serveFlags.listen
	}

	return cfg, cfg.Validate()
}

// Serve runs the sampler and the query endpoint on listener until ctx is done. The sampler finishes
// its current pass before Serve returns.
func Serve(ctx context.Context, cfg *config.Config, source hostinfo.Source, listener net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, err := store.NewStore(cfg.SeriesCapacity, source)
	if err != nil {
		return errors.Wrap(err, "creating store")
	}

	registry := metrics.NewRegistry()
	metrics.StartMetricsPusher(ctx, cfg, registry)

	distributor := metrics.NewMetricsDistributor(ctx, cfg)
	if distributor.Enabled() {
		distributor.Start()
		st.RegisterEventConsumer(distributor)
	}

	s := sampler.NewSampler(cfg, source, st, registry)
	samplerDone := make(chan struct{})
	go func() {
		defer close(samplerDone)
		s.Run(ctx)
	}()

	log.WithFields(log.Fields{
		"interval": cfg.SampleInterval,
		"points":   st.Capacity(),
		"window":   cfg.SeriesWindow(),
	}).Info("Retaining aggregate history")

	server := endpoint.NewServer(query.NewStoreQuery(st), registry)
	err = server.Serve(ctx, listener)

	cancel()
	<-samplerDone
	return err
}

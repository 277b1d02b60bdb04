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
	"context"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/hostinfo"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/protocol"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/sampler"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/store"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	"github.com/spf13/cobra"
)

var (
	snapshotFlags struct {
		local         bool
		interval      time.Duration
		normalization string
	}
	SnapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Print one snapshot as JSON",
		Long:  "Print the current snapshot of a running procmon, or sample this host directly with --local",
		Run: func(cmd *cobra.Command, args []string) {
			var snap types.Snapshot
			var err error
			if snapshotFlags.local {
				snap, err = sampleLocally(context.Background(), hostinfo.NewHostSource())
			} else {
				snap, err = endpoint.NewClient(endpointAddress).CurrentSnapshot(context.Background())
			}

			if errors.Is(err, query.ErrUnavailable) {
				utils.Die(err, "The endpoint has not sampled yet")
			} else if err != nil {
				utils.Die(err, "Failed to get snapshot")
			}

			if err := writeSnapshotJson(os.Stdout, snap); err != nil {
				utils.Die(err, "Failed to format snapshot")
			}
		},
	}
)

func init() {
	SnapshotCmd.Flags().StringVar(&endpointAddress, "address", config.DefaultListenAddress, "Address of the query endpoint")
	SnapshotCmd.Flags().BoolVar(&snapshotFlags.local, "local", false, "Sample this host instead of querying an endpoint")
	SnapshotCmd.Flags().DurationVar(&snapshotFlags.interval, "interval", time.Second,
		"With --local, the time between the two passes CPU rates are measured over")
	SnapshotCmd.Flags().StringVar(&snapshotFlags.normalization, "cpu-normalization", string(config.DefaultCPUNormalization),
		"With --local, how CPU percentages are scaled, system or per_core")
}

// sampleLocally runs two passes so the second one carries CPU rates.
func sampleLocally(ctx context.Context, source hostinfo.Source) (types.Snapshot, error) {
	cfg := config.NewConfig("")
	cfg.SampleInterval = snapshotFlags.interval
	if err := cfg.ParseFields([]string{"cpu_normalization", snapshotFlags.normalization}); err != nil {
		return types.Snapshot{}, err
	}
	if err := cfg.Validate(); err != nil {
		return types.Snapshot{}, err
	}

	st, err := store.NewStore(1, source)
	if err != nil {
		return types.Snapshot{}, err
	}
	s := sampler.NewSampler(cfg, source, st, nil)

	if err := s.Tick(ctx); err != nil {
		return types.Snapshot{}, err
	}
	select {
	case <-ctx.Done():
		return types.Snapshot{}, ctx.Err()
	case <-time.After(cfg.SampleInterval):
	}
	if err := s.Tick(ctx); err != nil {
		return types.Snapshot{}, err
	}

	snap, ok := st.Current()
	if !ok {
		return types.Snapshot{}, query.ErrUnavailable
	}
	return snap, nil
}

func writeSnapshotJson(w io.Writer, snap types.Snapshot) error {
	prettyJson := json.NewEncoder(w)
	prettyJson.SetIndent("", "  ")
	return prettyJson.Encode(protocol.NewSnapshotResult(snap))
}

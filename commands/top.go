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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	endpointAddress string
	topFlags        struct {
		count   int
		sortBy  string
		refresh time.Duration
		once    bool
	}
	TopCmd = &cobra.Command{
		Use:   "top",
		Short: "Show the busiest processes of a running procmon",
		Long:  "Continuously render the current snapshot and aggregate history served by 'procmon serve'",
		Run:   topCmdRun,
	}
)

func init() {
	TopCmd.Flags().StringVar(&endpointAddress, "address", config.DefaultListenAddress, "Address of the query endpoint")
	TopCmd.Flags().IntVarP(&topFlags.count, "count", "n", 20, "Number of processes to show")
	TopCmd.Flags().StringVar(&topFlags.sortBy, "sort", string(query.SortByCPU), "Sort by cpu or memory")
	TopCmd.Flags().DurationVar(&topFlags.refresh, "refresh", config.DefaultSampleInterval, "Refresh interval")
	TopCmd.Flags().BoolVar(&topFlags.once, "once", false, "Render once and exit")
}

func topCmdRun(cmd *cobra.Command, args []string) {
	sortBy, err := query.ParseSortBy(topFlags.sortBy)
	if err != nil {
		utils.Die(err, "Invalid 'sort' value")
	}

	client := endpoint.NewClient(endpointAddress)
	if topFlags.once {
		view := &topView{client: client, count: topFlags.count, sortBy: sortBy}
		if err := view.refresh(context.Background(), os.Stdout); err != nil {
			utils.Die(err, "Failed to query "+endpointAddress)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalNotify := utils.HandleInterrupts()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		fmt.Print("\033[?1049h\033[?25l")
		defer fmt.Print("\033[?25h\033[?1049l")
	}

	view := &topView{client: client, count: topFlags.count, sortBy: sortBy}
	ticker := time.NewTicker(topFlags.refresh)
	defer ticker.Stop()

	for {
		if interactive {
			fmt.Print("\033[H\033[2J")
		}
		if err := view.refresh(ctx, os.Stdout); err != nil {
			log.WithError(err).Warn("Failed to refresh")
		}

		select {
		case <-signalNotify:
			return
		case <-ticker.C:
		}
	}
}

// topView keeps the last good reading, so a failed refresh re-renders it instead of blanking the screen.
type topView struct {
	client *endpoint.Client
	count  int
	sortBy query.SortBy

	last       *types.Snapshot
	lastTop    []types.ProcessRecord
	lastSeries []types.SeriesPoint
}

func (v *topView) refresh(ctx context.Context, w io.Writer) error {
	err := v.fetch(ctx)

	switch {
	case v.last != nil:
		if renderErr := renderDashboard(w, *v.last, v.lastTop, v.lastSeries); renderErr != nil {
			return renderErr
		}
		if err != nil {
			fmt.Fprintf(w, "(stale, last update %s)\n", v.last.Timestamp.Format(time.RFC1123))
		}
	case errors.Is(err, query.ErrUnavailable):
		fmt.Fprintln(w, dashboardTitle)
		fmt.Fprintln(w, "No data yet, waiting for the first sample...")
		return nil
	}
	return err
}

func (v *topView) fetch(ctx context.Context) error {
	snap, series, err := v.client.Dashboard(ctx)
	if err != nil {
		return err
	}

	v.last = &snap
	v.lastTop = query.TopOf(snap.Processes, v.count, v.sortBy)
	v.lastSeries = series
	return nil
}

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
	"strconv"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/config"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/endpoint"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/utils"
	"github.com/spf13/cobra"
)

var (
	KillCmd = &cobra.Command{
		Use:   "kill PID",
		Short: "Ask a running procmon to terminate a process",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pid, err := parsePid(args[0])
			if err != nil {
				utils.Die(err, "Invalid pid")
			}

			outcome, err := endpoint.NewClient(endpointAddress).KillProcess(context.Background(), pid)
			if err != nil {
				utils.Die(err, "Failed to request termination")
			}

			fmt.Fprintln(cmd.OutOrStdout(), describeOutcome(pid, outcome))
			if outcome != types.Terminated {
				utils.Exit(1)
			}
		},
	}
)

func init() {
	KillCmd.Flags().StringVar(&endpointAddress, "address", config.DefaultListenAddress, "Address of the query endpoint")
}

func parsePid(raw string) (int32, error) {
	pid, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if pid <= 0 {
		return 0, errors.Errorf("pid must be positive, got %d", pid)
	}
	return int32(pid), nil
}

func describeOutcome(pid int32, outcome types.TerminationOutcome) string {
	switch outcome {
	case types.Terminated:
		return fmt.Sprintf("Sent termination signal to %d", pid)
	case types.NotFound:
		return fmt.Sprintf("No process %d", pid)
	case types.AccessDenied:
		return fmt.Sprintf("Not permitted to terminate %d", pid)
	default:
		return fmt.Sprintf("%d: %s", pid, outcome)
	}
}

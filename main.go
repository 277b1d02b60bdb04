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

package main

import (
	"os"
	"time"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/commands"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

var (
	procmonCmd = &cobra.Command{
		Use:   "procmon",
		Short: "Real-time process sampling and monitoring",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initEnv()
		},
	}
	globalFlags struct {
		Debug bool
	}
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC1123,
	})
	log.SetOutput(os.Stderr)
	procmonCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "Enable debug")
}

func initEnv() {
	if globalFlags.Debug {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	procmonCmd.AddCommand(commands.ServeCmd)
	procmonCmd.AddCommand(commands.SnapshotCmd)
	procmonCmd.AddCommand(commands.TopCmd)
	procmonCmd.AddCommand(commands.KillCmd)
	if err := procmonCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

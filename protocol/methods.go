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

package protocol

const (
	// PathSnapshot is GET, answered with SnapshotResult or 204 before the first sample
	PathSnapshot = "/api/v1/snapshot"
	// PathSeries is GET, answered with SeriesResult
	PathSeries = "/api/v1/series"
	// PathDashboard is GET, answered with a DashboardResult whose snapshot and series come from the same publish
	PathDashboard = "/api/v1/dashboard"
	// PathTopProcesses is GET with optional n and sort query parameters, answered with TopResult
	PathTopProcesses = "/api/v1/processes/top"
	// PathProcess is DELETE to request termination, answered with KillResult
	PathProcess = "/api/v1/processes/{pid}"
	// PathMetrics is the Prometheus exposition of the sampler's own metrics
	PathMetrics = "/metrics"

	ParamPid    = "pid"
	ParamTopN   = "n"
	ParamSortBy = "sort"
)

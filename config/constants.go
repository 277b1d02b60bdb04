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

// Constants
package config

import (
	"time"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
)

const (
	DefaultConfigPathLinux = "/etc/procmon.cfg"

	DefaultSampleInterval   = 2 * time.Second
	DefaultSeriesCapacity   = 50
	DefaultCPUNormalization = types.NormalizeSystem
	DefaultListenAddress    = "127.0.0.1:8050"
	DefaultAgentName        = "procmon"

	EnvConfigPath = "PROCMON_CONFIG"
)

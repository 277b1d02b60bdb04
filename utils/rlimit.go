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

//go:build !windows

package utils

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const (
	// FdMin covers one /proc read per process on busy hosts plus the query listener.
	FdMin = 4096
)

// CheckFDLimit warns when the open file limit is low enough that a sampling pass over a large
// process table could run out of descriptors.
func CheckFDLimit() {
	rlimit := &unix.Rlimit{}
	err := unix.Getrlimit(unix.RLIMIT_NOFILE, rlimit)
	if err == nil && rlimit.Cur < FdMin {
		log.Warnf("File descriptor limit %d is low for hosts with large process tables. "+
			"At least %d is recommended. Fix with \"ulimit -n %d\".", rlimit.Cur, FdMin, FdMin)
	}
}

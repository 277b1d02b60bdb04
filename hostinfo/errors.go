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

package hostinfo

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
)

// classifyProcessError maps the many shapes of "the process went away" and "not allowed" onto
// ErrProcessGone and ErrAccessDenied. Anything else is returned wrapped but unclassified.
func classifyProcessError(ctx context.Context, pid int32, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrPermission):
		return errors.Wrapf(ErrAccessDenied, "pid %d: %v", pid, err)
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrProcessDone),
		isNoSuchProcess(err):
		return errors.Wrapf(ErrProcessGone, "pid %d: %v", pid, err)
	}

	if exists, existsErr := process.PidExistsWithContext(ctx, pid); existsErr == nil && !exists {
		return errors.Wrapf(ErrProcessGone, "pid %d: %v", pid, err)
	}

	return errors.Wrapf(err, "pid %d", pid)
}

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

package utils

import (
	"time"
)

type NowFunc func() time.Time

// Now is the clock used for sampling timestamps.
var Now NowFunc = time.Now

// InstallAlternateNowFunc is intended for unit testing where a deterministic clock needs to be
// temporarily enabled. Be sure to defer re-invoke this function to re-install the prior one.
func InstallAlternateNowFunc(newFunc NowFunc) (priorFunc NowFunc) {
	priorFunc = Now
	Now = newFunc
	return
}

// TimestampMillis converts to the milliseconds-since-epoch form used on the wire. The zero time maps to 0.
func TimestampMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

func FromTimestampMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.Unix(0, ms*int64(time.Millisecond))
}

// ScaleFractionalDuration is primarily useful when scaling durations that are "sub second", but more generally
// it's when duration is smaller than targetUnits. In that case, a fractional value is much more meangingful than
// a 0, which is what would happen with plain duration (i.e. integer) division. targetUnits should really be
// one of the Duration constants, such as time.Second.
func ScaleFractionalDuration(duration time.Duration, targetUnits time.Duration) float64 {
	return float64(duration) / float64(targetUnits)
}

// ChannelOfTimer is a nil-safe channel getter which becomes useful when needing to "select on a timer" that
// may not always be activated.
func ChannelOfTimer(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	} else {
		return timer.C
	}
}

// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runtime meters wall-clock duration for saturation benchmarks,
// carried over unchanged in shape from tools/benchmark/runtime: the
// timing harness has no badwolf-specific type in it, so inferray's
// batteries drive it against Load/Process instead of BQL query
// execution.
package runtime

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

var timeNow = time.Now

// TrackDuration measures the wall-clock duration of f.
func TrackDuration(f func() error) (time.Duration, error) {
	start := timeNow()
	err := f()
	return timeNow().Sub(start), err
}

// RepetitionStats runs f reps times, bracketed by setup/teardown each
// time, and returns the mean and standard deviation of its duration.
func RepetitionStats(reps int, setup, f, teardown func() error) (mean, stddev time.Duration, err error) {
	if reps < 1 {
		return 0, 0, fmt.Errorf("runtime.RepetitionStats: reps must be >= 1, got %d", reps)
	}
	if setup == nil || f == nil || teardown == nil {
		return 0, 0, errors.New("runtime.RepetitionStats: setup, f, and teardown are all required")
	}

	durations := make([]time.Duration, 0, reps)
	for i := 0; i < reps; i++ {
		if err := setup(); err != nil {
			return 0, 0, err
		}
		d, err := TrackDuration(f)
		if err != nil {
			return 0, 0, err
		}
		durations = append(durations, d)
		if err := teardown(); err != nil {
			return 0, 0, err
		}
	}

	var sum int64
	for _, d := range durations {
		sum += int64(d)
	}
	meanNanos := sum / int64(len(durations))

	var sqDiff float64
	for _, d := range durations {
		diff := float64(int64(d) - meanNanos)
		sqDiff += diff * diff
	}
	stddevNanos := math.Sqrt(sqDiff / float64(len(durations)))

	return time.Duration(meanNanos), time.Duration(stddevNanos), nil
}

// Entry is one benchmark to run: a battery/case id, the triple count it
// exercises, a repetition count, and the setup/run/teardown trio.
type Entry struct {
	BatteryID string
	ID        string
	Triples   int
	Reps      int
	Setup     func() error
	Run       func() error
	TearDown  func() error
}

// Result is the timing outcome of running one Entry.
type Result struct {
	BatteryID string
	ID        string
	Triples   int
	Err       error
	Mean      time.Duration
	StdDev    time.Duration
}

// RunSequentially runs every entry one after another.
func RunSequentially(entries []*Entry) []*Result {
	res := make([]*Result, 0, len(entries))
	for _, e := range entries {
		mean, dev, err := RepetitionStats(e.Reps, e.Setup, e.Run, e.TearDown)
		res = append(res, &Result{BatteryID: e.BatteryID, ID: e.ID, Triples: e.Triples, Err: err, Mean: mean, StdDev: dev})
	}
	return res
}

// RunConcurrently runs every entry in its own goroutine and waits for all
// of them to finish.
func RunConcurrently(entries []*Entry) []*Result {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		res []*Result
	)
	for _, e := range entries {
		wg.Add(1)
		go func(e *Entry) {
			defer wg.Done()
			mean, dev, err := RepetitionStats(e.Reps, e.Setup, e.Run, e.TearDown)
			mu.Lock()
			defer mu.Unlock()
			res = append(res, &Result{BatteryID: e.BatteryID, ID: e.ID, Triples: e.Triples, Err: err, Mean: mean, StdDev: dev})
		}(e)
	}
	wg.Wait()
	return res
}

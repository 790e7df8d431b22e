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

// Package fileio contains the line-processing helper the load vCli command
// reads its input with, adapted from tools/vcli/bw/io.
package fileio

import (
	"bufio"
	"os"
	"strings"
)

// ProcessLines reads path one line at a time, skipping blank lines and
// lines starting with #, and invokes fp on each remaining line. It
// returns the number of lines scanned and the first error fp returns, if
// any.
func ProcessLines(path string, fp func(line string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	cnt := 0
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		cnt++
		if len(l) == 0 || strings.HasPrefix(l, "#") {
			continue
		}
		if err := fp(l); err != nil {
			return cnt, err
		}
	}
	return cnt, scanner.Err()
}

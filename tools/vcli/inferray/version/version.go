// Copyright 2015 Google Inc. All rights reserved.
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

// Package version contains the command that prints the inferray vCli
// version.
package version

import (
	"fmt"
	"os"

	"github.com/google/inferray/tools/vcli/inferray/command"
)

// Major, Minor, Patch, and Release identify this build of the inferray
// vCli tool.
const (
	Major   = 0
	Minor   = 1
	Patch   = 0
	Release = "alpha"
)

// New creates the version command.
func New() *command.Command {
	return &command.Command{
		Run: func(args []string) int {
			fmt.Fprintf(os.Stderr, "inferray vCli (%d.%d.%d-%s)\n", Major, Minor, Patch, Release)
			return 0
		},
		UsageLine: "version",
		Short:     "prints the current version.",
		Long:      "Prints the current version of the inferray command line tool.",
	}
}

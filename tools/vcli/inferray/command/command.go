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

// Package command holds the shared Command type every inferray vCli
// subcommand implements. Modeled after the go tool's own command
// registry, the same shape tools/vcli/bw/command.go uses.
package command

import (
	"fmt"
	"os"
	"strings"
)

// Command is a runnable inferray vCli subcommand.
type Command struct {
	// Run runs the command. args is the full command line (os.Args), so
	// args[1] is the command name and its own arguments start at args[2].
	// Run returns the process exit code.
	Run func(args []string) int

	// UsageLine is the one-line usage message; its first word is the name.
	UsageLine string

	// Short is the one-line description shown in `inferray help`.
	Short string

	// Long is the full description shown in `inferray help <command>`.
	Long string
}

// Name returns the command's name: the first word of UsageLine.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// Usage prints the command's usage and returns the exit code for it.
func (c *Command) Usage() int {
	fmt.Fprintf(os.Stderr, "usage:\n\n\t$ inferray %s\n\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "%s\n", strings.TrimSpace(c.Long))
	return 0
}

// Runnable reports whether the command can be run.
func (c *Command) Runnable() bool { return c.Run != nil }

// Copyright 2023 Linkall Inc.
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

// trevnictl is a command line application that inspects trevni files.
package main

import (
	// standard libraries.
	"fmt"
	"os"

	// third-party libraries.
	"github.com/spf13/cobra"

	// this project.
	"github.com/linkall-labs/trevni/trevnictl/command"
)

const (
	cliName        = "trevnictl"
	cliDescription = "the command-line tool for trevni files"
)

var (
	globalFlags = command.GlobalFlags{}
	rootCmd     = &cobra.Command{
		Use:               cliName,
		Short:             cliDescription,
		SilenceUsage:      true,
		PersistentPreRun:  command.PreRun,
		PersistentPostRun: command.PostRun,
	}
)

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigFile, "config", "",
		"the configuration file of trevnictl")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Format, "format", "table", "the output format: table or json")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.ShowMetrics, "show-metrics", false,
		"print the input counters after the command")

	rootCmd.AddCommand(
		command.NewDescribeCommand(),
		command.NewMetaCommand(),
		newVersionCommand(),
	)
}

func main() {
	MustStart()
}

func Start() error {
	return rootCmd.Execute()
}

func MustStart() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "trevnictl error: %s\n", err)
		os.Exit(-1)
	}
}

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

package command

import (
	// standard libraries.
	"strings"

	// third-party libraries.
	"github.com/spf13/cobra"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/log"
	"github.com/linkall-labs/trevni/observability/metrics"

	// this project.
	"github.com/linkall-labs/trevni/internal/store"
)

const (
	FormatJSON = "json"
)

type GlobalFlags struct {
	ConfigFile  string
	Debug       bool
	Format      string
	ShowMetrics bool
}

// PreRun registers the input counters for every sub-command.
func PreRun(_ *cobra.Command, _ []string) {
	metrics.RegisterInputMetrics()
}

// PostRun prints the input counters when --show-metrics is set.
func PostRun(cmd *cobra.Command, _ []string) {
	if show, _ := cmd.Flags().GetBool("show-metrics"); show {
		printMetrics(cmd)
	}
}

func mustLoadConfig(cmd *cobra.Command) *store.Config {
	filename, err := cmd.Flags().GetString("config")
	if err != nil {
		cmdFailedf(cmd, "get config file failed: %s", err)
	}
	cfg, err := store.InitConfig(filename)
	if err != nil {
		cmdFailedf(cmd, "load config failed: %s", err)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		log.SetLogLevel("debug")
	}
	return cfg
}

func IsFormatJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetString("format")
	if err != nil {
		return false
	}
	return strings.ToLower(v) == FormatJSON
}

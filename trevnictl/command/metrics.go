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
	"sort"
	"strings"

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

const metricsPrefix = "trevni_"

type sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

func printMetrics(cmd *cobra.Command) {
	samples, err := collectSamples(prometheus.DefaultGatherer)
	if err != nil {
		cmdFailedf(cmd, "gather metrics failed: %s", err)
	}

	if IsFormatJSON(cmd) {
		if err = printJSON(samples); err != nil {
			cmdFailedf(cmd, "encode json failed: %s", err)
		}
		return
	}

	t := newTable()
	t.SetTitle("Metrics")
	t.AppendHeader(table.Row{"Name", "Labels", "Value"})
	for _, s := range samples {
		t.AppendRow(table.Row{s.Name, formatLabels(s.Labels), s.Value})
	}
	t.Render()
}

func collectSamples(g prometheus.Gatherer) ([]sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricsPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := sample{
				Name:  mf.GetName(),
				Value: metricValue(m),
			}
			for _, lp := range m.GetLabel() {
				if s.Labels == nil {
					s.Labels = make(map[string]string)
				}
				s.Labels[lp.GetName()] = lp.GetValue()
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

func metricValue(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	case m.GetUntyped() != nil:
		return m.GetUntyped().GetValue()
	}
	return 0
}

func formatLabels(labels map[string]string) string {
	pairs := make([]string, 0, len(labels))
	for k, v := range labels {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

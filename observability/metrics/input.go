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

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	moduleOfInput = "input"

	InputRefillCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfInput,
		Name:      "refill_count",
		Help:      "Total buffer refills from the underlying source",
	})

	InputSourceReadBytesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfInput,
		Name:      "source_read_bytes",
		Help:      "Total bytes pulled from the underlying source",
	})

	InputSeekCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfInput,
		Name:      "seek_count",
		Help:      "Total seeks, by whether they were served inside the buffer",
	}, []string{LabelSeekKind})
)

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

import (
	// standard libraries.
	"sync"

	// third-party libraries.
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "trevni"

	LabelSeekKind = "kind"

	SeekKindBuffer = "buffer"
	SeekKindSource = "source"
)

var registerInputOnce sync.Once

func RegisterInputMetrics() {
	registerInputOnce.Do(func() {
		prometheus.MustRegister(InputRefillCounter)
		prometheus.MustRegister(InputSourceReadBytesCounter)
		prometheus.MustRegister(InputSeekCounterVec)
	})
}

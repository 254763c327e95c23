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
	"testing"

	// third-party libraries.
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegisterInputMetrics(t *testing.T) {
	Convey("register input metrics", t, func() {
		So(RegisterInputMetrics, ShouldNotPanic)
		So(RegisterInputMetrics, ShouldNotPanic)

		before := testutil.ToFloat64(InputSeekCounterVec.WithLabelValues(SeekKindBuffer))
		InputSeekCounterVec.WithLabelValues(SeekKindBuffer).Inc()
		So(testutil.ToFloat64(InputSeekCounterVec.WithLabelValues(SeekKindBuffer)), ShouldEqual, before+1)

		families, err := prometheus.DefaultGatherer.Gather()
		So(err, ShouldBeNil)
		names := make(map[string]bool)
		for _, mf := range families {
			names[mf.GetName()] = true
		}
		So(names["trevni_input_refill_count"], ShouldBeTrue)
		So(names["trevni_input_source_read_bytes"], ShouldBeTrue)
	})
}

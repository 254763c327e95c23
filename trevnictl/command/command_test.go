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
	"testing"

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/meta"
)

func TestCollectSamples(t *testing.T) {
	Convey("test collect samples", t, func() {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "trevni_test_count"})
		vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "trevni_test_seek"}, []string{"kind"})
		other := prometheus.NewGauge(prometheus.GaugeOpts{Name: "other_gauge"})
		reg.MustRegister(counter, vec, other)

		counter.Add(3)
		vec.WithLabelValues("buffer").Inc()
		other.Set(1)

		samples, err := collectSamples(reg)
		So(err, ShouldBeNil)
		So(samples, ShouldResemble, []sample{
			{Name: "trevni_test_count", Value: 3},
			{Name: "trevni_test_seek", Labels: map[string]string{"kind": "buffer"}, Value: 1},
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("test output formatting", t, func() {
		So(formatLabels(map[string]string{"b": "2", "a": "1"}), ShouldEqual, "a=1,b=2")
		So(formatLabels(nil), ShouldEqual, "")

		So(formatValue([]byte("text")), ShouldEqual, "text")
		So(formatValue([]byte{0xff, 0x01}), ShouldEqual, "0xff01")

		m := meta.New()
		So(m.SetString("k", "v"), ShouldBeNil)
		So(m.Set("b", []byte{0xfe}), ShouldBeNil)
		So(metaRows(m), ShouldResemble, []table.Row{{"k", "v"}, {"b", "0xfe"}})
	})
}

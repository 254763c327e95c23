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

package log

import (
	// standard libraries.
	"bytes"
	"context"
	"os"
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("default logger", t, func() {
		var buf bytes.Buffer
		SetLogWriter(&buf)
		defer SetLogWriter(os.Stderr)

		Convey("filter by level", func() {
			SetLogLevel("warn")
			Info(context.Background(), "hidden", map[string]interface{}{KeyPath: "a.trv"})
			So(buf.Len(), ShouldEqual, 0)

			Warning(context.Background(), "shown", map[string]interface{}{KeyPath: "a.trv"})
			So(buf.String(), ShouldContainSubstring, "shown")
			So(buf.String(), ShouldContainSubstring, "path=a.trv")
		})

		Convey("skip empty entries", func() {
			SetLogLevel("debug")
			Error(context.Background(), "", nil)
			So(buf.Len(), ShouldEqual, 0)
		})

		Reset(func() {
			SetLogLevel("info")
		})
	})

	Convey("parse level", t, func() {
		So(parseLevel("DEBUG").String(), ShouldEqual, "debug")
		So(parseLevel("warning").String(), ShouldEqual, "warning")
		So(parseLevel("").String(), ShouldEqual, "info")
	})
}

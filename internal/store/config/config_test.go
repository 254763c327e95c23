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

package config

import (
	// standard libraries.
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

func TestInput(t *testing.T) {
	Convey("input config validation", t, func() {
		So((&Input{}).Validate(), ShouldBeNil)
		So((&Input{BufferSize: 16}).Validate(), ShouldBeNil)
		So((&Input{DirectIO: true, DirectBlockSize: 8192}).Validate(), ShouldBeNil)

		err := (&Input{BufferSize: 15}).Validate()
		So(errors.Is(err, errors.ErrConfiguration), ShouldBeTrue)
		So((&Input{BufferSize: maxInputBufferSize + 1}).Validate(), ShouldNotBeNil)
		So((&Input{DirectIO: true, DirectBlockSize: -1}).Validate(), ShouldNotBeNil)
		So((&Input{DirectBlockSize: 4096}).Validate(), ShouldNotBeNil)
	})

	Convey("input config options", t, func() {
		c := Input{}
		So(c.Options(), ShouldBeEmpty)
		So(c.FileOptions(), ShouldBeEmpty)

		c = Input{BufferSize: 1024, DirectIO: true, DirectBlockSize: 8192}
		So(c.Options(), ShouldHaveLength, 1)
		So(c.FileOptions(), ShouldHaveLength, 2)
	})
}

func TestLog(t *testing.T) {
	Convey("log config validation", t, func() {
		for _, level := range []string{"", "debug", "INFO", "warn", "Warning", "error"} {
			So((&Log{Level: level}).Validate(), ShouldBeNil)
		}
		So(errors.Is((&Log{Level: "verbose"}).Validate(), errors.ErrConfiguration), ShouldBeTrue)
	})
}

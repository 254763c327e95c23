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

package store

import (
	// standard libraries.
	"os"
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

func writeConfig(content string) string {
	f, err := os.CreateTemp("", "trevni-*.yaml")
	So(err, ShouldBeNil)
	_, err = f.WriteString(content)
	So(err, ShouldBeNil)
	So(f.Close(), ShouldBeNil)
	return f.Name()
}

func TestInitConfig(t *testing.T) {
	Convey("store configuration", t, func() {
		t.Setenv("TREVNI_TEST_BUFFER_SIZE", "4096")
		name := writeConfig(`input:
  buffer_size: ${TREVNI_TEST_BUFFER_SIZE}
  direct_io: true
  direct_block_size: 8192
log:
  level: info
`)
		defer os.Remove(name)

		cfg, err := InitConfig(name)
		So(err, ShouldBeNil)
		So(cfg.Input.BufferSize, ShouldEqual, 4096)
		So(cfg.Input.DirectIO, ShouldBeTrue)
		So(cfg.Input.DirectBlockSize, ShouldEqual, 8192)
		So(cfg.Log.Level, ShouldEqual, "info")
		So(cfg.Input.Options(), ShouldHaveLength, 1)
		So(cfg.Input.FileOptions(), ShouldHaveLength, 2)
	})

	Convey("store config defaults", t, func() {
		cfg, err := InitConfig("")
		So(err, ShouldBeNil)
		So(cfg.Input.BufferSize, ShouldEqual, 0)
		So(cfg.Input.Options(), ShouldBeEmpty)
	})

	Convey("store config validation", t, func() {
		name := writeConfig("input:\n  buffer_size: 8\n")
		defer os.Remove(name)

		_, err := InitConfig(name)
		So(errors.Is(err, errors.ErrConfiguration), ShouldBeTrue)
	})

	Convey("store config load failures", t, func() {
		_, err := InitConfig("/non/existent/trevni.yaml")
		So(errors.Is(err, errors.ErrConfiguration), ShouldBeTrue)

		name := writeConfig("input: [not, a, map]\n")
		defer os.Remove(name)
		_, err = InitConfig(name)
		So(errors.Is(err, errors.ErrConfiguration), ShouldBeTrue)
	})
}

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

package header

import (
	// standard libraries.
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/codec"
	"github.com/linkall-labs/trevni/internal/store/io"
	"github.com/linkall-labs/trevni/pkg/errors"
)

func encode(h *Header) []byte {
	out := codec.NewOutput()
	So(Write(out, h), ShouldBeNil)
	return out.Bytes()
}

func TestHeader(t *testing.T) {
	Convey("test header", t, func() {
		h := New(1<<40, 2)
		h.File.SetCodec("null")
		So(h.File.SetString("created.by", "trevnictl"), ShouldBeNil)
		So(h.Columns[0].SetString("name", "id"), ShouldBeNil)
		So(h.Columns[1].SetString("name", "value"), ShouldBeNil)
		h.Columns[1].SetChecksum("crc32")

		Convey("round trip", func() {
			data := encode(h)
			So(data[:4], ShouldResemble, Magic)
			So(data[4:12], ShouldResemble, []byte{0, 0, 0, 0, 0, 1, 0, 0})
			So(data[12:16], ShouldResemble, []byte{2, 0, 0, 0})

			in := codec.NewInput(io.NewByteArray(data))
			got, err := Read(in)
			So(err, ShouldBeNil)
			So(in.Tell(), ShouldEqual, len(data))

			So(got.RowCount, ShouldEqual, uint64(1<<40))
			So(got.File.Keys(), ShouldResemble, []string{"trevni.codec", "created.by"})
			codecName, _ := got.File.Codec()
			So(codecName, ShouldEqual, "null")
			So(got.Columns, ShouldHaveLength, 2)
			name, _ := got.Columns[1].GetString("name")
			So(name, ShouldEqual, "value")
			checksum, _ := got.Columns[1].Checksum()
			So(checksum, ShouldEqual, "crc32")
		})

		Convey("nil metadata is written empty", func() {
			h.File = nil
			h.Columns = append(h.Columns, nil)
			got, err := Read(codec.NewInput(io.NewByteArray(encode(h))))
			So(err, ShouldBeNil)
			So(got.File.Len(), ShouldEqual, 0)
			So(got.Columns, ShouldHaveLength, 3)
			So(got.Columns[2].Len(), ShouldEqual, 0)
		})

		Convey("bad magic is an encoding error", func() {
			data := encode(h)
			data[3] = 0x01
			_, err := Read(codec.NewInput(io.NewByteArray(data)))
			So(errors.Is(err, errors.ErrInvalidEncoding), ShouldBeTrue)
		})

		Convey("truncated header is end of stream", func() {
			data := encode(h)
			for _, n := range []int{2, 10, 14, 20, len(data) - 1} {
				_, err := Read(codec.NewInput(io.NewByteArray(data[:n])))
				So(errors.Is(err, errors.ErrEndOfStream), ShouldBeTrue)
			}
		})

		Convey("huge column count fails without allocating it", func() {
			data := encode(New(0, 0))
			data[12], data[13], data[14], data[15] = 0xff, 0xff, 0xff, 0xff
			_, err := Read(codec.NewInput(io.NewByteArray(data)))
			So(errors.Is(err, errors.ErrEndOfStream), ShouldBeTrue)
		})
	})
}

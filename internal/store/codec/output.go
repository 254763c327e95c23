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

package codec

import (
	// standard libraries.
	stdio "io"
	"math"

	// third-party libraries.
	"google.golang.org/protobuf/encoding/protowire"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

// Output encodes primitives into an in-memory buffer, in the layout Input
// decodes.
type Output struct {
	buf []byte
}

func NewOutput() *Output {
	return &Output{}
}

func NewOutputSize(capacity int) *Output {
	return &Output{buf: make([]byte, 0, capacity)}
}

func (out *Output) WriteInt(v int32) {
	out.buf = protowire.AppendVarint(out.buf, protowire.EncodeZigZag(int64(v)))
}

func (out *Output) WriteLong(v int64) {
	out.buf = protowire.AppendVarint(out.buf, protowire.EncodeZigZag(v))
}

func (out *Output) WriteFixed32(v uint32) {
	out.buf = protowire.AppendFixed32(out.buf, v)
}

func (out *Output) WriteFixed64(v uint64) {
	out.buf = protowire.AppendFixed64(out.buf, v)
}

func (out *Output) WriteFloat(v float32) {
	out.WriteFixed32(math.Float32bits(v))
}

func (out *Output) WriteDouble(v float64) {
	out.WriteFixed64(math.Float64bits(v))
}

// WriteBytes writes a zig-zag varint length followed by b. It panics if b is
// longer than math.MaxInt32, which the length prefix cannot express.
func (out *Output) WriteBytes(b []byte) {
	out.WriteInt(lengthPrefix(len(b)))
	out.buf = append(out.buf, b...)
}

// WriteString panics under the same condition as WriteBytes.
func (out *Output) WriteString(s string) {
	out.WriteInt(lengthPrefix(len(s)))
	out.buf = append(out.buf, s...)
}

func lengthPrefix(n int) int32 {
	if int64(n) > math.MaxInt32 {
		panic(errors.ErrInvalidArgument.WithMessagef("payload of %d bytes exceeds the length prefix", n))
	}
	return int32(n)
}

// Bytes returns the encoded data. It aliases the buffer until the next write
// or Reset.
func (out *Output) Bytes() []byte {
	return out.buf
}

func (out *Output) Len() int {
	return len(out.buf)
}

func (out *Output) Reset() {
	out.buf = out.buf[:0]
}

// Make sure Output implements io.Writer and io.WriterTo.
var (
	_ stdio.Writer   = (*Output)(nil)
	_ stdio.WriterTo = (*Output)(nil)
)

// Write appends p unframed.
func (out *Output) Write(p []byte) (int, error) {
	out.buf = append(out.buf, p...)
	return len(p), nil
}

func (out *Output) WriteTo(w stdio.Writer) (int64, error) {
	n, err := w.Write(out.buf)
	return int64(n), err
}

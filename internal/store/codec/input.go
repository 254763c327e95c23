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
	"encoding/binary"
	stderrors "errors"
	stdio "io"
	"math"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/metrics"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/io"
	"github.com/linkall-labs/trevni/pkg/errors"
)

var (
	seekInBufferCounter = metrics.InputSeekCounterVec.WithLabelValues(metrics.SeekKindBuffer)
	seekSourceCounter   = metrics.InputSeekCounterVec.WithLabelValues(metrics.SeekKindSource)
)

// Input decodes primitives from a Source.
//
// buf[0] sits at source position offset; buf[pos:limit] is buffered but not yet
// consumed. Unless the buffer is adopted, the source itself is always positioned
// at offset+limit.
type Input struct {
	src    io.Source
	length int64

	offset int64
	buf    []byte
	pos    int
	limit  int

	// adopted is set when buf is the source's own content. It is never
	// compacted or refilled, since that would write into the caller's memory.
	adopted bool

	// stale is set when the source could not be put back at offset+limit; the
	// next SeekTo then always goes to the source.
	stale bool
}

func NewInput(src io.Source, opts ...Option) *Input {
	in := &Input{
		src:    src,
		length: src.Length(),
	}

	if bs, ok := src.(io.ByteSource); ok {
		in.buf = bs.Bytes()
		in.limit = len(in.buf)
		in.adopted = true
		return in
	}

	cfg := makeConfig(opts...)
	in.buf = make([]byte, cfg.bufferSize)
	return in
}

// Tell returns the absolute position of the next byte to be decoded.
func (in *Input) Tell() int64 {
	return in.offset + int64(in.pos)
}

func (in *Input) Length() int64 {
	return in.length
}

// SeekTo moves to an absolute position.
//
// Positions between the start of the window and Tell() are served from the
// buffer. Anything else drops the buffer and seeks the source; the next
// decode refills from there. An adopted buffer covers the whole source, so
// every valid position is served from it.
func (in *Input) SeekTo(position int64) error {
	if !in.stale && position >= in.offset && position <= in.Tell() {
		in.pos = int(position - in.offset)
		seekInBufferCounter.Inc()
		return nil
	}

	if in.adopted {
		if position < 0 || position > int64(in.limit) {
			return errors.ErrOffsetOverflow.WithMessagef("seek to %d, source length is %d", position, in.limit)
		}
		in.pos = int(position)
		seekInBufferCounter.Inc()
		return nil
	}

	if err := in.src.SeekTo(position); err != nil {
		return err
	}
	in.offset = position
	in.pos, in.limit = 0, 0
	in.stale = false
	seekSourceCounter.Inc()
	return nil
}

// ReadFully fills p, first from the buffer and then straight from the source.
// On failure the position is left where it was before the call.
func (in *Input) ReadFully(p []byte) error {
	start := in.Tell()
	n := copy(p, in.buf[in.pos:in.limit])
	in.pos += n
	if n == len(p) {
		return nil
	}
	if in.adopted {
		in.pos -= n
		return errors.ErrEndOfStream.WithMessagef("need %d bytes at %d, only %d available",
			len(p), start, n)
	}

	// The buffer is drained; move the window to the source position.
	in.offset += int64(in.limit)
	in.pos, in.limit = 0, 0

	rest := p[n:]
	if err := in.src.ReadFull(rest); err != nil {
		return in.rewind(start, endOfStream(err))
	}
	in.offset += int64(len(rest))
	metrics.InputSourceReadBytesCounter.Add(float64(len(rest)))
	return nil
}

// rewind puts the source back at start after a failed direct read, which may
// have consumed part of it, and drops the window.
func (in *Input) rewind(start int64, cause error) error {
	in.offset = start
	in.pos, in.limit = 0, 0
	if err := in.src.SeekTo(start); err != nil {
		in.stale = true
		return errors.Chain(cause, err)
	}
	return cause
}

// ensure tries to make n bytes available at pos without consuming them. Fewer
// bytes remain available only when the source is exhausted.
func (in *Input) ensure(n int) error {
	remaining := in.limit - in.pos
	if remaining >= n || in.adopted {
		return nil
	}

	// Move the unread tail to the front, then fill the rest of the buffer.
	copy(in.buf, in.buf[in.pos:in.limit])
	in.offset += int64(in.pos)
	in.pos = 0
	in.limit = remaining

	read, err := in.tryRead(in.buf[remaining:])
	in.limit += read
	metrics.InputRefillCounter.Inc()
	metrics.InputSourceReadBytesCounter.Add(float64(read))
	return err
}

// tryRead loops short reads until p is full or the source is exhausted.
func (in *Input) tryRead(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := in.src.Read(p[n:])
		n += m
		if err != nil {
			if err == stdio.EOF { //nolint:errorlint // io.EOF is not an error.
				break
			}
			return n, err
		}
		if m == 0 {
			break
		}
	}
	return n, nil
}

// ReadInt decodes a zig-zag varint of at most 5 bytes.
func (in *Input) ReadInt() (int32, error) {
	v, err := in.readVarint(maxVarintLen32)
	if err != nil {
		return 0, err
	}
	u := uint32(v)
	return int32(u>>1) ^ -int32(u&1), nil
}

// ReadLong decodes a zig-zag varint of at most 10 bytes.
func (in *Input) ReadLong() (int64, error) {
	u, err := in.readVarint(maxVarintLen64)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

func (in *Input) readVarint(maxLen int) (uint64, error) {
	if err := in.ensure(maxLen); err != nil {
		return 0, err
	}

	b := in.buf[in.pos:in.limit]
	var v uint64
	for i := 0; i < maxLen; i++ {
		if i == len(b) {
			return 0, errors.ErrEndOfStream.WithMessagef("varint at %d truncated after %d bytes", in.Tell(), i)
		}
		c := b[i]
		v |= uint64(c&0x7f) << (7 * uint(i))
		if c < 0x80 {
			in.pos += i + 1
			return v, nil
		}
	}
	return 0, errors.ErrInvalidEncoding.WithMessagef("varint at %d is longer than %d bytes", in.Tell(), maxLen)
}

func (in *Input) readFixed(n int) ([]byte, error) {
	if err := in.ensure(n); err != nil {
		return nil, err
	}
	if in.limit-in.pos < n {
		return nil, errors.ErrEndOfStream.WithMessagef("need %d bytes at %d, only %d available",
			n, in.Tell(), in.limit-in.pos)
	}
	b := in.buf[in.pos : in.pos+n]
	in.pos += n
	return b, nil
}

func (in *Input) ReadFixed32() (uint32, error) {
	b, err := in.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (in *Input) ReadFixed64() (uint64, error) {
	b, err := in.readFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadFloat decodes 4 little-endian bytes as an IEEE-754 bit pattern. NaN
// payloads and the sign of zero are preserved.
func (in *Input) ReadFloat() (float32, error) {
	bits, err := in.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadDouble decodes 8 little-endian bytes as an IEEE-754 bit pattern.
func (in *Input) ReadDouble() (float64, error) {
	bits, err := in.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// readLength decodes a length prefix and checks it against what is left in
// the source, so corrupt prefixes fail before anything is allocated.
func (in *Input) readLength() (int, error) {
	n, err := in.ReadInt()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.ErrInvalidEncoding.WithMessagef("negative length %d at %d", n, in.Tell())
	}
	if rest := in.length - in.Tell(); int64(n) > rest {
		return 0, errors.ErrEndOfStream.WithMessagef("length %d at %d exceeds the %d bytes left", n, in.Tell(), rest)
	}
	return int(n), nil
}

// ReadBytes decodes a length-prefixed byte string into a new slice.
func (in *Input) ReadBytes() ([]byte, error) {
	n, err := in.readLength()
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err = in.ReadFully(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadBytesBuffer decodes a length-prefixed byte string into scratch when its
// capacity suffices, and into a new slice otherwise. The result aliases
// scratch in the first case; pass it back in to reuse it across calls.
func (in *Input) ReadBytesBuffer(scratch []byte) ([]byte, error) {
	n, err := in.readLength()
	if err != nil {
		return nil, err
	}
	var b []byte
	if scratch != nil && cap(scratch) >= n {
		b = scratch[:n]
	} else {
		b = make([]byte, n)
	}
	if err = in.ReadFully(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadString decodes a length-prefixed UTF-8 string. The bytes are taken as
// they are; invalid UTF-8 is not rejected.
func (in *Input) ReadString() (string, error) {
	n, err := in.readLength()
	if err != nil {
		return "", err
	}
	if n <= in.limit-in.pos {
		s := string(in.buf[in.pos : in.pos+n])
		in.pos += n
		return s, nil
	}
	b := make([]byte, n)
	if err = in.ReadFully(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// SkipBytes steps over a length-prefixed byte string without copying it.
func (in *Input) SkipBytes() error {
	n, err := in.readLength()
	if err != nil {
		return err
	}
	return in.skip(n)
}

// skip advances n bytes. Bytes between pos and limit are source data already
// read into the buffer, so a skip that lands there only moves the cursor.
func (in *Input) skip(n int) error {
	if n <= in.limit-in.pos {
		in.pos += n
		return nil
	}
	return in.SeekTo(in.Tell() + int64(n))
}

func endOfStream(err error) error {
	if errors.Is(err, errors.ErrEndOfStream) {
		return err
	}
	if stderrors.Is(err, stdio.EOF) || stderrors.Is(err, stdio.ErrUnexpectedEOF) {
		return errors.ErrEndOfStream.Wrap(err)
	}
	return err
}
